package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMarket(t *testing.T) {
	t.Run("fills to size from the bag", func(t *testing.T) {
		bag := NewTileBag(rand.New(rand.NewSource(1)))
		market := NewMarket(bag)

		require.Len(t, market.Visible(), MarketSize)
		require.Equal(t, TotalTiles-MarketSize, bag.Remaining())
	})

	t.Run("take removes the indexed tile and refill restores size", func(t *testing.T) {
		bag := NewTileBag(rand.New(rand.NewSource(1)))
		market := NewMarket(bag)
		want := market.Visible()[1]

		got, err := market.Take(1)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Len(t, market.Visible(), MarketSize-1)

		market.Refill(bag)
		require.Len(t, market.Visible(), MarketSize)
	})

	t.Run("take out of range fails", func(t *testing.T) {
		bag := NewTileBag(rand.New(rand.NewSource(1)))
		market := NewMarket(bag)

		_, err := market.Take(MarketSize)
		require.ErrorIs(t, err, ErrInvalidIndex)
		_, err = market.Take(-1)
		require.ErrorIs(t, err, ErrInvalidIndex)
		require.Len(t, market.Visible(), MarketSize)
	})

	t.Run("refill on an empty bag keeps a short market", func(t *testing.T) {
		bag := NewTileBag(rand.New(rand.NewSource(1)))
		for bag.Remaining() > MarketSize {
			_, err := bag.Draw()
			require.NoError(t, err)
		}
		market := NewMarket(bag)
		require.Len(t, market.Visible(), MarketSize)

		_, err := market.Take(0)
		require.NoError(t, err)
		market.Refill(bag)
		require.Len(t, market.Visible(), MarketSize-1,
			"exhausted bag cannot refill the market")
	})
}
