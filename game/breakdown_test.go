package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedRuleSnapshot pins the cat pattern pairs and goal kinds so scoring
// outcomes are fully determined by tile placement.
func fixedRuleSnapshot(placed []PlacedTile, hand Tile) Snapshot {
	millie := Millie()
	millie.Patterns = [2]Pattern{Dots, Stripes}
	rumi := Rumi()
	rumi.Patterns = [2]Pattern{Flowers, Leaves}
	leo := Leo()
	leo.Patterns = [2]Pattern{Clubs, Swirls}

	snap := Snapshot{
		Board:  Board1,
		Cats:   [3]Cat{millie, rumi, leo},
		Goals:  [3]Goal{{GoalThreeThree, GoalPositions[0]}, {GoalTwoTwoTwo, GoalPositions[1]}, {GoalAllUnique, GoalPositions[2]}},
		Placed: placed,
		Market: []Tile{{Blue, Flowers}, {Green, Clubs}, {Teal, Leaves}},
		Hand:   &hand,
		Turn:   len(placed),
	}
	snap.TilesRemaining = TotalTiles - len(placed) - len(snap.Market) - 1
	return snap
}

func TestCatScoreAfterPlacement(t *testing.T) {
	t.Run("isolated placement scores no cats", func(t *testing.T) {
		s, err := FromSnapshot(fixedRuleSnapshot(nil, Tile{Pink, Swirls}), 1)
		require.NoError(t, err)

		require.NoError(t, s.Apply(Action{Pos: NewHex(0, 0), MarketIndex: 0}))
		b := s.Evaluate()
		require.Zero(t, b.CatScore)
		require.Zero(t, b.GoalScore)
		require.Zero(t, b.ButtonScore)
	})

	t.Run("third matching tile completes a cluster", func(t *testing.T) {
		placed := []PlacedTile{
			{Pos: NewHex(1, 0), Tile: Tile{Blue, Dots}},
			{Pos: NewHex(2, -1), Tile: Tile{Green, Dots}},
		}
		s, err := FromSnapshot(fixedRuleSnapshot(placed, Tile{Pink, Dots}), 1)
		require.NoError(t, err)
		require.Zero(t, s.Evaluate().CatScore)

		require.NoError(t, s.Apply(Action{Pos: NewHex(0, 0), MarketIndex: 0}))
		b := s.Evaluate()
		require.Equal(t, 3, b.CatScore)
		joined := strings.Join(b.CatReasons, "\n")
		require.Contains(t, joined, "Millie")
		require.Contains(t, joined, "3/3")
	})
}
