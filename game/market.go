package game

import "fmt"

// MarketSize is the number of visible tiles a player chooses from.
const MarketSize = 3

// Market is the small ordered set of currently visible tiles.
type Market struct {
	tiles []Tile
}

// NewMarket fills a market from the bag.
func NewMarket(bag *TileBag) *Market {
	m := &Market{tiles: make([]Tile, 0, MarketSize)}
	m.Refill(bag)
	return m
}

// Visible returns the current tiles in display order. Callers must not
// mutate the returned slice.
func (m *Market) Visible() []Tile {
	return m.tiles
}

// Take removes and returns the tile at index. The caller refills
// afterwards; Take itself does not touch the bag.
func (m *Market) Take(index int) (Tile, error) {
	if index < 0 || index >= len(m.tiles) {
		return Tile{}, fmt.Errorf("%w: %d of %d", ErrInvalidIndex, index, len(m.tiles))
	}
	t := m.tiles[index]
	m.tiles = append(m.tiles[:index], m.tiles[index+1:]...)
	return t, nil
}

// Refill draws from the bag until the market is full or the bag runs
// out, appending at the end to keep remaining slots stable.
func (m *Market) Refill(bag *TileBag) {
	for len(m.tiles) < MarketSize && bag.Remaining() > 0 {
		t, err := bag.Draw()
		if err != nil {
			return
		}
		m.tiles = append(m.tiles, t)
	}
}

// Copy clones the visible tiles.
func (m *Market) Copy() *Market {
	return &Market{tiles: append([]Tile(nil), m.tiles...)}
}
