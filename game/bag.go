package game

import (
	"golang.org/x/exp/rand"
)

// TileBag holds the undrawn tiles in draw order. The literal order is
// hidden information: it never leaves the bag's owning GameState, and
// Copy re-randomizes it so that no simulated branch can exploit the real
// future draw order.
type TileBag struct {
	tiles []Tile
}

// NewTileBag builds the full 108-tile population shuffled by rng.
func NewTileBag(rng *rand.Rand) *TileBag {
	tiles := make([]Tile, 0, TotalTiles)
	for _, c := range Colors() {
		for _, p := range Patterns() {
			for i := 0; i < CopiesPerTile; i++ {
				tiles = append(tiles, Tile{Color: c, Pattern: p})
			}
		}
	}
	b := &TileBag{tiles: tiles}
	b.shuffle(rng)
	return b
}

// newBagFromTiles is used by snapshot reconstruction.
func newBagFromTiles(tiles []Tile, rng *rand.Rand) *TileBag {
	b := &TileBag{tiles: append([]Tile(nil), tiles...)}
	b.shuffle(rng)
	return b
}

func (b *TileBag) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw removes and returns the next tile.
func (b *TileBag) Draw() (Tile, error) {
	if len(b.tiles) == 0 {
		return Tile{}, ErrEmptyBag
	}
	t := b.tiles[len(b.tiles)-1]
	b.tiles = b.tiles[:len(b.tiles)-1]
	return t, nil
}

// Remaining is the undrawn tile count. This is the only bag state agents
// may observe.
func (b *TileBag) Remaining() int {
	return len(b.tiles)
}

// Copy returns a bag with the same remaining multiset reordered by an
// independent random permutation. Every simulated branch drawing "the
// next tile" draws from its own shuffled view of the unknown future.
func (b *TileBag) Copy(rng *rand.Rand) *TileBag {
	return newBagFromTiles(b.tiles, rng)
}
