package game

import (
	"fmt"
	"sort"
)

// BoardVariant selects which of the four edge-tile layouts the game uses.
// Chosen once at game start, immutable afterwards.
type BoardVariant int

const (
	Board1 BoardVariant = iota + 1 // teal board
	Board2                         // yellow board
	Board3                         // purple board
	Board4                         // green board
)

func (v BoardVariant) String() string {
	return fmt.Sprintf("BOARD_%d", int(v))
}

// GoalPositions are the three fixed marker cells. Tiles cannot be placed
// on them.
var GoalPositions = [3]Hex{
	NewHex(-2, 1),
	NewHex(1, -1),
	NewHex(0, 1),
}

type prefill struct {
	q, r    int
	color   Color
	pattern Pattern
}

// The 22 pre-filled rim tiles per variant, listed top row, right side,
// bottom row, left side.
var boardConfigs = map[BoardVariant][]prefill{
	Board1: {
		{-1, 4, Yellow, Stripes}, {0, 3, Teal, Swirls}, {1, 2, Pink, Leaves},
		{2, 1, Purple, Clubs}, {3, 0, Yellow, Flowers}, {4, -1, Green, Stripes},
		{4, -2, Blue, Dots}, {3, -2, Purple, Swirls}, {3, -3, Yellow, Leaves},
		{2, -3, Green, Clubs}, {2, -4, Blue, Flowers},
		{1, -4, Teal, Stripes}, {0, -3, Pink, Dots}, {-1, -2, Green, Swirls},
		{-2, -1, Blue, Leaves}, {-3, 0, Pink, Flowers}, {-4, 1, Teal, Clubs},
		{-4, 2, Yellow, Dots}, {-4, 3, Purple, Stripes}, {-3, 3, Teal, Leaves},
		{-3, 4, Blue, Clubs}, {-2, 4, Green, Leaves},
	},
	Board2: {
		{-1, 4, Blue, Flowers}, {0, 3, Yellow, Stripes}, {1, 2, Purple, Dots},
		{2, 1, Blue, Swirls}, {3, 0, Green, Leaves}, {4, -1, Pink, Clubs},
		{4, -2, Teal, Swirls}, {3, -2, Blue, Stripes}, {3, -3, Green, Dots},
		{2, -3, Pink, Swirls}, {2, -4, Teal, Leaves},
		{1, -4, Yellow, Clubs}, {0, -3, Purple, Flowers}, {-1, -2, Pink, Stripes},
		{-2, -1, Blue, Dots}, {-3, 0, Yellow, Swirls}, {-4, 1, Purple, Leaves},
		{-4, 2, Blue, Clubs}, {-4, 3, Green, Flowers}, {-3, 3, Yellow, Dots},
		{-3, 4, Purple, Swirls}, {-2, 4, Pink, Leaves},
	},
	Board3: {
		{-1, 4, Pink, Dots}, {0, 3, Purple, Flowers}, {1, 2, Yellow, Leaves},
		{2, 1, Teal, Stripes}, {3, 0, Pink, Clubs}, {4, -1, Green, Dots},
		{4, -2, Blue, Swirls}, {3, -2, Teal, Flowers}, {3, -3, Pink, Leaves},
		{2, -3, Green, Stripes}, {2, -4, Blue, Clubs},
		{1, -4, Purple, Dots}, {0, -3, Yellow, Swirls}, {-1, -2, Green, Flowers},
		{-2, -1, Blue, Leaves}, {-3, 0, Purple, Stripes}, {-4, 1, Yellow, Clubs},
		{-4, 2, Teal, Dots}, {-4, 3, Pink, Swirls}, {-3, 3, Green, Leaves},
		{-3, 4, Blue, Stripes}, {-2, 4, Teal, Clubs},
	},
	Board4: {
		{-1, 4, Yellow, Swirls}, {0, 3, Green, Leaves}, {1, 2, Blue, Stripes},
		{2, 1, Purple, Clubs}, {3, 0, Yellow, Dots}, {4, -1, Teal, Swirls},
		{4, -2, Pink, Flowers}, {3, -2, Purple, Leaves}, {3, -3, Yellow, Stripes},
		{2, -3, Teal, Clubs}, {2, -4, Pink, Dots},
		{1, -4, Green, Swirls}, {0, -3, Blue, Flowers}, {-1, -2, Teal, Leaves},
		{-2, -1, Pink, Stripes}, {-3, 0, Green, Clubs}, {-4, 1, Blue, Dots},
		{-4, 2, Purple, Swirls}, {-4, 3, Yellow, Flowers}, {-3, 3, Teal, Stripes},
		{-3, 4, Pink, Clubs}, {-2, 4, Purple, Dots},
	},
}

// playablePositions is derived once: layout cells that are neither
// pre-filled rim tiles nor goal markers. 22 cells. Every variant fills
// the same rim cells, so Board1 stands in for all of them here.
var playablePositions = derivePlayable()

func derivePlayable() []Hex {
	rim := make(map[Hex]bool)
	for _, p := range boardConfigs[Board1] {
		rim[NewHex(p.q, p.r)] = true
	}
	goal := make(map[Hex]bool)
	for _, g := range GoalPositions {
		goal[g] = true
	}
	var playable []Hex
	for _, h := range allPositions {
		if !rim[h] && !goal[h] {
			playable = append(playable, h)
		}
	}
	sortHexes(playable)
	return playable
}

// Grid is the occupancy of one board: pre-filled rim tiles plus the
// player's placed tiles. Layout, rim membership and goal markers are
// fixed per game; only playable-cell occupancy changes.
type Grid struct {
	variant BoardVariant
	tiles   map[Hex]Tile
	rim     map[Hex]bool
}

// NewGrid builds a grid for the given variant with its 22 rim tiles set
// and all playable cells empty.
func NewGrid(variant BoardVariant) (*Grid, error) {
	config, ok := boardConfigs[variant]
	if !ok {
		return nil, fmt.Errorf("unknown board variant %d", int(variant))
	}
	g := &Grid{
		variant: variant,
		tiles:   make(map[Hex]Tile, len(allPositions)),
		rim:     make(map[Hex]bool, len(config)),
	}
	for _, p := range config {
		h := NewHex(p.q, p.r)
		g.tiles[h] = Tile{Color: p.color, Pattern: p.pattern}
		g.rim[h] = true
	}
	return g, nil
}

func (g *Grid) Variant() BoardVariant {
	return g.variant
}

// TileAt returns the tile at h and whether one is present.
func (g *Grid) TileAt(h Hex) (Tile, bool) {
	t, ok := g.tiles[h]
	return t, ok
}

// IsGoal reports whether h holds a goal marker.
func (g *Grid) IsGoal(h Hex) bool {
	for _, gp := range GoalPositions {
		if gp == h {
			return true
		}
	}
	return false
}

// IsPlayable reports whether a tile may ever be placed at h.
func (g *Grid) IsPlayable(h Hex) bool {
	return onBoard[h] && !g.rim[h] && !g.IsGoal(h)
}

// IsEmpty reports whether h is playable and currently unoccupied.
func (g *Grid) IsEmpty(h Hex) bool {
	if !g.IsPlayable(h) {
		return false
	}
	_, occupied := g.tiles[h]
	return !occupied
}

// Place puts a tile on an empty playable cell.
func (g *Grid) Place(h Hex, t Tile) error {
	if !onBoard[h] {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, h)
	}
	if !g.IsEmpty(h) {
		return fmt.Errorf("%w: cell %s is not empty", ErrIllegalAction, h)
	}
	g.tiles[h] = t
	return nil
}

// EmptyPositions returns the unoccupied playable cells in deterministic
// coordinate order.
func (g *Grid) EmptyPositions() []Hex {
	var empty []Hex
	for _, h := range playablePositions {
		if _, occupied := g.tiles[h]; !occupied {
			empty = append(empty, h)
		}
	}
	return empty
}

// PlacedTiles returns the player's placements (playable cells only), for
// snapshots.
func (g *Grid) PlacedTiles() map[Hex]Tile {
	placed := make(map[Hex]Tile)
	for h, t := range g.tiles {
		if !g.rim[h] {
			placed[h] = t
		}
	}
	return placed
}

// Full reports whether every playable cell is occupied.
func (g *Grid) Full() bool {
	return len(g.tiles) == len(allPositions)-len(GoalPositions)
}

// Copy deep-clones occupancy. Layout tables are package-level and shared.
func (g *Grid) Copy() *Grid {
	tiles := make(map[Hex]Tile, len(g.tiles))
	for h, t := range g.tiles {
		tiles[h] = t
	}
	return &Grid{variant: g.variant, tiles: tiles, rim: g.rim}
}

// PlayablePositions returns the 22 playable cells in coordinate order.
func PlayablePositions() []Hex {
	return playablePositions
}

func sortHexes(hs []Hex) {
	sort.Slice(hs, func(i, j int) bool { return hs[i].Less(hs[j]) })
}
