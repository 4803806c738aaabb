package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// PlacedTile pairs a playable cell with the tile a player put on it.
type PlacedTile struct {
	Pos  Hex  `json:"pos"`
	Tile Tile `json:"tile"`
}

// Snapshot is the serializable view of a game: enough for a recorder to
// persist a trace and a replay tool to reconstruct the position. The
// bag's literal order is deliberately absent; only the remaining count
// is exported, preserving the hidden-information guarantee in persisted
// records.
type Snapshot struct {
	Board          BoardVariant `json:"board"`
	Cats           [3]Cat       `json:"cats"`
	Goals          [3]Goal      `json:"goals"`
	Placed         []PlacedTile `json:"placed,omitempty"`
	Market         []Tile       `json:"market"`
	Hand           *Tile        `json:"hand,omitempty"`
	Turn           int          `json:"turn"`
	TilesRemaining int          `json:"tiles_remaining"`
}

// Snapshot exports the current position.
func (s *GameState) Snapshot() Snapshot {
	placed := s.grid.PlacedTiles()
	list := make([]PlacedTile, 0, len(placed))
	for _, h := range playablePositions {
		if t, ok := placed[h]; ok {
			list = append(list, PlacedTile{Pos: h, Tile: t})
		}
	}
	snap := Snapshot{
		Board:          s.grid.Variant(),
		Cats:           s.cats,
		Goals:          s.goals,
		Placed:         list,
		Market:         append([]Tile(nil), s.market.Visible()...),
		Turn:           s.turn,
		TilesRemaining: s.bag.Remaining(),
	}
	if !s.Terminal() {
		hand := s.hand
		snap.Hand = &hand
	}
	return snap
}

// FromSnapshot reconstructs a playable state. The bag is rebuilt as the
// 108-tile population minus every visible tile, freshly shuffled by
// seed: the reconstruction knows exactly as much as the recorded player
// did.
func FromSnapshot(snap Snapshot, seed uint64) (*GameState, error) {
	grid, err := NewGrid(snap.Board)
	if err != nil {
		return nil, err
	}
	for _, pt := range snap.Placed {
		if err := grid.Place(pt.Pos, pt.Tile); err != nil {
			return nil, err
		}
	}

	remaining := make(map[Tile]int)
	for _, c := range Colors() {
		for _, p := range Patterns() {
			remaining[Tile{Color: c, Pattern: p}] = CopiesPerTile
		}
	}
	visible := make([]Tile, 0, len(snap.Placed)+len(snap.Market)+1)
	for _, pt := range snap.Placed {
		visible = append(visible, pt.Tile)
	}
	visible = append(visible, snap.Market...)
	if snap.Hand != nil {
		visible = append(visible, *snap.Hand)
	}
	for _, t := range visible {
		if remaining[t] == 0 {
			return nil, fmt.Errorf("snapshot exceeds tile population for %s", t)
		}
		remaining[t]--
	}

	var bagTiles []Tile
	for _, c := range Colors() {
		for _, p := range Patterns() {
			t := Tile{Color: c, Pattern: p}
			for i := 0; i < remaining[t]; i++ {
				bagTiles = append(bagTiles, t)
			}
		}
	}

	if snap.TilesRemaining != len(bagTiles) {
		return nil, fmt.Errorf("snapshot reports %d tiles remaining, population implies %d",
			snap.TilesRemaining, len(bagTiles))
	}

	rng := rand.New(rand.NewSource(seed))
	s := &GameState{
		grid:   grid,
		market: &Market{tiles: append([]Tile(nil), snap.Market...)},
		bag:    newBagFromTiles(bagTiles, rng),
		turn:   snap.Turn,
		cats:   snap.Cats,
		goals:  snap.Goals,
		rng:    rng,
	}
	if snap.Hand != nil {
		s.hand = *snap.Hand
	}
	return s, nil
}
