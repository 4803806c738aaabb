package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Action is one full turn: place the held tile at Pos, then take the
// market tile at MarketIndex as the new held tile. On the final
// placement the board fills and there is no market choice; MarketIndex
// is NoMarketChoice.
type Action struct {
	Pos         Hex `json:"pos"`
	MarketIndex int `json:"market_index"`
}

// NoMarketChoice marks the final-turn action.
const NoMarketChoice = -1

func (a Action) String() string {
	if a.MarketIndex == NoMarketChoice {
		return fmt.Sprintf("place %s (final)", a.Pos)
	}
	return fmt.Sprintf("place %s take market %d", a.Pos, a.MarketIndex)
}

// GameState aggregates one game's mutable state. It is owned exclusively
// by whichever component is simulating it; branches always go through
// Copy, never share a state by reference.
type GameState struct {
	grid   *Grid
	market *Market
	bag    *TileBag
	hand   Tile
	turn   int
	cats   [3]Cat
	goals  [3]Goal

	// rng drives bag shuffles. Clones share the stream so a seeded
	// search is reproducible; each Copy still yields an independent
	// permutation of the clone's bag.
	rng *rand.Rand
}

// NewGameState starts a fresh game on the given board: rules assigned,
// bag shuffled, one tile drawn to hand, market filled.
func NewGameState(variant BoardVariant, seed uint64) (*GameState, error) {
	grid, err := NewGrid(variant)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	cats, goals := AssignRules(rng)
	bag := NewTileBag(rng)
	hand, err := bag.Draw()
	if err != nil {
		return nil, err
	}
	return &GameState{
		grid:   grid,
		market: NewMarket(bag),
		bag:    bag,
		hand:   hand,
		cats:   cats,
		goals:  goals,
		rng:    rng,
	}, nil
}

func (s *GameState) Grid() *Grid      { return s.grid }
func (s *GameState) Hand() Tile       { return s.hand }
func (s *GameState) Turn() int        { return s.turn }
func (s *GameState) Cats() [3]Cat     { return s.cats }
func (s *GameState) Goals() [3]Goal   { return s.goals }
func (s *GameState) Market() []Tile   { return s.market.Visible() }
func (s *GameState) TilesRemaining() int { return s.bag.Remaining() }

// Terminal reports whether the board is full; no further actions are
// legal and Evaluate is the authoritative final score.
func (s *GameState) Terminal() bool {
	return s.grid.Full()
}

// LegalActions enumerates every legal turn in deterministic order:
// empty cells by coordinate, then market index. On the last empty cell
// the only choice per cell is the final placement.
func (s *GameState) LegalActions() []Action {
	empty := s.grid.EmptyPositions()
	if len(empty) == 0 {
		return nil
	}
	if len(empty) == 1 {
		return []Action{{Pos: empty[0], MarketIndex: NoMarketChoice}}
	}
	visible := len(s.market.Visible())
	actions := make([]Action, 0, len(empty)*visible)
	for _, pos := range empty {
		for i := 0; i < visible; i++ {
			actions = append(actions, Action{Pos: pos, MarketIndex: i})
		}
	}
	return actions
}

// Apply executes one turn in place. It validates fully before mutating:
// a failed Apply leaves the state untouched.
func (s *GameState) Apply(a Action) error {
	if s.Terminal() {
		return fmt.Errorf("%w: game is over", ErrIllegalAction)
	}
	if !onBoard[a.Pos] {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, a.Pos)
	}
	if !s.grid.IsEmpty(a.Pos) {
		return fmt.Errorf("%w: cell %s is not empty", ErrIllegalAction, a.Pos)
	}

	final := len(s.grid.EmptyPositions()) == 1
	switch {
	case final && a.MarketIndex != NoMarketChoice:
		return fmt.Errorf("%w: final placement takes no market tile", ErrIllegalAction)
	case !final && a.MarketIndex == NoMarketChoice:
		return fmt.Errorf("%w: market choice required", ErrIllegalAction)
	case !final && (a.MarketIndex < 0 || a.MarketIndex >= len(s.market.Visible())):
		return fmt.Errorf("%w: %d of %d", ErrInvalidIndex, a.MarketIndex, len(s.market.Visible()))
	}

	if err := s.grid.Place(a.Pos, s.hand); err != nil {
		return err
	}
	if final {
		s.hand = Tile{}
		s.turn++
		return nil
	}

	taken, err := s.market.Take(a.MarketIndex)
	if err != nil {
		// Already validated above; reaching here is a programming error.
		panic(err)
	}
	s.hand = taken
	s.market.Refill(s.bag)
	s.turn++
	return nil
}

// Copy deep-clones the state for simulation. The bag copy re-randomizes
// the undrawn order, so the branch explores one plausible future without
// learning the real one. This is the only sanctioned way to branch.
func (s *GameState) Copy() *GameState {
	return &GameState{
		grid:   s.grid.Copy(),
		market: s.market.Copy(),
		bag:    s.bag.Copy(s.rng),
		hand:   s.hand,
		turn:   s.turn,
		cats:   s.cats,
		goals:  s.goals,
		rng:    s.rng,
	}
}
