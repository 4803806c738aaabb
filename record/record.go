// Package record persists decision traces as JSON game records and
// reconstructs prior positions from them for replay.
package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"calico/game"
	"calico/searcher"
)

// Move is one recorded turn: the action taken, the search's ranked
// alternatives at that point, and the position after the move. The
// post-move snapshot is what makes positions reconstructable: market
// refills draw from the hidden bag, so later positions cannot be
// re-derived from the action list alone.
type Move struct {
	Turn       int                  `json:"turn"`
	Action     game.Action          `json:"action"`
	Candidates []searcher.Candidate `json:"candidates,omitempty"`
	After      game.Snapshot        `json:"after"`
}

// Game is a full decision trace. The bag order is never part of a
// record; every snapshot carries only the remaining count.
type Game struct {
	ID         string              `json:"id"`
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at"`
	Initial    game.Snapshot       `json:"initial"`
	Moves      []Move              `json:"moves"`
	Final      game.ScoreBreakdown `json:"final"`
}

// NewGame starts a trace for a game beginning at the given position.
func NewGame(initial game.Snapshot) *Game {
	return &Game{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Initial:   initial,
	}
}

func (g *Game) AddMove(turn int, action game.Action, candidates []searcher.Candidate, after game.Snapshot) {
	g.Moves = append(g.Moves, Move{Turn: turn, Action: action, Candidates: candidates, After: after})
}

func (g *Game) Finish(final game.ScoreBreakdown) {
	g.FinishedAt = time.Now().UTC()
	g.Final = final
}

// PositionAt reconstructs the position after the given move index, or
// the initial position for index -1. The reconstructed bag is
// re-randomized from seed; its order was hidden when the game was
// played and stays hidden in the record.
func (g *Game) PositionAt(index int, seed uint64) (*game.GameState, error) {
	if index < -1 || index >= len(g.Moves) {
		return nil, fmt.Errorf("move index %d out of range [-1, %d)", index, len(g.Moves))
	}
	snap := g.Initial
	if index >= 0 {
		snap = g.Moves[index].After
	}
	return game.FromSnapshot(snap, seed)
}

// Replay walks the recorded game and re-evaluates every position,
// verifying each recorded action was applied where the snapshot says.
func Replay(g *Game, seed uint64) ([]game.ScoreBreakdown, error) {
	breakdowns := make([]game.ScoreBreakdown, 0, len(g.Moves))
	for i, mv := range g.Moves {
		state, err := g.PositionAt(i, seed)
		if err != nil {
			return nil, err
		}
		if _, ok := state.Grid().TileAt(mv.Action.Pos); !ok {
			return nil, fmt.Errorf("move %d: recorded placement %s missing from snapshot", i, mv.Action.Pos)
		}
		breakdowns = append(breakdowns, state.Evaluate())
	}
	return breakdowns, nil
}
