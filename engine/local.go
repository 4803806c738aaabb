// Package engine drives a full game between a board and a searching
// agent, producing a decision trace.
package engine

import (
	"github.com/rs/zerolog/log"

	"calico/game"
	"calico/record"
	"calico/searcher"
)

// Engine owns one local game and the agent playing it.
type Engine struct {
	State      *game.GameState
	Agent      *searcher.MCTS
	Candidates int // ranked alternatives to record per move
}

func LocalEngine(state *game.GameState, agent *searcher.MCTS, candidates int) *Engine {
	if state == nil || agent == nil {
		panic("engine needs a state and an agent")
	}
	if candidates <= 0 {
		candidates = 5
	}
	return &Engine{State: state, Agent: agent, Candidates: candidates}
}

// Run plays the game to completion and returns its trace.
func (e *Engine) Run() *record.Game {
	trace := record.NewGame(e.State.Snapshot())

	for !e.State.Terminal() {
		turn := e.State.Turn()
		candidates, metrics := e.Agent.Recommend(e.State, e.Candidates)
		if len(candidates) == 0 {
			// Terminal already checked; an empty recommendation here
			// means the searcher and the state disagree on legality.
			panic("no candidates for a non-terminal state")
		}
		best := candidates[0]
		if err := e.State.Apply(best.Action); err != nil {
			panic("recommended action was illegal: " + err.Error())
		}
		trace.AddMove(turn, best.Action, candidates, e.State.Snapshot())

		log.Info().Msgf("turn %d: %s (visits=%d avg=%.1f score=%d) in %s",
			turn, best.Action, best.Visits, best.AvgScore,
			best.Breakdown.Total, metrics.Duration)
	}

	final := e.State.Evaluate()
	trace.Finish(final)
	log.Info().Msgf("game over after %d turns: %d points (cats=%d goals=%d buttons=%d)",
		e.State.Turn(), final.Total, final.CatScore, final.GoalScore, final.ButtonScore)
	return trace
}
