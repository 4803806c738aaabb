// Package bench compares search configurations by playing batches of
// full games and recording per-move search metrics.
package bench

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"calico/game"
	"calico/searcher"
)

// Config is one search configuration under comparison.
type Config struct {
	Name         string  `json:"name"`
	Iterations   int     `json:"iterations"`
	Exploration  float64 `json:"exploration"`
	RolloutDepth int     `json:"rolloutDepth"`
	Greedy       bool    `json:"greedy"`
}

// MoveMetrics is the search cost of one recorded turn.
type MoveMetrics struct {
	Turn int
	searcher.SearchMetrics
}

// GameResult summarizes one finished game under a configuration.
type GameResult struct {
	Config   string
	Game     int
	Seed     uint64
	Turns    int
	Score    game.ScoreBreakdown
	Duration time.Duration
	Moves    []MoveMetrics
}

// Runner plays every configuration for the set number of games.
type Runner struct {
	Board   game.BoardVariant
	Configs []Config
	Games   int
	Seed    uint64 // base seed; game g of any config plays seed Seed+g
}

// Run plays all games and returns one result per (config, game) pair.
// Every configuration sees the same seed sequence, so differences in
// outcome come from the configuration, not the deal.
func (r *Runner) Run() ([]GameResult, error) {
	results := make([]GameResult, 0, len(r.Configs)*r.Games)
	for _, cfg := range r.Configs {
		for i := 0; i < r.Games; i++ {
			seed := r.Seed + uint64(i)
			result, err := r.playGame(cfg, i, seed)
			if err != nil {
				return nil, fmt.Errorf("config %s game %d: %w", cfg.Name, i, err)
			}
			log.Info().Msgf("bench %s game %d: %d points in %s",
				cfg.Name, i, result.Score.Total, result.Duration)
			results = append(results, result)
		}
	}
	return results, nil
}

func (r *Runner) playGame(cfg Config, index int, seed uint64) (GameResult, error) {
	state, err := game.NewGameState(r.Board, seed)
	if err != nil {
		return GameResult{}, err
	}

	options := []searcher.Option{
		searcher.WithIterations(cfg.Iterations),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	}
	if cfg.Exploration > 0 {
		options = append(options, searcher.WithExploration(cfg.Exploration))
	}
	if cfg.RolloutDepth > 0 {
		options = append(options, searcher.WithRolloutDepth(cfg.RolloutDepth))
	}
	if cfg.Greedy {
		options = append(options, searcher.WithGreedyRollout())
	}
	agent := searcher.NewMCTS(options...)

	start := time.Now()
	var moves []MoveMetrics
	for !state.Terminal() {
		turn := state.Turn()
		candidates, metrics := agent.Recommend(state, 1)
		if len(candidates) == 0 {
			return GameResult{}, fmt.Errorf("no candidates at turn %d", turn)
		}
		if err := state.Apply(candidates[0].Action); err != nil {
			return GameResult{}, err
		}
		moves = append(moves, MoveMetrics{Turn: turn, SearchMetrics: metrics})
	}

	return GameResult{
		Config:   cfg.Name,
		Game:     index,
		Seed:     seed,
		Turns:    state.Turn(),
		Score:    state.Evaluate(),
		Duration: time.Since(start),
		Moves:    moves,
	}, nil
}
