package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"calico/bench"
	"calico/engine"
	"calico/game"
	"calico/record"
	"calico/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:   "calico",
		Short: "MCTS agent for the Calico tile-placement game",
	}
	root.AddCommand(playCmd(), scoreCmd(), replayCmd(), benchCmd())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func playCmd() *cobra.Command {
	var (
		board      int
		seed       uint64
		iterations int
		greedy     bool
		candidates int
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a full game with the agent and store its decision trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			state, err := game.NewGameState(game.BoardVariant(board), seed)
			if err != nil {
				return err
			}

			options := []searcher.Option{
				searcher.WithIterations(iterations),
				searcher.WithSeed(seed),
				searcher.WithMetrics(),
			}
			if greedy {
				options = append(options, searcher.WithGreedyRollout())
			}

			log.Info().Msgf("playing %s with seed %d, %d iterations per move",
				game.BoardVariant(board), seed, iterations)
			trace := engine.LocalEngine(state, searcher.NewMCTS(options...), candidates).Run()

			writer, err := record.NewWriter(outDir)
			if err != nil {
				return err
			}
			path, err := writer.WriteGame(trace)
			if err != nil {
				return err
			}
			log.Info().Msgf("stored game record at %s", path)
			return nil
		},
	}

	cmd.Flags().IntVar(&board, "board", 1, "board variant (1-4)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().IntVar(&iterations, "iterations", searcher.DefaultIterations, "MCTS iterations per move")
	cmd.Flags().BoolVar(&greedy, "greedy-rollout", false, "use greedy instead of random rollouts")
	cmd.Flags().IntVar(&candidates, "candidates", 5, "ranked alternatives to record per move")
	cmd.Flags().StringVar(&outDir, "out", "records", "directory for game records")
	return cmd
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <snapshot.json>",
		Short: "Evaluate a position snapshot without searching",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var snap game.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("failed to parse snapshot: %w", err)
			}
			state, err := game.FromSnapshot(snap, uint64(time.Now().UnixNano()))
			if err != nil {
				return err
			}
			return printJSON(cmd, state.Evaluate())
		},
	}
	return cmd
}

func replayCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "replay <record.json>",
		Short: "Re-evaluate a stored game record move by move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := record.Load(args[0])
			if err != nil {
				return err
			}
			breakdowns, err := record.Replay(g, seed)
			if err != nil {
				return err
			}
			for i, b := range breakdowns {
				fmt.Fprintf(cmd.OutOrStdout(), "move %d: %s -> %d points\n",
					i+1, g.Moves[i].Action, b.Total)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "final: %d points\n", g.Final.Total)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for bag reconstruction")
	return cmd
}

func benchCmd() *cobra.Command {
	var (
		board      int
		seed       uint64
		games      int
		iterations []int
		greedy     bool
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare search configurations over batches of games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var configs []bench.Config
			for _, n := range iterations {
				configs = append(configs, bench.Config{
					Name:       fmt.Sprintf("random-%d", n),
					Iterations: n,
				})
				if greedy {
					configs = append(configs, bench.Config{
						Name:       fmt.Sprintf("greedy-%d", n),
						Iterations: n,
						Greedy:     true,
					})
				}
			}

			runner := &bench.Runner{
				Board:   game.BoardVariant(board),
				Configs: configs,
				Games:   games,
				Seed:    seed,
			}
			start := time.Now().UTC()
			results, err := runner.Run()
			if err != nil {
				return err
			}
			end := time.Now().UTC()

			writer, err := bench.NewWriter(outDir)
			if err != nil {
				return err
			}
			if err := writer.WriteSetup(game.BoardVariant(board).String(), configs, games, start, end); err != nil {
				return err
			}
			if err := writer.WriteResults(results); err != nil {
				return err
			}
			for _, result := range results {
				if err := writer.WriteMoves(result); err != nil {
					return err
				}
			}
			log.Info().Msgf("stored bench results at %s", writer.BaseDir())
			return nil
		},
	}

	cmd.Flags().IntVar(&board, "board", 1, "board variant (1-4)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "base seed; game g plays seed+g")
	cmd.Flags().IntVar(&games, "games", 10, "games per configuration")
	cmd.Flags().IntSliceVar(&iterations, "iterations", []int{searcher.DefaultIterations}, "iteration budgets to compare")
	cmd.Flags().BoolVar(&greedy, "greedy", false, "also run a greedy-rollout variant per budget")
	cmd.Flags().StringVar(&outDir, "out", "bench", "directory for bench results")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
