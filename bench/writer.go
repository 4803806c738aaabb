package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Setup documents what a batch compared, written alongside its results.
type Setup struct {
	Board     string        `json:"board"`
	Configs   []Config      `json:"configs"`
	NumGames  int           `json:"numGames"` // per config
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

// Writer stores one batch's setup and results in a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(board string, configs []Config, numGames int, start, end time.Time) error {
	setup := Setup{
		Board:     board,
		Configs:   configs,
		NumGames:  numGames,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}

	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

// WriteResults persists one summary row per finished game.
func (w *Writer) WriteResults(results []GameResult) error {
	path := filepath.Join(w.baseDir, "results.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"config", "game", "seed", "turns", "total", "cats", "goals", "buttons", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Config,
			strconv.Itoa(r.Game),
			strconv.FormatUint(r.Seed, 10),
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.Score.Total),
			strconv.Itoa(r.Score.CatScore),
			strconv.Itoa(r.Score.GoalScore),
			strconv.Itoa(r.Score.ButtonScore),
			r.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// WriteMoves persists one game's per-move search metrics.
func (w *Writer) WriteMoves(result GameResult) error {
	filename := fmt.Sprintf("%s-game%d.csv", result.Config, result.Game)
	path := filepath.Join(w.baseDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file for game %d: %w", result.Game, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"turn", "duration", "iterations", "fullPlayouts"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write metrics header: %w", err)
	}
	for _, mv := range result.Moves {
		row := []string{
			strconv.Itoa(mv.Turn),
			mv.Duration.String(),
			strconv.FormatInt(mv.Iterations, 10),
			strconv.FormatInt(mv.FullPlayouts, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write metric: %w", err)
		}
	}
	return nil
}
