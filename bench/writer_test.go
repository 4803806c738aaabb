package bench

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"calico/game"
	"calico/searcher"
)

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	configs := []Config{
		{Name: "random-1000", Iterations: 1000},
		{Name: "greedy-1000", Iterations: 1000, Greedy: true},
	}
	start := time.Now().UTC()
	require.NoError(t, w.WriteSetup(game.Board1.String(), configs, 3, start, start.Add(time.Minute)))

	data, err := os.ReadFile(filepath.Join(w.BaseDir(), "setup.json"))
	require.NoError(t, err)
	var setup Setup
	require.NoError(t, json.Unmarshal(data, &setup))
	require.Equal(t, configs, setup.Configs)
	require.Equal(t, 3, setup.NumGames)
	require.Equal(t, time.Minute, setup.Duration)

	result := GameResult{
		Config:   "random-1000",
		Game:     0,
		Seed:     42,
		Turns:    22,
		Score:    game.ScoreBreakdown{Total: 47, CatScore: 19, GoalScore: 13, ButtonScore: 15},
		Duration: 3 * time.Second,
		Moves: []MoveMetrics{
			{Turn: 0, SearchMetrics: searcher.SearchMetrics{Iterations: 1000, FullPlayouts: 980}},
			{Turn: 1, SearchMetrics: searcher.SearchMetrics{Iterations: 1000, FullPlayouts: 1000}},
		},
	}
	require.NoError(t, w.WriteResults([]GameResult{result}))
	require.NoError(t, w.WriteMoves(result))

	f, err := os.Open(filepath.Join(w.BaseDir(), "results.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"random-1000", "0", "42", "22", "47", "19", "13", "15", "3s"}, rows[1])

	f2, err := os.Open(filepath.Join(w.BaseDir(), "random-1000-game0.csv"))
	require.NoError(t, err)
	defer f2.Close()
	moveRows, err := csv.NewReader(f2).ReadAll()
	require.NoError(t, err)
	require.Len(t, moveRows, 3)
	require.Equal(t, []string{"1", "0s", "1000", "1000"}, moveRows[2])
}
