package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, variant BoardVariant) *Grid {
	t.Helper()
	g, err := NewGrid(variant)
	require.NoError(t, err)
	return g
}

func place(t *testing.T, g *Grid, q, r int, c Color, p Pattern) {
	t.Helper()
	require.NoError(t, g.Place(NewHex(q, r), Tile{Color: c, Pattern: p}))
}

func TestCatCluster(t *testing.T) {
	millie := Millie()
	millie.Patterns = [2]Pattern{Dots, Stripes}

	t.Run("no tiles placed scores zero", func(t *testing.T) {
		g := mustGrid(t, Board1)
		score, groups, _ := millie.Evaluate(g)
		require.Zero(t, score)
		require.Empty(t, groups)
	})

	t.Run("two touching tiles is progress, not score", func(t *testing.T) {
		g := mustGrid(t, Board1)
		place(t, g, 0, 0, Blue, Dots)
		place(t, g, 1, 0, Green, Dots)

		score, groups, reasons := millie.Evaluate(g)
		require.Zero(t, score)
		require.Empty(t, groups)
		require.Contains(t, strings.Join(reasons, "\n"), "2/3")
	})

	t.Run("completed cluster of 3 scores once", func(t *testing.T) {
		g := mustGrid(t, Board1)
		place(t, g, 0, 0, Blue, Dots)
		place(t, g, 1, 0, Green, Dots)
		place(t, g, 2, -1, Pink, Dots)

		score, groups, reasons := millie.Evaluate(g)
		require.Equal(t, 3, score)
		require.Len(t, groups, 1)
		joined := strings.Join(reasons, "\n")
		require.Contains(t, joined, "Millie")
		require.Contains(t, joined, "3/3")
	})

	t.Run("wrong pattern never scores", func(t *testing.T) {
		g := mustGrid(t, Board1)
		place(t, g, 0, 0, Blue, Clubs)
		place(t, g, 1, 0, Green, Clubs)
		place(t, g, 2, -1, Pink, Clubs)

		score, _, _ := millie.Evaluate(g)
		require.Zero(t, score)
	})
}

func TestCatLines(t *testing.T) {
	t.Run("Rumi scores a line of 3", func(t *testing.T) {
		rumi := Rumi()
		rumi.Patterns = [2]Pattern{Swirls, Clubs}

		g := mustGrid(t, Board1)
		place(t, g, -1, 0, Blue, Swirls)
		place(t, g, 0, 0, Green, Swirls)
		place(t, g, 1, 0, Pink, Swirls)

		score, groups, _ := rumi.Evaluate(g)
		require.Equal(t, 5, score)
		require.Len(t, groups, 1)
	})

	t.Run("Tibbit scores a line of 4", func(t *testing.T) {
		tibbit := Tibbit()
		tibbit.Patterns = [2]Pattern{Clubs, Dots}

		g := mustGrid(t, Board1)
		place(t, g, -3, 2, Blue, Clubs)
		place(t, g, -2, 2, Green, Clubs)
		place(t, g, -1, 2, Pink, Clubs)
		place(t, g, 0, 2, Teal, Clubs)

		score, groups, _ := tibbit.Evaluate(g)
		require.Equal(t, 8, score)
		require.Len(t, groups, 1)
	})

	t.Run("Leo scores a line of 5 and reports partial progress at 4", func(t *testing.T) {
		leo := Leo()
		leo.Patterns = [2]Pattern{Swirls, Dots}

		g := mustGrid(t, Board1)
		place(t, g, -2, 0, Blue, Swirls)
		place(t, g, -1, 0, Green, Swirls)
		place(t, g, 0, 0, Pink, Swirls)
		place(t, g, 1, 0, Teal, Swirls)

		score, _, reasons := leo.Evaluate(g)
		require.Zero(t, score)
		require.Contains(t, strings.Join(reasons, "\n"), "4/5")

		place(t, g, 2, 0, Yellow, Swirls)
		score, groups, reasons := leo.Evaluate(g)
		require.Equal(t, 11, score)
		require.Len(t, groups, 1)
		require.Contains(t, strings.Join(reasons, "\n"), "5/5")
	})

	t.Run("a tile cannot serve two groups of the same cat", func(t *testing.T) {
		rumi := Rumi()
		rumi.Patterns = [2]Pattern{Swirls, Clubs}

		// Five in a row holds only one disjoint non-touching 3-line.
		g := mustGrid(t, Board1)
		place(t, g, -2, 0, Blue, Swirls)
		place(t, g, -1, 0, Green, Swirls)
		place(t, g, 0, 0, Pink, Swirls)
		place(t, g, 1, 0, Teal, Swirls)
		place(t, g, 2, 0, Yellow, Swirls)

		score, groups, _ := rumi.Evaluate(g)
		require.Equal(t, 5, score)
		require.Len(t, groups, 1)
	})
}
