package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestButtons(t *testing.T) {
	t.Run("empty board earns no buttons", func(t *testing.T) {
		g := mustGrid(t, Board1)
		total, reasons := EvaluateButtons(g)
		require.Zero(t, total)
		require.Empty(t, reasons)
	})

	t.Run("three connected same-color tiles earn one button", func(t *testing.T) {
		g := mustGrid(t, Board1)
		place(t, g, 0, 0, Blue, Dots)
		place(t, g, 1, 0, Blue, Stripes)
		place(t, g, 2, -1, Blue, Flowers)

		total, reasons := EvaluateButtons(g)
		require.Equal(t, ButtonPoints, total)
		require.Contains(t, strings.Join(reasons, "\n"), "Blue button x1")
	})

	t.Run("touching groups of one color earn a single button", func(t *testing.T) {
		g := mustGrid(t, Board1)
		place(t, g, -3, 2, Blue, Dots)
		place(t, g, -2, 2, Blue, Stripes)
		place(t, g, -1, 2, Blue, Flowers)
		place(t, g, 0, 2, Blue, Leaves)

		total, _ := EvaluateButtons(g)
		require.Equal(t, ButtonPoints, total)
	})

	t.Run("rainbow bonus with a button of every color", func(t *testing.T) {
		g := mustGrid(t, Board1)
		clusters := map[Color][3]Hex{
			Pink:   {NewHex(2, 0), NewHex(3, -1), NewHex(2, -1)},
			Blue:   {NewHex(1, -2), NewHex(1, -3), NewHex(0, -2)},
			Green:  {NewHex(-1, -1), NewHex(-2, 0), NewHex(-3, 1)},
			Yellow: {NewHex(-3, 2), NewHex(-2, 2), NewHex(-1, 2)},
			Purple: {NewHex(-2, 3), NewHex(-1, 3), NewHex(0, 2)},
			Teal:   {NewHex(0, 0), NewHex(1, 0), NewHex(1, 1)},
		}
		for c, cells := range clusters {
			for i, pos := range cells {
				require.NoError(t, g.Place(pos, Tile{Color: c, Pattern: Pattern(i)}))
			}
		}

		total, reasons := EvaluateButtons(g)
		require.GreaterOrEqual(t, total, NumColors*ButtonPoints+RainbowButtonPoints)
		require.Contains(t, strings.Join(reasons, "\n"), "Rainbow")
	})
}
