package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardCounts(t *testing.T) {
	t.Run("22 playable cells in sorted order", func(t *testing.T) {
		playable := PlayablePositions()
		require.Len(t, playable, 22)
		for i := 1; i < len(playable); i++ {
			require.True(t, playable[i-1].Less(playable[i]), "playable cells must be sorted")
		}
	})

	for _, variant := range []BoardVariant{Board1, Board2, Board3, Board4} {
		t.Run(variant.String(), func(t *testing.T) {
			g, err := NewGrid(variant)
			require.NoError(t, err)

			rim := 0
			for _, h := range AllPositions() {
				if _, ok := g.TileAt(h); ok {
					rim++
				}
			}
			require.Equal(t, 22, rim, "every variant pre-fills 22 rim tiles")
			require.Len(t, g.EmptyPositions(), 22)

			for _, pos := range GoalPositions {
				require.True(t, g.IsGoal(pos))
				require.False(t, g.IsPlayable(pos))
			}
		})
	}

	t.Run("cell classes partition the layout", func(t *testing.T) {
		g, err := NewGrid(Board1)
		require.NoError(t, err)
		require.Len(t, AllPositions(), 22+22+len(GoalPositions))
		for _, pos := range PlayablePositions() {
			require.True(t, g.IsPlayable(pos))
			require.True(t, g.IsEmpty(pos))
		}
	})
}
