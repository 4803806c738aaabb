package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"calico/game"
)

func TestArena(t *testing.T) {
	state, err := game.NewGameState(game.Board1, 3)
	require.NoError(t, err)

	tree := newArena(8)
	root := tree.addRoot(state)
	require.Equal(t, int32(noParent), tree.at(root).parent)
	require.False(t, tree.at(root).terminal)
	require.Equal(t, state.LegalActions(), tree.at(root).untried)

	action := tree.at(root).untried[0]
	tree.at(root).untried = tree.at(root).untried[1:]
	child := tree.add(root, action, state)
	require.Equal(t, root, tree.at(child).parent)
	require.Equal(t, []int32{child}, tree.at(root).children)
	require.Equal(t, action, tree.at(child).action)
}

func TestBestChildPrefersUnvisited(t *testing.T) {
	state, err := game.NewGameState(game.Board1, 3)
	require.NoError(t, err)

	tree := newArena(8)
	root := tree.addRoot(state)
	tree.at(root).visits = 2

	actions := state.LegalActions()
	a := tree.add(root, actions[0], state)
	b := tree.add(root, actions[1], state)

	tree.at(a).visits = 1
	tree.at(a).rewards = 40
	require.Equal(t, b, tree.bestChild(root, DefaultExploration),
		"an unvisited child always wins selection")

	tree.at(b).visits = 1
	tree.at(b).rewards = 10
	require.Equal(t, a, tree.bestChild(root, DefaultExploration),
		"equal exploration terms leave the higher average")
}

func TestUCT(t *testing.T) {
	logN := math.Log(100)
	require.InDelta(t, 50.0+1.4*math.Sqrt(logN/10), uct(500, 10, 1.4, logN), 1e-9)

	// Exploitation only.
	require.InDelta(t, 50.0, uct(500, 10, 0, logN), 1e-9)

	require.Panics(t, func() { uct(0, 0, 1.4, logN) })
}
