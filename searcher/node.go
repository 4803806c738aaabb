package searcher

import (
	"math"

	"calico/game"
)

// The tree lives in an arena: a dense slice of nodes addressed by
// index. Parent links are indices, never owning pointers, so there are
// no reference cycles and discarding the whole search discards the tree.

const noParent = -1

type node struct {
	parent   int32
	action   game.Action // action that led here from parent
	children []int32
	untried  []game.Action
	visits   int
	rewards  float64
	terminal bool
}

type arena struct {
	nodes []node
}

func newArena(capacity int) *arena {
	return &arena{nodes: make([]node, 0, capacity)}
}

// addRoot seeds the arena from the search's start state.
func (a *arena) addRoot(state *game.GameState) int32 {
	return a.add(noParent, game.Action{}, state)
}

// add appends a node for the position reached by action, recording its
// untried actions in the state's deterministic legal order.
func (a *arena) add(parent int32, action game.Action, state *game.GameState) int32 {
	n := node{
		parent:  parent,
		action:  action,
		untried: state.LegalActions(),
	}
	n.terminal = len(n.untried) == 0
	a.nodes = append(a.nodes, n)
	id := int32(len(a.nodes) - 1)
	if parent != noParent {
		a.nodes[parent].children = append(a.nodes[parent].children, id)
	}
	return id
}

func (a *arena) at(id int32) *node {
	return &a.nodes[id]
}

// bestChild returns the child maximizing UCT. Children are stored in
// expansion order, which follows the deterministic action order, so
// ties resolve reproducibly.
func (a *arena) bestChild(id int32, exploration float64) int32 {
	n := a.at(id)
	if n.visits == 0 {
		panic("selecting child of unvisited node")
	}
	logN := math.Log(float64(n.visits))

	best := int32(-1)
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		c := a.at(child)
		if c.visits == 0 {
			return child
		}
		score := uct(c.rewards, c.visits, exploration, logN)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	if best < 0 {
		panic("node has no children to select")
	}
	return best
}

// uct is avg + C * sqrt(ln(N) / n).
func uct(rewards float64, visits int, exploration, logParentVisits float64) float64 {
	if visits == 0 {
		panic("cannot compute UCT: 0 visits")
	}
	n := float64(visits)
	return rewards/n + exploration*math.Sqrt(logParentVisits/n)
}
