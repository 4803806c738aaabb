package searcher

import (
	"sort"

	"golang.org/x/exp/rand"

	"calico/game"
)

type Option func(m *MCTS)

// MCTS recommends tile placements by Monte-Carlo tree search over
// cloned game states. One Recommend call is synchronous and
// single-threaded: it runs its iteration budget to completion and
// returns ranked candidates. With a fixed seed the outcome is
// reproducible.
type MCTS struct {
	iterations  int
	exploration float64
	cutoff      int
	greedy      bool
	rng         *rand.Rand
	metrics     MetricsCollector
}

// WithIterations sets the iteration budget, clamped to the supported
// range.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations < MinIterations {
			iterations = MinIterations
		}
		if iterations > MaxIterations {
			iterations = MaxIterations
		}
		m.iterations = iterations
	}
}

// WithExploration sets the UCT exploration constant C.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithRolloutDepth caps how many moves a rollout plays before the
// position is scored as-is.
func WithRolloutDepth(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithSeed pins the search's random source for reproducible outcomes.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGreedyRollout plays rollouts by the action with the best
// immediate score instead of uniformly at random. Slower, stronger.
func WithGreedyRollout() Option {
	return func(m *MCTS) {
		m.greedy = true
	}
}

// WithMetrics collects per-search metrics.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		cutoff:      DefaultRolloutDepth,
		rng:         rand.New(rand.NewSource(rand.Uint64())),
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Candidate is one ranked recommendation: the action, its search
// statistics, and a score breakdown of the concrete position reached by
// applying the action to the root state once.
type Candidate struct {
	Action    game.Action         `json:"action"`
	Visits    int                 `json:"visits"`
	AvgScore  float64             `json:"avg_score"`
	Breakdown game.ScoreBreakdown `json:"breakdown"`
}

// Recommend searches from state and returns the top candidates ranked
// by visit count, the standard MCTS robustness criterion. A terminal
// state yields an empty list.
func (m *MCTS) Recommend(state *game.GameState, nCandidates int) ([]Candidate, SearchMetrics) {
	m.metrics.Start()

	tree := newArena(m.iterations + 1)
	root := tree.addRoot(state)
	if tree.at(root).terminal {
		return nil, m.metrics.Complete()
	}

	for i := 0; i < m.iterations; i++ {
		m.simulate(tree, root, state)
		m.metrics.AddIteration()
	}

	children := append([]int32(nil), tree.at(root).children...)
	sort.SliceStable(children, func(i, j int) bool {
		return tree.at(children[i]).visits > tree.at(children[j]).visits
	})
	if nCandidates > 0 && len(children) > nCandidates {
		children = children[:nCandidates]
	}

	candidates := make([]Candidate, 0, len(children))
	for _, id := range children {
		n := tree.at(id)
		avg := 0.0
		if n.visits > 0 {
			avg = n.rewards / float64(n.visits)
		}
		candidates = append(candidates, Candidate{
			Action:    n.action,
			Visits:    n.visits,
			AvgScore:  avg,
			Breakdown: preview(state, n.action),
		})
	}
	return candidates, m.metrics.Complete()
}

// simulate runs one full selection, expansion, rollout and
// backpropagation pass. Every iteration works on its own clone of the
// root state, so each pass samples an independent plausible future of
// the hidden bag order.
func (m *MCTS) simulate(tree *arena, root int32, rootState *game.GameState) {
	state := rootState.Copy()
	id := root

	// Selection: descend through fully expanded nodes by UCT.
	for !tree.at(id).terminal && len(tree.at(id).untried) == 0 {
		id = tree.bestChild(id, m.exploration)
		mustApply(state, tree.at(id).action)
	}

	// Expansion: try the next untried action in legal order.
	if n := tree.at(id); !n.terminal && len(n.untried) > 0 {
		action := n.untried[0]
		n.untried = n.untried[1:]
		mustApply(state, action)
		id = tree.add(id, action, state)
	}

	reward := m.rollout(state)

	// Backpropagation: one scalar, no discounting; game length is
	// bounded and the score is terminal-state-only.
	for id != noParent {
		n := tree.at(id)
		n.visits++
		n.rewards += reward
		id = n.parent
	}
}

// rollout plays forward to a terminal state or the depth cap, then
// scores the resulting position.
func (m *MCTS) rollout(state *game.GameState) float64 {
	for depth := 0; depth < m.cutoff; depth++ {
		actions := state.LegalActions()
		if len(actions) == 0 {
			m.metrics.AddFullPlayout()
			break
		}
		var action game.Action
		if m.greedy {
			action = m.greedyAction(state, actions)
		} else {
			action = actions[m.rng.Intn(len(actions))]
		}
		mustApply(state, action)
	}
	return float64(state.Evaluate().Total)
}

// greedyAction picks the action with the highest immediate score after
// applying it. Ties keep the earliest action in legal order.
func (m *MCTS) greedyAction(state *game.GameState, actions []game.Action) game.Action {
	best := actions[0]
	bestScore := -1
	for _, action := range actions {
		probe := state.Copy()
		mustApply(probe, action)
		if score := probe.Evaluate().Total; score > bestScore {
			bestScore = score
			best = action
		}
	}
	return best
}

// preview grounds a candidate's reasons in one concrete position: the
// root state with the candidate action applied, not an average over
// rollouts.
func preview(state *game.GameState, action game.Action) game.ScoreBreakdown {
	probe := state.Copy()
	mustApply(probe, action)
	return probe.Evaluate()
}

// mustApply panics on failure: the searcher only ever plays actions it
// enumerated as legal, so an error here is a contract violation and a
// silently-corrupted tree would produce misleading recommendations.
func mustApply(state *game.GameState, action game.Action) {
	if err := state.Apply(action); err != nil {
		panic("searcher applied an illegal action: " + err.Error())
	}
}
