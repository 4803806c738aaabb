package searcher

// Hyperparameters for MCTS

// Iteration budget per search call.
const (
	DefaultIterations = 1000
	MinIterations     = 250
	MaxIterations     = 5000
)

// DefaultExploration is the UCT exploration constant C, ~sqrt(2).
const DefaultExploration = 1.4

// DefaultRolloutDepth caps a rollout at one full board of placements;
// games are bounded so this is effectively "play to the end".
const DefaultRolloutDepth = 22
