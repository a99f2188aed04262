package mcts

import (
	"time"

	"github.com/kestrelgames/dodo/game"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// Driver runs MCTS iterations against a single search tree. Unlike the
// teacher's concurrent arena, a Driver is never shared between goroutines:
// a Dodo search tree has exactly one reader/writer (SPEC_FULL.md's
// Concurrency & Resource Model), so none of its fields are mutex-guarded.
type Driver struct {
	Config Config
	rng    *rand.Rand
}

// NewDriver builds a driver seeded from seed. A fixed seed makes the
// iteration sequence, expansion order and chosen action fully
// deterministic; the rollout's random choices are the only source of
// variation, and they are drawn from this same rng.
func NewDriver(cfg Config, seed uint64) *Driver {
	return &Driver{
		Config: cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Outcome is the result of a single best-action search.
type Outcome struct {
	Child            *Node
	Iterations       int
	MeanRolloutLength float64
	HasMeanLength     bool
}

// BestAction runs MCTS iterations rooted at root until budget elapses or
// the configured iteration ceiling is reached, then returns the
// highest-visit-count child (the robust-child rule) along with the mean
// rollout length observed across this invocation.
//
// If root is already terminal, or budget is non-positive, BestAction runs
// zero iterations and returns a zero-value Outcome with HasMeanLength
// false and a nil Child; callers must treat a nil Child as "no move".
func (d *Driver) BestAction(root *Node, budget time.Duration) Outcome {
	if root.IsTerminal() || budget <= 0 {
		return Outcome{}
	}

	deadline := time.Now().Add(budget)
	lengths := make([]float64, 0, 256)

	iterations := 0
	for time.Now().Before(deadline) {
		if d.Config.MaxIterations > 0 && iterations >= d.Config.MaxIterations {
			break
		}
		length := d.iterate(root)
		lengths = append(lengths, float64(length))
		iterations++
	}

	outcome := Outcome{Iterations: iterations}
	if len(lengths) > 0 {
		outcome.MeanRolloutLength = stat.Mean(lengths, nil)
		outcome.HasMeanLength = true
	}
	if len(root.Children()) > 0 {
		outcome.Child = root.RobustChild()
	}
	return outcome
}

// iterate runs one selection-expansion-simulation-backpropagation pass
// from root and returns the rollout length (number of plies played during
// the random-rollout phase).
func (d *Driver) iterate(root *Node) int {
	leaf := d.treePolicy(root)
	reward, length := d.rollout(leaf, root.rootPlayer)
	leaf.Backpropagate(reward)
	return length
}

// treePolicy descends from node, expanding the first non-fully-expanded
// node it reaches, or descending by best_child through fully-expanded
// ones, until it reaches a terminal node or a freshly-expanded child.
func (d *Driver) treePolicy(node *Node) *Node {
	current := node
	for !current.IsTerminal() {
		if !current.IsFullyExpanded() {
			return current.Expand()
		}
		current = current.BestChild(d.Config.P)
	}
	return current
}

// rollout plays uniform-random legal actions from leaf's state until a
// terminal state is reached, and scores the result from rootPlayer's
// perspective: +1 if rootPlayer wins, -1 otherwise. Dodo has no draws.
func (d *Driver) rollout(leaf *Node, rootPlayer game.Player) (reward int, length int) {
	state := leaf.State()
	for !state.IsTerminal() {
		actions := state.LegalActions()
		action := actions[d.rng.Intn(len(actions))]
		state = state.Move(action)
		length++
	}
	if state.Winner() == rootPlayer {
		return 1, length
	}
	return -1, length
}
