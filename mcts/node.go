package mcts

import (
	"math"

	"github.com/kestrelgames/dodo/game"
)

// Node is a single vertex of the search tree. Node identity is a plain Go
// pointer: there is no arena or free-list indirection, because a single
// Dodo search tree is owned by exactly one goroutine and explored to only
// 10^3-10^4 nodes per move (see SPEC_FULL.md's Lifecycles and Concurrency
// sections) -- far below the scale that justifies the teacher's slab
// allocator. Promoting a child to root simply drops the reference to its
// parent and siblings; the garbage collector reclaims the rest.
type Node struct {
	state *game.State

	parent  *Node
	action  game.Action // the edge label from parent to this node
	hasEdge bool        // false only for a tree's root

	children []*Node
	untried  []game.Action

	visits  int
	tallies map[int]int // keyed by +1 (win) / -1 (loss), from rootPlayer's POV

	rootPlayer game.Player
}

// NewRoot wraps state as the root of a fresh search tree owned by
// rootPlayer. rootPlayer never changes for the lifetime of the tree: it is
// the perspective every node's Q() is measured from.
func NewRoot(state *game.State, rootPlayer game.Player) *Node {
	return newNode(state, rootPlayer, nil, game.Action{}, false)
}

func newNode(state *game.State, rootPlayer game.Player, parent *Node, action game.Action, hasEdge bool) *Node {
	legal := state.LegalActions()
	// LIFO frontier: untried pops from the end, so fix the order as the
	// reverse of the legal-action list to keep expansion deterministic.
	untried := make([]game.Action, len(legal))
	for i, a := range legal {
		untried[len(legal)-1-i] = a
	}
	return &Node{
		state:      state,
		parent:     parent,
		action:     action,
		hasEdge:    hasEdge,
		untried:    untried,
		tallies:    map[int]int{1: 0, -1: 0},
		rootPlayer: rootPlayer,
	}
}

// State returns the game state this node owns.
func (n *Node) State() *game.State { return n.state }

// Parent returns the node's parent, or nil at a tree root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's expanded children. Callers must not mutate
// the returned slice.
func (n *Node) Children() []*Node { return n.children }

// Action returns the edge action from the parent that produced this node.
// Only meaningful when HasEdge is true.
func (n *Node) Action() game.Action { return n.action }

// HasEdge reports whether Action() is meaningful (false only for a tree's root).
func (n *Node) HasEdge() bool { return n.hasEdge }

// Q returns wins minus losses from the root player's perspective.
func (n *Node) Q() int { return n.tallies[1] - n.tallies[-1] }

// N returns the visit count.
func (n *Node) N() int { return n.visits }

// IsTerminal reports whether this node's state has no legal action.
func (n *Node) IsTerminal() bool { return n.state.IsTerminal() }

// IsFullyExpanded reports whether every legal action from this node's state
// has a corresponding child.
func (n *Node) IsFullyExpanded() bool { return len(n.untried) == 0 }

// ClearParent detaches n from its parent, making it a new tree root. Used
// when the agent advances its tree across a move; the old parent and any
// untaken siblings become unreachable and are reclaimed by the GC.
func (n *Node) ClearParent() {
	n.parent = nil
	n.hasEdge = false
}

// Expand materializes the next untried action into a fresh child node,
// removes it from the frontier, and returns the child. Callers must check
// IsFullyExpanded first; the tree policy always does.
func (n *Node) Expand() *Node {
	last := len(n.untried) - 1
	action := n.untried[last]
	n.untried = n.untried[:last]

	child := newNode(n.state.Move(action), n.rootPlayer, n, action, true)
	n.children = append(n.children, child)
	return child
}

// BestChild selects the child that maximises the UCT score
//
//	Q(c)/N(c) + p * sqrt(2 * ln(N(self)) / N(c))
//
// in double precision. Ties resolve to the first maximiser encountered.
// Precondition: at least one child exists and every child has N() > 0,
// guaranteed by the search loop always rolling out and backpropagating a
// freshly expanded child before it can be reached again via BestChild.
func (n *Node) BestChild(p float64) *Node {
	lnSelf := math.Log(float64(n.visits))

	scores := make([]float64, len(n.children))
	for i, c := range n.children {
		scores[i] = float64(c.Q())/float64(c.N()) + p*math.Sqrt(2*lnSelf/float64(c.N()))
	}
	return n.children[argmaxFloat64(scores)]
}

// RobustChild selects the child with the highest visit count, breaking
// ties by larger Q and then by first occurrence.
func (n *Node) RobustChild() *Node {
	best := n.children[0]
	for _, c := range n.children[1:] {
		switch {
		case c.N() > best.N():
			best = c
		case c.N() == best.N() && c.Q() > best.Q():
			best = c
		}
	}
	return best
}

// Backpropagate walks parent links from n up to and including the root,
// incrementing the visit count and adding result to the matching tally at
// every node on the path. result must be +1 or -1.
func (n *Node) Backpropagate(result int) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		cur.tallies[result]++
	}
}

// FindChild returns the child reached by action, or nil if none has been
// expanded for it yet.
func (n *Node) FindChild(action game.Action) *Node {
	for _, c := range n.children {
		if c.action == action {
			return c
		}
	}
	return nil
}

// HasUntried reports whether action is still in the untried frontier.
// The agent uses this to decide whether the opponent's observed move
// needs a fresh child or already has one.
func (n *Node) HasUntried(action game.Action) bool {
	for _, a := range n.untried {
		if a == action {
			return true
		}
	}
	return false
}

// ExpandAction materializes the child for a specific untried action,
// removing it from the frontier regardless of its LIFO position. Used by
// the agent to splice an opponent's observed move into the tree instead of
// drawing from the frontier in expansion order. Panics if action is not in
// the untried frontier.
func (n *Node) ExpandAction(action game.Action) *Node {
	for i, a := range n.untried {
		if a == action {
			n.untried = append(n.untried[:i], n.untried[i+1:]...)
			child := newNode(n.state.Move(action), n.rootPlayer, n, action, true)
			n.children = append(n.children, child)
			return child
		}
	}
	panic(&untriedActionNotFoundError{action: action})
}

type untriedActionNotFoundError struct {
	action game.Action
}

func (e *untriedActionNotFoundError) Error() string {
	return "action not found in untried frontier"
}
