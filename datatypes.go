package dodo

import (
	"bytes"
	"io"
	"log"

	"github.com/kestrelgames/dodo/game"
	"github.com/kestrelgames/dodo/mcts"
)

// Config bundles the knobs a harness supplies to Initialize: board size,
// the agent's total time budget, and the three exploration/allocation
// constants of the agent interface.
type Config struct {
	BoardSize int
	TotalTime float64 // seconds

	// C is the exploration constant reserved by the agent interface. It is
	// not read by the search: only P is passed to the driver.
	C float64
	// P is the UCT exploration constant used by the search driver.
	P float64
	// F scales how aggressively select_best_move spends time_left against
	// the running mean game length.
	F float64

	// Seed seeds the search driver's rollout RNG. Zero means "derive one
	// from the wall clock", matching the teacher's own use of
	// rand.NewSource(time.Now().UnixNano()); callers wanting a
	// deterministic tree (tests, reproducible analysis) pass a non-zero
	// value explicitly.
	Seed uint64
}

// Placement pairs a board cell with the player occupying it, the wire
// shape a harness exchanges state in.
type Placement = game.Placement

// Outcome is the result handed back to the harness by SelectBestMove.
type Outcome struct {
	Action game.Action
	NoMove bool

	Iterations        int
	MeanRolloutLength float64
	ElapsedSeconds    float64
}

// Agent plays one side of a Dodo game via a persistent search tree. An
// Agent is single-threaded: its root node is exclusively owned and never
// shared with another goroutine (see the Concurrency section this package
// mirrors from its search tree's own driver).
type Agent struct {
	player   game.Player
	opponent game.Player

	root     *mcts.Node
	driver   *mcts.Driver
	config   Config

	previousMeanGameLength float64

	buf    bytes.Buffer
	logger *log.Logger
}

// Player returns the side this agent plays.
func (a *Agent) Player() game.Player { return a.player }

// Root exposes the agent's current search-tree root, mainly for
// diagnostics (mcts.DumpDOT) and tests.
func (a *Agent) Root() *mcts.Node { return a.root }

// Log writes the agent's buffered per-search log into w, mirroring the
// teacher's Arena.Log.
func (a *Agent) Log(w io.Writer) {
	w.Write(a.buf.Bytes())
}
