package dodo

import (
	"bytes"
	"log"
	"time"

	"github.com/kestrelgames/dodo/game"
	"github.com/kestrelgames/dodo/mcts"
	"github.com/pkg/errors"
)

// Initialize validates the harness-supplied board, builds its neighbor
// tables, constructs the starting game state (side to move always R,
// regardless of which side player is), and wraps it in a fresh search
// tree owned by player.
func Initialize(cfg Config, placements []Placement, player game.Player) (*Agent, error) {
	neighbors := game.NewNeighborTables(cfg.BoardSize)
	occupancy, err := game.ValidateOccupancy(cfg.BoardSize, placements, neighbors)
	if err != nil {
		return nil, errors.WithMessage(err, "initialize: invalid board")
	}

	state := game.New(occupancy, game.R, neighbors)

	a := &Agent{
		player:                 player,
		opponent:               player.Opponent(),
		root:                   mcts.NewRoot(state, player),
		config:                 cfg,
		previousMeanGameLength: cfg.TotalTime,
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = newSeed()
	}
	a.driver = mcts.NewDriver(mcts.Config{P: cfg.P}, seed)
	a.logger = log.New(&a.buf, "", log.Ltime)
	return a, nil
}

// UpdateState reconciles an externally-observed board with the agent's
// current root. The opponent's move is identified as the unique legal
// action of the root for which the source cell became empty and the
// destination cell now holds the opponent. If no such action exists among
// the root's legal actions, this is a protocol error and the agent
// refuses to proceed.
func (a *Agent) UpdateState(observed map[game.Cell]game.Player) error {
	var played *game.Action
	for _, action := range a.root.State().LegalActions() {
		if observed[action.Src] == game.Empty && observed[action.Dst] == a.opponent {
			action := action
			played = &action
			break
		}
	}
	if played == nil {
		return errors.New("update_state: no legal action matches the observed board delta")
	}

	var next *mcts.Node
	if a.root.HasUntried(*played) {
		next = a.root.ExpandAction(*played)
	} else {
		next = a.root.FindChild(*played)
		if next == nil {
			return errors.Errorf("update_state: action %v neither untried nor already expanded", *played)
		}
	}
	next.ClearParent()
	a.root = next
	return nil
}

// SelectBestMove allocates this move's time slice as
// f * time_left / previous_mean_game_length, runs the search driver, and
// advances the tree root to the returned child. It returns the edge
// action of the new root, or NoMove if the current root is already
// terminal (game-over).
func (a *Agent) SelectBestMove(timeLeft float64) Outcome {
	budget := a.config.F * timeLeft / a.previousMeanGameLength
	start := time.Now()
	outcome := a.driver.BestAction(a.root, time.Duration(budget*float64(time.Second)))
	elapsed := time.Since(start)

	if outcome.Child == nil {
		a.logger.Printf("search: root terminal or zero budget, no move (budget=%.3fs)\n", budget)
		return Outcome{NoMove: true, ElapsedSeconds: elapsed.Seconds()}
	}

	if outcome.HasMeanLength {
		a.previousMeanGameLength = outcome.MeanRolloutLength
	}
	a.logger.Printf(
		"search: alloc=%.3fs elapsed=%s iterations=%d mean_rollout=%.2f action=%v\n",
		budget, elapsed, outcome.Iterations, outcome.MeanRolloutLength, outcome.Child.Action(),
	)

	action := outcome.Child.Action()
	outcome.Child.ClearParent()
	a.root = outcome.Child
	return Outcome{
		Action:            action,
		Iterations:        outcome.Iterations,
		MeanRolloutLength: outcome.MeanRolloutLength,
		ElapsedSeconds:    elapsed.Seconds(),
	}
}

// DumpDOT writes the agent's live search tree to w as a Graphviz DOT
// graph, for offline inspection. Never called from inside a search.
func (a *Agent) DumpDOT(w *bytes.Buffer) error {
	return mcts.DumpDOT(a.root, w)
}

func newSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
