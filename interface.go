// Package dodo is the decision-making core of a Dodo-playing agent: a
// time-budgeted Monte Carlo Tree Search engine over an immutable hex-grid
// game-state model, coupled to a per-move time-allocation policy driven
// by observed rollout lengths.
//
// The package intentionally exposes a narrow surface -- Initialize,
// Strategy, NewState and FinalResult -- so that a tournament harness,
// CLI, or self-play runner never needs to reach past it into the game or
// mcts packages.
package dodo

import "github.com/kestrelgames/dodo/game"

// Strategy asks agent to pick its next move given the externally-observed
// board and the time left on the clock, in seconds. It first reconciles
// the agent's tree with observed via UpdateState (skipped when observed
// still equals the agent's root, as on the opening side's first call),
// then calls SelectBestMove.
//
// Strategy returns ok=false when the agent has no move: either the
// position at the agent's root is terminal (under Dodo's misere rule the
// side that cannot move wins), or timeLeft yields a non-positive search
// budget.
func Strategy(agent *Agent, observed map[game.Cell]game.Player, timeLeft float64) (action game.Action, ok bool, err error) {
	if agent.root.State().IsTerminal() {
		return game.Action{}, false, nil
	}

	// Skip reconciliation when observed still matches the agent's own
	// root exactly: this is the agent's very first move of the game (the
	// side that opens has no opponent move to splice in yet).
	if !occupancyEqual(agent.root.State().DenseOccupancy(), observed) {
		if err := agent.UpdateState(observed); err != nil {
			return game.Action{}, false, err
		}
	}

	outcome := agent.SelectBestMove(timeLeft)
	if outcome.NoMove {
		return game.Action{}, false, nil
	}
	return outcome.Action, true, nil
}

// NewState applies action, taken by player, to observed and returns the
// updated external board representation. It mirrors the harness-side
// bookkeeping a tournament driver performs between turns; the agent's own
// tree advances separately, inside Strategy.
func NewState(observed map[game.Cell]game.Player, action game.Action, player game.Player) map[game.Cell]game.Player {
	next := make(map[game.Cell]game.Player, len(observed))
	for c, p := range observed {
		next[c] = p
	}
	next[action.Src] = game.Empty
	next[action.Dst] = player
	return next
}

// FinalResult notifies the core that a game has ended. The core keeps no
// persisted state across games, so this is a no-op; it exists to round
// out the four-operation external surface the harness expects.
func FinalResult(observed map[game.Cell]game.Player, score int, player game.Player) {}

func occupancyEqual(a, b map[game.Cell]game.Player) bool {
	if len(a) != len(b) {
		return false
	}
	for c, p := range a {
		if b[c] != p {
			return false
		}
	}
	return true
}
