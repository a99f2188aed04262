// Package selfplay runs two Dodo agents against each other. It is test
// and demo infrastructure only, grounded in the teacher's Arena.Play game
// loop, adapted from a neural-network training harness (self-play example
// generation, NN checkpoint swapping) into a plain two-engine match
// runner: there is no network to train here, only a search tree per side.
package selfplay

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/kestrelgames/dodo"
	"github.com/kestrelgames/dodo/game"
)

// Arena plays a single Dodo game between two agents to completion.
type Arena struct {
	size int

	r, b *dodo.Agent

	buf    bytes.Buffer
	logger *log.Logger

	timeLeftR, timeLeftB float64
}

// NewArena builds an arena for a size-N board, giving each side the
// supplied search configuration and its TotalTime seconds on its clock. Both agents
// start from Dodo's standard starting position.
func NewArena(size int, cfgR, cfgB dodo.Config) (*Arena, error) {
	neighbors := game.NewNeighborTables(size)
	start := game.StartOccupancy(size, neighbors)
	placements := game.ToPlacements(start, neighbors)

	r, err := dodo.Initialize(cfgR, placements, game.R)
	if err != nil {
		return nil, err
	}
	b, err := dodo.Initialize(cfgB, placements, game.B)
	if err != nil {
		return nil, err
	}

	a := &Arena{
		size:      size,
		r:         r,
		b:         b,
		timeLeftR: cfgR.TotalTime,
		timeLeftB: cfgB.TotalTime,
	}
	a.logger = log.New(&a.buf, "", log.Ltime)
	return a, nil
}

// Result is the outcome of a completed game.
type Result struct {
	Winner game.Player
	Plies  int
}

// Play runs the game to completion, alternating Strategy calls between the
// two agents starting with R (Dodo always opens with R), and returns the
// winner per the misere rule: the side with no legal move wins.
func (a *Arena) Play() Result {
	neighbors := game.NewNeighborTables(a.size)
	occupancy := game.StartOccupancy(a.size, neighbors)

	toMove := game.R
	plies := 0
	for {
		var agent *dodo.Agent
		var timeLeft *float64
		if toMove == game.R {
			agent, timeLeft = a.r, &a.timeLeftR
		} else {
			agent, timeLeft = a.b, &a.timeLeftB
		}

		start := time.Now()
		action, ok, err := dodo.Strategy(agent, occupancy, *timeLeft)
		*timeLeft -= time.Since(start).Seconds()
		if err != nil {
			a.logger.Printf("ply %d: %v terminated with protocol error: %v\n", plies, toMove, err)
			panic(err)
		}
		if !ok {
			a.logger.Printf("ply %d: %v has no legal move, %v wins\n", plies, toMove, toMove)
			return Result{Winner: toMove, Plies: plies}
		}

		a.logger.Printf("ply %d: %v plays %v (clock left %.2fs)\n", plies, toMove, action, *timeLeft)
		occupancy = dodo.NewState(occupancy, action, toMove)
		toMove = toMove.Opponent()
		plies++
	}
}

// Log writes the arena's buffered play-by-play log into w.
func (a *Arena) Log(w io.Writer) {
	fmt.Fprint(w, a.buf.String())
}
