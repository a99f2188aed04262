// Command selfplay runs one Dodo game between two MCTS agents on a
// size-N board and prints the winner and the play-by-play log.
//
// It is a thin demo, not a tournament harness: batching many games,
// collecting statistics across runs, or tuning c/p/f is out of scope for
// this binary (see SPEC_FULL.md's Non-goals on offline hyper-parameter
// tuning).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kestrelgames/dodo"
	"github.com/kestrelgames/dodo/internal/selfplay"
)

func main() {
	size := flag.Int("size", 4, "board size N")
	totalTime := flag.Float64("time", 10, "total seconds on each side's clock")
	p := flag.Float64("p", 0.1768, "UCT exploration constant")
	f := flag.Float64("f", 1.0, "time allocation factor")
	flag.Parse()

	cfg := dodo.Config{
		BoardSize: *size,
		TotalTime: *totalTime,
		C:         *p,
		P:         *p,
		F:         *f,
	}

	arena, err := selfplay.NewArena(*size, cfg, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "selfplay: setup failed:", err)
		os.Exit(1)
	}

	result := arena.Play()
	fmt.Printf("winner: %v after %d plies\n", result.Winner, result.Plies)
	arena.Log(os.Stdout)
}
