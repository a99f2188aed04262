package selfplay

import (
	"bytes"
	"testing"

	"github.com/kestrelgames/dodo"
	"github.com/kestrelgames/dodo/game"
	"github.com/stretchr/testify/require"
)

func TestArenaPlayTerminatesWithAWinner(t *testing.T) {
	cfg := dodo.Config{BoardSize: 3, TotalTime: 1, C: 0.1768, P: 0.1768, F: 0.2, Seed: 11}
	cfgB := cfg
	cfgB.Seed = 13

	arena, err := NewArena(3, cfg, cfgB)
	require.NoError(t, err)

	result := arena.Play()
	require.Contains(t, []game.Player{game.R, game.B}, result.Winner)
	require.Greater(t, result.Plies, 0)

	var buf bytes.Buffer
	arena.Log(&buf)
	require.NotEmpty(t, buf.String())
}
