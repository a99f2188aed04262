package mcts

import (
	"bytes"
	"testing"

	"github.com/kestrelgames/dodo/game"
	"github.com/stretchr/testify/require"
)

func TestDumpDOTProducesAParseableGraph(t *testing.T) {
	state, _ := game.NewStart(4)
	root := NewRoot(state, game.R)
	child := root.Expand()
	child.Backpropagate(1)

	var buf bytes.Buffer
	require.NoError(t, DumpDOT(root, &buf))

	out := buf.String()
	require.Contains(t, out, "digraph")
	require.Contains(t, out, "n=1")
}
