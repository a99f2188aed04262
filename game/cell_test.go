package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeighborIsInvolutive(t *testing.T) {
	c := Cell{Q: 2, R: -1}
	for d := Dir0; d <= Dir5; d++ {
		opposite := (d + 3) % 6
		require.Equal(t, c, neighbor(neighbor(c, d), opposite))
	}
}

func TestForwardSetsAreDisjointAndOpposite(t *testing.T) {
	seen := map[Direction]bool{}
	for _, d := range RForward {
		seen[d] = true
	}
	for _, d := range BForward {
		require.False(t, seen[d], "R and B forward sets must be disjoint")
		require.True(t, seen[(d+3)%6], "B forward direction %v must be the opposite of an R forward direction", d)
	}
}
