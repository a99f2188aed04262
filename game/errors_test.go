package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInvariantViolationRecognizesWrappedError(t *testing.T) {
	err := newInvariantError("bad state %d", 42)
	require.True(t, IsInvariantViolation(err))
}

func TestIsInvariantViolationRejectsOrdinaryError(t *testing.T) {
	require.False(t, IsInvariantViolation(errors.New("plain")))
}
