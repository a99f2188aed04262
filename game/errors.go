package game

import "github.com/pkg/errors"

// InvariantError reports a programmer error: a precondition of the game
// model was violated (an illegal move was requested, winner() was called on
// a non-terminal state, and so on). It is fatal by construction -- callers
// are expected to let it propagate rather than recover from it.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string { return e.msg }

// newInvariantError builds an InvariantError carrying a stack trace, so a
// %+v format during debugging shows where the violation was raised.
func newInvariantError(format string, args ...interface{}) error {
	return errors.WithStack(&InvariantError{msg: errors.Errorf(format, args...).Error()})
}

// IsInvariantViolation reports whether err is (or wraps) an InvariantError.
func IsInvariantViolation(err error) bool {
	var inv *InvariantError
	return errors.As(err, &inv)
}
