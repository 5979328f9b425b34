package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGameState = errors.New("invalid game state")
	ErrHandInDiscard    = errors.New("card is both in hand and on the discard pile")
	ErrMeldedCard       = errors.New("card is already melded")
	ErrMeldOverlap      = errors.New("card is melded as both a multiple and a run")
)

// InvalidStateError is the panic value raised when the table could not have
// been reached by legal play, e.g. a rank melded as a multiple with two suits.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidGameState, e.Reason)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidGameState
}

func invalidState(format string, a ...interface{}) {
	panic(&InvalidStateError{Reason: fmt.Sprintf(format, a...)})
}
