package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists     = errors.New("already exists")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrLockTimeout       = errors.New("lock acquisition timed out")
	ErrValidation        = errors.New("validation failed")
)

// TransitionError reports a brand process edge rejected by the transition
// matrix, naming both endpoints so callers can explain the refusal.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Unwrap lets errors.Is match the ErrInvalidTransition sentinel.
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
