package interview

import "errors"

var (
	// ErrNotFound covers an unknown token as well as a broken quiz or
	// candidate reference behind a known token.
	ErrNotFound = errors.New("interview not found")

	// ErrInvalidInput means a required action field was missing or empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition means the action is not allowed from the
	// interview's current status.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrUnknownAction means the action name is not part of the lifecycle.
	ErrUnknownAction = errors.New("unknown action")

	// ErrPersistence wraps failures of the backing store.
	ErrPersistence = errors.New("persistence error")
)
