package poker

import "errors"

var (
	// ErrInvalidEncoding is returned when a rank or suit token is not recognised.
	ErrInvalidEncoding = errors.New("invalid card encoding")

	// ErrInvalidInput is returned when a card set handed to the evaluator is
	// malformed: wrong size, duplicate cards or out-of-range values.
	ErrInvalidInput = errors.New("invalid card input")

	// ErrDeckExhausted is returned by a card source that has no cards left.
	ErrDeckExhausted = errors.New("deck exhausted")
)
