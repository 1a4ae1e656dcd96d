package textbook

import "errors"

var (
	// ErrInvalidInput indicates the expected numeric token was missing or
	// could not be parsed.
	ErrInvalidInput = errors.New("textbook: invalid input")
	// ErrBoundTooLarge indicates a sieve bound above the configured maximum.
	ErrBoundTooLarge = errors.New("textbook: bound exceeds maximum")
	// ErrAreaOverflow indicates a finite radius whose area is not
	// representable as a float64.
	ErrAreaOverflow = errors.New("textbook: area overflows float64")
)
