package cli

import (
	"errors"

	"github.com/jward/textbook"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, textbook.ErrInvalidInput):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
