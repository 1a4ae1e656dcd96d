package cli

import (
	"fmt"
	"io"

	"github.com/jward/textbook"
)

// ReadValue returns the input token for a command. A positional argument
// wins; otherwise prompt is written to promptOut (when non-nil) and one
// token is read from in.
func ReadValue(args []string, in io.Reader, prompt string, promptOut io.Writer) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if promptOut != nil {
		if _, err := io.WriteString(promptOut, prompt); err != nil {
			return "", fmt.Errorf("writing prompt: %w", err)
		}
	}
	return textbook.ReadToken(in)
}
