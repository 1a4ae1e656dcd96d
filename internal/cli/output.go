// Package cli holds the plumbing shared by the textbook commands: output
// formats, error reporting, exit codes, input prompting and logging.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var validFormats = []string{FormatText, FormatJSON, FormatYAML}

// ValidateFormat checks that the --format flag value is recognized.
func ValidateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, ", "))
}

// Result is the top-level envelope for json and yaml output.
type Result struct {
	Command string `json:"command" yaml:"command"`
	Results any    `json:"results" yaml:"results"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Writer renders results and errors in the selected format.
type Writer struct {
	Format string
	Stdout io.Writer
	Stderr io.Writer

	// handled is set by WriteError so the caller doesn't double-print.
	handled bool
}

// WriteResult writes result to Stdout. In text format the text callback
// renders it; json and yaml encode the envelope.
func (w *Writer) WriteResult(result Result, text func(io.Writer) error) error {
	switch w.Format {
	case FormatJSON:
		return w.encodeJSON(result)
	case FormatYAML:
		return w.encodeYAML(result)
	default:
		return text(w.Stdout)
	}
}

// WriteError reports err in the selected format and returns it so RunE can
// propagate it to Cobra. In text format the error goes to Stderr; json and
// yaml write an envelope carrying the error to Stdout.
func (w *Writer) WriteError(command string, err error) error {
	w.handled = true
	switch w.Format {
	case FormatJSON:
		_ = w.encodeJSON(Result{Command: command, Error: err.Error()})
	case FormatYAML:
		_ = w.encodeYAML(Result{Command: command, Error: err.Error()})
	default:
		fmt.Fprintf(w.Stderr, "Error: %s\n", err)
	}
	return err
}

// Handled reports whether an error has already been written.
func (w *Writer) Handled() bool {
	return w.handled
}

// PromptWriter returns where an input prompt should go, or nil when
// prompting is disabled. Structured formats keep Stdout clean by prompting
// on Stderr.
func (w *Writer) PromptWriter(disabled bool) io.Writer {
	if disabled {
		return nil
	}
	if w.Format == FormatText || w.Format == "" {
		return w.Stdout
	}
	return w.Stderr
}

func (w *Writer) encodeJSON(result Result) error {
	enc := json.NewEncoder(w.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (w *Writer) encodeYAML(result Result) error {
	enc := yaml.NewEncoder(w.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
