package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jward/textbook"
	"github.com/jward/textbook/internal/cli"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandName  = "circlearea"
	radiusPrompt = "Enter the radius of the circle: "
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	out := &cli.Writer{Stdout: stdout, Stderr: stderr}
	cmd := newRootCmd(stdin, out)
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil && !out.Handled() {
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}
	return cli.ExitCode(err)
}

func newRootCmd(stdin io.Reader, out *cli.Writer) *cobra.Command {
	var (
		flagNoPrompt bool
		flagVerbose  bool
	)

	cmd := &cobra.Command{
		Use:           "circlearea [radius]",
		Short:         "Compute the area of a circle",
		Long:          "Reads a radius (argument or standard input) and prints the circle area fixed to two decimals.\nPass negative values after --, e.g. circlearea -- -1.5.",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateFormat(out.Format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.NewLogger(out.Stderr, flagVerbose)
			defer func() { _ = logger.Sync() }()

			token, err := cli.ReadValue(args, stdin, radiusPrompt, out.PromptWriter(flagNoPrompt))
			if err != nil {
				return out.WriteError(commandName, err)
			}
			radius, err := textbook.ParseRadius(token)
			if err != nil {
				return out.WriteError(commandName, err)
			}

			area := textbook.CircleArea(radius)
			if math.IsInf(area, 0) {
				return out.WriteError(commandName, fmt.Errorf("%w: radius %g", textbook.ErrAreaOverflow, radius))
			}
			logger.Debug("computed circle area",
				zap.Float64("radius", radius),
				zap.Float64("area", area))

			result := cli.Result{
				Command: commandName,
				Results: circleResult{Radius: radius, Area: area},
			}
			return out.WriteResult(result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, textbook.FormatCircle(radius, area))
				return err
			})
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(out.Stdout)
	cmd.SetErr(out.Stderr)

	cmd.Flags().StringVar(&out.Format, "format", cli.FormatText, "output format: text|json|yaml")
	cmd.Flags().BoolVar(&flagNoPrompt, "no-prompt", false, "do not print the input prompt")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "write debug logs to stderr")
	return cmd
}

// circleResult is the json/yaml form of a computed area.
type circleResult struct {
	Radius float64 `json:"radius" yaml:"radius"`
	Area   float64 `json:"area" yaml:"area"`
}
