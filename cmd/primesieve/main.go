package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jward/textbook"
	"github.com/jward/textbook/internal/cli"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandName = "primesieve"
	boundPrompt = "Enter an integer: "
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
		flagMaxBound int
	)

	cmd := &cobra.Command{
		Use:   "primesieve [n]",
		Short: "List the primes up to n",
		Long: "Reads an integer bound (argument or standard input) and prints every prime up to it\n" +
			"using the Sieve of Eratosthenes. Pass negative values after --, e.g. primesieve -- -4.",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFormat(out.Format); err != nil {
				return err
			}
			if flagMaxBound < 0 {
				return fmt.Errorf("invalid --max-bound %d: must be non-negative", flagMaxBound)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.NewLogger(out.Stderr, flagVerbose)
			defer func() { _ = logger.Sync() }()

			token, err := cli.ReadValue(args, stdin, boundPrompt, out.PromptWriter(flagNoPrompt))
			if err != nil {
				return out.WriteError(commandName, err)
			}
			bound, err := textbook.ParseBound(token)
			if err != nil {
				return out.WriteError(commandName, err)
			}

			sieve, err := textbook.NewSieve(bound, textbook.WithMaxBound(flagMaxBound))
			if err != nil {
				return out.WriteError(commandName, err)
			}
			primes := sieve.Primes()
			logger.Debug("sieved primes",
				zap.Int("bound", bound),
				zap.Int("max_bound", flagMaxBound),
				zap.Int("count", len(primes)))

			result := cli.Result{
				Command: commandName,
				Results: sieveResult{Bound: bound, Count: len(primes), Primes: primes},
			}
			return out.WriteResult(result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, textbook.FormatPrimes(primes))
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
	cmd.Flags().IntVar(&flagMaxBound, "max-bound", 0, "reject bounds above this value (0 means unlimited)")
	return cmd
}

// sieveResult is the json/yaml form of a sieve run.
type sieveResult struct {
	Bound  int   `json:"bound" yaml:"bound"`
	Count  int   `json:"count" yaml:"count"`
	Primes []int `json:"primes" yaml:"primes"`
}
