// Package cli implements the anomalyfree command: a prompt that
// reads two integer-list literals, solves for the anomaly-free
// charges, and prints the simplified vector.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/anomalyfree"
)

// Exit codes. Usage errors (bad flags, bad list literals, bad
// dimensions) are distinguished from computation failures.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
)

type options struct {
	noSort  bool
	reverse bool
	all     bool
	verbose bool
}

// NewRootCmd builds the command. Input, output, and error streams
// come from the cobra command so tests can substitute buffers.
func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "anomalyfree",
		Short: "Compute anomaly-free U(1) charge assignments",
		Long: `anomalyfree evaluates the closed-form parametrization of
arXiv:1905.13729: two integer parameter lists l and k map to a charge
vector with vanishing linear and cubic anomaly sums, printed in
lowest terms.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			return runPrompt(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noSort, "no-sort", false, "keep charges in construction order")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "sort charges by descending magnitude")
	cmd.Flags().BoolVar(&opts.all, "all", false, "print raw charges and GCD alongside the simplified vector")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute runs the command and maps errors to exit codes.
func Execute(args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	return exitCode(err)
}

// exitCode maps an execution error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrParse),
		errors.Is(err, anomalyfree.ErrArity),
		errors.Is(err, anomalyfree.ErrDimension):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

// runPrompt performs one solve pass: prompt for l, prompt for k,
// solve, print. Parse errors surface before the solver runs.
func runPrompt(in io.Reader, out io.Writer, opts options) error {
	sc := bufio.NewScanner(in)

	l, err := promptList(sc, out, "l")
	if err != nil {
		return err
	}
	k, err := promptList(sc, out, "k")
	if err != nil {
		return err
	}

	cfg := anomalyfree.SolveConfig{Sort: !opts.noSort, Reverse: opts.reverse}
	sol, err := anomalyfree.SolveN(l, k, cfg)
	if err != nil {
		return err
	}

	slog.Debug("solved",
		"l", l,
		"k", k,
		"charges", sol.Charges,
		"gcd", sol.GCD,
	)

	if opts.all {
		fmt.Fprintf(out, "charges    = %s\n", FormatCharges(sol.Charges))
		fmt.Fprintf(out, "gcd        = %d\n", sol.GCD)
		fmt.Fprintf(out, "simplified = %s\n", FormatCharges(sol.Simplified))
		return nil
	}

	fmt.Fprintln(out, FormatCharges(sol.Simplified))
	return nil
}

func promptList(sc *bufio.Scanner, out io.Writer, name string) ([]int64, error) {
	fmt.Fprintf(out, "List of integers → %s=", name)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		return nil, errors.Wrapf(ErrParse, "no input for %s", name)
	}
	return ParseIntList(sc.Text())
}
