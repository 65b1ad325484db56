package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"edlgen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "edlgen",
	Short: "Enclave Definition Language code generator",
	Long:  `edlgen lexes, parses, and plans the trusted/untrusted marshalling code for a .edl interface definition.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	// Flag and argument errors are reported before PersistentPreRun, so
	// they still get cobra's usage text; errors from RunE do not.
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
	}
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(*exitCodeError); !ok {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exitCodeFor(err))
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// exitCodeFor maps a returned command error to the exit-code contract in
// SPEC_FULL.md 4.H: 0 success (unreachable here, Execute already returned
// nil), 1 parse/validation error, 2 I/O error, 3 downstream compiler error.
// Cobra usage/flag errors that never reach the driver fall back to 1.
func exitCodeFor(err error) int {
	switch e := err.(type) {
	case *exitCodeError:
		return e.code
	default:
		return 1
	}
}

// exitCodeError lets a RunE return a specific exit code without cobra
// printing its own usage/error banner for what is really a diagnostic
// result, not a CLI misuse.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string { return "" }
