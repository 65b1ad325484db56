package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"edlgen/internal/diagfmt"
	"edlgen/internal/driver"
)

var planCmd = &cobra.Command{
	Use:   "plan [flags] file.edl",
	Short: "Dump the emission plan for an EDL module",
	Long:  `plan parses a .edl file and prints its ModulePlan (the six-file emission layout) as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	result, err := driver.Plan(args[0])
	if err != nil {
		return &exitCodeError{code: 2}
	}
	if result.ParseErr != nil {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		diagfmt.Pretty(os.Stderr, result.ParseErr, diagfmt.ParseColorMode(colorFlag), isTerminal(os.Stderr))
		return &exitCodeError{code: 1}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Plan); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return nil
}
