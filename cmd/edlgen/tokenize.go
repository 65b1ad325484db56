package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"edlgen/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.edl",
	Short: "Tokenize an EDL source file",
	Long:  `tokenize dumps the raw lexer output for a .edl file, for debugging the grammar.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0])
	if err != nil {
		return &exitCodeError{code: 2}
	}

	switch format {
	case "pretty":
		for _, tok := range result.Tokens {
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Kind, tok.Text)
		}
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
