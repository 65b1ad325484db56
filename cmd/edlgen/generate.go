package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"edlgen/internal/config"
	"edlgen/internal/diag"
	"edlgen/internal/diagfmt"
	"edlgen/internal/driver"
	"edlgen/internal/genpipeline"
	"edlgen/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate --edl <path>[,<path>...]",
	Short: "Generate the trust-boundary marshalling plan for one or more .edl files",
	Long: `generate parses each .edl file (or every *.edl file in a directory) ` +
		`independently, plans its emission layout, and reports diagnostics. ` +
		`Files are processed concurrently; one file's failure never stops its siblings.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("edl", "", "comma-separated .edl file or directory paths (required)")
	generateCmd.Flags().String("output-directory", "", "directory generated sources would be written to")
	generateCmd.Flags().String("error-handling", "", "error propagation mode (errorcode|exception)")
	generateCmd.Flags().String("virtual-trust-layer", "", "the vtl selector for the generated facade")
	generateCmd.Flags().String("namespace", "", "namespace/package wrapping generated types")
	generateCmd.Flags().String("cache-dir", "", "plan cache directory (defaults to edlgen.toml's cache_dir)")
	_ = generateCmd.MarkFlagRequired("edl")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	edlFlag, err := cmd.Flags().GetString("edl")
	if err != nil {
		return fmt.Errorf("failed to get edl flag: %w", err)
	}

	paths, err := resolveEdlPaths(edlFlag)
	if err != nil {
		return &exitCodeError{code: 2}
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .edl files found for --edl %q", edlFlag)
	}

	cfg, err := config.Resolve(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve edlgen.toml: %v\n", err)
		return &exitCodeError{code: 2}
	}
	overlayFlagDefaults(cmd, &cfg)

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	mode := diagfmt.ParseColorMode(colorFlag)

	opts := driver.GenerateOptions{
		CacheDir:          cfg.CacheDir,
		Namespace:         cfg.Namespace,
		ErrorHandling:     cfg.ErrorHandling,
		VirtualTrustLayer: cfg.VirtualTrustLayer,
	}

	var results []*driver.GenerateResult
	if ui.ShouldRun(len(paths), quiet, isTerminal(os.Stdout)) {
		results = runWithProgress(paths, opts)
	} else {
		results = runPlain(paths, opts)
	}

	bag := diag.NewBag()
	ioFailure := false
	for _, r := range results {
		if r.IOErr != nil {
			ioFailure = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.IOErr)
			continue
		}
		bag.Add(r.ParseErr)
	}

	if !quiet {
		diagfmt.Summary(os.Stderr, bag, mode, isTerminal(os.Stderr))
	}

	switch {
	case ioFailure:
		return &exitCodeError{code: 2}
	case bag.HasErrors():
		return &exitCodeError{code: 1}
	default:
		return nil
	}
}

func runPlain(paths []string, opts driver.GenerateOptions) []*driver.GenerateResult {
	return driver.GenerateAll(context.Background(), paths, opts)
}

func runWithProgress(paths []string, opts driver.GenerateOptions) []*driver.GenerateResult {
	events := make(chan genpipeline.Event, 64)
	opts.Sink = genpipeline.ChanSink(events)

	model := ui.NewProgressModel("edlgen generate", paths, events)
	program := tea.NewProgram(model)

	resultsCh := make(chan []*driver.GenerateResult, 1)
	go func() {
		results := driver.GenerateAll(context.Background(), paths, opts)
		close(events)
		resultsCh <- results
	}()

	_, _ = program.Run()
	return <-resultsCh
}

// resolveEdlPaths expands a comma-separated --edl value into a list of .edl
// file paths in the order the entries were given, globbing directories for
// *.edl (each directory's matches in lexical order). Duplicate paths are
// not removed.
func resolveEdlPaths(flag string) ([]string, error) {
	var out []string
	for _, entry := range strings.Split(flag, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		info, err := os.Stat(entry)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, entry)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(entry, "*.edl"))
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

func overlayFlagDefaults(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("output-directory"); v != "" {
		cfg.OutputDirectory = v
	}
	if v, _ := cmd.Flags().GetString("error-handling"); v != "" {
		cfg.ErrorHandling = v
	}
	if v, _ := cmd.Flags().GetString("virtual-trust-layer"); v != "" {
		cfg.VirtualTrustLayer = v
	}
	if v, _ := cmd.Flags().GetString("namespace"); v != "" {
		cfg.Namespace = v
	}
	if v, _ := cmd.Flags().GetString("cache-dir"); v != "" {
		cfg.CacheDir = v
	}
}
