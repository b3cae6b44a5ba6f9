package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	nerscore "github.com/jamesainslie/go-nerscore"
	"github.com/jamesainslie/go-nerscore/internal/config"
	"github.com/jamesainslie/go-nerscore/internal/report"
	"github.com/jamesainslie/go-nerscore/tagging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errUsage marks invocation mistakes that should print usage.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		_ = cmd.Usage()
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

type flags struct {
	configPath     string
	format         string
	skipMissing    bool
	keepDeterminer bool
	allTypes       bool
	verbose        bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "ner-score <system-output-dir> <gold-standard-dir>",
		Short: "Score named-entity tagging output against a gold standard",
		Long: `ner-score walks the system output directory, pairs every file with the
file of the same name directly under the gold standard directory, and
reports precision, recall and F1 overall and per entity type.

Files hold one token per line with its BIO label in the last column;
blank lines separate sentences.`,
		Version: fmt.Sprintf("%s (%s, %s)", version, commit, date),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: want 2 arguments, got %d", errUsage, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, f, args[0], args[1], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	fl.StringVarP(&f.format, "format", "f", "", "report format: text, table or json")
	fl.BoolVar(&f.skipMissing, "skip-missing", false, "skip system files without a gold counterpart instead of failing")
	fl.BoolVar(&f.keepDeterminer, "keep-determiner", false, "do not ignore a leading \"the\" when matching entities")
	fl.BoolVar(&f.allTypes, "all-types", false, "also list entity types that appear only in the gold standard")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

// settings merges the config file with explicitly set flags.
func settings(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("skip-missing") && f.skipMissing {
		cfg.MissingGold = "skip"
	}
	if fl.Changed("keep-determiner") && f.keepDeterminer {
		cfg.IgnoreDeterminer = false
	}
	if fl.Changed("all-types") {
		cfg.IncludeGoldOnlyTypes = f.allTypes
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runScore(cmd *cobra.Command, f flags, systemDir, goldDir string, stdout, stderr io.Writer) error {
	cfg, err := settings(cmd, f)
	if err != nil {
		return err
	}

	renderer, err := report.New(cfg.Format, report.Options{IncludeGoldOnly: cfg.IncludeGoldOnlyTypes})
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	opts := append(cfg.ScorerOptions(),
		nerscore.WithLogger(logger),
		nerscore.WithDiagnostics(func(d tagging.Diagnostic) {
			fmt.Fprintln(stderr, d.String())
		}),
	)

	tally, err := nerscore.New(opts...).ScoreDir(cmd.Context(), systemDir, goldDir)
	if err != nil {
		return err
	}
	return renderer.Render(stdout, tally)
}
