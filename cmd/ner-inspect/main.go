package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	nerscore "github.com/jamesainslie/go-nerscore"
	"github.com/jamesainslie/go-nerscore/internal/report"
	"github.com/jamesainslie/go-nerscore/score"
	"github.com/jamesainslie/go-nerscore/tagging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "ner-inspect",
		Short:         "Inspect tagged files and single-file scores",
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	warn := func(d tagging.Diagnostic) { fmt.Fprintln(stderr, d.String()) }
	root.AddCommand(
		newDecodeCmd(stdout, warn),
		newAlignCmd(stdout, warn),
		newScoreCmd(stdout, warn),
	)
	return root
}

func newDecodeCmd(stdout io.Writer, warn tagging.DiagnosticFunc) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Print the entities decoded from a tagged file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := tagging.DecodeFile(args[0], warn)
			if err != nil {
				return err
			}
			for i, sent := range doc {
				fmt.Fprintf(stdout, "sentence %d:\n", i+1)
				for _, e := range sent {
					if e.IsNone() && !all {
						continue
					}
					fmt.Fprintf(stdout, "  %s\n", e)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include tokens outside any entity")
	return cmd
}

func newAlignCmd(stdout io.Writer, warn tagging.DiagnosticFunc) *cobra.Command {
	var keepDeterminer bool
	cmd := &cobra.Command{
		Use:   "align GOLD SYSTEM",
		Short: "Print each aligned gold/system entity pair and its outcome",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			gold, err := tagging.DecodeFile(args[0], warn)
			if err != nil {
				return fmt.Errorf("reading gold standard: %w", err)
			}
			system, err := tagging.DecodeFile(args[1], warn)
			if err != nil {
				return fmt.Errorf("reading system output: %w", err)
			}

			m := nerscore.New(nerscore.WithIgnoreDeterminer(!keepDeterminer)).Matcher()
			for i, goldSent := range gold {
				var sysSent tagging.Sentence
				if i < len(system) {
					sysSent = system[i]
				}
				fmt.Fprintf(stdout, "sentence %d:\n", i+1)
				for _, p := range score.Align(goldSent, sysSent) {
					outcome := m.Judge(p)
					if outcome == score.OutcomeIgnored {
						continue
					}
					fmt.Fprintf(stdout, "  %-10s %s <> %s\n", outcome, p.System, p.Gold)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepDeterminer, "keep-determiner", false, "do not ignore a leading \"the\" when matching entities")
	return cmd
}

func newScoreCmd(stdout io.Writer, warn tagging.DiagnosticFunc) *cobra.Command {
	var (
		format         string
		keepDeterminer bool
		allTypes       bool
	)
	cmd := &cobra.Command{
		Use:   "score GOLD SYSTEM",
		Short: "Score one system file against one gold file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := report.New(format, report.Options{IncludeGoldOnly: allTypes})
			if err != nil {
				return err
			}
			s := nerscore.New(
				nerscore.WithIgnoreDeterminer(!keepDeterminer),
				nerscore.WithDiagnostics(warn),
			)
			tally, err := s.ScoreFiles(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return renderer.Render(stdout, tally)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&format, "format", "f", "text", "report format: text, table or json")
	fl.BoolVar(&keepDeterminer, "keep-determiner", false, "do not ignore a leading \"the\" when matching entities")
	fl.BoolVar(&allTypes, "all-types", false, "also list entity types that appear only in the gold standard")
	return cmd
}
