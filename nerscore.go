package nerscore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jamesainslie/go-nerscore/internal/corpus"
	"github.com/jamesainslie/go-nerscore/score"
	"github.com/jamesainslie/go-nerscore/tagging"
)

// Scorer scores tagged files against gold-standard files.
// A Scorer is not safe for concurrent use of the same Tally.
type Scorer struct {
	matcher     score.Matcher
	missingGold MissingGold
	diagnostics tagging.DiagnosticFunc
	logger      *slog.Logger
}

// New creates a Scorer.
func New(opts ...Option) *Scorer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Scorer{
		matcher: score.Matcher{
			IgnoreDeterminer: cfg.ignoreDeterminer,
			Determiners:      cfg.determiners,
		},
		missingGold: cfg.missingGold,
		diagnostics: cfg.diagnostics,
		logger:      cfg.logger,
	}
}

// Matcher returns the match rule the scorer applies.
func (s *Scorer) Matcher() score.Matcher {
	return s.matcher
}

// ScoreDocuments scores an already decoded document pair into t.
func (s *Scorer) ScoreDocuments(gold, system tagging.Document, t *score.Tally) {
	score.EvaluateDocument(gold, system, s.matcher, t)
}

// ScoreFile decodes one gold/system file pair and scores it into t.
func (s *Scorer) ScoreFile(goldPath, systemPath string, t *score.Tally) error {
	gold, err := tagging.DecodeFile(goldPath, s.diagnostics)
	if err != nil {
		return fmt.Errorf("reading gold: %w", err)
	}
	system, err := tagging.DecodeFile(systemPath, s.diagnostics)
	if err != nil {
		return fmt.Errorf("reading system output: %w", err)
	}

	s.ScoreDocuments(gold, system, t)
	s.logger.Debug("scored file",
		slog.String("system", systemPath),
		slog.String("gold", goldPath),
		slog.Int("gold_sentences", len(gold)),
		slog.Int("system_sentences", len(system)))
	return nil
}

// ScoreFiles scores a single gold/system file pair.
func (s *Scorer) ScoreFiles(ctx context.Context, goldPath, systemPath string) (*score.Tally, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := score.NewTally()
	if err := s.ScoreFile(goldPath, systemPath, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ScoreDir scores every file under systemDir against the file of the same
// base name directly under goldDir, folding all of them into one tally.
// Any read error aborts the run; a missing gold file aborts it unless the
// scorer was built with MissingGoldSkip.
func (s *Scorer) ScoreDir(ctx context.Context, systemDir, goldDir string) (*score.Tally, error) {
	info, err := os.Stat(goldDir)
	if err != nil {
		return nil, fmt.Errorf("gold directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, goldDir)
	}

	t := score.NewTally()
	skipped := 0
	err = corpus.Walk(systemDir, func(systemPath string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		goldPath := corpus.GoldPath(goldDir, systemPath)
		if _, err := os.Stat(goldPath); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking gold file: %w", err)
			}
			if s.missingGold == MissingGoldFail {
				return fmt.Errorf("%w: %s (for %s)", ErrGoldNotFound, goldPath, systemPath)
			}
			skipped++
			s.logger.Warn("skipping file without gold counterpart",
				slog.String("system", systemPath),
				slog.String("gold", goldPath))
			if s.diagnostics != nil {
				s.diagnostics(tagging.Diagnostic{
					Path:    systemPath,
					Message: "no gold file " + goldPath + ", skipped",
				})
			}
			return nil
		}

		return s.ScoreFile(goldPath, systemPath, t)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("scored directory",
		slog.String("system_dir", systemDir),
		slog.String("gold_dir", goldDir),
		slog.Int("docs", t.Docs),
		slog.Int("skipped", skipped))
	return t, nil
}
