package nerscore

import (
	"log/slog"

	"github.com/jamesainslie/go-nerscore/tagging"
)

// MissingGold selects what ScoreDir does with a system file that has no
// gold counterpart.
type MissingGold int

const (
	// MissingGoldFail aborts the run with ErrGoldNotFound.
	MissingGoldFail MissingGold = iota
	// MissingGoldSkip skips the file and reports a diagnostic.
	MissingGoldSkip
)

func (m MissingGold) String() string {
	if m == MissingGoldSkip {
		return "skip"
	}
	return "fail"
}

// Option configures a Scorer.
type Option func(*config)

type config struct {
	ignoreDeterminer bool
	determiners      []string
	missingGold      MissingGold
	diagnostics      tagging.DiagnosticFunc
	logger           *slog.Logger
}

func defaultConfig() config {
	return config{
		ignoreDeterminer: true,
		determiners:      []string{"the"},
		missingGold:      MissingGoldFail,
		logger:           slog.Default(),
	}
}

// WithIgnoreDeterminer toggles the leading-determiner match rule (default: true).
func WithIgnoreDeterminer(ignore bool) Option {
	return func(c *config) {
		c.ignoreDeterminer = ignore
	}
}

// WithDeterminers sets the words dropped by the determiner rule (default: "the").
func WithDeterminers(words ...string) Option {
	return func(c *config) {
		if len(words) > 0 {
			c.determiners = words
		}
	}
}

// WithMissingGold sets the missing gold file policy (default: MissingGoldFail).
func WithMissingGold(p MissingGold) Option {
	return func(c *config) {
		c.missingGold = p
	}
}

// WithDiagnostics sets the receiver of decode diagnostics (default: discard).
func WithDiagnostics(fn tagging.DiagnosticFunc) Option {
	return func(c *config) {
		c.diagnostics = fn
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
