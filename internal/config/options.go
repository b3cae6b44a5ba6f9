package config

import (
	"log/slog"

	nerscore "github.com/jamesainslie/go-nerscore"
)

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// MissingGoldPolicy maps MissingGold to the scorer policy.
func (c Config) MissingGoldPolicy() nerscore.MissingGold {
	if c.MissingGold == "skip" {
		return nerscore.MissingGoldSkip
	}
	return nerscore.MissingGoldFail
}

// ScorerOptions returns the scorer options described by c.
func (c Config) ScorerOptions() []nerscore.Option {
	return []nerscore.Option{
		nerscore.WithIgnoreDeterminer(c.IgnoreDeterminer),
		nerscore.WithDeterminers(c.Determiners...),
		nerscore.WithMissingGold(c.MissingGoldPolicy()),
	}
}
