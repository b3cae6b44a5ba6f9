// Package config loads scorer settings from a TOML file.
//
// Example:
//
//	ignore_determiner = true
//	determiners = ["the"]
//	missing_gold = "skip"
//	include_gold_only_types = false
//	format = "table"
//	log_level = "debug"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig indicates a config value outside its allowed set.
var ErrInvalidConfig = errors.New("invalid config")

// Allowed values.
var (
	Formats         = []string{"text", "table", "json"}
	MissingPolicies = []string{"fail", "skip"}
	LogLevels       = []string{"debug", "info", "warn", "error"}
)

const (
	defaultFormat     = "text"
	defaultMissing    = "fail"
	defaultLogLevel   = "warn"
	defaultDeterminer = "the"
)

// Config holds every setting of a scoring run.
type Config struct {
	IgnoreDeterminer     bool     `toml:"ignore_determiner"`
	Determiners          []string `toml:"determiners"`
	MissingGold          string   `toml:"missing_gold"`
	IncludeGoldOnlyTypes bool     `toml:"include_gold_only_types"`
	Format               string   `toml:"format"`
	LogLevel             string   `toml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		IgnoreDeterminer: true,
		Determiners:      []string{defaultDeterminer},
		MissingGold:      defaultMissing,
		Format:           defaultFormat,
		LogLevel:         defaultLogLevel,
	}
}

// Load reads the TOML file at path over the defaults. Keys absent from
// the file keep their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// fileConfig mirrors Config with pointers so absent keys can be told apart
// from zero values.
type fileConfig struct {
	IgnoreDeterminer     *bool     `toml:"ignore_determiner"`
	Determiners          *[]string `toml:"determiners"`
	MissingGold          *string   `toml:"missing_gold"`
	IncludeGoldOnlyTypes *bool     `toml:"include_gold_only_types"`
	Format               *string   `toml:"format"`
	LogLevel             *string   `toml:"log_level"`
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if fc.IgnoreDeterminer != nil {
		cfg.IgnoreDeterminer = *fc.IgnoreDeterminer
	}
	if fc.Determiners != nil {
		cfg.Determiners = *fc.Determiners
	}
	if fc.MissingGold != nil {
		cfg.MissingGold = *fc.MissingGold
	}
	if fc.IncludeGoldOnlyTypes != nil {
		cfg.IncludeGoldOnlyTypes = *fc.IncludeGoldOnlyTypes
	}
	if fc.Format != nil {
		cfg.Format = *fc.Format
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields and normalises their case.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.MissingGold = strings.ToLower(strings.TrimSpace(c.MissingGold))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q (want one of %s)", ErrInvalidConfig, c.Format, strings.Join(Formats, ", "))
	}
	if !slices.Contains(MissingPolicies, c.MissingGold) {
		return fmt.Errorf("%w: missing_gold %q (want one of %s)", ErrInvalidConfig, c.MissingGold, strings.Join(MissingPolicies, ", "))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q (want one of %s)", ErrInvalidConfig, c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if c.IgnoreDeterminer && len(c.Determiners) == 0 {
		return fmt.Errorf("%w: ignore_determiner needs at least one determiner", ErrInvalidConfig)
	}
	return nil
}
