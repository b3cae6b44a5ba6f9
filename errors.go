package nerscore

import (
	"errors"

	"github.com/jamesainslie/go-nerscore/internal/corpus"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrGoldNotFound indicates a system file has no gold counterpart.
	ErrGoldNotFound = errors.New("nerscore: gold file not found")

	// ErrNotDirectory indicates a scoring root that is not a directory.
	ErrNotDirectory = corpus.ErrNotDirectory
)
