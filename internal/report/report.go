// Package report renders a score tally as text, a table or JSON.
package report

import (
	"fmt"
	"io"

	"github.com/jamesainslie/go-nerscore/score"
)

// Options controls which entity types are listed.
type Options struct {
	// IncludeGoldOnly lists types that appear only in the gold standard.
	// By default only types the system proposed are broken down.
	IncludeGoldOnly bool
}

// Row is one line of the per-type breakdown.
type Row struct {
	Type    string
	Counts  score.Counts
	Metrics score.Metrics
}

// Rows returns the per-type breakdown sorted by type name.
func Rows(t *score.Tally, opts Options) []Row {
	types := t.SystemTypes()
	if opts.IncludeGoldOnly {
		types = t.Types()
	}

	rows := make([]Row, 0, len(types))
	for _, typ := range types {
		rows = append(rows, Row{
			Type:    typ,
			Counts:  t.ForType(typ),
			Metrics: t.ByType(typ),
		})
	}
	return rows
}

// Renderer writes a tally in one output format.
type Renderer interface {
	Render(w io.Writer, t *score.Tally) error
}

// New returns the renderer for format: "text", "table" or "json".
func New(format string, opts Options) (Renderer, error) {
	switch format {
	case "", "text":
		return Text{Options: opts}, nil
	case "table":
		return Table{Options: opts}, nil
	case "json":
		return JSON{Options: opts}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

func ratio(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
