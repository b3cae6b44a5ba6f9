package report

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jamesainslie/go-nerscore/score"
)

// JSON renders the tally as a JSON object with "docs", "overall" and
// "types" keys.
type JSON struct {
	Options Options
}

// Render writes the JSON document to w.
func (r JSON) Render(w io.Writer, t *score.Tally) error {
	types := make([]any, 0)
	for _, row := range Rows(t, r.Options) {
		entry := figures(row.Counts, row.Metrics)
		entry["type"] = row.Type
		types = append(types, entry)
	}

	doc, err := structpb.NewStruct(map[string]any{
		"docs":    t.Docs,
		"overall": figures(t.Total, t.Overall()),
		"types":   types,
	})
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

func figures(c score.Counts, m score.Metrics) map[string]any {
	return map[string]any{
		"correct":        c.Correct,
		"system":         c.System,
		"gold":           c.Gold,
		"false_positive": c.FalsePositive,
		"missing":        c.Missing,
		"type_error":     c.TypeError,
		"precision":      m.Precision,
		"recall":         m.Recall,
		"f1":             m.F1,
	}
}
