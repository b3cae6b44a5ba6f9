package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jamesainslie/go-nerscore/score"
)

// Text is the plain report: overall figures followed by one block per type.
type Text struct {
	Options Options
}

// Render writes the report to w.
func (r Text) Render(w io.Writer, t *score.Tally) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of docs: %d\n", t.Docs)
	b.WriteString("Performance:\n")
	writeBlock(&b, t.Total, t.Overall())
	fmt.Fprintf(&b, "False positives: %d\n", t.Total.FalsePositive)
	fmt.Fprintf(&b, "Missing: %d\n", t.Total.Missing)
	fmt.Fprintf(&b, "Type errors: %d\n", t.Total.TypeError)

	b.WriteString("Breakdown performance:\n")
	for _, row := range Rows(t, r.Options) {
		fmt.Fprintf(&b, "Type: %s\n", row.Type)
		writeBlock(&b, row.Counts, row.Metrics)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBlock(b *strings.Builder, c score.Counts, m score.Metrics) {
	fmt.Fprintf(b, "Number of correct: %d\n", c.Correct)
	fmt.Fprintf(b, "Number of answer: %d\n", c.System)
	fmt.Fprintf(b, "Number of gold: %d\n", c.Gold)
	fmt.Fprintf(b, "Precision: %s\n", ratio(m.Precision))
	fmt.Fprintf(b, "Recall: %s\n", ratio(m.Recall))
	fmt.Fprintf(b, "F1: %s\n", ratio(m.F1))
}
