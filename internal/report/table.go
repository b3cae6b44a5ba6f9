package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jamesainslie/go-nerscore/score"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	totalStyle  = cellStyle.Bold(true)
)

// Table renders one row per entity type plus an overall row.
type Table struct {
	Options Options
}

// Render writes the table to w.
func (r Table) Render(w io.Writer, t *score.Tally) error {
	rows := Rows(t, r.Options)
	totalRow := len(rows)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TYPE", "CORRECT", "ANSWER", "GOLD", "FP", "MISSING", "TYPE ERR", "PRECISION", "RECALL", "F1").
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return headerStyle
			case totalRow:
				return totalStyle
			default:
				return cellStyle
			}
		})

	for _, row := range rows {
		tbl.Row(tableCells(row.Type, row.Counts, row.Metrics)...)
	}
	tbl.Row(tableCells("ALL", t.Total, t.Overall())...)

	_, err := fmt.Fprintf(w, "Documents: %d\n%s\n", t.Docs, tbl.String())
	return err
}

func tableCells(label string, c score.Counts, m score.Metrics) []string {
	return []string{
		label,
		strconv.Itoa(c.Correct),
		strconv.Itoa(c.System),
		strconv.Itoa(c.Gold),
		strconv.Itoa(c.FalsePositive),
		strconv.Itoa(c.Missing),
		strconv.Itoa(c.TypeError),
		ratio(m.Precision),
		ratio(m.Recall),
		ratio(m.F1),
	}
}
