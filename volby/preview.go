package volby

import (
	"fmt"
	"io"
	"volby-scrapper/models/results"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderPreview prints the first limit rows of t as a text table.
func RenderPreview(w io.Writer, t results.Table, limit int) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetOutputMirror(w)

	tw.AppendHeader(toRow(t.Header()))
	for i, r := range t.Rows {
		if i >= limit {
			break
		}
		tw.AppendRow(toRow(r.Record()))
	}
	if len(t.Rows) > limit {
		tw.AppendFooter(table.Row{fmt.Sprintf("+%d more", len(t.Rows)-limit)})
	}

	tw.Render()
}

func toRow(values []string) table.Row {
	row := make(table.Row, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
