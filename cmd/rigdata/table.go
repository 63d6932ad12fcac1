package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/osmolab/rigdata/internal/export"
)

// tableCell formats one preview value. Timestamps use the CSV export
// layout so the preview matches the written file; durations are rounded to
// whole seconds, the resolution of the underlying logs.
func tableCell(v any) string {
	switch v := v.(type) {
	case time.Time:
		return export.FormatTime(v)
	case time.Duration:
		return v.Round(time.Second).String()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// renderTable renders the previews shown by the boundaries, images, and
// build commands. Every row carries one value per header.
func renderTable(headers []string, rows [][]any) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = tableCell(v)
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
