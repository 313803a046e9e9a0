package ioformats

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"gov-tables/internal/models"
)

// PreviewRows is how many rows a preview shows by default.
const PreviewRows = 5

// Preview renders the first n records of rs as a bordered text table.
func Preview(w io.Writer, rs models.RecordSet, n int) error {
	records := head(rs.Records, n)
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		line := make([]string, len(rs.Columns))
		for i, c := range rs.Columns {
			line[i] = rec[c].Text()
		}
		rows = append(rows, line)
	}
	return render(w, rs.Columns, rows, rs.Len())
}

// PreviewTable renders the first n rows of a plain table.
func PreviewTable(w io.Writer, t models.Table, n int) error {
	return render(w, t.Header, head(t.Rows, n), len(t.Rows))
}

func render(w io.Writer, header []string, rows [][]string, total int) error {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(header...).
		Rows(rows...)
	if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "[%d rows x %d columns]\n", total, len(header))
	return err
}

func head[T any](items []T, n int) []T {
	if n < 0 || n > len(items) {
		n = len(items)
	}
	return items[:n]
}
