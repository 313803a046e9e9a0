// Package normalize cleans raw extracted tables: header text, row widths and
// blank rows.
package normalize

import (
	"strings"

	"gov-tables/internal/models"
)

// Header turns footnote asterisks into spaces, collapses whitespace runs
// (newlines and non-breaking spaces included) and trims the result.
func Header(value string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(value, "*", " ")), " ")
}

// Row pads row with empty cells or truncates it so len(result) == width.
// The input slice is not modified.
func Row(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// IsBlank reports whether every cell is empty after trimming.
func IsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Table returns a normalised copy of raw: cleaned headers, no blank rows and
// every row exactly as wide as the header.
func Table(raw models.Table) models.Table {
	header := make([]string, len(raw.Header))
	for i, h := range raw.Header {
		header[i] = Header(h)
	}
	rows := make([][]string, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		if IsBlank(row) {
			continue
		}
		rows = append(rows, Row(row, len(header)))
	}
	return models.Table{Header: header, Rows: rows}
}

// Collection normalises every table in tables.
func Collection(tables models.Collection) models.Collection {
	out := make(models.Collection, len(tables))
	for i, t := range tables {
		out[i] = Table(t)
	}
	return out
}
