package datasets

import (
	"strconv"
	"strings"

	"gov-tables/internal/models"
)

var shutdownRenames = map[string]string{
	"Fiscal Year":                       "fiscal_year",
	"Date Funding Ended":                "funding_gap_start",
	"Duration of Funding Gap (in Days)": "duration_days",
	"Date Funding Restored":             "funding_gap_end",
	"Shutdown Procedures Followed":      "shutdown_flag",
	"Legislation Restoring Funding":     "restoring_legislation",
}

// Left empty for manual enrichment.
var shutdownPlaceholders = []string{
	"president",
	"party_control_house",
	"party_control_senate",
	"major_issue",
	"notes",
}

// DateRangeSeparator joins the start and end of a funding gap.
const DateRangeSeparator = " – "

// Shutdowns maps the house.gov funding-gap table.
type Shutdowns struct{}

func (Shutdowns) Map(t models.Table) models.RecordSet {
	columns := make([]string, len(t.Header))
	index := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		name := h
		if canonical, ok := shutdownRenames[h]; ok {
			name = canonical
		}
		columns[i] = name
		index[name] = i
	}
	lookup := func(row []string, name string) (string, bool) {
		i, ok := index[name]
		if !ok {
			return "", false
		}
		return cellAt(row, i)
	}

	out := models.RecordSet{
		Columns: appendUnique(columns, append([]string{"date_range", "start_date", "end_date"}, shutdownPlaceholders...)...),
		Records: make([]models.Record, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		rec := make(models.Record, len(out.Columns))
		for i, name := range columns {
			if v, ok := cellAt(row, i); ok {
				rec[name] = models.String(v)
			} else {
				rec[name] = models.Null()
			}
		}

		if _, ok := index["duration_days"]; ok {
			v, _ := lookup(row, "duration_days")
			rec["duration_days"] = parseCount(v)
		}
		if _, ok := index["shutdown_flag"]; ok {
			v, present := lookup(row, "shutdown_flag")
			if present {
				rec["shutdown_flag"] = models.Bool(strings.Contains(v, "Yes"))
			} else {
				rec["shutdown_flag"] = models.Null()
			}
		}

		start, hasStart := lookup(row, "funding_gap_start")
		end, hasEnd := lookup(row, "funding_gap_end")
		rec["date_range"] = models.String(joinPresent(DateRangeSeparator, start, hasStart, end, hasEnd))
		rec["start_date"] = dateValue(start, hasStart)
		rec["end_date"] = dateValue(end, hasEnd)

		for _, name := range shutdownPlaceholders {
			if _, ok := rec[name]; !ok {
				rec[name] = models.Null()
			}
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

// parseCount coerces text to an integer, yielding null for anything that is
// not a plain number.
func parseCount(s string) models.Value {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return models.Int(int64(f))
	}
	return models.Null()
}

func joinPresent(sep, a string, hasA bool, b string, hasB bool) string {
	parts := make([]string, 0, 2)
	if a = strings.TrimSpace(a); hasA && a != "" {
		parts = append(parts, a)
	}
	if b = strings.TrimSpace(b); hasB && b != "" {
		parts = append(parts, b)
	}
	return strings.Join(parts, sep)
}

func dateValue(s string, present bool) models.Value {
	if !present {
		return models.Null()
	}
	if t, ok := ParseDate(s); ok {
		return models.Date(t)
	}
	return models.Null()
}
