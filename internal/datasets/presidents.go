package datasets

import (
	"regexp"
	"strconv"
	"strings"

	"gov-tables/internal/models"
)

var presidentRenames = map[string]string{
	"no.":             "president_number",
	"president":       "name",
	"birthplace":      "birthplace",
	"political_party": "party",
	"term":            "term_of_office",
}

var (
	footnoteRe = regexp.MustCompile(`\[.*?\]`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// Presidents maps the Britannica list of U.S. presidents.
type Presidents struct{}

func (Presidents) Map(t models.Table) models.RecordSet {
	var (
		keep    []int
		columns []string
	)
	for i, h := range t.Header {
		if strings.TrimSpace(h) == "" {
			continue
		}
		name := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(h)), " ", "_")
		if canonical, ok := presidentRenames[name]; ok {
			name = canonical
		}
		keep = append(keep, i)
		columns = append(columns, name)
	}

	out := models.RecordSet{
		Columns: appendUnique(columns, "term_start", "term_end"),
		Records: []models.Record{},
	}
	for _, row := range t.Rows {
		rec := make(models.Record, len(out.Columns))
		for j, i := range keep {
			v, ok := cellAt(row, i)
			if !ok {
				rec[columns[j]] = models.Null()
				continue
			}
			rec[columns[j]] = models.String(footnoteRe.ReplaceAllString(v, ""))
		}

		number, ok := presidentNumber(rec["president_number"])
		if !ok {
			continue
		}
		rec["president_number"] = models.Int(number)

		term, ok := rec["term_of_office"]
		if ok && !term.IsNull() {
			trimmed := strings.TrimSpace(term.Str)
			rec["term_of_office"] = models.String(trimmed)
			start, end := ParseTerm(trimmed)
			rec["term_start"] = models.IntPtr(start)
			rec["term_end"] = models.IntPtr(end)
		} else {
			rec["term_start"] = models.Null()
			rec["term_end"] = models.Null()
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

// presidentNumber keeps only the digits of a cell such as "16." and reports
// false when nothing usable is left.
func presidentNumber(v models.Value) (int64, bool) {
	if v.Kind != models.KindString {
		return 0, false
	}
	digits := strings.TrimSpace(nonDigitRe.ReplaceAllString(v.Str, ""))
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
