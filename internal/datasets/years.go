package datasets

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Footnote markers are dropped; em-dashes and hyphens become en-dashes.
	termCleaner = strings.NewReplacer("*", "", "†", "", "—", "–", "-", "–")
	digitRunRe  = regexp.MustCompile(`\d+`)
)

// ParseTerm splits a term of office such as "1897–1901", "1897–'01" or "1841"
// into start and end years. A term without a range yields the same year
// twice; an unreadable part yields nil.
func ParseTerm(term string) (start, end *int) {
	var parts []string
	for _, p := range strings.Split(termCleaner.Replace(term), "–") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil, nil
	}
	start = YearFragment(parts[0], nil)
	if len(parts) == 1 {
		return start, copyInt(start)
	}
	return start, YearFragment(parts[1], start)
}

// YearFragment reads the last run of digits in fragment. Four digits are a
// full year. Two digits with an anchor are placed in the anchor's century,
// moving to the next century when that would land before the anchor. Any
// other run, or two digits without an anchor, is taken literally. Runs too
// long to fit an int yield nil.
func YearFragment(fragment string, anchor *int) *int {
	runs := digitRunRe.FindAllString(fragment, -1)
	if len(runs) == 0 {
		return nil
	}
	last := runs[len(runs)-1]
	n, err := strconv.Atoi(last)
	if err != nil {
		return nil
	}
	if len(last) == 2 && anchor != nil && *anchor != 0 {
		year := (*anchor/100)*100 + n
		if year < *anchor {
			year += 100
		}
		return &year
	}
	return &n
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
