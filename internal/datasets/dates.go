package datasets

import (
	"regexp"
	"strings"
	"time"
)

var (
	abbrevDotRe = regexp.MustCompile(`([A-Za-z]+)\.`)
	septRe      = regexp.MustCompile(`(?i)\bsept\b`)
	spacesRe    = regexp.MustCompile(`\s+`)
)

var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01-02",
	"1/2/2006",
	"01/02/06",
}

// ParseDate reads calendar dates as printed in the source tables, e.g.
// "Sept. 30, 1976" or "Jan. 25, 2019". It reports false for anything else.
func ParseDate(text string) (time.Time, bool) {
	s := abbrevDotRe.ReplaceAllString(text, "$1")
	s = septRe.ReplaceAllString(s, "Sep")
	s = strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
