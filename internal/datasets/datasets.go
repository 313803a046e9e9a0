// Package datasets maps normalised tables onto typed, canonically named
// records for each supported source page.
package datasets

import (
	"sort"

	"gov-tables/internal/models"
)

// Mapper renames, coerces and derives columns for one dataset.
type Mapper interface {
	Map(models.Table) models.RecordSet
}

// Dataset describes where a table lives and how it is persisted.
type Dataset struct {
	Name       string
	URL        string
	Output     string
	TableIndex int
	Mapper     Mapper
}

var registry = map[string]Dataset{
	"shutdowns": {
		Name:   "shutdowns",
		URL:    "https://history.house.gov/Institution/Shutdown/Government-Shutdowns/",
		Output: "data/metadata/shutdowns_master.csv",
		Mapper: Shutdowns{},
	},
	"presidents": {
		Name:   "presidents",
		URL:    "https://www.britannica.com/topic/Presidents-of-the-United-States-1846696",
		Output: "data/metadata/us_presidents_britannica.csv",
		Mapper: Presidents{},
	},
}

// Lookup returns the built-in definition of a dataset.
func Lookup(name string) (Dataset, bool) {
	d, ok := registry[name]
	return d, ok
}

// Names lists the built-in datasets in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// cellAt returns the cell for column i, reporting false when the row does not
// carry that column.
func cellAt(row []string, i int) (string, bool) {
	if i < 0 || i >= len(row) {
		return "", false
	}
	return row[i], true
}

// appendUnique returns a copy of columns followed by every extra name not
// already present.
func appendUnique(columns []string, extra ...string) []string {
	out := make([]string, 0, len(columns)+len(extra))
	seen := make(map[string]bool, cap(out))
	for _, c := range append(append([]string{}, columns...), extra...) {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
