package datasets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gov-tables/internal/models"
)

var shutdownHeader = []string{
	"Fiscal Year",
	"Date Funding Ended",
	"Duration of Funding Gap (in Days)",
	"Date Funding Restored",
	"Shutdown Procedures Followed",
	"Legislation Restoring Funding",
}

func TestShutdownsMap(t *testing.T) {
	table := models.Table{
		Header: shutdownHeader,
		Rows: [][]string{
			{"1977", "Sept. 30, 1976", "10", "Oct. 11, 1976", "No", "P.L. 94-473"},
			{"2019", "Dec. 21, 2018", "10 days", "", "Yes, agencies closed", "P.L. 116-5"},
			{"1980", "", "", "", "", ""},
		},
	}
	rs := Shutdowns{}.Map(table)

	require.Equal(t, []string{
		"fiscal_year", "funding_gap_start", "duration_days", "funding_gap_end", "shutdown_flag",
		"restoring_legislation", "date_range", "start_date", "end_date", "president",
		"party_control_house", "party_control_senate", "major_issue", "notes",
	}, rs.Columns)
	require.Equal(t, 3, rs.Len())

	first := rs.Records[0]
	assert.Equal(t, models.String("1977"), first["fiscal_year"])
	assert.Equal(t, models.Int(10), first["duration_days"])
	assert.Equal(t, models.Bool(false), first["shutdown_flag"])
	assert.Equal(t, models.String("Sept. 30, 1976 – Oct. 11, 1976"), first["date_range"])
	assert.Equal(t, models.Date(time.Date(1976, time.September, 30, 0, 0, 0, 0, time.UTC)), first["start_date"])
	assert.Equal(t, models.Date(time.Date(1976, time.October, 11, 0, 0, 0, 0, time.UTC)), first["end_date"])
	for _, name := range shutdownPlaceholders {
		assert.True(t, first[name].IsNull(), name)
	}

	second := rs.Records[1]
	assert.True(t, second["duration_days"].IsNull(), "non-numeric duration becomes null")
	assert.Equal(t, models.Bool(true), second["shutdown_flag"])
	assert.Equal(t, models.String("Dec. 21, 2018"), second["date_range"])
	assert.True(t, second["end_date"].IsNull())

	third := rs.Records[2]
	assert.Equal(t, models.String(""), third["date_range"])
	assert.True(t, third["start_date"].IsNull())
	assert.Equal(t, models.Bool(false), third["shutdown_flag"], "empty text does not contain Yes")
}

func TestShutdownsFlagIsCaseSensitive(t *testing.T) {
	rs := Shutdowns{}.Map(models.Table{
		Header: shutdownHeader,
		Rows:   [][]string{{"1996", "", "", "", "yes", ""}},
	})
	assert.Equal(t, models.Bool(false), rs.Records[0]["shutdown_flag"])
}

func TestShutdownsMissingColumns(t *testing.T) {
	rs := Shutdowns{}.Map(models.Table{
		Header: []string{"Fiscal Year", "Remarks"},
		Rows:   [][]string{{"1982", "short gap"}},
	})
	require.Equal(t, "Remarks", rs.Columns[1])
	rec := rs.Records[0]
	assert.Equal(t, models.String("short gap"), rec["Remarks"])
	assert.Equal(t, models.String(""), rec["date_range"])
	assert.True(t, rec["start_date"].IsNull())
	_, hasFlag := rec["shutdown_flag"]
	assert.False(t, hasFlag)
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, models.Int(3), parseCount(" 3 "))
	assert.Equal(t, models.Int(21), parseCount("21.0"))
	assert.True(t, parseCount("10 days").IsNull())
	assert.True(t, parseCount("").IsNull())
	assert.True(t, parseCount("2.5").IsNull())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"Sept. 30, 1976", time.Date(1976, time.September, 30, 0, 0, 0, 0, time.UTC), true},
		{"Oct. 11, 1976", time.Date(1976, time.October, 11, 0, 0, 0, 0, time.UTC), true},
		{"Jan. 25, 2019", time.Date(2019, time.January, 25, 0, 0, 0, 0, time.UTC), true},
		{"November 14, 1995", time.Date(1995, time.November, 14, 0, 0, 0, 0, time.UTC), true},
		{"May 1, 1980", time.Date(1980, time.May, 1, 0, 0, 0, 0, time.UTC), true},
		{"  Dec.\n22, 2018 ", time.Date(2018, time.December, 22, 0, 0, 0, 0, time.UTC), true},
		{"2013-10-01", time.Date(2013, time.October, 1, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"ongoing", time.Time{}, false},
		{"10 days", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}
