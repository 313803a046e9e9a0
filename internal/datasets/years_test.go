package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(n int) *int { return &n }

func TestParseTerm(t *testing.T) {
	tests := []struct {
		term       string
		start, end *int
	}{
		{"1897–1901", intp(1897), intp(1901)},
		{"1897–'01", intp(1897), intp(1901)},
		{"1841", intp(1841), intp(1841)},
		{"1789—97", intp(1789), intp(1797)},
		{"1885-89", intp(1885), intp(1889)},
		{"1963–69*", intp(1963), intp(1969)},
		{"1923–29†", intp(1923), intp(1929)},
		{"1993–2001", intp(1993), intp(2001)},
		{"1999–'00", intp(1999), intp(2000)},
		{"2021–", intp(2021), intp(2021)},
		{"–", nil, nil},
		{"", nil, nil},
		{"present", nil, nil},
		{"1861–present", intp(1861), nil},
		{"1861–65–69", intp(1861), intp(1865)},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			start, end := ParseTerm(tt.term)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestYearFragment(t *testing.T) {
	assert.Equal(t, intp(1901), YearFragment("'01", intp(1897)))
	assert.Equal(t, intp(1850), YearFragment("50", intp(1849)))
	assert.Equal(t, intp(1849), YearFragment("49", intp(1849)))
	assert.Equal(t, intp(1), YearFragment("'01", nil), "no anchor: taken literally")
	assert.Equal(t, intp(5), YearFragment("term 5", intp(1900)))
	assert.Equal(t, intp(1901), YearFragment("Jan 1897 to 1901", nil), "last run wins")
	assert.Nil(t, YearFragment("", intp(1900)))
	assert.Nil(t, YearFragment("n/a", intp(1900)))
	assert.Nil(t, YearFragment("99999999999999999999", nil), "too long for an int")
}
