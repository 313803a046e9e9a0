package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gov-tables/internal/parser"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datasets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAndResolve(t *testing.T) {
	path := writeConfig(t, `
userAgent: gov-shutdown-parser/1.0
charset: auto
strategy: dom
timeout: 30s
datasets:
  - name: shutdowns
    output: out/shutdowns.csv
  - name: presidents
    url: http://localhost/presidents
    tableIndex: 1
`)
	f, err := Load(path)
	require.NoError(t, err)

	opts := f.FetchOptions()
	assert.Equal(t, "gov-shutdown-parser/1.0", opts.UserAgent)
	assert.Equal(t, "auto", opts.Charset)
	assert.Equal(t, 30*time.Second, opts.Timeout)

	strategy, err := f.ParserStrategy()
	require.NoError(t, err)
	assert.Equal(t, parser.DOM, strategy)

	ds, err := f.Resolve()
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "out/shutdowns.csv", ds[0].Output)
	assert.Equal(t, "https://history.house.gov/Institution/Shutdown/Government-Shutdowns/", ds[0].URL)
	assert.Equal(t, 0, ds[0].TableIndex)
	assert.Equal(t, "http://localhost/presidents", ds[1].URL)
	assert.Equal(t, 1, ds[1].TableIndex)
	assert.NotNil(t, ds[1].Mapper)
}

func TestResolveDefaults(t *testing.T) {
	ds, err := File{}.Resolve()
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "presidents", ds[0].Name)
	assert.Equal(t, "shutdowns", ds[1].Name)
}

func TestResolveErrors(t *testing.T) {
	_, err := File{Datasets: []Dataset{{Name: "budgets"}}}.Resolve()
	assert.Error(t, err)

	neg := -1
	_, err = File{Datasets: []Dataset{{Name: "shutdowns", TableIndex: &neg}}}.Resolve()
	assert.Error(t, err)

	_, err = File{Strategy: "lxml"}.ParserStrategy()
	assert.ErrorIs(t, err, parser.ErrUnknownParser)

	_, err = Load(writeConfig(t, "datasets: [unterminated"))
	assert.Error(t, err)
}
