// Package config loads batch run settings from a YAML file and merges them
// with the built-in dataset definitions.
package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"gov-tables/internal/crawler"
	"gov-tables/internal/datasets"
	"gov-tables/internal/parser"
)

// File is the on-disk schema.
type File struct {
	UserAgent string        `yaml:"userAgent"`
	Charset   string        `yaml:"charset"`
	Strategy  string        `yaml:"strategy"`
	Timeout   time.Duration `yaml:"timeout"`
	SizeCap   int64         `yaml:"sizeCap"`
	Datasets  []Dataset     `yaml:"datasets"`
}

// Dataset overrides one built-in dataset. Empty fields keep the defaults.
type Dataset struct {
	Name       string `yaml:"name"`
	URL        string `yaml:"url"`
	Output     string `yaml:"output"`
	TableIndex *int   `yaml:"tableIndex"`
}

func Load(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}

// FetchOptions returns the crawler settings shared by every dataset.
func (f File) FetchOptions() crawler.Options {
	return crawler.Options{
		Timeout:   f.Timeout,
		SizeCap:   f.SizeCap,
		UserAgent: f.UserAgent,
		Charset:   f.Charset,
	}
}

// ParserStrategy validates the configured strategy.
func (f File) ParserStrategy() (parser.Strategy, error) {
	return parser.ParseStrategy(f.Strategy)
}

// Resolve merges each entry with its built-in definition. With no entries,
// every built-in dataset is returned.
func (f File) Resolve() ([]datasets.Dataset, error) {
	if len(f.Datasets) == 0 {
		var out []datasets.Dataset
		for _, name := range datasets.Names() {
			d, _ := datasets.Lookup(name)
			out = append(out, d)
		}
		return out, nil
	}
	out := make([]datasets.Dataset, 0, len(f.Datasets))
	for _, entry := range f.Datasets {
		d, ok := datasets.Lookup(entry.Name)
		if !ok {
			return nil, fmt.Errorf("unknown dataset %q", entry.Name)
		}
		if entry.URL != "" {
			d.URL = entry.URL
		}
		if entry.Output != "" {
			d.Output = entry.Output
		}
		if entry.TableIndex != nil {
			if *entry.TableIndex < 0 {
				return nil, fmt.Errorf("dataset %q: negative tableIndex", entry.Name)
			}
			d.TableIndex = *entry.TableIndex
		}
		out = append(out, d)
	}
	return out, nil
}
