// Package pipeline wires fetch, extraction, normalisation, mapping and
// persistence into a single synchronous run per dataset.
package pipeline

import (
	"context"
	"fmt"

	"gov-tables/internal/crawler"
	"gov-tables/internal/datasets"
	"gov-tables/internal/ioformats"
	"gov-tables/internal/models"
	"gov-tables/internal/normalize"
	"gov-tables/internal/parser"
	"gov-tables/pkg/logger"
)

type Runner struct {
	client *crawler.HTTPClient
	parser *parser.Parser
	log    *logger.Logger
}

func New(client *crawler.HTTPClient, p *parser.Parser, l *logger.Logger) *Runner {
	return &Runner{client: client, parser: p, log: l}
}

// Tables fetches url and returns every table on the page, normalised.
func (r *Runner) Tables(ctx context.Context, url string) (models.Collection, error) {
	page, err := r.client.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	r.log.Debugf("fetched %s (%d bytes, %s)", page.URL, len(page.Text), page.Elapsed)

	raw, err := r.parser.Extract(page.Text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	r.log.Debugf("found %d tables using %s parser", len(raw), r.parser.Strategy())
	return normalize.Collection(raw), nil
}

// Table returns the normalised table at index on url.
func (r *Runner) Table(ctx context.Context, url string, index int) (models.Table, error) {
	tables, err := r.Tables(ctx, url)
	if err != nil {
		return models.Table{}, err
	}
	t, err := parser.Select(tables, index)
	if err != nil {
		return models.Table{}, fmt.Errorf("%s: %w", url, err)
	}
	return t, nil
}

// Build produces the mapped records for d without touching the filesystem.
func (r *Runner) Build(ctx context.Context, d datasets.Dataset) (models.RecordSet, error) {
	r.log.Infof("Fetching %s table from %s ...", d.Name, d.URL)
	t, err := r.Table(ctx, d.URL, d.TableIndex)
	if err != nil {
		return models.RecordSet{}, err
	}
	return d.Mapper.Map(t), nil
}

// Run builds d and overwrites its output file.
func (r *Runner) Run(ctx context.Context, d datasets.Dataset) (models.RecordSet, error) {
	rs, err := r.Build(ctx, d)
	if err != nil {
		return models.RecordSet{}, err
	}
	if err := ioformats.WriteCSV(d.Output, rs); err != nil {
		return models.RecordSet{}, fmt.Errorf("write %s: %w", d.Output, err)
	}
	r.log.Infof("Saved %d %s records to %s", rs.Len(), d.Name, d.Output)
	return rs, nil
}
