
//go:build integration

package integration

import (
	"bytes"
	"context"
	"testing"
	"time"

	"gov-tables/internal/crawler"
	"gov-tables/internal/datasets"
	"gov-tables/internal/parser"
	"gov-tables/internal/pipeline"
	"gov-tables/pkg/logger"
)

func TestLiveDatasets(t *testing.T) {
	// Live pages are subject to change / blocking.
	for _, name := range datasets.Names() {
		t.Run(name, func(t *testing.T) {
			d, _ := datasets.Lookup(name)
			var logs bytes.Buffer
			client := crawler.NewHTTPClient(crawler.Options{Timeout: 25 * time.Second})
			r := pipeline.New(client, parser.New(parser.Tokenizer), logger.NewWithWriter(&logs, true))

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			rs, err := r.Build(ctx, d)
			if err != nil {
				t.Skipf("skipping: live fetch or parse failed: %v", err)
				return
			}
			if rs.Len() == 0 {
				t.Errorf("expected records for %s", name)
			}
		})
	}
}
