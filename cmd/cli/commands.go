package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gov-tables/internal/config"
	"gov-tables/internal/crawler"
	"gov-tables/internal/datasets"
	"gov-tables/internal/ioformats"
	"gov-tables/internal/parser"
	"gov-tables/internal/pipeline"
	"gov-tables/pkg/logger"
)

type globalFlags struct {
	verbose   bool
	userAgent string
	charset   string
	strategy  string
	timeout   time.Duration
	rows      int
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "gov-tables",
		Short:         "Harvest government tables from public web pages into CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&g.userAgent, "user-agent", crawler.DefaultUserAgent, "User-Agent sent with the request")
	pf.StringVar(&g.charset, "charset", "utf-8", "Page encoding, or 'auto' to sniff it")
	pf.StringVar(&g.strategy, "strategy", string(parser.Tokenizer), "Table parser: tokenizer or dom")
	pf.DurationVar(&g.timeout, "timeout", 0, "Overall request timeout (0 uses transport defaults)")
	pf.IntVar(&g.rows, "rows", ioformats.PreviewRows, "Rows shown in the preview")

	for _, name := range datasets.Names() {
		d, _ := datasets.Lookup(name)
		root.AddCommand(newDatasetCmd(g, d))
	}
	root.AddCommand(newRunCmd(g), newTablesCmd(g), newShowCmd(g))
	return root
}

func (g *globalFlags) runner(cmd *cobra.Command, opts crawler.Options, strategy string) (*pipeline.Runner, error) {
	s, err := parser.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr(), g.verbose)
	return pipeline.New(crawler.NewHTTPClient(opts), parser.New(s), log), nil
}

func (g *globalFlags) fetchOptions() crawler.Options {
	return crawler.Options{Timeout: g.timeout, UserAgent: g.userAgent, Charset: g.charset}
}

func newDatasetCmd(g *globalFlags, d datasets.Dataset) *cobra.Command {
	cmd := &cobra.Command{
		Use:   d.Name,
		Short: fmt.Sprintf("Fetch the %s table and write %s", d.Name, d.Output),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if d.TableIndex < 0 {
				return fmt.Errorf("--index must not be negative")
			}
			r, err := g.runner(cmd, g.fetchOptions(), g.strategy)
			if err != nil {
				return err
			}
			rs, err := r.Run(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved cleaned %s dataset to %s\n", d.Name, d.Output)
			return ioformats.Preview(cmd.OutOrStdout(), rs, g.rows)
		},
	}
	cmd.Flags().StringVar(&d.URL, "url", d.URL, "Page holding the table")
	cmd.Flags().StringVarP(&d.Output, "output", "o", d.Output, "CSV file to write")
	cmd.Flags().IntVar(&d.TableIndex, "index", d.TableIndex, "Position of the table on the page")
	return cmd
}

func newRunCmd(g *globalFlags) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every dataset listed in a YAML config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			list, err := f.Resolve()
			if err != nil {
				return err
			}
			opts := f.FetchOptions()
			if opts.UserAgent == "" {
				opts.UserAgent = g.userAgent
			}
			if opts.Charset == "" {
				opts.Charset = g.charset
			}
			if opts.Timeout == 0 {
				opts.Timeout = g.timeout
			}
			strategy := f.Strategy
			if strategy == "" {
				strategy = g.strategy
			}
			r, err := g.runner(cmd, opts, strategy)
			if err != nil {
				return err
			}
			for _, d := range list {
				rs, err := r.Run(cmd.Context(), d)
				if err != nil {
					return fmt.Errorf("%s: %w", d.Name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %d records to %s\n", rs.Len(), d.Output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "datasets.yaml", "YAML file listing datasets")
	return cmd
}

func newTablesCmd(g *globalFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "tables <url>",
		Short: "Dump every normalised table on a page as NDJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.runner(cmd, g.fetchOptions(), g.strategy)
			if err != nil {
				return err
			}
			tables, err := r.Tables(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if out == "" {
				return ioformats.WriteNDJSON(cmd.OutOrStdout(), tables)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := ioformats.WriteNDJSON(f, tables); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "NDJSON file (default stdout)")
	return cmd
}

func newShowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <csv>",
		Short: "Preview a CSV written by an earlier run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ioformats.ReadCSV(args[0])
			if err != nil {
				return err
			}
			return ioformats.PreviewTable(cmd.OutOrStdout(), t, g.rows)
		},
	}
}
