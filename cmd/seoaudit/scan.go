package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/theOrangeShi/seo-analazing/analyzer"
	"github.com/theOrangeShi/seo-analazing/config"
	"github.com/theOrangeShi/seo-analazing/crawler"
	"github.com/theOrangeShi/seo-analazing/fetcher"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	var fullSite bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "scan <url>",
		Short: "Run a one-shot SEO audit and print the report as JSON",
		Long: `Scan audits a single URL and prints the full report to stdout.

The scheme may be omitted; https:// is assumed. With --full-site, a
bounded crawl feeds the cross-page checks (duplicate titles, orphan
pages, missing headings).

Examples:
  seoaudit scan example.com
  seoaudit scan --full-site https://example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], fullSite, quiet)
		},
	}

	cmd.Flags().BoolVar(&fullSite, "full-site", false, "crawl the site for cross-page checks")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	return cmd
}

func runScan(cmd *cobra.Command, rawURL string, fullSite, quiet bool) error {
	cfg := config.Load()

	// Progress goes to stderr as plain text; the report owns stdout.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	fetch := fetcher.New(cfg.Fetch)
	crawl := crawler.New(fetch, cfg.Crawl)
	an := analyzer.New(fetch, crawl)

	var onProgress func(string)
	if !quiet {
		onProgress = func(msg string) {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		}
	}

	outcome, err := an.Analyze(cmd.Context(), rawURL, fullSite, onProgress)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(outcome.Report())
}
