package cmd

import (
	"errors"
	"time"

	"github.com/expki/go-dataminer/cache"
	"github.com/expki/go-dataminer/catalog"
	"github.com/expki/go-dataminer/config"
	"github.com/expki/go-dataminer/database"
	"github.com/expki/go-dataminer/logger"
	"github.com/spf13/cobra"
)

type scrapeOptions struct {
	output string
	pages  int
	quiet  bool
}

func newScrapeCmd(g *globals) *cobra.Command {
	var opts scrapeOptions

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Fetch the configured catalog and export it as CSV",
		Long: `Walks the listing pages of every category in the "scrape" config section,
visits each distinct product and writes one CSV row per memory module.

When a database is configured, fetched pages are kept there and reused on the next run,
and the exported rows are upserted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.cfg
			if opts.output != "" {
				cfg.Scrape.Output = opts.output
			}
			if opts.pages > 0 {
				cfg.Scrape.Pages = opts.pages
			}
			return runScrape(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (overrides config)")
	cmd.Flags().IntVar(&opts.pages, "pages", 0, "Listing pages per category (overrides config)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Hide progress bars")
	return cmd
}

func runScrape(cmd *cobra.Command, cfg config.Config, opts scrapeOptions) (err error) {
	ctx := cmd.Context()

	network, err := catalog.NewHTTPFetcher(cfg.Scrape)
	if err != nil {
		return err
	}

	var (
		store catalog.PageStore
		sink  catalog.ProductSink
	)
	if cfg.Database.Enabled() {
		db, err := database.New(cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Sugar().Warnf("close database: %v", closeErr)
			}
		}()
		store, sink = db, db
	} else {
		logger.Sugar().Debug("no database configured, pages are cached in memory only")
	}

	memory := cache.NewCache[[]byte](ctx, config.CACHE_DURATION, config.CACHE_CLEANUP)
	defer memory.Close()

	progress := cmd.ErrOrStderr()
	if opts.quiet {
		progress = nil
	}
	scraper, err := catalog.NewScraper(cfg.Scrape, catalog.NewCachedFetcher(memory, store, network), sink, progress)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := scraper.Run(ctx)
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			logger.Sugar().Warnf("scrape canceled after %s", time.Since(start).Round(time.Millisecond))
		}
		return err
	}
	for _, result := range results {
		cmd.Printf("%s: %d modules (%d skipped)\n", result.Category, len(result.Modules), result.Skipped)
	}
	return nil
}
