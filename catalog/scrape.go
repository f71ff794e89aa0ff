package catalog

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/expki/go-dataminer/config"
	"github.com/expki/go-dataminer/database"
	"github.com/expki/go-dataminer/logger"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// ProductSink receives the scraped rows. *database.Database implements it.
type ProductSink interface {
	SaveProducts(ctx context.Context, products []database.Product) error
}

// Result is the outcome of one category.
type Result struct {
	Category string
	Modules  []MemoryModule
	// Skipped counts product pages that were missing or malformed.
	Skipped int
}

type Scraper struct {
	cfg      config.Scrape
	base     *url.URL
	fetcher  Fetcher
	sink     ProductSink
	progress io.Writer
}

// NewScraper validates cfg and prepares a job. sink may be nil; progress receives the
// progress bars and may be io.Discard.
func NewScraper(cfg config.Scrape, fetcher Fetcher, sink ProductSink, progress io.Writer) (*Scraper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Join(errors.New("invalid base url"), err)
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Scraper{
		cfg:      cfg,
		base:     base,
		fetcher:  fetcher,
		sink:     sink,
		progress: progress,
	}, nil
}

// Run collects every category, writes the CSV exports and hands the rows to the sink.
func (s *Scraper) Run(ctx context.Context) (results []Result, err error) {
	start := time.Now()
	results, err = s.Collect(ctx)
	if err != nil {
		return nil, err
	}
	for _, result := range results {
		path := s.outputPath(result.Category, len(results) > 1)
		if err := writeExport(path, result.Modules); err != nil {
			return nil, err
		}
		logger.Sugar().Infof("%s: wrote %d rows to %s (%d skipped)", result.Category, len(result.Modules), path, result.Skipped)

		if s.sink != nil {
			if err := s.sink.SaveProducts(ctx, toProducts(result)); err != nil {
				return nil, err
			}
		}
	}
	logger.Sugar().Infof("scrape finished in %s", time.Since(start).Round(time.Millisecond))
	return results, nil
}

// Collect fetches and parses every category without writing anything.
func (s *Scraper) Collect(ctx context.Context) (results []Result, err error) {
	categories := slices.Sorted(maps.Keys(s.cfg.Categories))
	for _, category := range categories {
		result, err := s.collectCategory(ctx, category, s.cfg.Categories[category])
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Scraper) collectCategory(ctx context.Context, category, prefix string) (result Result, err error) {
	result.Category = category

	// listing pages
	unique := make(map[Listing]struct{})
	for page := 1; page <= s.cfg.Pages; page++ {
		pageURL := prefix + strconv.Itoa(page)
		body, err := s.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return result, errors.Join(fmt.Errorf("%s: listing page %d", category, page), err)
		}
		listings, err := ParseListing(body, s.base)
		if err != nil {
			return result, err
		}
		logger.Sugar().Debugf("%s: page %d has %d products", category, page, len(listings))
		for _, listing := range listings {
			unique[listing] = struct{}{}
		}
	}
	listings := slices.SortedFunc(maps.Keys(unique), func(a, b Listing) int {
		return cmp.Or(strings.Compare(a.URL, b.URL), strings.Compare(a.Price, b.Price))
	})

	// product pages
	bar := progressbar.NewOptions(len(listings),
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionSetDescription(category),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Close()

	modules := make([]*MemoryModule, len(listings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.GetConcurrency())
	for idx, listing := range listings {
		g.Go(func() error {
			defer bar.Add(1)
			module, err := s.product(gctx, listing)
			if err == nil {
				modules[idx] = &module
				return nil
			}
			var statusErr *StatusError
			if errors.Is(err, ErrMalformedProduct) || errors.As(err, &statusErr) {
				logger.Sugar().Warnf("%s: skipping %s: %v", category, listing.URL, err)
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	for _, module := range modules {
		if module == nil {
			result.Skipped++
			continue
		}
		result.Modules = append(result.Modules, *module)
	}
	return result, nil
}

func (s *Scraper) product(ctx context.Context, listing Listing) (module MemoryModule, err error) {
	price, err := ParsePrice(listing.Price)
	if err != nil {
		return module, err
	}
	body, err := s.fetcher.Fetch(ctx, listing.URL)
	if err != nil {
		return module, err
	}
	fields, err := ParseProduct(body)
	if err != nil {
		return module, err
	}
	return ToMemoryModule(listing.URL, price, fields)
}

// outputPath suffixes the configured output with the category when several are exported.
func (s *Scraper) outputPath(category string, multiple bool) string {
	if !multiple {
		return s.cfg.Output
	}
	ext := filepath.Ext(s.cfg.Output)
	return strings.TrimSuffix(s.cfg.Output, ext) + "_" + category + ext
}

func writeExport(path string, modules []MemoryModule) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Join(errors.New("could not create export file"), err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errors.Join(errors.New("could not close export file"), closeErr)
		}
	}()
	if err = ExportCSV(file, modules); err != nil {
		return errors.Join(errors.New("could not write export file"), err)
	}
	return nil
}

func toProducts(result Result) []database.Product {
	products := make([]database.Product, len(result.Modules))
	for i, m := range result.Modules {
		products[i] = database.Product{
			URL:      m.URL,
			Category: result.Category,
			Type:     m.Type,
			Freq:     m.Freq,
			Size:     m.Size,
			Price:    m.Price,
		}
	}
	return products
}
