package main

import (
	"context"

	"github.com/fwojciec/scrutinaut"
)

// Ensure SequentialScraper implements scrutinaut.Scraper at compile time.
var _ scrutinaut.Scraper = (*SequentialScraper)(nil)

// SequentialScraper implements scrutinaut.Scraper by validating, fetching
// and extracting each URL in turn. Nothing runs concurrently.
type SequentialScraper struct {
	fetcher   scrutinaut.Fetcher
	extractor scrutinaut.Extractor
}

// NewSequentialScraper creates a new SequentialScraper with the given dependencies.
func NewSequentialScraper(fetcher scrutinaut.Fetcher, extractor scrutinaut.Extractor) *SequentialScraper {
	return &SequentialScraper{
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// ScrapeAll processes urls in order and returns the successful results.
// The context is checked between URLs; if it is done, the partial session
// is returned with the context's error.
func (s *SequentialScraper) ScrapeAll(
	ctx context.Context,
	urls []string,
	progress scrutinaut.ScrapeProgressFunc,
) (*scrutinaut.Session, error) {
	session := scrutinaut.NewSession()
	total := len(urls)

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return session, err
		}

		err := s.scrape(ctx, session, url)

		if progress != nil {
			progress(scrutinaut.ScrapeProgress{
				URL:       url,
				Completed: i + 1,
				Total:     total,
				Error:     err,
			})
		}
	}

	return session, nil
}

func (s *SequentialScraper) scrape(ctx context.Context, session *scrutinaut.Session, url string) error {
	if err := scrutinaut.ValidateURL(url); err != nil {
		return err
	}

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	session.Set(url, s.extractor.Extract(html))
	return nil
}
