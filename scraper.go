package scrutinaut

import "context"

// ScrapeProgress reports the outcome of processing one URL.
type ScrapeProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ScrapeProgressFunc is called after each URL is processed.
type ScrapeProgressFunc func(ScrapeProgress)

// Scraper fetches and summarizes a batch of pages.
// Implementations hide URL validation, fetching and extraction.
// Per-URL failures are reported through progress and leave the URL out
// of the session; they never abort the batch.
type Scraper interface {
	ScrapeAll(ctx context.Context, urls []string, progress ScrapeProgressFunc) (*Session, error)
}
