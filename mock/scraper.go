package mock

import (
	"context"

	"github.com/fwojciec/scrutinaut"
)

var _ scrutinaut.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of scrutinaut.Scraper.
type Scraper struct {
	ScrapeAllFn func(ctx context.Context, urls []string, progress scrutinaut.ScrapeProgressFunc) (*scrutinaut.Session, error)
}

func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress scrutinaut.ScrapeProgressFunc) (*scrutinaut.Session, error) {
	return s.ScrapeAllFn(ctx, urls, progress)
}
