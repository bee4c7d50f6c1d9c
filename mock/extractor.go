package mock

import "github.com/fwojciec/scrutinaut"

var _ scrutinaut.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of scrutinaut.Extractor.
type Extractor struct {
	ExtractFn func(html string) *scrutinaut.ExtractResult
}

func (e *Extractor) Extract(html string) *scrutinaut.ExtractResult {
	return e.ExtractFn(html)
}
