package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/scrutinaut"
)

// Ensure LoggingExtractor implements scrutinaut.Extractor.
var _ scrutinaut.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of result sizes.
type LoggingExtractor struct {
	next   scrutinaut.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next scrutinaut.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
func (e *LoggingExtractor) Extract(html string) *scrutinaut.ExtractResult {
	begin := time.Now()
	result := e.next.Extract(html)
	e.logger.Debug("extract",
		"title", result.Title,
		"headings", len(result.Headings),
		"links", len(result.Links),
		"images", len(result.Images),
		"opengraph", len(result.OpenGraph),
		"duration", time.Since(begin),
	)
	return result
}
