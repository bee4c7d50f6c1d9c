package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/scrutinaut"
	"github.com/fwojciec/scrutinaut/mock"
	scrutinautslog "github.com/fwojciec/scrutinaut/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs result sizes at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		want := scrutinaut.NewExtractResult()
		want.Title = "Home"
		want.Links = []string{"/a", "/b"}
		inner := &mock.Extractor{
			ExtractFn: func(html string) *scrutinaut.ExtractResult {
				return want
			},
		}

		extractor := scrutinautslog.NewLoggingExtractor(inner, logger)
		got := extractor.Extract("<html></html>")

		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "title=Home")
		assert.Contains(t, output, "links=2")
		assert.Contains(t, output, "headings=0")
		assert.Contains(t, output, "duration=")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) *scrutinaut.ExtractResult {
				return scrutinaut.NewExtractResult()
			},
		}

		scrutinautslog.NewLoggingExtractor(inner, logger).Extract("")

		assert.Empty(t, buf.String())
	})
}
