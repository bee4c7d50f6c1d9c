package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/scrutinaut"
	"github.com/fwojciec/scrutinaut/goquery"
	scrutinauthttp "github.com/fwojciec/scrutinaut/http"
	scrutinautslog "github.com/fwojciec/scrutinaut/slog"
)

// Version is reported by --version. Overridden at build time with -ldflags.
var Version = "1.0.0"

const usage = "Usage: scrutinaut [flags] [--] <URL1> [URL2 ...]"

// ErrNoURLs is returned when neither URL arguments nor a URL file are given.
var ErrNoURLs = errors.New("no URLs provided")

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

// ReportError prints err to w unless Run has already explained it with the
// usage line.
func ReportError(w io.Writer, err error) {
	if errors.Is(err, ErrNoURLs) {
		return
	}
	fmt.Fprintln(w, err)
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
// Per-URL failures are reported on stderr and never make Run fail;
// only usage errors and output failures do.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return ErrNoURLs
	}

	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("scrutinaut"),
		kong.Description("Scrape web pages for titles, headings, links, images and OpenGraph metadata. Put -- before URL arguments that start with a dash."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }), // Don't exit on help or version
		kong.Vars{"version": "scrutinaut " + Version},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	urls, err := cli.allURLs()
	if err != nil {
		return err
	}
	if len(urls) == 0 && cli.File == "" {
		fmt.Fprintln(stderr, usage)
		return ErrNoURLs
	}

	encoder, err := newEncoder(cli.Format)
	if err != nil {
		return err
	}

	// Wire dependencies
	var fetcher scrutinaut.Fetcher = scrutinauthttp.NewFetcher(scrutinauthttp.WithTimeout(cli.Timeout))
	var extractor scrutinaut.Extractor = goquery.NewExtractor()
	if cli.Verbose {
		logger := newLogger(stderr)
		fetcher = scrutinautslog.NewLoggingFetcher(fetcher, logger)
		extractor = scrutinautslog.NewLoggingExtractor(extractor, logger)
	}
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Scraper: NewSequentialScraper(fetcher, extractor),
		Encoder: encoder,
	}

	cmd := &ScrapeCmd{
		URLs:   urls,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// newLogger returns a debug-level logger writing human-friendly lines to w.
func newLogger(w io.Writer) *slog.Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.DebugLevel,
		Prefix:          "scrutinaut",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return slog.New(handler)
}
