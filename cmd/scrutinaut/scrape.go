package main

import (
	"fmt"

	"github.com/fwojciec/scrutinaut"
	"github.com/fwojciec/scrutinaut/fs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	progress := func(p scrutinaut.ScrapeProgress) {
		if p.Error == nil {
			return
		}
		if scrutinaut.ErrorCode(p.Error) == scrutinaut.EINVALID {
			fmt.Fprintf(deps.Stderr, "Invalid URL: %s\n", p.URL)
			return
		}
		fmt.Fprintf(deps.Stderr, "Error scraping %s: %s\n", p.URL, scrutinaut.ErrorMessage(p.Error))
	}

	session, err := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	if c.Output == "" {
		return deps.Encoder.Encode(deps.Stdout, session)
	}
	return c.writeFile(deps, session)
}

func (c *ScrapeCmd) writeFile(deps *Dependencies, session *scrutinaut.Session) error {
	f, err := fs.CreateAtomicFile(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := deps.Encoder.Encode(f, session); err != nil {
		_ = f.Abort()
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := f.Commit(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
