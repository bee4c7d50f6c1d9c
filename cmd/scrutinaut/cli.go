package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scrutinaut"
	"github.com/fwojciec/scrutinaut/fs"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs    []string         `arg:"" optional:"" name:"url" help:"URLs to scrape"`
	File    string           `short:"f" placeholder:"PATH" help:"Read more URLs from a file, one per line"`
	Format  string           `default:"json" enum:"json,indent,table,xml" help:"Output format: ${enum}"`
	Output  string           `short:"o" placeholder:"PATH" help:"Write output to a file instead of stdout"`
	Timeout time.Duration    `short:"t" default:"10s" help:"Fetch timeout per page"`
	Verbose bool             `short:"v" help:"Log every fetch and extraction to stderr"`
	Version kong.VersionFlag `help:"Print version and exit"`
}

// allURLs returns positional URLs followed by those read from --file.
func (c *CLI) allURLs() ([]string, error) {
	urls := append([]string(nil), c.URLs...)
	if c.File == "" {
		return urls, nil
	}

	fileURLs, err := fs.ReadURLFile(c.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read URL file: %w", err)
	}
	return append(urls, fileURLs...), nil
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scraper scrutinaut.Scraper
	Encoder scrutinaut.SessionEncoder
}

// ScrapeCmd scrapes a batch of URLs and writes the resulting session.
type ScrapeCmd struct {
	URLs   []string
	Output string
}
