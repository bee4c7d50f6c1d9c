// Package goquery implements scrutinaut.Extractor on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/scrutinaut"
)

// Selectors are compiled once and shared by every Extract call.
var (
	titleSelector       = cascadia.MustCompile("title")
	anchorSelector      = cascadia.MustCompile("a")
	imageSelector       = cascadia.MustCompile("img")
	descriptionSelector = cascadia.MustCompile(`meta[name="description"]`)
	openGraphSelector   = cascadia.MustCompile(`meta[property^="og:"]`)

	// Headings are grouped by level, not interleaved by position.
	headingSelectors = []cascadia.Selector{
		cascadia.MustCompile("h1"),
		cascadia.MustCompile("h2"),
		cascadia.MustCompile("h3"),
	}
)

// Ensure Extractor implements scrutinaut.Extractor at compile time.
var _ scrutinaut.Extractor = (*Extractor)(nil)

// Extractor summarizes HTML pages using CSS selectors over a goquery document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns its summary.
// The HTML5 parser repairs malformed markup, so every field degrades to its
// empty value when the elements it looks for are missing.
func (e *Extractor) Extract(html string) *scrutinaut.ExtractResult {
	result := scrutinaut.NewExtractResult()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return result
	}

	result.Title = doc.FindMatcher(titleSelector).First().Text()
	result.Headings = extractHeadings(doc)
	result.Links = collectAttr(doc.FindMatcher(anchorSelector), "href")
	result.MetaDescription = doc.FindMatcher(descriptionSelector).First().AttrOr("content", "")
	result.Images = collectAttr(doc.FindMatcher(imageSelector), "src")
	result.OpenGraph = extractOpenGraph(doc)

	return result
}

// extractHeadings returns the text of all h1 elements, then h2, then h3,
// each group in document order.
func extractHeadings(doc *goquery.Document) []string {
	headings := []string{}
	for _, sel := range headingSelectors {
		doc.FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
			headings = append(headings, s.Text())
		})
	}
	return headings
}

// collectAttr returns the raw value of attr for every element in sel that
// carries it, in document order. Elements without the attribute are skipped.
func collectAttr(sel *goquery.Selection, attr string) []string {
	values := []string{}
	sel.Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(attr); ok {
			values = append(values, v)
		}
	})
	return values
}

// extractOpenGraph maps og:* properties to their content. Later duplicates
// overwrite earlier ones.
func extractOpenGraph(doc *goquery.Document) map[string]string {
	og := map[string]string{}
	doc.FindMatcher(openGraphSelector).Each(func(_ int, s *goquery.Selection) {
		property, _ := s.Attr("property")
		content, ok := s.Attr("content")
		if !ok {
			return
		}
		og[property] = content
	})
	return og
}
