// Package gopretty implements a human-readable scrutinaut.SessionEncoder
// that renders each page as a table using jedib0t/go-pretty.
package gopretty

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fwojciec/scrutinaut"
	"github.com/jedib0t/go-pretty/v6/table"
)

// DefaultValueWidth caps the width of the value column before wrapping.
const DefaultValueWidth = 80

// Ensure Encoder implements scrutinaut.SessionEncoder at compile time.
var _ scrutinaut.SessionEncoder = (*Encoder)(nil)

// Encoder writes one table per URL with a row per extracted field.
type Encoder struct {
	// ValueWidth wraps long values; zero disables wrapping.
	ValueWidth int
}

// NewEncoder creates a new Encoder with DefaultValueWidth.
func NewEncoder() *Encoder {
	return &Encoder{ValueWidth: DefaultValueWidth}
}

// Encode implements scrutinaut.SessionEncoder.
func (e *Encoder) Encode(w io.Writer, session *scrutinaut.Session) error {
	if session.Len() == 0 {
		_, err := fmt.Fprintln(w, "No pages scraped")
		return err
	}

	for i, url := range session.URLs() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		result, _ := session.Get(url)
		if _, err := fmt.Fprintln(w, e.render(url, result)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) render(url string, r *scrutinaut.ExtractResult) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(url)
	t.AppendHeader(table.Row{"Field", "Value"})
	if e.ValueWidth > 0 {
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: e.ValueWidth},
		})
	}

	t.AppendRow(table.Row{"title", orEmpty(r.Title)})
	t.AppendRow(table.Row{"meta_description", orEmpty(r.MetaDescription)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"headings", list(r.Headings)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"links", list(r.Links)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"images", list(r.Images)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"opengraph", properties(r.OpenGraph)})

	return t.Render()
}

func orEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "[empty]"
	}
	return s
}

func list(items []string) string {
	if len(items) == 0 {
		return "[empty]"
	}
	return strings.Join(items, "\n")
}

func properties(og map[string]string) string {
	if len(og) == 0 {
		return "[empty]"
	}
	names := make([]string, 0, len(og))
	for name := range og {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+": "+og[name])
	}
	return strings.Join(lines, "\n")
}
