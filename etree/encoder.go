// Package etree implements an XML scrutinaut.SessionEncoder using beevik/etree.
package etree

import (
	"io"
	"sort"

	"github.com/beevik/etree"
	"github.com/fwojciec/scrutinaut"
)

// Ensure Encoder implements scrutinaut.SessionEncoder at compile time.
var _ scrutinaut.SessionEncoder = (*Encoder)(nil)

// Encoder writes a session as an indented XML document:
//
//	<session>
//	  <page url="https://example.com">
//	    <title>...</title>
//	    <headings><heading>...</heading></headings>
//	    ...
//	  </page>
//	</session>
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode implements scrutinaut.SessionEncoder.
func (e *Encoder) Encode(w io.Writer, session *scrutinaut.Session) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("session")

	for _, url := range session.URLs() {
		result, _ := session.Get(url)
		page := root.CreateElement("page")
		page.CreateAttr("url", url)
		writePage(page, result)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func writePage(page *etree.Element, r *scrutinaut.ExtractResult) {
	page.CreateElement("title").SetText(r.Title)
	writeList(page, "headings", "heading", r.Headings)
	writeList(page, "links", "link", r.Links)
	page.CreateElement("meta_description").SetText(r.MetaDescription)
	writeList(page, "images", "image", r.Images)

	og := page.CreateElement("opengraph")
	properties := make([]string, 0, len(r.OpenGraph))
	for p := range r.OpenGraph {
		properties = append(properties, p)
	}
	sort.Strings(properties)
	for _, p := range properties {
		el := og.CreateElement("property")
		el.CreateAttr("name", p)
		el.SetText(r.OpenGraph[p])
	}
}

func writeList(parent *etree.Element, tag, itemTag string, items []string) {
	list := parent.CreateElement(tag)
	for _, item := range items {
		list.CreateElement(itemTag).SetText(item)
	}
}
