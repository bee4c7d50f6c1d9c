package scrutinaut

// ExtractResult holds the summary extracted from one HTML page.
type ExtractResult struct {
	// Title is the text of the first <title> element.
	Title string `json:"title"`

	// Headings holds the text of every h1, then every h2, then every h3.
	Headings []string `json:"headings"`

	// Links holds raw href values of anchors, unresolved.
	Links []string `json:"links"`

	// MetaDescription is the content of <meta name="description">.
	MetaDescription string `json:"meta_description"`

	// Images holds raw src values of img elements.
	Images []string `json:"images"`

	// OpenGraph maps og:* property names to their content.
	OpenGraph map[string]string `json:"opengraph"`
}

// NewExtractResult returns an empty result whose collections are non-nil,
// so that absent markup serializes as [] and {} rather than null.
func NewExtractResult() *ExtractResult {
	return &ExtractResult{
		Headings:  []string{},
		Links:     []string{},
		Images:    []string{},
		OpenGraph: map[string]string{},
	}
}

// Extractor summarizes HTML pages.
type Extractor interface {
	// Extract parses raw HTML and returns its summary.
	// Extraction never fails: missing or malformed markup yields empty
	// fields, each independently of the others.
	Extract(html string) *ExtractResult
}
