package scrutinaut

import (
	"bytes"
	"encoding/json"
)

// Session collects extraction results for one invocation, keyed by the URL
// exactly as the caller supplied it. A URL appears at most once; setting it
// again replaces the earlier result but keeps its original position.
type Session struct {
	results map[string]*ExtractResult
	order   []string
}

// NewSession returns an empty Session.
func NewSession() *Session {
	return &Session{results: make(map[string]*ExtractResult)}
}

// Set records the result for url.
func (s *Session) Set(url string, result *ExtractResult) {
	if _, ok := s.results[url]; !ok {
		s.order = append(s.order, url)
	}
	s.results[url] = result
}

// Get returns the result recorded for url.
func (s *Session) Get(url string) (*ExtractResult, bool) {
	r, ok := s.results[url]
	return r, ok
}

// Len returns the number of URLs in the session.
func (s *Session) Len() int {
	return len(s.order)
}

// URLs returns the session's URLs in the order they were first set.
func (s *Session) URLs() []string {
	urls := make([]string, len(s.order))
	copy(urls, s.order)
	return urls
}

// MarshalJSON encodes the session as a single JSON object keyed by URL,
// preserving insertion order.
func (s *Session) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, url := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, url); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, s.results[url]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSON appends v to buf without HTML escaping, so that query strings
// in links keep their literal '&'.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
