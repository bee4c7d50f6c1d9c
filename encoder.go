package scrutinaut

import (
	"encoding/json"
	"io"
)

// SessionEncoder writes a session in some output format.
type SessionEncoder interface {
	Encode(w io.Writer, session *Session) error
}

// Ensure JSONEncoder implements SessionEncoder at compile time.
var _ SessionEncoder = (*JSONEncoder)(nil)

// JSONEncoder writes a session as one JSON object followed by a newline.
// An empty Indent produces compact output.
type JSONEncoder struct {
	Indent string
}

// Encode implements SessionEncoder.
func (e *JSONEncoder) Encode(w io.Writer, session *Session) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if e.Indent != "" {
		enc.SetIndent("", e.Indent)
	}
	return enc.Encode(session)
}
