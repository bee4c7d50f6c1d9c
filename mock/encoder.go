package mock

import (
	"io"

	"github.com/fwojciec/scrutinaut"
)

var _ scrutinaut.SessionEncoder = (*SessionEncoder)(nil)

// SessionEncoder is a mock implementation of scrutinaut.SessionEncoder.
type SessionEncoder struct {
	EncodeFn func(w io.Writer, session *scrutinaut.Session) error
}

func (e *SessionEncoder) Encode(w io.Writer, session *scrutinaut.Session) error {
	return e.EncodeFn(w, session)
}
