package scrutinaut

import "net/url"

// ValidateURL reports whether raw is a syntactically well-formed absolute
// URL with both a scheme and a host. It returns an EINVALID error otherwise.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}
	if u.Scheme == "" {
		return Errorf(EINVALID, "invalid URL %q: missing scheme", raw)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "invalid URL %q: missing host", raw)
	}
	return nil
}
