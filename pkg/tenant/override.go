package tenant

import "net/http"

// OverrideResolver extracts the organization override signal from HTTP
// requests. An empty string means no override was supplied.
type OverrideResolver interface {
	Override(r *http.Request) string
}

// DefaultOverrideHeader carries the impersonation target organization id.
const DefaultOverrideHeader = "X-Organization-Id"

// HeaderOverride reads the override from an HTTP header.
type HeaderOverride struct {
	// HeaderName is the name of the header to read.
	HeaderName string
}

// NewHeaderOverride creates a header-based override resolver.
func NewHeaderOverride(headerName string) *HeaderOverride {
	if headerName == "" {
		headerName = DefaultOverrideHeader
	}
	return &HeaderOverride{HeaderName: headerName}
}

// Override returns the configured header value.
func (h *HeaderOverride) Override(r *http.Request) string {
	return r.Header.Get(h.HeaderName)
}

// OverrideFunc is an adapter to allow ordinary functions as OverrideResolvers.
type OverrideFunc func(r *http.Request) string

// Override calls the function.
func (f OverrideFunc) Override(r *http.Request) string {
	return f(r)
}
