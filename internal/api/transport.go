package api

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request id sent to the API
const RequestIDHeader = "X-Request-ID"

type headerTransport struct {
	Transport http.RoundTripper
	UserAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	return base.RoundTrip(req)
}
