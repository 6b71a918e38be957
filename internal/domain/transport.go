package domain

import (
	"context"
	"encoding/json"
	"net/url"
)

// Transport performs a single GET against the configured API base and returns
// the raw JSON payload.
type Transport interface {
	Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
}
