package domain

import "context"

// ResultRepository writes fetched results to local files
type ResultRepository interface {
	Store(ctx context.Context, path string, v any) error
	Get(ctx context.Context, path string, v any) error
}
