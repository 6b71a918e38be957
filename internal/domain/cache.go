package domain

import "context"

// KeyValueStore is the persistent text storage backing the home cache.
// Get reports found=false with a nil error when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
