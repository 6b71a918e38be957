// Package cache keeps a single versioned, timestamped record in a
// key-value store and serves it while it is younger than the TTL.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/domain"
)

// KeyPrefix is prepended to the version to form the storage key
const KeyPrefix = "homeInfoCache_v"

// Entry is the persisted form of a cached value. Timestamp is Unix
// milliseconds of the moment Data was stored.
type Entry[T any] struct {
	Data      T     `json:"data"`
	Timestamp int64 `json:"timestamp"`
}

// CorruptError reports a stored record that cannot be used
type CorruptError struct {
	Key    string
	Reason string
	Err    error
}

func (e *CorruptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt cache record %s: %s: %v", e.Key, e.Reason, e.Err)
	}
	return fmt.Sprintf("corrupt cache record %s: %s", e.Key, e.Reason)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Status describes what Inspect found under the key
type Status string

const (
	StatusMissing Status = "missing"
	StatusFresh   Status = "fresh"
	StatusStale   Status = "stale"
	StatusCorrupt Status = "corrupt"
)

// Info is a read-only description of the stored record
type Info struct {
	Key      string        `json:"key" yaml:"key"`
	Status   Status        `json:"status" yaml:"status"`
	StoredAt time.Time     `json:"stored_at,omitzero" yaml:"stored_at,omitempty"`
	Age      time.Duration `json:"age,omitempty" yaml:"age,omitempty"`
	Size     int           `json:"size" yaml:"size"`
	Problem  string        `json:"problem,omitempty" yaml:"problem,omitempty"`
}

// Cache stores one value of type T under a versioned key
type Cache[T any] struct {
	log   zerolog.Logger
	store domain.KeyValueStore
	key   string
	ttl   time.Duration
}

// New creates a cache for version with the given ttl
func New[T any](log zerolog.Logger, store domain.KeyValueStore, version string, ttl time.Duration) *Cache[T] {
	key := KeyPrefix + version
	return &Cache[T]{
		log:   log.With().Str("module", "cache").Str("key", key).Logger(),
		store: store,
		key:   key,
		ttl:   ttl,
	}
}

// Key returns the storage key of the record
func (c *Cache[T]) Key() string { return c.key }

// TTL returns the maximum age of a servable record
func (c *Cache[T]) TTL() time.Duration { return c.ttl }

// Load returns the stored value when it is valid and younger than the ttl.
// A corrupt record is evicted and reported as a miss; storage failures are
// logged and reported as a miss.
func (c *Cache[T]) Load(ctx context.Context, now time.Time) (T, bool) {
	var zero T

	entry, err := c.read(ctx)
	if err != nil {
		var corrupt *CorruptError
		if errors.As(err, &corrupt) {
			c.log.Warn().Err(err).Msg("failed to parse cached record, evicting")
			if err := c.store.Delete(ctx, c.key); err != nil {
				c.log.Warn().Err(err).Msg("failed to evict corrupt record")
			}
			return zero, false
		}
		c.log.Warn().Err(err).Msg("failed to read cache, treating as miss")
		return zero, false
	}
	if entry == nil {
		return zero, false
	}

	age := now.Sub(time.UnixMilli(entry.Timestamp))
	if !c.fresh(age) {
		c.log.Debug().Dur("age", age).Dur("ttl", c.ttl).Msg("cached record expired")
		return zero, false
	}

	return entry.Data, true
}

// fresh reports whether a record of the given age may be served. A record
// stamped in the future is treated as stale so clock skew cannot pin it.
func (c *Cache[T]) fresh(age time.Duration) bool {
	return age >= 0 && age < c.ttl
}

// Save overwrites the record with data stamped at now
func (c *Cache[T]) Save(ctx context.Context, data T, now time.Time) error {
	b, err := json.Marshal(Entry[T]{Data: data, Timestamp: now.UnixMilli()})
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache record")
	}

	if err := c.store.Set(ctx, c.key, string(b)); err != nil {
		return errors.Wrap(err, "failed to store cache record")
	}

	c.log.Debug().Int("size", len(b)).Msg("stored cache record")
	return nil
}

// Inspect describes the stored record without modifying it
func (c *Cache[T]) Inspect(ctx context.Context, now time.Time) (Info, error) {
	info := Info{Key: c.key, Status: StatusMissing}

	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return info, errors.Wrap(err, "failed to read cache")
	}
	if !found {
		return info, nil
	}
	info.Size = len(raw)

	entry, err := c.decode(raw)
	if err != nil {
		info.Status = StatusCorrupt
		info.Problem = err.Error()
		return info, nil
	}

	info.StoredAt = time.UnixMilli(entry.Timestamp)
	info.Age = now.Sub(info.StoredAt)
	if c.fresh(info.Age) {
		info.Status = StatusFresh
	} else {
		info.Status = StatusStale
	}
	return info, nil
}

func (c *Cache[T]) read(ctx context.Context) (*Entry[T], error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return c.decode(raw)
}

func (c *Cache[T]) decode(raw string) (*Entry[T], error) {
	var envelope struct {
		Data      json.RawMessage `json:"data"`
		Timestamp *int64          `json:"timestamp"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, &CorruptError{Key: c.key, Reason: "invalid json", Err: err}
	}
	if envelope.Timestamp == nil || *envelope.Timestamp <= 0 {
		return nil, &CorruptError{Key: c.key, Reason: "missing timestamp"}
	}
	if IsEmptyJSON(envelope.Data) {
		return nil, &CorruptError{Key: c.key, Reason: "missing data"}
	}

	entry := &Entry[T]{Timestamp: *envelope.Timestamp}
	if err := json.Unmarshal(envelope.Data, &entry.Data); err != nil {
		return nil, &CorruptError{Key: c.key, Reason: "invalid data", Err: err}
	}
	return entry, nil
}

// IsEmptyJSON reports whether raw is absent or a JSON null, empty string or false
func IsEmptyJSON(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", `""`, "false":
		return true
	}
	return false
}
