package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/database"
)

type payload struct {
	Genres []string `json:"genres"`
}

type failingStore struct {
	*database.MemoryKV
}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk unavailable")
}

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestCache(t *testing.T) (*Cache[payload], *database.MemoryKV) {
	t.Helper()
	store := database.NewMemoryKV()
	return New[payload](zerolog.Nop(), store, "1.0", 24*time.Hour), store
}

func seed(t *testing.T, store *database.MemoryKV, key, value string) {
	t.Helper()
	if err := store.Set(context.Background(), key, value); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestKeyIsVersioned(t *testing.T) {
	c, _ := newTestCache(t)
	if c.Key() != "homeInfoCache_v1.0" {
		t.Errorf("Key = %q, want homeInfoCache_v1.0", c.Key())
	}
}

func TestLoadMissing(t *testing.T) {
	c, _ := newTestCache(t)
	if _, ok := c.Load(context.Background(), now); ok {
		t.Error("Load on empty store should miss")
	}
}

func TestSaveThenLoad(t *testing.T) {
	c, store := newTestCache(t)
	ctx := context.Background()

	if err := c.Save(ctx, payload{Genres: []string{"Action"}}, now); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, _, _ := store.Get(ctx, c.Key())
	var stored struct {
		Data      payload `json:"data"`
		Timestamp int64   `json:"timestamp"`
	}
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored record is not json: %v", err)
	}
	if stored.Timestamp != now.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", stored.Timestamp, now.UnixMilli())
	}

	got, ok := c.Load(ctx, now.Add(time.Hour))
	if !ok {
		t.Fatal("Load should hit one hour after Save")
	}
	if len(got.Genres) != 1 || got.Genres[0] != "Action" {
		t.Errorf("Load = %+v", got)
	}
}

func TestLoadRespectsTTL(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want bool
	}{
		{0, true},
		{time.Hour, true},
		{24*time.Hour - time.Millisecond, true},
		{24 * time.Hour, false},
		{25 * time.Hour, false},
		{-time.Minute, false},
		{-365 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.age.String(), func(t *testing.T) {
			c, store := newTestCache(t)
			seed(t, store, c.Key(), fmt.Sprintf(`{"data":{"genres":["Drama"]},"timestamp":%d}`, now.Add(-tt.age).UnixMilli()))

			_, ok := c.Load(context.Background(), now)
			if ok != tt.want {
				t.Errorf("Load hit = %v, want %v", ok, tt.want)
			}
			if _, found, _ := store.Get(context.Background(), c.Key()); !found {
				t.Error("expired record must not be evicted by Load")
			}
		})
	}
}

func TestLoadEvictsCorruptRecords(t *testing.T) {
	tests := map[string]string{
		"not json":          `{"data":`,
		"missing timestamp": `{"data":{"genres":[]}}`,
		"zero timestamp":    `{"data":{"genres":[]},"timestamp":0}`,
		"missing data":      fmt.Sprintf(`{"timestamp":%d}`, now.UnixMilli()),
		"null data":         fmt.Sprintf(`{"data":null,"timestamp":%d}`, now.UnixMilli()),
		"wrong data shape":  fmt.Sprintf(`{"data":{"genres":"Action"},"timestamp":%d}`, now.UnixMilli()),
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			c, store := newTestCache(t)
			seed(t, store, c.Key(), raw)

			if _, ok := c.Load(context.Background(), now); ok {
				t.Fatal("corrupt record should miss")
			}
			if _, found, _ := store.Get(context.Background(), c.Key()); found {
				t.Error("corrupt record should be evicted")
			}
		})
	}
}

func TestLoadIgnoresOtherVersions(t *testing.T) {
	c, store := newTestCache(t)
	seed(t, store, KeyPrefix+"0.9", fmt.Sprintf(`{"data":{"genres":["Old"]},"timestamp":%d}`, now.UnixMilli()))

	if _, ok := c.Load(context.Background(), now); ok {
		t.Error("record under an older version key must be ignored")
	}
	if _, found, _ := store.Get(context.Background(), KeyPrefix+"0.9"); !found {
		t.Error("orphaned record should be left alone")
	}
}

func TestLoadStorageFailureIsMiss(t *testing.T) {
	c := New[payload](zerolog.Nop(), failingStore{database.NewMemoryKV()}, "1.0", time.Hour)
	if _, ok := c.Load(context.Background(), now); ok {
		t.Error("storage failure should be reported as a miss")
	}
}

func TestInspect(t *testing.T) {
	ctx := context.Background()
	c, store := newTestCache(t)

	info, err := c.Inspect(ctx, now)
	if err != nil || info.Status != StatusMissing {
		t.Fatalf("Inspect empty = %+v, %v", info, err)
	}

	seed(t, store, c.Key(), fmt.Sprintf(`{"data":{"genres":["A"]},"timestamp":%d}`, now.Add(-2*time.Hour).UnixMilli()))
	info, _ = c.Inspect(ctx, now)
	if info.Status != StatusFresh || info.Age != 2*time.Hour {
		t.Errorf("Inspect fresh = %+v", info)
	}

	info, _ = c.Inspect(ctx, now.Add(23*time.Hour))
	if info.Status != StatusStale {
		t.Errorf("Inspect stale = %+v", info)
	}

	seed(t, store, c.Key(), fmt.Sprintf(`{"data":{"genres":["A"]},"timestamp":%d}`, now.Add(time.Hour).UnixMilli()))
	info, _ = c.Inspect(ctx, now)
	if info.Status != StatusStale {
		t.Errorf("Inspect future record = %+v, want stale", info)
	}

	seed(t, store, c.Key(), `garbage`)
	info, _ = c.Inspect(ctx, now)
	if info.Status != StatusCorrupt || info.Problem == "" {
		t.Errorf("Inspect corrupt = %+v", info)
	}
	if _, found, _ := store.Get(ctx, c.Key()); !found {
		t.Error("Inspect must not evict")
	}
}

func TestIsEmptyJSON(t *testing.T) {
	for raw, want := range map[string]bool{
		"":         true,
		" null ":   true,
		`""`:       true,
		"false":    true,
		"{}":       false,
		"[]":       false,
		"0":        false,
		`{"a":1}`:  false,
		`"string"`: false,
	} {
		if got := IsEmptyJSON(json.RawMessage(raw)); got != want {
			t.Errorf("IsEmptyJSON(%q) = %v, want %v", raw, got, want)
		}
	}
}
