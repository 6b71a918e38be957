package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/domain"
)

func exerciseStore(t *testing.T, store domain.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("Get(missing) = found %v, err %v; want not found, nil", found, err)
	}

	if err := store.Set(ctx, "homeInfoCache_v1.0", `{"data":1}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found, err := store.Get(ctx, "homeInfoCache_v1.0")
	if err != nil || !found {
		t.Fatalf("Get after Set = found %v, err %v", found, err)
	}
	if got != `{"data":1}` {
		t.Errorf("Get = %q, want %q", got, `{"data":1}`)
	}

	if err := store.Set(ctx, "homeInfoCache_v1.0", `{"data":2}`); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _, _ = store.Get(ctx, "homeInfoCache_v1.0")
	if got != `{"data":2}` {
		t.Errorf("Get after overwrite = %q, want %q", got, `{"data":2}`)
	}

	if err := store.Delete(ctx, "homeInfoCache_v1.0"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := store.Get(ctx, "homeInfoCache_v1.0"); found {
		t.Error("value still present after Delete")
	}

	if err := store.Delete(ctx, "homeInfoCache_v1.0"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
}

func TestKVRepo(t *testing.T) {
	dir := t.TempDir()

	db, err := NewDB(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	repo := NewKVRepo(zerolog.Nop(), db)
	defer repo.Close()

	exerciseStore(t, repo)

	if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestKVRepoPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := NewDB(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	repo := NewKVRepo(zerolog.Nop(), db)
	if err := repo.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err = NewDB(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	repo = NewKVRepo(zerolog.Nop(), db)
	defer repo.Close()

	got, found, err := repo.Get(ctx, "k")
	if err != nil || !found || got != "v" {
		t.Fatalf("Get after reopen = %q, %v, %v; want v, true, nil", got, found, err)
	}
}

func TestMigrateRejectsNewerSchema(t *testing.T) {
	dir := t.TempDir()

	db, err := NewDB(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	if _, err := db.handler.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if err := db.Migrate(); err == nil {
		t.Error("expected error for newer schema version")
	}
	db.handler.Close()
}

func TestMemoryKV(t *testing.T) {
	exerciseStore(t, NewMemoryKV())
}

func TestRedisKV(t *testing.T) {
	url := os.Getenv("SANKANIME_TEST_REDIS_URL")
	if url == "" {
		t.Skip("SANKANIME_TEST_REDIS_URL not set")
	}

	store, err := NewRedisKV(context.Background(), url, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRedisKV failed: %v", err)
	}
	defer store.Close()

	exerciseStore(t, store)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	store, err := OpenStore(ctx, &domain.Config{Storage: domain.StorageMemory}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenStore(memory) failed: %v", err)
	}
	if _, ok := store.(*MemoryKV); !ok {
		t.Errorf("OpenStore(memory) returned %T", store)
	}

	store, err = OpenStore(ctx, &domain.Config{Storage: domain.StorageSQLite, DataDir: t.TempDir()}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenStore(sqlite) failed: %v", err)
	}
	if _, ok := store.(*KVRepo); !ok {
		t.Errorf("OpenStore(sqlite) returned %T", store)
	}
	store.Close()

	if _, err := OpenStore(ctx, &domain.Config{Storage: "cookie"}, zerolog.Nop()); err == nil {
		t.Error("expected error for unsupported storage")
	}
}
