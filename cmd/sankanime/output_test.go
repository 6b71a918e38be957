package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/varoOP/sankanime/internal/app"
	"github.com/varoOP/sankanime/internal/database"
	"github.com/varoOP/sankanime/internal/domain"
)

func newOutputCommand(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("output", "o", "", "")
	cmd.Flags().Bool("table", false, "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func newOutputApp(t *testing.T) *app.App {
	t.Helper()
	cfg := &domain.Config{
		BaseURL:      "http://127.0.0.1:1",
		Timeout:      time.Second,
		CacheTTL:     24 * time.Hour,
		CacheVersion: "1.0",
		Storage:      domain.StorageMemory,
	}
	a := app.New(zerolog.Nop(), cfg, app.NewTransport(zerolog.Nop(), cfg), database.NewMemoryKV())
	t.Cleanup(func() { a.Close() })
	return a
}

func sampleSuggestions() []domain.Suggestion {
	return []domain.Suggestion{{ID: "naruto-677", Title: "Naruto", ShowType: "TV"}}
}

func TestWriteResultJSON(t *testing.T) {
	cmd, out := newOutputCommand(t)

	if err := writeResult(cmd, newOutputApp(t), sampleSuggestions()); err != nil {
		t.Fatalf("writeResult failed: %v", err)
	}

	var got []domain.Suggestion
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("stdout is not json: %v\n%s", err, out.String())
	}
	if len(got) != 1 || got[0].ID != "naruto-677" {
		t.Errorf("got %+v", got)
	}
}

func TestWriteResultTable(t *testing.T) {
	cmd, out := newOutputCommand(t, "--table")

	if err := writeResult(cmd, newOutputApp(t), sampleSuggestions()); err != nil {
		t.Fatalf("writeResult failed: %v", err)
	}
	if !strings.Contains(out.String(), "Naruto") || strings.HasPrefix(out.String(), "[") {
		t.Errorf("expected a table, got:\n%s", out.String())
	}
}

func TestWriteResultTableFallsBackToJSON(t *testing.T) {
	cmd, out := newOutputCommand(t, "--table")

	if err := writeResult(cmd, newOutputApp(t), &domain.Qtip{Title: "One Piece"}); err != nil {
		t.Fatalf("writeResult failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "{") {
		t.Errorf("expected json, got:\n%s", out.String())
	}
}

func TestWriteResultToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggest.yaml")
	cmd, out := newOutputCommand(t, "--output", path)
	a := newOutputApp(t)

	if err := writeResult(cmd, a, sampleSuggestions()); err != nil {
		t.Fatalf("writeResult failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}

	var got []domain.Suggestion
	if err := a.Results().Get(context.Background(), path, &got); err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Naruto" {
		t.Errorf("got %+v", got)
	}
}

func TestCacheShowCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--storage", "memory", "--log-level", "error", "cache", "show"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache show failed: %v", err)
	}

	var info struct {
		Key    string `json:"key"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out.String())
	}
	if info.Key != "homeInfoCache_v1.0" || info.Status != "missing" {
		t.Errorf("info = %+v", info)
	}
}
