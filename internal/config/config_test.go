package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/varoOP/sankanime/internal/domain"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Errorf("CacheTTL = %s, want 24h", cfg.CacheTTL)
	}
	if cfg.CacheVersion != "1.0" {
		t.Errorf("CacheVersion = %q, want 1.0", cfg.CacheVersion)
	}
	if cfg.Storage != domain.StorageSQLite {
		t.Errorf("Storage = %q, want sqlite", cfg.Storage)
	}
	if cfg.Breaker {
		t.Error("Breaker should be disabled by default")
	}
}

func TestLoadFromOverrides(t *testing.T) {
	v := viper.New()
	v.Set("base_url", "http://localhost:4444/api/")
	v.Set("cache_ttl", "2h")
	v.Set("cache_version", "2.1")
	v.Set("storage", "MEMORY")

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.BaseURL != "http://localhost:4444/api" {
		t.Errorf("BaseURL = %q, trailing slash should be trimmed", cfg.BaseURL)
	}
	if cfg.CacheTTL != 2*time.Hour {
		t.Errorf("CacheTTL = %s, want 2h", cfg.CacheTTL)
	}
	if cfg.CacheVersion != "2.1" {
		t.Errorf("CacheVersion = %q, want 2.1", cfg.CacheVersion)
	}
	if cfg.Storage != domain.StorageMemory {
		t.Errorf("Storage = %q, want memory", cfg.Storage)
	}
}

func TestLoadFromRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want string
	}{
		{"relative base url", "base_url", "/sankanime/api", "invalid base_url"},
		{"unsupported scheme", "base_url", "ftp://example.com", "invalid base_url"},
		{"zero ttl", "cache_ttl", "0s", "cache_ttl"},
		{"negative ttl", "cache_ttl", "-1h", "cache_ttl"},
		{"blank version", "cache_version", "  ", "cache_version"},
		{"unknown storage", "storage", "localstorage", "invalid storage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)

			_, err := LoadFrom(v)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFromBreakerNeedsThreshold(t *testing.T) {
	v := viper.New()
	v.Set("breaker", true)
	v.Set("breaker_failures", 0)

	if _, err := LoadFrom(v); err == nil {
		t.Fatal("expected error for breaker without failure threshold")
	}
}
