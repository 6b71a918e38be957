package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/varoOP/sankanime/internal/domain"
)

const (
	DefaultBaseURL      = "https://www.sankavollerei.com/anime"
	DefaultCacheTTL     = 24 * time.Hour
	DefaultCacheVersion = "1.0"
)

// Version is reported in the default User-Agent
var Version = "dev"

// SetDefaults registers the default value of every known key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("user_agent", "sankanime/"+Version)
	v.SetDefault("timeout", 15*time.Second)
	v.SetDefault("cache_ttl", DefaultCacheTTL)
	v.SetDefault("cache_version", DefaultCacheVersion)
	v.SetDefault("storage", string(domain.StorageSQLite))
	v.SetDefault("data_dir", ".")
	v.SetDefault("redis_url", "redis://localhost:6379/0")
	v.SetDefault("breaker", false)
	v.SetDefault("breaker_failures", 5)
	v.SetDefault("breaker_timeout", 30*time.Second)
	v.SetDefault("log_level", "info")
}

// Load loads configuration from multiple sources:
// 1. Config file (config.yaml or config.toml, optional)
// 2. Environment variables (SANKANIME_*)
// 3. Command line flags bound by the cli
func Load() (*domain.Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom builds and validates a config from v
func LoadFrom(v *viper.Viper) (*domain.Config, error) {
	SetDefaults(v)

	cfg := &domain.Config{
		BaseURL:           strings.TrimRight(strings.TrimSpace(v.GetString("base_url")), "/"),
		UserAgent:         v.GetString("user_agent"),
		Timeout:           v.GetDuration("timeout"),
		CacheTTL:          v.GetDuration("cache_ttl"),
		CacheVersion:      strings.TrimSpace(v.GetString("cache_version")),
		Storage:           domain.StorageDriver(strings.ToLower(v.GetString("storage"))),
		DataDir:           v.GetString("data_dir"),
		RedisURL:          v.GetString("redis_url"),
		Breaker:           v.GetBool("breaker"),
		BreakerFailures:   v.GetUint32("breaker_failures"),
		BreakerTimeout:    v.GetDuration("breaker_timeout"),
		DiscordWebhookURL: v.GetString("discord_webhook_url"),
		LogLevel:          v.GetString("log_level"),
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base_url: %q (must be an absolute http or https url)", cfg.BaseURL)
	}

	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("cache_ttl must be positive, got %s", cfg.CacheTTL)
	}

	if cfg.CacheVersion == "" {
		return nil, fmt.Errorf("cache_version is required (set via config file or SANKANIME_CACHE_VERSION environment variable)")
	}

	switch cfg.Storage {
	case domain.StorageSQLite, domain.StorageRedis, domain.StorageMemory:
	default:
		return nil, fmt.Errorf("invalid storage: %s (must be 'sqlite', 'redis' or 'memory')", cfg.Storage)
	}

	if cfg.Storage == domain.StorageRedis && cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis_url is required when storage is 'redis'")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	if cfg.Breaker && cfg.BreakerFailures == 0 {
		return nil, fmt.Errorf("breaker_failures must be at least 1 when breaker is enabled")
	}

	return cfg, nil
}
