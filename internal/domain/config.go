package domain

import "time"

// StorageDriver selects the backend holding the persistent home cache.
type StorageDriver string

const (
	// StorageSQLite keeps records in a local sqlite database (default)
	StorageSQLite StorageDriver = "sqlite"
	// StorageRedis keeps records in a redis instance shared between hosts
	StorageRedis StorageDriver = "redis"
	// StorageMemory keeps records for the lifetime of the process only
	StorageMemory StorageDriver = "memory"
)

type Config struct {
	BaseURL           string        `toml:"base_url" mapstructure:"base_url"`
	UserAgent         string        `toml:"user_agent" mapstructure:"user_agent"`
	Timeout           time.Duration `toml:"timeout" mapstructure:"timeout"`
	CacheTTL          time.Duration `toml:"cache_ttl" mapstructure:"cache_ttl"`
	CacheVersion      string        `toml:"cache_version" mapstructure:"cache_version"`
	Storage           StorageDriver `toml:"storage" mapstructure:"storage"`
	DataDir           string        `toml:"data_dir" mapstructure:"data_dir"`
	RedisURL          string        `toml:"redis_url" mapstructure:"redis_url"`
	Breaker           bool          `toml:"breaker" mapstructure:"breaker"`
	BreakerFailures   uint32        `toml:"breaker_failures" mapstructure:"breaker_failures"`
	BreakerTimeout    time.Duration `toml:"breaker_timeout" mapstructure:"breaker_timeout"`
	DiscordWebhookURL string        `toml:"discord_webhook_url" mapstructure:"discord_webhook_url"`
	LogLevel          string        `toml:"log_level" mapstructure:"log_level"`
}
