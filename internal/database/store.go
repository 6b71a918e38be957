package database

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/domain"
)

// OpenStore returns the key-value store selected by cfg.Storage
func OpenStore(ctx context.Context, cfg *domain.Config, log zerolog.Logger) (domain.KeyValueStore, error) {
	switch cfg.Storage {
	case domain.StorageSQLite, "":
		db, err := NewDB(cfg.DataDir, log)
		if err != nil {
			return nil, err
		}
		return NewKVRepo(log, db), nil
	case domain.StorageRedis:
		return NewRedisKV(ctx, cfg.RedisURL, log)
	case domain.StorageMemory:
		log.Warn().Msg("memory storage selected, home cache will not survive restarts")
		return NewMemoryKV(), nil
	default:
		return nil, errors.Errorf("unsupported storage: %s", cfg.Storage)
	}
}
