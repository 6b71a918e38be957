package database

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/domain"
)

// RedisKV stores values in redis so several hosts can share one home cache.
// Expiry stays with the cache record timestamp; keys are stored without a redis TTL.
type RedisKV struct {
	log    zerolog.Logger
	client *redis.Client
}

var _ domain.KeyValueStore = (*RedisKV)(nil)

// NewRedisKV connects to the redis instance addressed by url
func NewRedisKV(ctx context.Context, url string, log zerolog.Logger) (*RedisKV, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "unable to reach redis")
	}

	return &RedisKV{
		log:    log.With().Str("module", "database").Str("type", "redis").Logger(),
		client: client,
	}, nil
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "redis get")
	}
	return val, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	r.log.Trace().Str("key", key).Msg("Set")
	return nil
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}
	return nil
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}
