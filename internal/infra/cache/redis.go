package cache

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const purgeBatch = 200

// RedisCache stores search results as JSON under "<prefix>:<sha1(key)>".
// Backend failures are logged and reported as misses.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (c *RedisCache) key(k string) string {
	return fmt.Sprintf("%s:%x", c.prefix, sha1.Sum([]byte(k)))
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]*queries.HotelView, bool) {
	bs, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Search cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var hotels []*queries.HotelView
	if err := json.Unmarshal(bs, &hotels); err != nil {
		c.logger.Warn("Search cache entry is corrupt", slog.String("error", err.Error()))
		return nil, false
	}
	return hotels, true
}

func (c *RedisCache) Set(ctx context.Context, key string, hotels []*queries.HotelView) {
	if c.ttl <= 0 {
		return
	}
	payload, err := json.Marshal(hotels)
	if err != nil {
		c.logger.Warn("Search cache encode failed", slog.String("error", err.Error()))
		return
	}
	if err := c.client.SetEx(ctx, c.key(key), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("Search cache write failed", slog.String("error", err.Error()))
	}
}

func (c *RedisCache) Purge(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+":*", purgeBatch).Iterator()
	batch := make([]string, 0, purgeBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == purgeBatch {
			c.del(ctx, batch)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("Search cache purge scan failed", slog.String("error", err.Error()))
	}
	if len(batch) > 0 {
		c.del(ctx, batch)
	}
}

func (c *RedisCache) del(ctx context.Context, keys []string) {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Search cache purge failed", slog.String("error", err.Error()))
	}
}
