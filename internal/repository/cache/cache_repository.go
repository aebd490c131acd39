package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tour-planning-service/internal/domain/repository"
)

type cacheRepository struct {
	redis *Redis
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{redis: r}
}

func (c *cacheRepository) Get(ctx context.Context, key string) (string, error) {
	val, err := c.redis.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *cacheRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.redis.client.Set(ctx, key, value, ttl).Err()
}
