package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/cargoplus/collections_backend/internal/core/domain"
)

const guardKeyPrefix = "guard:"

// RedisGuardStatusCache caches guard answers in Redis with a short TTL.
type RedisGuardStatusCache struct {
	client *redis.Client
}

// NewRedisGuardStatusCache connects a guard cache to the Redis at url
// (redis:// connection string).
func NewRedisGuardStatusCache(url string) (*RedisGuardStatusCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisGuardStatusCache{client: redis.NewClient(opts)}, nil
}

func (c *RedisGuardStatusCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisGuardStatusCache) Close() error {
	return c.client.Close()
}

func (c *RedisGuardStatusCache) Get(ctx context.Context, collectorID string) (*domain.GuardStatus, bool, error) {
	val, err := c.client.Get(ctx, guardKeyPrefix+collectorID).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var status domain.GuardStatus
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		return nil, false, err
	}
	return &status, true, nil
}

func (c *RedisGuardStatusCache) Set(ctx context.Context, collectorID string, status *domain.GuardStatus, ttl time.Duration) error {
	if status == nil {
		return nil
	}
	payload, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, guardKeyPrefix+collectorID, payload, ttl).Err()
}

func (c *RedisGuardStatusCache) Invalidate(ctx context.Context, collectorID string) error {
	return c.client.Del(ctx, guardKeyPrefix+collectorID).Err()
}
