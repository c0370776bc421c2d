package trivia

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	categoryCacheKey = "trivia:categories"
	defaultCacheTTL  = 5 * time.Minute
)

// CategoryCache caches the category id/type map. Only read-only category
// data is ever cached; question data always hits the store.
type CategoryCache interface {
	Get(ctx context.Context) (map[int]string, error)
	Set(ctx context.Context, categories map[int]string) error
}

// RedisCategoryCache is the Redis-backed CategoryCache.
type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ CategoryCache = (*RedisCategoryCache)(nil)

func NewRedisCategoryCache(client *redis.Client, ttl time.Duration) *RedisCategoryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisCategoryCache{client: client, ttl: ttl}
}

// Get returns the cached map, or nil on a cache miss.
func (c *RedisCategoryCache) Get(ctx context.Context) (map[int]string, error) {
	data, err := c.client.Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var categories map[int]string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *RedisCategoryCache) Set(ctx context.Context, categories map[int]string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoryCacheKey, data, c.ttl).Err()
}
