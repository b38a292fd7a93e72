package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const groupCacheKey = "food_groups"

// GroupCache keeps the FoodGroup id -> name map in Redis so tag
// resolution does not hit the database on every catalog request. A nil
// cache (no Redis configured) is valid and always misses.
type GroupCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewGroupCache(rdb *redis.Client, ttl time.Duration) *GroupCache {
	return &GroupCache{rdb: rdb, ttl: ttl}
}

func (c *GroupCache) Get(ctx context.Context) (map[int64]string, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, groupCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var names map[int64]string
	if err := json.Unmarshal([]byte(val), &names); err != nil {
		return nil, false
	}
	return names, true
}

func (c *GroupCache) Set(ctx context.Context, names map[int64]string) {
	if c == nil || c.rdb == nil {
		return
	}

	encoded, err := json.Marshal(names)
	if err != nil {
		return
	}
	// Cache failures are not worth failing the request over.
	c.rdb.Set(ctx, groupCacheKey, encoded, c.ttl)
}
