// Package cache memoizes region classifications so repeated lookups for the
// same destination skip the model call.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RegionCache maps (carrier, destination) to a classified category.
type RegionCache interface {
	Get(ctx context.Context, carrier, destination string) (string, bool)
	Set(ctx context.Context, carrier, destination, region string)
}

func regionKey(carrier, destination string) string {
	return "region:" + strings.ToLower(carrier) + ":" + strings.ToLower(strings.TrimSpace(destination))
}

type RedisRegionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRegionCache(rdb *redis.Client, ttl time.Duration) *RedisRegionCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisRegionCache{rdb: rdb, ttl: ttl}
}

// Get treats redis errors like redis.Nil: a miss.
func (c *RedisRegionCache) Get(ctx context.Context, carrier, destination string) (string, bool) {
	val, err := c.rdb.Get(ctx, regionKey(carrier, destination)).Result()
	if err != nil {
		return "", false
	}
	return val, val != ""
}

func (c *RedisRegionCache) Set(ctx context.Context, carrier, destination, region string) {
	_ = c.rdb.Set(ctx, regionKey(carrier, destination), region, c.ttl).Err()
}

// MemoryRegionCache is used when no redis is configured.
type MemoryRegionCache struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryRegionCache() *MemoryRegionCache {
	return &MemoryRegionCache{data: make(map[string]string)}
}

func (c *MemoryRegionCache) Get(_ context.Context, carrier, destination string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[regionKey(carrier, destination)]
	return v, ok
}

func (c *MemoryRegionCache) Set(_ context.Context, carrier, destination, region string) {
	c.mu.Lock()
	c.data[regionKey(carrier, destination)] = region
	c.mu.Unlock()
}
