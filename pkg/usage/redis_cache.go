package usage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache is an opt-in Cache backend sharing counts between process
// instances. The default stays per-process; use this only when a shared
// staleness window is acceptable. Redis key expiry replaces the periodic
// sweep, but the governor still checks CapturedAt, so a clock-skewed
// writer cannot extend an entry's life.
type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// DefaultRedisKeyPrefix namespaces usage entries in a shared Redis.
const DefaultRedisKeyPrefix = "usage:"

// NewRedisCache creates a Redis-backed Cache. The client is owned by the
// caller; Close on the cache does not close it.
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) Cache {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string) (Entry, bool) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

func (c *redisCache) Set(ctx context.Context, key string, entry Entry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	// Best effort: a failed write only widens the staleness window.
	_ = c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	_ = c.client.Del(ctx, c.prefix+key).Err()
}

func (c *redisCache) Close() error {
	return nil
}
