package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

const (
	suggestPrefix = "suggest:"

	PopularTTL     = 600 * time.Second
	ResultTTL      = 120 * time.Second
	EmptyTTL       = 30 * time.Second
	purgeBatch     = 500
	DefaultVersion = "v3"
)

// SuggestCache stores serialized suggestion lists in Redis. Values are stored
// and returned as raw bytes, so a read within the TTL returns exactly what was written.
type SuggestCache struct {
	client  *redis.Client
	version string
}

func NewSuggestCache(client *redis.Client, version string) *SuggestCache {
	if version == "" {
		version = DefaultVersion
	}
	return &SuggestCache{client: client, version: version}
}

// PopularKey is the key of the empty-query list, e.g. suggest:popular:l4:v3
func (c *SuggestCache) PopularKey(limit int) string {
	return fmt.Sprintf("%spopular:l%d:%s", suggestPrefix, limit, c.version)
}

// QueryKey expects an already normalized query
func (c *SuggestCache) QueryKey(normalized string, limit int) string {
	return fmt.Sprintf("%sq:%s:l%d:%s", suggestPrefix, normalized, limit, c.version)
}

func (c *SuggestCache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}
	return b, nil
}

func (c *SuggestCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}

// Purge deletes every suggestion key, all versions included
func (c *SuggestCache) Purge(ctx context.Context) (int64, error) {
	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, suggestPrefix+"*", purgeBatch).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to scan suggestion keys: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete suggestion keys: %w", err)
			}
			deleted += n
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}
