package notices

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const activeNoticesKey = "notices:active"

// Cache wraps Redis based caching of the active notice list. A nil cache or
// client degrades to loading straight from the repository.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// FetchActive loads the cached notice list or populates it using the loader.
// Cache read failures fall through to the loader; only loader errors
// propagate.
func (c *Cache) FetchActive(ctx context.Context, loader func(context.Context) ([]Notice, error)) ([]Notice, error) {
	if loader == nil {
		return nil, errors.New("notices: loader required")
	}
	if c == nil || c.client == nil {
		return loader(ctx)
	}

	raw, err := c.client.Get(ctx, activeNoticesKey).Bytes()
	if err == nil {
		var cached []Notice
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	notices, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(notices); err == nil {
		_ = c.client.Set(ctx, activeNoticesKey, encoded, c.ttl).Err()
	}
	return notices, nil
}

// Invalidate drops the cached notice list.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, activeNoticesKey).Err()
}
