package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// memoryKeyCache is an in-process [PrivateKeyCache]. A zero ttl keeps
// entries until they are deleted.
type memoryKeyCache struct {
	mu    sync.Mutex
	items map[string]cachedKey
	ttl   time.Duration
	now   func() time.Time
}

type cachedKey struct {
	value     string
	expiresAt time.Time
}

// NewMemoryKeyCache returns a [PrivateKeyCache] held in process memory.
func NewMemoryKeyCache(ttl time.Duration) PrivateKeyCache {
	return newMemoryKeyCache(ttl, time.Now)
}

func newMemoryKeyCache(ttl time.Duration, now func() time.Time) *memoryKeyCache {
	return &memoryKeyCache{
		items: make(map[string]cachedKey),
		ttl:   ttl,
		now:   now,
	}
}

func (c *memoryKeyCache) Put(_ context.Context, sessionID, privateKey string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item := cachedKey{value: privateKey}
	if c.ttl > 0 {
		item.expiresAt = c.now().Add(c.ttl)
	}
	c.items[sessionID] = item
	return nil
}

func (c *memoryKeyCache) Get(_ context.Context, sessionID string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[sessionID]
	if !ok {
		return "", false, nil
	}
	if !item.expiresAt.IsZero() && c.now().After(item.expiresAt) {
		delete(c.items, sessionID)
		return "", false, nil
	}
	return item.value, true, nil
}

func (c *memoryKeyCache) Delete(_ context.Context, sessionIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range sessionIDs {
		delete(c.items, id)
	}
	return nil
}

// redisKV is the part of the go-redis client the cache uses.
type redisKV interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const redisCallTimeout = 500 * time.Millisecond

// redisKeyCache keeps private keys in Redis with SET ... EX, so every
// replica of the server sees the same cache.
type redisKeyCache struct {
	client redisKV
	prefix string
	ttl    time.Duration
}

// NewRedisKeyCache returns a [PrivateKeyCache] backed by client.
func NewRedisKeyCache(client redisKV, prefix string, ttl time.Duration) PrivateKeyCache {
	return &redisKeyCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *redisKeyCache) Put(ctx context.Context, sessionID, privateKey string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()

	if err := c.client.Set(ctx, c.prefix+sessionID, privateKey, c.ttl).Err(); err != nil {
		return fmt.Errorf("error caching private key: %w", err)
	}
	return nil
}

func (c *redisKeyCache) Get(ctx context.Context, sessionID string) (string, bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()

	value, err := c.client.Get(ctx, c.prefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading cached private key: %w", err)
	}
	return value, true, nil
}

func (c *redisKeyCache) Delete(ctx context.Context, sessionIDs ...string) error {
	if len(sessionIDs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()

	keys := make([]string, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		keys = append(keys, c.prefix+id)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error evicting cached private keys: %w", err)
	}
	return nil
}
