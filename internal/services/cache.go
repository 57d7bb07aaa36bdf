package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("key not found")

// CacheService implements caching functionality
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *logrus.Logger

	hits   atomic.Int64
	misses atomic.Int64

	// In-memory fallback cache when Redis is not available
	memCache map[string]cacheItem
	memMutex sync.RWMutex
}

type cacheItem struct {
	value     string
	expiresAt time.Time
}

// NewCacheService creates a new cache service. A nil client keeps
// everything in memory.
func NewCacheService(client *redis.Client, ttl time.Duration, prefix string, logger *logrus.Logger) *CacheService {
	return &CacheService{
		client:   client,
		ttl:      ttl,
		prefix:   prefix,
		logger:   logger,
		memCache: make(map[string]cacheItem),
	}
}

func (c *CacheService) key(key string) string {
	return c.prefix + key
}

// Get retrieves a value from cache
func (c *CacheService) Get(ctx context.Context, key string) (string, error) {
	k := c.key(key)

	if c.client != nil {
		val, err := c.client.Get(ctx, k).Result()
		if err == nil {
			c.hits.Add(1)
			c.logger.WithField("key", k).Debug("Cache hit (Redis)")
			return val, nil
		}
		if !errors.Is(err, redis.Nil) {
			c.logger.WithFields(logrus.Fields{
				"key":   k,
				"error": err.Error(),
			}).Warn("Redis get error, falling back to memory cache")
		}
	}

	c.memMutex.RLock()
	item, exists := c.memCache[k]
	c.memMutex.RUnlock()

	if !exists {
		c.misses.Add(1)
		return "", ErrCacheMiss
	}

	if time.Now().After(item.expiresAt) {
		c.memMutex.Lock()
		delete(c.memCache, k)
		c.memMutex.Unlock()
		c.misses.Add(1)
		return "", ErrCacheMiss
	}

	c.hits.Add(1)
	c.logger.WithField("key", k).Debug("Cache hit (memory)")
	return item.value, nil
}

// Set stores a value in cache with TTL
func (c *CacheService) Set(ctx context.Context, key string, value string) error {
	k := c.key(key)

	if c.client != nil {
		err := c.client.Set(ctx, k, value, c.ttl).Err()
		if err == nil {
			c.logger.WithField("key", k).Debug("Cache set (Redis)")
			return nil
		}
		c.logger.WithFields(logrus.Fields{
			"key":   k,
			"error": err.Error(),
		}).Warn("Redis set error, falling back to memory cache")
	}

	c.memMutex.Lock()
	c.memCache[k] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.memMutex.Unlock()

	c.logger.WithField("key", k).Debug("Cache set (memory)")
	return nil
}

// Delete removes a value from cache
func (c *CacheService) Delete(ctx context.Context, key string) error {
	k := c.key(key)

	if c.client != nil {
		if err := c.client.Del(ctx, k).Err(); err != nil {
			c.logger.WithFields(logrus.Fields{
				"key":   k,
				"error": err.Error(),
			}).Warn("Redis delete error")
		}
	}

	c.memMutex.Lock()
	delete(c.memCache, k)
	c.memMutex.Unlock()

	c.logger.WithField("key", k).Debug("Cache delete")
	return nil
}

// Clear removes every entry under the cache prefix
func (c *CacheService) Clear(ctx context.Context) error {
	if c.client != nil {
		iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			c.logger.WithField("error", err.Error()).Warn("Redis scan error")
		} else if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.logger.WithField("error", err.Error()).Warn("Redis clear error")
			}
		}
	}

	c.memMutex.Lock()
	c.memCache = make(map[string]cacheItem)
	c.memMutex.Unlock()

	c.logger.Info("Cache cleared")
	return nil
}

// Exists checks if a key exists in cache
func (c *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	k := c.key(key)

	if c.client != nil {
		count, err := c.client.Exists(ctx, k).Result()
		if err == nil && count > 0 {
			return true, nil
		}
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"key":   k,
				"error": err.Error(),
			}).Warn("Redis exists error, checking memory cache")
		}
	}

	c.memMutex.RLock()
	item, exists := c.memCache[k]
	c.memMutex.RUnlock()

	if !exists {
		return false, nil
	}

	if time.Now().After(item.expiresAt) {
		c.memMutex.Lock()
		delete(c.memCache, k)
		c.memMutex.Unlock()
		return false, nil
	}

	return true, nil
}

// GetStats returns cache statistics
func (c *CacheService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	if c.client != nil {
		size, err := c.client.DBSize(ctx).Result()
		if err == nil {
			stats["redis"] = map[string]interface{}{
				"available": true,
				"keys":      size,
			}
		} else {
			stats["redis"] = map[string]interface{}{
				"available": false,
				"error":     err.Error(),
			}
		}
	} else {
		stats["redis"] = map[string]interface{}{
			"available": false,
		}
	}

	c.memMutex.RLock()
	memSize := len(c.memCache)
	c.memMutex.RUnlock()

	hits, misses := c.hits.Load(), c.misses.Load()
	hitRate := 0.0
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	stats["memory"] = map[string]interface{}{
		"size": memSize,
		"ttl":  c.ttl.String(),
	}
	stats["hits"] = hits
	stats["misses"] = misses
	stats["hit_rate"] = hitRate

	return stats, nil
}

// Health returns cache service health status
func (c *CacheService) Health() map[string]interface{} {
	if c.client == nil {
		return map[string]interface{}{
			"status":  "healthy",
			"backend": "memory",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		// memory fallback keeps serving
		return map[string]interface{}{
			"status":  "degraded",
			"backend": "memory",
			"error":   err.Error(),
		}
	}

	return map[string]interface{}{
		"status":  "healthy",
		"backend": "redis",
	}
}

// cleanupExpired removes expired items from memory cache
func (c *CacheService) cleanupExpired() {
	c.memMutex.Lock()
	defer c.memMutex.Unlock()

	now := time.Now()
	for key, item := range c.memCache {
		if now.After(item.expiresAt) {
			delete(c.memCache, key)
		}
	}
}

// StartCleanupRoutine periodically drops expired memory entries until ctx is done.
func (c *CacheService) StartCleanupRoutine(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.cleanupExpired()
			}
		}
	}()
}
