package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-geo/internal/config"
	"github.com/nexconsult/cnpj-geo/internal/worker"
)

// Container holds all service dependencies
type Container struct {
	config       *config.Config
	logger       *logrus.Logger
	redisClient  *redis.Client
	ctx          context.Context
	cancel       context.CancelFunc
	Pool         *worker.Pool
	CNPJService  CNPJServiceInterface
	CacheService CacheServiceInterface
}

// NewContainer creates a new service container and starts the worker pool
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	ctx, cancel := context.WithCancel(context.Background())
	container := &Container{
		config: cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	container.initRedis()

	if err := container.initServices(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return container, nil
}

// initRedis connects to Redis; the cache falls back to memory when it is
// disabled or unreachable.
func (c *Container) initRedis() {
	if !c.config.Redis.Enabled {
		c.logger.Info("Redis disabled, using memory cache")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         c.config.Redis.Addr(),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(c.ctx, c.config.Redis.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		c.logger.WithFields(logrus.Fields{
			"addr":  c.config.Redis.Addr(),
			"error": err.Error(),
		}).Warn("Redis connection failed, running with memory cache")
		_ = client.Close()
		return
	}

	c.redisClient = client
	c.logger.WithField("addr", c.config.Redis.Addr()).Info("Redis connection established")
}

// initServices initializes all services
func (c *Container) initServices() error {
	cache := NewCacheService(c.redisClient, c.config.Cache.TTL, c.config.Cache.KeyPrefix, c.logger)
	cache.StartCleanupRoutine(c.ctx, c.config.Cache.CleanupInterval)
	c.CacheService = cache

	cnpjService := NewCNPJService(cache, NewExtractorService(c.logger), c.config.Batch.MaxItems, c.logger)

	c.Pool = worker.NewPool(c.config.Workers, cnpjService.analyzeForPool, c.logger)
	if err := c.Pool.Start(); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}
	cnpjService.SetPool(c.Pool)
	c.CNPJService = cnpjService

	return nil
}

// Close stops background work and closes connections
func (c *Container) Close() error {
	var errs []error

	if c.Pool != nil {
		c.Pool.Stop()
	}
	c.cancel()

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	health := make(map[string]interface{})

	if c.CacheService != nil {
		health["cache"] = c.CacheService.Health()
	}
	if c.Pool != nil {
		health["workers"] = c.Pool.Health()
	}
	if c.CNPJService != nil {
		health["cnpj"] = c.CNPJService.Health()
	}

	return health
}

// GetRedisClient returns the Redis client, nil when running on memory
func (c *Container) GetRedisClient() *redis.Client {
	return c.redisClient
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logrus.Logger {
	return c.logger
}
