package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/nexconsult/cnpj-geo/internal/config"
	"github.com/nexconsult/cnpj-geo/internal/models"
)

// RateLimiter implements per-client rate limiting using a token bucket
type RateLimiter struct {
	config   config.RateLimitConfig
	limit    rate.Limit
	clients  map[string]*rate.Limiter
	lastSeen map[string]time.Time
	mu       sync.Mutex
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}
	cfg.BurstSize = burst

	return &RateLimiter{
		config:   cfg,
		limit:    rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		clients:  make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
	}
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getLimiter(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.RequestsPerMinute))

		if !limiter.Allow() {
			retryAfter := rl.retryAfter()

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(retryAfter).Unix(), 10))
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))

			resp := models.NewErrorResponse(models.ErrorCodeRateLimit,
				fmt.Sprintf("Too many requests. Try again in %v", retryAfter),
				gin.H{"retry_after": retryAfter.Seconds()})
			resp.SetRequestID(c.GetString(RequestIDKey))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		c.Next()
	}
}

// getLimiter gets or creates a rate limiter for a client
func (rl *RateLimiter) getLimiter(clientID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lastSeen[clientID] = time.Now()

	if limiter, exists := rl.clients[clientID]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.config.BurstSize)
	rl.clients[clientID] = limiter
	return limiter
}

// retryAfter is the time for one token to become available
func (rl *RateLimiter) retryAfter() time.Duration {
	if rl.limit <= 0 {
		return time.Minute
	}
	return time.Duration(float64(time.Second) / float64(rl.limit))
}

// Cleanup removes limiters idle for more than twice the cleanup interval
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.config.CleanupInterval * 2)

	for clientID, lastSeen := range rl.lastSeen {
		if lastSeen.Before(cutoff) {
			delete(rl.clients, clientID)
			delete(rl.lastSeen, clientID)
		}
	}
}

// StartJanitor runs Cleanup periodically until ctx is done
func (rl *RateLimiter) StartJanitor(ctx context.Context) {
	if rl.config.CleanupInterval <= 0 {
		return
	}

	ticker := time.NewTicker(rl.config.CleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return map[string]interface{}{
		"active_clients":      len(rl.clients),
		"requests_per_minute": rl.config.RequestsPerMinute,
		"burst_size":          rl.config.BurstSize,
		"cleanup_interval":    rl.config.CleanupInterval.String(),
	}
}
