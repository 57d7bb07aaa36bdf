package services

import (
	"context"

	"github.com/nexconsult/cnpj-geo/internal/cnpj"
	"github.com/nexconsult/cnpj-geo/internal/models"
)

// CNPJServiceInterface defines the interface for CNPJ service
type CNPJServiceInterface interface {
	// Analyze validates one CNPJ, using the cache when possible.
	// The boolean reports a cache hit.
	Analyze(ctx context.Context, input string) (cnpj.Info, bool, error)

	// Batch validates many CNPJs on the worker pool
	Batch(ctx context.Context, inputs []string) (*models.BatchResponse, error)

	// Extract finds valid CNPJs in an HTML or plain text document
	Extract(ctx context.Context, body []byte, contentType string) ([]cnpj.Info, error)

	// Generate completes a 12-digit base with its check digits
	Generate(base string) (*models.GenerateResponse, error)

	// Health returns service health status
	Health() map[string]interface{}
}

// CacheServiceInterface defines the interface for cache service
type CacheServiceInterface interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value string) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear clears all cache entries
	Clear(ctx context.Context) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats returns cache statistics
	GetStats(ctx context.Context) (map[string]interface{}, error)

	// Health returns cache service health status
	Health() map[string]interface{}
}
