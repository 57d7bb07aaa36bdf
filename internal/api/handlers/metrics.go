package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-geo/internal/api/middleware"
	"github.com/nexconsult/cnpj-geo/internal/models"
	"github.com/nexconsult/cnpj-geo/internal/worker"
)

// PoolStats is implemented by *worker.Pool
type PoolStats interface {
	Stats() worker.Stats
}

// LimiterStats is implemented by *middleware.RateLimiter
type LimiterStats interface {
	GetStats() map[string]interface{}
}

// MetricsHandler handles metrics requests
type MetricsHandler struct {
	pool    PoolStats
	limiter LimiterStats
	logger  *logrus.Logger
}

// NewMetricsHandler creates a new metrics handler. limiter may be nil.
func NewMetricsHandler(pool PoolStats, limiter LimiterStats, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{
		pool:    pool,
		limiter: limiter,
		logger:  logger,
	}
}

// GetStats handles the statistics request
// @Summary Get service statistics
// @Description Worker pool, rate limiter and runtime statistics
// @Tags Metrics
// @Produce json
// @Success 200 {object} models.StandardResponse
// @Router /stats [get]
func (h *MetricsHandler) GetStats(c *gin.Context) {
	start := time.Now()

	h.logger.WithField("request_id", c.GetString(middleware.RequestIDKey)).Debug("Getting service statistics")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	data := gin.H{
		"workers": h.pool.Stats(),
		"system": gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  float64(m.Alloc) / 1024 / 1024,
			"gc_cycles":  m.NumGC,
			"go_version": runtime.Version(),
			"num_cpu":    runtime.NumCPU(),
		},
	}
	if h.limiter != nil {
		data["rate_limiter"] = h.limiter.GetStats()
	}

	respond(c, http.StatusOK, models.NewSuccessResponse("Service statistics", data), start)
}
