package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-geo/internal/models"
)

// HealthChecker reports per-service health keyed by service name
type HealthChecker interface {
	Health() map[string]interface{}
}

// HealthHandler handles health check requests
type HealthHandler struct {
	checker   HealthChecker
	version   string
	logger    *logrus.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker HealthChecker, version string, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		checker:   checker,
		version:   version,
		logger:    logger,
		startTime: time.Now(),
	}
}

func statusOf(health interface{}) string {
	if m, ok := health.(map[string]interface{}); ok {
		if s, ok := m["status"].(string); ok {
			return s
		}
	}
	return "unknown"
}

// GetHealth handles general health check
// @Summary Health check
// @Description Get the health status of the API and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	servicesHealth := h.checker.Health()

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Truncate(time.Second).String(),
		Services:  make(map[string]models.ServiceInfo, len(servicesHealth)),
	}

	for name, health := range servicesHealth {
		info := models.ServiceInfo{Status: statusOf(health)}
		if m, ok := health.(map[string]interface{}); ok {
			if msg, ok := m["error"].(string); ok {
				info.Error = msg
			}
		}
		response.Services[name] = info

		switch info.Status {
		case "unhealthy":
			response.Status = "unhealthy"
		case "degraded":
			if response.Status == "healthy" {
				response.Status = "degraded"
			}
		}
	}

	httpStatus := http.StatusOK
	if response.Status == "unhealthy" {
		h.logger.WithField("services", servicesHealth).Warn("Health check failed")
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, response)
}

// GetReadiness handles readiness probe
// @Summary Readiness check
// @Description Ready when no dependency reports unhealthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) GetReadiness(c *gin.Context) {
	servicesHealth := h.checker.Health()

	issues := make([]string, 0)
	for name, health := range servicesHealth {
		if statusOf(health) == "unhealthy" {
			issues = append(issues, name+" service is unhealthy")
		}
	}

	response := gin.H{
		"ready":     len(issues) == 0,
		"timestamp": time.Now(),
		"services":  servicesHealth,
	}

	httpStatus := http.StatusOK
	if len(issues) > 0 {
		response["issues"] = issues
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, response)
}

// GetLiveness handles liveness probe
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
		"uptime":    time.Since(h.startTime).Truncate(time.Second).String(),
		"version":   h.version,
	})
}
