package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-geo/internal/api/middleware"
	"github.com/nexconsult/cnpj-geo/internal/cnpj"
	"github.com/nexconsult/cnpj-geo/internal/models"
	"github.com/nexconsult/cnpj-geo/internal/services"
)

// CacheHandler handles cache management requests
type CacheHandler struct {
	cacheService services.CacheServiceInterface
	logger       *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cacheService services.CacheServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
		logger:       logger,
	}
}

// GetStats handles cache statistics request
// @Summary Get cache statistics
// @Description Hits, misses and backend details of the analysis cache
// @Tags Cache
// @Produce json
// @Success 200 {object} models.StandardResponse
// @Failure 500 {object} models.StandardResponse
// @Router /cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString(middleware.RequestIDKey)

	stats, err := h.cacheService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get cache statistics")
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalError, "Failed to retrieve cache statistics", nil, start)
		return
	}

	data := gin.H{
		"stats":  stats,
		"health": h.cacheService.Health(),
	}
	respond(c, http.StatusOK, models.NewSuccessResponse("Cache statistics", data), start)
}

// Clear handles cache clear request
// @Summary Clear all cache
// @Description Remove every cached CNPJ analysis
// @Tags Cache
// @Produce json
// @Success 200 {object} models.StandardResponse
// @Failure 500 {object} models.StandardResponse
// @Router /cache/clear [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString(middleware.RequestIDKey)

	if err := h.cacheService.Clear(c.Request.Context()); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear cache")
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalError, "Failed to clear cache", nil, start)
		return
	}

	h.logger.WithField("request_id", requestID).Info("Cache cleared")
	respond(c, http.StatusOK, models.NewSuccessResponse("Cache cleared successfully", nil), start)
}

// Delete handles specific cache entry deletion
// @Summary Delete specific CNPJ from cache
// @Tags Cache
// @Param cnpj path string true "CNPJ whose analysis should be evicted"
// @Produce json
// @Success 200 {object} models.StandardResponse
// @Failure 400 {object} models.StandardResponse
// @Failure 404 {object} models.StandardResponse
// @Failure 500 {object} models.StandardResponse
// @Router /cache/{cnpj} [delete]
func (h *CacheHandler) Delete(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString(middleware.RequestIDKey)

	key := cnpj.Clean(c.Param("cnpj"))
	if len(key) != cnpj.Length {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidCNPJ, cnpj.ErrInvalidLength.Error(), nil, start)
		return
	}

	exists, err := h.cacheService.Exists(c.Request.Context(), key)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"cnpj":       key,
			"error":      err.Error(),
		}).Error("Failed to check cache key existence")
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalError, "Failed to check cache", nil, start)
		return
	}
	if !exists {
		respondError(c, http.StatusNotFound, models.ErrorCodeNotFound, "CNPJ not found in cache", nil, start)
		return
	}

	if err := h.cacheService.Delete(c.Request.Context(), key); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"cnpj":       key,
			"error":      err.Error(),
		}).Error("Failed to delete CNPJ from cache")
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalError, "Failed to delete from cache", nil, start)
		return
	}

	respond(c, http.StatusOK, models.NewSuccessResponse("CNPJ deleted from cache", gin.H{"cnpj": cnpj.Format(key)}), start)
}
