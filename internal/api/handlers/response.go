package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexconsult/cnpj-geo/internal/api/middleware"
	"github.com/nexconsult/cnpj-geo/internal/models"
)

// respond stamps the envelope with request metadata and writes it
func respond(c *gin.Context, status int, resp *models.StandardResponse, start time.Time) {
	resp.SetRequestID(c.GetString(middleware.RequestIDKey))
	resp.SetExecutionTime(time.Since(start))
	c.JSON(status, resp)
}

func respondError(c *gin.Context, status int, code, message string, details interface{}, start time.Time) {
	respond(c, status, models.NewErrorResponse(code, message, details), start)
}
