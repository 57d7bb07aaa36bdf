package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nexconsult/cnpj-geo/internal/api/handlers"
	"github.com/nexconsult/cnpj-geo/internal/api/middleware"
	"github.com/nexconsult/cnpj-geo/internal/config"
	"github.com/nexconsult/cnpj-geo/internal/models"
	"github.com/nexconsult/cnpj-geo/internal/services"
)

// Version is reported by the health endpoints
var Version = "1.0.0"

// Server represents the HTTP server
type Server struct {
	Router      *gin.Engine
	RateLimiter *middleware.RateLimiter
	config      *config.Config
	logger      *logrus.Logger
	services    *services.Container
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, services *services.Container) *Server {
	server := &Server{
		config:      cfg,
		logger:      logger,
		services:    services,
		RateLimiter: middleware.NewRateLimiter(cfg.Security.RateLimit),
	}

	server.setupRouter()
	return server
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()

	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())

	// Health checks are not rate limited
	healthHandler := handlers.NewHealthHandler(s.services, Version, s.logger)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)

	if !s.config.IsProduction() {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	v1 := s.Router.Group("/api/v1")
	v1.Use(s.RateLimiter.Middleware())
	{
		cnpjHandler := handlers.NewCNPJHandler(s.services.CNPJService, s.logger)
		cnpj := v1.Group("/cnpj")
		{
			cnpj.POST("/validate", cnpjHandler.Validate)
			cnpj.POST("/batch", cnpjHandler.Batch)
			cnpj.POST("/extract", cnpjHandler.Extract)
			cnpj.GET("/generate/:base", cnpjHandler.Generate)
			cnpj.GET("/:cnpj", cnpjHandler.GetCNPJ)
		}

		geometryHandler := handlers.NewGeometryHandler(s.logger)
		geometry := v1.Group("/geometry")
		{
			geometry.POST("/intersection", geometryHandler.Intersection)
			geometry.POST("/contains", geometryHandler.Contains)
			geometry.GET("/area", geometryHandler.Area)
		}

		cacheHandler := handlers.NewCacheHandler(s.services.CacheService, s.logger)
		cache := v1.Group("/cache")
		{
			cache.GET("/stats", cacheHandler.GetStats)
			cache.DELETE("/clear", cacheHandler.Clear)
			cache.DELETE("/:cnpj", cacheHandler.Delete)
		}

		v1.GET("/stats", handlers.NewMetricsHandler(s.services.Pool, s.RateLimiter, s.logger).GetStats)
	}

	s.Router.HandleMethodNotAllowed = true

	s.Router.NoRoute(func(c *gin.Context) {
		resp := models.NewErrorResponse(models.ErrorCodeNotFound, "The requested resource was not found",
			gin.H{"path": c.Request.URL.Path})
		resp.SetRequestID(c.GetString(middleware.RequestIDKey))
		c.JSON(http.StatusNotFound, resp)
	})

	s.Router.NoMethod(func(c *gin.Context) {
		resp := models.NewErrorResponse(models.ErrorCodeInvalidRequest, "The requested method is not allowed for this resource",
			gin.H{"path": c.Request.URL.Path, "method": c.Request.Method})
		resp.SetRequestID(c.GetString(middleware.RequestIDKey))
		c.JSON(http.StatusMethodNotAllowed, resp)
	})
}
