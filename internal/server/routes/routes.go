package routes

import (
	"strings"

	"github.com/dawitk/portfolio-relay/internal/api/middleware"
	"github.com/dawitk/portfolio-relay/internal/config"
	"github.com/dawitk/portfolio-relay/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	// Health check endpoint - outside the API group
	router.GET("/health", h.Health.Check)

	v1 := router.Group("/api/v1")

	SetupContactRoutes(v1, h.Contact, m)
	SetupWebhookRoutes(v1, h.Webhook)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(middleware.CORSConfig{
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.AllowedOrigins,
	}))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))
	router.Use(handleTrailingSlash())
}

// handleTrailingSlash middleware removes the need for strict trailing slash matching
func handleTrailingSlash() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path != "/" && strings.HasSuffix(path, "/") {
			c.Request.URL.Path = strings.TrimSuffix(path, "/")
		}
		c.Next()
	}
}
