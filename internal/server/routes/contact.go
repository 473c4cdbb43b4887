package routes

import (
	"github.com/dawitk/portfolio-relay/internal/api/handlers"
	"github.com/dawitk/portfolio-relay/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes. The gate order matters:
// content type, then the per-client window, then the body ceiling. The
// client's timestamp is recorded before the body is read.
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	router.POST("/contact",
		middleware.RequireJSON(),
		middleware.ClientRateLimit(m.ClientLimiter),
		middleware.CaptureRawBody(middleware.MaxContactBodySize),
		contact.Submit,
	)
}
