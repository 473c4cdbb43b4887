package routes

import (
	"github.com/dawitk/portfolio-relay/internal/api/handlers"
	"github.com/dawitk/portfolio-relay/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupWebhookRoutes configures booking webhook routes. No content-type or
// per-client gate here: the sender is a fixed upstream authenticated by
// signature, not a browser.
func SetupWebhookRoutes(router *gin.RouterGroup, webhook *handlers.WebhookHandler) {
	router.POST("/webhooks/calcom",
		middleware.CaptureRawBody(middleware.MaxWebhookBodySize),
		webhook.HandleCalcom,
	)
}
