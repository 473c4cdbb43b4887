package routes

import (
	"github.com/dawitk/portfolio-relay/internal/api/handlers"
	"github.com/dawitk/portfolio-relay/internal/ratelimit"
)

// Handlers aggregates all route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Webhook *handlers.WebhookHandler
	Health  *handlers.HealthHandler
}

// Middleware aggregates shared route dependencies
type Middleware struct {
	ClientLimiter *ratelimit.Limiter
}
