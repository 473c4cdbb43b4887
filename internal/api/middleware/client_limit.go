package middleware

import (
	"github.com/dawitk/portfolio-relay/internal/api/dto/common"
	"github.com/dawitk/portfolio-relay/internal/ratelimit"
	"github.com/dawitk/portfolio-relay/internal/utils"

	"github.com/gin-gonic/gin"
)

// ClientRateLimit enforces the per-client submission window. The timestamp is
// recorded inside Allow on acceptance, before any downstream processing runs.
func ClientRateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(utils.ClientKey(c)) {
			utils.HandleRequestError(c, common.ErrRateLimited, nil)
			return
		}
		c.Next()
	}
}
