package middleware

import (
	"github.com/dawitk/portfolio-relay/internal/api/dto/common"
	"github.com/dawitk/portfolio-relay/internal/logging"
	"github.com/dawitk/portfolio-relay/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery maps anything unforeseen in the pipeline to a generic 500. The
// panic value is logged server-side only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger := logging.GetGlobalLogger()
				logger.Error("Panic recovered on %s %s (client %s): %v",
					c.Request.Method, c.Request.URL.Path, utils.GetRealIP(c), r)

				c.AbortWithStatusJSON(
					common.ErrUnexpected.Status,
					common.NewErrorResponse(common.ErrUnexpected.Message),
				)
			}
		}()
		c.Next()
	}
}
