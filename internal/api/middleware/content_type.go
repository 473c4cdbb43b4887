package middleware

import (
	"strings"

	"github.com/dawitk/portfolio-relay/internal/api/dto/common"
	"github.com/dawitk/portfolio-relay/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects requests whose Content-Type header is missing or not
// JSON, before the body is parsed.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")
		if contentType == "" || !strings.Contains(contentType, "application/json") {
			utils.HandleRequestError(c, common.ErrUnsupportedMediaType, nil)
			return
		}
		c.Next()
	}
}
