package utils

import (
	"net/http"

	"github.com/dawitk/portfolio-relay/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends the standard success body
func HandleSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse())
}

// HandleIgnored acknowledges an unsupported webhook event without processing
func HandleIgnored(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewIgnoredResponse())
}
