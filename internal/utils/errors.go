package utils

import (
	"github.com/dawitk/portfolio-relay/internal/api/dto/common"
	"github.com/dawitk/portfolio-relay/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleRequestError converts a typed request failure into its HTTP response
// and aborts the request. The cause (if any) is logged server-side only;
// callers never see upstream error detail.
func HandleRequestError(c *gin.Context, rerr *common.RequestError, cause error) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		rerr.Status,
		string(rerr.Code),
		cause,
	)

	c.AbortWithStatusJSON(rerr.Status, common.NewErrorResponse(rerr.Message))
}
