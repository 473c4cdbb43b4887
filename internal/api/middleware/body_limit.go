package middleware

import (
	"bytes"
	"io"

	"github.com/dawitk/portfolio-relay/internal/api/constants"
	"github.com/dawitk/portfolio-relay/internal/api/dto/common"
	"github.com/dawitk/portfolio-relay/internal/utils"

	"github.com/gin-gonic/gin"
)

// Body size ceilings per endpoint. The webhook ceiling is higher because
// booking payloads carry attendee lists and metadata.
const (
	MaxContactBodySize = 10_000
	MaxWebhookBodySize = 50_000
)

// CaptureRawBody reads the request body once, rejects payloads over maxSize
// with 413, and stores the raw bytes in the context. Signature verification
// must run on these captured bytes, and the body is restored so later
// binding still works.
func CaptureRawBody(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil {
			c.Set(constants.ContextKeyRawBody, []byte{})
			c.Next()
			return
		}

		// Read one byte past the limit so oversize is detectable without
		// buffering an unbounded body.
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSize+1))
		if err != nil {
			utils.HandleRequestError(c, common.ErrMalformedJSON, err)
			return
		}

		if int64(len(body)) > maxSize {
			utils.HandleRequestError(c, common.ErrPayloadTooLarge, nil)
			return
		}

		c.Set(constants.ContextKeyRawBody, body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		c.Next()
	}
}

// RawBody returns the body bytes captured by CaptureRawBody.
func RawBody(c *gin.Context) []byte {
	if v, ok := c.Get(constants.ContextKeyRawBody); ok {
		if body, ok := v.([]byte); ok {
			return body
		}
	}
	return nil
}
