package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientKey derives the rate-limit key for a request: the first (leftmost)
// X-Forwarded-For address, or "unknown" when the header is absent. The
// sentinel groups all un-proxied traffic under one key on purpose.
func ClientKey(c *gin.Context) string {
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		// X-Forwarded-For can be a comma-separated list
		// Format: client, proxy1, proxy2, ...
		ips := strings.Split(forwardedFor, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}
	return "unknown"
}

// GetRealIP extracts the client IP from various headers, respecting reverse
// proxies. Used for request logging; rate limiting uses ClientKey instead.
func GetRealIP(c *gin.Context) string {
	// Try X-Real-IP first (set by the reverse proxy)
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	// Try X-Forwarded-For next
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	// Fall back to Gin's ClientIP
	return c.ClientIP()
}
