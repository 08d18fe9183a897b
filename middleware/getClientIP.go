package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP returns the originating client address, preferring the
// X-Forwarded-For header set by the load balancer.
func getClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
