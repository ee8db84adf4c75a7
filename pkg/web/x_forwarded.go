package web

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// XForwarded restores the scheme and host the client used when running
// behind a proxy, so absolute URLs handed back to clients are reachable.
func XForwarded(defaultScheme string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch proto := strings.ToLower(c.GetHeader("X-Forwarded-Proto")); proto {
		case "http", "https":
			c.Request.URL.Scheme = proto
		default:
			c.Request.URL.Scheme = defaultScheme
		}

		if host := c.GetHeader("X-Forwarded-Host"); host != "" {
			c.Request.Host = host
		}

		c.Next()
	}
}
