package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Emizy/fitness-club-manager-api/internal/logger"
)

// RequestLoggingMiddleware logs every request with method, path, status,
// latency and client IP.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.Infof("%s %s %d %dms %s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency.Milliseconds(),
			c.ClientIP(),
		)
	}
}
