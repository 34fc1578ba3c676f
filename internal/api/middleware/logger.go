package middleware

import (
	"time"

	"crescendai-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger writes one structured line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		entry := logger.FromGinContext(c).WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			entry.Error("request completed")
		case status >= 400:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}
	}
}
