package middleware

import (
	"time"

	"crescendai-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records Prometheus metrics for HTTP requests, labelled by route pattern
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Unmatched routes share one label so scanners cannot blow up cardinality
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		metrics.RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
