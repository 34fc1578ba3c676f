package middleware

import (
	"crescendai-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID reuses the caller's X-Request-ID or generates one, exposes it on the
// response and tags log lines written for the request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// GetRequestID returns the request id set by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
