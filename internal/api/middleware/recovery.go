package middleware

import (
	"net/http"

	"crescendai-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 with the generic error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.FromGinContext(c).WithFields(map[string]interface{}{
			"panic":      recovered,
			"request_id": GetRequestID(c),
		}).Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	})
}
