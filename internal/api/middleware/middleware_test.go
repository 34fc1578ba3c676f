package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"crescendai-backend/internal/api/middleware"
	"crescendai-backend/internal/config"
	"crescendai-backend/internal/logger"
	"crescendai-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	var captured string
	router := newRouter(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		captured = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(captured)
	assert.NoError(t, err, "generated request ID should be a valid UUID")
	assert.Equal(t, captured, w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_UsesExistingHeader(t *testing.T) {
	var captured string
	router := newRouter(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		captured = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "my-existing-request-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "my-existing-request-id", captured)
	assert.Equal(t, "my-existing-request-id", w.Header().Get(middleware.RequestIDHeader))
}

func TestLogger_TagsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup("info", &buf)
	t.Cleanup(func() { logger.Setup("info", nil) })

	router := newRouter(middleware.RequestID(), middleware.Logger())
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, "/missing", line["path"])
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
	assert.Equal(t, "warning", line["level"])
}

func TestRecovery(t *testing.T) {
	logger.Setup("error", io.Discard)
	t.Cleanup(func() { logger.Setup("info", nil) })

	router := newRouter(middleware.RequestID(), middleware.Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000/"}}
	router := newRouter(middleware.CORS(cfg))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	router := newRouter(middleware.Metrics())
	router.GET("/api/v1/recordings/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/recordings/"+uuid.NewString(), nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{endpoint="/api/v1/recordings/:id",method="GET",status="200"}`)
}
