package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"crescendai-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthCheckTimeout = 3 * time.Second

// DependencyCheck reports whether a backing service is reachable
type DependencyCheck func(ctx context.Context) error

// DatabaseCheck pings the database behind db
func DatabaseCheck(db *gorm.DB) DependencyCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	checks map[string]DependencyCheck
}

// NewHealthHandler creates a new health handler over the named dependency checks
func NewHealthHandler(checks map[string]DependencyCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database, cache and queue connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  make(map[string]string),
	}

	for name, err := range h.run(c.Request.Context()) {
		if err != nil {
			response.Status = "unhealthy"
			response.Services[name] = "error: " + err.Error()
		} else {
			response.Services[name] = "healthy"
		}
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	for name, err := range h.run(c.Request.Context()) {
		if err != nil {
			ready = false
			services[name] = "not ready: " + err.Error()
		} else {
			services[name] = "ready"
		}
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

// run executes every check in name order and exports the outcome as a gauge
func (h *HealthHandler) run(ctx context.Context) map[string]error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]error, len(names))
	for _, name := range names {
		err := h.checks[name](ctx)
		metrics.SetDependencyHealth(name, err == nil)
		results[name] = err
	}
	return results
}
