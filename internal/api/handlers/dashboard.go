package handlers

import (
	"net/http"

	"crescendai-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate views of the caller's organizations
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/v1/dashboard/stats
// @Summary Dashboard statistics
// @Description Organization and recording totals, per-state counts and the five most recent recordings
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStats "Dashboard statistics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Overview handles GET /api/v1/dashboard/overview
// @Summary Dashboard overview
// @Description Every organization of the caller with its recordings
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardOverview "Dashboard overview"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	overview, err := h.service.Overview(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, overview)
}
