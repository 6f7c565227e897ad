package handler

import (
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only dashboard aggregates
type DashboardHandler struct {
	BaseHandler
	service DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats godoc
// @ID           getDashboardStats
// @Summary      Project dashboard statistics
// @Description  Completion rate, revenue and cost totals, milestone deadlines, top clients and monthly revenue
// @Tags         dashboard
// @Produce      json
// @Param        userId query string false "Acting user (development fallback)" format(uuid)
// @Success      200 {object} APIResponse[dashboardapp.StatsResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// TaskStats godoc
// @ID           getDashboardTaskStats
// @Summary      Task dashboard statistics
// @Description  Cards across all boards classified by column title, with deadlines
// @Tags         dashboard
// @Produce      json
// @Param        userId query string false "Acting user (development fallback)" format(uuid)
// @Success      200 {object} APIResponse[dashboardapp.TaskStatsResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/task-stats [get]
func (h *DashboardHandler) TaskStats(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	stats, err := h.service.TaskStats(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
