package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/response"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/service"
)

// DashboardHandler handles the analytics endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboardData godoc
// GET /api/v1/dashboard
// Returns totals, overall and recent accuracy, the per-difficulty
// breakdown, and the per-document answer distribution.
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	data, err := h.dashboardService.GetDashboardData()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, data)
}
