package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/school-management-service/internal/services"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	dashboard services.DashboardService
}

func NewDashboardHandler(dashboard services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		dashboard:   dashboard,
	}
}

// GetDashboard returns the dashboard matching the caller's resolved role.
// The client never picks which dashboard it gets.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Getting dashboard", "identity_id", identityID)

	response, err := h.dashboard.GetForIdentity(c.Request.Context(), identityID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
