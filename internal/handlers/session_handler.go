package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/school-management-service/internal/services"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

type SessionHandler struct {
	BaseHandler
	navigation services.NavigationService
}

func NewSessionHandler(navigation services.NavigationService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler: NewBaseHandler(logger),
		navigation:  navigation,
	}
}

// GetRoute returns the navigation decision for the authenticated identity:
// profile completion, role conflict resolution, or the role dashboard.
func (h *SessionHandler) GetRoute(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Routing session", "identity_id", identityID)

	decision, err := h.navigation.Route(c.Request.Context(), identityID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}
