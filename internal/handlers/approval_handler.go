package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/school-management-service/internal/services"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

type ApprovalHandler struct {
	BaseHandler
	approval services.ApprovalService
}

func NewApprovalHandler(approval services.ApprovalService, logger utils.Logger) *ApprovalHandler {
	return &ApprovalHandler{
		BaseHandler: NewBaseHandler(logger),
		approval:    approval,
	}
}

// ListPendingTeachers returns the HOD approval queue.
func (h *ApprovalHandler) ListPendingTeachers(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	pending, err := h.approval.ListPendingTeachers(c.Request.Context(), identityID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teachers": pending,
		"total":    len(pending),
	})
}

// SetTeacherStatus records an approve/reject decision on a pending teacher.
func (h *ApprovalHandler) SetTeacherStatus(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	teacherID := c.Param("id")
	if teacherID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid teacher id",
		})
		return
	}

	var req services.TeacherDecisionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Recording teacher decision",
		"teacher_id", teacherID,
		"decision", req.Decision,
	)

	teacher, err := h.approval.SetTeacherStatus(c.Request.Context(), identityID, teacherID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teacher)
}
