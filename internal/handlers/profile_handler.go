package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/services"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

type ProfileHandler struct {
	BaseHandler
	profile services.ProfileService
}

func NewProfileHandler(profile services.ProfileService, logger utils.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: NewBaseHandler(logger),
		profile:     profile,
	}
}

// CompleteProfile completes the caller's profile for the role named in the
// path. One identity gets exactly one role record; a second completion in any
// role table returns 409.
func (h *ProfileHandler) CompleteProfile(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	role := models.Role(c.Param("role"))
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid role",
			Details: "role must be one of: student, teacher, hod, admin",
		})
		return
	}

	h.LogRequest(c, "Completing profile", "identity_id", identityID, "role", role)

	var (
		record any
		err    error
	)

	switch role {
	case models.RoleStudent:
		var req services.CompleteStudentRequest
		if !h.bindJSON(c, &req) {
			return
		}
		record, err = h.profile.CompleteStudent(c.Request.Context(), identityID, &req)
	case models.RoleTeacher:
		var req services.CompleteTeacherRequest
		if !h.bindJSON(c, &req) {
			return
		}
		record, err = h.profile.CompleteTeacher(c.Request.Context(), identityID, &req)
	case models.RoleHOD:
		var req services.CompleteHODRequest
		if !h.bindJSON(c, &req) {
			return
		}
		record, err = h.profile.CompleteHOD(c.Request.Context(), identityID, &req)
	case models.RoleAdmin:
		var req services.CompleteAdminRequest
		if !h.bindJSON(c, &req) {
			return
		}
		record, err = h.profile.CompleteAdmin(c.Request.Context(), identityID, &req)
	}

	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetOwnProfile returns the caller's resolved role and record.
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	resolution, err := h.profile.GetOwnProfile(c.Request.Context(), identityID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolution)
}

// UpdateOwnProfile mutates the owner-editable fields of the caller's record.
func (h *ProfileHandler) UpdateOwnProfile(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	var req services.UpdateProfileRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Updating profile", "identity_id", identityID)

	resolution, err := h.profile.UpdateOwnProfile(c.Request.Context(), identityID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolution)
}
