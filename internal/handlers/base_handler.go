package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/services"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
	"github.com/SAP-F-2025/school-management-service/internal/validator"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Message string                     `json:"message"`
	Details string                     `json:"details,omitempty"`
	Errors  validator.ValidationErrors `json:"errors,omitempty"`
}

// BaseHandler provides shared helpers for all handlers.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs a handler entry with the request-scoped logger.
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.GetContextLogger(c, h.logger).Info(msg, args...)
}

// identityID returns the authenticated identity id, or aborts with 401.
func (h *BaseHandler) identityID(c *gin.Context) (string, bool) {
	value, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return "", false
	}

	id, ok := value.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return "", false
	}
	return id, true
}

// bindJSON binds the request body, aborting with 400 on malformed JSON.
func (h *BaseHandler) bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// parseIDParam parses a numeric path parameter, aborting with 400 on failure.
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) uint {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || value == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + name + " parameter",
		})
		return 0
	}
	return uint(value)
}

// handleServiceError maps service errors onto HTTP statuses. The PIN error
// stays deliberately detail-free.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Errors:  verrs,
		})
		return
	}

	var permErr *services.PermissionError
	if errors.As(err, &permErr) {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Permission denied",
			Details: permErr.Reason,
		})
		return
	}

	var conflictErr *services.RoleConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Role conflict",
			Details: conflictErr.Error(),
		})
		return
	}

	var resErr *services.ResolutionError
	if errors.As(err, &resErr) {
		utils.GetContextLogger(c, h.logger).Error("role resolution failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Message: "Unable to determine account state, please retry",
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidPIN):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Invalid PIN",
		})
	case errors.Is(err, services.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Profile already completed for this account",
		})
	case errors.Is(err, services.ErrDecisionFinal):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Teacher decision already final",
		})
	case errors.Is(err, services.ErrRoleRecordNotFound),
		errors.Is(err, services.ErrLessonPlanNotFound),
		errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Resource not found",
		})
	case errors.Is(err, services.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid role",
		})
	default:
		utils.GetContextLogger(c, h.logger).Error("unhandled service error", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
