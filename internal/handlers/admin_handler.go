package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/services"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

type AdminHandler struct {
	BaseHandler
	roster services.RosterService
}

func NewAdminHandler(roster services.RosterService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		roster:      roster,
	}
}

// ListUsers returns a paginated roster, students and teachers combined by
// role query parameter (default both).
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filters := repositories.ListFilters{
		Query:  c.Query("q"),
		Limit:  queryInt(c, "size", 20),
		Offset: 0,
	}
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	filters.Offset = (page - 1) * filters.Limit

	response := gin.H{"page": page, "size": filters.Limit}

	role := c.DefaultQuery("role", "")
	if role == "" || role == "student" {
		students, total, err := h.roster.ListStudents(c.Request.Context(), filters)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		response["students"] = students
		response["students_total"] = total
	}
	if role == "" || role == "teacher" {
		teachers, total, err := h.roster.ListTeachers(c.Request.Context(), filters)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		response["teachers"] = teachers
		response["teachers_total"] = total
	}

	c.JSON(http.StatusOK, response)
}

// ExportRoster streams the full roster as an xlsx workbook.
func (h *AdminHandler) ExportRoster(c *gin.Context) {
	h.LogRequest(c, "Exporting roster")

	workbook, err := h.roster.ExportRoster(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("roster-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
