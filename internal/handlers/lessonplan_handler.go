package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/school-management-service/internal/services"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

type LessonPlanHandler struct {
	BaseHandler
	lessonPlans services.LessonPlanService
}

func NewLessonPlanHandler(lessonPlans services.LessonPlanService, logger utils.Logger) *LessonPlanHandler {
	return &LessonPlanHandler{
		BaseHandler: NewBaseHandler(logger),
		lessonPlans: lessonPlans,
	}
}

// Generate produces a lesson plan for the calling teacher. Generation
// failures degrade to a locally synthesized plan marked "fallback".
func (h *LessonPlanHandler) Generate(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	var req services.GenerateLessonPlanRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Generating lesson plan",
		"teacher_id", identityID,
		"topic", req.TopicName,
		"template", req.TemplateType,
	)

	plan, err := h.lessonPlans.Generate(c.Request.Context(), identityID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Save persists a previously generated plan.
func (h *LessonPlanHandler) Save(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	var req services.SaveLessonPlanRequest
	if !h.bindJSON(c, &req) {
		return
	}

	plan, err := h.lessonPlans.Save(c.Request.Context(), identityID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// List returns the calling teacher's saved plans.
func (h *LessonPlanHandler) List(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	list, err := h.lessonPlans.List(c.Request.Context(), identityID, page, size)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get returns one of the calling teacher's plans.
func (h *LessonPlanHandler) Get(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	plan, err := h.lessonPlans.Get(c.Request.Context(), identityID, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Delete removes one of the calling teacher's plans.
func (h *LessonPlanHandler) Delete(c *gin.Context) {
	identityID, ok := h.identityID(c)
	if !ok {
		return
	}

	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.lessonPlans.Delete(c.Request.Context(), identityID, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "lesson plan deleted"})
}
