package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/school-management-service/internal/config"
	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/services"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

type HandlerManager struct {
	sessionHandler    *SessionHandler
	profileHandler    *ProfileHandler
	approvalHandler   *ApprovalHandler
	lessonPlanHandler *LessonPlanHandler
	dashboardHandler  *DashboardHandler
	adminHandler      *AdminHandler
	authMiddleware    *CasdoorAuthMiddleware

	repo repositories.Repository
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	casdoorConfig config.CasdoorConfig,
	repo repositories.Repository,
) *HandlerManager {
	authMiddleware := NewCasdoorAuthMiddleware(casdoorConfig, repo.Identity(), serviceManager.RoleResolver())

	return &HandlerManager{
		sessionHandler:    NewSessionHandler(serviceManager.Navigation(), logger),
		profileHandler:    NewProfileHandler(serviceManager.Profile(), logger),
		approvalHandler:   NewApprovalHandler(serviceManager.Approval(), logger),
		lessonPlanHandler: NewLessonPlanHandler(serviceManager.LessonPlan(), logger),
		dashboardHandler:  NewDashboardHandler(serviceManager.Dashboard(), logger),
		adminHandler:      NewAdminHandler(serviceManager.Roster(), logger),
		authMiddleware:    authMiddleware,
		repo:              repo,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(hm.authMiddleware.AuthMiddleware())
	{
		// Session/navigation gate
		session := v1.Group("/session")
		{
			session.GET("/route", hm.sessionHandler.GetRoute)
		}

		// Profile completion and self-service profile
		profiles := v1.Group("/profiles")
		{
			profiles.POST("/:role", hm.profileHandler.CompleteProfile)
			profiles.GET("/me", hm.profileHandler.GetOwnProfile)
			profiles.PUT("/me", hm.profileHandler.UpdateOwnProfile)
		}

		// Role dashboard; the service picks the dashboard from table membership
		v1.GET("/dashboard", hm.dashboardHandler.GetDashboard)

		// HOD approval queue
		hod := v1.Group("/hod", hm.authMiddleware.RequireRoleMiddleware(models.RoleHOD))
		{
			hod.GET("/teachers/pending", hm.approvalHandler.ListPendingTeachers)
			hod.PUT("/teachers/:id/status", hm.approvalHandler.SetTeacherStatus)
		}

		// Lesson planning - approved teachers only (enforced by the service)
		lessonPlans := v1.Group("/lesson-plans", hm.authMiddleware.RequireRoleMiddleware(models.RoleTeacher))
		{
			lessonPlans.POST("/generate", hm.lessonPlanHandler.Generate)
			lessonPlans.POST("", hm.lessonPlanHandler.Save)
			lessonPlans.GET("", hm.lessonPlanHandler.List)
			lessonPlans.GET("/:id", hm.lessonPlanHandler.Get)
			lessonPlans.DELETE("/:id", hm.lessonPlanHandler.Delete)
		}

		// Admin roster management
		admin := v1.Group("/admin", hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			admin.GET("/users", hm.adminHandler.ListUsers)
			admin.GET("/export/roster", hm.adminHandler.ExportRoster)
		}
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	if err := hm.repo.Ping(c.Request.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "school-management-service",
	})
}
