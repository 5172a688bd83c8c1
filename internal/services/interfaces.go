package services

import (
	"context"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type CompleteStudentRequest = validator.CompleteStudentRequest
type CompleteTeacherRequest = validator.CompleteTeacherRequest
type CompleteHODRequest = validator.CompleteHODRequest
type CompleteAdminRequest = validator.CompleteAdminRequest
type UpdateProfileRequest = validator.UpdateProfileRequest
type TeacherDecisionRequest = validator.TeacherDecisionRequest
type GenerateLessonPlanRequest = validator.GenerateLessonPlanRequest
type SaveLessonPlanRequest = validator.SaveLessonPlanRequest

// RouteDestination is where the navigation gate sends an authenticated user.
type RouteDestination string

const (
	RouteProfileCompletion RouteDestination = "profile_completion"
	RouteRoleConflict      RouteDestination = "role_conflict"
	RouteDashboard         RouteDestination = "dashboard"
)

// RouteDecision is the navigation gate's verdict for one identity.
type RouteDecision struct {
	Destination RouteDestination `json:"destination"`
	Role        models.Role      `json:"role,omitempty"`
	Roles       []models.Role    `json:"roles,omitempty"`
	Record      any              `json:"record,omitempty"`
}

// LessonPlanResponse carries a generated plan before it is saved.
type LessonPlanResponse struct {
	TemplateType    string         `json:"template_type"`
	TopicName       string         `json:"topic_name"`
	DurationMinutes int            `json:"duration_minutes"`
	Language        string         `json:"language"`
	Sections        map[string]any `json:"sections"`
	Fallback        bool           `json:"fallback"`
}

// LessonPlanListResponse is a page of saved plans.
type LessonPlanListResponse struct {
	Plans []*models.LessonPlan `json:"plans"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Size  int                  `json:"size"`
}

// ===== DASHBOARD DTOs =====

type AdminDashboardResponse struct {
	RoleCounts          map[models.Role]int64                 `json:"role_counts"`
	TeacherStatusCounts map[models.RecordStatus]int64         `json:"teacher_status_counts"`
	RegistrationTrend   []repositories.RegistrationTrendData  `json:"registration_trend"`
	RecentRegistrations []repositories.RecentRegistrationData `json:"recent_registrations"`
	StudentsPerStandard []repositories.StandardCountData      `json:"students_per_standard"`
}

type HODDashboardResponse struct {
	PendingTeachers     []*models.Teacher             `json:"pending_teachers"`
	TeacherStatusCounts map[models.RecordStatus]int64 `json:"teacher_status_counts"`
}

type TeacherDashboardResponse struct {
	Status          models.RecordStatus `json:"status"`
	ApprovalNote    *string             `json:"approval_note,omitempty"`
	LessonPlanCount int64               `json:"lesson_plan_count"`
}

type StudentDashboardResponse struct {
	Student      *models.Student `json:"student"`
	MessageCount int             `json:"message_count"`
}

// DashboardResponse wraps whichever role dashboard applies.
type DashboardResponse struct {
	Role    models.Role               `json:"role"`
	Admin   *AdminDashboardResponse   `json:"admin,omitempty"`
	HOD     *HODDashboardResponse     `json:"hod,omitempty"`
	Teacher *TeacherDashboardResponse `json:"teacher,omitempty"`
	Student *StudentDashboardResponse `json:"student,omitempty"`
}

// ===== SERVICE INTERFACES =====

// RoleResolverService classifies an identity by role-table membership.
type RoleResolverService interface {
	// Resolve queries all four role tables and classifies the result. Any
	// query failure propagates as an error; partial results are never
	// reported.
	Resolve(ctx context.Context, identityID string) (*models.RoleResolution, error)
}

// ProfileService owns profile completion and owner edits.
type ProfileService interface {
	CompleteStudent(ctx context.Context, identityID string, req *CompleteStudentRequest) (*models.Student, error)
	CompleteTeacher(ctx context.Context, identityID string, req *CompleteTeacherRequest) (*models.Teacher, error)
	CompleteHOD(ctx context.Context, identityID string, req *CompleteHODRequest) (*models.HOD, error)
	CompleteAdmin(ctx context.Context, identityID string, req *CompleteAdminRequest) (*models.Admin, error)

	// GetOwnProfile returns the caller's resolution (role + record).
	GetOwnProfile(ctx context.Context, identityID string) (*models.RoleResolution, error)

	// UpdateOwnProfile mutates owner-editable fields of the caller's record.
	UpdateOwnProfile(ctx context.Context, identityID string, req *UpdateProfileRequest) (*models.RoleResolution, error)
}

// NavigationService is the session/navigation gate.
type NavigationService interface {
	Route(ctx context.Context, identityID string) (*RouteDecision, error)
}

// ApprovalService owns the HOD-driven teacher approval sub-flow.
type ApprovalService interface {
	// SetTeacherStatus transitions a pending teacher to approved or
	// rejected. The caller must resolve to HOD by table membership.
	SetTeacherStatus(ctx context.Context, callerID, teacherID string, req *TeacherDecisionRequest) (*models.Teacher, error)

	ListPendingTeachers(ctx context.Context, callerID string) ([]*models.Teacher, error)
}

// LessonPlanService owns lesson plan generation and persistence.
type LessonPlanService interface {
	Generate(ctx context.Context, teacherID string, req *GenerateLessonPlanRequest) (*LessonPlanResponse, error)
	Save(ctx context.Context, teacherID string, req *SaveLessonPlanRequest) (*models.LessonPlan, error)
	List(ctx context.Context, teacherID string, page, size int) (*LessonPlanListResponse, error)
	Get(ctx context.Context, teacherID string, id uint) (*models.LessonPlan, error)
	Delete(ctx context.Context, teacherID string, id uint) error
}

// DashboardService builds the chart payloads per role.
type DashboardService interface {
	GetForIdentity(ctx context.Context, identityID string) (*DashboardResponse, error)
	GetAdminDashboard(ctx context.Context) (*AdminDashboardResponse, error)
	GetHODDashboard(ctx context.Context) (*HODDashboardResponse, error)
	GetTeacherDashboard(ctx context.Context, teacherID string) (*TeacherDashboardResponse, error)
	GetStudentDashboard(ctx context.Context, studentID string) (*StudentDashboardResponse, error)
}

// RosterService exports the student and teacher rosters.
type RosterService interface {
	// ExportRoster renders the rosters as an xlsx workbook.
	ExportRoster(ctx context.Context) ([]byte, error)

	ListStudents(ctx context.Context, filters repositories.ListFilters) ([]*models.Student, int64, error)
	ListTeachers(ctx context.Context, filters repositories.ListFilters) ([]*models.Teacher, int64, error)
}

// ServiceManager aggregates all services and their lifecycle.
type ServiceManager interface {
	RoleResolver() RoleResolverService
	Profile() ProfileService
	Navigation() NavigationService
	Approval() ApprovalService
	LessonPlan() LessonPlanService
	Dashboard() DashboardService
	Roster() RosterService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
