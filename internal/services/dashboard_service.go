package services

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/school-management-service/internal/cache"
	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

const (
	registrationTrendDays    = 30
	recentRegistrationsLimit = 10
)

type dashboardService struct {
	repo     repositories.Repository
	resolver RoleResolverService
	cache    *cache.CacheManager
	logger   utils.Logger
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(
	repo repositories.Repository,
	resolver RoleResolverService,
	cacheManager *cache.CacheManager,
	logger utils.Logger,
) DashboardService {
	return &dashboardService{
		repo:     repo,
		resolver: resolver,
		cache:    cacheManager,
		logger:   logger,
	}
}

// GetForIdentity resolves the caller and returns the dashboard that matches
// their role. The role comes from table membership, never from the client.
func (s *dashboardService) GetForIdentity(ctx context.Context, identityID string) (*DashboardResponse, error) {
	resolution, err := s.resolver.Resolve(ctx, identityID)
	if err != nil {
		return nil, err
	}

	switch resolution.Kind {
	case models.ResolutionNone:
		return nil, ErrRoleRecordNotFound
	case models.ResolutionMultiple:
		return nil, NewRoleConflictError(identityID, resolution.Roles)
	}

	response := &DashboardResponse{Role: resolution.Role()}

	switch resolution.Role() {
	case models.RoleAdmin:
		response.Admin, err = s.GetAdminDashboard(ctx)
	case models.RoleHOD:
		response.HOD, err = s.GetHODDashboard(ctx)
	case models.RoleTeacher:
		response.Teacher, err = s.GetTeacherDashboard(ctx, identityID)
	case models.RoleStudent:
		response.Student, err = s.GetStudentDashboard(ctx, identityID)
	}
	if err != nil {
		return nil, err
	}

	return response, nil
}

// GetAdminDashboard builds the school-wide charts. The aggregates span four
// tables, so the whole payload is cached under one key.
func (s *dashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardResponse, error) {
	var response AdminDashboardResponse

	err := s.cache.Stats.CacheOrExecute(ctx, "dashboard:admin", &response, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.buildAdminDashboard(ctx)
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (s *dashboardService) buildAdminDashboard(ctx context.Context) (*AdminDashboardResponse, error) {
	dash := s.repo.Dashboard()

	roleCounts, err := dash.GetRoleCounts(ctx, nil)
	if err != nil {
		return nil, err
	}

	statusCounts, err := dash.GetTeacherStatusCounts(ctx, nil)
	if err != nil {
		return nil, err
	}

	trend, err := dash.GetRegistrationTrend(ctx, nil, registrationTrendDays)
	if err != nil {
		return nil, err
	}

	recent, err := dash.GetRecentRegistrations(ctx, nil, recentRegistrationsLimit)
	if err != nil {
		return nil, err
	}

	perStandard, err := dash.GetStudentsPerStandard(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &AdminDashboardResponse{
		RoleCounts:          roleCounts,
		TeacherStatusCounts: statusCounts,
		RegistrationTrend:   trend,
		RecentRegistrations: recent,
		StudentsPerStandard: perStandard,
	}, nil
}

// GetHODDashboard is not cached: the pending list drives the approval queue
// and must reflect decisions immediately.
func (s *dashboardService) GetHODDashboard(ctx context.Context) (*HODDashboardResponse, error) {
	pending, err := s.repo.Teacher().ListByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.repo.Dashboard().GetTeacherStatusCounts(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &HODDashboardResponse{
		PendingTeachers:     pending,
		TeacherStatusCounts: statusCounts,
	}, nil
}

func (s *dashboardService) GetTeacherDashboard(ctx context.Context, teacherID string) (*TeacherDashboardResponse, error) {
	teacher, err := s.repo.Teacher().GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoleRecordNotFound
		}
		return nil, err
	}

	planCount, err := s.repo.LessonPlan().CountByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	return &TeacherDashboardResponse{
		Status:          teacher.Status,
		ApprovalNote:    teacher.ApprovalNote,
		LessonPlanCount: planCount,
	}, nil
}

func (s *dashboardService) GetStudentDashboard(ctx context.Context, studentID string) (*StudentDashboardResponse, error) {
	student, err := s.repo.Student().GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoleRecordNotFound
		}
		return nil, err
	}

	return &StudentDashboardResponse{
		Student:      student,
		MessageCount: student.MessageCount,
	}, nil
}
