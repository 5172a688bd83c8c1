package services

import (
	"context"

	"github.com/SAP-F-2025/school-management-service/internal/export"
	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
)

// exportPageSize bounds each roster page pulled during export.
const exportPageSize = 500

type rosterService struct {
	repo   repositories.Repository
	logger utils.Logger
}

// NewRosterService creates the roster listing/export service.
func NewRosterService(repo repositories.Repository, logger utils.Logger) RosterService {
	return &rosterService{
		repo:   repo,
		logger: logger,
	}
}

func (s *rosterService) ListStudents(ctx context.Context, filters repositories.ListFilters) ([]*models.Student, int64, error) {
	return s.repo.Student().List(ctx, filters)
}

func (s *rosterService) ListTeachers(ctx context.Context, filters repositories.ListFilters) ([]*models.Teacher, int64, error) {
	return s.repo.Teacher().List(ctx, filters)
}

// ExportRoster pulls the full student and teacher rosters page by page and
// renders them as an xlsx workbook.
func (s *rosterService) ExportRoster(ctx context.Context) ([]byte, error) {
	var students []*models.Student
	for offset := 0; ; offset += exportPageSize {
		page, total, err := s.repo.Student().List(ctx, repositories.ListFilters{Limit: exportPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		students = append(students, page...)
		if int64(len(students)) >= total || len(page) == 0 {
			break
		}
	}

	var teachers []*models.Teacher
	for offset := 0; ; offset += exportPageSize {
		page, total, err := s.repo.Teacher().List(ctx, repositories.ListFilters{Limit: exportPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, page...)
		if int64(len(teachers)) >= total || len(page) == 0 {
			break
		}
	}

	s.logger.Info("exporting roster",
		"students", len(students),
		"teachers", len(teachers),
	)

	return export.BuildRosterWorkbook(students, teachers)
}
