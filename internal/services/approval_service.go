package services

import (
	"context"
	"errors"
	"time"

	"github.com/SAP-F-2025/school-management-service/internal/cache"
	"github.com/SAP-F-2025/school-management-service/internal/events"
	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
	"github.com/SAP-F-2025/school-management-service/internal/validator"
)

type approvalService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	validator *validator.Validator
	cache     *cache.CacheManager
	logger    utils.Logger
}

// NewApprovalService creates the teacher approval service.
func NewApprovalService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	v *validator.Validator,
	cacheManager *cache.CacheManager,
	logger utils.Logger,
) ApprovalService {
	return &approvalService{
		repo:      repo,
		publisher: publisher,
		validator: v,
		cache:     cacheManager,
		logger:    logger,
	}
}

// SetTeacherStatus transitions a pending teacher to approved or rejected.
// The caller's HOD membership is checked here against the hods table, not
// against anything the client sent; middleware role checks are advisory only.
func (s *approvalService) SetTeacherStatus(ctx context.Context, callerID, teacherID string, req *TeacherDecisionRequest) (*models.Teacher, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.requireHOD(ctx, callerID); err != nil {
		return nil, err
	}

	teacher, err := s.repo.Teacher().GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoleRecordNotFound
		}
		return nil, err
	}

	// approved and rejected are terminal.
	if teacher.Status != models.StatusPending {
		return nil, ErrDecisionFinal
	}

	decision := models.RecordStatus(req.Decision)
	if err := s.repo.Teacher().UpdateStatus(ctx, nil, teacherID, decision, req.Note); err != nil {
		return nil, err
	}

	teacher.Status = decision
	teacher.ApprovalNote = req.Note

	cache.InvalidateDashboardCache(ctx, s.cache)

	event := &events.TeacherDecisionEvent{
		TeacherID:  teacherID,
		DecidedBy:  callerID,
		Decision:   decision,
		Note:       req.Note,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishTeacherDecision(ctx, event); err != nil {
		s.logger.Warn("failed to publish teacher decision event",
			"teacher_id", teacherID,
			"decision", decision,
			"error", err,
		)
	}

	s.logger.Info("teacher decision recorded",
		"teacher_id", teacherID,
		"decided_by", callerID,
		"decision", decision,
	)

	return teacher, nil
}

func (s *approvalService) ListPendingTeachers(ctx context.Context, callerID string) ([]*models.Teacher, error) {
	if err := s.requireHOD(ctx, callerID); err != nil {
		return nil, err
	}

	return s.repo.Teacher().ListByStatus(ctx, models.StatusPending)
}

func (s *approvalService) requireHOD(ctx context.Context, callerID string) error {
	isHOD, err := s.repo.HOD().ExistsByID(ctx, callerID)
	if err != nil {
		return err
	}
	if !isHOD {
		return NewPermissionError(callerID, "teacher", "decide", "caller is not an HOD")
	}
	return nil
}
