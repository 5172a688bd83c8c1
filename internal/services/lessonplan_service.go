package services

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"github.com/SAP-F-2025/school-management-service/internal/ai"
	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
	"github.com/SAP-F-2025/school-management-service/internal/validator"
)

// PlanGenerator abstracts the external generation endpoint so tests can
// substitute a failing or canned implementation.
type PlanGenerator interface {
	GenerateLessonPlan(ctx context.Context, req ai.GenerateRequest) (*ai.PlanContent, error)
}

type lessonPlanService struct {
	repo      repositories.Repository
	generator PlanGenerator
	validator *validator.Validator
	logger    utils.Logger
}

// NewLessonPlanService creates the lesson plan service.
func NewLessonPlanService(
	repo repositories.Repository,
	generator PlanGenerator,
	v *validator.Validator,
	logger utils.Logger,
) LessonPlanService {
	return &lessonPlanService{
		repo:      repo,
		generator: generator,
		validator: v,
		logger:    logger,
	}
}

// Generate produces a plan for an approved teacher. A generation failure
// degrades to the locally synthesized fallback; the operation itself only
// fails on validation or authorization.
func (s *lessonPlanService) Generate(ctx context.Context, teacherID string, req *GenerateLessonPlanRequest) (*LessonPlanResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.requireApprovedTeacher(ctx, teacherID); err != nil {
		return nil, err
	}

	genReq := ai.GenerateRequest{
		TemplateType:    req.TemplateType,
		TopicName:       req.TopicName,
		DurationMinutes: req.DurationMinutes,
		Language:        req.Language,
	}

	fallback := false
	content, err := s.generator.GenerateLessonPlan(ctx, genReq)
	if err != nil {
		s.logger.Warn("plan generation failed, using fallback",
			"teacher_id", teacherID,
			"topic", req.TopicName,
			"error", err,
		)
		content = ai.FallbackPlan(genReq)
		fallback = true
	}

	sections, err := planContentToSections(content)
	if err != nil {
		return nil, err
	}

	return &LessonPlanResponse{
		TemplateType:    req.TemplateType,
		TopicName:       req.TopicName,
		DurationMinutes: req.DurationMinutes,
		Language:        req.Language,
		Sections:        sections,
		Fallback:        fallback,
	}, nil
}

func (s *lessonPlanService) Save(ctx context.Context, teacherID string, req *SaveLessonPlanRequest) (*models.LessonPlan, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.requireApprovedTeacher(ctx, teacherID); err != nil {
		return nil, err
	}

	sections, err := json.Marshal(req.Sections)
	if err != nil {
		return nil, err
	}

	plan := &models.LessonPlan{
		TeacherID:       teacherID,
		TemplateType:    req.TemplateType,
		TopicName:       req.TopicName,
		DurationMinutes: req.DurationMinutes,
		Language:        req.Language,
		Sections:        datatypes.JSON(sections),
		Fallback:        req.Fallback,
	}

	if err := s.repo.LessonPlan().Create(ctx, nil, plan); err != nil {
		return nil, err
	}

	s.logger.Info("lesson plan saved",
		"teacher_id", teacherID,
		"plan_id", plan.ID,
		"topic", plan.TopicName,
	)
	return plan, nil
}

func (s *lessonPlanService) List(ctx context.Context, teacherID string, page, size int) (*LessonPlanListResponse, error) {
	if err := s.requireApprovedTeacher(ctx, teacherID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	filters := repositories.ListFilters{
		Limit:  size,
		Offset: (page - 1) * size,
	}

	plans, total, err := s.repo.LessonPlan().ListByTeacher(ctx, teacherID, filters)
	if err != nil {
		return nil, err
	}

	return &LessonPlanListResponse{
		Plans: plans,
		Total: total,
		Page:  page,
		Size:  size,
	}, nil
}

func (s *lessonPlanService) Get(ctx context.Context, teacherID string, id uint) (*models.LessonPlan, error) {
	plan, err := s.repo.LessonPlan().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLessonPlanNotFound
		}
		return nil, err
	}

	// Ownership is scoping, not permissioning: another teacher's plan is
	// indistinguishable from a missing one.
	if plan.TeacherID != teacherID {
		return nil, ErrLessonPlanNotFound
	}

	return plan, nil
}

func (s *lessonPlanService) Delete(ctx context.Context, teacherID string, id uint) error {
	if _, err := s.Get(ctx, teacherID, id); err != nil {
		return err
	}

	return s.repo.LessonPlan().Delete(ctx, nil, id)
}

// requireApprovedTeacher gates plan operations on the teachers table; a
// pending or rejected teacher cannot generate or manage plans.
func (s *lessonPlanService) requireApprovedTeacher(ctx context.Context, teacherID string) error {
	teacher, err := s.repo.Teacher().GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return NewPermissionError(teacherID, "lesson_plan", "manage", "caller is not a teacher")
		}
		return err
	}

	if teacher.Status != models.StatusApproved {
		return NewPermissionError(teacherID, "lesson_plan", "manage", "teacher is not approved")
	}
	return nil
}

func planContentToSections(content *ai.PlanContent) (map[string]any, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}

	var sections map[string]any
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}
