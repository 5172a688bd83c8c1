package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"

	"github.com/SAP-F-2025/school-management-service/internal/cache"
	"github.com/SAP-F-2025/school-management-service/internal/events"
	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
	"github.com/SAP-F-2025/school-management-service/internal/validator"
)

// PINConfig carries the shared registration PINs for privileged roles.
type PINConfig struct {
	HODPIN   string
	AdminPIN string
}

type profileService struct {
	repo      repositories.Repository
	resolver  RoleResolverService
	publisher events.EventPublisher
	validator *validator.Validator
	cache     *cache.CacheManager
	logger    utils.Logger
	pins      PINConfig
}

// NewProfileService creates the profile completion service.
func NewProfileService(
	repo repositories.Repository,
	resolver RoleResolverService,
	publisher events.EventPublisher,
	v *validator.Validator,
	cacheManager *cache.CacheManager,
	logger utils.Logger,
	pins PINConfig,
) ProfileService {
	return &profileService{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		validator: v,
		cache:     cacheManager,
		logger:    logger,
		pins:      pins,
	}
}

// ===== PROFILE COMPLETION =====

func (s *profileService) CompleteStudent(ctx context.Context, identityID string, req *CompleteStudentRequest) (*models.Student, error) {
	if errs := s.validator.GetBusinessValidator().ValidateCompleteStudent(req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.requireUnregistered(ctx, identityID); err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:             identityID,
		FullName:       req.FullName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Gender:         req.Gender,
		Status:         models.DefaultStatus(models.RoleStudent),
		RollNo:         req.RollNo,
		Std:            req.Std,
		Stream:         req.Stream,
		DateOfBirth:    req.DateOfBirth,
		ParentsName:    req.ParentsName,
		ParentsNumber:  req.ParentsNumber,
		Address:        req.Address,
		PreviousSchool: req.PreviousSchool,
	}

	if err := s.repo.Student().Create(ctx, nil, student); err != nil {
		return nil, s.mapCreateError(err)
	}

	s.afterCompletion(ctx, identityID, models.RoleStudent, req.Email)
	return student, nil
}

func (s *profileService) CompleteTeacher(ctx context.Context, identityID string, req *CompleteTeacherRequest) (*models.Teacher, error) {
	if errs := s.validator.GetBusinessValidator().ValidateCompleteTeacher(req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.requireUnregistered(ctx, identityID); err != nil {
		return nil, err
	}

	questions, err := marshalSecurityQuestions(req.SecurityQuestions)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		ID:                   identityID,
		FullName:             req.FullName,
		Email:                req.Email,
		PhoneNumber:          req.PhoneNumber,
		Gender:               req.Gender,
		Status:               models.DefaultStatus(models.RoleTeacher),
		SubjectExpertise:     req.SubjectExpertise,
		ExperienceYears:      req.ExperienceYears,
		HighestQualification: req.HighestQualification,
		TeachingLevel:        req.TeachingLevel,
		Bio:                  req.Bio,
		SecurityQuestions:    questions,
	}

	if err := s.repo.Teacher().Create(ctx, nil, teacher); err != nil {
		return nil, s.mapCreateError(err)
	}

	s.afterCompletion(ctx, identityID, models.RoleTeacher, req.Email)
	return teacher, nil
}

func (s *profileService) CompleteHOD(ctx context.Context, identityID string, req *CompleteHODRequest) (*models.HOD, error) {
	// PIN first; a wrong PIN learns nothing about the rest of the payload.
	if !s.checkPIN(req.PIN, s.pins.HODPIN) {
		return nil, ErrInvalidPIN
	}

	if errs := s.validator.GetBusinessValidator().ValidateCompleteHOD(req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.requireUnregistered(ctx, identityID); err != nil {
		return nil, err
	}

	hod := &models.HOD{
		ID:                   identityID,
		FullName:             req.FullName,
		Email:                req.Email,
		PhoneNumber:          req.PhoneNumber,
		Gender:               req.Gender,
		Status:               models.DefaultStatus(models.RoleHOD),
		DepartmentExpertise:  req.DepartmentExpertise,
		ExperienceYears:      req.ExperienceYears,
		HighestQualification: req.HighestQualification,
		VisionDepartment:     req.VisionDepartment,
	}

	if err := s.repo.HOD().Create(ctx, nil, hod); err != nil {
		return nil, s.mapCreateError(err)
	}

	s.afterCompletion(ctx, identityID, models.RoleHOD, req.Email)
	return hod, nil
}

func (s *profileService) CompleteAdmin(ctx context.Context, identityID string, req *CompleteAdminRequest) (*models.Admin, error) {
	if !s.checkPIN(req.PIN, s.pins.AdminPIN) {
		return nil, ErrInvalidPIN
	}

	if errs := s.validator.GetBusinessValidator().ValidateCompleteAdmin(req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.requireUnregistered(ctx, identityID); err != nil {
		return nil, err
	}

	questions, err := marshalSecurityQuestions(req.SecurityQuestions)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		ID:                identityID,
		FullName:          req.FullName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		Gender:            req.Gender,
		Status:            models.DefaultStatus(models.RoleAdmin),
		AccessLevel:       req.AccessLevel,
		SecurityQuestions: questions,
	}

	if err := s.repo.Admin().Create(ctx, nil, admin); err != nil {
		return nil, s.mapCreateError(err)
	}

	s.afterCompletion(ctx, identityID, models.RoleAdmin, req.Email)
	return admin, nil
}

// ===== OWN PROFILE =====

func (s *profileService) GetOwnProfile(ctx context.Context, identityID string) (*models.RoleResolution, error) {
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

	return resolution, nil
}

func (s *profileService) UpdateOwnProfile(ctx context.Context, identityID string, req *UpdateProfileRequest) (*models.RoleResolution, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	resolution, err := s.GetOwnProfile(ctx, identityID)
	if err != nil {
		return nil, err
	}

	switch record := resolution.Record.(type) {
	case *models.Student:
		applyCommonUpdate(&record.FullName, &record.PhoneNumber, &record.Gender, req)
		if req.Address != nil {
			record.Address = *req.Address
		}
		err = s.repo.Student().Update(ctx, nil, record)
	case *models.Teacher:
		applyCommonUpdate(&record.FullName, &record.PhoneNumber, &record.Gender, req)
		if req.Bio != nil {
			record.Bio = req.Bio
		}
		err = s.repo.Teacher().Update(ctx, nil, record)
	case *models.HOD:
		applyCommonUpdate(&record.FullName, &record.PhoneNumber, &record.Gender, req)
		err = s.repo.HOD().Update(ctx, nil, record)
	case *models.Admin:
		applyCommonUpdate(&record.FullName, &record.PhoneNumber, &record.Gender, req)
		err = s.repo.Admin().Update(ctx, nil, record)
	default:
		return nil, ErrInvalidRole
	}

	if err != nil {
		return nil, err
	}
	return resolution, nil
}

// ===== HELPERS =====

// requireUnregistered enforces the at-most-one-role invariant before insert.
// The database primary key remains the authority; this check only produces a
// friendlier answer for the common case.
func (s *profileService) requireUnregistered(ctx context.Context, identityID string) error {
	resolution, err := s.resolver.Resolve(ctx, identityID)
	if err != nil {
		return err
	}
	if resolution.Kind != models.ResolutionNone {
		return ErrAlreadyRegistered
	}
	return nil
}

// checkPIN compares in constant time. An unset expected PIN disables the role
// entirely rather than opening it up.
func (s *profileService) checkPIN(submitted, expected string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(expected)) == 1
}

// mapCreateError converts a duplicate-key insert into the expected
// concurrent-loser outcome.
func (s *profileService) mapCreateError(err error) error {
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return ErrAlreadyRegistered
	}
	return err
}

// afterCompletion performs the best-effort side effects of a completed
// profile: the denormalized role tag on the identity and the domain event.
// Neither failure rolls back the committed record.
func (s *profileService) afterCompletion(ctx context.Context, identityID string, role models.Role, email string) {
	if err := s.repo.Identity().SetRoleTag(ctx, identityID, role); err != nil {
		s.logger.Warn("failed to set identity role tag",
			"identity_id", identityID,
			"role", role,
			"error", err,
		)
	}

	cache.InvalidateIdentityCache(ctx, s.cache, identityID, email)
	cache.InvalidateDashboardCache(ctx, s.cache)

	event := &events.ProfileCompletedEvent{
		IdentityID: identityID,
		Role:       role,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishProfileCompleted(ctx, event); err != nil {
		s.logger.Warn("failed to publish profile completed event",
			"identity_id", identityID,
			"role", role,
			"error", err,
		)
	}

	s.logger.Info("profile completed",
		"identity_id", identityID,
		"role", role,
	)
}

func applyCommonUpdate(fullName, phone, gender *string, req *UpdateProfileRequest) {
	if req.FullName != nil {
		*fullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		*phone = *req.PhoneNumber
	}
	if req.Gender != nil {
		*gender = *req.Gender
	}
}

func marshalSecurityQuestions(questions []validator.SecurityQuestion) (datatypes.JSON, error) {
	if len(questions) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
