package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/SAP-F-2025/school-management-service/internal/ai"
	"github.com/SAP-F-2025/school-management-service/internal/cache"
	"github.com/SAP-F-2025/school-management-service/internal/events"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
	"github.com/SAP-F-2025/school-management-service/internal/validator"
)

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPINs() PINConfig {
	return PINConfig{HODPIN: "hod-secret", AdminPIN: "admin-secret"}
}

// testEnv bundles the common fixture for service tests.
type testEnv struct {
	repo      *mockRepository
	publisher *events.MockEventPublisher
	resolver  RoleResolverService
	profile   ProfileService
}

func newTestEnv() *testEnv {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(testSlogLogger())
	logger := testLogger()
	resolver := NewRoleResolverService(repo, logger)
	profile := NewProfileService(repo, resolver, publisher, validator.New(), testCacheManager(), logger, testPINs())

	return &testEnv{
		repo:      repo,
		publisher: publisher,
		resolver:  resolver,
		profile:   profile,
	}
}

func validStudentRequest() *CompleteStudentRequest {
	return &CompleteStudentRequest{
		CommonProfileFields: validator.CommonProfileFields{
			FullName:    "Asha Verma",
			Email:       "asha@example.com",
			PhoneNumber: "9876543210",
			Gender:      "female",
		},
		RollNo:        "21",
		Std:           9,
		ParentsName:   "Ravi Verma",
		ParentsNumber: "9876500000",
		Address:       "12 Lake Road",
	}
}

func validTeacherRequest() *CompleteTeacherRequest {
	return &CompleteTeacherRequest{
		CommonProfileFields: validator.CommonProfileFields{
			FullName:    "Nilesh Rao",
			Email:       "nilesh@example.com",
			PhoneNumber: "9988776655",
			Gender:      "male",
		},
		SubjectExpertise:     "Physics",
		ExperienceYears:      6,
		HighestQualification: "MSc Physics",
		TeachingLevel:        "higher_secondary",
	}
}

func validHODRequest(pin string) *CompleteHODRequest {
	return &CompleteHODRequest{
		CommonProfileFields: validator.CommonProfileFields{
			FullName:    "Meera Iyer",
			Email:       "meera@example.com",
			PhoneNumber: "9123456780",
			Gender:      "female",
		},
		PIN:                  pin,
		DepartmentExpertise:  "Science",
		ExperienceYears:      12,
		HighestQualification: "PhD Chemistry",
	}
}

func validAdminRequest(pin string) *CompleteAdminRequest {
	return &CompleteAdminRequest{
		CommonProfileFields: validator.CommonProfileFields{
			FullName:    "Sanjay Kulkarni",
			Email:       "sanjay@example.com",
			PhoneNumber: "9001122334",
			Gender:      "male",
		},
		PIN:         pin,
		AccessLevel: "full",
	}
}

// stubGenerator is a canned PlanGenerator for lesson plan tests.
type stubGenerator struct {
	content *ai.PlanContent
	err     error
	calls   int
}

func (g *stubGenerator) GenerateLessonPlan(ctx context.Context, req ai.GenerateRequest) (*ai.PlanContent, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.content, nil
}

func testCacheManager() *cache.CacheManager {
	return cache.NewCacheManager(nil)
}
