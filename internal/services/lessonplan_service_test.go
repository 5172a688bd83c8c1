package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SAP-F-2025/school-management-service/internal/ai"
	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/validator"
)

func newLessonPlanEnv(gen *stubGenerator) (*mockRepository, LessonPlanService) {
	repo := newMockRepository()
	repo.teachers["t-1"] = &models.Teacher{ID: "t-1", Status: models.StatusApproved}
	repo.teachers["t-pending"] = &models.Teacher{ID: "t-pending", Status: models.StatusPending}

	service := NewLessonPlanService(repo, gen, validator.New(), testLogger())
	return repo, service
}

func generateRequest() *GenerateLessonPlanRequest {
	return &GenerateLessonPlanRequest{
		TemplateType:    "standard",
		TopicName:       "Fractions",
		DurationMinutes: 40,
		Language:        "english",
	}
}

func TestGenerate_Success(t *testing.T) {
	gen := &stubGenerator{content: &ai.PlanContent{LearningObjectives: []string{"Understand fractions"}}}
	_, service := newLessonPlanEnv(gen)

	plan, err := service.Generate(context.Background(), "t-1", generateRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if plan.Fallback {
		t.Error("successful generation must not be marked fallback")
	}
	if _, ok := plan.Sections["learning_objectives"]; !ok {
		t.Errorf("sections missing objectives: %v", plan.Sections)
	}
}

// A generation failure degrades to the local fallback; the operation itself
// succeeds.
func TestGenerate_FallbackOnFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("endpoint down")}
	_, service := newLessonPlanEnv(gen)

	plan, err := service.Generate(context.Background(), "t-1", generateRequest())
	if err != nil {
		t.Fatalf("Generate must not fail when the endpoint does: %v", err)
	}
	if !plan.Fallback {
		t.Error("fallback plan must be marked")
	}
	if len(plan.Sections) == 0 {
		t.Error("fallback plan is empty")
	}
}

func TestGenerate_RequiresApprovedTeacher(t *testing.T) {
	gen := &stubGenerator{content: &ai.PlanContent{LearningObjectives: []string{"x"}}}
	_, service := newLessonPlanEnv(gen)

	tests := []struct {
		name   string
		caller string
	}{
		{name: "pending teacher", caller: "t-pending"},
		{name: "non-teacher", caller: "nobody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Generate(context.Background(), tt.caller, generateRequest())

			var permErr *PermissionError
			if !errors.As(err, &permErr) {
				t.Errorf("expected PermissionError, got %v", err)
			}
		})
	}

	if gen.calls != 0 {
		t.Errorf("generator must not be called for denied callers, got %d calls", gen.calls)
	}
}

func TestGenerate_ValidationBeforeGeneration(t *testing.T) {
	gen := &stubGenerator{content: &ai.PlanContent{}}
	_, service := newLessonPlanEnv(gen)

	req := generateRequest()
	req.DurationMinutes = 5 // below minimum

	if _, err := service.Generate(context.Background(), "t-1", req); err == nil {
		t.Fatal("expected validation error")
	}
	if gen.calls != 0 {
		t.Error("generator called despite invalid request")
	}
}

func TestSaveListGetDelete(t *testing.T) {
	gen := &stubGenerator{}
	_, service := newLessonPlanEnv(gen)
	ctx := context.Background()

	saved, err := service.Save(ctx, "t-1", &SaveLessonPlanRequest{
		GenerateLessonPlanRequest: *generateRequest(),
		Sections:                  map[string]interface{}{"learning_objectives": []string{"One"}},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("saved plan has no id")
	}

	list, err := service.List(ctx, "t-1", 1, 20)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list.Total != 1 || len(list.Plans) != 1 {
		t.Errorf("unexpected list: %+v", list)
	}

	got, err := service.Get(ctx, "t-1", saved.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.TopicName != "Fractions" {
		t.Errorf("wrong plan: %+v", got)
	}

	if err := service.Delete(ctx, "t-1", saved.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := service.Get(ctx, "t-1", saved.ID); !errors.Is(err, ErrLessonPlanNotFound) {
		t.Errorf("deleted plan still visible: %v", err)
	}
}

// Another teacher's plan is indistinguishable from a missing one.
func TestGet_OwnerScoped(t *testing.T) {
	gen := &stubGenerator{}
	repo, service := newLessonPlanEnv(gen)
	repo.teachers["t-2"] = &models.Teacher{ID: "t-2", Status: models.StatusApproved}

	saved, err := service.Save(context.Background(), "t-1", &SaveLessonPlanRequest{
		GenerateLessonPlanRequest: *generateRequest(),
		Sections:                  map[string]interface{}{"story": "Once"},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := service.Get(context.Background(), "t-2", saved.ID); !errors.Is(err, ErrLessonPlanNotFound) {
		t.Errorf("cross-teacher access must look like not-found, got %v", err)
	}
	if err := service.Delete(context.Background(), "t-2", saved.ID); !errors.Is(err, ErrLessonPlanNotFound) {
		t.Errorf("cross-teacher delete must look like not-found, got %v", err)
	}
}
