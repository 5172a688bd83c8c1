package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SAP-F-2025/school-management-service/internal/models"
)

func TestResolve_None(t *testing.T) {
	env := newTestEnv()

	resolution, err := env.resolver.Resolve(context.Background(), "unknown-user")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolution.Kind != models.ResolutionNone {
		t.Errorf("expected none, got %s", resolution.Kind)
	}
	if resolution.Role() != "" {
		t.Errorf("none resolution must not carry a role, got %q", resolution.Role())
	}
}

func TestResolve_Single(t *testing.T) {
	env := newTestEnv()
	env.repo.students["u1"] = &models.Student{ID: "u1", FullName: "Asha", Std: 9}

	resolution, err := env.resolver.Resolve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolution.Kind != models.ResolutionSingle {
		t.Fatalf("expected single, got %s", resolution.Kind)
	}
	if resolution.Role() != models.RoleStudent {
		t.Errorf("expected student role, got %s", resolution.Role())
	}

	student, ok := resolution.Record.(*models.Student)
	if !ok {
		t.Fatalf("record has wrong type %T", resolution.Record)
	}
	if student.FullName != "Asha" {
		t.Errorf("record not loaded: %+v", student)
	}
}

func TestResolve_Multiple(t *testing.T) {
	env := newTestEnv()
	env.repo.teachers["u1"] = &models.Teacher{ID: "u1", Status: models.StatusApproved}
	env.repo.hods["u1"] = &models.HOD{ID: "u1"}

	resolution, err := env.resolver.Resolve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolution.Kind != models.ResolutionMultiple {
		t.Fatalf("expected multiple, got %s", resolution.Kind)
	}
	if len(resolution.Roles) != 2 {
		t.Errorf("expected 2 roles, got %v", resolution.Roles)
	}
	if resolution.Record != nil {
		t.Error("multiple resolution must not carry a record")
	}
}

// A table query failure must surface as an error, never as a NONE
// classification: the caller would otherwise route a registered user back to
// profile completion.
func TestResolve_QueryFailureIsNotNone(t *testing.T) {
	env := newTestEnv()
	env.repo.students["u1"] = &models.Student{ID: "u1"}
	env.repo.teacherErr = errors.New("connection refused")

	_, err := env.resolver.Resolve(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected resolution error")
	}

	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResolutionError, got %T: %v", err, err)
	}
	if resErr.Role != models.RoleTeacher {
		t.Errorf("wrong failing table reported: %s", resErr.Role)
	}
}
