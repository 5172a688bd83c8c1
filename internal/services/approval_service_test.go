package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SAP-F-2025/school-management-service/internal/events"
	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/validator"
)

type approvalEnv struct {
	repo      *mockRepository
	publisher *events.MockEventPublisher
	approval  ApprovalService
}

func newApprovalEnv() *approvalEnv {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(testSlogLogger())
	approval := NewApprovalService(repo, publisher, validator.New(), testCacheManager(), testLogger())

	repo.hods["hod-1"] = &models.HOD{ID: "hod-1", FullName: "Meera"}
	repo.teachers["t-1"] = &models.Teacher{
		ID:               "t-1",
		FullName:         "Nilesh",
		Status:           models.StatusPending,
		SubjectExpertise: "Physics",
	}

	return &approvalEnv{repo: repo, publisher: publisher, approval: approval}
}

func TestSetTeacherStatus_Approve(t *testing.T) {
	env := newApprovalEnv()
	note := "Strong subject background"

	teacher, err := env.approval.SetTeacherStatus(context.Background(), "hod-1", "t-1", &TeacherDecisionRequest{
		Decision: "approved",
		Note:     &note,
	})
	if err != nil {
		t.Fatalf("SetTeacherStatus failed: %v", err)
	}

	if teacher.Status != models.StatusApproved {
		t.Errorf("expected approved, got %s", teacher.Status)
	}
	if teacher.ApprovalNote == nil || *teacher.ApprovalNote != note {
		t.Errorf("note not recorded: %v", teacher.ApprovalNote)
	}

	// Unrelated fields must be untouched.
	stored, _ := env.repo.Teacher().GetByID(context.Background(), "t-1")
	if stored.SubjectExpertise != "Physics" || stored.FullName != "Nilesh" {
		t.Errorf("unrelated fields changed: %+v", stored)
	}

	if len(env.publisher.TeacherDecisionEvents) != 1 {
		t.Fatalf("expected 1 decision event, got %d", len(env.publisher.TeacherDecisionEvents))
	}
	event := env.publisher.TeacherDecisionEvents[0]
	if event.DecidedBy != "hod-1" || event.Decision != models.StatusApproved {
		t.Errorf("event wrong: %+v", event)
	}
}

// Caller authorization comes from the hods table, not from anything the
// client asserts.
func TestSetTeacherStatus_NonHODDenied(t *testing.T) {
	env := newApprovalEnv()
	env.repo.admins["a-1"] = &models.Admin{ID: "a-1"}

	tests := []struct {
		name   string
		caller string
	}{
		{name: "unregistered caller", caller: "nobody"},
		{name: "admin caller", caller: "a-1"},
		{name: "the teacher themselves", caller: "t-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.approval.SetTeacherStatus(context.Background(), tt.caller, "t-1", &TeacherDecisionRequest{Decision: "approved"})

			var permErr *PermissionError
			if !errors.As(err, &permErr) {
				t.Errorf("expected PermissionError, got %v", err)
			}
		})
	}
}

func TestSetTeacherStatus_DecisionIsTerminal(t *testing.T) {
	env := newApprovalEnv()

	if _, err := env.approval.SetTeacherStatus(context.Background(), "hod-1", "t-1", &TeacherDecisionRequest{Decision: "rejected"}); err != nil {
		t.Fatalf("first decision failed: %v", err)
	}

	_, err := env.approval.SetTeacherStatus(context.Background(), "hod-1", "t-1", &TeacherDecisionRequest{Decision: "approved"})
	if !errors.Is(err, ErrDecisionFinal) {
		t.Errorf("expected ErrDecisionFinal, got %v", err)
	}
}

func TestSetTeacherStatus_InvalidDecision(t *testing.T) {
	env := newApprovalEnv()

	_, err := env.approval.SetTeacherStatus(context.Background(), "hod-1", "t-1", &TeacherDecisionRequest{Decision: "maybe"})

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Errorf("expected validation errors, got %v", err)
	}
}

func TestSetTeacherStatus_UnknownTeacher(t *testing.T) {
	env := newApprovalEnv()

	_, err := env.approval.SetTeacherStatus(context.Background(), "hod-1", "ghost", &TeacherDecisionRequest{Decision: "approved"})
	if !errors.Is(err, ErrRoleRecordNotFound) {
		t.Errorf("expected ErrRoleRecordNotFound, got %v", err)
	}
}

func TestListPendingTeachers(t *testing.T) {
	env := newApprovalEnv()
	env.repo.teachers["t-2"] = &models.Teacher{ID: "t-2", Status: models.StatusApproved}

	pending, err := env.approval.ListPendingTeachers(context.Background(), "hod-1")
	if err != nil {
		t.Fatalf("ListPendingTeachers failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "t-1" {
		t.Errorf("unexpected pending list: %+v", pending)
	}

	if _, err := env.approval.ListPendingTeachers(context.Background(), "nobody"); err == nil {
		t.Error("non-HOD must not list pending teachers")
	}
}
