package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SAP-F-2025/school-management-service/internal/models"
)

func TestRoute_Unregistered(t *testing.T) {
	env := newTestEnv()
	gate := NewNavigationService(env.resolver, testLogger())

	decision, err := gate.Route(context.Background(), "fresh-user")
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if decision.Destination != RouteProfileCompletion {
		t.Errorf("expected profile completion, got %s", decision.Destination)
	}
}

func TestRoute_SingleRole(t *testing.T) {
	env := newTestEnv()
	gate := NewNavigationService(env.resolver, testLogger())
	env.repo.admins["u1"] = &models.Admin{ID: "u1", AccessLevel: "full"}

	decision, err := gate.Route(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if decision.Destination != RouteDashboard {
		t.Errorf("expected dashboard, got %s", decision.Destination)
	}
	if decision.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %s", decision.Role)
	}
	if decision.Record == nil {
		t.Error("dashboard decision should carry the record")
	}
}

// An identity in both teachers and hods lands on conflict resolution, never
// on either dashboard.
func TestRoute_RoleConflict(t *testing.T) {
	env := newTestEnv()
	gate := NewNavigationService(env.resolver, testLogger())
	env.repo.teachers["u1"] = &models.Teacher{ID: "u1", Status: models.StatusApproved}
	env.repo.hods["u1"] = &models.HOD{ID: "u1"}

	decision, err := gate.Route(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if decision.Destination != RouteRoleConflict {
		t.Errorf("expected role conflict, got %s", decision.Destination)
	}
	if len(decision.Roles) != 2 {
		t.Errorf("expected both roles listed, got %v", decision.Roles)
	}
	if decision.Role != "" {
		t.Errorf("conflict decision must not pick a role, got %s", decision.Role)
	}
}

// The gate never downgrades a resolution failure to "unregistered".
func TestRoute_ResolutionFailurePropagates(t *testing.T) {
	env := newTestEnv()
	gate := NewNavigationService(env.resolver, testLogger())
	env.repo.hodErr = errors.New("timeout")

	_, err := gate.Route(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error when a role table is unreachable")
	}

	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Errorf("expected ResolutionError, got %T", err)
	}
}
