package services

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/school-management-service/internal/models"
)

var (
	// ErrRoleRecordNotFound means no role table contains the identity.
	ErrRoleRecordNotFound = errors.New("role record not found")

	// ErrAlreadyRegistered means the identity already owns a role record.
	// For a concurrent profile completion this is the expected loser outcome.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrInvalidPIN is deliberately generic; no detail about which check
	// failed leaves the service.
	ErrInvalidPIN = errors.New("invalid PIN")

	// ErrInvalidRole means the requested role is not one of the four tables.
	ErrInvalidRole = errors.New("invalid role")

	// ErrDecisionFinal means the teacher already left pending; approved and
	// rejected are terminal.
	ErrDecisionFinal = errors.New("teacher decision already final")

	// ErrLessonPlanNotFound means the plan does not exist or is not visible
	// to the caller.
	ErrLessonPlanNotFound = errors.New("lesson plan not found")
)

// PermissionError reports a denied action.
type PermissionError struct {
	UserID   string
	Resource string
	Action   string
	Reason   string
}

func NewPermissionError(userID, resource, action, reason string) *PermissionError {
	return &PermissionError{UserID: userID, Resource: resource, Action: action, Reason: reason}
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s on %s: %s", e.Action, e.Resource, e.Reason)
}

// RoleConflictError reports an identity present in more than one role table.
// This is a data-integrity condition surfaced for manual disambiguation, not
// auto-resolved.
type RoleConflictError struct {
	IdentityID string
	Roles      []models.Role
}

func NewRoleConflictError(identityID string, roles []models.Role) *RoleConflictError {
	return &RoleConflictError{IdentityID: identityID, Roles: roles}
}

func (e *RoleConflictError) Error() string {
	return fmt.Sprintf("identity %s belongs to %d role tables; contact an administrator", e.IdentityID, len(e.Roles))
}

// ResolutionError wraps a role-table query failure. Callers must treat it as
// "unable to determine role", never as a NONE classification.
type ResolutionError struct {
	Role models.Role
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("role resolution failed querying %s table: %v", e.Role, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
