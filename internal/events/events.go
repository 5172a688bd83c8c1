package events

import (
	"context"
	"time"

	"github.com/SAP-F-2025/school-management-service/internal/models"
)

// EventType identifies a domain event.
type EventType string

const (
	EventProfileCompleted EventType = "school.profile.completed"
	EventTeacherDecision  EventType = "school.teacher.decision"
)

// ProfileCompletedEvent is published after a role record is created.
type ProfileCompletedEvent struct {
	IdentityID string      `json:"identity_id"`
	Role       models.Role `json:"role"`
	Email      string      `json:"email"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// TeacherDecisionEvent is published after an HOD approves or rejects a
// teacher registration.
type TeacherDecisionEvent struct {
	TeacherID  string              `json:"teacher_id"`
	DecidedBy  string              `json:"decided_by"`
	Decision   models.RecordStatus `json:"decision"`
	Note       *string             `json:"note,omitempty"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// EventPublisher publishes domain events to the message broker. Publishing is
// best-effort from the caller's perspective; persistence never depends on it.
type EventPublisher interface {
	PublishProfileCompleted(ctx context.Context, event *ProfileCompletedEvent) error
	PublishTeacherDecision(ctx context.Context, event *TeacherDecisionEvent) error
	Close() error
}
