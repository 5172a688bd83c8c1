package events

import (
	"context"
	"log/slog"
	"sync"
)

// MockEventPublisher records published events in memory. Used in tests and as
// the fallback when no Kafka brokers are configured.
type MockEventPublisher struct {
	logger *slog.Logger

	mu                     sync.Mutex
	ProfileCompletedEvents []*ProfileCompletedEvent
	TeacherDecisionEvents  []*TeacherDecisionEvent
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (p *MockEventPublisher) PublishProfileCompleted(ctx context.Context, event *ProfileCompletedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ProfileCompletedEvents = append(p.ProfileCompletedEvents, event)
	p.logger.Info("Mock event published", "event_type", EventProfileCompleted, "identity_id", event.IdentityID)
	return nil
}

func (p *MockEventPublisher) PublishTeacherDecision(ctx context.Context, event *TeacherDecisionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.TeacherDecisionEvents = append(p.TeacherDecisionEvents, event)
	p.logger.Info("Mock event published", "event_type", EventTeacherDecision, "teacher_id", event.TeacherID)
	return nil
}

func (p *MockEventPublisher) Close() error {
	return nil
}
