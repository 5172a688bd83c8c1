package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// kafkaEventPublisher publishes domain events to Kafka via watermill.
type kafkaEventPublisher struct {
	publisher message.Publisher
	topic     string
	logger    *slog.Logger
}

// NewKafkaEventPublisher connects a watermill Kafka publisher.
func NewKafkaEventPublisher(brokers []string, topic string, logger *slog.Logger) (EventPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return &kafkaEventPublisher{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *kafkaEventPublisher) PublishProfileCompleted(ctx context.Context, event *ProfileCompletedEvent) error {
	return p.publish(ctx, EventProfileCompleted, event)
}

func (p *kafkaEventPublisher) PublishTeacherDecision(ctx context.Context, event *TeacherDecisionEvent) error {
	return p.publish(ctx, EventTeacherDecision, event)
}

func (p *kafkaEventPublisher) publish(ctx context.Context, eventType EventType, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
	}

	msg := message.NewMessage(uuid.New().String(), data)
	msg.Metadata.Set("event_type", string(eventType))
	msg.SetContext(ctx)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", eventType, err)
	}

	p.logger.Debug("Event published", "event_type", eventType, "message_id", msg.UUID)
	return nil
}

func (p *kafkaEventPublisher) Close() error {
	return p.publisher.Close()
}
