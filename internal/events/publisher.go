package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
)

// EventPublisher defines the interface for publishing quiz lifecycle events
type EventPublisher interface {
	PublishQuizEvent(ctx context.Context, event *QuizEvent) error
	Close() error
}

// KafkaEventPublisher implements EventPublisher using Watermill with Kafka
type KafkaEventPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
	topicName string
}

// PublisherConfig holds configuration for the event publisher
type PublisherConfig struct {
	KafkaBrokers []string
	TopicName    string
	Logger       *slog.Logger
}

// NewKafkaEventPublisher creates a new Kafka-based event publisher using Watermill
func NewKafkaEventPublisher(config PublisherConfig) (*KafkaEventPublisher, error) {
	logger := watermill.NewSlogLogger(config.Logger)

	publisherConfig := kafka.PublisherConfig{
		Brokers:   config.KafkaBrokers,
		Marshaler: kafka.DefaultMarshaler{},
	}

	publisher, err := kafka.NewPublisher(publisherConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
	}

	return &KafkaEventPublisher{
		publisher: publisher,
		logger:    config.Logger,
		topicName: config.TopicName,
	}, nil
}

// PublishQuizEvent publishes a quiz event to Kafka, keyed by quiz id
func (p *KafkaEventPublisher) PublishQuizEvent(ctx context.Context, event *QuizEvent) error {
	msg, err := newMessage(ctx, event)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Failed to publish quiz event",
			"event_id", event.ID,
			"event_type", event.Type,
			"quiz_id", event.Data.QuizID,
			"error", err)
		return fmt.Errorf("failed to publish quiz event: %w", err)
	}

	p.logger.Info("Published quiz event",
		"event_id", event.ID,
		"event_type", event.Type,
		"quiz_id", event.Data.QuizID,
		"topic", p.topicName)

	return nil
}

// Close closes the publisher and releases resources
func (p *KafkaEventPublisher) Close() error {
	return p.publisher.Close()
}

func newMessage(ctx context.Context, event *QuizEvent) (*message.Message, error) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quiz event: %w", err)
	}

	msg := message.NewMessage(event.ID, eventBytes)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("source", event.Source)
	msg.Metadata.Set("version", event.Version)
	msg.Metadata.Set("quiz_id", event.Data.QuizID)
	msg.Metadata.Set("timestamp", event.Timestamp.Format(time.RFC3339))
	for k, v := range event.Metadata {
		msg.Metadata.Set(k, v)
	}
	return msg, nil
}

// NopEventPublisher drops every event. It is used when publishing is disabled.
type NopEventPublisher struct {
	logger *slog.Logger
}

func NewNopEventPublisher(logger *slog.Logger) *NopEventPublisher {
	return &NopEventPublisher{logger: logger}
}

func (n *NopEventPublisher) PublishQuizEvent(ctx context.Context, event *QuizEvent) error {
	n.logger.DebugContext(ctx, "Event publishing disabled, dropping quiz event",
		"event_type", event.Type,
		"quiz_id", event.Data.QuizID)
	return nil
}

func (n *NopEventPublisher) Close() error {
	return nil
}

// MockEventPublisher keeps every event in memory for inspection. It is meant
// for tests and EVENTS_PUBLISHER=mock, not for long running processes.
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []QuizEvent
	Logger *slog.Logger
}

// NewMockEventPublisher creates a new mock event publisher
func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{
		Events: make([]QuizEvent, 0),
		Logger: logger,
	}
}

func (m *MockEventPublisher) PublishQuizEvent(ctx context.Context, event *QuizEvent) error {
	m.mu.Lock()
	m.Events = append(m.Events, *event)
	m.mu.Unlock()

	m.Logger.Debug("Mock: Published quiz event",
		"event_id", event.ID,
		"event_type", event.Type,
		"quiz_id", event.Data.QuizID)
	return nil
}

// Close is a no-op for the mock publisher
func (m *MockEventPublisher) Close() error {
	return nil
}

// GetPublishedEvents returns a copy of all published events
func (m *MockEventPublisher) GetPublishedEvents() []QuizEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]QuizEvent, len(m.Events))
	copy(out, m.Events)
	return out
}

// ClearEvents clears all published events
func (m *MockEventPublisher) ClearEvents() {
	m.mu.Lock()
	m.Events = make([]QuizEvent, 0)
	m.mu.Unlock()
}
