package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the lifecycle events emitted for quizzes
type EventType string

const (
	EventQuizCreated EventType = "quiz.created"
	EventQuizUpdated EventType = "quiz.updated"
	EventQuizDeleted EventType = "quiz.deleted"
)

const (
	eventSource  = "quiz-service"
	eventVersion = "1.0"
)

// QuizEvent is the envelope published for every quiz mutation
type QuizEvent struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Source    string            `json:"source"`
	Version   string            `json:"version"`
	Data      QuizEventData     `json:"data"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// QuizEventData never carries questions or answers.
type QuizEventData struct {
	QuizID        string `json:"quiz_id"`
	Title         string `json:"title,omitempty"`
	QuestionCount int    `json:"question_count"`
	Actor         string `json:"actor,omitempty"`
}

func NewQuizEvent(eventType EventType, data QuizEventData) *QuizEvent {
	return &QuizEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}
