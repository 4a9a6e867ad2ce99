package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/utils"
)

// ServiceLogger provides structured logging for service layer operations
type ServiceLogger struct {
	logger *slog.Logger
}

type LogConfig struct {
	Service   string
	Component string
}

func NewServiceLogger(logger *slog.Logger, config LogConfig) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", config.Service, "component", config.Component),
	}
}

// ===== OPERATION LOGGING =====

func (l *ServiceLogger) LogOperation(ctx context.Context, operation, actor, quizID string, duration time.Duration, err error) {
	level := slog.LevelInfo
	status := "success"

	if err != nil {
		level = slog.LevelError
		status = "error"

		switch {
		case IsValidation(err):
			level = slog.LevelWarn
			status = "validation_error"
		case IsUnauthorized(err):
			level = slog.LevelWarn
			status = "unauthorized"
		case IsNotFound(err):
			level = slog.LevelInfo
			status = "not_found"
		case IsContractViolation(err):
			status = "contract_violation"
		case IsUpstream(err):
			status = "upstream_error"
		}
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}
	if actor != "" {
		attrs = append(attrs, slog.String("actor", actor))
	}
	if quizID != "" {
		attrs = append(attrs, slog.String("quiz_id", quizID))
	}
	if requestID := utils.RequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}

// LogValidationError records which rule failed. The offending value is never logged.
func (l *ServiceLogger) LogValidationError(ctx context.Context, operation string, verr *ValidationError) {
	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("field", verr.Field),
		slog.String("rule", verr.Rule),
		slog.String("message", verr.Message),
	}
	if verr.Index != nil {
		attrs = append(attrs, slog.Int("question_index", *verr.Index))
	}
	l.logger.LogAttrs(ctx, slog.LevelDebug, "Validation failed", attrs...)
}

// ===== AUDIT LOGGING =====

type AuditEventType string

const (
	AuditEventCreate AuditEventType = "create"
	AuditEventUpdate AuditEventType = "update"
	AuditEventDelete AuditEventType = "delete"
)

type AuditEvent struct {
	Type      AuditEventType
	Actor     string
	QuizID    string
	Action    string
	Timestamp time.Time
	Metadata  map[string]interface{}
}

func (l *ServiceLogger) LogAuditEvent(ctx context.Context, event AuditEvent) {
	attrs := []slog.Attr{
		slog.String("event_type", string(event.Type)),
		slog.String("actor", event.Actor),
		slog.String("quiz_id", event.QuizID),
		slog.String("action", event.Action),
		slog.Time("timestamp", event.Timestamp),
	}
	for key, value := range event.Metadata {
		attrs = append(attrs, slog.Any("meta_"+key, value))
	}
	l.logger.LogAttrs(ctx, slog.LevelInfo, fmt.Sprintf("Audit: %s quiz", event.Action), attrs...)
}

// ===== CONTEXTUAL LOGGER =====

// ContextualLogger wraps one operation with automatic timing and logging
type ContextualLogger struct {
	logger    *ServiceLogger
	operation string
	actor     string
	startTime time.Time
	ctx       context.Context
}

func (l *ServiceLogger) WithOperation(ctx context.Context, operation, actor string) *ContextualLogger {
	return &ContextualLogger{
		logger:    l,
		operation: operation,
		actor:     actor,
		startTime: time.Now(),
		ctx:       ctx,
	}
}

func (cl *ContextualLogger) LogResult(quizID string, err error) {
	cl.logger.LogOperation(cl.ctx, cl.operation, cl.actor, quizID, time.Since(cl.startTime), err)

	var verr *ValidationError
	if errors.As(err, &verr) {
		cl.logger.LogValidationError(cl.ctx, cl.operation, verr)
	}
}

func (cl *ContextualLogger) LogAudit(eventType AuditEventType, quizID string, metadata map[string]interface{}) {
	cl.logger.LogAuditEvent(cl.ctx, AuditEvent{
		Type:      eventType,
		Actor:     cl.actor,
		QuizID:    quizID,
		Action:    cl.operation,
		Timestamp: time.Now(),
		Metadata:  metadata,
	})
}
