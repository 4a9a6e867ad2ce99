package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/SAP-F-2025/quiz-service/internal/grading"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceLogger_LogOperationStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status string
		level  string
	}{
		{name: "success", err: nil, status: "success", level: "INFO"},
		{name: "validation", err: NewValidationError("title", "quiz title is required", nil), status: "validation_error", level: "WARN"},
		{name: "credentials", err: ErrInvalidCredentials, status: "unauthorized", level: "WARN"},
		{name: "not found", err: ErrQuizNotFound, status: "not_found", level: "INFO"},
		{name: "contract", err: &grading.ContractViolationError{QuizID: "q"}, status: "contract_violation", level: "ERROR"},
		{name: "upstream", err: newUpstreamError("get quiz", errors.New("down")), status: "upstream_error", level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewServiceLogger(slog.New(slog.NewJSONHandler(&buf, nil)), LogConfig{Service: "quiz-service", Component: "test"})

			ctx := utils.WithRequestID(context.Background(), "req-1")
			logger.LogOperation(ctx, "op", "admin", "quiz-1", 0, tt.err)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.status, entry["status"])
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "req-1", entry["request_id"])
		})
	}
}
