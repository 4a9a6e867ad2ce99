package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/SAP-F-2025/quiz-service/internal/errors"
	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// MessageResponse is returned by operations without a body of their own
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorDetails identifies the rule a quiz broke
type ValidationErrorDetails struct {
	Field   string `json:"field"`
	Rule    string `json:"rule,omitempty"`
	Index   *int   `json:"index,omitempty"`
	Message string `json:"message"`
}

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides common logging and error mapping for all handlers
type BaseHandler struct {
	logger utils.Logger
}

// NewBaseHandler creates a new base handler with logging capability
func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// requestLogger returns the logger scoped to this request by utils.ContextLogger
func (h *BaseHandler) requestLogger(c *gin.Context) utils.Logger {
	return utils.GetLoggerFromContext(c, h.logger).With("user_id", h.extractUserID(c))
}

// LogRequest logs incoming HTTP requests with context information
func (h *BaseHandler) LogRequest(c *gin.Context, message string, additionalFields ...interface{}) {
	h.requestLogger(c).Debug(message, additionalFields...)
}

// LogError logs error details with context information
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	h.requestLogger(c).LogError(err, message, additionalFields...)
}

// LogWarn logs warning messages with context
func (h *BaseHandler) LogWarn(c *gin.Context, message string, additionalFields ...interface{}) {
	h.requestLogger(c).Warn(message, additionalFields...)
}

// Helper method to extract user ID from context
func (h *BaseHandler) extractUserID(c *gin.Context) interface{} {
	if userID, exists := c.Get(ContextUserIDKey); exists {
		return userID
	}
	return nil
}

// RespondWithError sends a consistent error response and logs it
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, message string, err error, details ...interface{}) {
	errorResp := ErrorResponse{
		Message: message,
	}

	if len(details) > 0 {
		errorResp.Details = details[0]
	}

	if statusCode >= http.StatusInternalServerError {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.LogWarn(c, message, "status_code", statusCode)
	}

	c.JSON(statusCode, errorResp)
}

// handleServiceError maps service errors to HTTP responses
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationError *apperrors.ValidationError
	if errors.As(err, &validationError) {
		h.RespondWithError(c, http.StatusBadRequest, validationError.Message, err, ValidationErrorDetails{
			Field:   validationError.Field,
			Rule:    validationError.Rule,
			Index:   validationError.Index,
			Message: validationError.Message,
		})
		return
	}

	var validationErrors apperrors.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, validationErrors)
		return
	}

	switch {
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, "Quiz not found", err)
	case services.IsUnauthorized(err):
		h.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, services.ErrLoginUnavailable):
		h.RespondWithError(c, http.StatusNotImplemented, "Login is handled by the identity provider", err)
	case services.IsContractViolation(err):
		h.RespondWithError(c, http.StatusInternalServerError, "Quiz cannot be graded", err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Server error", err)
	}
}

// bindJSON decodes the request body and writes a 400 on failure
func (h *BaseHandler) bindJSON(c *gin.Context, dest interface{}, message string) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		var details interface{} = err.Error()
		if verrs := apperrors.ToValidationErrors(err); len(verrs) > 0 {
			details = verrs
		}
		h.RespondWithError(c, http.StatusBadRequest, message, err, details)
		return false
	}
	return true
}
