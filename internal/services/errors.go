package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/quiz-service/internal/errors"
	"github.com/SAP-F-2025/quiz-service/internal/grading"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginUnavailable   = errors.New("login is handled by the identity provider")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// UpstreamError wraps a failure of a collaborator such as storage.
type UpstreamError struct {
	Op  string
	Err error
}

func (ue *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", ue.Op, ue.Err)
}

func (ue *UpstreamError) Unwrap() error {
	return ue.Err
}

func newUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuizNotFound)
}

// IsUnauthorized checks if error represents rejected credentials
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return true
	}
	var ves apperrors.ValidationErrors
	return errors.As(err, &ves)
}

func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

func IsContractViolation(err error) bool {
	return errors.Is(err, grading.ErrContractViolation)
}

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}
