package grading

import (
	"errors"
	"fmt"
)

// ErrContractViolation marks a grading call on a quiz that breaks the stored-quiz
// invariants. Callers that validated the quiz never see it.
var ErrContractViolation = errors.New("contract violation")

type ContractViolationError struct {
	QuizID string
	Reason string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("contract violation grading quiz %q: %s", e.QuizID, e.Reason)
}

func (e *ContractViolationError) Unwrap() error {
	return ErrContractViolation
}
