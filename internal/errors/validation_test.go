package errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("test_field", "test message", "test_value")

	assert.Equal(t, "test_field", err.Field)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test_value", err.Value)
	assert.Equal(t, "validation error on field 'test_field': test message", err.Error())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("field1", "message1", nil))
	assert.Equal(t, "validation failed: field1 message1", errs.Error())

	errs = append(errs, *NewValidationError("field2", "message2", nil))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("test_field", "test message", "required", "test_value")

	assert.Equal(t, "required", err.Rule)
	assert.Equal(t, "test_field", err.Field)
	assert.Nil(t, err.Index)
}

func TestNewQuestionValidationError(t *testing.T) {
	err := NewQuestionValidationError(2, "correctAnswer", "must match one of the options", "option_membership")

	require.NotNil(t, err.Index)
	assert.Equal(t, 2, *err.Index)
	assert.Equal(t, "questions[2].correctAnswer", err.Field)
	assert.Equal(t, "option_membership", err.Rule)
	assert.Nil(t, err.Value)
	assert.Equal(t, "validation error on question 3 field 'questions[2].correctAnswer': must match one of the options", err.Error())
}

func TestToValidationErrors(t *testing.T) {
	type request struct {
		Title string `validate:"required"`
	}

	err := validator.New().Struct(request{})
	errs := ToValidationErrors(err)

	require.Len(t, errs, 1)
	assert.Equal(t, "Title", errs[0].Field)
	assert.Equal(t, "required", errs[0].Rule)
	assert.Equal(t, "is required", errs[0].Message)
}
