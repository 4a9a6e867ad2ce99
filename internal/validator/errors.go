package validator

import (
	"github.com/SAP-F-2025/quiz-service/internal/errors"
)

// Use shared validation errors from errors package
type ValidationError = errors.ValidationError
type ValidationErrors = errors.ValidationErrors

// Validation rules reported in ValidationError.Rule.
const (
	RuleTitleRequired     = "title_required"
	RuleQuestionsRequired = "questions_required"
	RuleQuestionType      = "question_type"
	RulePromptRequired    = "prompt_required"
	RuleOptionsMin        = "options_min"
	RuleOptionsDistinct   = "options_distinct"
	RuleOptionMembership  = "option_membership"
	RuleOptionsNotAllowed = "options_not_allowed"
	RuleTrueFalseAnswer   = "truefalse_answer"
	RuleAnswerRequired    = "answer_required"
)
