package validator

import (
	"slices"
	"strings"

	apperrors "github.com/SAP-F-2025/quiz-service/internal/errors"
	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// QuizValidator checks author-submitted quizzes before they are stored.
// Validation is fail-fast: the first broken rule is returned.
type QuizValidator struct {
	validate *validator.Validate
}

// NewQuizValidator creates a quiz validator on top of a validator that has the
// custom tags registered.
func NewQuizValidator(validate *validator.Validate) *QuizValidator {
	return &QuizValidator{validate: validate}
}

// ValidateDraft validates a title and its questions and returns the normalized draft.
func (v *QuizValidator) ValidateDraft(title string, questions []models.QuestionInput) (*models.QuizDraft, error) {
	if err := v.validate.Var(title, "not_blank"); err != nil {
		return nil, apperrors.NewValidationErrorWithRule("title", "quiz title is required", RuleTitleRequired, nil)
	}

	if len(questions) == 0 {
		return nil, apperrors.NewValidationErrorWithRule("questions", "quiz must have at least one question", RuleQuestionsRequired, nil)
	}

	draft := &models.QuizDraft{
		Title:     strings.TrimSpace(title),
		Questions: make([]models.Question, 0, len(questions)),
	}

	for i, input := range questions {
		question, err := v.ValidateQuestion(i, input)
		if err != nil {
			return nil, err
		}
		draft.Questions = append(draft.Questions, question)
	}

	return draft, nil
}

// ValidateQuestion validates a single question at position index and builds its typed form.
func (v *QuizValidator) ValidateQuestion(index int, input models.QuestionInput) (models.Question, error) {
	if err := v.validate.Var(input.Type, "question_type"); err != nil {
		return models.Question{}, apperrors.NewQuestionValidationError(index, "type",
			"question type must be one of mcq, truefalse, text", RuleQuestionType)
	}

	prompt := input.PromptText()
	if err := v.validate.Var(prompt, "not_blank"); err != nil {
		return models.Question{}, apperrors.NewQuestionValidationError(index, "prompt",
			"question prompt is required", RulePromptRequired)
	}

	var body models.QuestionBody
	var err error
	switch models.QuestionType(input.Type) {
	case models.MultipleChoiceType:
		body, err = validateMultipleChoice(index, input)
	case models.TrueFalseType:
		body, err = validateTrueFalse(index, input)
	case models.FreeTextType:
		body, err = validateFreeText(index, input)
	}
	if err != nil {
		return models.Question{}, err
	}

	return models.Question{
		Prompt: strings.TrimSpace(prompt),
		Body:   body,
	}, nil
}

func validateMultipleChoice(index int, input models.QuestionInput) (models.QuestionBody, error) {
	options := filledOptions(input.Options)
	if len(options) < 2 {
		return nil, apperrors.NewQuestionValidationError(index, "options",
			"multiple choice questions need at least 2 options", RuleOptionsMin)
	}

	seen := make(map[string]struct{}, len(options))
	for _, option := range options {
		if _, ok := seen[option]; ok {
			return nil, apperrors.NewQuestionValidationError(index, "options",
				"options must be distinct", RuleOptionsDistinct)
		}
		seen[option] = struct{}{}
	}

	answer := strings.TrimSpace(input.CorrectAnswer)
	if !slices.Contains(options, answer) {
		return nil, apperrors.NewQuestionValidationError(index, "correctAnswer",
			"correct answer must be one of the options", RuleOptionMembership)
	}

	return models.MultipleChoice{Options: options, Answer: answer}, nil
}

func validateTrueFalse(index int, input models.QuestionInput) (models.QuestionBody, error) {
	if len(filledOptions(input.Options)) > 0 {
		return nil, apperrors.NewQuestionValidationError(index, "options",
			"options are only allowed on multiple choice questions", RuleOptionsNotAllowed)
	}

	switch strings.TrimSpace(input.CorrectAnswer) {
	case "true":
		return models.TrueFalse{Answer: true}, nil
	case "false":
		return models.TrueFalse{Answer: false}, nil
	}
	return nil, apperrors.NewQuestionValidationError(index, "correctAnswer",
		"correct answer must be \"true\" or \"false\"", RuleTrueFalseAnswer)
}

func validateFreeText(index int, input models.QuestionInput) (models.QuestionBody, error) {
	if len(filledOptions(input.Options)) > 0 {
		return nil, apperrors.NewQuestionValidationError(index, "options",
			"options are only allowed on multiple choice questions", RuleOptionsNotAllowed)
	}

	answer := strings.TrimSpace(input.CorrectAnswer)
	if answer == "" {
		return nil, apperrors.NewQuestionValidationError(index, "correctAnswer",
			"correct answer is required", RuleAnswerRequired)
	}
	return models.FreeText{Answer: answer}, nil
}

// filledOptions trims options and drops the blank ones, keeping order.
func filledOptions(options []string) []string {
	filled := make([]string, 0, len(options))
	for _, option := range options {
		if trimmed := strings.TrimSpace(option); trimmed != "" {
			filled = append(filled, trimmed)
		}
	}
	return filled
}
