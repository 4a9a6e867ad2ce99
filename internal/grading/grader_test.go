package grading

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capitalsQuiz() *models.Quiz {
	return &models.Quiz{
		ID:    "quiz-1",
		Title: "Capitals",
		Questions: []models.Question{
			{ID: "q1", Prompt: "Capital of France?", Body: models.MultipleChoice{Options: []string{"Paris", "London", "Berlin"}, Answer: "Paris"}},
		},
	}
}

func mixedQuiz() *models.Quiz {
	return &models.Quiz{
		ID:    "quiz-2",
		Title: "Mixed",
		Questions: []models.Question{
			{ID: "q1", Prompt: "Capital of France?", Body: models.MultipleChoice{Options: []string{"Paris", "London"}, Answer: "Paris"}},
			{ID: "q2", Prompt: "Water is wet", Body: models.TrueFalse{Answer: true}},
			{ID: "q3", Prompt: "Largest ocean?", Body: models.FreeText{Answer: "Pacific Ocean"}},
		},
	}
}

func TestGrade_NormalizesSubmittedAnswer(t *testing.T) {
	report, err := Grade(capitalsQuiz(), map[string]string{"q1": "  paris "})
	require.NoError(t, err)

	assert.Equal(t, "Capitals", report.QuizTitle)
	assert.Equal(t, 1, report.TotalQuestions)
	assert.Equal(t, 1, report.CorrectAnswers)
	assert.Equal(t, 100, report.Percentage)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].IsCorrect)
	assert.Equal(t, "  paris ", report.Results[0].UserAnswer)
	assert.Equal(t, "Paris", report.Results[0].CorrectAnswer)
	assert.Equal(t, "Capital of France?", report.Results[0].Question)
}

func TestGrade_MissingAnswer(t *testing.T) {
	for name, answers := range map[string]map[string]string{
		"empty map": {},
		"nil map":   nil,
		"blank":     {"q1": "   "},
		"other ids": {"q9": "Paris"},
	} {
		t.Run(name, func(t *testing.T) {
			report, err := Grade(capitalsQuiz(), answers)
			require.NoError(t, err)

			assert.Equal(t, 0, report.CorrectAnswers)
			assert.Equal(t, 0, report.Percentage)
			assert.Equal(t, models.NotAnswered, report.Results[0].UserAnswer)
			assert.False(t, report.Results[0].IsCorrect)
			assert.Equal(t, "Paris", report.Results[0].CorrectAnswer)
		})
	}
}

func TestGrade_Rounding(t *testing.T) {
	report, err := Grade(mixedQuiz(), map[string]string{
		"q1": "PARIS",
		"q2": "True",
		"q3": "Atlantic",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalQuestions)
	assert.Equal(t, 2, report.CorrectAnswers)
	assert.Equal(t, 67, report.Percentage)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 1, 0},
		{1, 1, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 8, 38},
		{1, 200, 1},
		{1, 201, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percentage(tt.correct, tt.total), "%d/%d", tt.correct, tt.total)
	}
}

func TestGrade_UniformComparisonAcrossTypes(t *testing.T) {
	report, err := Grade(mixedQuiz(), map[string]string{
		"q1": "paris",
		"q2": " TRUE ",
		"q3": "pacific ocean",
	})
	require.NoError(t, err)

	for _, result := range report.Results {
		assert.True(t, result.IsCorrect, result.QuestionID)
	}
	assert.Equal(t, 100, report.Percentage)
}

func TestGrade_InnerWhitespaceIsSignificant(t *testing.T) {
	report, err := Grade(mixedQuiz(), map[string]string{"q3": "pacific  ocean"})
	require.NoError(t, err)
	assert.False(t, report.Results[2].IsCorrect)
}

func TestGrade_PreservesQuestionOrder(t *testing.T) {
	quiz := mixedQuiz()
	report, err := Grade(quiz, map[string]string{"q3": "x", "q1": "y"})
	require.NoError(t, err)

	require.Len(t, report.Results, len(quiz.Questions))
	for i, question := range quiz.Questions {
		assert.Equal(t, question.ID, report.Results[i].QuestionID)
	}
}

func TestGrade_IsDeterministic(t *testing.T) {
	answers := map[string]string{"q1": "Paris", "q2": "false", "q3": " pacific ocean"}

	first, err := Grade(mixedQuiz(), answers)
	require.NoError(t, err)
	second, err := Grade(mixedQuiz(), answers)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestGrade_DoesNotMutateInputs(t *testing.T) {
	quiz := mixedQuiz()
	answers := map[string]string{"q1": " Paris "}

	_, err := Grade(quiz, answers)
	require.NoError(t, err)

	assert.Equal(t, mixedQuiz(), quiz)
	assert.Equal(t, map[string]string{"q1": " Paris "}, answers)
}

func TestGrade_ZeroQuestionsIsContractViolation(t *testing.T) {
	report, err := Grade(&models.Quiz{ID: "empty", Title: "Empty"}, map[string]string{})
	assert.Nil(t, report)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContractViolation))

	var cv *ContractViolationError
	require.True(t, errors.As(err, &cv))
	assert.Equal(t, "empty", cv.QuizID)
}

func TestGrade_NilQuizIsContractViolation(t *testing.T) {
	_, err := Grade(nil, nil)
	assert.ErrorIs(t, err, ErrContractViolation)
}
