package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz() *Quiz {
	return &Quiz{
		ID:        "quiz-1",
		Title:     "General",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Questions: []Question{
			{ID: "q1", Prompt: "Capital of France?", Body: MultipleChoice{Options: []string{"Paris", "London"}, Answer: "Paris"}},
			{ID: "q2", Prompt: "Sky is green", Body: TrueFalse{Answer: false}},
			{ID: "q3", Prompt: "Author of Hamlet?", Body: FreeText{Answer: "Shakespeare"}},
		},
	}
}

func TestRedactForPublic_OmitsAnswers(t *testing.T) {
	public := RedactForPublic(sampleQuiz())

	data, err := json.Marshal(public)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "correctAnswer")
	assert.NotContains(t, string(data), "Shakespeare")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, q := range decoded["questions"].([]any) {
		_, ok := q.(map[string]any)["correctAnswer"]
		assert.False(t, ok)
	}
}

func TestRedactForPublic_PreservesShape(t *testing.T) {
	quiz := sampleQuiz()
	public := RedactForPublic(quiz)

	assert.Equal(t, quiz.ID, public.ID)
	assert.Equal(t, quiz.Title, public.Title)
	assert.Equal(t, quiz.CreatedAt, public.CreatedAt)
	require.Len(t, public.Questions, 3)

	assert.Equal(t, PublicQuestion{ID: "q1", Type: MultipleChoiceType, Prompt: "Capital of France?", Options: []string{"Paris", "London"}}, public.Questions[0])
	assert.Equal(t, PublicQuestion{ID: "q2", Type: TrueFalseType, Prompt: "Sky is green"}, public.Questions[1])
	assert.Equal(t, PublicQuestion{ID: "q3", Type: FreeTextType, Prompt: "Author of Hamlet?"}, public.Questions[2])
}

func TestRedactForPublic_CopiesOptions(t *testing.T) {
	quiz := sampleQuiz()
	public := RedactForPublic(quiz)

	public.Questions[0].Options[0] = "Rome"
	assert.Equal(t, "Paris", quiz.Questions[0].Options()[0])
}

func TestRedactForPublic_TrueFalseOmitsOptionsKey(t *testing.T) {
	data, err := json.Marshal(RedactForPublic(sampleQuiz()).Questions[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"q2","type":"truefalse","prompt":"Sky is green"}`, string(data))
}

func TestSummarize(t *testing.T) {
	quiz := sampleQuiz()
	assert.Equal(t, QuizSummary{ID: "quiz-1", Title: "General", CreatedAt: quiz.CreatedAt}, Summarize(quiz))
}
