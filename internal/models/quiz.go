package models

import "time"

type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// QuizDraft is a validated quiz that has not been stored yet.
type QuizDraft struct {
	Title     string
	Questions []Question
}

type QuizSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuestionInput is a question as submitted by an author, before validation.
type QuestionInput struct {
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Question      string   `json:"question,omitempty"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// PromptText prefers prompt and falls back to the legacy "question" field.
func (in QuestionInput) PromptText() string {
	if in.Prompt != "" {
		return in.Prompt
	}
	return in.Question
}

type QuizInput struct {
	Title     string          `json:"title"`
	Questions []QuestionInput `json:"questions"`
}

type SubmissionRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// NotAnswered is reported as the user answer when a question has no usable submission.
const NotAnswered = "Not answered"

type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

type GradingReport struct {
	QuizTitle      string           `json:"quizTitle"`
	TotalQuestions int              `json:"totalQuestions"`
	CorrectAnswers int              `json:"correctAnswers"`
	Percentage     int              `json:"percentage"`
	Results        []QuestionResult `json:"results"`
}
