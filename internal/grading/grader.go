// Package grading scores a taker's answers against a stored quiz.
//
// Grading is a pure function of its inputs: it does no I/O, keeps no state
// and is safe to call from any number of goroutines.
package grading

import (
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// Grade compares answers (question id -> submitted text) with the quiz and
// returns a report in question order. Missing or blank answers are reported as
// models.NotAnswered and count as incorrect.
func Grade(quiz *models.Quiz, answers map[string]string) (*models.GradingReport, error) {
	if quiz == nil {
		return nil, &ContractViolationError{Reason: "quiz is nil"}
	}
	total := len(quiz.Questions)
	if total == 0 {
		return nil, &ContractViolationError{QuizID: quiz.ID, Reason: "quiz has no questions"}
	}

	report := &models.GradingReport{
		QuizTitle:      quiz.Title,
		TotalQuestions: total,
		Results:        make([]models.QuestionResult, 0, total),
	}

	for _, question := range quiz.Questions {
		result := gradeQuestion(question, answers)
		if result.IsCorrect {
			report.CorrectAnswers++
		}
		report.Results = append(report.Results, result)
	}

	report.Percentage = percentage(report.CorrectAnswers, total)
	return report, nil
}

func gradeQuestion(question models.Question, answers map[string]string) models.QuestionResult {
	result := models.QuestionResult{
		QuestionID:    question.ID,
		Question:      question.Prompt,
		UserAnswer:    models.NotAnswered,
		CorrectAnswer: question.CorrectAnswer(),
	}

	submitted, ok := answers[question.ID]
	if !ok || strings.TrimSpace(submitted) == "" {
		return result
	}

	result.UserAnswer = submitted
	result.IsCorrect = answersMatch(submitted, result.CorrectAnswer)
	return result
}
