package repositories

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// ErrNotFound is returned by every backend when a quiz id does not exist.
var ErrNotFound = errors.New("quiz not found in storage")

// QuizRepository stores quizzes together with their ordered questions.
// Implementations assign quiz and question ids and must be safe for
// concurrent use.
type QuizRepository interface {
	// Create stores a validated draft and returns it with ids and timestamps.
	Create(ctx context.Context, draft *models.QuizDraft) (*models.Quiz, error)
	GetByID(ctx context.Context, id string) (*models.Quiz, error)
	// Replace swaps title and the whole question list. Question ids are reissued.
	Replace(ctx context.Context, id string, draft *models.QuizDraft) (*models.Quiz, error)
	// Delete removes the quiz and its questions atomically.
	Delete(ctx context.Context, id string) error
	// ListSummaries returns every quiz, newest first.
	ListSummaries(ctx context.Context) ([]models.QuizSummary, error)
	Ping(ctx context.Context) error
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
