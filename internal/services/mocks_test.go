package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockQuizRepository is a mock implementation of QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Create(ctx context.Context, draft *models.QuizDraft) (*models.Quiz, error) {
	args := m.Called(ctx, draft)
	quiz, _ := args.Get(0).(*models.Quiz)
	return quiz, args.Error(1)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id string) (*models.Quiz, error) {
	args := m.Called(ctx, id)
	quiz, _ := args.Get(0).(*models.Quiz)
	return quiz, args.Error(1)
}

func (m *MockQuizRepository) Replace(ctx context.Context, id string, draft *models.QuizDraft) (*models.Quiz, error) {
	args := m.Called(ctx, id, draft)
	quiz, _ := args.Get(0).(*models.Quiz)
	return quiz, args.Error(1)
}

func (m *MockQuizRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuizRepository) ListSummaries(ctx context.Context) ([]models.QuizSummary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]models.QuizSummary)
	return summaries, args.Error(1)
}

func (m *MockQuizRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCacheService is a mock implementation of CacheService
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockQuizService is a mock implementation of QuizService
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) List(ctx context.Context) ([]models.QuizSummary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]models.QuizSummary)
	return summaries, args.Error(1)
}

func (m *MockQuizService) GetPublic(ctx context.Context, id string) (*models.PublicQuiz, error) {
	args := m.Called(ctx, id)
	quiz, _ := args.Get(0).(*models.PublicQuiz)
	return quiz, args.Error(1)
}

func (m *MockQuizService) Get(ctx context.Context, id string) (*models.Quiz, error) {
	args := m.Called(ctx, id)
	quiz, _ := args.Get(0).(*models.Quiz)
	return quiz, args.Error(1)
}

func (m *MockQuizService) Create(ctx context.Context, input *models.QuizInput, actor string) (*models.Quiz, error) {
	args := m.Called(ctx, input, actor)
	quiz, _ := args.Get(0).(*models.Quiz)
	return quiz, args.Error(1)
}

func (m *MockQuizService) Update(ctx context.Context, id string, input *models.QuizInput, actor string) (*models.Quiz, error) {
	args := m.Called(ctx, id, input, actor)
	quiz, _ := args.Get(0).(*models.Quiz)
	return quiz, args.Error(1)
}

func (m *MockQuizService) Delete(ctx context.Context, id string, actor string) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func (m *MockQuizService) Submit(ctx context.Context, id string, answers map[string]string) (*models.GradingReport, error) {
	args := m.Called(ctx, id, answers)
	report, _ := args.Get(0).(*models.GradingReport)
	return report, args.Error(1)
}

func (m *MockQuizService) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// failingPublisher rejects every event.
type failingPublisher struct{}

func (failingPublisher) PublishQuizEvent(context.Context, *events.QuizEvent) error {
	return io.ErrClosedPipe
}

func (failingPublisher) Close() error { return nil }
