package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/cache"
	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/grading"
	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
)

type QuizService interface {
	List(ctx context.Context) ([]models.QuizSummary, error)
	// GetPublic returns the projection without correct answers.
	GetPublic(ctx context.Context, id string) (*models.PublicQuiz, error)
	// Get returns the full quiz including correct answers.
	Get(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, input *models.QuizInput, actor string) (*models.Quiz, error)
	Update(ctx context.Context, id string, input *models.QuizInput, actor string) (*models.Quiz, error)
	Delete(ctx context.Context, id string, actor string) error
	Submit(ctx context.Context, id string, answers map[string]string) (*models.GradingReport, error)
	Health(ctx context.Context) error
}

type QuizServiceConfig struct {
	CacheTTL time.Duration
}

type quizService struct {
	repo      repositories.QuizRepository
	cache     cache.CacheService
	publisher events.EventPublisher
	validator *validator.QuizValidator
	logger    *slog.Logger
	opLogger  *ServiceLogger
	config    QuizServiceConfig

	// projectionMu orders cache fills against invalidations. A fill only
	// lands if no mutation completed since its storage read began.
	projectionMu       sync.RWMutex
	mutationGeneration uint64
}

func NewQuizService(
	repo repositories.QuizRepository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	quizValidator *validator.QuizValidator,
	logger *slog.Logger,
	config QuizServiceConfig,
) QuizService {
	return &quizService{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		validator: quizValidator,
		logger:    logger,
		opLogger:  NewServiceLogger(logger, LogConfig{Service: "quiz-service", Component: "quiz"}),
		config:    config,
	}
}

// ===== READ OPERATIONS =====

func (s *quizService) List(ctx context.Context) ([]models.QuizSummary, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, newUpstreamError("list quizzes", err)
	}
	return summaries, nil
}

func (s *quizService) GetPublic(ctx context.Context, id string) (*models.PublicQuiz, error) {
	key := cache.PublicQuizKey(id)

	generation := s.currentGeneration()

	var cached models.PublicQuiz
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Cache read failed, falling back to storage", "quiz_id", id, "error", err)
	}

	quiz, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	public := models.RedactForPublic(quiz)
	s.fillCache(ctx, id, generation, public)
	return &public, nil
}

func (s *quizService) Get(ctx context.Context, id string) (*models.Quiz, error) {
	return s.load(ctx, id)
}

// ===== WRITE OPERATIONS =====

func (s *quizService) Create(ctx context.Context, input *models.QuizInput, actor string) (quiz *models.Quiz, err error) {
	op := s.opLogger.WithOperation(ctx, "create_quiz", actor)
	defer func() { op.LogResult(quizID(quiz), err) }()

	draft, err := s.validator.ValidateDraft(input.Title, input.Questions)
	if err != nil {
		return nil, err
	}

	quiz, err = s.repo.Create(ctx, draft)
	if err != nil {
		return nil, newUpstreamError("create quiz", err)
	}

	op.LogAudit(AuditEventCreate, quiz.ID, map[string]interface{}{"question_count": len(quiz.Questions)})
	s.publish(ctx, events.EventQuizCreated, quiz, actor)
	return quiz, nil
}

func (s *quizService) Update(ctx context.Context, id string, input *models.QuizInput, actor string) (quiz *models.Quiz, err error) {
	op := s.opLogger.WithOperation(ctx, "update_quiz", actor)
	defer func() { op.LogResult(id, err) }()

	draft, err := s.validator.ValidateDraft(input.Title, input.Questions)
	if err != nil {
		return nil, err
	}

	quiz, err = s.repo.Replace(ctx, id, draft)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, newUpstreamError("replace quiz", err)
	}

	s.invalidate(ctx, id)
	op.LogAudit(AuditEventUpdate, id, map[string]interface{}{"question_count": len(quiz.Questions)})
	s.publish(ctx, events.EventQuizUpdated, quiz, actor)
	return quiz, nil
}

func (s *quizService) Delete(ctx context.Context, id string, actor string) (err error) {
	op := s.opLogger.WithOperation(ctx, "delete_quiz", actor)
	defer func() { op.LogResult(id, err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuizNotFound
		}
		return newUpstreamError("delete quiz", err)
	}

	s.invalidate(ctx, id)
	op.LogAudit(AuditEventDelete, id, nil)
	s.publish(ctx, events.EventQuizDeleted, &models.Quiz{ID: id}, actor)
	return nil
}

// ===== GRADING =====

// Submit grades answers against the quiz as stored when the request started.
func (s *quizService) Submit(ctx context.Context, id string, answers map[string]string) (*models.GradingReport, error) {
	quiz, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	report, err := grading.Grade(quiz, answers)
	if err != nil {
		s.logger.Error("Stored quiz cannot be graded", "quiz_id", id, "error", err)
		return nil, err
	}

	s.logger.Debug("Graded submission",
		"quiz_id", id,
		"total_questions", report.TotalQuestions,
		"correct_answers", report.CorrectAnswers)
	return report, nil
}

func (s *quizService) Health(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return newUpstreamError("ping storage", err)
	}
	return nil
}

// ===== HELPERS =====

func (s *quizService) load(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, newUpstreamError("get quiz", err)
	}
	return quiz, nil
}

func (s *quizService) currentGeneration() uint64 {
	s.projectionMu.RLock()
	defer s.projectionMu.RUnlock()
	return s.mutationGeneration
}

// fillCache stores a projection read at generation unless a mutation has
// invalidated the cache since then.
func (s *quizService) fillCache(ctx context.Context, id string, generation uint64, public models.PublicQuiz) {
	s.projectionMu.RLock()
	defer s.projectionMu.RUnlock()

	if s.mutationGeneration != generation {
		s.logger.Debug("Skipping cache fill after concurrent mutation", "quiz_id", id)
		return
	}
	if err := s.cache.Set(ctx, cache.PublicQuizKey(id), public, s.config.CacheTTL); err != nil {
		s.logger.Warn("Cache write failed", "quiz_id", id, "error", err)
	}
}

// invalidate runs after the storage write has committed.
func (s *quizService) invalidate(ctx context.Context, id string) {
	s.projectionMu.Lock()
	defer s.projectionMu.Unlock()

	s.mutationGeneration++
	if err := s.cache.Delete(ctx, cache.PublicQuizKey(id)); err != nil {
		s.logger.Warn("Cache invalidation failed", "quiz_id", id, "error", err)
	}
}

// publish never fails the mutation that triggered it.
func (s *quizService) publish(ctx context.Context, eventType events.EventType, quiz *models.Quiz, actor string) {
	event := events.NewQuizEvent(eventType, events.QuizEventData{
		QuizID:        quiz.ID,
		Title:         quiz.Title,
		QuestionCount: len(quiz.Questions),
		Actor:         actor,
	})
	if err := s.publisher.PublishQuizEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish quiz event",
			"event_type", eventType,
			"quiz_id", quiz.ID,
			"error", err)
	}
}

func quizID(quiz *models.Quiz) string {
	if quiz == nil {
		return ""
	}
	return quiz.ID
}
