package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizRecord is the gorm row for a quiz.
type QuizRecord struct {
	ID        string           `gorm:"primaryKey;type:varchar(36)"`
	Title     string           `gorm:"not null"`
	CreatedAt time.Time        `gorm:"not null;index"`
	UpdatedAt time.Time        `gorm:"not null"`
	Questions []QuestionRecord `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

func (QuizRecord) TableName() string { return "quizzes" }

// QuestionRecord is the gorm row for one question. Options is only set for mcq.
type QuestionRecord struct {
	ID            string         `gorm:"primaryKey;type:varchar(36)"`
	QuizID        string         `gorm:"type:varchar(36);not null;index"`
	Position      int            `gorm:"not null"`
	Type          string         `gorm:"type:varchar(16);not null"`
	Prompt        string         `gorm:"not null"`
	Options       datatypes.JSON `gorm:"type:jsonb"`
	CorrectAnswer string         `gorm:"not null"`
}

func (QuestionRecord) TableName() string { return "quiz_questions" }

type QuizPostgreSQL struct {
	db *gorm.DB
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{db: db}
}

// Migrate creates or updates the quiz tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&QuizRecord{}, &QuestionRecord{})
}

func (q *QuizPostgreSQL) Create(ctx context.Context, draft *models.QuizDraft) (*models.Quiz, error) {
	now := time.Now().UTC()
	record := QuizRecord{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	questions, err := toQuestionRecords(record.ID, draft.Questions)
	if err != nil {
		return nil, err
	}
	record.Questions = questions

	if err := q.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return toQuiz(&record)
}

func (q *QuizPostgreSQL) GetByID(ctx context.Context, id string) (*models.Quiz, error) {
	var record QuizRecord
	err := q.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return toQuiz(&record)
}

// Replace rewrites the quiz row and its question rows in one transaction.
func (q *QuizPostgreSQL) Replace(ctx context.Context, id string, draft *models.QuizDraft) (*models.Quiz, error) {
	var record QuizRecord
	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repositories.ErrNotFound
			}
			return fmt.Errorf("failed to load quiz: %w", err)
		}

		if err := tx.Where("quiz_id = ?", id).Delete(&QuestionRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete questions: %w", err)
		}

		questions, err := toQuestionRecords(id, draft.Questions)
		if err != nil {
			return err
		}
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("failed to create questions: %w", err)
		}

		record.Title = draft.Title
		record.UpdatedAt = time.Now().UTC()
		if err := tx.Model(&QuizRecord{}).Where("id = ?", id).
			Updates(map[string]any{"title": record.Title, "updated_at": record.UpdatedAt}).Error; err != nil {
			return fmt.Errorf("failed to update quiz: %w", err)
		}

		record.Questions = questions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toQuiz(&record)
}

func (q *QuizPostgreSQL) Delete(ctx context.Context, id string) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&QuestionRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete questions: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&QuizRecord{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete quiz: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return repositories.ErrNotFound
		}
		return nil
	})
}

func (q *QuizPostgreSQL) ListSummaries(ctx context.Context) ([]models.QuizSummary, error) {
	var records []QuizRecord
	if err := summaryQuery(q.db.WithContext(ctx)).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	summaries := make([]models.QuizSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, models.QuizSummary{ID: r.ID, Title: r.Title, CreatedAt: r.CreatedAt})
	}
	return summaries, nil
}

// summaryQuery lists newest first. Quizzes created in the same instant are
// ordered by id so pages stay stable.
func summaryQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&QuizRecord{}).
		Select("id", "title", "created_at").
		Order("created_at DESC, id DESC")
}

func (q *QuizPostgreSQL) Ping(ctx context.Context) error {
	sqlDB, err := q.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func toQuestionRecords(quizID string, questions []models.Question) ([]QuestionRecord, error) {
	records := make([]QuestionRecord, 0, len(questions))
	for i, question := range questions {
		record := QuestionRecord{
			ID:            uuid.NewString(),
			QuizID:        quizID,
			Position:      i,
			Type:          string(question.Type()),
			Prompt:        question.Prompt,
			CorrectAnswer: question.CorrectAnswer(),
		}
		if options := question.Options(); options != nil {
			raw, err := json.Marshal(options)
			if err != nil {
				return nil, fmt.Errorf("failed to encode options: %w", err)
			}
			record.Options = datatypes.JSON(raw)
		}
		records = append(records, record)
	}
	return records, nil
}

func toQuiz(record *QuizRecord) (*models.Quiz, error) {
	quiz := &models.Quiz{
		ID:        record.ID,
		Title:     record.Title,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
		Questions: make([]models.Question, 0, len(record.Questions)),
	}
	for _, r := range record.Questions {
		var options []string
		if len(r.Options) > 0 {
			if err := json.Unmarshal(r.Options, &options); err != nil {
				return nil, fmt.Errorf("failed to decode options of question %s: %w", r.ID, err)
			}
		}
		body, err := models.NewQuestionBody(models.QuestionType(r.Type), options, r.CorrectAnswer)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", r.ID, err)
		}
		quiz.Questions = append(quiz.Questions, models.Question{ID: r.ID, Prompt: r.Prompt, Body: body})
	}
	return quiz, nil
}
