// Package sqlite is a QuizRepository on database/sql and the pure Go
// modernc.org/sqlite driver, for single-node deployments and tests.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // driver: sqlite
)

const schema = `
CREATE TABLE IF NOT EXISTS quizzes (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quizzes_created_at ON quizzes(created_at);

CREATE TABLE IF NOT EXISTS quiz_questions (
  id TEXT PRIMARY KEY,
  quiz_id TEXT NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  type TEXT NOT NULL,
  prompt TEXT NOT NULL,
  options_json TEXT,
  correct_answer TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_questions_quiz_id ON quiz_questions(quiz_id, position);
`

// Open opens the database and ensures the schema exists.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

type QuizSQLite struct {
	db *sql.DB
}

func NewQuizSQLite(db *sql.DB) repositories.QuizRepository {
	return &QuizSQLite{db: db}
}

func (s *QuizSQLite) Create(ctx context.Context, draft *models.QuizDraft) (*models.Quiz, error) {
	now := time.Now().UTC()
	quiz := &models.Quiz{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO quizzes (id, title, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			quiz.ID, quiz.Title, now.UnixNano(), now.UnixNano())
		if err != nil {
			return fmt.Errorf("failed to create quiz: %w", err)
		}
		quiz.Questions, err = insertQuestions(ctx, tx, quiz.ID, draft.Questions)
		return err
	})
	if err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizSQLite) GetByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	var created, updated int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, created_at, updated_at FROM quizzes WHERE id = ?`, id).
		Scan(&quiz.ID, &quiz.Title, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	quiz.CreatedAt = time.Unix(0, created).UTC()
	quiz.UpdatedAt = time.Unix(0, updated).UTC()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, prompt, options_json, correct_answer
		   FROM quiz_questions WHERE quiz_id = ? ORDER BY position ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			qid, qtype, prompt, answer string
			optionsJSON                sql.NullString
		)
		if err := rows.Scan(&qid, &qtype, &prompt, &optionsJSON, &answer); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		var options []string
		if optionsJSON.Valid && optionsJSON.String != "" {
			if err := json.Unmarshal([]byte(optionsJSON.String), &options); err != nil {
				return nil, fmt.Errorf("failed to decode options of question %s: %w", qid, err)
			}
		}
		body, err := models.NewQuestionBody(models.QuestionType(qtype), options, answer)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", qid, err)
		}
		quiz.Questions = append(quiz.Questions, models.Question{ID: qid, Prompt: prompt, Body: body})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}
	return &quiz, nil
}

func (s *QuizSQLite) Replace(ctx context.Context, id string, draft *models.QuizDraft) (*models.Quiz, error) {
	now := time.Now().UTC()
	quiz := &models.Quiz{ID: id, Title: draft.Title, UpdatedAt: now}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var created int64
		err := tx.QueryRowContext(ctx, `SELECT created_at FROM quizzes WHERE id = ?`, id).Scan(&created)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return repositories.ErrNotFound
			}
			return fmt.Errorf("failed to load quiz: %w", err)
		}
		quiz.CreatedAt = time.Unix(0, created).UTC()

		if _, err := tx.ExecContext(ctx,
			`UPDATE quizzes SET title = ?, updated_at = ? WHERE id = ?`, draft.Title, now.UnixNano(), id); err != nil {
			return fmt.Errorf("failed to update quiz: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM quiz_questions WHERE quiz_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete questions: %w", err)
		}
		quiz.Questions, err = insertQuestions(ctx, tx, id, draft.Questions)
		return err
	})
	if err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizSQLite) Delete(ctx context.Context, id string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM quiz_questions WHERE quiz_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete questions: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete quiz: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return repositories.ErrNotFound
		}
		return nil
	})
}

func (s *QuizSQLite) ListSummaries(ctx context.Context) ([]models.QuizSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, created_at FROM quizzes ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	defer rows.Close()

	summaries := []models.QuizSummary{}
	for rows.Next() {
		var summary models.QuizSummary
		var created int64
		if err := rows.Scan(&summary.ID, &summary.Title, &created); err != nil {
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}
		summary.CreatedAt = time.Unix(0, created).UTC()
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func (s *QuizSQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *QuizSQLite) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertQuestions(ctx context.Context, tx *sql.Tx, quizID string, questions []models.Question) ([]models.Question, error) {
	stored := make([]models.Question, 0, len(questions))
	for i, question := range questions {
		var optionsJSON sql.NullString
		if options := question.Options(); options != nil {
			raw, err := json.Marshal(options)
			if err != nil {
				return nil, fmt.Errorf("failed to encode options: %w", err)
			}
			optionsJSON = sql.NullString{String: string(raw), Valid: true}
		}

		id := uuid.NewString()
		_, err := tx.ExecContext(ctx,
			`INSERT INTO quiz_questions (id, quiz_id, position, type, prompt, options_json, correct_answer)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, quizID, i, string(question.Type()), question.Prompt, optionsJSON, question.CorrectAnswer())
		if err != nil {
			return nil, fmt.Errorf("failed to create question: %w", err)
		}

		body, err := models.NewQuestionBody(question.Type(), question.Options(), question.CorrectAnswer())
		if err != nil {
			return nil, err
		}
		stored = append(stored, models.Question{ID: id, Prompt: question.Prompt, Body: body})
	}
	return stored, nil
}
