package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxQuizRepository implements domain.QuizRepository using sqlx.
type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository.
func NewSQLXQuizRepository(db *sqlx.DB) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &domain.Quiz{
		ID:           m.ID,
		Title:        m.Title,
		FileName:     m.FileName,
		QuestionType: domain.QuestionType(m.QuestionType),
		Questions:    m.Questions,
		CreatedBy:    m.CreatedBy,
		IsPublished:  m.IsPublished,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

func fromDomainQuiz(q *domain.Quiz) *models.Quiz {
	return &models.Quiz{
		ID:           q.ID,
		Title:        q.Title,
		FileName:     q.FileName,
		QuestionType: string(q.QuestionType),
		Questions:    models.QuestionList(q.Questions),
		CreatedBy:    q.CreatedBy,
		IsPublished:  q.IsPublished,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

// SaveQuiz persists a quiz aggregate as a single INSERT.
func (r *sqlxQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	model := fromDomainQuiz(quiz)
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}
	model.UpdatedAt = time.Now()

	query := `INSERT INTO quizzes (id, title, file_name, question_type, questions, created_by, is_published, created_at, updated_at)
	          VALUES (:id, :title, :file_name, :question_type, :questions, :created_by, :is_published, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}
	return nil
}

// GetQuizByID retrieves a quiz by its ID.
func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var quiz models.Quiz
	query := `SELECT * FROM quizzes WHERE id = $1 AND deleted_at IS NULL`

	if err := r.db.GetContext(ctx, &quiz, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}
	return toDomainQuiz(&quiz), nil
}

// GetPublishedQuizzes returns all published quizzes, newest first.
func (r *sqlxQuizRepository) GetPublishedQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	var quizzes []models.Quiz
	query := `SELECT * FROM quizzes WHERE is_published = TRUE AND deleted_at IS NULL ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &quizzes, query); err != nil {
		return nil, fmt.Errorf("failed to get published quizzes: %w", err)
	}
	return toDomainQuizzes(quizzes), nil
}

// GetQuizzesByCreator returns all quizzes authored by a user, newest first.
func (r *sqlxQuizRepository) GetQuizzesByCreator(ctx context.Context, creatorID string) ([]*domain.Quiz, error) {
	var quizzes []models.Quiz
	query := `SELECT * FROM quizzes WHERE created_by = $1 AND deleted_at IS NULL ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &quizzes, query, creatorID); err != nil {
		return nil, fmt.Errorf("failed to get quizzes by creator: %w", err)
	}
	return toDomainQuizzes(quizzes), nil
}

// DeleteQuiz soft-deletes a quiz.
func (r *sqlxQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	query := `UPDATE quizzes SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func toDomainQuizzes(quizzes []models.Quiz) []*domain.Quiz {
	out := make([]*domain.Quiz, 0, len(quizzes))
	for i := range quizzes {
		out = append(out, toDomainQuiz(&quizzes[i]))
	}
	return out
}
