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

// sqlxQuizResultRepository implements domain.QuizResultRepository using sqlx.
type sqlxQuizResultRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizResultRepository creates a new instance of sqlxQuizResultRepository.
func NewSQLXQuizResultRepository(db *sqlx.DB) domain.QuizResultRepository {
	return &sqlxQuizResultRepository{db: db}
}

func toDomainResult(m *models.QuizResult) *domain.QuizResult {
	if m == nil {
		return nil
	}
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &domain.QuizResult{
		ID:             m.ID,
		QuizID:         m.QuizID,
		StudentID:      m.StudentID,
		StudentName:    m.StudentName,
		StudentNumber:  m.StudentNumber,
		Answers:        m.Answers,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		TimeSpent:      m.TimeSpent,
		CompletedAt:    m.CompletedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

func fromDomainResult(r *domain.QuizResult) *models.QuizResult {
	return &models.QuizResult{
		ID:             r.ID,
		QuizID:         r.QuizID,
		StudentID:      r.StudentID,
		StudentName:    r.StudentName,
		StudentNumber:  r.StudentNumber,
		Answers:        models.AnswerList(r.Answers),
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		TimeSpent:      r.TimeSpent,
		CompletedAt:    r.CompletedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// SaveResult inserts a new quiz result.
func (r *sqlxQuizResultRepository) SaveResult(ctx context.Context, result *domain.QuizResult) error {
	model := fromDomainResult(result)
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}
	model.UpdatedAt = time.Now()

	query := `INSERT INTO quiz_results (id, quiz_id, student_id, student_name, student_number, answers, score, total_questions, time_spent, completed_at, created_at, updated_at)
	          VALUES (:id, :quiz_id, :student_id, :student_name, :student_number, :answers, :score, :total_questions, :time_spent, :completed_at, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to save quiz result: %w", err)
	}
	return nil
}

// GetResultByQuizAndStudent returns the result a student submitted for a
// quiz, or (nil, nil) when none exists. Used for duplicate detection.
func (r *sqlxQuizResultRepository) GetResultByQuizAndStudent(ctx context.Context, quizID, studentID string) (*domain.QuizResult, error) {
	var result models.QuizResult
	query := `SELECT * FROM quiz_results WHERE quiz_id = $1 AND student_id = $2 AND deleted_at IS NULL`

	if err := r.db.GetContext(ctx, &result, query, quizID, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result by quiz and student: %w", err)
	}
	return toDomainResult(&result), nil
}

// GetResultsByStudent returns all results submitted by a student.
func (r *sqlxQuizResultRepository) GetResultsByStudent(ctx context.Context, studentID string) ([]*domain.QuizResult, error) {
	var results []models.QuizResult
	query := `SELECT * FROM quiz_results WHERE student_id = $1 AND deleted_at IS NULL ORDER BY completed_at DESC`

	if err := r.db.SelectContext(ctx, &results, query, studentID); err != nil {
		return nil, fmt.Errorf("failed to get results by student: %w", err)
	}
	return toDomainResults(results), nil
}

// GetResultsByQuiz returns all results submitted for a quiz.
func (r *sqlxQuizResultRepository) GetResultsByQuiz(ctx context.Context, quizID string) ([]*domain.QuizResult, error) {
	var results []models.QuizResult
	query := `SELECT * FROM quiz_results WHERE quiz_id = $1 AND deleted_at IS NULL ORDER BY completed_at DESC`

	if err := r.db.SelectContext(ctx, &results, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get results by quiz: %w", err)
	}
	return toDomainResults(results), nil
}

// GetAllResults returns every stored result.
func (r *sqlxQuizResultRepository) GetAllResults(ctx context.Context) ([]*domain.QuizResult, error) {
	var results []models.QuizResult
	query := `SELECT * FROM quiz_results WHERE deleted_at IS NULL ORDER BY completed_at DESC`

	if err := r.db.SelectContext(ctx, &results, query); err != nil {
		return nil, fmt.Errorf("failed to get all results: %w", err)
	}
	return toDomainResults(results), nil
}

func toDomainResults(results []models.QuizResult) []*domain.QuizResult {
	out := make([]*domain.QuizResult, 0, len(results))
	for i := range results {
		out = append(out, toDomainResult(&results[i]))
	}
	return out
}
