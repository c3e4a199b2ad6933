package models

import (
	"database/sql"
	"time"
)

// User represents a user row.
type User struct {
	ID             string         `db:"id"` // ULID
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	HashedPassword string         `db:"hashed_password"`
	Role           string         `db:"role"`           // "teacher" or "student"
	StudentNumber  sql.NullString `db:"student_number"` // only for students
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	DeletedAt      sql.NullTime   `db:"deleted_at"`
}

// Quiz represents a quiz row. Questions are stored as a JSONB document;
// the typed QuestionList keeps the payload validated at the boundary.
type Quiz struct {
	ID           string       `db:"id"` // ULID
	Title        string       `db:"title"`
	FileName     string       `db:"file_name"`
	QuestionType string       `db:"question_type"`
	Questions    QuestionList `db:"questions"`
	CreatedBy    string       `db:"created_by"`
	IsPublished  bool         `db:"is_published"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
}

// QuizResult represents one student's completed take of a quiz.
type QuizResult struct {
	ID             string       `db:"id"` // ULID
	QuizID         string       `db:"quiz_id"`
	StudentID      string       `db:"student_id"`
	StudentName    string       `db:"student_name"`
	StudentNumber  string       `db:"student_number"`
	Answers        AnswerList   `db:"answers"`
	Score          int          `db:"score"`
	TotalQuestions int          `db:"total_questions"`
	TimeSpent      int          `db:"time_spent"` // milliseconds
	CompletedAt    time.Time    `db:"completed_at"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
	DeletedAt      sql.NullTime `db:"deleted_at"`
}
