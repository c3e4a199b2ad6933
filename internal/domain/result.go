package domain

import "time"

// Answer records a student's response to one question.
type Answer struct {
	QuestionID      string `json:"questionId"`
	SelectedOption  int    `json:"selectedOption"`
	IsCorrect       bool   `json:"isCorrect"`
	TimeSpent       int    `json:"timeSpent"` // milliseconds
	OpenEndedAnswer string `json:"openEndedAnswer,omitempty"`
}

// QuizResult is one student's completed take of a quiz. A student
// submits at most one result per quiz.
type QuizResult struct {
	ID             string
	QuizID         string
	StudentID      string
	StudentName    string
	StudentNumber  string
	Answers        []Answer
	Score          int
	TotalQuestions int
	TimeSpent      int // milliseconds
	CompletedAt    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// NewQuizResult creates a new QuizResult instance
func NewQuizResult(quizID, studentID, studentName, studentNumber string, answers []Answer, score, totalQuestions, timeSpent int) *QuizResult {
	now := time.Now()
	return &QuizResult{
		QuizID:         quizID,
		StudentID:      studentID,
		StudentName:    studentName,
		StudentNumber:  studentNumber,
		Answers:        answers,
		Score:          score,
		TotalQuestions: totalQuestions,
		TimeSpent:      timeSpent,
		CompletedAt:    now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate validates the result
func (r *QuizResult) Validate() error {
	if r.QuizID == "" {
		return NewValidationError("quiz ID is required")
	}
	if r.StudentID == "" {
		return NewValidationError("student ID is required")
	}
	if len(r.Answers) == 0 {
		return NewValidationError("at least one answer is required")
	}
	if r.TotalQuestions <= 0 {
		return NewValidationError("total questions must be positive")
	}
	if r.Score < 0 || r.Score > r.TotalQuestions {
		return NewValidationError("score is out of range")
	}
	return nil
}
