package dto

import (
	"time"

	"quizforge/internal/domain"
)

// QuestionResponse mirrors the wire shape quiz players consume.
type QuestionResponse struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Type          string   `json:"type"`
}

// QuizResponse is the API representation of a quiz aggregate.
type QuizResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	FileName     string             `json:"file_name"`
	QuestionType string             `json:"question_type"`
	Questions    []QuestionResponse `json:"questions"`
	CreatedBy    string             `json:"created_by"`
	CreatedAt    time.Time          `json:"created_at"`
	IsPublished  bool               `json:"is_published"`
}

// UploadQuizResponse is the success envelope for the upload pipeline.
type UploadQuizResponse struct {
	Success bool         `json:"success"`
	Quiz    QuizResponse `json:"quiz"`
	Message string       `json:"message"`
}

// QuizListResponse wraps quiz list endpoints.
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// ErrorResponse is the minimal error body for handler-level rejections.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToQuizResponse converts a domain quiz to its API representation.
func ToQuizResponse(quiz *domain.Quiz) QuizResponse {
	questions := make([]QuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		options := q.Options
		if options == nil {
			options = []string{}
		}
		questions = append(questions, QuestionResponse{
			ID:            q.ID,
			Question:      q.Question,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Type:          string(q.Type),
		})
	}
	return QuizResponse{
		ID:           quiz.ID,
		Title:        quiz.Title,
		FileName:     quiz.FileName,
		QuestionType: string(quiz.QuestionType),
		Questions:    questions,
		CreatedBy:    quiz.CreatedBy,
		CreatedAt:    quiz.CreatedAt,
		IsPublished:  quiz.IsPublished,
	}
}
