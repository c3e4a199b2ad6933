package dto

import (
	"time"

	"quizforge/internal/domain"
)

// AnswerPayload records one answered question in a submission.
type AnswerPayload struct {
	QuestionID      string `json:"questionId"`
	SelectedOption  int    `json:"selectedOption"`
	IsCorrect       bool   `json:"isCorrect"`
	TimeSpent       int    `json:"timeSpent"`
	OpenEndedAnswer string `json:"openEndedAnswer,omitempty"`
}

// SubmitResultRequest is the payload for a student submitting a take.
type SubmitResultRequest struct {
	QuizID         string          `json:"quiz_id"`
	StudentName    string          `json:"student_name"`
	StudentNumber  string          `json:"student_number"`
	Answers        []AnswerPayload `json:"answers"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"total_questions"`
	TimeSpent      int             `json:"time_spent"`
}

// ResultResponse is the API representation of a stored quiz result.
type ResultResponse struct {
	ID             string          `json:"id"`
	QuizID         string          `json:"quiz_id"`
	StudentID      string          `json:"student_id"`
	StudentName    string          `json:"student_name"`
	StudentNumber  string          `json:"student_number"`
	Answers        []AnswerPayload `json:"answers"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"total_questions"`
	TimeSpent      int             `json:"time_spent"`
	CompletedAt    time.Time       `json:"completed_at"`
}

// ResultListResponse wraps result list endpoints.
type ResultListResponse struct {
	Results []ResultResponse `json:"results"`
}

// ToResultResponse converts a domain result to its API representation.
func ToResultResponse(result *domain.QuizResult) ResultResponse {
	answers := make([]AnswerPayload, 0, len(result.Answers))
	for _, a := range result.Answers {
		answers = append(answers, AnswerPayload{
			QuestionID:      a.QuestionID,
			SelectedOption:  a.SelectedOption,
			IsCorrect:       a.IsCorrect,
			TimeSpent:       a.TimeSpent,
			OpenEndedAnswer: a.OpenEndedAnswer,
		})
	}
	return ResultResponse{
		ID:             result.ID,
		QuizID:         result.QuizID,
		StudentID:      result.StudentID,
		StudentName:    result.StudentName,
		StudentNumber:  result.StudentNumber,
		Answers:        answers,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		TimeSpent:      result.TimeSpent,
		CompletedAt:    result.CompletedAt,
	}
}
