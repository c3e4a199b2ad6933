package domain

import (
	"strings"
	"time"
)

// QuestionType is the closed set of question styles a caller may request.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeOpenEnded      QuestionType = "open-ended"
)

// ParseQuestionType maps a raw style selector onto the enumeration.
// Anything outside the two accepted values is rejected.
func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case QuestionTypeMultipleChoice:
		return QuestionTypeMultipleChoice, nil
	case QuestionTypeOpenEnded:
		return QuestionTypeOpenEnded, nil
	default:
		return "", NewInvalidQuestionTypeError(s)
	}
}

// GeneratedQuestion is one question produced by the question generator.
// Options is empty for open-ended questions; CorrectAnswer is only
// meaningful for multiple-choice.
type GeneratedQuestion struct {
	ID            string       `json:"id"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Type          QuestionType `json:"type"`
}

// IsWellFormed reports whether the question carries every field the
// quiz player needs. Multiple-choice questions additionally need at
// least two options and an in-range answer index.
func (q *GeneratedQuestion) IsWellFormed() bool {
	if q.Question == "" {
		return false
	}
	switch q.Type {
	case QuestionTypeMultipleChoice:
		return len(q.Options) >= 2 && q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
	case QuestionTypeOpenEnded:
		return true
	default:
		return false
	}
}

// Quiz is the aggregate persisted after a successful ingestion run.
// Question order is display order and is preserved verbatim.
type Quiz struct {
	ID           string
	Title        string
	FileName     string
	QuestionType QuestionType
	Questions    []GeneratedQuestion
	CreatedBy    string
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// NewQuiz creates a Quiz aggregate from a successful pipeline run.
// The title is the uploaded filename without its .pdf suffix.
func NewQuiz(fileName string, questionType QuestionType, questions []GeneratedQuestion, createdBy string) *Quiz {
	now := time.Now()
	return &Quiz{
		Title:        strings.TrimSuffix(fileName, ".pdf"),
		FileName:     fileName,
		QuestionType: questionType,
		Questions:    questions,
		CreatedBy:    createdBy,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return NewValidationError("title is required")
	}
	if q.FileName == "" {
		return NewValidationError("file name is required")
	}
	if len(q.Questions) == 0 {
		return NewValidationError("at least one question is required")
	}
	if q.CreatedBy == "" {
		return NewValidationError("creator is required")
	}
	for i := range q.Questions {
		if !q.Questions[i].IsWellFormed() {
			return NewValidationError("question " + q.Questions[i].ID + " is malformed")
		}
	}
	return nil
}

func NewValidationError(message string) error {
	return NewError(CodeValidation, message, nil)
}
