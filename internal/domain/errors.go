package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Quiz platform specific errors
	CodeQuizNotFound        ErrorCode = "QUIZ_NOT_FOUND"
	CodeInvalidQuestionType ErrorCode = "INVALID_QUESTION_TYPE"
	CodeInvalidDocument     ErrorCode = "INVALID_DOCUMENT"
	CodeDuplicateSubmission ErrorCode = "DUPLICATE_SUBMISSION"
	CodeDocumentProcessing  ErrorCode = "DOCUMENT_PROCESSING_FAILED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewForbiddenError(message string) *DomainError {
	return NewError(CodeForbidden, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

func NewInvalidQuestionTypeError(value string) *DomainError {
	return NewError(CodeInvalidQuestionType,
		fmt.Sprintf("Question type must be %q or %q, got %q", QuestionTypeMultipleChoice, QuestionTypeOpenEnded, value), nil)
}

func NewInvalidDocumentError(message string) *DomainError {
	return NewError(CodeInvalidDocument, message, nil)
}

func NewDuplicateSubmissionError(quizID string) *DomainError {
	return NewError(CodeDuplicateSubmission,
		fmt.Sprintf("A result for quiz %s has already been submitted", quizID), nil)
}

// NewDocumentProcessingError covers every failure between a stored upload
// and a persisted quiz: extraction, generation, and persistence. The caller
// sees a single collapsed classification; the cause stays in server logs.
func NewDocumentProcessingError(cause error) *DomainError {
	return NewError(CodeDocumentProcessing, "Failed to process document", cause)
}
