package domain

import (
	"context"
	"fmt"
)

// GenerationError signals that the question generator could not produce
// a usable sequence: transport failure, unparseable response, or a
// response in which no question survived validation. It exists so that
// callers cannot mistake "nothing generated" for "zero questions
// requested".
type GenerationError struct {
	Reason string
	Cause  error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("question generation failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("question generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

func NewGenerationError(reason string, cause error) *GenerationError {
	return &GenerationError{Reason: reason, Cause: cause}
}

// QuestionGenerator produces an ordered, non-empty sequence of
// well-formed questions from extracted document text, or a
// *GenerationError. A single best-effort call per request; no retries.
type QuestionGenerator interface {
	Generate(ctx context.Context, text string, questionType QuestionType) ([]GeneratedQuestion, error)
}
