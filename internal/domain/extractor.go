package domain

import (
	"context"
	"fmt"
)

// ExtractionError signals that a document could not be parsed at all.
// Individual pages that fail to yield text do not produce this error;
// they contribute an empty string instead.
type ExtractionError struct {
	Reason string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("text extraction failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("text extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

func NewExtractionError(reason string, cause error) *ExtractionError {
	return &ExtractionError{Reason: reason, Cause: cause}
}

// TextExtractor turns raw document bytes into plain text in document
// order, trimmed of leading/trailing whitespace. Pure transformation,
// no side effects.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}
