package middleware_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"quizforge/internal/domain"
	"quizforge/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func appReturning(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"forbidden", domain.NewForbiddenError("no"), fiber.StatusForbidden, string(domain.CodeForbidden)},
		{"unauthorized", domain.NewUnauthorizedError("no"), fiber.StatusUnauthorized, string(domain.CodeUnauthorized)},
		{"quiz not found", domain.NewQuizNotFoundError("id"), fiber.StatusNotFound, string(domain.CodeQuizNotFound)},
		{"invalid document", domain.NewInvalidDocumentError("bad pdf"), fiber.StatusBadRequest, string(domain.CodeInvalidDocument)},
		{"invalid question type", domain.NewInvalidQuestionTypeError("essay"), fiber.StatusBadRequest, string(domain.CodeInvalidQuestionType)},
		{"duplicate submission", domain.NewDuplicateSubmissionError("id"), fiber.StatusBadRequest, string(domain.CodeDuplicateSubmission)},
		{"document processing", domain.NewDocumentProcessingError(nil), fiber.StatusInternalServerError, string(domain.CodeDocumentProcessing)},
		{"internal", domain.NewInternalError("oops", nil), fiber.StatusInternalServerError, string(domain.CodeInternal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appReturning(tt.err)

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body middleware.ErrorResponse
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.Equal(t, tt.expectedStatus, body.Status)
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	errs := domain.ValidationErrors{
		domain.NewMissingFieldError("file"),
		domain.NewInvalidFormatError("question_type", "essay"),
	}
	app := appReturning(errs)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Errors, 2)
	assert.Equal(t, string(domain.CodeValidation), body.Code)
}

func TestErrorHandler_UnknownError(t *testing.T) {
	app := appReturning(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
