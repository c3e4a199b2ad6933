package handler

import (
	"io"

	"quizforge/internal/domain"
	"quizforge/internal/middleware"
	"quizforge/internal/service"
	"quizforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz upload and read requests.
type QuizHandler struct {
	quizService service.QuizService
	validator   *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		validator:   validator,
	}
}

// UploadQuiz godoc
// @Summary Upload a PDF and generate a quiz
// @Description Extracts text from the PDF, generates questions and persists the quiz
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Param question_type formData string true "multiple-choice or open-ended"
// @Security BearerAuth
// @Success 201 {object} dto.UploadQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /files/upload [post]
func (h *QuizHandler) UploadQuiz(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("Authentication required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("Missing file upload")
	}
	questionType := c.FormValue("question_type")

	if errs := h.validator.ValidateUploadRequest(fileHeader.Filename, questionType); len(errs) > 0 {
		return errs
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	resp, err := h.quizService.GenerateFromUpload(c.Context(), service.UploadCommand{
		Requester:    identity,
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Data:         data,
		QuestionType: questionType,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetPublishedQuizzes godoc
// @Summary List published quizzes
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizListResponse
// @Router /quizzes [get]
func (h *QuizHandler) GetPublishedQuizzes(c *fiber.Ctx) error {
	resp, err := h.quizService.GetPublishedQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMyQuizzes godoc
// @Summary List the authenticated teacher's quizzes
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuizListResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /quizzes/my-quizzes [get]
func (h *QuizHandler) GetMyQuizzes(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("Authentication required")
	}
	resp, err := h.quizService.GetMyQuizzes(c.Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get a quiz by ID
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}
	resp, err := h.quizService.GetQuiz(c.Context(), quizID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Soft-deletes a quiz. Only the creating teacher may delete.
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Security BearerAuth
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("Authentication required")
	}
	quizID := c.Params("id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}
	if err := h.quizService.DeleteQuiz(c.Context(), quizID, identity); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
