package handler

import (
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/middleware"
	"quizforge/internal/service"
	"quizforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ResultHandler handles quiz result submission and read requests.
type ResultHandler struct {
	resultService service.ResultService
	validator     *validation.Validator
}

// NewResultHandler creates a new ResultHandler instance
func NewResultHandler(resultService service.ResultService, validator *validation.Validator) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
		validator:     validator,
	}
}

// SubmitResult godoc
// @Summary Submit a quiz result
// @Description Records a student's completed take. One submission per quiz per student.
// @Tags results
// @Accept json
// @Produce json
// @Param request body dto.SubmitResultRequest true "Result payload"
// @Security BearerAuth
// @Success 201 {object} dto.ResultResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /results [post]
func (h *ResultHandler) SubmitResult(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("Authentication required")
	}

	var req dto.SubmitResultRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateSubmitResultRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.resultService.SubmitResult(c.Context(), identity, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetMyResults godoc
// @Summary List the authenticated student's results
// @Tags results
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResultListResponse
// @Router /results/my-results [get]
func (h *ResultHandler) GetMyResults(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("Authentication required")
	}
	resp, err := h.resultService.GetMyResults(c.Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetResultsByQuiz godoc
// @Summary List every result for a quiz
// @Description Restricted to the quiz's creating teacher.
// @Tags results
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Security BearerAuth
// @Success 200 {object} dto.ResultListResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /results/quiz/{quizId} [get]
func (h *ResultHandler) GetResultsByQuiz(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("Authentication required")
	}
	quizID := c.Params("quizId")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}
	resp, err := h.resultService.GetResultsByQuiz(c.Context(), identity, quizID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAllResults godoc
// @Summary List every stored result
// @Description Restricted to teachers.
// @Tags results
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResultListResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /results/all [get]
func (h *ResultHandler) GetAllResults(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return domain.NewUnauthorizedError("Authentication required")
	}
	resp, err := h.resultService.GetAllResults(c.Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
