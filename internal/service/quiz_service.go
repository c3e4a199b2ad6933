package service

import (
	"context"
	"errors"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/util"

	"go.uber.org/zap"
)

// UploadCommand carries one teacher upload through the ingestion
// pipeline: the raw document, its declared media type, and the
// requested question style.
type UploadCommand struct {
	Requester    domain.Identity
	FileName     string
	ContentType  string
	Data         []byte
	QuestionType string
}

// QuizService owns the upload pipeline and quiz reads.
type QuizService interface {
	GenerateFromUpload(ctx context.Context, cmd UploadCommand) (*dto.UploadQuizResponse, error)
	GetPublishedQuizzes(ctx context.Context) (*dto.QuizListResponse, error)
	GetMyQuizzes(ctx context.Context, requester domain.Identity) (*dto.QuizListResponse, error)
	GetQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, quizID string, requester domain.Identity) error
}

type quizService struct {
	quizRepo  domain.QuizRepository
	store     domain.DocumentStore
	extractor domain.TextExtractor
	generator domain.QuestionGenerator
	listCache QuizListCache
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizRepo domain.QuizRepository,
	store domain.DocumentStore,
	extractor domain.TextExtractor,
	generator domain.QuestionGenerator,
	listCache QuizListCache,
) QuizService {
	return &quizService{
		quizRepo:  quizRepo,
		store:     store,
		extractor: extractor,
		generator: generator,
		listCache: listCache,
	}
}

// GenerateFromUpload runs the full ingestion pipeline for one upload.
// The stored document is the only side effect that can outlive a
// failure, so every stage after Save compensates by deleting it before
// returning the error. Nothing is ever persisted for a failed run.
func (s *quizService) GenerateFromUpload(ctx context.Context, cmd UploadCommand) (*dto.UploadQuizResponse, error) {
	switch cmd.Requester.Role {
	case domain.RoleTeacher:
		// allowed
	case domain.RoleStudent:
		return nil, domain.NewForbiddenError("Only teachers can upload files")
	default:
		return nil, domain.NewForbiddenError("Only teachers can upload files")
	}

	if !strings.HasSuffix(strings.ToLower(cmd.FileName), ".pdf") {
		return nil, domain.NewInvalidDocumentError("Only PDF files are allowed")
	}
	if cmd.ContentType != "" && cmd.ContentType != "application/pdf" {
		return nil, domain.NewInvalidDocumentError("Only PDF files are allowed")
	}
	if len(cmd.Data) == 0 {
		return nil, domain.NewInvalidDocumentError("Uploaded file is empty")
	}

	questionType, err := domain.ParseQuestionType(cmd.QuestionType)
	if err != nil {
		return nil, err
	}

	locator, err := s.store.Save(cmd.Data, cmd.FileName)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to store uploaded file", err)
	}

	logger.Get().Info("Stored uploaded document",
		zap.String("file_name", cmd.FileName),
		zap.String("locator", locator),
		zap.String("question_type", string(questionType)),
		zap.String("user_id", cmd.Requester.UserID))

	text, err := s.extractor.Extract(ctx, cmd.Data)
	if err != nil {
		s.discard(locator)
		return nil, domain.NewDocumentProcessingError(err)
	}
	if strings.TrimSpace(text) == "" {
		s.discard(locator)
		return nil, domain.NewInvalidDocumentError("Could not extract text from PDF")
	}

	questions, err := s.generator.Generate(ctx, text, questionType)
	if err != nil {
		s.discard(locator)
		return nil, domain.NewDocumentProcessingError(err)
	}
	if len(questions) == 0 {
		s.discard(locator)
		return nil, domain.NewDocumentProcessingError(domain.NewGenerationError("no questions generated", nil))
	}

	quiz := domain.NewQuiz(cmd.FileName, questionType, questions, cmd.Requester.UserID)
	quiz.ID = util.NewULID()
	if err := quiz.Validate(); err != nil {
		s.discard(locator)
		return nil, err
	}

	if err := s.quizRepo.SaveQuiz(ctx, quiz); err != nil {
		s.discard(locator)
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	s.invalidateList(ctx)

	logger.Get().Info("Quiz generated from upload",
		zap.String("quiz_id", quiz.ID),
		zap.String("title", quiz.Title),
		zap.Int("question_count", len(quiz.Questions)))

	return &dto.UploadQuizResponse{
		Success: true,
		Quiz:    dto.ToQuizResponse(quiz),
		Message: "PDF uploaded and quiz generated successfully",
	}, nil
}

// discard removes a stored document after a pipeline failure. Cleanup
// failure is logged but never masks the original error.
func (s *quizService) discard(locator string) {
	if err := s.store.Delete(locator); err != nil {
		logger.Get().Error("Failed to delete stored document after pipeline failure",
			zap.String("locator", locator), zap.Error(err))
	}
}

func (s *quizService) invalidateList(ctx context.Context) {
	if s.listCache == nil {
		return
	}
	if err := s.listCache.Invalidate(ctx); err != nil {
		logger.Get().Warn("Failed to invalidate published quiz list cache", zap.Error(err))
	}
}

// GetPublishedQuizzes lists every published quiz, cache first.
func (s *quizService) GetPublishedQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	var quizzes []*domain.Quiz
	var err error
	if s.listCache != nil {
		quizzes, err = s.listCache.GetPublishedQuizzes(ctx)
	} else {
		quizzes, err = s.quizRepo.GetPublishedQuizzes(ctx)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	return toQuizListResponse(quizzes), nil
}

// GetMyQuizzes lists the quizzes created by the requesting teacher.
func (s *quizService) GetMyQuizzes(ctx context.Context, requester domain.Identity) (*dto.QuizListResponse, error) {
	if requester.Role != domain.RoleTeacher {
		return nil, domain.NewForbiddenError("Only teachers can list their own quizzes")
	}
	quizzes, err := s.quizRepo.GetQuizzesByCreator(ctx, requester.UserID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	return toQuizListResponse(quizzes), nil
}

// GetQuiz fetches a single quiz by ID.
func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	resp := dto.ToQuizResponse(quiz)
	return &resp, nil
}

// DeleteQuiz soft-deletes a quiz. Only the creating teacher may delete.
func (s *quizService) DeleteQuiz(ctx context.Context, quizID string, requester domain.Identity) error {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return domain.NewQuizNotFoundError(quizID)
	}
	if quiz.CreatedBy != requester.UserID {
		return domain.NewForbiddenError("Only the quiz creator can delete it")
	}
	if err := s.quizRepo.DeleteQuiz(ctx, quizID); err != nil {
		return domain.NewInternalError("Failed to delete quiz", err)
	}
	s.invalidateList(ctx)
	return nil
}

func toQuizListResponse(quizzes []*domain.Quiz) *dto.QuizListResponse {
	out := make([]dto.QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, dto.ToQuizResponse(q))
	}
	return &dto.QuizListResponse{Quizzes: out}
}
