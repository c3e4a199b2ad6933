package service

import (
	"context"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/util"
)

// ResultService owns quiz result submission and reads.
type ResultService interface {
	SubmitResult(ctx context.Context, requester domain.Identity, req *dto.SubmitResultRequest) (*dto.ResultResponse, error)
	GetMyResults(ctx context.Context, requester domain.Identity) (*dto.ResultListResponse, error)
	GetResultsByQuiz(ctx context.Context, requester domain.Identity, quizID string) (*dto.ResultListResponse, error)
	GetAllResults(ctx context.Context, requester domain.Identity) (*dto.ResultListResponse, error)
}

type resultService struct {
	resultRepo domain.QuizResultRepository
	quizRepo   domain.QuizRepository
}

// NewResultService creates a new ResultService.
func NewResultService(resultRepo domain.QuizResultRepository, quizRepo domain.QuizRepository) ResultService {
	return &resultService{resultRepo: resultRepo, quizRepo: quizRepo}
}

// SubmitResult records a student's completed take. A student can submit
// at most one result per quiz; a second submission is rejected.
func (s *resultService) SubmitResult(ctx context.Context, requester domain.Identity, req *dto.SubmitResultRequest) (*dto.ResultResponse, error) {
	if requester.Role != domain.RoleStudent {
		return nil, domain.NewForbiddenError("Only students can submit quiz results")
	}

	quiz, err := s.quizRepo.GetQuizByID(ctx, req.QuizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(req.QuizID)
	}

	existing, err := s.resultRepo.GetResultByQuizAndStudent(ctx, req.QuizID, requester.UserID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to check existing result", err)
	}
	if existing != nil {
		return nil, domain.NewDuplicateSubmissionError(req.QuizID)
	}

	answers := make([]domain.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.Answer{
			QuestionID:      a.QuestionID,
			SelectedOption:  a.SelectedOption,
			IsCorrect:       a.IsCorrect,
			TimeSpent:       a.TimeSpent,
			OpenEndedAnswer: a.OpenEndedAnswer,
		})
	}

	result := domain.NewQuizResult(
		req.QuizID,
		requester.UserID,
		req.StudentName,
		req.StudentNumber,
		answers,
		req.Score,
		req.TotalQuestions,
		req.TimeSpent,
	)
	result.ID = util.NewULID()
	if err := result.Validate(); err != nil {
		return nil, err
	}

	if err := s.resultRepo.SaveResult(ctx, result); err != nil {
		return nil, domain.NewInternalError("Failed to save result", err)
	}

	resp := dto.ToResultResponse(result)
	return &resp, nil
}

// GetMyResults lists the requesting student's own results.
func (s *resultService) GetMyResults(ctx context.Context, requester domain.Identity) (*dto.ResultListResponse, error) {
	results, err := s.resultRepo.GetResultsByStudent(ctx, requester.UserID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list results", err)
	}
	return toResultListResponse(results), nil
}

// GetResultsByQuiz lists every result for a quiz. Restricted to the
// quiz's creating teacher.
func (s *resultService) GetResultsByQuiz(ctx context.Context, requester domain.Identity, quizID string) (*dto.ResultListResponse, error) {
	if requester.Role != domain.RoleTeacher {
		return nil, domain.NewForbiddenError("Only teachers can view quiz results")
	}
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	if quiz.CreatedBy != requester.UserID {
		return nil, domain.NewForbiddenError("Only the quiz creator can view its results")
	}
	results, err := s.resultRepo.GetResultsByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list results", err)
	}
	return toResultListResponse(results), nil
}

// GetAllResults lists every stored result. Restricted to teachers.
func (s *resultService) GetAllResults(ctx context.Context, requester domain.Identity) (*dto.ResultListResponse, error) {
	if requester.Role != domain.RoleTeacher {
		return nil, domain.NewForbiddenError("Only teachers can view all results")
	}
	results, err := s.resultRepo.GetAllResults(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list results", err)
	}
	return toResultListResponse(results), nil
}

func toResultListResponse(results []*domain.QuizResult) *dto.ResultListResponse {
	out := make([]dto.ResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ToResultResponse(r))
	}
	return &dto.ResultListResponse{Results: out}
}
