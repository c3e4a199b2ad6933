package domain

import "context"

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// QuizRepository defines the interface for quiz persistence.
// Not-found lookups return (nil, nil); services translate to domain errors.
type QuizRepository interface {
	SaveQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	GetPublishedQuizzes(ctx context.Context) ([]*Quiz, error)
	GetQuizzesByCreator(ctx context.Context, creatorID string) ([]*Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
}

// QuizResultRepository defines the interface for quiz result persistence.
type QuizResultRepository interface {
	SaveResult(ctx context.Context, result *QuizResult) error
	GetResultByQuizAndStudent(ctx context.Context, quizID, studentID string) (*QuizResult, error)
	GetResultsByStudent(ctx context.Context, studentID string) ([]*QuizResult, error)
	GetResultsByQuiz(ctx context.Context, quizID string) ([]*QuizResult, error)
	GetAllResults(ctx context.Context) ([]*QuizResult, error)
}
