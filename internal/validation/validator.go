package validation

import (
	"net/mail"
	"regexp"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
)

const (
	maxNameLength     = 100
	minPasswordLength = 8
	maxPasswordLength = 128
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUploadRequest validates the multipart upload parameters.
func (v *Validator) ValidateUploadRequest(fileName, questionType string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(fileName) == "" {
		errors = append(errors, domain.NewMissingFieldError("file"))
	} else if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		errors = append(errors, domain.NewInvalidFormatError("file", fileName))
	}

	if strings.TrimSpace(questionType) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_type"))
	} else if _, err := domain.ParseQuestionType(questionType); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("question_type", questionType))
	}

	return errors
}

// ValidateRegisterRequest validates an account registration payload.
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(req.Name) > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 1, maxNameLength))
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
	}

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		errors = append(errors, domain.NewOutOfRangeError("password", len(req.Password), minPasswordLength, maxPasswordLength))
	}

	if strings.TrimSpace(req.Role) == "" {
		errors = append(errors, domain.NewMissingFieldError("role"))
	} else if _, err := domain.ParseRole(req.Role); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("role", req.Role))
	}

	return errors
}

// ValidateLoginRequest validates a login payload.
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	}
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	return errors
}

// ValidateSubmitResultRequest validates a quiz result submission.
func (v *Validator) ValidateSubmitResultRequest(req *dto.SubmitResultRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QuizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	} else if !isValidULID(req.QuizID) {
		errors = append(errors, domain.NewInvalidFormatError("quiz_id", req.QuizID))
	}

	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}

	if req.TotalQuestions <= 0 {
		errors = append(errors, domain.NewOutOfRangeError("total_questions", req.TotalQuestions, 1, 100))
	} else if req.Score < 0 || req.Score > req.TotalQuestions {
		errors = append(errors, domain.NewOutOfRangeError("score", req.Score, 0, req.TotalQuestions))
	}

	if req.TimeSpent < 0 {
		errors = append(errors, domain.NewInvalidFormatError("time_spent", req.TimeSpent))
	}

	return errors
}

// ValidateQuizID validates a quiz ID path parameter.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("id", quizID))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
