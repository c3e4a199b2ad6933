package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuestionType(t *testing.T) {
	qt, err := ParseQuestionType("multiple-choice")
	assert.NoError(t, err)
	assert.Equal(t, QuestionTypeMultipleChoice, qt)

	qt, err = ParseQuestionType("open-ended")
	assert.NoError(t, err)
	assert.Equal(t, QuestionTypeOpenEnded, qt)

	_, err = ParseQuestionType("true-false")
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeInvalidQuestionType, domainErr.Code)

	// Case and whitespace are not normalized.
	_, err = ParseQuestionType("Multiple-Choice")
	assert.Error(t, err)
}

func TestGeneratedQuestion_IsWellFormed(t *testing.T) {
	tests := []struct {
		name     string
		question GeneratedQuestion
		want     bool
	}{
		{
			name:     "valid multiple choice",
			question: GeneratedQuestion{Question: "Q?", Options: []string{"a", "b"}, CorrectAnswer: 1, Type: QuestionTypeMultipleChoice},
			want:     true,
		},
		{
			name:     "empty question text",
			question: GeneratedQuestion{Options: []string{"a", "b"}, CorrectAnswer: 0, Type: QuestionTypeMultipleChoice},
			want:     false,
		},
		{
			name:     "single option",
			question: GeneratedQuestion{Question: "Q?", Options: []string{"a"}, CorrectAnswer: 0, Type: QuestionTypeMultipleChoice},
			want:     false,
		},
		{
			name:     "answer index out of range",
			question: GeneratedQuestion{Question: "Q?", Options: []string{"a", "b"}, CorrectAnswer: 2, Type: QuestionTypeMultipleChoice},
			want:     false,
		},
		{
			name:     "negative answer index",
			question: GeneratedQuestion{Question: "Q?", Options: []string{"a", "b"}, CorrectAnswer: -1, Type: QuestionTypeMultipleChoice},
			want:     false,
		},
		{
			name:     "open ended needs only text",
			question: GeneratedQuestion{Question: "Explain.", Type: QuestionTypeOpenEnded},
			want:     true,
		},
		{
			name:     "unknown type",
			question: GeneratedQuestion{Question: "Q?", Type: QuestionType("essay")},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.question.IsWellFormed())
		})
	}
}

func TestNewQuiz_TitleFromFileName(t *testing.T) {
	questions := []GeneratedQuestion{{Question: "Explain.", Type: QuestionTypeOpenEnded}}

	quiz := NewQuiz("chapter-3-notes.pdf", QuestionTypeOpenEnded, questions, "creator")
	assert.Equal(t, "chapter-3-notes", quiz.Title)
	assert.Equal(t, "chapter-3-notes.pdf", quiz.FileName)
	assert.True(t, quiz.IsPublished)

	// No .pdf suffix: title is the filename unchanged.
	quiz = NewQuiz("notes", QuestionTypeOpenEnded, questions, "creator")
	assert.Equal(t, "notes", quiz.Title)
}

func TestQuiz_Validate(t *testing.T) {
	questions := []GeneratedQuestion{{Question: "Explain.", Type: QuestionTypeOpenEnded}}
	quiz := NewQuiz("notes.pdf", QuestionTypeOpenEnded, questions, "creator")
	quiz.ID = "id"
	assert.NoError(t, quiz.Validate())

	empty := NewQuiz("notes.pdf", QuestionTypeOpenEnded, nil, "creator")
	assert.Error(t, empty.Validate())

	noCreator := NewQuiz("notes.pdf", QuestionTypeOpenEnded, questions, "")
	assert.Error(t, noCreator.Validate())
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("teacher")
	assert.NoError(t, err)
	assert.Equal(t, RoleTeacher, role)

	role, err = ParseRole("student")
	assert.NoError(t, err)
	assert.Equal(t, RoleStudent, role)

	_, err = ParseRole("admin")
	assert.Error(t, err)
}
