package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const (
	// maxPromptChars bounds the extracted text sent per request. The cut
	// is a plain character boundary, not a semantic one; long documents
	// are not fully covered.
	maxPromptChars = 4000
	numQuestions   = 5
	temperature    = 0.3
)

const multipleChoicePromptTemplate = `You are an educational assistant. Based on the following course material,
generate %d multiple-choice questions. Return JSON in this exact structure:
[
  {
    "id": "1",
    "question": "What is the primary purpose of photosynthesis?",
    "options": ["To produce oxygen", "To convert light energy into chemical energy", "To absorb water", "To create chlorophyll"],
    "correctAnswer": 1,
    "explanation": "Photosynthesis converts light energy into chemical energy stored in glucose.",
    "type": "multiple-choice"
  }
]

Text:
%s`

const openEndedPromptTemplate = `You are an educational assistant. Based on the following course material,
generate %d open-ended questions. Return JSON in this exact structure:
[
  {
    "id": "1",
    "question": "Explain the process of photosynthesis and its importance.",
    "options": [],
    "correctAnswer": 0,
    "explanation": "A comprehensive answer should include: the conversion of light energy to chemical energy, the role of chlorophyll, and the importance for ecosystems.",
    "type": "open-ended"
  }
]

Text:
%s`

// LLMQuestionGenerator implements domain.QuestionGenerator on top of a
// langchaingo model. The model client is constructed once at process
// start and injected, so tests can substitute a double.
type LLMQuestionGenerator struct {
	llm llms.Model
}

// NewLLMQuestionGenerator creates a new LLMQuestionGenerator.
func NewLLMQuestionGenerator(llm llms.Model) *LLMQuestionGenerator {
	return &LLMQuestionGenerator{llm: llm}
}

// Generate asks the model for questions in the requested style and
// parses the response. It returns a *domain.GenerationError when the
// call fails, the response is unparseable, or no question survives
// validation. No retry is attempted.
func (g *LLMQuestionGenerator) Generate(ctx context.Context, text string, questionType domain.QuestionType) ([]domain.GeneratedQuestion, error) {
	prompt := BuildPrompt(text, questionType)

	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(temperature))
	if err != nil {
		return nil, domain.NewGenerationError("generation service call failed", err)
	}

	questions, err := parseQuestions(response, questionType)
	if err != nil {
		logger.Get().Error("Failed to parse generation response",
			zap.Error(err),
			zap.String("question_type", string(questionType)))
		return nil, err
	}

	logger.Get().Info("Generated questions from document text",
		zap.Int("count", len(questions)),
		zap.String("question_type", string(questionType)))
	return questions, nil
}

// BuildPrompt constructs the style-specific instruction around the
// (truncated) document text. Exposed for prompt-shape tests.
func BuildPrompt(text string, questionType domain.QuestionType) string {
	if runes := []rune(text); len(runes) > maxPromptChars {
		text = string(runes[:maxPromptChars])
	}
	if questionType == domain.QuestionTypeOpenEnded {
		return fmt.Sprintf(openEndedPromptTemplate, numQuestions, text)
	}
	return fmt.Sprintf(multipleChoicePromptTemplate, numQuestions, text)
}

// parseQuestions decodes the model's textual response into validated
// questions. Questions missing required fields are dropped; an empty
// survivor set is a generation failure, never an empty success.
func parseQuestions(response string, questionType domain.QuestionType) ([]domain.GeneratedQuestion, error) {
	raw := extractJSONArray(response)
	if raw == "" {
		return nil, domain.NewGenerationError("response contains no JSON array", nil)
	}

	var decoded []domain.GeneratedQuestion
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, domain.NewGenerationError("response is not valid question JSON", err)
	}

	questions := make([]domain.GeneratedQuestion, 0, len(decoded))
	for i := range decoded {
		q := decoded[i]
		if q.Type == "" {
			q.Type = questionType
		}
		if !q.IsWellFormed() {
			logger.Get().Warn("Dropping malformed generated question",
				zap.String("id", q.ID),
				zap.String("question", q.Question))
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, domain.NewGenerationError("no well-formed questions in response", nil)
	}
	return questions, nil
}

// extractJSONArray strips markdown code fences and surrounding prose,
// returning the text between the first '[' and the last ']'.
func extractJSONArray(response string) string {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return cleaned[start : end+1]
}

var _ domain.QuestionGenerator = (*LLMQuestionGenerator)(nil)
