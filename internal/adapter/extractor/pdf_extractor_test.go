package extractor

import (
	"context"
	"os"
	"testing"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func TestExtract_RejectsNonPDFBytes(t *testing.T) {
	e := NewPDFExtractor()

	text, err := e.Extract(context.Background(), []byte("this is plain text, not a PDF"))
	assert.Empty(t, text)
	var extractionErr *domain.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestExtract_RejectsEmptyInput(t *testing.T) {
	e := NewPDFExtractor()

	text, err := e.Extract(context.Background(), nil)
	assert.Empty(t, text)
	var extractionErr *domain.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}
