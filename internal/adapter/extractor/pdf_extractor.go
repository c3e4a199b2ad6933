package extractor

import (
	"bytes"
	"context"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// PDFExtractor implements domain.TextExtractor for PDF documents.
// The document is validated with pdfcpu before page text is read; a
// page that fails to yield text contributes an empty string rather
// than failing the whole document.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDFExtractor.
func NewPDFExtractor() domain.TextExtractor {
	return &PDFExtractor{}
}

// Extract returns the concatenated plain text of all pages in document
// order, trimmed of leading/trailing whitespace.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if _, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration()); err != nil {
		return "", domain.NewExtractionError("document is not a parseable PDF", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.NewExtractionError("failed to open PDF for text extraction", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", domain.NewExtractionError("extraction cancelled", err)
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// One unreadable page must not abort the document.
			logger.Get().Warn("Failed to extract text from page",
				zap.Int("page", i),
				zap.Error(err))
			continue
		}
		sb.WriteString(text)
	}

	return strings.TrimSpace(sb.String()), nil
}
