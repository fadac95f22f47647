package textextract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
)

const (
	mimeTextPlain = "text/plain"
	mimePDF       = "application/pdf"
)

type extractor struct{}

// NewExtractor reads TXT natively and converts PDF to text. DOC/DOCX are
// stored but not extractable.
func NewExtractor() service.TextExtractor {
	return extractor{}
}

func (extractor) ExtractText(contentType string, data []byte) (string, error) {
	switch contentType {
	case mimeTextPlain:
		return string(data), nil
	case mimePDF:
		return pdfToText(data)
	default:
		return "", fmt.Errorf("%w: %s", service.ErrUnsupportedFormat, contentType)
	}
}

func pdfToText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	var sb strings.Builder
	for page := 1; page <= reader.NumPage(); page++ {
		p := reader.Page(page)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read PDF page %d: %w", page, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
