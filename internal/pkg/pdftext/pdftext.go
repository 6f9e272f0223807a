package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// minExtractedLength guards against scanned or image-only PDFs that parse
// but yield no usable text.
const minExtractedLength = 20

// Extract pulls the plain text out of a PDF document.
func Extract(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	if len(text) < minExtractedLength {
		return "", fmt.Errorf("extracted text too short (%d chars), document may be scanned", len(text))
	}

	return text, nil
}
