package engine

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

type Extractor interface {
	Extract(ctx context.Context, doc ResumeDocument) (string, error)
}

type extractor struct {
	maxSize int64
	timeout time.Duration
}

// NewExtractor creates a text extractor. Zero values fall back to
// MaxDocumentSize and a 5 second extraction timeout.
func NewExtractor(maxSize int64, timeout time.Duration) Extractor {
	if maxSize <= 0 {
		maxSize = MaxDocumentSize
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &extractor{
		maxSize: maxSize,
		timeout: timeout,
	}
}

// Extract implements Extractor.
func (e *extractor) Extract(ctx context.Context, doc ResumeDocument) (string, error) {
	if int64(len(doc.Data)) > e.maxSize {
		return "", fmt.Errorf("document is %d bytes, limit is %d: %w", len(doc.Data), e.maxSize, ErrDocumentTooLarge)
	}

	switch doc.MediaType {
	case MediaTypeText:
		return extractPlainText(doc.Data)
	case MediaTypePDF:
		return e.extractPDF(ctx, doc.Data)
	default:
		return "", fmt.Errorf("media type %q: %w", doc.MediaType, ErrUnsupportedFormat)
	}
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("plain text resume: %w", ErrInvalidEncoding)
	}
	return NormalizeText(string(data)), nil
}

func (e *extractor) extractPDF(ctx context.Context, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)
	go func() {
		text, err := pdfText(data)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("pdf extraction abandoned after %s: %w", e.timeout, ErrExtractionTimeout)
	case res := <-done:
		return res.text, res.err
	}
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Unparseable PDFs carry no text layer we can reach; same remedy as
		// a scanned document: upload a text-based PDF.
		return "", fmt.Errorf("failed to open PDF: %w", ErrNoExtractableText)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages and keep going with the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF: %w", ErrNoExtractableText)
	}

	return NormalizeText(text), nil
}

// NormalizeText trims lines, drops empty ones and rejoins the remainder.
// Extraction output always passes through here so downstream matching sees a
// consistent whitespace shape regardless of source format.
func NormalizeText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
