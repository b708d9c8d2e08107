// Package engine implements the resume eligibility and opportunity-matching
// core: text extraction, profile building, requirement scoring, suggestion
// generation and catalog matching. Everything in this package is free of
// framework and storage dependencies so it can be driven from any adapter.
package engine

import "errors"

// Supported resume media types.
const (
	MediaTypeText = "text/plain"
	MediaTypePDF  = "application/pdf"
)

// MaxDocumentSize is the default upper bound on resume documents.
const MaxDocumentSize = 5 << 20 // 5 MB

// Extraction failures. All of them are terminal and user-correctable; the
// caller is expected to prompt for a re-upload rather than retry.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrDocumentTooLarge  = errors.New("document exceeds maximum size")
	ErrInvalidEncoding   = errors.New("document is not valid UTF-8")
	ErrNoExtractableText = errors.New("document has no extractable text layer")
	ErrExtractionTimeout = errors.New("text extraction timed out")
)

// ResumeDocument is the raw uploaded resume. It lives only for the duration
// of a single analysis request and is never persisted by the engine.
type ResumeDocument struct {
	Data      []byte
	MediaType string
}
