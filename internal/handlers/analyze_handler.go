package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"campusconnect/eligibility-engine/internal/engine"
	"campusconnect/eligibility-engine/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. Multipart form:
//
//	resume              - the resume file (.txt or .pdf), required
//	required_skills     - comma-separated, priority order, required
//	min_academic_metric - optional float on a 0-10 scale
//	skills_of_interest  - optional comma-separated extra detection terms
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	requiredSkills := splitSkillList(c.FormValue("required_skills"))
	if len(requiredSkills) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "required_skills is required (comma-separated, most important first)",
		})
	}

	req := engine.RequirementSet{RequiredSkills: requiredSkills}
	if raw := c.FormValue("min_academic_metric"); raw != "" {
		metric, err := strconv.ParseFloat(raw, 64)
		if err != nil || metric < 0 || metric > 10 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "min_academic_metric must be a number between 0 and 10",
			})
		}
		req.MinAcademicMetric = &metric
	}

	doc, err := readResumeDocument(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read resume file: %v", err),
		})
	}

	report, err := h.analyzer.Analyze(c.UserContext(), doc, req, splitSkillList(c.FormValue("skills_of_interest")))
	if err != nil {
		return extractionErrorResponse(c, err)
	}

	return c.JSON(report)
}

// readResumeDocument loads the uploaded file into memory. Resumes are
// ephemeral: they exist only for this request and are never written to disk.
func readResumeDocument(fileHeader *multipart.FileHeader) (engine.ResumeDocument, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return engine.ResumeDocument{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return engine.ResumeDocument{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return engine.ResumeDocument{
		Data:      data,
		MediaType: mediaTypeFor(fileHeader),
	}, nil
}

// mediaTypeFor resolves the declared media type, preferring the upload's
// Content-Type header and falling back to the file extension. Unknown types
// pass through unchanged so the extractor can reject them.
func mediaTypeFor(fileHeader *multipart.FileHeader) string {
	contentType := fileHeader.Header.Get("Content-Type")
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(contentType)

	switch contentType {
	case engine.MediaTypeText, engine.MediaTypePDF:
		return contentType
	}

	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".txt":
		return engine.MediaTypeText
	case ".pdf":
		return engine.MediaTypePDF
	}

	if contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

func splitSkillList(raw string) []string {
	var skills []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// extractionErrorResponse maps the extractor's error taxonomy onto HTTP
// statuses. Every kind is user-correctable; none are retried server-side.
func extractionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, engine.ErrNoExtractableText):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "The PDF has no extractable text layer. Please upload a text-based PDF.",
		})
	case errors.Is(err, engine.ErrExtractionTimeout):
		return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
			"error": "Text extraction timed out. Please try a smaller or simpler file.",
		})
	case errors.Is(err, engine.ErrUnsupportedFormat),
		errors.Is(err, engine.ErrInvalidEncoding),
		errors.Is(err, engine.ErrDocumentTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze resume",
		})
	}
}
