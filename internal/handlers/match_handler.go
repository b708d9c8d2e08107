package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"campusconnect/eligibility-engine/internal/engine"
	"campusconnect/eligibility-engine/internal/models"
	"campusconnect/eligibility-engine/internal/repositories"
	"campusconnect/eligibility-engine/internal/services"
)

type MatchHandler struct {
	analyzer    services.AnalyzerService
	matcher     engine.Matcher
	oppRepo     repositories.OpportunityRepository
	maxFileSize int64
}

func NewMatchHandler(
	analyzer services.AnalyzerService,
	matcher engine.Matcher,
	oppRepo repositories.OpportunityRepository,
	maxFileSize int64,
) *MatchHandler {
	return &MatchHandler{
		analyzer:    analyzer,
		matcher:     matcher,
		oppRepo:     oppRepo,
		maxFileSize: maxFileSize,
	}
}

// HandleMatch handles POST /opportunities/match. Multipart form:
//
//	resume    - the resume file (.txt or .pdf), required
//	min_score - optional minimum eligibility score, default 50
//	category  - optional catalog filter (job/internship/fellowship)
//
// The scan is recomputed on every call; neither the profile nor the scores
// are stored.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
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

	minScore := 50
	if raw := c.FormValue("min_score"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "min_score must be an integer between 0 and 100",
			})
		}
		minScore = parsed
	}

	rawCategory := c.FormValue("category")
	if rawCategory != "" && !models.ValidCategory(models.OpportunityCategory(rawCategory)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "category must be one of: job, internship, fellowship",
		})
	}

	opportunities, err := h.loadCatalog(rawCategory)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load opportunity catalog",
		})
	}

	doc, err := readResumeDocument(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read resume file: %v", err),
		})
	}

	profile, err := h.analyzer.BuildProfile(c.UserContext(), doc, nil)
	if err != nil {
		return extractionErrorResponse(c, err)
	}

	catalog := make([]engine.CatalogEntry, 0, len(opportunities))
	byID := make(map[string]models.Opportunity, len(opportunities))
	for _, opp := range opportunities {
		catalog = append(catalog, engine.CatalogEntry{
			ID:           opp.ID,
			Requirements: opp.RequirementSet(),
		})
		byID[opp.ID.String()] = opp
	}

	matches, err := h.matcher.FindMatches(c.UserContext(), profile, catalog, minScore)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Matching was interrupted",
		})
	}

	details := make([]models.OpportunityMatchDetail, 0, len(matches))
	for _, match := range matches {
		details = append(details, models.OpportunityMatchDetail{
			Opportunity: byID[match.OpportunityID.String()],
			Score:       match.Score,
		})
	}

	return c.JSON(models.MatchResponse{
		Profile: profile,
		Matches: details,
	})
}

func (h *MatchHandler) loadCatalog(rawCategory string) ([]models.Opportunity, error) {
	if rawCategory == "" {
		return h.oppRepo.FindAll()
	}
	return h.oppRepo.FindByCategory(models.OpportunityCategory(rawCategory))
}
