package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campusconnect/eligibility-engine/internal/models"
	"campusconnect/eligibility-engine/internal/repositories"
)

type OpportunityHandler struct {
	oppRepo repositories.OpportunityRepository
}

func NewOpportunityHandler(oppRepo repositories.OpportunityRepository) *OpportunityHandler {
	return &OpportunityHandler{
		oppRepo: oppRepo,
	}
}

// HandleCreate handles POST /opportunities
func (h *OpportunityHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateOpportunityRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	if len(req.RequiredSkills) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "required_skills is required (most important first)",
		})
	}

	if req.Category == "" {
		req.Category = models.CategoryJob
	}
	if !models.ValidCategory(req.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "category must be one of: job, internship, fellowship",
		})
	}

	if req.MinAcademicMetric != nil && (*req.MinAcademicMetric < 0 || *req.MinAcademicMetric > 10) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "min_academic_metric must be between 0 and 10",
		})
	}

	opportunity := &models.Opportunity{
		ID:                uuid.New(),
		Title:             req.Title,
		Organization:      req.Organization,
		Category:          req.Category,
		RequiredSkills:    req.RequiredSkills,
		MinAcademicMetric: req.MinAcademicMetric,
	}

	if err := h.oppRepo.Create(opportunity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create opportunity",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(opportunity)
}

// HandleList handles GET /opportunities
func (h *OpportunityHandler) HandleList(c *fiber.Ctx) error {
	category := models.OpportunityCategory(c.Query("category"))

	var (
		opportunities []models.Opportunity
		err           error
	)
	if category == "" {
		opportunities, err = h.oppRepo.FindAll()
	} else if models.ValidCategory(category) {
		opportunities, err = h.oppRepo.FindByCategory(category)
	} else {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "category must be one of: job, internship, fellowship",
		})
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list opportunities",
		})
	}

	return c.JSON(fiber.Map{
		"opportunities": opportunities,
	})
}

// HandleGet handles GET /opportunities/:id
func (h *OpportunityHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid opportunity ID format",
		})
	}

	opportunity, err := h.oppRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Opportunity not found",
		})
	}

	return c.JSON(opportunity)
}

// HandleDelete handles DELETE /opportunities/:id
func (h *OpportunityHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid opportunity ID format",
		})
	}

	if err := h.oppRepo.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Opportunity not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
