package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusconnect/eligibility-engine/internal/models"
)

type OpportunityRepository interface {
	Create(opportunity *models.Opportunity) error
	FindByID(id uuid.UUID) (*models.Opportunity, error)
	FindAll() ([]models.Opportunity, error)
	FindByCategory(category models.OpportunityCategory) ([]models.Opportunity, error)
	Delete(id uuid.UUID) error
}

type opportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

// Create implements OpportunityRepository.
func (r *opportunityRepository) Create(opportunity *models.Opportunity) error {
	if err := r.db.Create(opportunity).Error; err != nil {
		return fmt.Errorf("failed to create opportunity: %w", err)
	}

	return nil
}

// FindByID implements OpportunityRepository.
func (r *opportunityRepository) FindByID(id uuid.UUID) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	if err := r.db.Where("id = ?", id).First(&opportunity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("opportunity not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}

	return &opportunity, nil
}

// FindAll implements OpportunityRepository. Postings come back in creation
// order so the matcher's tie-break on catalog order is deterministic.
func (r *opportunityRepository) FindAll() ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	if err := r.db.Order("created_at ASC").Find(&opportunities).Error; err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	return opportunities, nil
}

// FindByCategory implements OpportunityRepository.
func (r *opportunityRepository) FindByCategory(category models.OpportunityCategory) ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	err := r.db.
		Where("category = ?", category).
		Order("created_at ASC").
		Find(&opportunities).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities by category: %w", err)
	}

	return opportunities, nil
}

// Delete implements OpportunityRepository.
func (r *opportunityRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Opportunity{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete opportunity: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("opportunity not found")
	}

	return nil
}
