package models

import (
	"time"

	"github.com/google/uuid"

	"campusconnect/eligibility-engine/internal/engine"
)

type OpportunityCategory string

const (
	CategoryJob        OpportunityCategory = "job"
	CategoryInternship OpportunityCategory = "internship"
	CategoryFellowship OpportunityCategory = "fellowship"
)

// Opportunity is one posting in the campus catalog. RequiredSkills keeps the
// posting author's ordering: most important skill first, which drives
// suggestion priorities downstream.
type Opportunity struct {
	ID                uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title             string              `gorm:"type:text;not null" json:"title"`
	Organization      string              `gorm:"type:text" json:"organization"`
	Category          OpportunityCategory `gorm:"type:text;not null;default:'job'" json:"category"`
	RequiredSkills    []string            `gorm:"serializer:json" json:"required_skills"`
	MinAcademicMetric *float64            `gorm:"type:decimal(4,2)" json:"min_academic_metric,omitempty"`
	CreatedAt         time.Time           `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time           `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Opportunity) TableName() string {
	return "opportunities"
}

// RequirementSet converts the posting into the engine's requirement shape.
func (o *Opportunity) RequirementSet() engine.RequirementSet {
	return engine.RequirementSet{
		RequiredSkills:    o.RequiredSkills,
		MinAcademicMetric: o.MinAcademicMetric,
	}
}

// ValidCategory reports whether c is one of the known posting categories.
func ValidCategory(c OpportunityCategory) bool {
	switch c {
	case CategoryJob, CategoryInternship, CategoryFellowship:
		return true
	}
	return false
}
