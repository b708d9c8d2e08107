package models

import "campusconnect/eligibility-engine/internal/engine"

type CreateOpportunityRequest struct {
	Title             string              `json:"title" validate:"required"`
	Organization      string              `json:"organization"`
	Category          OpportunityCategory `json:"category"`
	RequiredSkills    []string            `json:"required_skills" validate:"required"`
	MinAcademicMetric *float64            `json:"min_academic_metric,omitempty"`
}

// OpportunityMatchDetail joins a matcher result with posting metadata for
// rendering.
type OpportunityMatchDetail struct {
	Opportunity Opportunity `json:"opportunity"`
	Score       int         `json:"score"`
}

type MatchResponse struct {
	Profile engine.CandidateProfile  `json:"profile"`
	Matches []OpportunityMatchDetail `json:"matches"`
}
