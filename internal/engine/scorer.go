package engine

import (
	"math"
	"strings"
)

// RequirementSet is one posting's stated requirements. RequiredSkills is
// ordered by priority, most important first; callers must preserve the
// posting author's ordering because suggestion priorities derive from it.
type RequirementSet struct {
	RequiredSkills    []string `json:"required_skills"`
	MinAcademicMetric *float64 `json:"min_academic_metric,omitempty"`
}

// EligibilityResult is the outcome of scoring one profile against one
// requirement set. MatchedSkills and MissingSkills partition the normalized
// required skills and both keep the requirement ordering.
type EligibilityResult struct {
	Score            int      `json:"score"`
	MatchedSkills    []string `json:"matched_skills"`
	MissingSkills    []string `json:"missing_skills"`
	AcademicMetricOK bool     `json:"academic_metric_ok"`
	Eligible         bool     `json:"eligible"`
	Feedback         string   `json:"feedback"`
}

// ScorerConfig carries the tunables of the eligibility computation.
type ScorerConfig struct {
	// EligibilityThreshold is inclusive: score >= threshold means eligible.
	EligibilityThreshold int
	// GatePassMultiplier applies when an academic gate exists and passes
	// (or cannot be verified); GateFailMultiplier applies when it fails.
	GatePassMultiplier float64
	GateFailMultiplier float64
}

// DefaultScorerConfig returns the stock tuning: threshold 50, pass x0.9,
// fail x0.6.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		EligibilityThreshold: 50,
		GatePassMultiplier:   0.9,
		GateFailMultiplier:   0.6,
	}
}

type Scorer interface {
	Score(profile CandidateProfile, req RequirementSet) EligibilityResult
}

type scorer struct {
	cfg ScorerConfig
}

// NewScorer creates a scorer. Zero-valued config fields fall back to
// DefaultScorerConfig.
func NewScorer(cfg ScorerConfig) Scorer {
	defaults := DefaultScorerConfig()
	if cfg.EligibilityThreshold <= 0 {
		cfg.EligibilityThreshold = defaults.EligibilityThreshold
	}
	if cfg.GatePassMultiplier <= 0 {
		cfg.GatePassMultiplier = defaults.GatePassMultiplier
	}
	if cfg.GateFailMultiplier <= 0 {
		cfg.GateFailMultiplier = defaults.GateFailMultiplier
	}
	return &scorer{cfg: cfg}
}

// Score implements Scorer. It is a pure function of its inputs: identical
// calls always yield identical results.
func (s *scorer) Score(profile CandidateProfile, req RequirementSet) EligibilityResult {
	required := dedupeNormalized(req.RequiredSkills)

	detected := make(map[string]bool, len(profile.DetectedSkills))
	for _, skill := range profile.DetectedSkills {
		detected[NormalizeSkill(skill)] = true
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if detected[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	base := 100.0
	if len(required) > 0 {
		base = math.Round(float64(len(matched)) / float64(len(required)) * 100)
	}

	gateExists := req.MinAcademicMetric != nil
	academicOK := true
	academicVerified := true
	if gateExists {
		if profile.AcademicMetric != nil {
			academicOK = *profile.AcademicMetric >= *req.MinAcademicMetric
		} else {
			// Unknown metric: do not penalize, but flag it in the feedback.
			academicVerified = false
		}
	}

	multiplier := 1.0
	if gateExists {
		if academicOK {
			multiplier = s.cfg.GatePassMultiplier
		} else {
			multiplier = s.cfg.GateFailMultiplier
		}
	}

	score := int(math.Round(base * multiplier))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return EligibilityResult{
		Score:            score,
		MatchedSkills:    matched,
		MissingSkills:    missing,
		AcademicMetricOK: academicOK,
		Eligible:         score >= s.cfg.EligibilityThreshold,
		Feedback:         buildFeedback(score, academicOK, academicVerified),
	}
}

// dedupeNormalized normalizes skill terms and drops duplicates and empties
// while preserving the original ordering.
func dedupeNormalized(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		normalized := NormalizeSkill(skill)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

func buildFeedback(score int, academicOK, academicVerified bool) string {
	var parts []string

	switch {
	case score >= 80:
		parts = append(parts, "Strong match: your profile covers most of the stated requirements.")
	case score >= 50:
		parts = append(parts, "Partial match: some required skills are missing.")
	default:
		parts = append(parts, "Low match: there are significant gaps against this posting.")
	}

	if !academicOK {
		parts = append(parts, "Your academic metric is below the posting's minimum.")
	}
	if !academicVerified {
		parts = append(parts, "The academic requirement could not be verified from your resume.")
	}

	return strings.Join(parts, " ")
}
