package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestScore_PartialSkillMatchNoGate(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	profile := CandidateProfile{DetectedSkills: []string{"python", "sql"}}
	req := RequirementSet{RequiredSkills: []string{"python", "react", "sql", "docker"}}

	result := s.Score(profile, req)

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, []string{"python", "sql"}, result.MatchedSkills)
	assert.Equal(t, []string{"react", "docker"}, result.MissingSkills)
	assert.True(t, result.AcademicMetricOK)
	// Threshold 50 is inclusive: 50 >= 50.
	assert.True(t, result.Eligible)
}

func TestScore_ThresholdIsInclusive(t *testing.T) {
	s := NewScorer(ScorerConfig{EligibilityThreshold: 50})

	profile := CandidateProfile{DetectedSkills: []string{"go"}}

	atThreshold := s.Score(profile, RequirementSet{RequiredSkills: []string{"go", "rust"}})
	assert.Equal(t, 50, atThreshold.Score)
	assert.True(t, atThreshold.Eligible)

	belowThreshold := s.Score(profile, RequirementSet{RequiredSkills: []string{"go", "rust", "c++"}})
	assert.Equal(t, 33, belowThreshold.Score)
	assert.False(t, belowThreshold.Eligible)
}

func TestScore_AcademicGateFailure(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	profile := CandidateProfile{
		DetectedSkills: []string{"python", "sql"},
		AcademicMetric: floatPtr(7.2),
	}
	req := RequirementSet{
		RequiredSkills:    []string{"python", "sql"},
		MinAcademicMetric: floatPtr(8.0),
	}

	result := s.Score(profile, req)

	// All skills matched (base 100), gate fails: 100 * 0.6 = 60.
	assert.Equal(t, 60, result.Score)
	assert.False(t, result.AcademicMetricOK)
	assert.Contains(t, result.Feedback, "below the posting's minimum")
}

func TestScore_AcademicGatePassAppliesMultiplier(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	profile := CandidateProfile{
		DetectedSkills: []string{"python"},
		AcademicMetric: floatPtr(9.1),
	}
	req := RequirementSet{
		RequiredSkills:    []string{"python"},
		MinAcademicMetric: floatPtr(8.0),
	}

	result := s.Score(profile, req)

	assert.Equal(t, 90, result.Score)
	assert.True(t, result.AcademicMetricOK)
}

func TestScore_UnknownAcademicMetricNotPenalized(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	profile := CandidateProfile{DetectedSkills: []string{"python"}}
	req := RequirementSet{
		RequiredSkills:    []string{"python"},
		MinAcademicMetric: floatPtr(8.0),
	}

	result := s.Score(profile, req)

	// Same as a passing gate, but flagged as unverified in the feedback.
	assert.Equal(t, 90, result.Score)
	assert.True(t, result.AcademicMetricOK)
	assert.Contains(t, result.Feedback, "could not be verified")
}

func TestScore_EmptyRequirements(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	result := s.Score(CandidateProfile{}, RequirementSet{})

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Eligible)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestScore_EmptyProfile(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	result := s.Score(CandidateProfile{}, RequirementSet{RequiredSkills: []string{"go", "sql"}})

	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Eligible)
	assert.Equal(t, []string{"go", "sql"}, result.MissingSkills)
}

func TestScore_PartitionInvariant(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	profile := CandidateProfile{DetectedSkills: []string{"go", "docker", "aws"}}
	req := RequirementSet{RequiredSkills: []string{"Go", "SQL", "docker", "react", "go"}}

	result := s.Score(profile, req)

	// Duplicates and case variants collapse; matched and missing partition
	// the normalized requirement set exactly.
	combined := append(append([]string{}, result.MatchedSkills...), result.MissingSkills...)
	assert.ElementsMatch(t, []string{"go", "sql", "docker", "react"}, combined)

	matchedSet := make(map[string]bool)
	for _, skill := range result.MatchedSkills {
		matchedSet[skill] = true
	}
	for _, skill := range result.MissingSkills {
		assert.False(t, matchedSet[skill], "skill %q in both matched and missing", skill)
	}
}

func TestScore_Idempotent(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	profile := CandidateProfile{
		DetectedSkills: []string{"python", "sql"},
		AcademicMetric: floatPtr(8.5),
	}
	req := RequirementSet{
		RequiredSkills:    []string{"python", "react", "sql"},
		MinAcademicMetric: floatPtr(7.0),
	}

	first := s.Score(profile, req)
	second := s.Score(profile, req)

	assert.Equal(t, first, second)
}

func TestScore_MonotonicInDetectedSkills(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	req := RequirementSet{RequiredSkills: []string{"go", "sql", "docker", "react"}}

	detected := []string{}
	previous := -1
	for _, skill := range req.RequiredSkills {
		detected = append(detected, skill)
		result := s.Score(CandidateProfile{DetectedSkills: detected}, req)
		require.GreaterOrEqual(t, result.Score, previous)
		previous = result.Score
	}
	assert.Equal(t, 100, previous)
}

func TestScore_SkillUniverseClosedToRequirements(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())

	profile := CandidateProfile{DetectedSkills: []string{"go", "kubernetes", "terraform"}}
	req := RequirementSet{RequiredSkills: []string{"go"}}

	result := s.Score(profile, req)

	// Profile skills outside the requirement set never appear in the result.
	assert.Equal(t, []string{"go"}, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, 100, result.Score)
}
