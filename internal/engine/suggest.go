package engine

import "fmt"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is one ranked improvement recommendation derived from a missing
// required skill.
type Suggestion struct {
	Area                  string   `json:"area"`
	Text                  string   `json:"text"`
	Priority              Priority `json:"priority"`
	EstimatedLearningTime string   `json:"estimated_learning_time,omitempty"`
}

type SuggestionGenerator interface {
	// Generate expects missingSkills in requirement-priority order, i.e.
	// EligibilityResult.MissingSkills as produced by the Scorer.
	Generate(missingSkills []string, score int) []Suggestion
}

type suggestionGenerator struct {
	learningTimes map[string]string
	fallbackTime  string
}

// NewSuggestionGenerator creates a generator backed by a skill -> learning
// time lookup. Skills absent from the lookup fall back to "2-4 weeks".
func NewSuggestionGenerator(learningTimes map[string]string) SuggestionGenerator {
	normalized := make(map[string]string, len(learningTimes))
	for skill, duration := range learningTimes {
		normalized[NormalizeSkill(skill)] = duration
	}

	return &suggestionGenerator{
		learningTimes: normalized,
		fallbackTime:  "2-4 weeks",
	}
}

// Generate implements SuggestionGenerator. Bucketing over the ordered missing
// skills: the first ceil(n/3) are high priority; of the remainder, the first
// half (rounded up) are medium and the rest low. Posting authors list the
// skills they care about most first, so earlier entries rank higher.
func (g *suggestionGenerator) Generate(missingSkills []string, score int) []Suggestion {
	suggestions := make([]Suggestion, 0, len(missingSkills))
	if len(missingSkills) == 0 {
		// Perfect match. The caller renders this state distinctly.
		return suggestions
	}

	n := len(missingSkills)
	highCount := (n + 2) / 3
	mediumCount := (n - highCount + 1) / 2

	for i, skill := range missingSkills {
		var priority Priority
		switch {
		case i < highCount:
			priority = PriorityHigh
		case i < highCount+mediumCount:
			priority = PriorityMedium
		default:
			priority = PriorityLow
		}

		suggestions = append(suggestions, Suggestion{
			Area:                  skill,
			Text:                  suggestionText(skill, priority, score),
			Priority:              priority,
			EstimatedLearningTime: g.learningTime(skill),
		})
	}

	return suggestions
}

func (g *suggestionGenerator) learningTime(skill string) string {
	if duration, ok := g.learningTimes[NormalizeSkill(skill)]; ok {
		return duration
	}
	return g.fallbackTime
}

func suggestionText(skill string, priority Priority, score int) string {
	switch priority {
	case PriorityHigh:
		if score < 50 {
			return fmt.Sprintf("Focus on %s first: it is one of the most emphasized requirements you are missing, and closing it will move your score the most.", skill)
		}
		return fmt.Sprintf("Prioritize %s: postings list it among their top requirements. Build a small project with it and feature it on your resume.", skill)
	case PriorityMedium:
		return fmt.Sprintf("Strengthen %s through an online course or guided tutorial, then back it up with a project entry.", skill)
	default:
		return fmt.Sprintf("Plan to pick up %s over time; it rounds out this posting's requirements.", skill)
	}
}
