package engine

import (
	"regexp"
	"sort"
	"strconv"
)

// CandidateProfile is the structured view of one resume. It is derived once
// per document and treated as immutable afterwards.
type CandidateProfile struct {
	RawText        string   `json:"-"`
	DetectedSkills []string `json:"detected_skills"`
	AcademicMetric *float64 `json:"academic_metric,omitempty"`
}

type ProfileBuilder interface {
	Build(text string, skillsOfInterest ...string) CandidateProfile
}

type profileBuilder struct {
	vocabulary []string
	synonyms   map[string]string // normalized variant -> normalized canonical term
}

// NewProfileBuilder creates a profile builder over a skill vocabulary. The
// synonyms map folds spelling variants into canonical vocabulary terms
// ("js" -> "javascript", "golang" -> "go"); matches through a variant are
// reported under the canonical term.
func NewProfileBuilder(vocabulary []string, synonyms map[string]string) ProfileBuilder {
	normalizedSynonyms := make(map[string]string, len(synonyms))
	for variant, canonical := range synonyms {
		normalizedSynonyms[NormalizeSkill(variant)] = NormalizeSkill(canonical)
	}

	return &profileBuilder{
		vocabulary: vocabulary,
		synonyms:   normalizedSynonyms,
	}
}

// Build implements ProfileBuilder. It never fails: an empty or garbled resume
// yields an empty skill set and an absent academic metric, which is a valid
// analysis outcome rather than an error.
func (b *profileBuilder) Build(text string, skillsOfInterest ...string) CandidateProfile {
	tokens := tokenize(text)

	// Canonical term -> its own spelling plus every synonym variant.
	variants := make(map[string][]string)
	addTerm := func(term string) {
		canonical := NormalizeSkill(term)
		if canonical == "" {
			return
		}
		if mapped, ok := b.synonyms[canonical]; ok {
			canonical = mapped
		}
		if _, ok := variants[canonical]; !ok {
			variants[canonical] = []string{canonical}
		}
	}

	for _, term := range b.vocabulary {
		addTerm(term)
	}
	for _, term := range skillsOfInterest {
		addTerm(term)
	}
	for variant, canonical := range b.synonyms {
		if _, ok := variants[canonical]; ok {
			variants[canonical] = append(variants[canonical], variant)
		}
	}

	detected := make(map[string]bool)
	for canonical, spellings := range variants {
		for _, spelling := range spellings {
			if containsSequence(tokens, tokenize(spelling)) {
				detected[canonical] = true
				break
			}
		}
	}

	skills := make([]string, 0, len(detected))
	for skill := range detected {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return CandidateProfile{
		RawText:        text,
		DetectedSkills: skills,
		AcademicMetric: detectAcademicMetric(text),
	}
}

// academicMetricRe finds a CGPA/GPA label followed by a numeric value on the
// same line, tolerating separators like ":", "-" or "of" in between.
var academicMetricRe = regexp.MustCompile(`(?i)\bC?GPA\b[^0-9\n]{0,20}(\d+(?:\.\d+)?)`)

// detectAcademicMetric returns the first labeled value in [0, 10], or nil when
// the resume states none. Absence is distinct from a zero metric.
func detectAcademicMetric(text string) *float64 {
	for _, m := range academicMetricRe.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if value >= 0 && value <= 10 {
			return &value
		}
	}
	return nil
}
