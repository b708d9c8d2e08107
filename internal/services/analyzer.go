package services

import (
	"context"
	"log"

	"campusconnect/eligibility-engine/internal/engine"
)

// AnalysisReport bundles everything one analysis produces. It is returned to
// the caller and never stored; analysis history is not kept.
type AnalysisReport struct {
	Profile     engine.CandidateProfile  `json:"profile"`
	Result      engine.EligibilityResult `json:"result"`
	Suggestions []engine.Suggestion      `json:"suggestions"`
}

type AnalyzerService interface {
	Analyze(ctx context.Context, doc engine.ResumeDocument, req engine.RequirementSet, skillsOfInterest []string) (*AnalysisReport, error)
	BuildProfile(ctx context.Context, doc engine.ResumeDocument, skillsOfInterest []string) (engine.CandidateProfile, error)
}

type analyzerService struct {
	extractor engine.Extractor
	profiles  engine.ProfileBuilder
	scorer    engine.Scorer
	suggester engine.SuggestionGenerator
}

func NewAnalyzerService(
	extractor engine.Extractor,
	profiles engine.ProfileBuilder,
	scorer engine.Scorer,
	suggester engine.SuggestionGenerator,
) AnalyzerService {
	return &analyzerService{
		extractor: extractor,
		profiles:  profiles,
		scorer:    scorer,
		suggester: suggester,
	}
}

// Analyze implements AnalyzerService. Extraction failures abort the pipeline
// and surface verbatim; no partial profile is built from a failed extraction.
func (a *analyzerService) Analyze(ctx context.Context, doc engine.ResumeDocument, req engine.RequirementSet, skillsOfInterest []string) (*AnalysisReport, error) {
	profile, err := a.BuildProfile(ctx, doc, skillsOfInterest)
	if err != nil {
		return nil, err
	}

	result := a.scorer.Score(profile, req)
	suggestions := a.suggester.Generate(result.MissingSkills, result.Score)

	log.Printf("📊 Analysis complete: score=%d eligible=%t matched=%d missing=%d\n",
		result.Score, result.Eligible, len(result.MatchedSkills), len(result.MissingSkills))

	return &AnalysisReport{
		Profile:     profile,
		Result:      result,
		Suggestions: suggestions,
	}, nil
}

// BuildProfile implements AnalyzerService.
func (a *analyzerService) BuildProfile(ctx context.Context, doc engine.ResumeDocument, skillsOfInterest []string) (engine.CandidateProfile, error) {
	text, err := a.extractor.Extract(ctx, doc)
	if err != nil {
		return engine.CandidateProfile{}, err
	}

	return a.profiles.Build(text, skillsOfInterest...), nil
}
