package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SkillVocabulary is the engine's matching configuration, loaded from a YAML
// file so the recognized skill list, synonym folding and learning-time
// estimates can change without a rebuild.
type SkillVocabulary struct {
	Skills        []string          `yaml:"skills"`
	Synonyms      map[string]string `yaml:"synonyms"`
	LearningTimes map[string]string `yaml:"learning_times"`
}

func LoadSkillVocabulary(path string) (*SkillVocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var vocab SkillVocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	if len(vocab.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary file %s lists no skills", path)
	}

	return &vocab, nil
}
