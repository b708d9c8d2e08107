package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVocabFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSkillVocabulary(t *testing.T) {
	path := writeVocabFile(t, `
skills:
  - go
  - python
  - machine learning
synonyms:
  golang: go
learning_times:
  python: 4-6 weeks
`)

	vocab, err := LoadSkillVocabulary(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "python", "machine learning"}, vocab.Skills)
	assert.Equal(t, "go", vocab.Synonyms["golang"])
	assert.Equal(t, "4-6 weeks", vocab.LearningTimes["python"])
}

func TestLoadSkillVocabulary_EmptySkills(t *testing.T) {
	path := writeVocabFile(t, "skills: []\n")

	_, err := LoadSkillVocabulary(path)

	assert.ErrorContains(t, err, "no skills")
}

func TestLoadSkillVocabulary_MissingFile(t *testing.T) {
	_, err := LoadSkillVocabulary(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorContains(t, err, "failed to read")
}

func TestLoadSkillVocabulary_InvalidYAML(t *testing.T) {
	path := writeVocabFile(t, "skills: [unclosed")

	_, err := LoadSkillVocabulary(path)

	assert.ErrorContains(t, err, "failed to parse")
}
