package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVocabulary = []string{
	"go", "python", "java", "javascript", "c++", "node.js",
	"sql", "docker", "react", "machine learning",
}

var testSynonyms = map[string]string{
	"golang": "go",
	"js":     "javascript",
}

func TestBuild_DetectsWholeWordsOnly(t *testing.T) {
	b := NewProfileBuilder(testVocabulary, nil)

	profile := b.Build("Built services in Java and JavaScript with Docker.")

	assert.Contains(t, profile.DetectedSkills, "java")
	assert.Contains(t, profile.DetectedSkills, "javascript")
	assert.Contains(t, profile.DetectedSkills, "docker")

	// "java" inside "javascript" alone must not count as java.
	onlyJS := b.Build("Five years of JavaScript experience.")
	assert.Contains(t, onlyJS.DetectedSkills, "javascript")
	assert.NotContains(t, onlyJS.DetectedSkills, "java")
}

func TestBuild_DetectsPhrasesAndSpecialTokens(t *testing.T) {
	b := NewProfileBuilder(testVocabulary, nil)

	profile := b.Build("Coursework: machine learning, C++ and Node.js backends")

	assert.Contains(t, profile.DetectedSkills, "machine learning")
	assert.Contains(t, profile.DetectedSkills, "c++")
	assert.Contains(t, profile.DetectedSkills, "node.js")
}

func TestBuild_CaseInsensitiveAndDeduplicated(t *testing.T) {
	b := NewProfileBuilder(testVocabulary, nil)

	profile := b.Build("PYTHON python Python projects with SQL and sql queries")

	assert.Equal(t, []string{"python", "sql"}, profile.DetectedSkills)
}

func TestBuild_SynonymsFoldIntoCanonicalTerm(t *testing.T) {
	b := NewProfileBuilder(testVocabulary, testSynonyms)

	profile := b.Build("Wrote microservices in Golang and frontends in JS.")

	assert.Contains(t, profile.DetectedSkills, "go")
	assert.Contains(t, profile.DetectedSkills, "javascript")
	assert.NotContains(t, profile.DetectedSkills, "golang")
	assert.NotContains(t, profile.DetectedSkills, "js")
}

func TestBuild_SkillsOfInterestExtendVocabulary(t *testing.T) {
	b := NewProfileBuilder(testVocabulary, nil)

	profile := b.Build("Deployed workloads on Kubernetes.", "kubernetes")

	assert.Contains(t, profile.DetectedSkills, "kubernetes")
}

func TestBuild_AcademicMetric(t *testing.T) {
	b := NewProfileBuilder(testVocabulary, nil)

	tests := []struct {
		name string
		text string
		want *float64
	}{
		{name: "cgpa with colon", text: "CGPA: 8.5 out of 10", want: floatPtr(8.5)},
		{name: "gpa lowercase", text: "gpa - 3.7", want: floatPtr(3.7)},
		{name: "first occurrence wins", text: "CGPA: 7.1\nEarlier GPA: 9.0", want: floatPtr(7.1)},
		{name: "out of range skipped", text: "GPA: 88 percentile, CGPA: 8.1", want: floatPtr(8.1)},
		{name: "absent", text: "No academic record listed.", want: nil},
		{name: "zero is a value", text: "CGPA: 0", want: floatPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := b.Build(tt.text)
			if tt.want == nil {
				assert.Nil(t, profile.AcademicMetric)
				return
			}
			require.NotNil(t, profile.AcademicMetric)
			assert.InDelta(t, *tt.want, *profile.AcademicMetric, 0.001)
		})
	}
}

func TestBuild_EmptyTextNeverFails(t *testing.T) {
	b := NewProfileBuilder(testVocabulary, testSynonyms)

	profile := b.Build("")

	assert.Empty(t, profile.DetectedSkills)
	assert.Nil(t, profile.AcademicMetric)
}
