package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EmptyMissingSkills(t *testing.T) {
	g := NewSuggestionGenerator(nil)

	suggestions := g.Generate(nil, 100)

	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestGenerate_AreasMatchMissingSkillsExactly(t *testing.T) {
	g := NewSuggestionGenerator(nil)

	missing := []string{"react", "docker", "sql", "aws", "terraform"}
	suggestions := g.Generate(missing, 20)

	require.Len(t, suggestions, len(missing))
	areas := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		areas = append(areas, s.Area)
	}
	assert.Equal(t, missing, areas)
}

func TestGenerate_PriorityBuckets(t *testing.T) {
	g := NewSuggestionGenerator(nil)

	tests := []struct {
		name    string
		missing []string
		want    []Priority
	}{
		{
			name:    "single skill is high",
			missing: []string{"go"},
			want:    []Priority{PriorityHigh},
		},
		{
			name:    "two skills split high and medium",
			missing: []string{"go", "sql"},
			want:    []Priority{PriorityHigh, PriorityMedium},
		},
		{
			name:    "three skills one per bucket",
			missing: []string{"go", "sql", "docker"},
			want:    []Priority{PriorityHigh, PriorityMedium, PriorityLow},
		},
		{
			name:    "five skills ceil split",
			missing: []string{"go", "sql", "docker", "react", "aws"},
			want:    []Priority{PriorityHigh, PriorityHigh, PriorityMedium, PriorityMedium, PriorityLow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := g.Generate(tt.missing, 40)
			require.Len(t, suggestions, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, suggestions[i].Priority, "index %d", i)
			}
		})
	}
}

func TestGenerate_OrderedHighToLow(t *testing.T) {
	g := NewSuggestionGenerator(nil)

	rank := map[Priority]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
	suggestions := g.Generate([]string{"a", "b", "c", "d", "e", "f", "g"}, 10)

	for i := 1; i < len(suggestions); i++ {
		assert.LessOrEqual(t, rank[suggestions[i-1].Priority], rank[suggestions[i].Priority])
	}
}

func TestGenerate_LearningTimeLookup(t *testing.T) {
	g := NewSuggestionGenerator(map[string]string{
		"Docker": "1-2 weeks",
	})

	suggestions := g.Generate([]string{"docker", "zig"}, 50)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "1-2 weeks", suggestions[0].EstimatedLearningTime)
	// Unrecognized skills fall back to the generic estimate.
	assert.Equal(t, "2-4 weeks", suggestions[1].EstimatedLearningTime)
}
