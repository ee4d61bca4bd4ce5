package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillMatchPct(t *testing.T) {
	tests := []struct {
		name        string
		skills      []string
		description string
		want        float64
	}{
		{
			name:        "full and no credit",
			skills:      []string{"Python", "Docker"},
			description: "We need a python developer",
			want:        50.0,
		},
		{
			name:        "partial credit on a token",
			skills:      []string{"Machine Learning"},
			description: "You will build learning systems.",
			want:        50.0,
		},
		{
			name:        "short tokens earn nothing",
			skills:      []string{"ab xyz"},
			description: "ab ab ab",
			want:        0,
		},
		{
			name:        "punctuation is normalized",
			skills:      []string{"Node.js"},
			description: "Experience with NODE-JS required",
			want:        100,
		},
		{
			name:        "rounded to two decimals",
			skills:      []string{"Go", "Rust", "Zig"},
			description: "go developer",
			want:        33.33,
		},
		{name: "no skills", skills: nil, description: "anything", want: 0},
		{name: "no description", skills: []string{"Go"}, description: "  ", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkillMatchPct(tt.skills, tt.description))
		})
	}
}

func TestSkillMatchPctBounds(t *testing.T) {
	skills := []string{"Go", "Go", "Kubernetes", "!!!", "", "data analysis"}
	descriptions := []string{"go go go", "kubernetes data", "???", "analysis of data in go on kubernetes"}

	for _, d := range descriptions {
		pct := SkillMatchPct(skills, d)
		assert.GreaterOrEqual(t, pct, 0.0)
		assert.LessOrEqual(t, pct, 100.0)
	}
}
