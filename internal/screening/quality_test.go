package screening

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "section keywords only", text: "Experience\nEducation\nSkills", want: 21},
		{name: "short body", text: strings.Repeat("word ", 200), want: 10},
		{name: "long body", text: strings.Repeat("word ", 2000), want: 5},
		{name: "contact details", text: "jane@example.com +1 (555) 123-4567 github", want: 25},
		{name: "too few digits for a phone", text: "call 555-12", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QualityScore(tt.text))
		})
	}
}

func TestQualityScoreIsCapped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Jane Doe\njane@example.com\n+1 555 123 4567\nhttps://www.linkedin.com/in/janedoe\n\nExperience\n")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, "- Delivered feature %d for the platform team using modern tools and careful practices.\n", i)
	}
	sb.WriteString("\nEducation\n- BSc Computer Science.\n\nSkills\n- Go, Docker, Kubernetes.\n")

	assert.Equal(t, 100, QualityScore(sb.String()))
}

func TestQualityScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		strings.Repeat("- . ", 5000),
		strings.Repeat("experience education skills github linkedin portfolio\n", 400),
		"☃☃☃ 💼 résumé",
	}

	for _, in := range inputs {
		score := QualityScore(in)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
