package screening

import (
	"math"
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

func normalizeMatchText(s string) string {
	return strings.TrimSpace(nonAlphanumeric.ReplaceAllString(strings.ToLower(s), " "))
}

// SkillMatchPct scores how much of skills the job description covers, from 0
// to 100 with two decimals. A skill whose normalized phrase appears in the
// description earns full credit; otherwise any of its tokens longer than two
// characters appearing earns half credit.
func SkillMatchPct(skills []string, jobDescription string) float64 {
	description := normalizeMatchText(jobDescription)
	if len(skills) == 0 || description == "" {
		return 0
	}

	credits := 0.0
	for _, skill := range skills {
		credits += skillCredit(normalizeMatchText(skill), description)
	}

	pct := credits / float64(len(skills)) * 100
	return math.Round(pct*100) / 100
}

func skillCredit(skill, description string) float64 {
	if skill == "" {
		return 0
	}
	if strings.Contains(description, skill) {
		return 1
	}
	for _, token := range strings.Fields(skill) {
		if len(token) > 2 && strings.Contains(description, token) {
			return 0.5
		}
	}
	return 0
}
