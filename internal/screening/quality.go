package screening

import (
	"regexp"
	"strings"
)

var (
	emailPattern         = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	profileDomainPattern = regexp.MustCompile(`(?i)linkedin|github|artstation`)
	phoneCandidate       = regexp.MustCompile(`\+?\(?\d[\d\s().-]{5,}\d`)
	linkKeywords         = []string{"github", "linkedin", "portfolio", "artstation", "behance"}
	qualitySections      = []string{"experience", "education", "skills"}
)

// QualityScore rates the formatting of a resume's plain text from 0 to 100.
// Points are additive and the sum is capped:
//
//	word count 300-1500: 20, 150-299: 10, above 1500: 5
//	each of experience/education/skills mentioned: 7
//	periods plus "- " bullets >= 8: 15, >= 4: 8
//	email: 5, linkedin/github/artstation mention: 5, phone number: 5
//	any link keyword: 10
//	over 30 distinct characters with a period and more than 2 bullets: 15
//	20 lines or more: 5
func QualityScore(text string) int {
	score := 0
	lower := strings.ToLower(text)

	words := len(strings.Fields(text))
	switch {
	case words >= 300 && words <= 1500:
		score += 20
	case words >= 150 && words < 300:
		score += 10
	case words > 1500:
		score += 5
	}

	for _, section := range qualitySections {
		if strings.Contains(lower, section) {
			score += 7
		}
	}

	bullets := strings.Count(text, ".") + strings.Count(text, "- ")
	switch {
	case bullets >= 8:
		score += 15
	case bullets >= 4:
		score += 8
	}

	if emailPattern.MatchString(text) {
		score += 5
	}
	if profileDomainPattern.MatchString(text) {
		score += 5
	}
	if hasPhoneNumber(text) {
		score += 5
	}

	for _, keyword := range linkKeywords {
		if strings.Contains(lower, keyword) {
			score += 10
			break
		}
	}

	if distinctChars(text) > 30 && strings.Contains(text, ".") && bullets > 2 {
		score += 15
	}
	if lineCount(text) >= 20 {
		score += 5
	}

	return min(score, 100)
}

// hasPhoneNumber looks for a run of at least seven digits, allowing the usual
// separators in between.
func hasPhoneNumber(text string) bool {
	for _, candidate := range phoneCandidate.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 7 {
			return true
		}
	}
	return false
}

func distinctChars(text string) int {
	seen := make(map[rune]struct{})
	for _, r := range text {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func lineCount(text string) int {
	if text == "" {
		return 0
	}
	return len(strings.Split(strings.TrimSuffix(text, "\n"), "\n"))
}
