package screening

import (
	"regexp"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

// EducationRule maps a keyword pattern to a tier label.
type EducationRule struct {
	Level   string
	Pattern *regexp.Regexp
}

// EducationRules is evaluated in order and the first match wins, so a text that
// mentions both a bachelor's and a master's degree is a Master's. A bare "MA"
// is not a degree: it is also the Massachusetts abbreviation in addresses.
var EducationRules = []EducationRule{
	{models.EducationPhD, regexp.MustCompile(`\bph\.?\s?d\b|doctorate|doctoral|\bdoctor of\b`)},
	{models.EducationMasters, regexp.MustCompile(`master|\bm\.?sc\b|\bma\s+(?:in|of|degree)\b|\bm\.a\.|\bmfa\b|\bmba\b|\bm\.?tech\b`)},
	{models.EducationBachelors, regexp.MustCompile(`bachelor|\bb\.?sc\b|\bba\b|\bb\.a\.|\bbfa\b|\bb\.?tech\b|\bb\.e\.`)},
	{models.EducationDiploma, regexp.MustCompile(`diploma|associate`)},
	{models.EducationHighSchool, regexp.MustCompile(`high school|secondary|\b12th\b`)},
}

// EducationLevel classifies free-form education text into a tier.
func EducationLevel(texts ...string) string {
	text := strings.ToLower(strings.Join(texts, " "))
	for _, rule := range EducationRules {
		if rule.Pattern.MatchString(text) {
			return rule.Level
		}
	}
	return models.EducationOther
}

// EducationLevelOf classifies the education field of a resume.
func EducationLevelOf(field models.Field) string {
	return EducationLevel(field.Texts()...)
}
