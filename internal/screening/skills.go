package screening

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

type vocabularyTerm struct {
	name    string
	pattern *regexp.Regexp
}

// technicalTerms is TechnicalVocabulary compiled once. Boundaries are any
// non-alphanumeric character so that terms like "C++" and "Node.js" match.
var technicalTerms = compileVocabulary(TechnicalVocabulary)

func compileVocabulary(terms []string) []vocabularyTerm {
	compiled := make([]vocabularyTerm, 0, len(terms))
	for _, term := range terms {
		pattern := `(?:^|[^a-z0-9])` + regexp.QuoteMeta(strings.ToLower(term)) + `(?:$|[^a-z0-9])`
		compiled = append(compiled, vocabularyTerm{name: term, pattern: regexp.MustCompile(pattern)})
	}
	return compiled
}

// TechnicalSkills merges three signals: the structured technical_skills field,
// bullet lines under a "technical skills" heading in text, and vocabulary terms
// found anywhere in text. The result is deduplicated case-insensitively and
// sorted.
func TechnicalSkills(field models.Field, text string) []string {
	var found []string
	found = append(found, structuredSkills(field)...)
	found = append(found, sectionSkills(text)...)
	found = append(found, vocabularySkills(text)...)
	return dedupeSorted(found)
}

// structuredSkills reads the structured field. A value may itself be a
// JSON-encoded list; when it does not decode it is taken verbatim.
func structuredSkills(field models.Field) []string {
	var skills []string
	for _, value := range field {
		switch raw := value.Raw().(type) {
		case []any:
			for _, item := range raw {
				skills = append(skills, models.Value(item).Text())
			}
		case string:
			skills = append(skills, decodeSkillString(raw)...)
		default:
			skills = append(skills, value.Text())
		}
	}
	return skills
}

func decodeSkillString(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var list []any
		if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
			out := make([]string, 0, len(list))
			for _, item := range list {
				out = append(out, models.Value(item).Text())
			}
			return out
		}
	}
	return []string{trimmed}
}

// sectionSkills captures bullet lines following a "technical skills" heading.
// Blank lines are skipped; the first non-bullet line ends the section.
func sectionSkills(text string) []string {
	var skills []string
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inSection {
			if strings.Contains(strings.ToLower(trimmed), "technical skills") {
				inSection = true
			}
			continue
		}

		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "*") {
			inSection = false
			if strings.Contains(strings.ToLower(trimmed), "technical skills") {
				inSection = true
			}
			continue
		}

		skill := strings.TrimSpace(strings.TrimLeft(trimmed, "-*"))
		if skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

func vocabularySkills(text string) []string {
	lower := strings.ToLower(text)
	var skills []string
	for _, term := range technicalTerms {
		if term.pattern.MatchString(lower) {
			skills = append(skills, term.name)
		}
	}
	return skills
}

// SoftSkills returns the soft-skill phrases contained in the combined resume and
// cover letter text, sorted.
func SoftSkills(resumeText, coverLetter string) []string {
	combined := strings.ToLower(resumeText + "\n" + coverLetter)
	var found []string
	for _, phrase := range SoftSkillVocabulary {
		if strings.Contains(combined, phrase) {
			found = append(found, phrase)
		}
	}
	return dedupeSorted(found)
}

// dedupeSorted drops empty and case-insensitive duplicate entries, keeping the
// first spelling seen, and sorts case-insensitively.
func dedupeSorted(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
