package screening

import (
	"fmt"
	"sort"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

// sectionOrder fixes where known fields appear in rendered resume text. Fields
// not listed follow in alphabetical order.
var sectionOrder = []string{
	models.FieldFullName,
	models.FieldEmail,
	models.FieldPhoneNumber,
	models.FieldProfessionalExperience,
	models.FieldEducation,
	models.FieldTechnicalSkills,
	models.FieldSoftSkills,
	models.FieldCertifications,
}

// ResumeText returns the plain text of a resume. The document text supplied
// under raw_text is preferred; otherwise every field is rendered as a titled
// section, lists as "- " bullets.
func ResumeText(fields models.ResumeFields) string {
	if raw := fields.Text(models.FieldRawText); raw != "" {
		return raw
	}

	var sb strings.Builder
	for _, key := range renderOrder(fields) {
		values := fields.Values(key)
		if len(values.Texts()) == 0 {
			continue
		}

		title := sectionTitle(key)
		if len(values) == 1 && key != models.FieldProfessionalExperience && key != models.FieldTechnicalSkills {
			fmt.Fprintf(&sb, "%s: %s\n", title, values[0].Text())
			continue
		}

		fmt.Fprintf(&sb, "%s:\n", title)
		for _, line := range sectionLines(key, values) {
			if line != "" {
				fmt.Fprintf(&sb, "- %s\n", line)
			}
		}
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

func sectionLines(key string, values models.Field) []string {
	switch key {
	case models.FieldTechnicalSkills:
		return structuredSkills(values)
	case models.FieldProfessionalExperience:
		lines := make([]string, 0, len(values))
		for _, value := range values {
			lines = append(lines, experienceLine(value))
		}
		return lines
	default:
		return values.Texts()
	}
}

func renderOrder(fields models.ResumeFields) []string {
	known := make(map[string]bool, len(sectionOrder))
	order := make([]string, 0, len(fields))
	for _, key := range sectionOrder {
		known[key] = true
		if _, ok := fields[key]; ok {
			order = append(order, key)
		}
	}

	var rest []string
	for key := range fields {
		if !known[key] && key != models.FieldRawText {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	return append(order, rest...)
}

func sectionTitle(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// experienceLine renders an experience object as "Title at Company (start - end)".
func experienceLine(value models.FieldValue) string {
	if _, ok := value.Object(); !ok {
		return value.Text()
	}

	role := strings.TrimSpace(strings.Join(nonEmpty(value.Get("title").Text(), value.Get("company").Text()), " at "))
	start := strings.TrimSpace(value.Get("start_month").Text() + " " + value.Get("start_year").Text())
	end := strings.TrimSpace(value.Get("end_month").Text() + " " + value.Get("end_year").Text())
	if end == "" {
		end = "present"
	}

	line := role
	if start != "" {
		line = strings.TrimSpace(fmt.Sprintf("%s (%s - %s)", role, start, end))
	}
	if desc := value.Get("description").Text(); desc != "" {
		line += ". " + desc
	}
	return line
}

func nonEmpty(items ...string) []string {
	out := items[:0]
	for _, s := range items {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
