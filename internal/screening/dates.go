// Package screening holds the deterministic resume heuristics: experience
// duration, education tier, skills, links, document quality and skill match.
package screening

import (
	"math"
	"strconv"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// nowSentinels stand for the current date in an end-date field.
var nowSentinels = map[string]bool{
	"present": true,
	"ongoing": true,
	"now":     true,
	"current": true,
}

// ParseMonth resolves a month token to 1-12. Numbers pass through, names are
// matched case-insensitively (full or three-letter form). ok is false when the
// token cannot be resolved.
func ParseMonth(token any) (month int, ok bool) {
	switch v := token.(type) {
	case int:
		return validMonth(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return validMonth(int(v))
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return validMonth(n)
		}
		s = strings.TrimSuffix(s, ".")
		for i, name := range monthNames {
			if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
				return i + 1, true
			}
		}
	case models.FieldValue:
		if !v.Present() {
			return 0, false
		}
		return ParseMonth(v.Raw())
	}
	return 0, false
}

func validMonth(n int) (int, bool) {
	if n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}

// maxYear is the last calendar year a date field may name.
const maxYear = 9999

// parseYear resolves a year token in 1..maxYear. Sentinels, garbage and years
// outside that range are not years.
func parseYear(v models.FieldValue) (int, bool) {
	if !v.Present() {
		return 0, false
	}
	switch raw := v.Raw().(type) {
	case float64:
		if raw != math.Trunc(raw) || raw < 1 || raw > maxYear {
			return 0, false
		}
		return int(raw), true
	case int:
		return validYear(raw)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, false
		}
		return validYear(n)
	}
	return 0, false
}

func validYear(n int) (int, bool) {
	if n < 1 || n > maxYear {
		return 0, false
	}
	return n, true
}

// isNowSentinel reports whether v is one of the "present"-style tokens.
func isNowSentinel(v models.FieldValue) bool {
	s, ok := v.Raw().(string)
	if !v.Present() || !ok {
		return false
	}
	return nowSentinels[strings.ToLower(strings.TrimSpace(s))]
}
