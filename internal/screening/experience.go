package screening

import (
	"math"
	"time"

	"alfredoptarigan/resume-screener/internal/models"
)

// ExperienceYears sums the month spans of entries and returns total years
// rounded to one decimal. Entries without a resolvable start, or with a start
// or end year outside 1..9999, are skipped. Spans that end on or before their
// start contribute nothing. Overlapping entries are summed as-is.
func ExperienceYears(entries []models.ExperienceEntry, now time.Time) float64 {
	totalMonths := 0
	for _, entry := range entries {
		totalMonths += entryMonths(entry, now)
	}
	return math.Round(float64(totalMonths)/12*10) / 10
}

func entryMonths(entry models.ExperienceEntry, now time.Time) (months int) {
	defer func() {
		if recover() != nil {
			months = 0
		}
	}()

	startYear, ok := parseYear(entry.StartYear)
	if !ok {
		return 0
	}
	startMonth, ok := ParseMonth(entry.StartMonth)
	if !ok {
		return 0
	}

	endYear, endMonth := now.Year(), int(now.Month())
	if !isNowSentinel(entry.EndYear) && !isNowSentinel(entry.EndMonth) {
		if y, ok := parseYear(entry.EndYear); ok {
			endYear = y
		} else if entry.EndYear.Present() {
			// an end year that is neither a year nor a sentinel cannot anchor a span
			return 0
		}
		if m, ok := ParseMonth(entry.EndMonth); ok {
			endMonth = m
		}
	}

	delta := (endYear-startYear)*12 + (endMonth - startMonth)
	if delta <= 0 {
		return 0
	}
	return delta
}
