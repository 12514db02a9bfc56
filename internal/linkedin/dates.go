package linkedin

import (
	"regexp"
	"strings"
)

var (
	durationRE = regexp.MustCompile(`\s*\([^)]+\)\s*`)
	yearRE     = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
)

// monthAbbrev maps full month names to the abbreviated display form the
// resume templates expect.
var monthAbbrev = map[string]string{
	"January":   "Jan",
	"February":  "Feb",
	"March":     "Mar",
	"April":     "Apr",
	"May":       "May",
	"June":      "Jun",
	"July":      "Jul",
	"August":    "Aug",
	"September": "Sep",
	"October":   "Oct",
	"November":  "Nov",
	"December":  "Dec",
}

// parseDateRange splits a LinkedIn date line into start and end dates,
// dropping the duration suffix and abbreviating month names.
//
//	"November 2021 - November 2025 (4 years 1 month)" -> ("Nov 2021", "Nov 2025")
//	"August 2015"                                     -> ("Aug 2015", "Present")
func parseDateRange(s string) (string, string) {
	s = strings.TrimSpace(durationRE.ReplaceAllString(s, ""))

	start, end := s, "Present"
	if i := strings.Index(s, " - "); i >= 0 {
		start, end = s[:i], s[i+len(" - "):]
	}

	return abbreviateMonths(start), abbreviateMonths(end)
}

func abbreviateMonths(s string) string {
	for full, abbr := range monthAbbrev {
		s = strings.ReplaceAll(s, full, abbr)
	}
	return strings.TrimSpace(s)
}

// parseEducationYears extracts the start and end years from an education
// date fragment like "(September 2008 - June 2013)". A single year is
// used for both ends; no years yields empty strings.
func parseEducationYears(s string) (string, string) {
	years := yearRE.FindAllString(s, -1)
	switch {
	case len(years) >= 2:
		return years[0], years[1]
	case len(years) == 1:
		return years[0], years[0]
	default:
		return "", ""
	}
}
