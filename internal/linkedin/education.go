package linkedin

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-generator/internal/types"
)

var (
	pageMarkerInlineRE = regexp.MustCompile(`Page \d+ of \d+`)
	// Education entries end with the closing year of their date range.
	eduEntryEndRE = regexp.MustCompile(`\d{4}\)`)
)

// degreeIndicators mark lines that belong to the degree, not the
// school name.
var degreeIndicators = []string{
	"Degree", "Diploma", "Certificate", "Bachelor", "Master", "PhD", "Ph.D", "MBA",
}

// extractEducation pulls education entries out of the full export text.
// Entries are delimited by "YYYY)" endings; within an entry the school
// name is everything before the degree, which runs up to the "·"
// separator followed by the date range.
func extractEducation(text string) []types.EducationEntry {
	var entries []types.EducationEntry

	eduLoc := educationHeaderRE.FindStringIndex(text)
	if eduLoc == nil {
		return entries
	}
	eduText := pageMarkerInlineRE.ReplaceAllString(text[eduLoc[1]:], "")

	var lines []string
	for _, raw := range strings.Split(eduText, "\n") {
		if stripped := strings.TrimSpace(raw); stripped != "" {
			lines = append(lines, stripped)
		}
	}
	fullEdu := strings.Join(lines, "\n")

	var blocks []string
	last := 0
	for _, loc := range eduEntryEndRE.FindAllStringIndex(fullEdu, -1) {
		blocks = append(blocks, fullEdu[last:loc[1]])
		last = loc[1]
	}

	for _, block := range blocks {
		if entry, ok := parseEducationBlock(block); ok {
			entries = append(entries, entry)
		}
	}

	return entries
}

func parseEducationBlock(block string) (types.EducationEntry, bool) {
	var entryLines []string
	for _, raw := range strings.Split(strings.TrimSpace(block), "\n") {
		if stripped := strings.TrimSpace(raw); stripped != "" {
			entryLines = append(entryLines, stripped)
		}
	}
	if len(entryLines) == 0 {
		return types.EducationEntry{}, false
	}

	// The "·" line separates degree text from the date range.
	separatorIdx := -1
	for i, line := range entryLines {
		if strings.Contains(line, "·") {
			separatorIdx = i
			break
		}
	}
	if separatorIdx == -1 {
		return types.EducationEntry{}, false
	}

	degreeStart := -1
	for i := 0; i <= separatorIdx; i++ {
		if containsDegreeIndicator(entryLines[i]) {
			degreeStart = i
			break
		}
	}
	if degreeStart == -1 {
		// No indicator word; fall back to the nearest line that looks
		// like "Field, Specialization".
		for i := separatorIdx; i >= 0; i-- {
			if strings.Contains(entryLines[i], ",") || containsDegreeIndicator(entryLines[i]) {
				degreeStart = i
				break
			}
		}
	}
	if degreeStart == -1 {
		if len(entryLines) > 1 {
			degreeStart = 1
		} else {
			degreeStart = 0
		}
	}

	school := strings.TrimSpace(strings.Join(entryLines[:degreeStart], " "))
	degreeText := strings.Join(entryLines[degreeStart:], " ")

	degree := degreeText
	datePart := ""
	if i := strings.Index(degreeText, "·"); i >= 0 {
		degree = strings.TrimSpace(degreeText[:i])
		datePart = strings.TrimSpace(degreeText[i+len("·"):])
	}

	if school == "" {
		return types.EducationEntry{}, false
	}

	startYear, endYear := parseEducationYears(datePart)
	return types.EducationEntry{
		School:    school,
		Degree:    degree,
		StartYear: startYear,
		EndYear:   endYear,
	}, true
}

func containsDegreeIndicator(line string) bool {
	for _, indicator := range degreeIndicators {
		if strings.Contains(line, indicator) {
			return true
		}
	}
	return false
}
