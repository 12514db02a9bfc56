package linkedin

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-generator/internal/types"
)

var (
	experienceHeaderRE = regexp.MustCompile(`\nExperience\n`)
	educationHeaderRE  = regexp.MustCompile(`\nEducation\n`)
	// Entry anchor: "Month YYYY - Month YYYY (duration)" or "... - Present (duration)".
	expDateRE    = regexp.MustCompile(`^([A-Z][a-z]+ \d{4}) - ([A-Z][a-z]+ \d{4}|Present) \([^)]+\)`)
	expLocRE     = regexp.MustCompile(`^[A-Z][a-zA-Z\s]+,\s*[A-Z][a-zA-Z\s]+$`)
	pageMarkerRE = regexp.MustCompile(`^\s*Page \d+ of \d+\s*$`)
	bulletRE     = regexp.MustCompile(`(?:^|\s)- `)
)

// maxLabelLength bounds how far into a bullet a "label:" prefix may
// reach before the colon is treated as ordinary prose.
const maxLabelLength = 40

// extractExperience pulls work-history entries out of the full export
// text. An entry is recognized by its date line appearing two lines
// after the company name (company, title, dates, optional location,
// then description until the next entry).
func extractExperience(text string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry

	expLoc := experienceHeaderRE.FindStringIndex(text)
	if expLoc == nil {
		return entries
	}
	expText := text[expLoc[1]:]
	if eduLoc := educationHeaderRE.FindStringIndex(expText); eduLoc != nil {
		expText = expText[:eduLoc[0]]
	}

	var lines []string
	for _, raw := range strings.Split(expText, "\n") {
		stripped := strings.TrimSpace(raw)
		if stripped != "" && !pageMarkerRE.MatchString(stripped) {
			lines = append(lines, stripped)
		}
	}

	i := 0
	for i < len(lines) {
		if i+2 >= len(lines) || !expDateRE.MatchString(lines[i+2]) {
			i++
			continue
		}

		company := lines[i]
		title := lines[i+1]
		startDate, endDate := parseDateRange(expDateRE.FindString(lines[i+2]))
		i += 3

		if i < len(lines) && expLocRE.MatchString(lines[i]) {
			i++
		}

		var descLines []string
		for i < len(lines) {
			if i+2 < len(lines) && expDateRE.MatchString(lines[i+2]) {
				break
			}
			descLines = append(descLines, lines[i])
			i++
		}

		entry := types.ExperienceEntry{
			Company:   company,
			Title:     title,
			StartDate: startDate,
			EndDate:   endDate,
		}
		description := strings.Join(descLines, " ")
		if highlights := promoteHighlights(description); len(highlights) > 0 {
			entry.Highlights = highlights
		} else {
			entry.Description = description
		}
		entries = append(entries, entry)
	}

	return entries
}

// promoteHighlights converts a bulleted description ("- item - item")
// into structured highlights. A "label:" prefix within the first 40
// characters of a bullet becomes the highlight label. Descriptions
// without bullets return nil and stay free text.
func promoteHighlights(description string) []types.Highlight {
	if !strings.Contains(description, "- ") {
		return nil
	}

	var highlights []types.Highlight
	for _, part := range bulletRE.Split(description, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if colon := strings.Index(part, ":"); colon >= 0 && colon < maxLabelLength {
			highlights = append(highlights, types.Highlight{
				Label:       strings.TrimSpace(part[:colon+1]),
				Description: strings.TrimSpace(part[colon+1:]),
			})
		} else {
			highlights = append(highlights, types.Highlight{Description: part})
		}
	}

	return highlights
}
