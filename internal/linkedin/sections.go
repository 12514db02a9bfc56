package linkedin

import "strings"

// Section header markers as they appear in LinkedIn exports.
var sectionMarkers = []string{
	"Contact",
	"Top Skills",
	"Languages",
	"Certifications",
	"Summary",
	"Experience",
	"Education",
}

// sidebar holds the left-column sections of a LinkedIn export. The
// Languages section is recognized only as a boundary; the resume record
// has no languages field to carry it.
type sidebar struct {
	email          string
	linkedinURL    string
	topSkills      []string
	certifications []string
}

// findSectionIndices locates the first occurrence of each major section
// header, keyed by marker text.
func findSectionIndices(lines []string) map[string]int {
	sections := make(map[string]int)
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		for _, marker := range sectionMarkers {
			if stripped == marker {
				if _, seen := sections[marker]; !seen {
					sections[marker] = i
				}
			}
		}
	}
	return sections
}

// sectionEnd returns the index of the first marker in candidates that
// was found, or fallback when none was.
func sectionEnd(indices map[string]int, fallback int, candidates ...string) int {
	for _, c := range candidates {
		if idx, ok := indices[c]; ok {
			return idx
		}
	}
	return fallback
}

// extractSidebar pulls Contact, Top Skills, and Certifications out of
// the sidebar column. Values split across lines (emails, URLs, long
// certification names) are reassembled.
func extractSidebar(lines []string, indices map[string]int) sidebar {
	var sb sidebar
	summaryIdx := sectionEnd(indices, len(lines), "Summary")

	if start, ok := indices["Contact"]; ok {
		end := sectionEnd(indices, summaryIdx, "Top Skills")
		for i := start + 1; i < end; i++ {
			line := strings.TrimSpace(lines[i])
			switch {
			case strings.Contains(line, "@"):
				email := line
				if i+1 < end {
					next := strings.TrimSpace(lines[i+1])
					if next != "" && !strings.Contains(next, "@") && !strings.Contains(next, ".") {
						email += next
					}
				}
				sb.email = strings.ReplaceAll(email, "\n", "")
			case strings.Contains(strings.ToLower(line), "linkedin.com"):
				parts := []string{line}
				for j := i + 1; j < end; j++ {
					next := strings.TrimSpace(lines[j])
					if next == "" || strings.HasPrefix(next, "Top") || strings.Contains(next, "@") {
						break
					}
					// URL continuations are lowercase or the "(LinkedIn)" suffix.
					if strings.Contains(next, "(LinkedIn)") || !startsUpper(next) {
						parts = append(parts, next)
					} else {
						break
					}
				}
				url := strings.Join(parts, "")
				url = strings.ReplaceAll(url, "www.", "")
				url = strings.ReplaceAll(url, "(LinkedIn)", "")
				sb.linkedinURL = strings.TrimSpace(url)
			}
		}
	}

	if start, ok := indices["Top Skills"]; ok {
		end := sectionEnd(indices, summaryIdx, "Languages", "Certifications")
		for i := start + 1; i < end; i++ {
			line := strings.TrimSpace(lines[i])
			if line != "" && line != "Languages" && line != "Certifications" {
				sb.topSkills = append(sb.topSkills, line)
			}
		}
	}

	if start, ok := indices["Certifications"]; ok {
		var certLines []string
		for i := start + 1; i < summaryIdx; i++ {
			line := strings.TrimSpace(lines[i])
			// The candidate's name ends the sidebar; it is followed by
			// the |-separated title line.
			if line != "" && i+1 < len(lines) && strings.Contains(strings.TrimSpace(lines[i+1]), "|") {
				break
			}
			if line != "" && line != "Summary" && line != "Experience" && line != "Education" {
				certLines = append(certLines, line)
			}
		}
		sb.certifications = joinSplitLines(certLines)
	}

	return sb
}

// joinSplitLines rejoins entries the PDF extraction broke across lines:
// a continuation starts lowercase or follows a trailing comma.
func joinSplitLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	var result []string
	current := ""
	for _, line := range lines {
		if current != "" && (startsLower(line) || strings.HasSuffix(line, ",") || strings.HasSuffix(current, ",")) {
			current = strings.TrimSuffix(current, ",") + " " + line
		} else {
			if current != "" {
				result = append(result, strings.TrimSpace(current))
			}
			current = line
		}
	}
	if current != "" {
		result = append(result, strings.TrimSpace(current))
	}

	return result
}

// extractNameTitleLocation finds the candidate's name (the line just
// before the |-separated title block), the title (possibly spanning
// several | lines), and the "City, Country" location line after it.
func extractNameTitleLocation(lines []string, indices map[string]int) (name, title, location string) {
	certsIdx := 0
	if idx, ok := indices["Certifications"]; ok {
		certsIdx = idx
	}
	summaryIdx := sectionEnd(indices, len(lines), "Summary")

	for i := certsIdx; i < summaryIdx; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || i+1 >= len(lines) {
			continue
		}
		next := strings.TrimSpace(lines[i+1])
		if !strings.Contains(next, "|") || name != "" {
			continue
		}

		name = line
		titleParts := []string{next}
		for j := i + 2; j < summaryIdx; j++ {
			following := strings.TrimSpace(lines[j])
			if strings.Contains(following, "|") {
				titleParts = append(titleParts, following)
				continue
			}
			if following != "" && strings.Count(following, ",") == 1 {
				location = following
			}
			break
		}
		title = strings.Join(titleParts, " ")
		break
	}

	return name, title, location
}

// extractSummary joins the Summary section into a single paragraph.
func extractSummary(lines []string, indices map[string]int) string {
	start, ok := indices["Summary"]
	if !ok {
		return ""
	}
	end := sectionEnd(indices, len(lines), "Experience")

	var parts []string
	for i := start + 1; i < end; i++ {
		line := strings.TrimSpace(lines[i])
		if line != "" && line != "Experience" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func startsUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

func startsLower(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}
