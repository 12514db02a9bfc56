// Package linkedin converts LinkedIn profile-export PDFs into resume records.
//
// LinkedIn "Save to PDF" exports lay the profile out as a sidebar
// (Contact, Top Skills, Languages, Certifications) followed by the main
// column (name, title, Summary, Experience, Education). The parser
// extracts page text row by row, slices it along the section headers,
// and rebuilds a types.ResumeRecord that feeds straight into the
// generation pipeline.
package linkedin

import (
	"strings"

	"github.com/jonathan/resume-generator/internal/types"
)

// ParseProfile parses the LinkedIn export PDF at path into a resume
// record. Fields the export does not carry (phone, website) are left
// empty; descriptions with bullet points are promoted to highlights.
func ParseProfile(path string) (*types.ResumeRecord, error) {
	pages, err := extractPages(path)
	if err != nil {
		return nil, err
	}

	fullText := strings.Join(pages, "\n")
	lines := strings.Split(fullText, "\n")
	indices := findSectionIndices(lines)

	sb := extractSidebar(lines, indices)
	name, title, location := extractNameTitleLocation(lines, indices)

	record := &types.ResumeRecord{
		Name:  name,
		Title: title,
		Contact: types.Contact{
			Email:    sb.email,
			LinkedIn: sb.linkedinURL,
			Location: location,
		},
		Summary:             extractSummary(lines, indices),
		Experience:          extractExperience(fullText),
		Skills:              sb.topSkills,
		Certifications:      sb.certifications,
		CertificationsTitle: "Certifications",
		Education:           extractEducation(fullText),
	}

	if record.Experience == nil {
		record.Experience = []types.ExperienceEntry{}
	}
	if record.Skills == nil {
		record.Skills = []string{}
	}
	if record.Certifications == nil {
		record.Certifications = []string{}
	}
	if record.Education == nil {
		record.Education = []types.EducationEntry{}
	}

	return record, nil
}
