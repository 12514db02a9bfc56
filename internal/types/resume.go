// Package types provides type definitions for structured data used throughout the resume-generator system.
package types

// Contact holds the optional contact channels rendered in the resume header.
// Empty fields are omitted from rendering, never shown as empty placeholders.
type Contact struct {
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Highlight is a single bullet point within an experience entry.
// Label may be empty; when set it is rendered as a bold lead-in.
type Highlight struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ExperienceEntry represents one position in the work history.
//
// Highlights and Description are alternatives: when both are populated,
// Highlights take precedence at render time. This mirrors the documented
// input policy and is not treated as a validation error.
type ExperienceEntry struct {
	Company    string      `json:"company" validate:"required"`
	Title      string      `json:"title" validate:"required"`
	StartDate  string      `json:"start_date" validate:"required"`
	EndDate    string      `json:"end_date" validate:"required"`
	Highlights []Highlight `json:"highlights,omitempty"`
	// Description is the free-text fallback used when no highlights exist.
	Description string `json:"description,omitempty"`
}

// EducationEntry represents one school in the education history.
// Years are opaque display strings; no ordering is enforced. The schema
// requires both year keys to be present, but they may be empty (profile
// imports emit empty years when the export carries no dates).
type EducationEntry struct {
	School    string `json:"school" validate:"required"`
	Degree    string `json:"degree" validate:"required"`
	StartYear string `json:"start_year"`
	EndYear   string `json:"end_year"`
}

// ResumeRecord is the validated, in-memory representation of one resume.
// It is constructed once per invocation from the data file, passed
// read-only through rendering, and discarded after the PDF is emitted.
type ResumeRecord struct {
	Name                string            `json:"name" validate:"required,min=1"`
	Title               string            `json:"title" validate:"required"`
	Contact             Contact           `json:"contact"`
	Summary             string            `json:"summary" validate:"required"`
	Experience          []ExperienceEntry `json:"experience" validate:"required,dive"`
	Skills              []string          `json:"skills" validate:"required"`
	Certifications      []string          `json:"certifications"`
	CertificationsTitle string            `json:"certifications_title"`
	Education           []EducationEntry  `json:"education" validate:"required,dive"`
}

// RenderRequest bundles everything one generation run needs. It is
// ephemeral and never persisted.
type RenderRequest struct {
	Record       *ResumeRecord
	TemplateName string
	Metadata     map[string]string
	HiddenText   string
}
