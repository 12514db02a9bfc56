// Package rendering substitutes a validated resume record into a template.
package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-generator/internal/templates"
	"github.com/jonathan/resume-generator/internal/types"
)

// page is the data structure passed to the template. It exposes the
// record's fields directly plus the optional hidden-text block.
type page struct {
	*types.ResumeRecord
	HiddenText string
}

// Render substitutes record into the resolved template and returns the
// markup document. The output is fully self-contained: styling is
// inlined in the template assets and nothing is fetched at render time,
// so identical inputs produce identical markup.
//
// Section semantics live in the templates themselves: empty optional
// sections (certifications, contact sub-fields) are omitted entirely,
// highlights win over a free-text description when both are populated,
// and every sequence renders in input order. html/template's contextual
// escaping keeps user text, including hiddenText, from breaking the
// document structure.
func Render(record *types.ResumeRecord, handle *templates.Handle, hiddenText string) (string, error) {
	tmpl, err := template.New(string(handle.Style)).Parse(handle.Source)
	if err != nil {
		return "", &RenderError{
			Template: string(handle.Style),
			Message:  "failed to parse template",
			Cause:    err,
		}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, &page{ResumeRecord: record, HiddenText: hiddenText}); err != nil {
		return "", &RenderError{
			Template: string(handle.Style),
			Message:  "template references a variable the record does not supply",
			Cause:    err,
		}
	}

	return result.String(), nil
}
