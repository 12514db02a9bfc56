// Package validation turns raw resume data files into validated ResumeRecords.
package validation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-generator/internal/types"
)

//go:embed resume_schema.json
var resumeSchema string

// defaultCertificationsTitle is the section heading used when the record
// does not supply one.
const defaultCertificationsTitle = "Certifications"

// validate checks field values the schema cannot express (non-empty
// required strings). Field names are reported using json tag names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads the resume data file and verifies it contains parseable JSON.
// It distinguishes a missing file from a malformed one so the CLI can
// report the right failure to the user.
func Load(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataFileError{Kind: NotFound, Path: path, Cause: err}
	}

	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, &DataFileError{
				Kind:  MalformedStructure,
				Path:  fmt.Sprintf("%s (offset %d)", path, syntaxErr.Offset),
				Cause: err,
			}
		}
		return nil, &DataFileError{Kind: MalformedStructure, Path: path, Cause: err}
	}

	return raw, nil
}

// Validate checks raw JSON against the resume schema, decodes it, and
// applies defaults. It performs no cross-field business validation:
// dates and years are opaque display strings.
func Validate(raw []byte) (*types.ResumeRecord, error) {
	if err := checkSchema(raw); err != nil {
		return nil, err
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		// Schema passed but decode failed; shapes disagree.
		return nil, &ValidationError{Kind: WrongType, Field: "(root)", Detail: err.Error()}
	}

	applyDefaults(&record)

	if err := validate.Struct(&record); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, &ValidationError{
				Kind:   MissingField,
				Field:  jsonPath(fe.Namespace()),
				Detail: "required value is empty",
			}
		}
		return nil, &ValidationError{Kind: WrongType, Field: "(root)", Detail: err.Error()}
	}

	return &record, nil
}

// checkSchema runs the embedded JSON Schema over the raw document and
// maps violations onto the MissingField / WrongType taxonomy.
func checkSchema(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resumeSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return &ValidationError{Kind: WrongType, Field: "(root)", Detail: err.Error()}
	}
	if result.Valid() {
		return nil
	}

	// Prefer reporting a missing field over a type mismatch when both occur.
	var first *ValidationError
	for _, desc := range result.Errors() {
		ve := describeViolation(desc)
		if ve.Kind == MissingField {
			return ve
		}
		if first == nil {
			first = ve
		}
	}
	return first
}

func describeViolation(desc gojsonschema.ResultError) *ValidationError {
	field := desc.Field()
	if field == "" {
		field = "(root)"
	}

	if desc.Type() == "required" {
		if prop, ok := desc.Details()["property"].(string); ok {
			if field == "(root)" {
				field = prop
			} else {
				field = field + "." + prop
			}
		}
		return &ValidationError{Kind: MissingField, Field: field}
	}

	return &ValidationError{Kind: WrongType, Field: field, Detail: desc.Description()}
}

// applyDefaults fills the optional fields that carry defaults.
func applyDefaults(record *types.ResumeRecord) {
	if record.Certifications == nil {
		record.Certifications = []string{}
	}
	if record.CertificationsTitle == "" {
		record.CertificationsTitle = defaultCertificationsTitle
	}
}

// jsonPath strips the root struct name from a validator namespace,
// leaving the json-tagged field path (e.g. "experience[0].company").
func jsonPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
