// Package validation turns raw resume data files into validated ResumeRecords.
package validation

import "fmt"

// DataFileKind classifies failures reading the input data file.
type DataFileKind string

const (
	// NotFound means the data file does not exist at the given path.
	NotFound DataFileKind = "not found"
	// MalformedStructure means the file exists but is not parseable JSON.
	MalformedStructure DataFileKind = "malformed structure"
)

// DataFileError represents a failure to read or parse the resume data file.
type DataFileError struct {
	Kind  DataFileKind
	Path  string
	Cause error
}

func (e *DataFileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("data file %s: %s: %v", e.Kind, e.Path, e.Cause)
	}
	return fmt.Sprintf("data file %s: %s", e.Kind, e.Path)
}

func (e *DataFileError) Unwrap() error {
	return e.Cause
}

// ValidationKind classifies structural violations in the resume record.
type ValidationKind string

const (
	// MissingField means a required field is absent from the record.
	MissingField ValidationKind = "missing field"
	// WrongType means a field's value does not match its declared shape.
	WrongType ValidationKind = "wrong type"
)

// ValidationError represents a structurally invalid resume record.
// Field names the offending field using its JSON path.
type ValidationError struct {
	Kind   ValidationKind
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid resume data: %s: %s (%s)", e.Kind, e.Field, e.Detail)
	}
	return fmt.Sprintf("invalid resume data: %s: %s", e.Kind, e.Field)
}
