// Package emit converts rendered markup into a PDF file on disk.
package emit

import "fmt"

// Kind classifies emit failures.
type Kind string

const (
	// UnknownMetadataKey means a metadata key outside the recognized set
	// was supplied. It is reported before any file is written.
	UnknownMetadataKey Kind = "unknown metadata key"
	// IOFailure means the output path could not be prepared or written.
	IOFailure Kind = "i/o failure"
	// ConversionFailure means the markup-to-PDF conversion itself failed.
	ConversionFailure Kind = "conversion failure"
)

// EmitError represents a failure to produce the output document.
// Subject names the offending value: the metadata key, or the path.
type EmitError struct {
	Kind    Kind
	Subject string
	Cause   error
}

func (e *EmitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("emit failed: %s: %s: %v", e.Kind, e.Subject, e.Cause)
	}
	return fmt.Sprintf("emit failed: %s: %s", e.Kind, e.Subject)
}

func (e *EmitError) Unwrap() error {
	return e.Cause
}
