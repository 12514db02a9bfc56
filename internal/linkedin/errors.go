// Package linkedin converts LinkedIn profile-export PDFs into resume records.
package linkedin

import "fmt"

// ParseError represents a failure to read or interpret a profile PDF.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("linkedin parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("linkedin parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
