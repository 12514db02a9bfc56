// Package rendering substitutes a validated resume record into a template.
package rendering

import "fmt"

// RenderError represents a template/data mismatch while rendering.
//
// The registry and the validator share a fixed field contract, so this
// is an internal consistency fault (a packaging defect), not a user
// input error, and is worded accordingly.
type RenderError struct {
	Template string
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("internal render error in template %q: %s: %v", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("internal render error in template %q: %s", e.Template, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
