// Package templates holds the fixed registry of resume template styles.
package templates

import (
	"fmt"
	"strings"
)

// LookupError represents a request for a template name outside the
// registered set.
type LookupError struct {
	Name  string
	Valid []string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown template %q (valid templates: %s)", e.Name, strings.Join(e.Valid, ", "))
}
