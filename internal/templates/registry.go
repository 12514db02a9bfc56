// Package templates holds the fixed registry of resume template styles.
//
// The set of styles is closed at build time: each style name maps to one
// self-contained HTML asset embedded in the binary. There is no runtime
// template discovery and no external asset fetching, so rendering is
// deterministic for identical inputs.
package templates

import (
	"embed"
	"fmt"
)

//go:embed assets/*.html
var assets embed.FS

// Style is the name of a registered template.
type Style string

// The registered template styles.
const (
	Default    Style = "default"
	Minimalist Style = "minimalist"
	Modern     Style = "modern"
	Classic    Style = "classic"
)

// Info describes one registry entry for listing purposes.
type Info struct {
	Name        string
	Description string
}

// Handle is a resolved template: its style plus the raw markup source
// the renderer substitutes the record into.
type Handle struct {
	Style  Style
	Source string
}

// entry pins a style to its asset file and short description.
type entry struct {
	style       Style
	file        string
	description string
}

// registry is ordered; List and error messages preserve this order.
var registry = []entry{
	{Default, "assets/resume_default.html", "Blue theme with modern styling"},
	{Minimalist, "assets/resume_minimalist.html", "Clean grayscale design"},
	{Modern, "assets/resume_modern.html", "Bold sidebar with purple gradient"},
	{Classic, "assets/resume_classic.html", "Traditional serif with forest green accents"},
}

// Resolve returns the template handle for name. Unknown names fail with
// a LookupError enumerating the valid set; no fallback is applied.
func Resolve(name string) (*Handle, error) {
	for _, e := range registry {
		if string(e.style) == name {
			src, err := assets.ReadFile(e.file)
			if err != nil {
				// Embedded asset missing is a packaging defect, not user input.
				return nil, fmt.Errorf("template asset %s unreadable: %w", e.file, err)
			}
			return &Handle{Style: e.style, Source: string(src)}, nil
		}
	}
	return nil, &LookupError{Name: name, Valid: Names()}
}

// List returns the registered templates in registry order.
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, e := range registry {
		infos = append(infos, Info{Name: string(e.style), Description: e.description})
	}
	return infos
}

// Names returns the valid template names in registry order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, string(e.style))
	}
	return names
}
