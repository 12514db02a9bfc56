// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of the validated resume record.
func (p *Printer) PrintRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Title:  %s\n", record.Title))
	if record.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", record.Contact.Email))
	}
	sb.WriteString("\n")

	if len(record.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(record.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := record.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s (%s – %s)\n", exp.Title, exp.Company, exp.StartDate, exp.EndDate))
		}
		if len(record.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Skills) > 0 {
		count := min(len(record.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Skills (%d): %s", len(record.Skills), strings.Join(record.Skills[:count], ", ")))
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(", ...")
		}
		sb.WriteString("\n")
	}

	if len(record.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("%s: %d\n", record.CertificationsTitle, len(record.Certifications)))
	}

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, edu := range record.Education {
			sb.WriteString(fmt.Sprintf("  • %s — %s\n", edu.School, edu.Degree))
		}
	}

	p.printBox("Resume Record", strings.TrimRight(sb.String(), "\n"))
}

// PrintGeneration outputs a summary of the chosen template, output path,
// and metadata for one generation run.
func (p *Printer) PrintGeneration(templateName, outputPath string, metadata map[string]string, hiddenText string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Template: %s\n", templateName))
	sb.WriteString(fmt.Sprintf("Output:   %s\n", outputPath))

	if len(metadata) > 0 {
		sb.WriteString("Metadata:\n")
		for key, value := range metadata {
			sb.WriteString(fmt.Sprintf("  %s = %s\n", key, value))
		}
	}

	if hiddenText != "" {
		sb.WriteString(fmt.Sprintf("Hidden text: %d chars\n", len(hiddenText)))
	}

	p.printBox("Generation", strings.TrimRight(sb.String(), "\n"))
}
