package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-generator/internal/linkedin"
)

var parseLinkedInCmd = &cobra.Command{
	Use:   "parse-linkedin",
	Short: "Convert a LinkedIn profile-export PDF to resume JSON",
	Long:  "Parses a LinkedIn exported profile PDF and emits resume data JSON in the format resumegen consumes, so the two commands chain: parse-linkedin -i Profile.pdf -o data.json && resumegen -d data.json",
	RunE:  runParseLinkedIn,
}

var (
	parseLinkedInInput  string
	parseLinkedInOutput string
	parseLinkedInPretty bool
)

func init() {
	parseLinkedInCmd.Flags().StringVarP(&parseLinkedInInput, "input", "i", "", "Path to LinkedIn PDF file (required)")
	parseLinkedInCmd.Flags().StringVarP(&parseLinkedInOutput, "output", "o", "", "Output JSON file path (default: stdout)")
	parseLinkedInCmd.Flags().BoolVar(&parseLinkedInPretty, "pretty", true, "Pretty-print JSON output")
	_ = parseLinkedInCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(parseLinkedInCmd)
}

func runParseLinkedIn(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, verbose)

	if _, err := os.Stat(parseLinkedInInput); err != nil {
		return fmt.Errorf("input file not found: %s", parseLinkedInInput)
	}
	if strings.ToLower(filepath.Ext(parseLinkedInInput)) != ".pdf" {
		logger.Warn("input file may not be a PDF", "path", parseLinkedInInput)
	}

	logger.Debug("parsing LinkedIn PDF", "path", parseLinkedInInput)

	record, err := linkedin.ParseProfile(parseLinkedInInput)
	if err != nil {
		return err
	}

	logger.Debug("profile parsed",
		"name", record.Name,
		"experience", len(record.Experience),
		"education", len(record.Education),
		"skills", len(record.Skills),
		"certifications", len(record.Certifications),
	)

	var out []byte
	if parseLinkedInPretty {
		out, err = json.MarshalIndent(record, "", "  ")
	} else {
		out, err = json.Marshal(record)
	}
	if err != nil {
		return fmt.Errorf("failed to encode resume JSON: %w", err)
	}

	if parseLinkedInOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if dir := filepath.Dir(parseLinkedInOutput); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(parseLinkedInOutput, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Debug("output written", "path", parseLinkedInOutput)
	return nil
}
