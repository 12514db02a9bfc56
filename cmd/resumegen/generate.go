package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-generator/internal/emit"
	"github.com/jonathan/resume-generator/internal/observability"
	"github.com/jonathan/resume-generator/internal/rendering"
	"github.com/jonathan/resume-generator/internal/templates"
	"github.com/jonathan/resume-generator/internal/types"
	"github.com/jonathan/resume-generator/internal/validation"
)

const defaultOutputPath = "output/resume.pdf"

var (
	generateDataFile      string
	generateTemplate      string
	generateOutputFile    string
	generateMeta          []string
	generateHiddenText    string
	generateListTemplates bool
)

// metaKeyAliases maps the alternate metadata key spellings accepted on
// the command line to their canonical names.
var metaKeyAliases = map[string]string{
	"description": "subject",
	"generator":   "creator",
}

func init() {
	rootCmd.Flags().StringVarP(&generateDataFile, "data", "d", "", "Path to JSON data file (required)")
	rootCmd.Flags().StringVarP(&generateTemplate, "template", "t", string(templates.Default), "Template style to use")
	rootCmd.Flags().StringVarP(&generateOutputFile, "output", "o", defaultOutputPath, "Path for output PDF file")
	rootCmd.Flags().StringArrayVarP(&generateMeta, "meta", "m", nil, "Set PDF metadata as KEY=VALUE (repeatable; keys: title, author, subject, keywords, creator, producer)")
	rootCmd.Flags().StringVarP(&generateHiddenText, "hidden-text", "s", "", "Custom hidden text to embed in the resume (same color as background, smallest font)")
	rootCmd.Flags().BoolVar(&generateListTemplates, "list-templates", false, "List available templates and exit")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, verbose)

	// Listing never touches the data file.
	if generateListTemplates {
		listTemplates(cmd)
		return nil
	}

	if generateDataFile == "" {
		return fmt.Errorf("required flag \"data\" not set")
	}

	runID := uuid.New()
	logger.Debug("starting generation", "run_id", runID, "data", generateDataFile, "template", generateTemplate, "output", generateOutputFile)

	raw, err := validation.Load(generateDataFile)
	if err != nil {
		return err
	}

	record, err := validation.Validate(raw)
	if err != nil {
		return err
	}
	logger.Debug("record validated", "experience", len(record.Experience), "skills", len(record.Skills), "education", len(record.Education))

	req := types.RenderRequest{
		Record:       record,
		TemplateName: generateTemplate,
		Metadata:     parseMetadata(generateMeta, logger),
		HiddenText:   generateHiddenText,
	}

	handle, err := templates.Resolve(req.TemplateName)
	if err != nil {
		return err
	}

	if verbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintRecord(req.Record)
		printer.PrintGeneration(req.TemplateName, generateOutputFile, req.Metadata, req.HiddenText)
	}

	logger.Debug("rendering template", "template", handle.Style)
	markup, err := rendering.Render(req.Record, handle, req.HiddenText)
	if err != nil {
		return err
	}

	logger.Debug("generating PDF", "bytes_markup", len(markup))
	emitter := emit.NewEmitter(emit.NewChromeConverter())
	if err := emitter.Emit(cmd.Context(), markup, generateOutputFile, req.Metadata); err != nil {
		return err
	}

	info, err := os.Stat(generateOutputFile)
	if err != nil {
		return &emit.EmitError{Kind: emit.IOFailure, Subject: generateOutputFile, Cause: err}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Resume PDF generated successfully: %s\n", generateOutputFile)
	fmt.Fprintf(cmd.OutOrStdout(), "File size: %.1f KB\n", float64(info.Size())/1024)

	return nil
}

// listTemplates prints the registry contents in registry order.
func listTemplates(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), "Available templates:")
	for _, info := range templates.List() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-12s - %s\n", info.Name, info.Description)
	}
}

// parseMetadata accumulates repeatable KEY=VALUE arguments into a map.
// Keys are lowercased and trimmed, alias spellings are normalized, the
// last occurrence of a duplicate key wins, and malformed items are
// skipped with a warning rather than aborting the run.
func parseMetadata(args []string, logger *log.Logger) map[string]string {
	if len(args) == 0 {
		return nil
	}

	metadata := make(map[string]string, len(args))
	for _, item := range args {
		key, value, found := strings.Cut(item, "=")
		if !found {
			logger.Warn("invalid metadata format, expected KEY=VALUE", "item", item)
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if canonical, ok := metaKeyAliases[key]; ok {
			key = canonical
		}
		metadata[key] = strings.TrimSpace(value)
	}

	if len(metadata) == 0 {
		return nil
	}
	return metadata
}
