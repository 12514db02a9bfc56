// Package main provides the resumegen CLI for generating PDF resumes
// from JSON data and a set of built-in HTML templates.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "resumegen",
	Short:        "Generate a professional PDF resume from a template and JSON data",
	Long:         "resumegen renders a structured resume data file into a styled, print-ready PDF using one of several built-in templates, with optional document metadata and embedded keyword text.",
	SilenceUsage: true,
	RunE:         runGenerate,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")
}

func main() {
	// Load .env file if it exists (optional CHROME_PATH override).
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
