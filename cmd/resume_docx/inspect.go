package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-docx/internal/observability"
	"github.com/jonathan/resume-docx/internal/parsing"
	"github.com/jonathan/resume-docx/internal/pipeline"
	"github.com/jonathan/resume-docx/internal/schemas"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the structure recovered from an HTML resume",
	Long:  "Parses resume HTML and prints the name, contact line, sections, list items and style metrics without writing a document.",
	RunE:  runInspect,
}

var (
	inspectInput string
	inspectURL   string
	inspectJSON  bool
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectInput, "in", "i", "", "Path to resume HTML file")
	inspectCmd.Flags().StringVarP(&inspectURL, "url", "u", "", "URL of resume page to fetch")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print the parsed document as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	htmlContent, err := readInput(context.Background(), inputSource{Path: inspectInput, URL: inspectURL}, settings)
	if err != nil {
		return err
	}
	if err := pipeline.ValidateInput(htmlContent); err != nil {
		return err
	}

	resume, err := parsing.ParseResume(htmlContent)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inspectJSON {
		data, err := json.MarshalIndent(resume, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resume: %w", err)
		}
		if err := schemas.ValidateResume(data); err != nil {
			return fmt.Errorf("parsed resume failed schema validation: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	printer := observability.NewPrinter(out)
	printer.PrintResume(resume)
	printer.PrintMetrics(resume.Metrics)
	return nil
}
