package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-docx/internal/observability"
	"github.com/jonathan/resume-docx/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one HTML resume into a .docx file",
	Long:  "Reads resume HTML from a file or URL and writes a Word document, creating parent directories as needed.",
	RunE:  runConvert,
}

var (
	convertInput   string
	convertURL     string
	convertOutput  string
	convertBrowser bool
	convertTimeout time.Duration
)

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "in", "i", "", "Path to resume HTML file")
	convertCmd.Flags().StringVarP(&convertURL, "url", "u", "", "URL of resume page to fetch")
	convertCmd.Flags().StringVarP(&convertOutput, "out", "o", "", "Path to output .docx file (default: derived from input inside output_dir)")
	convertCmd.Flags().BoolVar(&convertBrowser, "browser", false, "Render the page in a headless browser when it has no resume markup")
	convertCmd.Flags().DurationVar(&convertTimeout, "timeout", 0, "Fetch timeout (overrides fetch_timeout_seconds)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	settings.UseBrowser = settings.UseBrowser || convertBrowser
	if convertTimeout > 0 {
		settings.FetchTimeoutSeconds = int(convertTimeout.Round(time.Second).Seconds())
	}

	src := inputSource{Path: convertInput, URL: convertURL}
	ctx := context.Background()

	htmlContent, err := readInput(ctx, src, settings)
	if err != nil {
		return err
	}

	outputPath := convertOutput
	if outputPath == "" {
		outputPath = deriveOutputPath(src.name(), settings.OutputDir)
	}

	out := cmd.OutOrStdout()
	opts := &pipeline.Options{}
	if settings.Verbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(out, "[%s] %s\n", e.Step, e.Message)
		}
	}

	result, err := pipeline.ConvertToFile(ctx, htmlContent, outputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if settings.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintResume(result.Resume)
		printer.PrintMetrics(result.Resume.Metrics)
		printer.PrintResult(result.OutputPath, len(result.Layout.Paragraphs), len(result.DOCX))
		return nil
	}

	_, _ = fmt.Fprintf(out, "Successfully converted resume\n")
	_, _ = fmt.Fprintf(out, "Output: %s\n", result.OutputPath)
	return nil
}
