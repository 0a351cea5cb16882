package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-docx/internal/observability"
	"github.com/jonathan/resume-docx/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Convert many HTML resumes concurrently",
	Long:  "Converts every given file (or every .html/.htm file in --dir) into its own .docx inside the output directory.",
	RunE:  runBatch,
}

var (
	batchDir         string
	batchOutputDir   string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of HTML files to convert")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out-dir", "o", "", "Directory for .docx files (overrides output_dir)")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "j", 0, "Parallel conversions (overrides concurrency)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if batchOutputDir != "" {
		settings.OutputDir = batchOutputDir
	}
	if batchConcurrency > 0 {
		settings.Concurrency = batchConcurrency
	}

	inputs, err := collectInputs(args, batchDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files: pass files as arguments or use --dir")
	}

	jobs := make([]pipeline.BatchJob, 0, len(inputs))
	outputs := assignOutputPaths(inputs, settings.OutputDir)
	for i, input := range inputs {
		data, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		jobs = append(jobs, pipeline.BatchJob{Name: input, HTML: string(data), OutputPath: outputs[i]})
	}

	results, err := pipeline.ConvertBatch(context.Background(), jobs, settings.Concurrency, nil)
	if err != nil {
		return err
	}

	entries := make([]observability.BatchEntry, len(results))
	failed := 0
	for i, r := range results {
		entries[i] = observability.BatchEntry{Name: r.Job.Name, OutputPath: r.Job.OutputPath, Err: r.Err}
		if r.Err != nil {
			failed++
		}
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintBatch(entries)

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	return nil
}

// collectInputs returns the explicit files followed by the HTML files of dir,
// without duplicates and in a stable order.
func collectInputs(files []string, dir string) ([]string, error) {
	seen := make(map[string]bool)
	var inputs []string
	add := func(p string) {
		key := filepath.Clean(p)
		if !seen[key] {
			seen[key] = true
			inputs = append(inputs, p)
		}
	}

	for _, f := range files {
		add(f)
	}

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read input directory: %w", err)
		}
		var found []string
		for _, e := range entries {
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if !e.IsDir() && (ext == ".html" || ext == ".htm") {
				found = append(found, filepath.Join(dir, e.Name()))
			}
		}
		sort.Strings(found)
		for _, f := range found {
			add(f)
		}
	}

	return inputs, nil
}

// assignOutputPaths derives one output path per input. Inputs that would
// collide on the same base name get a random suffix after the first.
func assignOutputPaths(inputs []string, outputDir string) []string {
	used := make(map[string]bool, len(inputs))
	paths := make([]string, len(inputs))
	for i, input := range inputs {
		p := deriveOutputPath(input, outputDir)
		if used[p] {
			p = strings.TrimSuffix(p, ".docx") + "-" + uuid.NewString()[:8] + ".docx"
		}
		used[p] = true
		paths[i] = p
	}
	return paths
}
