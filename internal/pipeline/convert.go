package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-docx/internal/layout"
	"github.com/jonathan/resume-docx/internal/parsing"
	"github.com/jonathan/resume-docx/internal/rendering"
	"github.com/jonathan/resume-docx/internal/types"
)

// Step names reported through progress events.
const (
	StepParse  = "parse"
	StepLayout = "layout"
	StepRender = "render"
	StepSave   = "save"
)

// ProgressEvent represents a progress update during a conversion
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when conversion progress occurs. It may be
// called from several goroutines during a batch.
type ProgressCallback func(event ProgressEvent)

// Options holds optional hooks for a conversion
type Options struct {
	OnProgress ProgressCallback
}

// Result holds every intermediate form of one conversion.
type Result struct {
	Resume     *types.ResumeDocument
	Layout     *layout.Document
	DOCX       []byte
	OutputPath string
}

func emitProgress(opts *Options, step, message string, content any) {
	if opts != nil && opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// ValidateInput rejects empty or whitespace-only HTML.
func ValidateInput(htmlContent string) error {
	if strings.TrimSpace(htmlContent) == "" {
		return &InputError{Message: "html content is empty", Cause: ErrEmptyInput}
	}
	return nil
}

// Convert turns resume HTML into .docx bytes. It runs synchronously and keeps
// no state between calls.
func Convert(ctx context.Context, htmlContent string, opts *Options) (*Result, error) {
	if err := ValidateInput(htmlContent); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resume, err := parsing.ParseResume(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parsing resume: %w", err)
	}
	emitProgress(opts, StepParse, fmt.Sprintf("Found %d sections (base font %.2fpt, line height %.2f)",
		len(resume.Sections), resume.Metrics.BaseFontSizePt, resume.Metrics.LineHeightMultiplier), resume)

	doc := layout.Compose(resume)
	emitProgress(opts, StepLayout, fmt.Sprintf("Laid out %d paragraphs", len(doc.Paragraphs)), nil)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := rendering.RenderDOCX(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	emitProgress(opts, StepRender, fmt.Sprintf("Rendered %d bytes", len(data)), nil)

	return &Result{
		Resume: resume,
		Layout: doc,
		DOCX:   data,
	}, nil
}

// ConvertToFile converts htmlContent and writes the document to outputPath.
// Write failures are returned as *rendering.EmissionError.
func ConvertToFile(ctx context.Context, htmlContent, outputPath string, opts *Options) (*Result, error) {
	result, err := Convert(ctx, htmlContent, opts)
	if err != nil {
		return nil, err
	}

	if err := rendering.Save(result.DOCX, outputPath); err != nil {
		return nil, err
	}
	result.OutputPath = outputPath
	emitProgress(opts, StepSave, "Saved to "+outputPath, nil)

	return result, nil
}
