// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-docx/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintResume outputs a summary of the parsed resume structure.
func (p *Printer) PrintResume(resume *types.ResumeDocument) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", valueOrMissing(resume.Name)))
	sb.WriteString(fmt.Sprintf("Contact:  %s\n", valueOrMissing(resume.Contact)))
	sb.WriteString("\n")

	if len(resume.Sections) == 0 {
		sb.WriteString("No sections found")
		p.printBox("PARSED RESUME", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Sections: %d\n", len(resume.Sections)))
	count := min(len(resume.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		section := resume.Sections[i]
		sb.WriteString(fmt.Sprintf("  • %s (%d items)\n", section.Title, len(section.Items)))
		if len(section.Items) > 0 {
			sb.WriteString(fmt.Sprintf("      %s\n", itemPreview(section.Items[0])))
		}
	}
	if len(resume.Sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Sections)-maxItemsToShow))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetrics outputs the style metrics and the font sizes derived from them.
func (p *Printer) PrintMetrics(metrics types.StyleMetrics) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Base font size:   %.2fpt\n", metrics.BaseFontSizePt))
	sb.WriteString(fmt.Sprintf("Line height:      %.2f\n", metrics.LineHeightMultiplier))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Name:     %.2fpt\n", metrics.NameFontSize()))
	sb.WriteString(fmt.Sprintf("Contact:  %.2fpt\n", metrics.ContactFontSize()))
	sb.WriteString(fmt.Sprintf("Title:    %.2fpt\n", metrics.TitleFontSize()))
	sb.WriteString(fmt.Sprintf("Body:     %.2fpt", metrics.BodyFontSize()))

	p.printBox("STYLE METRICS", sb.String())
}

// PrintResult outputs where a document was written and how large it is.
func (p *Printer) PrintResult(outputPath string, paragraphs, sizeBytes int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Output:      %s\n", outputPath))
	sb.WriteString(fmt.Sprintf("Paragraphs:  %d\n", paragraphs))
	sb.WriteString(fmt.Sprintf("Size:        %s", formatBytes(sizeBytes)))

	p.printBox("DOCUMENT WRITTEN", sb.String())
}

// BatchEntry is one line of a batch summary.
type BatchEntry struct {
	Name       string
	OutputPath string
	Err        error
}

// PrintBatch outputs the outcome of every job in a batch, failures first.
func (p *Printer) PrintBatch(entries []BatchEntry) {
	if len(entries) == 0 {
		return
	}

	var failed, succeeded []BatchEntry
	for _, e := range entries {
		if e.Err != nil {
			failed = append(failed, e)
		} else {
			succeeded = append(succeeded, e)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Converted %d of %d files\n", len(succeeded), len(entries)))
	if len(failed) > 0 {
		sb.WriteString("\nFailed:\n")
		for _, e := range failed {
			sb.WriteString(fmt.Sprintf("  ✗ %s: %v\n", e.Name, e.Err))
		}
	}
	if len(succeeded) > 0 {
		sb.WriteString("\nWritten:\n")
		count := min(len(succeeded), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", succeeded[i].OutputPath))
		}
		if len(succeeded) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(succeeded)-maxItemsToShow))
		}
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

func valueOrMissing(s *string) string {
	if s == nil {
		return "(not found)"
	}
	return *s
}

func itemPreview(item types.ListItemLayout) string {
	parts := make([]string, 0, len(item.Fragments))
	for _, f := range item.Fragments {
		parts = append(parts, f.Content)
	}
	preview := strings.Join(parts, " ")
	if item.HasRightAlignedText() {
		preview += " | " + item.RightAlignedText
	}
	return preview
}

func formatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}
