// Package layout turns a parsed resume into format-neutral paragraph descriptions.
package layout

import (
	"strings"

	"github.com/jonathan/resume-docx/internal/types"
)

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// TabAlignment is the alignment of text at a tab stop.
type TabAlignment int

const (
	TabLeft TabAlignment = iota
	TabRight
)

// Run is a span of text with uniform character formatting.
// A '\t' in Text advances to the next tab stop.
type Run struct {
	Text   string
	SizePt float64
	Bold   bool
	Italic bool
}

// TabStop is a tab position measured from the left margin.
type TabStop struct {
	PositionInches float64
	Alignment      TabAlignment
}

// Border describes a single paragraph edge line.
type Border struct {
	Style   string // e.g. "single"
	Size    int    // eighths of a point
	SpacePt int
	Color   string // RRGGBB
}

// Paragraph is one output paragraph. Zero spacing or line spacing means the
// value is inherited from the document defaults.
type Paragraph struct {
	Alignment        Alignment
	Runs             []Run
	LeftIndentInches float64
	TabStops         []TabStop
	SpaceBeforePt    float64
	SpaceAfterPt     float64
	LineSpacing      float64
	BottomBorder     *Border
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Document is the ordered paragraph list for one resume together with the
// metrics its default style is built from.
type Document struct {
	Title      string
	Metrics    types.StyleMetrics
	Paragraphs []Paragraph
}
