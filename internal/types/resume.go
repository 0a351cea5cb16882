// Package types provides type definitions for structured data used throughout the resume-docx system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Default page metrics used when the markup declares none.
const (
	DefaultBaseFontSizePt       = 11.0
	DefaultLineHeightMultiplier = 1.15
)

// Font size multipliers relative to the base font size.
const (
	NameFontScale    = 2.38
	ContactFontScale = 1.14
	TitleFontScale   = 1.24
	BodyFontScale    = 1.0
)

// StyleMetrics holds the page-level font metrics extracted from embedded style rules.
type StyleMetrics struct {
	BaseFontSizePt       float64 `json:"base_font_size_pt"`
	LineHeightMultiplier float64 `json:"line_height_multiplier"`
}

// DefaultStyleMetrics returns the metrics used when no page rule is found.
func DefaultStyleMetrics() StyleMetrics {
	return StyleMetrics{
		BaseFontSizePt:       DefaultBaseFontSizePt,
		LineHeightMultiplier: DefaultLineHeightMultiplier,
	}
}

// NameFontSize is the font size of the name header in points.
func (m StyleMetrics) NameFontSize() float64 { return m.BaseFontSizePt * NameFontScale }

// ContactFontSize is the font size of the contact line in points.
func (m StyleMetrics) ContactFontSize() float64 { return m.BaseFontSizePt * ContactFontScale }

// TitleFontSize is the font size of section titles in points.
func (m StyleMetrics) TitleFontSize() float64 { return m.BaseFontSizePt * TitleFontScale }

// BodyFontSize is the font size of list item text in points.
func (m StyleMetrics) BodyFontSize() float64 { return m.BaseFontSizePt * BodyFontScale }

// TextFragment is one contiguous run of text with uniform formatting.
// Content is never empty and never contains '\n' or '\r'.
type TextFragment struct {
	Content string `json:"content"`
	Bold    bool   `json:"bold,omitempty"`
	Italic  bool   `json:"italic,omitempty"`
}

// ListItemLayout describes one list item after marker elements have been excised.
type ListItemLayout struct {
	HasBulletMarker  bool           `json:"has_bullet_marker"`
	Fragments        []TextFragment `json:"fragments"`
	RightAlignedText string         `json:"right_aligned_text,omitempty"`
}

// HasRightAlignedText reports whether the item carries a right-aligned label.
func (l ListItemLayout) HasRightAlignedText() bool {
	return l.RightAlignedText != ""
}

// SectionBlock is a section title paired with the items of its following list.
type SectionBlock struct {
	Title string           `json:"title"`
	Items []ListItemLayout `json:"items"`
}

// ResumeDocument is the root structure assembled from the markup before emission.
// Name and Contact are nil when the corresponding block is absent.
type ResumeDocument struct {
	Name     *string        `json:"name,omitempty"`
	Contact  *string        `json:"contact,omitempty"`
	Sections []SectionBlock `json:"sections"`
	Metrics  StyleMetrics   `json:"metrics"`
}
