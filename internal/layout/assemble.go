package layout

import "github.com/jonathan/resume-docx/internal/types"

// Fixed layout constants for list items.
const (
	BulletGlyph        = "• "
	BulletIndentInches = 0.3
	RightTabStopInches = 6.0
	itemSpacingPt      = 1.0
)

// Header and section spacing in points.
const (
	nameSpaceAfterPt    = 6.0
	contactSpaceAfterPt = 12.0
	separatorSpacePt    = 8.0
	titleSpacingPt      = 6.0
)

// TitleBorder is the rule drawn under every section title.
var TitleBorder = Border{Style: "single", Size: 6, SpacePt: 1, Color: "000000"}

// ListItemParagraph lays out one list item. An item with no content still
// yields a paragraph so the vertical rhythm of the page is kept.
func ListItemParagraph(item types.ListItemLayout, metrics types.StyleMetrics) Paragraph {
	size := metrics.BodyFontSize()
	para := Paragraph{
		Runs:          make([]Run, 0, len(item.Fragments)+2),
		SpaceBeforePt: itemSpacingPt,
		SpaceAfterPt:  itemSpacingPt,
		LineSpacing:   metrics.LineHeightMultiplier,
	}

	if item.HasBulletMarker {
		para.LeftIndentInches = BulletIndentInches
		para.Runs = append(para.Runs, Run{Text: BulletGlyph, SizePt: size})
	}

	for _, f := range item.Fragments {
		para.Runs = append(para.Runs, Run{
			Text:   f.Content,
			SizePt: size,
			Bold:   f.Bold,
			Italic: f.Italic,
		})
	}

	if item.HasRightAlignedText() {
		para.Runs = append(para.Runs, Run{Text: "\t" + item.RightAlignedText, SizePt: size})
		para.TabStops = append(para.TabStops, TabStop{
			PositionInches: RightTabStopInches,
			Alignment:      TabRight,
		})
	}

	return para
}

// NameParagraph is the centered bold name header.
func NameParagraph(name string, metrics types.StyleMetrics) Paragraph {
	return Paragraph{
		Alignment:    AlignCenter,
		Runs:         []Run{{Text: name, SizePt: metrics.NameFontSize(), Bold: true}},
		SpaceAfterPt: nameSpaceAfterPt,
	}
}

// ContactParagraph is the centered contact line under the name.
func ContactParagraph(contact string, metrics types.StyleMetrics) Paragraph {
	return Paragraph{
		Alignment:    AlignCenter,
		Runs:         []Run{{Text: contact, SizePt: metrics.ContactFontSize()}},
		SpaceAfterPt: contactSpaceAfterPt,
	}
}

// SectionTitleParagraph is a bold title with a rule underneath.
func SectionTitleParagraph(title string, metrics types.StyleMetrics) Paragraph {
	border := TitleBorder
	return Paragraph{
		Runs:          []Run{{Text: title, SizePt: metrics.TitleFontSize(), Bold: true}},
		SpaceBeforePt: titleSpacingPt,
		SpaceAfterPt:  titleSpacingPt,
		BottomBorder:  &border,
	}
}

// SeparatorParagraph is an empty paragraph that adds vertical space.
func SeparatorParagraph() Paragraph {
	return Paragraph{SpaceAfterPt: separatorSpacePt}
}
