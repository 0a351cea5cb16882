package rendering

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/jonathan/resume-docx/internal/layout"
	"github.com/jonathan/resume-docx/internal/types"
)

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Default fonts of the Normal style.
const (
	LatinFont    = "Arial"
	EastAsiaFont = "SimSun"
)

// Letter page with one inch margins, in twips.
const (
	pageWidth  = 12240
	pageHeight = 15840
	pageMargin = 1440
)

// documentXML represents word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	NSW     string   `xml:"xmlns:w,attr"`
	NSR     string   `xml:"xmlns:r,attr"`
	Body    bodyXML  `xml:"w:body"`
}

type bodyXML struct {
	Paragraphs []paragraphXML `xml:"w:p"`
	SectPr     sectPrXML      `xml:"w:sectPr"`
}

type paragraphXML struct {
	PPr  *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Runs []runXML           `xml:"w:r"`
}

// paragraphPropsXML lists children in the order the schema requires.
type paragraphPropsXML struct {
	PBdr    *borderSetXML `xml:"w:pBdr,omitempty"`
	Tabs    *tabsXML      `xml:"w:tabs,omitempty"`
	Spacing *spacingXML   `xml:"w:spacing,omitempty"`
	Ind     *indentXML    `xml:"w:ind,omitempty"`
	Jc      *valXML       `xml:"w:jc,omitempty"`
}

type borderSetXML struct {
	Bottom borderXML `xml:"w:bottom"`
}

type borderXML struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type tabsXML struct {
	Tabs []tabXML `xml:"w:tab"`
}

type tabXML struct {
	Val string `xml:"w:val,attr"`
	Pos int    `xml:"w:pos,attr"`
}

type spacingXML struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type indentXML struct {
	Left int `xml:"w:left,attr"`
}

type valXML struct {
	Val string `xml:"w:val,attr"`
}

type onOffXML struct{}

type runPropsXML struct {
	RFonts *fontsXML `xml:"w:rFonts,omitempty"`
	B      *onOffXML `xml:"w:b,omitempty"`
	BCs    *onOffXML `xml:"w:bCs,omitempty"`
	I      *onOffXML `xml:"w:i,omitempty"`
	ICs    *onOffXML `xml:"w:iCs,omitempty"`
	Sz     *valXML   `xml:"w:sz,omitempty"`
	SzCs   *valXML   `xml:"w:szCs,omitempty"`
	Lang   *langXML  `xml:"w:lang,omitempty"`
}

type fontsXML struct {
	ASCII    string `xml:"w:ascii,attr"`
	HAnsi    string `xml:"w:hAnsi,attr"`
	EastAsia string `xml:"w:eastAsia,attr"`
	CS       string `xml:"w:cs,attr"`
}

type langXML struct {
	Val      string `xml:"w:val,attr"`
	EastAsia string `xml:"w:eastAsia,attr"`
}

// runXML represents w:r. Text is split on '\t' into w:t and w:tab children.
type runXML struct {
	Props *runPropsXML
	Text  string
}

type textXML struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

// MarshalXML writes the run properties followed by its text and tab elements.
func (r runXML) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: xml.Name{Local: "w:r"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.Props != nil {
		if err := e.EncodeElement(r.Props, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}
	for i, part := range strings.Split(r.Text, "\t") {
		if i > 0 {
			if err := e.EncodeElement(onOffXML{}, xml.StartElement{Name: xml.Name{Local: "w:tab"}}); err != nil {
				return err
			}
		}
		if part == "" {
			continue
		}
		if err := e.EncodeElement(textXML{Space: "preserve", Value: part}, xml.StartElement{Name: xml.Name{Local: "w:t"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

type sectPrXML struct {
	PgSz  pageSizeXML   `xml:"w:pgSz"`
	PgMar pageMarginXML `xml:"w:pgMar"`
}

type pageSizeXML struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type pageMarginXML struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// stylesXML represents word/styles.xml
type stylesXML struct {
	XMLName     xml.Name       `xml:"w:styles"`
	NSW         string         `xml:"xmlns:w,attr"`
	DocDefaults docDefaultsXML `xml:"w:docDefaults"`
	Styles      []styleDefXML  `xml:"w:style"`
}

type docDefaultsXML struct {
	RPrDefault rPrDefaultXML `xml:"w:rPrDefault"`
	PPrDefault pPrDefaultXML `xml:"w:pPrDefault"`
}

type rPrDefaultXML struct {
	RPr runPropsXML `xml:"w:rPr"`
}

type pPrDefaultXML struct {
	PPr paragraphPropsXML `xml:"w:pPr"`
}

type styleDefXML struct {
	Type    string            `xml:"w:type,attr"`
	Default string            `xml:"w:default,attr,omitempty"`
	StyleID string            `xml:"w:styleId,attr"`
	Name    valXML            `xml:"w:name"`
	QFormat *onOffXML         `xml:"w:qFormat,omitempty"`
	PPr     paragraphPropsXML `xml:"w:pPr"`
	RPr     runPropsXML       `xml:"w:rPr"`
}

// buildDocumentXML converts laid-out paragraphs to their OOXML form.
func buildDocumentXML(doc *layout.Document) *documentXML {
	body := bodyXML{
		Paragraphs: make([]paragraphXML, 0, len(doc.Paragraphs)),
		SectPr: sectPrXML{
			PgSz: pageSizeXML{W: pageWidth, H: pageHeight},
			PgMar: pageMarginXML{
				Top: pageMargin, Right: pageMargin, Bottom: pageMargin, Left: pageMargin,
				Header: 720, Footer: 720,
			},
		},
	}
	for _, p := range doc.Paragraphs {
		body.Paragraphs = append(body.Paragraphs, buildParagraphXML(p))
	}
	return &documentXML{NSW: nsW, NSR: nsR, Body: body}
}

func buildParagraphXML(p layout.Paragraph) paragraphXML {
	props := &paragraphPropsXML{}

	if p.BottomBorder != nil {
		props.PBdr = &borderSetXML{Bottom: borderXML{
			Val:   p.BottomBorder.Style,
			Sz:    p.BottomBorder.Size,
			Space: p.BottomBorder.SpacePt,
			Color: p.BottomBorder.Color,
		}}
	}

	if len(p.TabStops) > 0 {
		props.Tabs = &tabsXML{}
		for _, ts := range p.TabStops {
			val := "left"
			if ts.Alignment == layout.TabRight {
				val = "right"
			}
			props.Tabs.Tabs = append(props.Tabs.Tabs, tabXML{Val: val, Pos: twips(ts.PositionInches)})
		}
	}

	props.Spacing = buildSpacingXML(p.SpaceBeforePt, p.SpaceAfterPt, p.LineSpacing)

	if p.LeftIndentInches > 0 {
		props.Ind = &indentXML{Left: twips(p.LeftIndentInches)}
	}
	if p.Alignment == layout.AlignCenter {
		props.Jc = &valXML{Val: "center"}
	}

	para := paragraphXML{Runs: make([]runXML, 0, len(p.Runs))}
	if props.PBdr != nil || props.Tabs != nil || props.Spacing != nil || props.Ind != nil || props.Jc != nil {
		para.PPr = props
	}
	for _, r := range p.Runs {
		para.Runs = append(para.Runs, buildRunXML(r))
	}
	return para
}

func buildSpacingXML(beforePt, afterPt, line float64) *spacingXML {
	if beforePt <= 0 && afterPt <= 0 && line <= 0 {
		return nil
	}
	s := &spacingXML{}
	if beforePt > 0 {
		s.Before = strconv.Itoa(twentieths(beforePt))
	}
	if afterPt > 0 {
		s.After = strconv.Itoa(twentieths(afterPt))
	}
	if line > 0 {
		s.Line = strconv.Itoa(autoLine(line))
		s.LineRule = "auto"
	}
	return s
}

func buildRunXML(r layout.Run) runXML {
	props := &runPropsXML{}
	if r.Bold {
		props.B = &onOffXML{}
		props.BCs = &onOffXML{}
	}
	if r.Italic {
		props.I = &onOffXML{}
		props.ICs = &onOffXML{}
	}
	if r.SizePt > 0 {
		sz := strconv.Itoa(halfPoints(r.SizePt))
		props.Sz = &valXML{Val: sz}
		props.SzCs = &valXML{Val: sz}
	}
	return runXML{Props: props, Text: r.Text}
}

// buildStylesXML sets the document defaults and the Normal style from the
// page metrics so that paragraphs without overrides inherit them.
func buildStylesXML(metrics types.StyleMetrics) *stylesXML {
	sz := strconv.Itoa(halfPoints(metrics.BaseFontSizePt))
	runDefaults := runPropsXML{
		RFonts: &fontsXML{ASCII: LatinFont, HAnsi: LatinFont, EastAsia: EastAsiaFont, CS: LatinFont},
		Sz:     &valXML{Val: sz},
		SzCs:   &valXML{Val: sz},
	}
	paraDefaults := paragraphPropsXML{
		Spacing: &spacingXML{
			After:    "0",
			Line:     strconv.Itoa(autoLine(metrics.LineHeightMultiplier)),
			LineRule: "auto",
		},
	}

	defaultsRun := runDefaults
	defaultsRun.Lang = &langXML{Val: "en-US", EastAsia: "zh-CN"}

	return &stylesXML{
		NSW: nsW,
		DocDefaults: docDefaultsXML{
			RPrDefault: rPrDefaultXML{RPr: defaultsRun},
			PPrDefault: pPrDefaultXML{PPr: paraDefaults},
		},
		Styles: []styleDefXML{{
			Type:    "paragraph",
			Default: "1",
			StyleID: "Normal",
			Name:    valXML{Val: "Normal"},
			QFormat: &onOffXML{},
			PPr:     paraDefaults,
			RPr:     runDefaults,
		}},
	}
}
