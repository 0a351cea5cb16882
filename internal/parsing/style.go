package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-docx/internal/types"
)

// PageSelector is the class of the page container whose rule carries the base metrics.
const PageSelector = ".a4-page"

// Points per unit for font-size values. em and rem are taken against a flat
// 12pt base; nothing is resolved through the cascade.
var unitToPoints = map[string]float64{
	"pt":  1.0,
	"px":  0.75,
	"em":  12.0,
	"rem": 12.0,
}

var (
	cssComment     = regexp.MustCompile(`(?s)/\*.*?\*/`)
	pageRule       = regexp.MustCompile(`(?:^|[\s,}>])` + regexp.QuoteMeta(PageSelector) + `\s*(?:,[^{}]*)?\{([^}]*)\}`)
	fontSizeDecl   = regexp.MustCompile(`(?i)(?:^|[;\s])font-size\s*:\s*([0-9]*\.?[0-9]+)\s*([a-z%]*)`)
	lineHeightDecl = regexp.MustCompile(`(?i)(?:^|[;\s])line-height\s*:\s*([0-9]*\.?[0-9]+)\s*([a-z%]*)`)
)

// ExtractStyleMetrics reads the base font size and line height declared for
// the page container in the embedded style blocks of htmlContent. Anything
// missing or unreadable falls back to the defaults.
func ExtractStyleMetrics(htmlContent string) types.StyleMetrics {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return types.DefaultStyleMetrics()
	}
	return extractStyleMetrics(doc)
}

func extractStyleMetrics(doc *goquery.Document) types.StyleMetrics {
	var sheets []string
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		sheets = append(sheets, s.Text())
	})
	return metricsFromCSS(strings.Join(sheets, "\n"))
}

// metricsFromCSS applies the first page container rule found in css.
func metricsFromCSS(css string) types.StyleMetrics {
	metrics := types.DefaultStyleMetrics()

	css = cssComment.ReplaceAllString(css, " ")
	match := pageRule.FindStringSubmatch(css)
	if match == nil {
		return metrics
	}
	block := match[1]

	if m := fontSizeDecl.FindStringSubmatch(block); m != nil {
		if value, err := strconv.ParseFloat(m[1], 64); err == nil && value > 0 {
			if size := ToPoints(value, m[2]); size > 0 {
				metrics.BaseFontSizePt = size
			}
		}
	}

	if m := lineHeightDecl.FindStringSubmatch(block); m != nil {
		if value, err := strconv.ParseFloat(m[1], 64); err == nil && value > 0 {
			switch strings.ToLower(m[2]) {
			case "":
				metrics.LineHeightMultiplier = value
			case "%":
				metrics.LineHeightMultiplier = value / 100
			}
		}
	}

	return metrics
}

// ToPoints converts a font-size value to points. Unknown or empty units are
// treated as points.
func ToPoints(value float64, unit string) float64 {
	factor, ok := unitToPoints[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		factor = 1.0
	}
	return value * factor
}
