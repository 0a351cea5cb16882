package parsing

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var lineBreaks = regexp.MustCompile(`[\n\r]+`)

// NormalizeText replaces every run of line feeds and carriage returns with a
// single space and trims the result. Other inner whitespace is kept as is.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(lineBreaks.ReplaceAllString(text, " "))
}

// joinedText concatenates the descendant text nodes of n, separated by a
// single space, skipping excluded subtrees.
func joinedText(n *html.Node, excluded nodeSet) string {
	var parts []string
	collectText(n, excluded, func(s string) {
		parts = append(parts, s)
	})
	return strings.Join(parts, " ")
}

// strippedText trims every descendant text node, drops empty ones and
// concatenates the rest without a separator.
func strippedText(n *html.Node, excluded nodeSet) string {
	var sb strings.Builder
	collectText(n, excluded, func(s string) {
		sb.WriteString(NormalizeText(s))
	})
	return sb.String()
}

// SelectionText returns the stripped text of the first node in sel.
func SelectionText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return strippedText(sel.Get(0), nil)
}

func collectText(n *html.Node, excluded nodeSet, emit func(string)) {
	if excluded.has(n) {
		return
	}
	switch n.Type {
	case html.TextNode:
		emit(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, excluded, emit)
	}
}

// nodeSet is a set of nodes hidden from text extraction and walking.
type nodeSet map[*html.Node]struct{}

func (s nodeSet) has(n *html.Node) bool {
	if s == nil {
		return false
	}
	_, ok := s[n]
	return ok
}

func (s nodeSet) add(sel *goquery.Selection) {
	for _, n := range sel.Nodes {
		s[n] = struct{}{}
	}
}
