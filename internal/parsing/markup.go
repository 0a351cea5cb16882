package parsing

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jonathan/resume-docx/internal/types"
)

// nodeKind is the closed set of categories the walker dispatches on.
type nodeKind int

const (
	kindIgnored nodeKind = iota
	kindText
	kindBold
	kindItalic
	kindContainer
	kindPlain
)

// classify resolves the category of a single node.
func classify(n *html.Node) nodeKind {
	switch n.Type {
	case html.TextNode:
		return kindText
	case html.ElementNode:
		switch n.DataAtom {
		case atom.B, atom.Strong:
			return kindBold
		case atom.I, atom.Em:
			return kindItalic
		case atom.Span, atom.Div, atom.P:
			return kindContainer
		default:
			return kindPlain
		}
	default:
		return kindIgnored
	}
}

// markupWalker turns a node tree into an ordered fragment stream.
// Nodes in excluded are treated as if they were not in the tree.
type markupWalker struct {
	excluded  nodeSet
	fragments []types.TextFragment
}

// WalkFragments returns the fragments for the children of every node in sel,
// in document order.
func WalkFragments(sel *goquery.Selection) []types.TextFragment {
	w := &markupWalker{}
	for _, n := range sel.Nodes {
		w.walkChildren(n)
	}
	return w.result()
}

func (w *markupWalker) result() []types.TextFragment {
	if w.fragments == nil {
		return []types.TextFragment{}
	}
	return w.fragments
}

func (w *markupWalker) walkChildren(parent *html.Node) {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if w.excluded.has(c) {
			continue
		}
		w.visit(c)
	}
}

// visit emits fragments for one node. Formatting does not nest: a bold or
// italic element yields a single fragment covering all of its text.
func (w *markupWalker) visit(n *html.Node) {
	switch classify(n) {
	case kindText:
		w.emit(n.Data, false, false)
	case kindBold:
		w.emit(joinedText(n, w.excluded), true, false)
	case kindItalic:
		w.emit(joinedText(n, w.excluded), false, true)
	case kindContainer:
		w.walkChildren(n)
	case kindPlain:
		w.emit(joinedText(n, w.excluded), false, false)
	}
}

func (w *markupWalker) emit(raw string, bold, italic bool) {
	text := NormalizeText(raw)
	if text == "" {
		return
	}
	w.fragments = append(w.fragments, types.TextFragment{
		Content: text,
		Bold:    bold,
		Italic:  italic,
	})
}
