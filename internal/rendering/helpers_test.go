package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// readPart returns the contents of one entry of a .docx package.
func readPart(t *testing.T, data []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return content
	}
	t.Fatalf("part %s not found in package", name)
	return nil
}

type attrVal struct {
	Val string `xml:"val,attr"`
}

type parsedDocument struct {
	Body struct {
		Paragraphs []parsedParagraph `xml:"p"`
	} `xml:"body"`
}

type parsedParagraph struct {
	PPr struct {
		PBdr *struct {
			Bottom struct {
				Val   string `xml:"val,attr"`
				Sz    string `xml:"sz,attr"`
				Space string `xml:"space,attr"`
				Color string `xml:"color,attr"`
			} `xml:"bottom"`
		} `xml:"pBdr"`
		Tabs []struct {
			Val string `xml:"val,attr"`
			Pos string `xml:"pos,attr"`
		} `xml:"tabs>tab"`
		Spacing *struct {
			Before   string `xml:"before,attr"`
			After    string `xml:"after,attr"`
			Line     string `xml:"line,attr"`
			LineRule string `xml:"lineRule,attr"`
		} `xml:"spacing"`
		Ind *struct {
			Left string `xml:"left,attr"`
		} `xml:"ind"`
		Jc *attrVal `xml:"jc"`
	} `xml:"pPr"`
	Runs []parsedRun `xml:"r"`
}

type parsedRun struct {
	RPr struct {
		B  *struct{} `xml:"b"`
		I  *struct{} `xml:"i"`
		Sz *attrVal  `xml:"sz"`
	} `xml:"rPr"`
	Content []struct {
		XMLName xml.Name
		Value   string `xml:",chardata"`
	} `xml:",any"`
}

// text joins w:t values and renders w:tab as '\t'.
func (r parsedRun) text() string {
	var s string
	for _, c := range r.Content {
		switch c.XMLName.Local {
		case "t":
			s += c.Value
		case "tab":
			s += "\t"
		}
	}
	return s
}

func (p parsedParagraph) text() string {
	var s string
	for _, r := range p.Runs {
		s += r.text()
	}
	return s
}

func parseDocumentPart(t *testing.T, data []byte) parsedDocument {
	t.Helper()
	var doc parsedDocument
	require.NoError(t, xml.Unmarshal(readPart(t, data, "word/document.xml"), &doc))
	return doc
}
