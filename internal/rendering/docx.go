package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-docx/internal/layout"
)

// ContentType is the MIME type of a .docx package.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Generator is written to the application properties of every package.
const Generator = "resume-docx"

// Entries get a fixed timestamp so identical input yields identical bytes.
var packageTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

const appXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
	`<Application>` + Generator + `</Application>` +
	`</Properties>`

// corePropsXML represents docProps/core.xml
type corePropsXML struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	NSCP    string   `xml:"xmlns:cp,attr"`
	NSDC    string   `xml:"xmlns:dc,attr"`
	Title   string   `xml:"dc:title,omitempty"`
	Creator string   `xml:"dc:creator"`
}

type packagePart struct {
	name string
	data []byte
}

// RenderDOCX serializes doc into the bytes of a .docx package.
func RenderDOCX(doc *layout.Document) ([]byte, error) {
	if doc == nil {
		return nil, &RenderError{Message: "document is nil"}
	}

	documentPart, err := marshalPart(buildDocumentXML(doc))
	if err != nil {
		return nil, &RenderError{Message: "failed to encode word/document.xml", Cause: err}
	}
	stylesPart, err := marshalPart(buildStylesXML(doc.Metrics))
	if err != nil {
		return nil, &RenderError{Message: "failed to encode word/styles.xml", Cause: err}
	}
	corePart, err := marshalPart(&corePropsXML{
		NSCP:    "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		NSDC:    "http://purl.org/dc/elements/1.1/",
		Title:   doc.Title,
		Creator: Generator,
	})
	if err != nil {
		return nil, &RenderError{Message: "failed to encode docProps/core.xml", Cause: err}
	}

	parts := []packagePart{
		{name: "[Content_Types].xml", data: []byte(contentTypesXML)},
		{name: "_rels/.rels", data: []byte(packageRelsXML)},
		{name: "word/document.xml", data: documentPart},
		{name: "word/styles.xml", data: stylesPart},
		{name: "word/_rels/document.xml.rels", data: []byte(documentRelsXML)},
		{name: "docProps/core.xml", data: corePart},
		{name: "docProps/app.xml", data: []byte(appXML)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: packageTime,
		})
		if err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to add %s", part.name), Cause: err}
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to write %s", part.name), Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalize package", Cause: err}
	}

	return buf.Bytes(), nil
}

func marshalPart(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Save writes data to path, creating parent directories as needed.
func Save(data []byte, path string) error {
	if path == "" {
		return &EmissionError{Path: path, Message: "output path is empty"}
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return &EmissionError{Path: path, Message: "failed to create output directory", Cause: err}
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &EmissionError{Path: path, Message: "failed to write output file", Cause: err}
	}
	return nil
}

// WriteDOCX renders doc and saves it to path.
func WriteDOCX(doc *layout.Document, path string) error {
	data, err := RenderDOCX(doc)
	if err != nil {
		return err
	}
	return Save(data, path)
}
