package layout

import "github.com/jonathan/resume-docx/internal/types"

// Compose lays out the whole resume: header blocks, one separator, then each
// section title followed by its items, with a separator between sections.
func Compose(resume *types.ResumeDocument) *Document {
	metrics := resume.Metrics
	doc := &Document{
		Metrics:    metrics,
		Paragraphs: make([]Paragraph, 0, estimateParagraphs(resume)),
	}

	if resume.Name != nil {
		doc.Title = *resume.Name
		doc.Paragraphs = append(doc.Paragraphs, NameParagraph(*resume.Name, metrics))
	}
	if resume.Contact != nil {
		doc.Paragraphs = append(doc.Paragraphs, ContactParagraph(*resume.Contact, metrics))
	}
	doc.Paragraphs = append(doc.Paragraphs, SeparatorParagraph())

	for i, section := range resume.Sections {
		doc.Paragraphs = append(doc.Paragraphs, SectionTitleParagraph(section.Title, metrics))
		for _, item := range section.Items {
			doc.Paragraphs = append(doc.Paragraphs, ListItemParagraph(item, metrics))
		}
		if i < len(resume.Sections)-1 {
			doc.Paragraphs = append(doc.Paragraphs, SeparatorParagraph())
		}
	}

	return doc
}

func estimateParagraphs(resume *types.ResumeDocument) int {
	n := 3
	for _, s := range resume.Sections {
		n += len(s.Items) + 2
	}
	return n
}
