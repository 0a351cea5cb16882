package parsing

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-docx/internal/types"
)

// Selectors of the structural markers emitted by the resume generator.
const (
	NameSelector         = "div.name-header"
	ContactSelector      = "div.contact-info"
	SectionTitleSelector = "div.section-title"
	SectionListSelector  = "ul.ul-section"
	BulletSelector       = "span.dot"
	RightLabelSelector   = "span.right-span"
)

// ParseResume builds the ResumeDocument for htmlContent. Missing blocks are
// skipped; only markup that cannot be read at all is reported.
func ParseResume(htmlContent string) (*types.ResumeDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ParseError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	resume := &types.ResumeDocument{
		Metrics:  extractStyleMetrics(doc),
		Sections: []types.SectionBlock{},
	}

	if name := doc.Find(NameSelector).First(); name.Length() > 0 {
		text := SelectionText(name)
		resume.Name = &text
	}
	if contact := doc.Find(ContactSelector).First(); contact.Length() > 0 {
		text := SelectionText(contact)
		resume.Contact = &text
	}

	doc.Find(SectionTitleSelector).Each(func(_ int, title *goquery.Selection) {
		resume.Sections = append(resume.Sections, parseSection(title))
	})

	return resume, nil
}

// parseSection pairs a title with the list element directly after it.
// Nothing past the next element sibling is considered.
func parseSection(title *goquery.Selection) types.SectionBlock {
	section := types.SectionBlock{
		Title: SelectionText(title),
		Items: []types.ListItemLayout{},
	}

	list := title.Next()
	if !list.Is(SectionListSelector) {
		return section
	}

	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		section.Items = append(section.Items, ParseListItem(li))
	})
	return section
}

// ParseListItem records the marker elements of li and walks the remaining
// content. The markup tree is not modified.
func ParseListItem(li *goquery.Selection) types.ListItemLayout {
	bullets := li.Find(BulletSelector)
	labels := li.Find(RightLabelSelector)

	excluded := nodeSet{}
	excluded.add(bullets)
	excluded.add(labels)

	item := types.ListItemLayout{
		HasBulletMarker: bullets.Length() > 0,
	}
	if labels.Length() > 0 {
		item.RightAlignedText = SelectionText(labels.First())
	}

	w := &markupWalker{excluded: excluded}
	for _, n := range li.Nodes {
		w.walkChildren(n)
	}
	item.Fragments = w.result()

	return item
}
