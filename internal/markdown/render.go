package markdown

import (
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// Render writes a document back to its structured text form. Layout bytes
// captured at parse time are replayed verbatim, so Render(Parse(t)) == t for
// any newline-terminated input; only items whose state was mutated have
// their checkbox rewritten (canonically as "[x]" / "[ ]").
func Render(doc *domain.Document) string {
	var b strings.Builder
	writeLines(&b, doc.Preamble)
	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			b.WriteString(sec.Heading)
			b.WriteString(sec.Pad)
			b.WriteString(sec.Title)
			b.WriteByte('\n')
		}
		writeLines(&b, sec.Prose)
		renderItems(&b, sec.Items)
	}
	return b.String()
}

func renderItems(b *strings.Builder, items []*domain.Item) {
	for _, it := range items {
		b.WriteString(it.Indent)
		b.WriteByte(it.Bullet)
		b.WriteString(it.BulletPad)
		if it.Box != "" {
			b.WriteString(it.Box)
			b.WriteString(it.BoxPad)
		}
		b.WriteString(it.Text)
		b.WriteByte('\n')
		writeLines(b, it.Prose)
		renderItems(b, it.Children)
	}
}

func writeLines(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
}
