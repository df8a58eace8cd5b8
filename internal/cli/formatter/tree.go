package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// RenderChecklist renders a document as an indented tree with check glyphs,
// per-section counts, and 1-based item paths for use with check/uncheck.
// section < 0 renders every section.
func RenderChecklist(doc *domain.Document, section int) string {
	var b strings.Builder
	for si, sec := range doc.Sections {
		if section >= 0 && si != section {
			continue
		}
		if si > 0 && b.Len() > 0 {
			b.WriteByte('\n')
		}
		title := sec.Title
		if title == "" {
			title = "(untitled)"
		}
		prog := sec.Progress()
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			Dim(fmt.Sprintf("%d.", si+1)),
			StyleHeader.Render(title),
			FormatCount(prog.Checked, prog.Total),
		))
		renderItems(&b, sec.Items, domain.Path{si}, 1)
	}
	if b.Len() == 0 {
		return Dim("(empty checklist)") + "\n"
	}
	return b.String()
}

func renderItems(b *strings.Builder, items []*domain.Item, prefix domain.Path, depth int) {
	for i, it := range items {
		p := append(append(domain.Path{}, prefix...), i)
		text := it.Text
		if it.Checked {
			text = StyleDim.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			strings.Repeat("  ", depth),
			CheckMark(it.Checked),
			text,
			Dim(p.String()),
		))
		renderItems(b, it.Children, p, depth+1)
	}
}
