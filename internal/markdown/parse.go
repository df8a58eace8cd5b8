package markdown

import (
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// Parse reads a checklist from structured text. It never fails: heading
// lines open sections, bullet lines become items nested by indentation, and
// every other line (blank lines, prose, fenced code blocks) is attached as
// auxiliary text to the nearest preceding item, section, or the document
// preamble. Malformed nesting degrades to the nearest shallower parent.
func Parse(text string) *domain.Document {
	doc := &domain.Document{}

	var sec *domain.Section
	var lastItem *domain.Item

	// Stack of open items by indent width; the top is the innermost
	// candidate parent for the next item line.
	type openItem struct {
		item  *domain.Item
		width int
	}
	var stack []openItem

	attachProse := func(raw string) {
		switch {
		case lastItem != nil:
			lastItem.Prose = append(lastItem.Prose, raw)
		case sec != nil:
			sec.Prose = append(sec.Prose, raw)
		default:
			doc.Preamble = append(doc.Preamble, raw)
		}
	}

	inFence := false
	for _, raw := range splitLines(text) {
		// Inside a fence everything is prose, including bullet-looking
		// lines in config snippets.
		if inFence {
			attachProse(raw)
			if isFence(raw) {
				inFence = false
			}
			continue
		}
		if isFence(raw) {
			attachProse(raw)
			inFence = true
			continue
		}

		ln := scanLine(raw)
		switch ln.kind {
		case lineHeading:
			sec = &domain.Section{
				Heading: ln.heading,
				Pad:     ln.pad,
				Title:   ln.title,
			}
			doc.Sections = append(doc.Sections, sec)
			lastItem = nil
			stack = nil

		case lineItem:
			if sec == nil {
				// Items before any heading live in a synthetic untitled
				// section that renders without a heading line.
				sec = &domain.Section{}
				doc.Sections = append(doc.Sections, sec)
			}
			it := &domain.Item{
				Text:      ln.text,
				Checked:   ln.box == "[x]" || ln.box == "[X]",
				Indent:    ln.indent,
				Bullet:    ln.bullet,
				BulletPad: ln.bulletPad,
				Box:       ln.box,
				BoxPad:    ln.boxPad,
			}
			w := indentWidth(ln.indent)
			for len(stack) > 0 && stack[len(stack)-1].width >= w {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				sec.Items = append(sec.Items, it)
			} else {
				parent := stack[len(stack)-1].item
				parent.Children = append(parent.Children, it)
			}
			stack = append(stack, openItem{item: it, width: w})
			lastItem = it

		default:
			attachProse(raw)
		}
	}

	return doc
}

// splitLines splits on '\n' without producing a phantom empty line for a
// trailing newline. Render emits every line newline-terminated, so a source
// missing its final newline gains one; that is the only normalization.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
