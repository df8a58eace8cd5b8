package markdown

import "strings"

type lineKind int

const (
	lineOther lineKind = iota
	lineHeading
	lineItem
)

// scannedLine is the decomposition of one source line. Layout fields hold
// the exact bytes encountered so rendering can reproduce the line.
type scannedLine struct {
	kind lineKind

	// heading fields
	heading string // run of '#'
	pad     string // whitespace between marker and title
	title   string // remainder, verbatim to end of line

	// item fields
	indent    string
	bullet    byte
	bulletPad string
	box       string // "[ ]", "[x]" or "[X]"; empty when absent
	boxPad    string
	text      string
}

// scanLine classifies a single line. Anything that is not a recognizable
// heading or list item comes back as lineOther; the parser attaches those
// as prose rather than rejecting them.
func scanLine(raw string) scannedLine {
	if h, ok := scanHeading(raw); ok {
		return h
	}
	if it, ok := scanItem(raw); ok {
		return it
	}
	return scannedLine{kind: lineOther}
}

func scanHeading(raw string) (scannedLine, bool) {
	n := 0
	for n < len(raw) && raw[n] == '#' {
		n++
	}
	if n == 0 {
		return scannedLine{}, false
	}
	rest := raw[n:]
	// "#title" without a separating space is prose, not a heading.
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return scannedLine{}, false
	}
	pad := leadingWhitespace(rest)
	return scannedLine{
		kind:    lineHeading,
		heading: raw[:n],
		pad:     pad,
		title:   rest[len(pad):],
	}, true
}

func scanItem(raw string) (scannedLine, bool) {
	indent := leadingWhitespace(raw)
	rest := raw[len(indent):]
	if rest == "" {
		return scannedLine{}, false
	}
	bullet := rest[0]
	if bullet != '-' && bullet != '*' && bullet != '+' {
		return scannedLine{}, false
	}
	rest = rest[1:]
	// A bullet must be followed by whitespace (or end the line) to count as
	// a list item; this keeps "---" rules and "*emphasis*" out.
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return scannedLine{}, false
	}
	bulletPad := leadingWhitespace(rest)
	rest = rest[len(bulletPad):]

	ln := scannedLine{
		kind:      lineItem,
		indent:    indent,
		bullet:    bullet,
		bulletPad: bulletPad,
	}

	if box, ok := scanBox(rest); ok {
		ln.box = box
		rest = rest[len(box):]
		ln.boxPad = leadingWhitespace(rest)
		rest = rest[len(ln.boxPad):]
	}
	ln.text = rest
	return ln, true
}

// scanBox recognizes a checkbox token at the start of an item label. The
// token must be followed by whitespace or end the line.
func scanBox(s string) (string, bool) {
	if len(s) < 3 || s[0] != '[' || s[2] != ']' {
		return "", false
	}
	switch s[1] {
	case ' ', 'x', 'X':
	default:
		return "", false
	}
	if len(s) > 3 && s[3] != ' ' && s[3] != '\t' {
		return "", false
	}
	return s[:3], true
}

func leadingWhitespace(s string) string {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return s[:n]
}

// indentWidth measures visual indentation depth. Tabs advance four columns.
func indentWidth(indent string) int {
	w := 0
	for i := 0; i < len(indent); i++ {
		if indent[i] == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}

// isFence reports whether a line opens or closes a fenced code block.
func isFence(raw string) bool {
	return strings.HasPrefix(strings.TrimLeft(raw, " \t"), "```")
}
