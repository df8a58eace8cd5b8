package domain

import "time"

// Document is the in-memory form of one checklist. Sections and items are
// structurally immutable after parsing; only item checked state changes.
type Document struct {
	ID         string
	Name       string
	SourcePath string

	// Preamble holds raw prose lines appearing before the first heading.
	Preamble []string

	Sections []*Section

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Section is a named grouping of checklist items.
type Section struct {
	// Heading is the raw heading marker ("#", "##", ...). Empty for the
	// synthetic section that collects items appearing before any heading;
	// such a section serializes without a heading line.
	Heading string
	// Pad is the whitespace between the heading marker and the title,
	// preserved so rendering reproduces the source exactly.
	Pad   string
	Title string

	// Prose holds raw non-item lines between the heading and the first item.
	Prose []string

	Items []*Item
}

// Item is a single checklist entry. Layout fields capture the item line as
// written so an untouched item renders back byte-for-byte.
type Item struct {
	Text    string
	Checked bool

	Children []*Item

	// Prose holds raw lines attached to this item (trailing notes, blank
	// lines, fenced snippets) in source order.
	Prose []string

	Indent    string // leading whitespace exactly as written
	Bullet    byte   // '-', '*', or '+'
	BulletPad string // whitespace after the bullet
	Box       string // raw checkbox token ("[ ]", "[x]", "[X]"); empty when absent
	BoxPad    string // whitespace after the checkbox
}

// ItemAt resolves a path to an item. The first path component selects a
// section, the rest walk nested children.
func (d *Document) ItemAt(p Path) (*Item, error) {
	if len(p) < 2 {
		return nil, ErrNotFound
	}
	si := p[0]
	if si < 0 || si >= len(d.Sections) {
		return nil, ErrNotFound
	}
	items := d.Sections[si].Items
	var cur *Item
	for _, ord := range p[1:] {
		if ord < 0 || ord >= len(items) {
			return nil, ErrNotFound
		}
		cur = items[ord]
		items = cur.Children
	}
	return cur, nil
}

// SetChecked sets the checked flag of the item at p. On a bad path the
// document is left unmodified and ErrNotFound is returned. The checkbox
// token is rewritten canonically; this is the only place layout changes.
func (d *Document) SetChecked(p Path, value bool) error {
	item, err := d.ItemAt(p)
	if err != nil {
		return err
	}
	item.Checked = value
	if value {
		item.Box = "[x]"
	} else {
		item.Box = "[ ]"
	}
	if item.BoxPad == "" {
		item.BoxPad = " "
	}
	return nil
}

// WalkItems visits every item in the document in source order, including
// nested children. Returning false from fn stops the walk.
func (d *Document) WalkItems(fn func(p Path, it *Item) bool) {
	for si, sec := range d.Sections {
		if !walkItems(Path{si}, sec.Items, fn) {
			return
		}
	}
}

func walkItems(prefix Path, items []*Item, fn func(p Path, it *Item) bool) bool {
	for i, it := range items {
		p := append(append(Path{}, prefix...), i)
		if !fn(p, it) {
			return false
		}
		if !walkItems(p, it.Children, fn) {
			return false
		}
	}
	return true
}
