package domain

// Progress is a checked/total count over checklist items.
type Progress struct {
	Checked int
	Total   int
}

// Pct returns completion as a fraction in [0,1]. Zero items counts as 0.
func (p Progress) Pct() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Checked) / float64(p.Total)
}

// Progress counts all items in the document, nested children included.
func (d *Document) Progress() Progress {
	var p Progress
	for _, sec := range d.Sections {
		sp := sec.Progress()
		p.Checked += sp.Checked
		p.Total += sp.Total
	}
	return p
}

// SectionProgress counts items within one section by index.
func (d *Document) SectionProgress(i int) (Progress, error) {
	if i < 0 || i >= len(d.Sections) {
		return Progress{}, ErrNotFound
	}
	return d.Sections[i].Progress(), nil
}

// Progress counts this section's items, nested children included.
func (s *Section) Progress() Progress {
	var p Progress
	countItems(s.Items, &p)
	return p
}

func countItems(items []*Item, p *Progress) {
	for _, it := range items {
		p.Total++
		if it.Checked {
			p.Checked++
		}
		countItems(it.Children, p)
	}
}
