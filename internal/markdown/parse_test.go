package markdown

import (
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleChecklist = `# Migration Checklist

Preparation steps before the move.

## General Fixup

- [x] Upgrade runtime to a supported version
- [ ] Pin dependency versions
  - [ ] Generate a lock file
  - [ ] Audit transitive dependencies
- [ ] Remove dead code paths

## Configuration

Externalize anything environment-specific.

- [ ] Move secrets out of the repository
- [X] Add a health check endpoint
`

func TestParse_SectionsAndItems(t *testing.T) {
	doc := Parse(sampleChecklist)

	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "Migration Checklist", doc.Sections[0].Title)
	assert.Equal(t, "#", doc.Sections[0].Heading)
	assert.Equal(t, "General Fixup", doc.Sections[1].Title)
	assert.Equal(t, "Configuration", doc.Sections[2].Title)

	fixup := doc.Sections[1]
	require.Len(t, fixup.Items, 3)
	assert.Equal(t, "Upgrade runtime to a supported version", fixup.Items[0].Text)
	assert.True(t, fixup.Items[0].Checked)
	assert.False(t, fixup.Items[1].Checked)
	require.Len(t, fixup.Items[1].Children, 2)
	assert.Equal(t, "Generate a lock file", fixup.Items[1].Children[0].Text)
}

func TestParse_UppercaseBoxIsChecked(t *testing.T) {
	doc := Parse(sampleChecklist)
	cfg := doc.Sections[2]
	require.Len(t, cfg.Items, 2)
	assert.True(t, cfg.Items[1].Checked)
	assert.Equal(t, "[X]", cfg.Items[1].Box)
}

func TestParse_ProseAttachment(t *testing.T) {
	doc := Parse(sampleChecklist)

	// The intro line and its surrounding blanks belong to the first section.
	assert.Contains(t, doc.Sections[0].Prose, "Preparation steps before the move.")
	// The configuration intro sits on its section, not on any item.
	assert.Contains(t, doc.Sections[2].Prose, "Externalize anything environment-specific.")
}

func TestParse_PreambleBeforeFirstHeading(t *testing.T) {
	doc := Parse("just some notes\n\n# Real Section\n- [ ] task\n")
	assert.Equal(t, []string{"just some notes", ""}, doc.Preamble)
	require.Len(t, doc.Sections, 1)
}

func TestParse_ItemsBeforeAnyHeading(t *testing.T) {
	doc := Parse("- [ ] orphan task\n- [x] another\n")

	require.Len(t, doc.Sections, 1)
	sec := doc.Sections[0]
	assert.Empty(t, sec.Heading)
	assert.Empty(t, sec.Title)
	require.Len(t, sec.Items, 2)
	assert.True(t, sec.Items[1].Checked)
}

func TestParse_Empty(t *testing.T) {
	doc := Parse("")
	assert.Empty(t, doc.Sections)
	assert.Empty(t, doc.Preamble)
	assert.Equal(t, domain.Progress{}, doc.Progress())
}

func TestParse_OrphanIndentAttachesToNearestShallower(t *testing.T) {
	// The 6-space item has no 4-space parent above it; it must attach to
	// the nearest preceding shallower item (the 2-space one).
	doc := Parse("## S\n- [ ] a\n  - [ ] b\n      - [ ] deep\n- [ ] c\n")

	sec := doc.Sections[0]
	require.Len(t, sec.Items, 2)
	b := sec.Items[0].Children[0]
	require.Len(t, b.Children, 1)
	assert.Equal(t, "deep", b.Children[0].Text)
}

func TestParse_DedentBeyondAllParentsAttachesToSection(t *testing.T) {
	doc := Parse("## S\n    - [ ] floating\n- [ ] grounded\n")

	sec := doc.Sections[0]
	require.Len(t, sec.Items, 2)
	assert.Equal(t, "floating", sec.Items[0].Text)
	assert.Empty(t, sec.Items[0].Children)
}

func TestParse_TabIndentNests(t *testing.T) {
	doc := Parse("## S\n- [ ] parent\n\t- [ ] child\n")

	sec := doc.Sections[0]
	require.Len(t, sec.Items, 1)
	require.Len(t, sec.Items[0].Children, 1)
	assert.Equal(t, "child", sec.Items[0].Children[0].Text)
}

func TestParse_FencedBlockIsProse(t *testing.T) {
	text := "## Config\n- [ ] review settings\n```yaml\n- not: an item\n# not a heading\n```\n- [ ] second item\n"
	doc := Parse(text)

	sec := doc.Sections[0]
	require.Len(t, sec.Items, 2)
	assert.Equal(t, []string{"```yaml", "- not: an item", "# not a heading", "```"}, sec.Items[0].Prose)
}

func TestParse_NonItemBulletLookalikes(t *testing.T) {
	doc := Parse("## S\n---\n*emphasis* text\n-nodash\n- [ ] real item\n")

	sec := doc.Sections[0]
	require.Len(t, sec.Items, 1)
	assert.Equal(t, "real item", sec.Items[0].Text)
	assert.Equal(t, []string{"---", "*emphasis* text", "-nodash"}, sec.Prose)
}

func TestParse_ItemWithoutBox(t *testing.T) {
	doc := Parse("## S\n- plain bullet\n- [ ] boxed\n")

	sec := doc.Sections[0]
	require.Len(t, sec.Items, 2)
	assert.Empty(t, sec.Items[0].Box)
	assert.False(t, sec.Items[0].Checked)
	assert.Equal(t, "plain bullet", sec.Items[0].Text)
	// Bare bullets still count toward progress.
	assert.Equal(t, domain.Progress{Checked: 0, Total: 2}, doc.Progress())
}

func TestParse_ProseBetweenSiblingsAttachesToPreceding(t *testing.T) {
	doc := Parse("## S\n- [ ] first\n  see the runbook\n- [ ] second\n")

	sec := doc.Sections[0]
	require.Len(t, sec.Items, 2)
	assert.Equal(t, []string{"  see the runbook"}, sec.Items[0].Prose)
	assert.Empty(t, sec.Items[1].Prose)
}

func TestParse_CountProgressAcrossSections(t *testing.T) {
	// Two sections, first with 3 items (1 checked), second with 2 items.
	doc := Parse("## A\n- [x] one\n- [ ] two\n- [ ] three\n## B\n- [ ] four\n- [ ] five\n")

	assert.Equal(t, domain.Progress{Checked: 1, Total: 5}, doc.Progress())
	first, err := doc.SectionProgress(0)
	require.NoError(t, err)
	assert.Equal(t, domain.Progress{Checked: 1, Total: 3}, first)
}
