package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// checklistRow is a flattened row in the checklist tree.
type checklistRow struct {
	isSection bool
	title     string
	path      domain.Path // empty for section rows
	checked   bool
	depth     int
	progress  domain.Progress // section rows only
}

// checklistLoadedMsg signals that checklist data has been (re)loaded.
type checklistLoadedMsg struct {
	name string
	rows []checklistRow
	prog domain.Progress
	err  error
}

// checklistModel is the interactive checklist: navigate with j/k, toggle
// with space, quit with q.
type checklistModel struct {
	app    *App
	ref    string
	name   string
	rows   []checklistRow
	prog   domain.Progress
	cursor int

	loading bool
	err     error
}

func newChecklistModel(app *App, ref string) *checklistModel {
	return &checklistModel{app: app, ref: ref, loading: true}
}

func (m *checklistModel) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *checklistModel) Init() tea.Cmd {
	return m.load()
}

func (m *checklistModel) load() tea.Cmd {
	app, ref := m.app, m.ref
	return func() tea.Msg {
		doc, err := app.Documents.Get(context.Background(), ref)
		if err != nil {
			return checklistLoadedMsg{err: err}
		}
		return checklistLoadedMsg{
			name: doc.Name,
			rows: buildChecklistRows(doc),
			prog: doc.Progress(),
		}
	}
}

func (m *checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checklistLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.name = msg.name
		m.rows = msg.rows
		m.prog = msg.prog
		// A document can have no rows at all (prose-only file).
		if len(m.rows) == 0 {
			m.cursor = 0
		} else if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case " ", "space":
			if m.cursor >= 0 && m.cursor < len(m.rows) {
				row := m.rows[m.cursor]
				if !row.isSection {
					return m, m.toggle(row)
				}
			}
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m *checklistModel) toggle(row checklistRow) tea.Cmd {
	app, ref := m.app, m.ref
	return func() tea.Msg {
		if _, err := app.Checklist.SetChecked(context.Background(), ref, row.path, !row.checked); err != nil {
			return checklistLoadedMsg{err: err}
		}
		doc, err := app.Documents.Get(context.Background(), ref)
		if err != nil {
			return checklistLoadedMsg{err: err}
		}
		return checklistLoadedMsg{
			name: doc.Name,
			rows: buildChecklistRows(doc),
			prog: doc.Progress(),
		}
	}
}

func (m *checklistModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading checklist...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold(m.name) + "  " +
		formatter.RenderProgress(m.prog.Pct(), 16) + "\n\n")

	for i, row := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		if row.isSection {
			b.WriteString(fmt.Sprintf("%s%s  %s\n",
				cursor,
				formatter.StyleHeader.Render(row.title),
				formatter.FormatCount(row.progress.Checked, row.progress.Total)))
			continue
		}
		indent := strings.Repeat("  ", row.depth)
		title := row.title
		if row.checked {
			title = formatter.Dim(title)
		}
		b.WriteString(fmt.Sprintf("%s%s%s %s\n",
			cursor, indent, formatter.CheckMark(row.checked), title))
	}

	b.WriteString("\n  ")
	var hints []string
	for _, kb := range m.shortHelp() {
		hints = append(hints, kb.Help().Key+" "+kb.Help().Desc)
	}
	b.WriteString(formatter.Dim(strings.Join(hints, " · ")))
	b.WriteString("\n")
	return b.String()
}

// buildChecklistRows flattens a document into section and item rows.
func buildChecklistRows(doc *domain.Document) []checklistRow {
	var rows []checklistRow
	for si, sec := range doc.Sections {
		title := sec.Title
		if title == "" {
			title = "(untitled)"
		}
		rows = append(rows, checklistRow{
			isSection: true,
			title:     title,
			progress:  sec.Progress(),
		})

		var walk func(items []*domain.Item, prefix domain.Path, depth int)
		walk = func(items []*domain.Item, prefix domain.Path, depth int) {
			for i, it := range items {
				p := append(append(domain.Path{}, prefix...), i)
				rows = append(rows, checklistRow{
					title:   it.Text,
					path:    p,
					checked: it.Checked,
					depth:   depth,
				})
				walk(it.Children, p, depth+1)
			}
		}
		walk(sec.Items, domain.Path{si}, 1)
	}
	return rows
}
