package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"benchgate/internal/report"
	"benchgate/internal/results"
)

// browserKeyMap defines the keybindings for the browser.
type browserKeyMap struct {
	Quit key.Binding
	Up   key.Binding
	Down key.Binding
}

func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Quit},
	}
}

var browserKeys = browserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}

// rowItem adapts a comparison row to the list component.
type rowItem struct {
	row report.Row
}

func (i rowItem) Title() string {
	return i.row.Outcome.Glyph() + " " + i.row.Name
}

func (i rowItem) Description() string {
	base, head := "-", "-"
	if i.row.HasBase {
		base = report.FormatNs(i.row.BaseMean)
	}
	if i.row.HasHead {
		head = report.FormatNs(i.row.HeadMean)
	}
	diff := "-"
	if i.row.HasDiff {
		diff = fmt.Sprintf("%+.2f%%", i.row.Diff*100)
	}
	return fmt.Sprintf("%s -> %s (%s)", base, head, diff)
}

func (i rowItem) FilterValue() string { return i.row.Name }

// BrowserModel is an interactive view over a comparison: a row list on
// the left, per-benchmark sample details on the right.
type BrowserModel struct {
	keys browserKeyMap
	help help.Model

	comparison report.Comparison
	base, head results.Set

	rowList list.Model
	detail  viewport.Model

	width  int
	height int
	ready  bool
}

// NewBrowserModel creates a browser over a comparison and the sets it
// was computed from.
func NewBrowserModel(c report.Comparison, base, head results.Set) BrowserModel {
	items := make([]list.Item, len(c.Rows))
	for i, r := range c.Rows {
		items[i] = rowItem{row: r}
	}

	delegate := list.NewDefaultDelegate()
	rowList := list.New(items, delegate, 0, 0)
	rowList.Title = fmt.Sprintf("benchmark comparison: %s vs %s", report.ShortRev(c.BaseRev), report.ShortRev(c.HeadRev))
	rowList.Styles.Title = titleStyle

	m := BrowserModel{
		keys:       browserKeys,
		help:       help.New(),
		comparison: c,
		base:       base,
		head:       head,
		rowList:    rowList,
		detail:     viewport.New(0, 0),
	}
	m.updateDetail()
	return m
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

		listWidth := m.width / 2
		m.rowList.SetSize(listWidth-6, m.height-6)
		m.detail.Width = m.width - listWidth - 6
		m.detail.Height = m.height - 6

	case tea.KeyMsg:
		if m.rowList.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var listCmd, detailCmd tea.Cmd
	m.rowList, listCmd = m.rowList.Update(msg)
	m.detail, detailCmd = m.detail.Update(msg)
	cmds = append(cmds, listCmd, detailCmd)

	m.updateDetail()

	return m, tea.Batch(cmds...)
}

func (m BrowserModel) View() string {
	if !m.ready {
		return "\n  Loading comparison..."
	}

	listView := listPaneStyle.Render(m.rowList.View())
	detailView := detailPaneStyle.Render(m.detail.View())
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, listView, detailView)

	footer := footerStyle.Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, footer)
}

func (m *BrowserModel) updateDetail() {
	selected, ok := m.rowList.SelectedItem().(rowItem)
	if !ok {
		m.detail.SetContent("Select a benchmark to see details.")
		return
	}
	m.detail.SetContent(m.detailFor(selected.row))
}

func (m BrowserModel) detailFor(r report.Row) string {
	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(r.Name))
	b.WriteString("\n\n")

	status := r.Outcome.String()
	switch r.Outcome {
	case report.Improved:
		status = improvedStyle.Render(status)
	case report.Regressed:
		status = regressedStyle.Render(status)
	}
	fmt.Fprintf(&b, "Status: %s\n", status)

	if r.HasDiff {
		fmt.Fprintf(&b, "Diff: %+.2f%% (threshold %.0f%%)\n", r.Diff*100, m.comparison.Threshold*100)
	} else {
		fmt.Fprintf(&b, "Diff: - (threshold %.0f%%)\n", m.comparison.Threshold*100)
	}

	b.WriteString("\n")
	writeSideDetail(&b, "Base", m.base[r.Name])
	writeSideDetail(&b, "Head", m.head[r.Name])
	return b.String()
}

func writeSideDetail(b *strings.Builder, label string, agg *results.Aggregate) {
	if agg == nil || len(agg.Samples) == 0 {
		fmt.Fprintf(b, "%s: no samples\n", label)
		return
	}
	mean := results.Mean(agg.Samples)
	fmt.Fprintf(b, "%s: %s mean, %d samples", label, report.FormatNs(mean), len(agg.Samples))
	if len(agg.Samples) > 1 {
		fmt.Fprintf(b, ", stdev %s", report.FormatNs(results.Stdev(agg.Samples)))
	}
	b.WriteString("\n")
}

// Browse runs the interactive browser until the user quits. It is a
// variable so command tests can swap the program launcher out.
var Browse = func(c report.Comparison, base, head results.Set) error {
	p := tea.NewProgram(NewBrowserModel(c, base, head), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
