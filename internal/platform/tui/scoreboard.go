package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
	"github.com/vovakirdan/fruit-hunt/internal/progress"
)

// Progress screen layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show region list sidebar
	sidebarWidth       = 24 // Width of region list sidebar
)

// ProgressModel is the progress screen: one tab per region, one table row
// per fruit.
type ProgressModel struct {
	store       *progress.Store
	regions     []catalog.Region
	cursor      int // Currently selected region index
	table       table.Model
	styles      Styles
	keys        KeyMap
	width       int
	height      int
	goingBack   bool
	showSidebar bool
}

// NewProgressModel creates a new progress screen.
func NewProgressModel(store *progress.Store, styles Styles, width, height int) ProgressModel {
	m := ProgressModel{
		store:       store,
		regions:     store.Catalog().Regions(),
		styles:      styles,
		keys:        DefaultKeyMap(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized for the current window.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Fruit", Width: 18},
		{Title: "Status", Width: 10},
		{Title: "Tries", Width: 6},
		{Title: "Hints", Width: 6},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if tableWidth > 50 {
		columns[0].Width = min(tableWidth-26, 28)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 5)), // Leave room for header, summary and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.styles.Palette.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(m.styles.Palette.Title).
		Background(m.styles.Palette.Highlight).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the selected region's fruits.
func (m *ProgressModel) updateTableRows() {
	if len(m.regions) == 0 {
		m.table.SetRows(nil)
		return
	}

	fruits := m.regions[m.cursor].Fruits
	rows := make([]table.Row, len(fruits))
	for i, f := range fruits {
		fp, _ := m.store.Fruit(f.ID)
		status := "hidden"
		switch {
		case fp.Collected:
			status = "collected"
		case fp.Attempts > 0:
			status = "trying"
		}
		rows[i] = table.Row{
			f.Glyph + " " + f.Name,
			status,
			fmt.Sprintf("%d", fp.Attempts),
			fmt.Sprintf("%d", fp.HintsUsed),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Resize adapts the layout to a new window size.
func (m ProgressModel) Resize(width, height int) ProgressModel {
	m.width = width
	m.height = height
	m.showSidebar = width >= minWidthForSidebar
	if m.store == nil {
		return m
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// Update handles a key on the progress screen.
func (m ProgressModel) Update(msg tea.KeyMsg) (ProgressModel, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, nil

	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Right):
		if len(m.regions) > 0 {
			m.cursor = (m.cursor + 1) % len(m.regions)
			m.updateTableRows()
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.Left):
		if len(m.regions) > 0 {
			m.cursor = (m.cursor - 1 + len(m.regions)) % len(m.regions)
			m.updateTableRows()
		}
		return m, nil
	}

	// Pass the rest to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// IsGoingBack returns true if user wants to go back to the home menu.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// HelpKeys returns the bindings shown under the progress screen.
func (m ProgressModel) HelpKeys() helpKeys {
	return helpKeys{m.keys.Up, m.keys.Down, m.keys.NextTab, m.keys.PrevTab, m.keys.Back, m.keys.Quit}
}

// View renders the progress screen.
func (m ProgressModel) View() string {
	if m.store == nil {
		return ""
	}

	var b strings.Builder

	stats := m.store.Stats()
	b.WriteString(m.styles.Title.Render("MY PROGRESS"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("%s %d%%   fruits %d/%d   regions %d/%d   hints %d",
		progressBar(stats.Percent, 20), stats.Percent,
		stats.Collected, stats.Total,
		stats.CompletedRegions, stats.Regions,
		stats.HintsUsed)))
	b.WriteString("\n\n")

	if m.showSidebar {
		// Wide layout: sidebar + table
		b.WriteString(m.renderWideLayout())
	} else {
		// Narrow layout: region tabs + table
		b.WriteString(m.renderNarrowLayout())
	}
	return b.String()
}

// renderWideLayout renders the region list beside the table.
func (m ProgressModel) renderWideLayout() string {
	sidebarStyle := m.styles.Box.Width(sidebarWidth)

	var sidebar strings.Builder
	sidebar.WriteString("Regions\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, rs := range m.store.Regions() {
		cursor := "  "
		style := m.styles.Text
		if i == m.cursor {
			cursor = "> "
			style = m.styles.Cursor
		}
		name := truncate(rs.Region.DisplayName, sidebarWidth-12)
		sidebar.WriteString(style.Render(fmt.Sprintf("%s%-*s %3d%%", cursor, sidebarWidth-12, name, rs.Percent)))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())
	tableRendered := m.styles.Box.Render(m.table.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders region tabs above the table.
func (m ProgressModel) renderNarrowLayout() string {
	var b strings.Builder

	activeTabStyle := m.styles.Cursor.Padding(0, 1)

	tabs := make([]string, len(m.regions))
	for i, r := range m.regions {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(r.Theme + " " + r.Name)
		} else {
			tabs[i] = m.styles.Muted.Render(" " + r.Name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.regions) > 0 {
		// Just show current region with arrows
		tabLine = fmt.Sprintf("< %s >", m.regions[m.cursor].DisplayName)
	}
	b.WriteString(tabLine)
	b.WriteString("\n\n")
	b.WriteString(m.styles.Box.Render(m.table.View()))

	return b.String()
}

func (m Model) updateProgress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	if m.board.IsGoingBack() {
		m = m.goTo(screenHome)
		m.cursor = 1
		m.board = ProgressModel{}
		return m, nil
	}
	return m, cmd
}
