package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-hunt/internal/feedback"
)

func (m Model) updateRegions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	regions := m.store.Catalog().Regions()

	switch action := m.keys.MenuAction(msg); action {
	case MenuActionQuit:
		return m.quit()

	case MenuActionUp, MenuActionDown:
		m.cursor = moveCursor(m.cursor, len(regions), action)

	case MenuActionSelect:
		if len(regions) == 0 {
			return m, nil
		}
		m.region = regions[m.cursor]
		m.play(feedback.CueWalk)
		return m.goTo(screenExplore), nil

	case MenuActionBack:
		m = m.goTo(screenHome)
	}
	return m, nil
}

func (m Model) viewRegions() (string, helpKeys) {
	var b strings.Builder
	b.WriteString(m.title("Where to, " + m.store.PlayerName() + "?"))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, r := range m.store.Catalog().Regions() {
		nameWidth = max(nameWidth, len(r.DisplayName))
	}

	for i, rs := range m.store.Regions() {
		r := rs.Region
		line := fmt.Sprintf("%s %-*s %s %s", r.Theme, nameWidth, r.DisplayName,
			progressBar(rs.Percent, 12), percentLabel(rs.Collected, rs.Total, rs.Percent))
		if rs.Total > 0 && rs.Collected == rs.Total {
			line += " *"
		}
		b.WriteString(m.listItem(i == m.cursor, line))
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(m.styles.Muted.Render("     " + r.Description))
			b.WriteString("\n")
		}
	}

	return b.String(), helpKeys{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Back, m.keys.Quit}
}

func (m Model) updateExplore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fruits := m.region.Fruits

	switch action := m.keys.MenuAction(msg); action {
	case MenuActionQuit:
		return m.quit()

	case MenuActionUp, MenuActionDown:
		m.cursor = moveCursor(m.cursor, len(fruits), action)

	case MenuActionSelect:
		if len(fruits) == 0 {
			return m, nil
		}
		fruit := fruits[m.cursor]
		if fp, _ := m.store.Fruit(fruit.ID); fp.Collected {
			m.notice = notice{text: fruit.Glyph + " " + fruit.FunFact, kind: noticeInfo}
			return m, nil
		}
		return m.openQuiz(fruit.ID)

	case MenuActionBack:
		cursor := m.regionIndex()
		m = m.goTo(screenRegions)
		m.cursor = cursor
	}
	return m, nil
}

// regionIndex is the list position of the region being explored.
func (m Model) regionIndex() int {
	for i, r := range m.store.Catalog().Regions() {
		if r.ID == m.region.ID {
			return i
		}
	}
	return 0
}

func (m Model) viewExplore() (string, helpKeys) {
	r := m.region
	collected, total := m.store.RegionCollected(r.ID)

	var b strings.Builder
	b.WriteString(m.title(fmt.Sprintf("%s %s", r.Theme, r.DisplayName)))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(r.Description))
	b.WriteString("\n\n")

	// Fruits are laid out in two columns, roughly where they sit on the map.
	var rows []string
	for i, f := range r.Fruits {
		fp, _ := m.store.Fruit(f.ID)
		mark := "[ ]"
		if fp.Collected {
			mark = "[x]"
		}
		label := fmt.Sprintf("%s %s %-14s", mark, f.Glyph, truncate(f.Name, 14))
		item := m.listItem(i == m.cursor, label)
		if fp.Collected && i != m.cursor {
			item = m.styles.Good.Render("  " + label)
		}
		rows = append(rows, item)
	}
	half := (len(rows) + 1) / 2
	for i := 0; i < half; i++ {
		line := rows[i]
		if j := i + half; j < len(rows) {
			line += "   " + rows[j]
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	percent := m.store.RegionProgressPercent(r.ID)
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("%s %s", progressBar(percent, 24), percentLabel(collected, total, percent))))

	return b.String(), helpKeys{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Back, m.keys.Quit}
}
