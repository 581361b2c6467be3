package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-hunt/internal/feedback"
	"github.com/vovakirdan/fruit-hunt/internal/player"
)

// MenuItem is one entry of the home menu.
type MenuItem struct {
	Title  string
	Target screen
}

var homeItems = []MenuItem{
	{Title: "Explore regions", Target: screenRegions},
	{Title: "My progress", Target: screenProgress},
	{Title: "Settings", Target: screenSettings},
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(homeItems) + 1 // + Quit

	switch action := m.keys.MenuAction(msg); action {
	case MenuActionQuit:
		return m.quit()

	case MenuActionUp, MenuActionDown:
		m.cursor = moveCursor(m.cursor, n, action)

	case MenuActionSelect:
		if m.cursor == len(homeItems) {
			return m.quit()
		}
		m.play(feedback.CueClick)
		return m.open(homeItems[m.cursor].Target), nil
	}
	return m, nil
}

// open enters a screen from the home menu.
func (m Model) open(s screen) Model {
	m = m.goTo(s)
	if s == screenProgress {
		m.board = NewProgressModel(m.store, m.styles, m.width, m.height)
	}
	return m
}

func (m Model) viewHome() (string, helpKeys) {
	var b strings.Builder

	b.WriteString(m.title("F R U I T   H U N T"))
	b.WriteString("\n\n")

	greeting := "Hello, " + m.store.PlayerName() + "!"
	if c, ok := player.CharacterByID(m.store.Character()); ok {
		greeting = fmt.Sprintf("%s Hello, %s! Ready to explore with %s?", c.Glyph, m.store.PlayerName(), c.Name)
	}
	b.WriteString(m.styles.Subtitle.Render(greeting))
	b.WriteString("\n\n")

	stats := m.store.Stats()
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("%s %d%%", progressBar(stats.Percent, 30), stats.Percent)))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d of %d fruits collected", stats.Collected, stats.Total)))
	b.WriteString("\n\n")

	for i, item := range homeItems {
		b.WriteString(m.listItem(i == m.cursor, item.Title))
		b.WriteString("\n")
	}
	b.WriteString(m.listItem(m.cursor == len(homeItems), "Quit"))

	return b.String(), helpKeys{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Quit}
}

func (m Model) updateVictory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		return m.quit()
	case MenuActionSelect, MenuActionBack:
		return m.goTo(screenHome), nil
	}

	if key.Matches(msg, m.keys.Replay) {
		if err := m.store.ResetProgress(m.ctx); err != nil {
			return m.saveFailed("progress", err), nil
		}
		m.play(feedback.CueClick)
		m = m.goTo(screenHome)
		m.notice = notice{text: "A new hunt begins!", kind: noticeGood}
	}
	return m, nil
}

func (m Model) viewVictory() (string, helpKeys) {
	stats := m.store.Stats()

	var b strings.Builder
	b.WriteString(m.title("*  YOU DID IT!  *"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Good.Render(fmt.Sprintf("%s collected all %d fruits!", m.store.PlayerName(), stats.Total)))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Regions completed  %d/%d", stats.CompletedRegions, stats.Regions),
		fmt.Sprintf("Answers given      %d", stats.Attempts),
		fmt.Sprintf("Hints used         %d", stats.HintsUsed),
	}
	b.WriteString(m.styles.Box.Render(m.styles.Text.Render(strings.Join(lines, "\n"))))

	return b.String(), helpKeys{m.keys.Select, m.keys.Replay, m.keys.Quit}
}
