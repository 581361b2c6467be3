package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-hunt/internal/feedback"
	"github.com/vovakirdan/fruit-hunt/internal/player"
)

// editName opens the name screen, prefilled when a name exists.
func (m Model) editName() (Model, tea.Cmd) {
	m = m.goTo(screenName)
	m.input.Reset()
	m.input.Placeholder = "Your name"
	if name := m.store.PlayerName(); !player.NeedsName(name) {
		m.input.SetValue(name)
	}
	focus := m.input.Focus()
	return m, tea.Batch(focus, textinput.Blink)
}

func (m Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		name, err := player.ValidateName(m.input.Value())
		if err != nil {
			m.notice = notice{text: err.Error(), kind: noticeBad}
			m.play(feedback.CueError)
			return m, nil
		}
		if err := m.store.SetPlayerName(m.ctx, name); err != nil {
			m = m.saveFailed("name", err)
		}
		m.play(feedback.CueClick)

		next := screenHome
		if m.store.Character() == "" {
			next = screenCharacter
		}
		m = m.goTo(next)
		m.cursor = m.characterIndex()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		// Only a player who already has a name may leave.
		if !player.NeedsName(m.store.PlayerName()) {
			return m.goTo(screenSettings), nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) viewName() (string, helpKeys) {
	var b strings.Builder
	b.WriteString(m.title("FRUIT HUNT"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtitle.Render("What's your name, explorer?"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Box.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d to %d letters", player.MinNameLength, player.MaxNameLength)))

	keys := helpKeys{m.keys.Submit, m.keys.ForceQuit}
	if !player.NeedsName(m.store.PlayerName()) {
		keys = helpKeys{m.keys.Submit, m.keys.Cancel, m.keys.ForceQuit}
	}
	return b.String(), keys
}

// characterIndex is the cursor position of the stored character, 0 if none.
func (m Model) characterIndex() int {
	for i, c := range player.Characters() {
		if c.ID == m.store.Character() {
			return i
		}
	}
	return 0
}

func (m Model) updateCharacter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chars := player.Characters()

	switch action := m.keys.MenuAction(msg); action {
	case MenuActionQuit:
		return m.quit()

	case MenuActionUp, MenuActionDown:
		m.cursor = moveCursor(m.cursor, len(chars), action)

	case MenuActionSelect:
		chosen := chars[m.cursor]
		if err := m.store.SetCharacter(m.ctx, chosen.ID); err != nil {
			m = m.saveFailed("character", err)
		}
		m.play(feedback.CueUnlock)
		m = m.goTo(screenHome)
		if m.notice.text == "" {
			m.notice = notice{text: fmt.Sprintf("%s %s joins the hunt!", chosen.Glyph, chosen.Name), kind: noticeGood}
		}

	case MenuActionBack:
		return m.editName()
	}
	return m, nil
}

func (m Model) viewCharacter() (string, helpKeys) {
	var b strings.Builder
	b.WriteString(m.title("Choose your explorer"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtitle.Render("Hi " + m.store.PlayerName() + "! Who will you play as?"))
	b.WriteString("\n\n")

	for i, c := range player.Characters() {
		b.WriteString(m.listItem(i == m.cursor, fmt.Sprintf("%s  %-6s", c.Glyph, c.Name)))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("     " + c.Description))
		b.WriteString("\n")
	}

	return b.String(), helpKeys{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Back, m.keys.Quit}
}
