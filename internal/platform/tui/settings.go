package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-hunt/internal/feedback"
	"github.com/vovakirdan/fruit-hunt/internal/player"
	"github.com/vovakirdan/fruit-hunt/internal/progress"
)

// settingsItem indexes the settings list.
type settingsItem int

const (
	settingSound settingsItem = iota
	settingVibration
	settingDarkMode
	settingName
	settingCharacter
	settingReset
	settingBack
	settingsCount
)

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		m.confirmReset = false
		if !key.Matches(msg, m.keys.Confirm) {
			m.notice = notice{text: "Reset cancelled.", kind: noticeInfo}
			return m, nil
		}
		if err := m.store.ResetProgress(m.ctx); err != nil {
			return m.saveFailed("progress", err), nil
		}
		m.play(feedback.CueClick)
		m.notice = notice{text: "All fruits are back in the wild.", kind: noticeGood}
		return m, nil
	}

	switch action := m.keys.MenuAction(msg); action {
	case MenuActionQuit:
		return m.quit()

	case MenuActionUp, MenuActionDown:
		m.cursor = moveCursor(m.cursor, int(settingsCount), action)

	case MenuActionSelect:
		return m.selectSetting(settingsItem(m.cursor))

	case MenuActionBack:
		m = m.goTo(screenHome)
		m.cursor = 2
	}
	return m, nil
}

func (m Model) selectSetting(item settingsItem) (tea.Model, tea.Cmd) {
	s := m.store.Settings()
	var update progress.SettingsUpdate

	switch item {
	case settingSound:
		update.SoundEffects = progress.Ptr(!s.SoundEffects)
	case settingVibration:
		update.Vibration = progress.Ptr(!s.Vibration)
	case settingDarkMode:
		update.DarkMode = progress.Ptr(!s.DarkMode)
	case settingName:
		return m.editName()
	case settingCharacter:
		m = m.goTo(screenCharacter)
		m.cursor = m.characterIndex()
		return m, nil
	case settingReset:
		m.confirmReset = true
		return m, nil
	case settingBack:
		m = m.goTo(screenHome)
		m.cursor = 2
		return m, nil
	}

	if err := m.store.UpdateSettings(m.ctx, update); err != nil {
		m = m.saveFailed("settings", err)
	}
	if update.DarkMode != nil {
		m.styles = NewStyles(m.store.Settings().DarkMode)
	}
	m.play(feedback.CueClick)
	return m, nil
}

func (m Model) viewSettings() (string, helpKeys) {
	s := m.store.Settings()

	var b strings.Builder
	b.WriteString(m.title("SETTINGS"))
	b.WriteString("\n\n")

	character := "none"
	if c, ok := player.CharacterByID(m.store.Character()); ok {
		character = c.Glyph + " " + c.Name
	}

	labels := [settingsCount]string{
		settingSound:     "Sound effects   " + onOff(s.SoundEffects),
		settingVibration: "Vibration       " + onOff(s.Vibration),
		settingDarkMode:  "Dark mode       " + onOff(s.DarkMode),
		settingName:      "Change name     " + m.store.PlayerName(),
		settingCharacter: "Change explorer " + character,
		settingReset:     "Reset progress",
		settingBack:      "Back",
	}
	for i, label := range labels {
		b.WriteString(m.listItem(i == m.cursor, label))
		b.WriteString("\n")
	}

	if m.confirmReset {
		b.WriteString("\n")
		b.WriteString(m.styles.Bad.Render("Forget every collected fruit? Press y to confirm."))
		return b.String(), helpKeys{m.keys.Confirm, m.keys.Back}
	}
	return b.String(), helpKeys{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Back, m.keys.Quit}
}

func onOff(v bool) string {
	if v {
		return "[on]"
	}
	return "[off]"
}
