package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// quizCloseDelay is how long a solved quiz stays on screen.
const quizCloseDelay = 3 * time.Second

// closeQuizMsg asks the model to close the quiz opened as number seq.
type closeQuizMsg struct {
	seq int
}

// closeQuizCmd returns a Bubble Tea command that closes quiz seq after the delay.
// A quiz closed by hand in the meantime makes the message stale.
func closeQuizCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return closeQuizMsg{seq: seq}
	})
}
