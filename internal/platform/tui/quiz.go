package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
	"github.com/vovakirdan/fruit-hunt/internal/feedback"
	"github.com/vovakirdan/fruit-hunt/internal/quiz"
)

// quizState is the screen state of an open quiz.
type quizState struct {
	session *quiz.Session
	cursor  int // multiple-choice option under the cursor
	last    *quiz.Result
	done    bool
}

func (q *quizState) multipleChoice() bool {
	return q.session.Fruit().Quiz.Kind == catalog.KindMultipleChoice
}

// moveOption moves the option cursor, skipping the eliminated option.
func (q *quizState) moveOption(action MenuAction) {
	options := q.session.Fruit().Quiz.Options
	for range options {
		q.cursor = moveCursor(q.cursor, len(options), action)
		if options[q.cursor] != q.session.Eliminated() {
			return
		}
	}
}

func (m Model) openQuiz(fruitID string) (tea.Model, tea.Cmd) {
	session, err := m.engine.Open(fruitID)
	if err != nil {
		m.logger.Error("cannot open quiz", "fruit", fruitID, "error", err)
		return m, nil
	}

	cursor := m.cursor
	m = m.goTo(screenQuiz)
	m.cursor = cursor
	m.quizSeq++
	m.quiz = &quizState{session: session}
	m.play(feedback.CueQuizOpen)

	if m.quiz.multipleChoice() {
		return m, nil
	}
	m.input.Reset()
	m.input.Placeholder = "Type your answer"
	focus := m.input.Focus()
	return m, tea.Batch(focus, textinput.Blink)
}

// closeQuiz discards the session and returns to the region, or to the
// victory screen when the last fruit was just collected.
func (m Model) closeQuiz() (tea.Model, tea.Cmd) {
	victory := m.quiz != nil && m.quiz.last != nil && m.quiz.last.Victory
	cursor := m.cursor
	m.quiz = nil

	if victory {
		return m.goTo(screenVictory), nil
	}
	m = m.goTo(screenExplore)
	m.cursor = cursor
	return m, nil
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.quiz
	if q == nil {
		return m.goTo(screenExplore), nil
	}

	if q.done {
		if key.Matches(msg, m.keys.Select) || key.Matches(msg, m.keys.Back) {
			return m.closeQuiz()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Cancel) {
		m.play(feedback.CueClick)
		return m.closeQuiz()
	}

	if q.multipleChoice() {
		return m.updateChoice(msg)
	}
	return m.updateTyped(msg)
}

func (m Model) updateChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.quiz

	if key.Matches(msg, m.keys.Hint) {
		return m.requestHint()
	}

	switch action := m.keys.MenuAction(msg); action {
	case MenuActionQuit:
		return m.quit()
	case MenuActionBack:
		return m.closeQuiz()
	case MenuActionUp, MenuActionDown:
		q.moveOption(action)
	case MenuActionSelect:
		option := q.session.Fruit().Quiz.Options[q.cursor]
		res, err := q.session.Choose(m.ctx, option)
		return m.applyResult(res, err)
	}
	return m, nil
}

func (m Model) updateTyped(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.TypedHint):
		return m.requestHint()

	case key.Matches(msg, m.keys.Submit):
		res, err := m.quiz.session.Submit(m.ctx, m.input.Value())
		return m.applyResult(res, err)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) requestHint() (tea.Model, tea.Cmd) {
	if _, err := m.quiz.session.RequestHint(m.ctx); err != nil {
		return m.saveFailed("hint", err), nil
	}
	m.play(feedback.CueHint)
	return m, nil
}

// applyResult turns an evaluation into feedback on screen.
func (m Model) applyResult(res quiz.Result, err error) (tea.Model, tea.Cmd) {
	q := m.quiz
	if err != nil {
		if errors.Is(err, quiz.ErrAlreadyCollected) {
			return m.closeQuiz()
		}
		if errors.Is(err, quiz.ErrOptionEliminated) || errors.Is(err, quiz.ErrUnknownOption) {
			return m, nil
		}
		return m.saveFailed("answer", err), nil
	}

	m.play(res.Cues...)
	q.last = &res

	switch res.Outcome {
	case quiz.OutcomeEmpty:
		m.notice = notice{text: "Please type an answer!", kind: noticeBad}
		return m, nil

	case quiz.OutcomeIncorrect:
		text := "Not quite! Try again."
		if res.Eliminated != "" {
			text += " One wrong answer is gone."
		}
		if res.HintRevealed {
			text += " Here's a hint!"
		}
		m.notice = notice{text: text, kind: noticeBad}
		m.input.SetValue("")
		return m, nil
	}

	q.done = true
	m.input.Blur()
	fruit := q.session.Fruit()
	text := fmt.Sprintf("Correct! You collected the %s %s!", fruit.Glyph, fruit.Name)
	if res.RegionComplete {
		text += " " + m.region.DisplayName + " is complete!"
	}
	m.notice = notice{text: text, kind: noticeGood}
	return m, closeQuizCmd(m.quizSeq, quizCloseDelay)
}

func (m Model) viewQuiz() (string, helpKeys) {
	q := m.quiz
	if q == nil {
		return "", nil
	}
	fruit := q.session.Fruit()

	var b strings.Builder
	b.WriteString(m.title(fmt.Sprintf("%s  %s Quiz", fruit.Glyph, fruit.Name)))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fruit.Quiz.Kind.Label()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtitle.Render(fruit.Quiz.Question))
	b.WriteString("\n\n")

	if q.multipleChoice() {
		for i, o := range fruit.Quiz.Options {
			switch {
			case o == q.session.Eliminated():
				b.WriteString("  " + m.styles.Disabled.Render(o))
			default:
				b.WriteString(m.listItem(i == q.cursor && !q.done, o))
			}
			b.WriteString("\n")
		}
	} else {
		if fruit.Quiz.Kind == catalog.KindJumbledWord {
			b.WriteString(m.styles.Title.Render(spaced(fruit.Quiz.Scrambled)))
			b.WriteString("\n\n")
		}
		b.WriteString(m.styles.Box.Render(m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	attempts := q.session.Attempts()
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Attempts: %d", attempts)))
	if q.session.HintVisible() && !q.done {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("Hint: " + fruit.Quiz.Hint))
	}
	if q.done {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Box.Render(m.styles.Text.Render("Fun fact: " + fruit.FunFact)))
	}

	switch {
	case q.done:
		return b.String(), helpKeys{m.keys.Select}
	case q.multipleChoice():
		return b.String(), helpKeys{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Hint, m.keys.Back}
	default:
		return b.String(), helpKeys{m.keys.Submit, m.keys.TypedHint, m.keys.Cancel}
	}
}

// spaced separates letters so a scrambled word is easy to read.
func spaced(word string) string {
	return strings.Join(strings.Split(word, ""), " ")
}
