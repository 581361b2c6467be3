// Package tui provides the Bubble Tea screens of Fruit Hunt and serves them
// locally or over SSH via Wish.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
	"github.com/vovakirdan/fruit-hunt/internal/feedback"
	"github.com/vovakirdan/fruit-hunt/internal/player"
	"github.com/vovakirdan/fruit-hunt/internal/progress"
	"github.com/vovakirdan/fruit-hunt/internal/quiz"
)

// screen identifies the view a session is showing.
type screen int

const (
	screenName screen = iota
	screenCharacter
	screenHome
	screenRegions
	screenExplore
	screenQuiz
	screenProgress
	screenSettings
	screenVictory
)

func (s screen) String() string {
	return [...]string{
		"name", "character", "home", "regions", "explore",
		"quiz", "progress", "settings", "victory",
	}[s]
}

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeGood
	noticeBad
)

// notice is the one-line message under the current screen.
type notice struct {
	text string
	kind noticeKind
}

// Model is the Bubble Tea model for one player's session: identity setup,
// exploration, quizzes, progress and settings.
type Model struct {
	ctx    context.Context
	store  *progress.Store
	engine *quiz.Engine
	cues   feedback.Sink
	logger *log.Logger

	keys   KeyMap
	help   help.Model
	styles Styles

	width  int
	height int
	screen screen
	cursor int
	notice notice

	input textinput.Model

	region  catalog.Region
	quiz    *quizState
	quizSeq int
	board   ProgressModel

	confirmReset bool
	quitting     bool
}

// NewModel creates the session model. The store must already be
// initialized; cues may be nil.
func NewModel(ctx context.Context, store *progress.Store, engine *quiz.Engine, cues feedback.Sink, logger *log.Logger) Model {
	if cues == nil {
		cues = feedback.Nop
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.CharLimit = 40

	m := Model{
		ctx:    ctx,
		store:  store,
		engine: engine,
		cues:   cues,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(store.Settings().DarkMode),
		width:  80,
		height: 24,
		input:  input,
	}
	m.screen = m.startScreen()
	if m.screen == screenName {
		m.input.Placeholder = "Your name"
		m.input.Focus()
	}
	return m
}

// startScreen routes a returning player past the steps already done.
func (m Model) startScreen() screen {
	switch {
	case player.NeedsName(m.store.PlayerName()):
		return screenName
	case m.store.Character() == "":
		return screenCharacter
	case m.store.IsVictory():
		return screenVictory
	default:
		return screenHome
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.input.Focused() {
		return textinput.Blink
	}
	return nil
}

// Update handles messages for the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.board = m.board.Resize(msg.Width, msg.Height)
		return m, nil

	case closeQuizMsg:
		if m.screen == screenQuiz && m.quiz != nil && m.quiz.done && msg.seq == m.quizSeq {
			return m.closeQuiz()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		m.notice = notice{}
		return m.handleKey(msg)
	}

	// Cursor blink and other input housekeeping.
	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenName:
		return m.updateName(msg)
	case screenCharacter:
		return m.updateCharacter(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenRegions:
		return m.updateRegions(msg)
	case screenExplore:
		return m.updateExplore(msg)
	case screenQuiz:
		return m.updateQuiz(msg)
	case screenProgress:
		return m.updateProgress(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenVictory:
		return m.updateVictory(msg)
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	var keys helpKeys
	switch m.screen {
	case screenName:
		body, keys = m.viewName()
	case screenCharacter:
		body, keys = m.viewCharacter()
	case screenHome:
		body, keys = m.viewHome()
	case screenRegions:
		body, keys = m.viewRegions()
	case screenExplore:
		body, keys = m.viewExplore()
	case screenQuiz:
		body, keys = m.viewQuiz()
	case screenProgress:
		body, keys = m.board.View(), m.board.HelpKeys()
	case screenSettings:
		body, keys = m.viewSettings()
	case screenVictory:
		body, keys = m.viewVictory()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerBlock(body, m.width))
	b.WriteString("\n")
	if m.notice.text != "" {
		b.WriteString("\n")
		b.WriteString(centerBlock(m.renderNotice(), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Help.Render(m.help.View(keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderNotice() string {
	switch m.notice.kind {
	case noticeGood:
		return m.styles.Good.Render(m.notice.text)
	case noticeBad:
		return m.styles.Bad.Render(m.notice.text)
	}
	return m.styles.Text.Render(m.notice.text)
}

// Screen returns the name of the current screen.
func (m Model) Screen() string {
	return m.screen.String()
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// goTo switches screens and resets the list cursor.
func (m Model) goTo(s screen) Model {
	m.screen = s
	m.cursor = 0
	m.confirmReset = false
	m.input.Blur()
	return m
}

func (m Model) play(cues ...feedback.Cue) {
	feedback.PlayAll(m.cues, cues)
}

// saveFailed logs a persistence error and tells the player. Play goes on
// with the in-memory state.
func (m Model) saveFailed(what string, err error) Model {
	m.logger.Error("could not save", "what", what, "profile", m.store.Profile(), "error", err)
	m.notice = notice{text: "Could not save your " + what + ", progress may be lost.", kind: noticeBad}
	return m
}

func (m Model) title(text string) string {
	return m.styles.Title.Render(text)
}

func (m Model) listItem(selected bool, text string) string {
	if selected {
		return m.styles.Cursor.Render("> " + text)
	}
	return m.styles.Text.Render("  " + text)
}

// Run starts the Bubble Tea program for one local session.
func Run(ctx context.Context, deps Deps, width, height int) error {
	cues := feedback.Multi{feedback.NewBell(deps.bellWriter()), feedback.LogSink{Logger: deps.Logger}}
	model, err := deps.NewModel(ctx, deps.Config.Storage.Profile, cues)
	if err != nil {
		return err
	}
	model.width, model.height = width, height
	model.board = model.board.Resize(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	return err
}
