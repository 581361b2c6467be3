// Package feedback turns game events into cues for the player's terminal.
// Cues replace the sound effects and vibration of a touch device: a bell
// for the rewarding moments, a log line for everything.
package feedback

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Cue names one feedback event.
type Cue string

const (
	CueClick       Cue = "click"
	CueSuccess     Cue = "success"
	CueError       Cue = "error"
	CueCollect     Cue = "collect"
	CueComplete    Cue = "complete"
	CueUnlock      Cue = "unlock"
	CueWalk        Cue = "walk"
	CueQuizOpen    Cue = "quiz_open"
	CueHint        Cue = "hint"
	CueAchievement Cue = "achievement"
)

// Haptic reports whether the cue also buzzes on devices that vibrate.
func (c Cue) Haptic() bool {
	switch c {
	case CueSuccess, CueError, CueCollect:
		return true
	}
	return false
}

// Sink receives cues. Play must not block.
type Sink interface {
	Play(Cue)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Cue)

func (f SinkFunc) Play(c Cue) { f(c) }

// Nop discards every cue.
var Nop Sink = SinkFunc(func(Cue) {})

// Bell rings the terminal bell for rewarding cues.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Play(c Cue) {
	switch c {
	case CueSuccess, CueCollect, CueComplete, CueAchievement:
	default:
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}

// LogSink records every cue at debug level.
type LogSink struct {
	Logger *log.Logger
}

func (l LogSink) Play(c Cue) {
	if l.Logger == nil {
		return
	}
	l.Logger.Debug("cue", "name", string(c))
}

// Multi fans a cue out to every sink in order.
type Multi []Sink

func (m Multi) Play(c Cue) {
	for _, s := range m {
		if s != nil {
			s.Play(c)
		}
	}
}

// Gate drops cues the player has switched off. Sound and Vibration are
// read on every cue, so settings changes apply immediately.
type Gate struct {
	Next      Sink
	Sound     func() bool
	Vibration func() bool
}

func (g Gate) Play(c Cue) {
	if g.Next == nil {
		return
	}
	sound := g.Sound == nil || g.Sound()
	vibration := g.Vibration == nil || g.Vibration()
	if !sound && !(c.Haptic() && vibration) {
		return
	}
	g.Next.Play(c)
}

// PlayAll plays cues in order.
func PlayAll(s Sink, cues []Cue) {
	if s == nil {
		return
	}
	for _, c := range cues {
		s.Play(c)
	}
}
