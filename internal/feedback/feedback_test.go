package feedback

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	cues []Cue
}

func (r *recorder) Play(c Cue) { r.cues = append(r.cues, c) }

func TestBellRingsForRewards(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf)

	for _, c := range []Cue{CueClick, CueError, CueWalk, CueHint} {
		bell.Play(c)
	}
	assert.Zero(t, buf.Len(), "non-reward cues must stay silent")

	bell.Play(CueCollect)
	bell.Play(CueAchievement)
	assert.Equal(t, "\a\a", buf.String())
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	LogSink{Logger: logger}.Play(CueQuizOpen)
	assert.True(t, strings.Contains(buf.String(), "quiz_open"), "log = %q", buf.String())

	// A nil logger is a valid, silent sink.
	LogSink{}.Play(CueQuizOpen)
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi{a, nil, b}

	PlayAll(m, []Cue{CueSuccess, CueCollect})

	assert.Equal(t, []Cue{CueSuccess, CueCollect}, a.cues)
	assert.Equal(t, []Cue{CueSuccess, CueCollect}, b.cues)
}

func TestGate(t *testing.T) {
	all := []Cue{CueClick, CueSuccess, CueError, CueCollect, CueHint}

	tests := []struct {
		name      string
		sound     bool
		vibration bool
		want      []Cue
	}{
		{"everything on", true, true, all},
		{"sound only", true, false, all},
		{"vibration only", false, true, []Cue{CueSuccess, CueError, CueCollect}},
		{"both off", false, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			g := Gate{
				Next:      rec,
				Sound:     func() bool { return tt.sound },
				Vibration: func() bool { return tt.vibration },
			}
			PlayAll(g, all)
			assert.Equal(t, tt.want, rec.cues)
		})
	}
}

func TestGateReadsSettingsPerCue(t *testing.T) {
	rec := &recorder{}
	sound := true
	g := Gate{Next: rec, Sound: func() bool { return sound }, Vibration: func() bool { return false }}

	g.Play(CueClick)
	sound = false
	g.Play(CueClick)

	assert.Equal(t, []Cue{CueClick}, rec.cues)
}
