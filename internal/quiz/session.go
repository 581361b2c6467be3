package quiz

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
	"github.com/vovakirdan/fruit-hunt/internal/feedback"
	"github.com/vovakirdan/fruit-hunt/internal/progress"
)

// Result describes what one submission did.
type Result struct {
	Outcome Outcome
	// FunFact is set on a correct answer.
	FunFact string
	// HintRevealed is set the first time this session's attempts reach the
	// hint threshold, unless the hint was already requested.
	HintRevealed bool
	// Eliminated is the option removed by this pick, if any.
	Eliminated string
	Attempts   int
	State      State
	// RegionComplete is set when this answer finished the fruit's region.
	RegionComplete bool
	// Victory is set when this answer collected the last fruit.
	Victory bool
	Cues    []feedback.Cue
}

// Session is one opening of a fruit's quiz. Closing the quiz discards it
// and everything it kept locally. A Session is not safe for concurrent use.
type Session struct {
	ID string

	engine       *Engine
	fruit        catalog.Fruit
	hintShown    bool
	autoRevealed bool
	eliminated   string
}

// Fruit returns the fruit being quizzed.
func (s *Session) Fruit() catalog.Fruit {
	return s.fruit
}

func (s *Session) progress() progress.FruitProgress {
	fp, _ := s.engine.store.Fruit(s.fruit.ID)
	return fp
}

// Attempts returns the persisted attempt count.
func (s *Session) Attempts() int {
	return s.progress().Attempts
}

// State derives the fruit's state from persisted progress.
func (s *Session) State() State {
	fp := s.progress()
	switch {
	case fp.Collected:
		return StateCollected
	case fp.Attempts == 0:
		return StateUnattempted
	case fp.Attempts >= s.engine.threshold:
		return StateHintEligible
	default:
		return StateAttempting
	}
}

// HintVisible reports whether the hint should be on screen.
func (s *Session) HintVisible() bool {
	return s.hintShown || s.autoRevealed || s.Attempts() >= s.engine.threshold
}

// Eliminated returns the eliminated option, or "" if none.
func (s *Session) Eliminated() string {
	return s.eliminated
}

// Options returns the selectable options of a multiple-choice quiz, in
// catalog order, minus the eliminated one.
func (s *Session) Options() []string {
	out := make([]string, 0, len(s.fruit.Quiz.Options))
	for _, o := range s.fruit.Quiz.Options {
		if o != s.eliminated {
			out = append(out, o)
		}
	}
	return out
}

// Submit evaluates a typed answer. A blank answer yields OutcomeEmpty and
// changes nothing.
func (s *Session) Submit(ctx context.Context, raw string) (Result, error) {
	if s.State() == StateCollected {
		return Result{}, ErrAlreadyCollected
	}
	if strings.TrimSpace(raw) == "" {
		return Result{
			Outcome:  OutcomeEmpty,
			Attempts: s.Attempts(),
			State:    s.State(),
		}, nil
	}
	return s.answer(ctx, Evaluate(s.fruit.Quiz, raw))
}

// Choose picks a multiple-choice option. The first wrong pick of a session
// eliminates one other wrong option.
func (s *Session) Choose(ctx context.Context, option string) (Result, error) {
	q := s.fruit.Quiz
	if q.Kind != catalog.KindMultipleChoice {
		return Result{}, ErrNotMultipleChoice
	}
	if s.State() == StateCollected {
		return Result{}, ErrAlreadyCollected
	}
	if !slices.Contains(q.Options, option) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}
	if option == s.eliminated {
		return Result{}, fmt.Errorf("%w: %q", ErrOptionEliminated, option)
	}

	correct := Evaluate(q, option)
	res, err := s.answer(ctx, correct)
	if err != nil {
		return res, err
	}
	if !correct && s.eliminated == "" {
		res.Eliminated = s.eliminate(option)
	}
	return res, nil
}

// eliminate removes one wrong option other than picked, chosen uniformly.
func (s *Session) eliminate(picked string) string {
	var candidates []string
	for _, o := range s.fruit.Quiz.Options {
		if o == picked || Evaluate(s.fruit.Quiz, o) {
			continue
		}
		candidates = append(candidates, o)
	}
	if len(candidates) == 0 {
		return ""
	}

	s.eliminated = candidates[s.engine.source.Intn(len(candidates))]
	s.engine.logger.Debug("option eliminated",
		"session", s.ID,
		"fruit", s.fruit.ID,
		"option", s.eliminated,
	)
	return s.eliminated
}

// answer counts an attempt and applies the verdict.
func (s *Session) answer(ctx context.Context, correct bool) (Result, error) {
	store := s.engine.store
	attempts := s.Attempts() + 1

	update := progress.FruitUpdate{Attempts: progress.Ptr(attempts)}
	if correct {
		update.Collected = progress.Ptr(true)
	}
	if err := store.UpdateFruitProgress(ctx, s.fruit.ID, update); err != nil {
		return Result{}, fmt.Errorf("quiz: record answer for %s: %w", s.fruit.ID, err)
	}

	res := Result{Attempts: attempts}

	if correct {
		res.Outcome = OutcomeCorrect
		res.FunFact = s.fruit.FunFact
		res.Cues = append(res.Cues, feedback.CueSuccess, feedback.CueCollect)

		if store.RegionProgressPercent(s.fruit.RegionID) == 100 {
			res.RegionComplete = true
			res.Cues = append(res.Cues, feedback.CueComplete)
		}
		if store.IsVictory() {
			res.Victory = true
			res.Cues = append(res.Cues, feedback.CueAchievement)
		}

		s.engine.logger.Info("fruit collected",
			"session", s.ID,
			"fruit", s.fruit.ID,
			"attempts", attempts,
			"total", store.TotalProgressPercent(),
		)
	} else {
		res.Outcome = OutcomeIncorrect
		res.Cues = append(res.Cues, feedback.CueError)

		if attempts >= s.engine.threshold && !s.autoRevealed && !s.hintShown {
			s.autoRevealed = true
			res.HintRevealed = true
			res.Cues = append(res.Cues, feedback.CueHint)
		}
	}

	res.State = s.State()
	return res, nil
}

// RequestHint shows the hint and counts it. Every call counts.
func (s *Session) RequestHint(ctx context.Context) (string, error) {
	hints := s.progress().HintsUsed + 1
	if err := s.engine.store.UpdateFruitProgress(ctx, s.fruit.ID, progress.FruitUpdate{
		HintsUsed: progress.Ptr(hints),
	}); err != nil {
		return "", fmt.Errorf("quiz: record hint for %s: %w", s.fruit.ID, err)
	}

	s.hintShown = true
	return s.fruit.Quiz.Hint, nil
}
