// Package quiz evaluates answers to fruit quizzes and applies the attempt,
// hint and elimination policy on top of the progress store.
package quiz

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
	"github.com/vovakirdan/fruit-hunt/internal/progress"
)

// DefaultHintThreshold is the number of attempts after which the hint is
// shown without being asked for.
const DefaultHintThreshold = 3

var (
	ErrUnknownFruit      = errors.New("quiz: unknown fruit")
	ErrAlreadyCollected  = errors.New("quiz: fruit already collected")
	ErrNotMultipleChoice = errors.New("quiz: not a multiple-choice quiz")
	ErrUnknownOption     = errors.New("quiz: option is not offered")
	ErrOptionEliminated  = errors.New("quiz: option has been eliminated")
)

// Outcome is the verdict on one submission.
type Outcome int

const (
	// OutcomeEmpty means the answer was blank; nothing was counted.
	OutcomeEmpty Outcome = iota
	OutcomeIncorrect
	OutcomeCorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeCorrect:
		return "correct"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// State is where a fruit stands in its quiz.
type State int

const (
	StateUnattempted State = iota
	StateAttempting
	StateHintEligible
	StateCollected
)

func (s State) String() string {
	switch s {
	case StateUnattempted:
		return "unattempted"
	case StateAttempting:
		return "attempting"
	case StateHintEligible:
		return "hint-eligible"
	case StateCollected:
		return "collected"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Normalize prepares an answer for comparison: surrounding whitespace is
// dropped and letters are lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Evaluate reports whether raw answers q.
func Evaluate(q catalog.Quiz, raw string) bool {
	return Normalize(raw) == Normalize(q.Answer)
}

// Engine opens quiz sessions against a progress store.
type Engine struct {
	store     *progress.Store
	catalog   *catalog.Catalog
	source    Source
	threshold int
	logger    *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used for option elimination.
func WithSource(src Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.source = src
		}
	}
}

// WithHintThreshold sets how many attempts reveal the hint. Values below 1
// are ignored.
func WithHintThreshold(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.threshold = n
		}
	}
}

// WithLogger sets the engine's logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine. Without WithSource it draws from crypto/rand.
func NewEngine(store *progress.Store, cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		catalog:   cat,
		source:    NewCryptoSource(),
		threshold: DefaultHintThreshold,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HintThreshold returns the attempt count that reveals the hint.
func (e *Engine) HintThreshold() int {
	return e.threshold
}

// Open starts a quiz session for a fruit. Session-local state (revealed
// hint, eliminated option) starts empty; attempts and collection come from
// the store.
func (e *Engine) Open(fruitID string) (*Session, error) {
	fruit, ok := e.catalog.Fruit(fruitID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFruit, fruitID)
	}

	s := &Session{
		ID:     uuid.NewString(),
		engine: e,
		fruit:  fruit,
	}
	e.logger.Debug("quiz opened",
		"session", s.ID,
		"fruit", fruit.ID,
		"state", s.State(),
	)
	return s, nil
}
