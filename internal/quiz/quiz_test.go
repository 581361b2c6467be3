package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vovakirdan/fruit-hunt/internal/catalog"
	"github.com/vovakirdan/fruit-hunt/internal/feedback"
	"github.com/vovakirdan/fruit-hunt/internal/progress"
	"github.com/vovakirdan/fruit-hunt/internal/quiz"
	"github.com/vovakirdan/fruit-hunt/internal/storage"
)

// fixedSource always picks index i, wrapped to n.
type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

// tb is satisfied by both *testing.T and *rapid.T.
type tb interface {
	require.TestingT
	Helper()
}

func newEngine(t tb, opts ...quiz.Option) (*quiz.Engine, *progress.Store) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	store := progress.New(storage.NewMemory(), cat)
	require.NoError(t, store.Initialize(context.Background()))
	return quiz.NewEngine(store, cat, opts...), store
}

func open(t tb, e *quiz.Engine, fruitID string) *quiz.Session {
	t.Helper()
	s, err := e.Open(fruitID)
	require.NoError(t, err)
	return s
}

func TestEvaluateIgnoresCaseAndSpace(t *testing.T) {
	q := catalog.Quiz{Kind: catalog.KindTextInput, Answer: "Yellow or Orange"}

	tests := []struct {
		raw  string
		want bool
	}{
		{"Yellow or Orange", true},
		{" Yellow Or Orange ", true},
		{"\tyellow or orange\n", true},
		{"yellow  or orange", false},
		{"yellow", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quiz.Evaluate(q, tt.raw), "Evaluate(%q)", tt.raw)
	}
}

func TestOpenUnknownFruit(t *testing.T) {
	e, _ := newEngine(t)
	_, err := e.Open("kiwi")
	assert.True(t, errors.Is(err, quiz.ErrUnknownFruit), "err = %v", err)
}

func TestSubmitCorrectCollects(t *testing.T) {
	ctx := context.Background()
	e, store := newEngine(t)
	s := open(t, e, "mango")
	assert.Equal(t, quiz.StateUnattempted, s.State())

	res, err := s.Submit(ctx, " Yellow Or Orange ")
	require.NoError(t, err)

	assert.Equal(t, quiz.OutcomeCorrect, res.Outcome)
	assert.Equal(t, quiz.StateCollected, res.State)
	assert.Equal(t, 1, res.Attempts)
	assert.Contains(t, res.FunFact, "King of Fruits")
	assert.Equal(t, []feedback.Cue{feedback.CueSuccess, feedback.CueCollect}, res.Cues)
	assert.False(t, res.RegionComplete)
	assert.False(t, res.Victory)

	fp, _ := store.Fruit("mango")
	assert.Equal(t, progress.FruitProgress{FruitID: "mango", Collected: true, Attempts: 1}, fp)
}

func TestSubmitJumbledAndText(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t)

	res, err := open(t, e, "banana").Submit(ctx, "yellow")
	require.NoError(t, err)
	assert.Equal(t, quiz.OutcomeCorrect, res.Outcome)

	res, err = open(t, e, "coconut").Submit(ctx, "WATER ")
	require.NoError(t, err)
	assert.Equal(t, quiz.OutcomeCorrect, res.Outcome)
}

func TestSubmitEmptyChangesNothing(t *testing.T) {
	ctx := context.Background()
	e, store := newEngine(t)
	s := open(t, e, "coconut")

	for _, raw := range []string{"", "   ", "\t\n"} {
		res, err := s.Submit(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, quiz.OutcomeEmpty, res.Outcome)
		assert.Empty(t, res.Cues)
	}

	fp, _ := store.Fruit("coconut")
	assert.Zero(t, fp.Attempts)
	assert.Equal(t, quiz.StateUnattempted, s.State())
}

func TestHintAutoRevealAtThreshold(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t)
	s := open(t, e, "coconut")

	wantStates := []quiz.State{quiz.StateAttempting, quiz.StateAttempting, quiz.StateHintEligible, quiz.StateHintEligible}
	wantReveal := []bool{false, false, true, false}

	for i := range wantStates {
		res, err := s.Submit(ctx, "land")
		require.NoError(t, err)

		assert.Equal(t, quiz.OutcomeIncorrect, res.Outcome, "attempt %d", i+1)
		assert.Equal(t, i+1, res.Attempts)
		assert.Equal(t, wantStates[i], res.State, "attempt %d", i+1)
		assert.Equal(t, wantReveal[i], res.HintRevealed, "attempt %d", i+1)
		assert.Equal(t, i+1 >= 3, s.HintVisible(), "attempt %d", i+1)
	}
}

func TestHintThresholdOption(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t, quiz.WithHintThreshold(1))
	assert.Equal(t, 1, e.HintThreshold())

	res, err := open(t, e, "coconut").Submit(ctx, "air")
	require.NoError(t, err)
	assert.True(t, res.HintRevealed)
	assert.Contains(t, res.Cues, feedback.CueHint)

	e, _ = newEngine(t, quiz.WithHintThreshold(0))
	assert.Equal(t, quiz.DefaultHintThreshold, e.HintThreshold())
}

func TestCollectedIsTerminal(t *testing.T) {
	ctx := context.Background()
	e, store := newEngine(t)
	s := open(t, e, "mango")

	_, err := s.Choose(ctx, "Yellow or Orange")
	require.NoError(t, err)

	_, err = s.Submit(ctx, "Yellow or Orange")
	assert.ErrorIs(t, err, quiz.ErrAlreadyCollected)
	_, err = s.Choose(ctx, "Purple")
	assert.ErrorIs(t, err, quiz.ErrAlreadyCollected)

	_, err = open(t, e, "mango").Submit(ctx, "anything")
	assert.ErrorIs(t, err, quiz.ErrAlreadyCollected)

	fp, _ := store.Fruit("mango")
	assert.Equal(t, 1, fp.Attempts)
}

func TestChooseEliminatesAnotherWrongOption(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		pick int
		want string
	}{
		{0, "Blue"},
		{1, "Black"},
	}
	for _, tt := range tests {
		e, _ := newEngine(t, quiz.WithSource(fixedSource(tt.pick)))
		s := open(t, e, "mango")

		res, err := s.Choose(ctx, "Purple")
		require.NoError(t, err)
		assert.Equal(t, quiz.OutcomeIncorrect, res.Outcome)
		assert.Equal(t, tt.want, res.Eliminated)
		assert.Equal(t, tt.want, s.Eliminated())
		assert.NotContains(t, s.Options(), tt.want)
		assert.Len(t, s.Options(), 3)
	}
}

func TestEliminationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		seed := rapid.Int64().Draw(t, "seed")
		e, _ := newEngine(t, quiz.WithSource(quiz.NewSeededSource(seed)))
		s := open(t, e, "mango")

		first := rapid.SampledFrom([]string{"Purple", "Blue", "Black"}).Draw(t, "first")
		res, err := s.Choose(ctx, first)
		if err != nil {
			t.Fatalf("Choose(%q) = %v", first, err)
		}
		eliminated := res.Eliminated
		if eliminated == "" || eliminated == first || eliminated == "Yellow or Orange" {
			t.Fatalf("first pick %q eliminated %q", first, eliminated)
		}
		if first == "Purple" && eliminated != "Blue" && eliminated != "Black" {
			t.Fatalf("Purple pick eliminated %q", eliminated)
		}

		if _, err := s.Choose(ctx, eliminated); !errors.Is(err, quiz.ErrOptionEliminated) {
			t.Fatalf("choosing eliminated option: err = %v", err)
		}

		var second string
		for _, o := range []string{"Purple", "Blue", "Black"} {
			if o != eliminated && o != first {
				second = o
			}
		}
		res, err = s.Choose(ctx, second)
		if err != nil {
			t.Fatalf("Choose(%q) = %v", second, err)
		}
		if res.Eliminated != "" || s.Eliminated() != eliminated {
			t.Fatalf("second wrong pick eliminated %q (session %q)", res.Eliminated, s.Eliminated())
		}

		res, err = s.Choose(ctx, "Yellow or Orange")
		if err != nil || res.Outcome != quiz.OutcomeCorrect {
			t.Fatalf("correct pick after elimination = %v, %v", res.Outcome, err)
		}
	})
}

func TestSeededEliminationIsDeterministic(t *testing.T) {
	ctx := context.Background()
	var got []string
	for i := 0; i < 2; i++ {
		e, _ := newEngine(t, quiz.WithSource(quiz.NewSeededSource(42)))
		res, err := open(t, e, "mango").Choose(ctx, "Purple")
		require.NoError(t, err)
		got = append(got, res.Eliminated)
	}
	assert.Equal(t, got[0], got[1])
}

func TestChooseErrors(t *testing.T) {
	ctx := context.Background()
	e, store := newEngine(t)

	_, err := open(t, e, "coconut").Choose(ctx, "water")
	assert.ErrorIs(t, err, quiz.ErrNotMultipleChoice)

	_, err = open(t, e, "mango").Choose(ctx, "Green")
	assert.ErrorIs(t, err, quiz.ErrUnknownOption)

	for _, id := range []string{"coconut", "mango"} {
		fp, _ := store.Fruit(id)
		assert.Zero(t, fp.Attempts, id)
	}
}

func TestReopenResetsSessionState(t *testing.T) {
	ctx := context.Background()
	e, store := newEngine(t, quiz.WithSource(fixedSource(0)))

	s := open(t, e, "mango")
	for _, o := range []string{"Purple", "Black", "Purple"} {
		_, err := s.Choose(ctx, o)
		require.NoError(t, err)
	}
	require.Equal(t, "Blue", s.Eliminated())

	reopened := open(t, e, "mango")
	assert.NotEqual(t, s.ID, reopened.ID)
	assert.Empty(t, reopened.Eliminated())
	assert.Len(t, reopened.Options(), 4)
	assert.Equal(t, 3, reopened.Attempts())
	assert.True(t, reopened.HintVisible(), "three stored attempts show the hint on reopen")

	res, err := reopened.Choose(ctx, "Purple")
	require.NoError(t, err)
	assert.Equal(t, "Blue", res.Eliminated)
	assert.True(t, res.HintRevealed)

	fp, _ := store.Fruit("mango")
	assert.Equal(t, 4, fp.Attempts)
}

func TestRequestHintCountsEveryCall(t *testing.T) {
	ctx := context.Background()
	e, store := newEngine(t)
	s := open(t, e, "pineapple")
	assert.False(t, s.HintVisible())

	for i := 0; i < 3; i++ {
		hint, err := s.RequestHint(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Pineapples need patience!", hint)
	}
	assert.True(t, s.HintVisible())

	fp, _ := store.Fruit("pineapple")
	assert.Equal(t, 3, fp.HintsUsed)
	assert.Zero(t, fp.Attempts)

	// A requested hint is not revealed a second time.
	for i := 0; i < 3; i++ {
		res, err := s.Submit(ctx, "2 weeks")
		require.NoError(t, err)
		assert.False(t, res.HintRevealed)
	}
}

func TestRegionCompleteAndVictory(t *testing.T) {
	ctx := context.Background()
	e, store := newEngine(t)
	cat := store.Catalog()

	jungle, ok := cat.RegionByName("jungle")
	require.True(t, ok)
	last := jungle.Fruits[len(jungle.Fruits)-1]
	for _, f := range jungle.Fruits[:len(jungle.Fruits)-1] {
		require.NoError(t, store.CollectFruit(ctx, f.ID))
	}

	res, err := open(t, e, last.ID).Submit(ctx, last.Quiz.Answer)
	require.NoError(t, err)
	assert.True(t, res.RegionComplete)
	assert.False(t, res.Victory)
	assert.Contains(t, res.Cues, feedback.CueComplete)
	assert.Equal(t, 100, store.RegionProgressPercent(jungle.ID))
	assert.Equal(t, 24, store.TotalProgressPercent())

	ids := cat.FruitIDs()
	final, _ := cat.Fruit(ids[len(ids)-1])
	for _, id := range ids[:len(ids)-1] {
		require.NoError(t, store.CollectFruit(ctx, id))
	}
	require.Equal(t, 98, store.TotalProgressPercent())

	res, err = open(t, e, final.ID).Submit(ctx, final.Quiz.Answer)
	require.NoError(t, err)
	assert.True(t, res.Victory)
	assert.True(t, res.RegionComplete)
	assert.Equal(t, feedback.CueAchievement, res.Cues[len(res.Cues)-1])
	assert.Equal(t, 100, store.TotalProgressPercent())
}
