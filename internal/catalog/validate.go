package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid catalog")

// Validate checks the structural invariants of a region set:
// unique region and fruit IDs, exactly TotalFruits fruits, and well-formed
// quizzes for every kind.
func Validate(regions []Region) error {
	var problems []error

	regionIDs := make(map[int]bool)
	fruitIDs := make(map[string]bool)
	count := 0

	for _, r := range regions {
		if regionIDs[r.ID] {
			problems = append(problems, fmt.Errorf("duplicate region id %d", r.ID))
		}
		regionIDs[r.ID] = true

		if r.Name == "" {
			problems = append(problems, fmt.Errorf("region %d: missing name", r.ID))
		}
		if len(r.Fruits) == 0 {
			problems = append(problems, fmt.Errorf("region %d: no fruits", r.ID))
		}

		for _, f := range r.Fruits {
			count++
			if f.ID == "" {
				problems = append(problems, fmt.Errorf("region %d: fruit without id", r.ID))
				continue
			}
			if fruitIDs[f.ID] {
				problems = append(problems, fmt.Errorf("duplicate fruit id %q", f.ID))
			}
			fruitIDs[f.ID] = true

			if f.RegionID != r.ID {
				problems = append(problems, fmt.Errorf("fruit %q: region %d, listed under %d", f.ID, f.RegionID, r.ID))
			}
			if f.Name == "" {
				problems = append(problems, fmt.Errorf("fruit %q: missing name", f.ID))
			}
			if err := validateQuiz(f.Quiz); err != nil {
				problems = append(problems, fmt.Errorf("fruit %q: %w", f.ID, err))
			}
		}
	}

	if count != TotalFruits {
		problems = append(problems, fmt.Errorf("expected %d fruits, got %d", TotalFruits, count))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
	}
	return nil
}

func validateQuiz(q Quiz) error {
	if !q.Kind.Valid() {
		return fmt.Errorf("unknown quiz kind %q", q.Kind)
	}
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("quiz has no question")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return errors.New("quiz has no answer")
	}
	if strings.TrimSpace(q.Hint) == "" {
		return errors.New("quiz has no hint")
	}

	switch q.Kind {
	case KindMultipleChoice:
		if len(q.Options) != 4 {
			return fmt.Errorf("multiple-choice quiz needs 4 options, got %d", len(q.Options))
		}
		matches := 0
		for _, opt := range q.Options {
			if opt == q.Answer {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("answer %q appears %d times in options", q.Answer, matches)
		}
	case KindJumbledWord:
		if q.Scrambled == "" {
			return errors.New("jumbled-word quiz has no scrambled form")
		}
		if len(q.Options) > 0 {
			return errors.New("jumbled-word quiz must not have options")
		}
	case KindTextInput:
		if len(q.Options) > 0 {
			return errors.New("text-input quiz must not have options")
		}
	}
	return nil
}
