// Package player defines the player's identity: the name they type in and
// the explorer character they choose.
package player

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultName is stored until the player enters a real name.
const DefaultName = "Player"

const (
	MinNameLength = 2
	MaxNameLength = 20
)

var (
	ErrNameRequired = errors.New("Please enter your name!")
	ErrNameTooShort = errors.New("Name must be at least 2 characters!")
	ErrNameTooLong  = errors.New("Name must be at most 20 characters!")
)

// ValidateName trims raw and checks its length.
// Returns the trimmed name on success.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(name)

	switch {
	case n == 0:
		return "", ErrNameRequired
	case n < MinNameLength:
		return "", ErrNameTooShort
	case n > MaxNameLength:
		return "", ErrNameTooLong
	}
	return name, nil
}

// NeedsName reports whether the stored name still has to be asked for.
func NeedsName(name string) bool {
	name = strings.TrimSpace(name)
	return name == "" || name == DefaultName
}

// Character is one of the selectable explorers.
type Character struct {
	ID          string
	Name        string
	Glyph       string
	Description string
}

var characters = []Character{
	{ID: "maya", Name: "Maya", Glyph: "👧🏻", Description: "Brave explorer from North India with a backpack full of tools!"},
	{ID: "arjun", Name: "Arjun", Glyph: "👦🏽", Description: "Smart adventurer from Punjab who loves solving puzzles!"},
	{ID: "priya", Name: "Priya", Glyph: "👧🏾", Description: "Quick thinker from South India who finds treasure everywhere!"},
	{ID: "rohan", Name: "Rohan", Glyph: "👦🏽", Description: "Clever explorer from Maharashtra who never gives up!"},
}

// Characters returns the selectable characters in display order.
func Characters() []Character {
	out := make([]Character, len(characters))
	copy(out, characters)
	return out
}

// CharacterByID looks up a character.
func CharacterByID(id string) (Character, bool) {
	for _, c := range characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}
