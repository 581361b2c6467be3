package player

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrNameRequired},
		{name: "whitespace only", input: "   \t", wantErr: ErrNameRequired},
		{name: "one character", input: "S", wantErr: ErrNameTooShort},
		{name: "one character padded", input: "  S  ", wantErr: ErrNameTooShort},
		{name: "two characters", input: "Sa", want: "Sa"},
		{name: "trimmed", input: "  Sam ", want: "Sam"},
		{name: "twenty characters", input: strings.Repeat("a", 20), want: strings.Repeat("a", 20)},
		{name: "twenty one characters", input: strings.Repeat("a", 21), wantErr: ErrNameTooLong},
		{name: "multibyte counts runes", input: "Émilie", want: "Émilie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateNameAcceptsAllValidLengths(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(MinNameLength, MaxNameLength).Draw(t, "n")
		pad := rapid.IntRange(0, 5).Draw(t, "pad")
		raw := strings.Repeat(" ", pad) + strings.Repeat("x", n) + strings.Repeat(" ", pad)

		got, err := ValidateName(raw)
		if err != nil {
			t.Fatalf("ValidateName(%q) = %v", raw, err)
		}
		if len(got) != n {
			t.Fatalf("trimmed length = %d, want %d", len(got), n)
		}
	})
}

func TestNeedsName(t *testing.T) {
	assert.True(t, NeedsName(""))
	assert.True(t, NeedsName(DefaultName))
	assert.False(t, NeedsName("Sam"))
}

func TestCharacters(t *testing.T) {
	chars := Characters()
	require.Len(t, chars, 4)

	c, ok := CharacterByID("priya")
	require.True(t, ok)
	assert.Equal(t, "Priya", c.Name)

	_, ok = CharacterByID("nobody")
	assert.False(t, ok)

	// callers cannot mutate the roster
	chars[0].Name = "changed"
	c, _ = CharacterByID("maya")
	assert.Equal(t, "Maya", c.Name)
}
