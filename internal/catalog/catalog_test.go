package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if c.Len() != TotalFruits {
		t.Errorf("Len() = %d, want %d", c.Len(), TotalFruits)
	}

	regions := c.Regions()
	if len(regions) != 4 {
		t.Fatalf("expected 4 regions, got %d", len(regions))
	}

	expected := []struct {
		id     int
		name   string
		fruits int
	}{
		{1, "jungle", 12},
		{2, "desert", 13},
		{3, "snowy", 13},
		{4, "island", 12},
	}
	for i, want := range expected {
		r := regions[i]
		if r.ID != want.id || r.Name != want.name {
			t.Errorf("region %d = (%d, %q), want (%d, %q)", i, r.ID, r.Name, want.id, want.name)
		}
		if len(r.Fruits) != want.fruits {
			t.Errorf("region %q has %d fruits, want %d", r.Name, len(r.Fruits), want.fruits)
		}
	}
}

func TestDefaultCatalogLookups(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	mango, ok := c.Fruit("mango")
	if !ok {
		t.Fatal("mango not found")
	}
	if mango.RegionID != 1 {
		t.Errorf("mango region = %d, want 1", mango.RegionID)
	}
	if mango.Quiz.Kind != KindMultipleChoice {
		t.Errorf("mango quiz kind = %q, want %q", mango.Quiz.Kind, KindMultipleChoice)
	}
	if mango.Quiz.Answer != "Yellow or Orange" {
		t.Errorf("mango answer = %q", mango.Quiz.Answer)
	}
	wantOpts := []string{"Purple", "Blue", "Yellow or Orange", "Black"}
	for i, opt := range wantOpts {
		if mango.Quiz.Options[i] != opt {
			t.Errorf("mango option %d = %q, want %q", i, mango.Quiz.Options[i], opt)
		}
	}

	banana, _ := c.Fruit("banana")
	if banana.Quiz.Kind != KindJumbledWord || banana.Quiz.Scrambled != "YOWLLE" {
		t.Errorf("banana quiz = %+v", banana.Quiz)
	}

	if _, ok := c.Fruit("kiwi"); ok {
		t.Error("kiwi should not be part of the catalog")
	}
	if _, ok := c.Region(99); ok {
		t.Error("Region(99) should not exist")
	}
	if r, ok := c.RegionByName("snowy"); !ok || r.ID != 3 {
		t.Errorf("RegionByName(snowy) = %d, %v", r.ID, ok)
	}
}

func TestFruitIDsOrderAndUniqueness(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	ids := c.FruitIDs()
	if ids[0] != "mango" {
		t.Errorf("first fruit = %q, want mango", ids[0])
	}

	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestCatalogCountsPerKind(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	counts := make(map[QuizKind]int)
	for _, id := range c.FruitIDs() {
		f, _ := c.Fruit(id)
		counts[f.Quiz.Kind]++
	}
	total := 0
	for kind, n := range counts {
		if !kind.Valid() {
			t.Errorf("unexpected kind %q", kind)
		}
		total += n
	}
	if total != TotalFruits {
		t.Errorf("kind counts sum to %d", total)
	}
}

func TestParseRejectsBrokenCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantMsg string
	}{
		{
			name: "duplicate fruit id",
			mutate: func(s string) string {
				return strings.Replace(s, `id: "banana"`, `id: "mango"`, 1)
			},
			wantMsg: `duplicate fruit id "mango"`,
		},
		{
			name: "answer missing from options",
			mutate: func(s string) string {
				return strings.Replace(s, `answer: "Yellow or Orange"`, `answer: "Green"`, 1)
			},
			wantMsg: `answer "Green" appears 0 times`,
		},
		{
			name: "unknown quiz kind",
			mutate: func(s string) string {
				return strings.Replace(s, `kind: "text-input"`, `kind: "essay"`, 1)
			},
			wantMsg: `unknown quiz kind "essay"`,
		},
		{
			name: "not yaml",
			mutate: func(string) string {
				return "regions: [::"
			},
			wantMsg: "yaml unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(string(DefaultYAML()))))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateFruitCount(t *testing.T) {
	regions := []Region{{
		ID:   1,
		Name: "tiny",
		Fruits: []Fruit{{
			ID:       "apple",
			Name:     "Apple",
			RegionID: 1,
			Quiz: Quiz{
				Kind:     KindTextInput,
				Question: "Color?",
				Answer:   "red",
				Hint:     "Like a fire truck",
			},
		}},
	}}

	err := Validate(regions)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "expected 50 fruits, got 1") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if c.Len() != TotalFruits {
		t.Errorf("Len() = %d", c.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
