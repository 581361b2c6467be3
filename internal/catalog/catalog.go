// Package catalog holds the immutable game content: regions, the fruits
// that live in them, and the quiz attached to every fruit.
//
// A Catalog is built once (usually from the embedded YAML document) and is
// read-only afterwards, so it is safe to share between sessions.
package catalog

// TotalFruits is the number of collectible fruits in a complete catalog.
// Overall progress is always measured against this constant.
const TotalFruits = 50

// QuizKind identifies how a quiz is answered.
type QuizKind string

const (
	KindMultipleChoice QuizKind = "multiple-choice"
	KindTextInput      QuizKind = "text-input"
	KindJumbledWord    QuizKind = "jumbled-word"
)

// Valid reports whether k is one of the known quiz kinds.
func (k QuizKind) Valid() bool {
	switch k {
	case KindMultipleChoice, KindTextInput, KindJumbledWord:
		return true
	}
	return false
}

// Label returns a human-readable name for the quiz kind.
func (k QuizKind) Label() string {
	switch k {
	case KindMultipleChoice:
		return "Multiple Choice"
	case KindTextInput:
		return "Type Answer"
	case KindJumbledWord:
		return "Jumbled Word"
	default:
		return string(k)
	}
}

// Quiz is the question a player must answer to collect a fruit.
type Quiz struct {
	Kind      QuizKind
	Question  string
	Answer    string
	Options   []string // multiple-choice only, always 4 entries
	Scrambled string   // jumbled-word only
	Hint      string
}

// Position places a fruit on the region map, in percent of width/height.
type Position struct {
	X int
	Y int
}

// Fruit is a single collectible.
type Fruit struct {
	ID       string
	Name     string
	Glyph    string
	RegionID int
	Position Position
	Quiz     Quiz
	FunFact  string
}

// Region is a themed group of fruits.
type Region struct {
	ID          int
	Name        string
	DisplayName string
	Description string
	Theme       string
	Fruits      []Fruit
}

// Catalog is the validated, indexed content set.
type Catalog struct {
	regions []Region
	fruits  map[string]Fruit
	order   []string
}

// newCatalog indexes regions without validating them.
func newCatalog(regions []Region) *Catalog {
	c := &Catalog{
		regions: regions,
		fruits:  make(map[string]Fruit),
	}
	for _, r := range regions {
		for _, f := range r.Fruits {
			c.fruits[f.ID] = f
			c.order = append(c.order, f.ID)
		}
	}
	return c
}

// Regions returns all regions in display order.
func (c *Catalog) Regions() []Region {
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// Region looks up a region by ID.
func (c *Catalog) Region(id int) (Region, bool) {
	for _, r := range c.regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// RegionByName looks up a region by its short name (e.g. "jungle").
func (c *Catalog) RegionByName(name string) (Region, bool) {
	for _, r := range c.regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// Fruit looks up a fruit by ID.
func (c *Catalog) Fruit(id string) (Fruit, bool) {
	f, ok := c.fruits[id]
	return f, ok
}

// FruitIDs returns every fruit ID in catalog order.
func (c *Catalog) FruitIDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of fruits in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}
