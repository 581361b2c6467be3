package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// yamlCatalog mirrors the on-disk catalog document.
type yamlCatalog struct {
	Regions []yamlRegion `yaml:"regions"`
}

type yamlRegion struct {
	ID          int         `yaml:"id"`
	Name        string      `yaml:"name"`
	DisplayName string      `yaml:"display_name"`
	Description string      `yaml:"description"`
	Theme       string      `yaml:"theme"`
	Fruits      []yamlFruit `yaml:"fruits"`
}

type yamlFruit struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Glyph    string       `yaml:"glyph"`
	Position yamlPosition `yaml:"position"`
	Quiz     yamlQuiz     `yaml:"quiz"`
	FunFact  string       `yaml:"fun_fact"`
}

type yamlPosition struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type yamlQuiz struct {
	Kind      string   `yaml:"kind"`
	Question  string   `yaml:"question"`
	Answer    string   `yaml:"answer"`
	Options   []string `yaml:"options,omitempty"`
	Scrambled string   `yaml:"scrambled,omitempty"`
	Hint      string   `yaml:"hint"`
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Load reads a catalog from customPath, or the embedded default when
// customPath is empty.
func Load(customPath string) (*Catalog, error) {
	if customPath == "" {
		return Default()
	}

	data, err := os.ReadFile(customPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read %s: %w", customPath, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", customPath, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	regions := make([]Region, 0, len(yc.Regions))
	for _, yr := range yc.Regions {
		region := Region{
			ID:          yr.ID,
			Name:        yr.Name,
			DisplayName: yr.DisplayName,
			Description: yr.Description,
			Theme:       yr.Theme,
			Fruits:      make([]Fruit, 0, len(yr.Fruits)),
		}
		for _, yf := range yr.Fruits {
			region.Fruits = append(region.Fruits, Fruit{
				ID:       yf.ID,
				Name:     yf.Name,
				Glyph:    yf.Glyph,
				RegionID: yr.ID,
				Position: Position{X: yf.Position.X, Y: yf.Position.Y},
				Quiz: Quiz{
					Kind:      QuizKind(yf.Quiz.Kind),
					Question:  yf.Quiz.Question,
					Answer:    yf.Quiz.Answer,
					Options:   yf.Quiz.Options,
					Scrambled: yf.Quiz.Scrambled,
					Hint:      yf.Quiz.Hint,
				},
				FunFact: yf.FunFact,
			})
		}
		regions = append(regions, region)
	}

	if err := Validate(regions); err != nil {
		return nil, err
	}
	return newCatalog(regions), nil
}

// DefaultYAML returns the embedded catalog document.
func DefaultYAML() []byte {
	return defaultCatalogYAML
}
