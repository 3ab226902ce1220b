package glyph

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/poly/internal/atlas"
)

//go:embed keywords.yaml
var defaultTableYAML []byte

// Placement controls where an enhancement symbol is inserted.
type Placement string

const (
	PlaceAppend Placement = "append"
	PlaceFront  Placement = "front"
)

// Keyword is one (word, symbol) pair of the ordered scan list.
type Keyword struct {
	Word   string
	Symbol string
}

// Enhancement is a compound rule applied after the keyword scan in enhanced
// mode. It fires when every word in All and at least one word in Any (if Any
// is non-empty) appear in the concept.
type Enhancement struct {
	Name      string    `yaml:"name"`
	Symbol    string    `yaml:"symbol"`
	Placement Placement `yaml:"placement"`
	All       []string  `yaml:"all"`
	Any       []string  `yaml:"any"`
}

// FamilyKeywords is the resonance-scan word set for one family id.
type FamilyKeywords struct {
	ID    string   `yaml:"id"`
	Words []string `yaml:"words"`
}

// Operation maps a glyph symbol to a solver operation.
type Operation struct {
	Symbol      string `yaml:"symbol" json:"symbol"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Theme groups family ids for the quick reference.
type Theme struct {
	Name     string   `yaml:"name"`
	Families []string `yaml:"families"`
}

// Pattern is a named example glyph for the quick reference.
type Pattern struct {
	Glyph       string `yaml:"glyph" json:"glyph"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Table is the single data table driving glyph resolution.
type Table struct {
	Fallback     string
	Keywords     []Keyword
	Enhancements []Enhancement
	Families     []FamilyKeywords
	Operations   []Operation
	Themes       []Theme
	Patterns     []Pattern
}

type keywordGroup struct {
	Symbol string   `yaml:"symbol"`
	Words  []string `yaml:"words"`
}

type tableFile struct {
	Fallback     string           `yaml:"fallback"`
	Keywords     []keywordGroup   `yaml:"keywords"`
	Enhancements []Enhancement    `yaml:"enhancements"`
	Families     []FamilyKeywords `yaml:"families"`
	Operations   []Operation      `yaml:"operations"`
	Themes       []Theme          `yaml:"themes"`
	Patterns     []Pattern        `yaml:"patterns"`
}

// DefaultTable returns the built-in table.
func DefaultTable() (*Table, error) {
	t, err := ParseTable(defaultTableYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in keyword table: %w", err)
	}
	return t, nil
}

// LoadTable reads a keyword table from a YAML file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, atlas.NewMissingFile(path, "keyword table")
	}
	if err != nil {
		return nil, fmt.Errorf("read keyword table: %w", err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, atlas.NewMalformed(path, "keyword table", err)
	}
	return t, nil
}

// ParseTable decodes a YAML table. Keyword groups are flattened in document
// order, which is the scan order. All words are lower-cased.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	if f.Fallback == "" {
		return nil, errors.New("fallback symbol is required")
	}

	t := &Table{
		Fallback:     f.Fallback,
		Enhancements: f.Enhancements,
		Families:     f.Families,
		Operations:   f.Operations,
		Themes:       f.Themes,
		Patterns:     f.Patterns,
	}

	for i, g := range f.Keywords {
		if g.Symbol == "" {
			return nil, fmt.Errorf("keywords[%d]: symbol is required", i)
		}
		if len(g.Words) == 0 {
			return nil, fmt.Errorf("keywords[%d]: at least one word is required", i)
		}
		for _, w := range g.Words {
			t.Keywords = append(t.Keywords, Keyword{Word: Fold(w), Symbol: g.Symbol})
		}
	}

	for i := range t.Enhancements {
		e := &t.Enhancements[i]
		if e.Symbol == "" || e.Name == "" {
			return nil, fmt.Errorf("enhancements[%d]: name and symbol are required", i)
		}
		switch e.Placement {
		case "":
			e.Placement = PlaceAppend
		case PlaceAppend, PlaceFront:
		default:
			return nil, fmt.Errorf("enhancements[%d]: unknown placement %q", i, e.Placement)
		}
		if len(e.All) == 0 && len(e.Any) == 0 {
			return nil, fmt.Errorf("enhancements[%d]: needs all or any words", i)
		}
		e.All = foldAll(e.All)
		e.Any = foldAll(e.Any)
	}

	for i := range t.Families {
		if t.Families[i].ID == "" {
			return nil, fmt.Errorf("families[%d]: id is required", i)
		}
		t.Families[i].Words = foldAll(t.Families[i].Words)
	}

	return t, nil
}

// matches reports whether folded text satisfies the rule.
func (e Enhancement) matches(text string) bool {
	for _, w := range e.All {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return len(e.Any) == 0 || containsAny(text, e.Any)
}

func foldAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Fold(w)
	}
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
