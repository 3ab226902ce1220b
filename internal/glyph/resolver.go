package glyph

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/poly/internal/atlas"
)

// Fold lower-cases text for keyword matching.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Result is the outcome of Create.
type Result struct {
	Concept  string   `json:"concept"`
	Glyph    string   `json:"glyph"`
	Symbols  []string `json:"symbols"`
	Keywords []string `json:"keywords"`
	Enhanced bool     `json:"enhanced"`
	Fallback bool     `json:"fallback"`
}

// Complexity buckets a glyph by how many symbols matched.
type Complexity string

const (
	ComplexityLow      Complexity = "Low"
	ComplexityModerate Complexity = "Moderate"
	ComplexityHigh     Complexity = "High"
)

// Complexity rates the result: 4+ matched symbols is High, 2+ Moderate.
// The fallback glyph counts as no match.
func (r Result) Complexity() Complexity {
	n := len(r.Symbols)
	if r.Fallback {
		n = 0
	}
	switch {
	case n >= 4:
		return ComplexityHigh
	case n >= 2:
		return ComplexityModerate
	default:
		return ComplexityLow
	}
}

// Resolver applies a Table to concepts and glyphs.
type Resolver struct {
	table *Table
}

// NewResolver creates a resolver over t.
func NewResolver(t *Table) *Resolver {
	return &Resolver{table: t}
}

// Table returns the resolver's table.
func (r *Resolver) Table() *Table {
	return r.table
}

// Create builds a seed glyph for concept.
//
// Keywords are scanned in table order; each symbol is added once, by the first
// keyword that matches. With enhanced set, the table's enhancement rules run
// afterwards, each adding its symbol only if absent. When nothing matches the
// glyph is the table's fallback symbol.
func (r *Resolver) Create(concept string, enhanced bool) Result {
	text := Fold(concept)

	symbols := []string{}
	keywords := []string{}
	seen := make(map[string]bool)

	for _, kw := range r.table.Keywords {
		if seen[kw.Symbol] || !strings.Contains(text, kw.Word) {
			continue
		}
		seen[kw.Symbol] = true
		symbols = append(symbols, kw.Symbol)
		keywords = append(keywords, kw.Word)
	}

	if enhanced {
		for _, e := range r.table.Enhancements {
			if seen[e.Symbol] || !e.matches(text) {
				continue
			}
			seen[e.Symbol] = true
			if e.Placement == PlaceFront {
				symbols = append([]string{e.Symbol}, symbols...)
			} else {
				symbols = append(symbols, e.Symbol)
			}
			keywords = append(keywords, e.Name)
		}
	}

	res := Result{
		Concept:  concept,
		Symbols:  symbols,
		Keywords: keywords,
		Enhanced: enhanced,
	}
	if len(symbols) == 0 {
		res.Symbols = []string{r.table.Fallback}
		res.Fallback = true
	}
	res.Glyph = strings.Join(res.Symbols, "")
	return res
}

// ScanResonance returns every atlas family whose keyword set intersects the
// concept. Order follows the atlas, not the table; each family appears once.
func (r *Resolver) ScanResonance(concept string, a *atlas.Atlas) []atlas.Family {
	text := Fold(concept)

	matched := make(map[string]bool)
	for _, fk := range r.table.Families {
		if containsAny(text, fk.Words) {
			matched[fk.ID] = true
		}
	}

	families := []atlas.Family{}
	for _, f := range a.Families {
		if matched[f.ID] {
			families = append(families, f)
			delete(matched, f.ID)
		}
	}
	return families
}

// Operations returns the solver operations whose symbol occurs in glyph, in
// table order. Each check is an independent substring test.
func (r *Resolver) Operations(glyph string) []Operation {
	ops := []Operation{}
	for _, op := range r.table.Operations {
		if strings.Contains(glyph, op.Symbol) {
			ops = append(ops, op)
		}
	}
	return ops
}

// Decoded holds the records a glyph resolves to, in glyph order.
type Decoded struct {
	Families   []atlas.Family    `json:"families"`
	Principles []atlas.Principle `json:"principles"`
}

// Empty reports whether no rune resolved.
func (d Decoded) Empty() bool {
	return len(d.Families) == 0 && len(d.Principles) == 0
}

// Decode resolves glyph rune by rune. Repeated runes yield repeated records.
// A rune owned by both a family and a principle is reported in both lists;
// validated atlases never contain such a rune.
func Decode(glyph string, a *atlas.Atlas) Decoded {
	idx := a.Index()

	d := Decoded{
		Families:   []atlas.Family{},
		Principles: []atlas.Principle{},
	}
	for _, r := range glyph {
		if f, ok := idx.Families[r]; ok {
			d.Families = append(d.Families, f)
		}
		if p, ok := idx.Principles[r]; ok {
			d.Principles = append(d.Principles, p)
		}
	}
	return d
}

// StepKind classifies an evolution step.
type StepKind string

const (
	StepFamily    StepKind = "family"
	StepPrinciple StepKind = "principle"
	StepNoise     StepKind = "noise"
)

// Step is one symbol added on the way from one glyph to another.
type Step struct {
	Index     int              `json:"index"`
	Symbol    string           `json:"symbol"`
	Current   string           `json:"current"`
	Kind      StepKind         `json:"kind"`
	Family    *atlas.Family    `json:"family,omitempty"`
	Principle *atlas.Principle `json:"principle,omitempty"`
}

// Evolve lists the runes of to that appear nowhere in from, in order, one
// step each. This is a membership filter rather than an alignment: repeats
// within to are kept, and runes already present in from are dropped wherever
// they occur. Current starts at from and grows by one rune per step.
func Evolve(from, to string, a *atlas.Atlas) []Step {
	idx := a.Index()

	steps := []Step{}
	current := from
	for _, r := range to {
		if strings.ContainsRune(from, r) {
			continue
		}
		current += string(r)
		step := Step{
			Index:   len(steps) + 1,
			Symbol:  string(r),
			Current: current,
			Kind:    StepNoise,
		}
		if f, ok := idx.Families[r]; ok {
			step.Kind = StepFamily
			step.Family = &f
		} else if p, ok := idx.Principles[r]; ok {
			step.Kind = StepPrinciple
			step.Principle = &p
		}
		steps = append(steps, step)
	}
	return steps
}
