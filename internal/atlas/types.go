package atlas

import "unicode/utf8"

// Version is the atlas_version written for atlases created by this tool.
const Version = "1.0.0"

// Equation is a named symbolic relation attached to a family or principle.
type Equation struct {
	Name      string `json:"name"`
	Glyph     string `json:"glyph"`
	GlyphName string `json:"glyph_name"`
}

// Family is one of the 20 domain categories (the icosahedron faces).
type Family struct {
	ID        string     `json:"id"`
	Symbol    string     `json:"symbol"`
	Name      string     `json:"name"`
	Domain    string     `json:"domain"`
	Equations []Equation `json:"equations,omitempty"`
}

// Principle is one of the 12 cross-cutting rules (the dodecahedron faces).
type Principle struct {
	ID        string     `json:"id"`
	Symbol    string     `json:"symbol"`
	Name      string     `json:"name"`
	Domain    string     `json:"domain"`
	Equations []Equation `json:"equations,omitempty"`
}

// Atlas is the combined set of families and principles.
type Atlas struct {
	Version    string      `json:"atlas_version"`
	Families   []Family    `json:"families"`
	Principles []Principle `json:"principles"`
}

// Minimal returns an empty atlas, the shape written by `poly init --minimal`.
func Minimal() *Atlas {
	return &Atlas{
		Version:    Version,
		Families:   []Family{},
		Principles: []Principle{},
	}
}

// Family returns the family with the given id.
func (a *Atlas) Family(id string) (Family, bool) {
	for _, f := range a.Families {
		if f.ID == id {
			return f, true
		}
	}
	return Family{}, false
}

// Index maps single-rune symbols to their records.
// Multi-rune symbols are never indexed: decoding walks a glyph one rune at a
// time, so such a symbol could not match anyway.
type Index struct {
	Families   map[rune]Family
	Principles map[rune]Principle
}

// Index builds fresh symbol indices. When an unvalidated atlas declares the
// same symbol twice, the later record wins.
func (a *Atlas) Index() Index {
	idx := Index{
		Families:   make(map[rune]Family, len(a.Families)),
		Principles: make(map[rune]Principle, len(a.Principles)),
	}
	for _, f := range a.Families {
		if r, ok := singleRune(f.Symbol); ok {
			idx.Families[r] = f
		}
	}
	for _, p := range a.Principles {
		if r, ok := singleRune(p.Symbol); ok {
			idx.Principles[r] = p
		}
	}
	return idx
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, r != utf8.RuneError
}
