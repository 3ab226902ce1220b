package atlas

import (
	"fmt"
	"unicode/utf8"
)

// Issue is a single uniqueness or shape problem found in an atlas.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Validate checks the invariants decode relies on:
//   - every id is non-empty and unique across families and principles
//   - every symbol is exactly one code point
//   - every symbol belongs to at most one record
//
// Returns nil when the atlas is valid.
func Validate(a *Atlas) []Issue {
	var issues []Issue

	ids := make(map[string]string)
	symbols := make(map[string]string)

	check := func(field, id, symbol string) {
		if id == "" {
			issues = append(issues, Issue{Field: field + ".id", Message: "id is empty"})
		} else if prev, dup := ids[id]; dup {
			issues = append(issues, Issue{
				Field:   field + ".id",
				Message: fmt.Sprintf("id %q already declared at %s", id, prev),
			})
		} else {
			ids[id] = field
		}

		if n := utf8.RuneCountInString(symbol); n != 1 {
			issues = append(issues, Issue{
				Field:   field + ".symbol",
				Message: fmt.Sprintf("symbol %q must be a single character, got %d", symbol, n),
			})
			return
		}
		if owner, dup := symbols[symbol]; dup {
			issues = append(issues, Issue{
				Field:   field + ".symbol",
				Message: fmt.Sprintf("symbol %q declared by both %s and %s", symbol, owner, id),
			})
			return
		}
		symbols[symbol] = id
	}

	for i, f := range a.Families {
		check(fmt.Sprintf("families[%d]", i), f.ID, f.Symbol)
	}
	for i, p := range a.Principles {
		check(fmt.Sprintf("principles[%d]", i), p.ID, p.Symbol)
	}

	return issues
}
