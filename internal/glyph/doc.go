// Package glyph resolves free text to glyphs and glyphs back to atlas records.
//
// A glyph is an ordered sequence of symbols. Create builds one from a concept
// by scanning the ordered keyword list of a Table; Decode walks a glyph rune
// by rune against the atlas symbol indices; Evolve reports the runes added
// between two glyphs. All operations are pure functions of their inputs.
//
// Symbols are compared by exact code point. Concept text is lower-cased with
// Unicode case mapping before matching; no other normalization is applied.
package glyph
