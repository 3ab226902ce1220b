package glyph_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/poly/internal/atlas"
	"github.com/roach88/poly/internal/glyph"
	"github.com/roach88/poly/internal/testutil"
)

func TestDefaultTable_Shape(t *testing.T) {
	table, err := glyph.DefaultTable()
	require.NoError(t, err)

	assert.Equal(t, "◯", table.Fallback)
	assert.Len(t, table.Families, 20)
	assert.Len(t, table.Enhancements, 3)
	assert.Len(t, table.Operations, 3)
	assert.Equal(t, glyph.Keyword{Word: "flow", Symbol: "〰"}, table.Keywords[0])
}

func TestDefaultTable_SymbolsExistInDefaultAtlas(t *testing.T) {
	table, err := glyph.DefaultTable()
	require.NoError(t, err)
	def, err := atlas.Default()
	require.NoError(t, err)

	for _, kw := range table.Keywords {
		d := glyph.Decode(kw.Symbol, def)
		assert.False(t, d.Empty(), "symbol %s for %q missing from atlas", kw.Symbol, kw.Word)
	}
	for _, e := range table.Enhancements {
		assert.False(t, glyph.Decode(e.Symbol, def).Empty(), "enhancement %s", e.Name)
	}
	for _, theme := range table.Themes {
		for _, id := range theme.Families {
			_, ok := def.Family(id)
			assert.True(t, ok, "theme %s references %s", theme.Name, id)
		}
	}
}

func TestParseTable_PreservesDocumentOrder(t *testing.T) {
	doc := `
fallback: "?"
keywords:
  - symbol: "B"
    words: [Beta, bravo]
  - symbol: "A"
    words: [alpha]
`
	table, err := glyph.ParseTable([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []glyph.Keyword{
		{Word: "beta", Symbol: "B"},
		{Word: "bravo", Symbol: "B"},
		{Word: "alpha", Symbol: "A"},
	}, table.Keywords)

	r := glyph.NewResolver(table)
	assert.Equal(t, "BA", r.Create("alpha beta", false).Glyph)
	assert.Equal(t, "?", r.Create("gamma", false).Glyph)
}

func TestParseTable_DefaultsPlacementToAppend(t *testing.T) {
	doc := `
fallback: "?"
enhancements:
  - name: loud
    symbol: "!"
    any: [LOUD]
`
	table, err := glyph.ParseTable([]byte(doc))
	require.NoError(t, err)
	require.Len(t, table.Enhancements, 1)
	assert.Equal(t, glyph.PlaceAppend, table.Enhancements[0].Placement)
	assert.Equal(t, []string{"loud"}, table.Enhancements[0].Any)
}

func TestParseTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "keywords: [unclosed"},
		{"missing fallback", "keywords: []"},
		{"group without symbol", "fallback: x\nkeywords:\n  - words: [a]"},
		{"group without words", "fallback: x\nkeywords:\n  - symbol: y"},
		{"bad placement", "fallback: x\nenhancements:\n  - {name: n, symbol: s, placement: middle, any: [a]}"},
		{"rule without words", "fallback: x\nenhancements:\n  - {name: n, symbol: s}"},
		{"family without id", "fallback: x\nfamilies:\n  - {words: [a]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := glyph.ParseTable([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()

	_, err := glyph.LoadTable(filepath.Join(dir, "missing.yaml"))
	assert.True(t, atlas.IsMissingFile(err))

	bad := testutil.WriteFile(t, dir, "bad.yaml", "fallback: [")
	_, err = glyph.LoadTable(bad)
	assert.True(t, atlas.IsMalformed(err))

	good := testutil.WriteFile(t, dir, "good.yaml", "fallback: \"*\"\nkeywords:\n  - {symbol: \"〰\", words: [flow]}\n")
	table, err := glyph.LoadTable(good)
	require.NoError(t, err)
	assert.Equal(t, "*", table.Fallback)
}
