package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/roach88/poly/internal/atlas"
)

// SampleAtlas returns a small atlas with unique symbols for tests.
//
// Families: F01 ∿ Resonance, F02 〰 Flow, F11 ⚙ Engineering, F12 ⬡ Network,
// F15 ➝ Navigation. Principles: P02 ↺ Feedback, P06 ◇ Crystallization.
func SampleAtlas() *atlas.Atlas {
	return &atlas.Atlas{
		Version: "1.0.0",
		Families: []atlas.Family{
			{ID: "F01", Symbol: "∿", Name: "Resonance", Domain: "Harmonic oscillation",
				Equations: []atlas.Equation{{Name: "Harmonic Oscillator", Glyph: "∿⇄", GlyphName: "restoring swing"}}},
			{ID: "F02", Symbol: "〰", Name: "Flow", Domain: "Fluid dynamics",
				Equations: []atlas.Equation{
					{Name: "Navier-Stokes", Glyph: "〰∇", GlyphName: "viscous current"},
					{Name: "Continuity", Glyph: "〰∞", GlyphName: "conserved stream"},
					{Name: "Bernoulli", Glyph: "〰⇑", GlyphName: "pressure lift"},
				}},
			{ID: "F11", Symbol: "⚙", Name: "Engineering", Domain: "Design and construction"},
			{ID: "F12", Symbol: "⬡", Name: "Network", Domain: "Graphs and connectivity"},
			{ID: "F15", Symbol: "➝", Name: "Navigation", Domain: "Paths and routes"},
		},
		Principles: []atlas.Principle{
			{ID: "P02", Symbol: "↺", Name: "Feedback", Domain: "Self-correcting loops"},
			{ID: "P06", Symbol: "◇", Name: "Crystallization", Domain: "Lattice order"},
		},
	}
}

// WriteAtlas writes a as JSON into dir/atlas_schema.json and returns the path.
func WriteAtlas(t *testing.T, dir string, a *atlas.Atlas) string {
	t.Helper()
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		t.Fatalf("marshal atlas: %v", err)
	}
	path := filepath.Join(dir, atlas.DefaultPath)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write atlas: %v", err)
	}
	return path
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
