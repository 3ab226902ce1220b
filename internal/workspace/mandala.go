package workspace

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusSeed is the status of a freshly created entry.
const StatusSeed = "seed"

// Entry is the structured half of a mandala entry.
type Entry struct {
	EntryID              string   `json:"entry_id"`
	SeedGlyph            string   `json:"seed_glyph"`
	Intent               string   `json:"intent"`
	Created              string   `json:"created"`
	Status               string   `json:"status"`
	FamiliesActivated    []string `json:"families_activated"`
	PrinciplesActivated  []string `json:"principles_activated"`
	ComputationalOutputs []string `json:"computational_outputs"`
}

// EntryFiles locates the files written for an entry.
type EntryFiles struct {
	Dir      string `json:"dir"`
	Markdown string `json:"markdown"`
	JSON     string `json:"json"`
	Entry    Entry  `json:"entry"`
}

var entryTemplate = template.Must(template.New("entry").Parse(`# {{.Title}}

**Seed Glyph:** {{.Glyph}}  
**Intent:** {{.Intent}}

## Resonance Sweep

### Families Activated

<!-- Will be filled during scan -->

### Principles Activated

<!-- Will be filled during scan -->

## Noise-to-Insight Conversion

<!-- Document how noise becomes signal -->

## Refined Glyph

<!-- Updated after processing -->

## Mandala Insight

<!-- Emergent understanding -->

## Computational Realization

<!-- Link to geometric solver outputs -->
`))

// EntryTitle turns an entry name into a heading: underscores become spaces
// and each word is title-cased.
func EntryTitle(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}

// RenderEntryMarkdown renders the human-readable entry document.
func RenderEntryMarkdown(name, glyph, intent string) (string, error) {
	var buf bytes.Buffer
	err := entryTemplate.Execute(&buf, struct {
		Title, Glyph, Intent string
	}{EntryTitle(name), glyph, intent})
	if err != nil {
		return "", fmt.Errorf("render entry: %w", err)
	}
	return buf.String(), nil
}

// ValidateEntryName rejects names that would escape the entries directory.
func ValidateEntryName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("entry name is empty")
	case name == "." || name == "..":
		return fmt.Errorf("entry name %q is reserved", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("entry name %q must not contain path separators", name)
	}
	return nil
}

// CreateEntry writes entries/<name>/<name>.md and <name>.json. Existing
// files for the same entry are replaced.
func CreateEntry(cfg *Config, name, glyph, intent string, now time.Time) (*EntryFiles, error) {
	if err := ValidateEntryName(name); err != nil {
		return nil, err
	}

	dir := filepath.Join(cfg.Path(cfg.Entries), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create entry directory: %w", err)
	}

	md, err := RenderEntryMarkdown(name, glyph, intent)
	if err != nil {
		return nil, err
	}
	mdPath := filepath.Join(dir, name+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return nil, fmt.Errorf("write entry markdown: %w", err)
	}

	entry := Entry{
		EntryID:              name,
		SeedGlyph:            glyph,
		Intent:               intent,
		Created:              now.UTC().Format(time.RFC3339),
		Status:               StatusSeed,
		FamiliesActivated:    []string{},
		PrinciplesActivated:  []string{},
		ComputationalOutputs: []string{},
	}
	jsonPath := filepath.Join(dir, name+".json")
	if err := writeJSON(jsonPath, entry); err != nil {
		return nil, err
	}

	return &EntryFiles{
		Dir:      dir,
		Markdown: mdPath,
		JSON:     jsonPath,
		Entry:    entry,
	}, nil
}
