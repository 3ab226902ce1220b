package cli

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/roach88/poly/internal/atlas"
	"github.com/roach88/poly/internal/glyph"
)

// Quick reference categories.
const (
	CategoryAll        = "all"
	CategoryFamilies   = "families"
	CategoryPrinciples = "principles"
	CategoryGlyphs     = "glyphs"
)

// ValidCategories defines the allowed --category values.
var ValidCategories = []string{CategoryAll, CategoryFamilies, CategoryPrinciples, CategoryGlyphs}

// otherTheme collects atlas families no theme lists.
const otherTheme = "Other"

// QuickrefOptions holds flags for quickref.
type QuickrefOptions struct {
	Category string
	Markdown bool
}

// ThemeGroup is a named set of families.
type ThemeGroup struct {
	Name     string         `json:"name"`
	Families []atlas.Family `json:"families"`
}

// QuickrefResult is the JSON payload of quickref, and the data behind the
// text and markdown renderings.
type QuickrefResult struct {
	Themes     []ThemeGroup      `json:"themes,omitempty"`
	Principles []atlas.Principle `json:"principles,omitempty"`
	Patterns   []glyph.Pattern   `json:"patterns,omitempty"`
}

// NewQuickrefCommand creates the quickref command.
func NewQuickrefCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QuickrefOptions{}

	cmd := &cobra.Command{
		Use:   "quickref",
		Short: "Show the glyph quick reference",
		Long: `Show families grouped by theme, the principles and common glyph patterns.

Use --markdown for a reference card suitable for a README, or the global
--format json for machine-readable output.`,
		Example:       `  poly quickref --category families`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuickref(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", CategoryAll, "category to show: "+strings.Join(ValidCategories, ", "))
	cmd.Flags().BoolVar(&opts.Markdown, "markdown", false, "emit markdown")

	return cmd
}

func runQuickref(rootOpts *RootOptions, opts *QuickrefOptions, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f := e.out

	if !isValidCategory(opts.Category) {
		return invalidArgument(f, "invalid category %q: must be one of %v", opts.Category, ValidCategories)
	}

	a, err := e.loadAtlas()
	if err != nil {
		return err
	}
	r, err := e.resolver()
	if err != nil {
		return err
	}

	ref := BuildQuickref(a, r.Table(), opts.Category)

	switch {
	case f.IsJSON():
		return f.Success(ref)
	case opts.Markdown:
		md, err := RenderQuickrefMarkdown(ref)
		if err != nil {
			return fail(f, ErrCodeGeneric, "render quick reference", "", err)
		}
		f.Printf("%s", md)
		return nil
	}

	printQuickref(f, ref, len(a.Families), len(a.Principles))
	return nil
}

// BuildQuickref selects the parts of the reference for category.
func BuildQuickref(a *atlas.Atlas, t *glyph.Table, category string) QuickrefResult {
	show := func(c string) bool { return category == CategoryAll || category == "" || category == c }

	var ref QuickrefResult
	if show(CategoryFamilies) {
		ref.Themes = groupFamilies(a, t.Themes)
	}
	if show(CategoryPrinciples) {
		ref.Principles = append([]atlas.Principle{}, a.Principles...)
	}
	if show(CategoryGlyphs) {
		ref.Patterns = append([]glyph.Pattern{}, t.Patterns...)
	}
	return ref
}

// groupFamilies arranges atlas families by theme. Families listed by no
// theme land in a trailing "Other" group; ids the atlas lacks are skipped.
func groupFamilies(a *atlas.Atlas, themes []glyph.Theme) []ThemeGroup {
	placed := make(map[string]bool)
	groups := []ThemeGroup{}
	for _, th := range themes {
		g := ThemeGroup{Name: th.Name, Families: []atlas.Family{}}
		for _, id := range th.Families {
			if fam, ok := a.Family(id); ok {
				g.Families = append(g.Families, fam)
				placed[id] = true
			}
		}
		if len(g.Families) > 0 {
			groups = append(groups, g)
		}
	}

	other := ThemeGroup{Name: otherTheme, Families: []atlas.Family{}}
	for _, fam := range a.Families {
		if !placed[fam.ID] {
			other.Families = append(other.Families, fam)
		}
	}
	if len(other.Families) > 0 {
		groups = append(groups, other)
	}
	return groups
}

func printQuickref(f *OutputFormatter, ref QuickrefResult, families, principles int) {
	st := f.Styles
	f.Heading("📖 Polyhedral Intelligence Quick Reference")

	if ref.Themes != nil {
		f.Printf("%s\n\n", st.Family.Render(fmt.Sprintf("═══ FAMILIES (%d - Icosahedron) ═══", families)))
		for _, g := range ref.Themes {
			f.Printf("%s\n", st.Info.Render(g.Name+":"))
			for _, fam := range g.Families {
				f.Printf("  %s %s: %s\n", fam.Symbol, fam.ID, fam.Name)
			}
			f.Printf("\n")
		}
	}

	if ref.Principles != nil {
		f.Printf("%s\n\n", st.Principle.Render(fmt.Sprintf("═══ PRINCIPLES (%d - Dodecahedron) ═══", principles)))
		for _, p := range ref.Principles {
			f.Printf("%s %s: %s\n", p.Symbol, p.ID, p.Name)
			f.Printf("  %s\n", st.Dim.Render(p.Domain))
		}
	}

	if ref.Patterns != nil {
		f.Printf("\n%s\n\n", st.Glyph.Render("═══ COMMON GLYPH PATTERNS ═══"))
		for _, p := range ref.Patterns {
			f.Printf("%s %s %s\n",
				st.Glyph.Render(padRunes(p.Glyph, 8)),
				st.Bold.Render(fmt.Sprintf("%-22s", p.Name)),
				st.Dim.Render(p.Description))
		}
	}

	f.Printf("\n%s\n", st.Info.Render("💡 Tips:"))
	f.Printf("  • Use 'poly glyph decode <glyph>' to analyze any glyph\n")
	f.Printf("  • Combine 2-4 families for balanced designs\n")
	f.Printf("  • Add principles (⧖, ↺, ◧) to strengthen patterns\n")
}

// padRunes right-pads s with spaces to width runes.
func padRunes(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

var quickrefTemplate = template.Must(template.New("quickref").Parse(`# Polyhedral Intelligence Quick Reference
{{- if .Themes}}

## Families
{{- range .Themes}}

### {{.Name}}

| Symbol | ID | Name | Domain |
|---|---|---|---|
{{- range .Families}}
| {{.Symbol}} | {{.ID}} | {{.Name}} | {{.Domain}} |
{{- end}}
{{- end}}
{{- end}}
{{- if .Principles}}

## Principles

| Symbol | ID | Name | Domain |
|---|---|---|---|
{{- range .Principles}}
| {{.Symbol}} | {{.ID}} | {{.Name}} | {{.Domain}} |
{{- end}}
{{- end}}
{{- if .Patterns}}

## Common Glyph Patterns

| Glyph | Name | Description |
|---|---|---|
{{- range .Patterns}}
| {{.Glyph}} | {{.Name}} | {{.Description}} |
{{- end}}
{{- end}}
`))

// RenderQuickrefMarkdown renders ref as a markdown reference card.
func RenderQuickrefMarkdown(ref QuickrefResult) (string, error) {
	var buf bytes.Buffer
	if err := quickrefTemplate.Execute(&buf, ref); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
