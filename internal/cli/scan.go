package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/poly/internal/atlas"
	"github.com/roach88/poly/internal/glyph"
)

// maxScanEquations is how many equations scan prints per record.
const maxScanEquations = 2

// ScanOptions holds flags for scan.
type ScanOptions struct {
	Families   bool
	Principles bool
	Equations  bool
	Filter     string
}

// ScanResult is the JSON payload of scan.
type ScanResult struct {
	Families   []atlas.Family    `json:"families,omitempty"`
	Principles []atlas.Principle `json:"principles,omitempty"`
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List atlas families and principles",
		Long: `List the atlas families and principles.

With neither --families nor --principles both are shown. --filter keeps
records whose name or domain contains the term, ignoring case.`,
		Example:       `  poly scan --families --equations --filter flow`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Families, "families", false, "show families")
	cmd.Flags().BoolVar(&opts.Principles, "principles", false, "show principles")
	cmd.Flags().BoolVar(&opts.Equations, "equations", false, "include the first two equations of each record")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter by name or domain")

	return cmd
}

func runScan(rootOpts *RootOptions, opts *ScanOptions, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f, st := e.out, e.out.Styles

	a, err := e.loadAtlas()
	if err != nil {
		return err
	}

	showFamilies, showPrinciples := opts.Families, opts.Principles
	if !showFamilies && !showPrinciples {
		showFamilies, showPrinciples = true, true
	}

	var res ScanResult
	if showFamilies {
		res.Families = []atlas.Family{}
		for _, fam := range a.Families {
			if matchesFilter(opts.Filter, fam.Name, fam.Domain) {
				res.Families = append(res.Families, fam)
			}
		}
	}
	if showPrinciples {
		res.Principles = []atlas.Principle{}
		for _, p := range a.Principles {
			if matchesFilter(opts.Filter, p.Name, p.Domain) {
				res.Principles = append(res.Principles, p)
			}
		}
	}

	if f.IsJSON() {
		if !opts.Equations {
			res = withoutEquations(res)
		}
		return f.Success(res)
	}

	f.Printf("\n%s\n", st.Title.Render("🌀 Polyhedral Intelligence Atlas"))
	f.Printf("%s\n\n", st.Dim.Render("20 Families (icosahedron) + 12 Principles (dodecahedron)"))

	if showFamilies {
		f.Printf("%s\n\n", st.Family.Render("═══ FAMILIES ═══"))
		for _, fam := range res.Families {
			printRecord(f, fam.Symbol, fam.ID, fam.Name, fam.Domain, fam.Equations, opts.Equations)
		}
	}
	if showPrinciples {
		f.Printf("%s\n\n", st.Principle.Render("═══ PRINCIPLES ═══"))
		for _, p := range res.Principles {
			printRecord(f, p.Symbol, p.ID, p.Name, p.Domain, p.Equations, opts.Equations)
		}
	}
	return nil
}

func printRecord(f *OutputFormatter, symbol, id, name, domain string, eqs []atlas.Equation, withEquations bool) {
	st := f.Styles
	f.Printf("%s %s\n", symbol, st.Bold.Render(id+": "+name))
	f.Printf("  %s\n", st.Dim.Render(domain))
	if withEquations {
		for i, eq := range eqs {
			if i == maxScanEquations {
				break
			}
			f.Printf("  %s %s: %s %s\n", st.Equation.Render("▸"), eq.Name, eq.Glyph, eq.GlyphName)
		}
	}
	f.Printf("\n")
}

// matchesFilter reports whether term occurs in any of fields, ignoring case.
// An empty term matches everything.
func matchesFilter(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = glyph.Fold(term)
	for _, field := range fields {
		if strings.Contains(glyph.Fold(field), term) {
			return true
		}
	}
	return false
}

func withoutEquations(res ScanResult) ScanResult {
	out := ScanResult{}
	if res.Families != nil {
		out.Families = make([]atlas.Family, len(res.Families))
		for i, fam := range res.Families {
			fam.Equations = nil
			out.Families[i] = fam
		}
	}
	if res.Principles != nil {
		out.Principles = make([]atlas.Principle, len(res.Principles))
		for i, p := range res.Principles {
			p.Equations = nil
			out.Principles[i] = p
		}
	}
	return out
}
