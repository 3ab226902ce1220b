package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/poly/internal/atlas"
	"github.com/roach88/poly/internal/glyph"
	"github.com/roach88/poly/internal/journal"
)

// NewGlyphCommand creates the glyph command group.
func NewGlyphCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glyph",
		Short: "Create, decode and evolve glyphs",
	}

	cmd.AddCommand(newGlyphCreateCommand(rootOpts))
	cmd.AddCommand(newGlyphDecodeCommand(rootOpts))
	cmd.AddCommand(newGlyphEvolveCommand(rootOpts))
	cmd.AddCommand(newGlyphHistoryCommand(rootOpts))

	return cmd
}

// CreateOptions holds flags for glyph create.
type CreateOptions struct {
	Scan    bool
	NoScan  bool
	Enhance bool
	Save    bool
}

// CreateResult is the JSON payload of glyph create.
type CreateResult struct {
	glyph.Result
	Complexity glyph.Complexity `json:"complexity"`
	Families   []atlas.Family   `json:"families,omitempty"`
	Journal    *JournalRef      `json:"journal,omitempty"`
}

// JournalRef identifies a journaled glyph.
type JournalRef struct {
	ID  string `json:"id"`
	Seq int64  `json:"seq"`
}

func newGlyphCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CreateOptions{}

	cmd := &cobra.Command{
		Use:   "create <concept>",
		Short: "Create a seed glyph from a concept",
		Long: `Create a seed glyph by scanning the concept for keywords.

Each matching keyword contributes its symbol once, in keyword-table order.
With --scan (the default) the atlas is searched for resonating families.`,
		Example:       `  poly glyph create "self-healing network with fluid dynamics"`,
		Args:          exactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGlyphCreate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Scan, "scan", true, "scan the atlas for family resonance")
	cmd.Flags().BoolVar(&opts.NoScan, "no-scan", false, "skip the resonance scan")
	cmd.Flags().BoolVar(&opts.Enhance, "enhance", false, "apply compound-pattern rules and report insights")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "record the glyph in the journal")

	return cmd
}

func runGlyphCreate(rootOpts *RootOptions, opts *CreateOptions, concept string, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f, st := e.out, e.out.Styles

	r, err := e.resolver()
	if err != nil {
		return err
	}

	scan := opts.Scan && !opts.NoScan

	res := r.Create(concept, opts.Enhance)
	out := CreateResult{Result: res, Complexity: res.Complexity()}
	e.log.Debug("glyph created",
		zap.String("glyph", res.Glyph),
		zap.Strings("keywords", res.Keywords),
		zap.Bool("fallback", res.Fallback))

	var a *atlas.Atlas
	if scan {
		if a, err = e.loadAtlas(); err != nil {
			return err
		}
		out.Families = r.ScanResonance(concept, a)
	}

	if opts.Save {
		ref, err := saveGlyph(cmd.Context(), e, out)
		if err != nil {
			return err
		}
		out.Journal = ref
	}

	if f.IsJSON() {
		return f.Success(out)
	}

	f.Printf("\n%s %s\n\n", st.Title.Render("🌱 Creating seed glyph for:"), concept)
	if opts.Enhance {
		f.Printf("%s\n", st.Info.Render("🤖 Enhanced mode"))
		f.Printf("%s\n\n", st.Dim.Render("Analyzing compound patterns..."))
	}

	detected := "none"
	if len(res.Keywords) > 0 {
		detected = strings.Join(res.Keywords, ", ")
	}
	f.Printf("%s %s\n", st.Info.Render("Detected keywords:"), detected)
	f.Printf("%s %s\n", st.Glyph.Render(res.Glyph), st.Bold.Render("Seed Glyph"))
	f.Printf("  %s\n", st.Dim.Render("Generated from: "+concept))

	if scan {
		f.Printf("\n%s\n\n", st.Info.Render("🔍 Scanning for resonance..."))
		if len(out.Families) == 0 {
			f.Printf("%s\n", st.Dim.Render("No families resonate with this concept"))
		} else {
			f.Printf("%s\n", st.Family.Render("Activated Families:"))
			for _, fam := range out.Families {
				f.Printf("  %s %s: %s\n", fam.Symbol, fam.ID, fam.Name)
				f.Printf("    %s\n", st.Dim.Render(fam.Domain))
			}
		}
		if len(out.Families) >= 2 {
			f.Printf("\n%s\n", st.Info.Render("💡 Potential Bridges:"))
			f.Printf("  %s\n", st.Dim.Render(fmt.Sprintf("This concept spans %d families", len(out.Families))))
			f.Printf("  %s\n", st.Dim.Render("Decode the glyph to map how they connect"))
		}
	}

	f.Printf("\n")
	f.Check("Seed glyph created: %s", st.Glyph.Render(res.Glyph))

	if opts.Enhance {
		f.Printf("\n%s\n", st.Info.Render("Insights:"))
		f.Printf("  • Semantic depth: %d concepts\n", len(res.Keywords))
		if a != nil {
			f.Printf("  • Family resonance: %d/%d\n", len(out.Families), len(a.Families))
		}
		f.Printf("  • Complexity: %s\n", out.Complexity)
	}

	if out.Journal != nil {
		f.Check("Journaled as #%d (%s)", out.Journal.Seq, out.Journal.ID)
	}
	return nil
}

// saveGlyph appends the created glyph to the workspace journal.
func saveGlyph(ctx context.Context, e *env, out CreateResult) (*JournalRef, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	path := e.cfg.Path(e.cfg.Journal)
	store, err := journal.Open(path)
	if err != nil {
		return nil, fail(e.out, ErrCodeWriteFailed, "open journal", "", err)
	}
	defer store.Close()

	families := make([]string, 0, len(out.Families))
	for _, fam := range out.Families {
		families = append(families, fam.ID)
	}

	rec := journal.Record{
		ID:        e.newID(),
		Concept:   out.Concept,
		Glyph:     out.Glyph,
		Keywords:  out.Keywords,
		Enhanced:  out.Enhanced,
		Families:  families,
		CreatedAt: e.now(),
	}
	seq, err := store.Write(ctx, rec)
	if err != nil {
		return nil, fail(e.out, ErrCodeWriteFailed, "write journal", "", err)
	}
	e.log.Debug("glyph journaled", zap.String("id", rec.ID), zap.Int64("seq", seq))
	return &JournalRef{ID: rec.ID, Seq: seq}, nil
}

func newGlyphDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "decode <glyph>",
		Short:         "Decode a glyph into its families and principles",
		Example:       `  poly glyph decode "〰⬡↺"`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGlyphDecode(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runGlyphDecode(rootOpts *RootOptions, g string, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f, st := e.out, e.out.Styles

	a, err := e.loadAtlas()
	if err != nil {
		return err
	}

	d := glyph.Decode(g, a)
	if d.Empty() {
		f.Printf("\n%s %s\n\n", st.Title.Render("🔍 Decoding glyph:"), st.Glyph.Render(g))
		return f.Warning(ErrCodeNotFound, "No recognized symbols found in glyph", "", d)
	}

	if f.IsJSON() {
		return f.Success(d)
	}

	f.Printf("\n%s %s\n\n", st.Title.Render("🔍 Decoding glyph:"), st.Glyph.Render(g))
	if len(d.Families) > 0 {
		f.Printf("%s\n", st.Family.Render("📊 Families:"))
		for _, fam := range d.Families {
			f.Printf("  %s %s: %s\n", fam.Symbol, fam.ID, fam.Name)
			f.Printf("    %s\n", st.Dim.Render(fam.Domain))
		}
	}
	if len(d.Principles) > 0 {
		f.Printf("\n%s\n", st.Principle.Render("⚖️  Principles:"))
		for _, p := range d.Principles {
			f.Printf("  %s %s: %s\n", p.Symbol, p.ID, p.Name)
			f.Printf("    %s\n", st.Dim.Render(p.Domain))
		}
	}
	return nil
}

// EvolveOptions holds flags for glyph evolve.
type EvolveOptions struct {
	From         string
	To           string
	ShowInsights bool
}

// EvolveResult is the JSON payload of glyph evolve.
type EvolveResult struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Steps []glyph.Step `json:"steps"`
}

func newGlyphEvolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvolveOptions{}

	cmd := &cobra.Command{
		Use:   "evolve --from <glyph> --to <glyph>",
		Short: "Show the steps from one glyph to another",
		Long: `Show the symbols added on the way from one glyph to another.

Every symbol of --to that does not occur anywhere in --from becomes one step,
classified as a family, a principle, or noise.`,
		Example:       `  poly glyph evolve --from "◇⚙" --to "◇⚙➝〰" --show-insights`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGlyphEvolve(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "starting glyph (required)")
	cmd.Flags().StringVar(&opts.To, "to", "", "evolved glyph (required)")
	cmd.Flags().BoolVar(&opts.ShowInsights, "show-insights", false, "show the domain added at each step")

	return cmd
}

func runGlyphEvolve(rootOpts *RootOptions, opts *EvolveOptions, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f, st := e.out, e.out.Styles

	if !cmd.Flags().Changed("from") || !cmd.Flags().Changed("to") {
		return invalidArgument(f, "--from and --to are both required")
	}

	a, err := e.loadAtlas()
	if err != nil {
		return err
	}

	steps := glyph.Evolve(opts.From, opts.To, a)
	if f.IsJSON() {
		return f.Success(EvolveResult{From: opts.From, To: opts.To, Steps: steps})
	}

	f.Heading("🌱 Glyph Evolution Journey")
	f.Printf("From: %s\n", st.Glyph.Render(opts.From))
	f.Printf("To:   %s\n\n", st.Glyph.Render(opts.To))
	f.Printf("%s\n\n", st.Info.Render("📈 Evolution Path:"))
	f.Printf("  %s %s %s\n", st.Dim.Render("Step 0:"), st.Glyph.Render(opts.From), st.Dim.Render("(seed)"))

	for _, s := range steps {
		f.Printf("  %s %s\n", st.Dim.Render(fmt.Sprintf("Step %d:", s.Index)), st.Glyph.Render(s.Current))
		switch s.Kind {
		case glyph.StepFamily:
			f.Printf("    %s %s %s\n", st.Success.Render("+"), s.Symbol, s.Family.Name)
			if opts.ShowInsights {
				f.Printf("      %s\n", st.Dim.Render("Added: "+s.Family.Domain))
			}
		case glyph.StepPrinciple:
			f.Printf("    %s %s %s\n", st.Success.Render("+"), s.Symbol, s.Principle.Name)
			if opts.ShowInsights {
				f.Printf("      %s\n", st.Dim.Render("Added: "+s.Principle.Domain))
			}
		default:
			f.Printf("    %s %s %s\n", st.Warning.Render("+"), s.Symbol, st.Dim.Render("(noise signal)"))
		}
	}

	f.Printf("\n")
	f.Check("Evolution complete: %d transformations", len(steps))
	return nil
}

// HistoryResult is the JSON payload of glyph history.
type HistoryResult struct {
	Total   int              `json:"total"`
	Records []journal.Record `json:"records"`
}

func newGlyphHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List journaled glyphs, newest first",
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGlyphHistory(rootOpts, limit, cmd)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of glyphs to list")

	return cmd
}

func runGlyphHistory(rootOpts *RootOptions, limit int, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f, st := e.out, e.out.Styles

	if limit <= 0 {
		return invalidArgument(f, "--limit must be positive, got %d", limit)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	records := []journal.Record{}
	total := 0
	path := e.cfg.Path(e.cfg.Journal)
	if journal.Exists(path) {
		store, err := journal.Open(path)
		if err != nil {
			return fail(f, ErrCodeGeneric, "open journal", "", err)
		}
		defer store.Close()

		if records, err = store.List(ctx, limit); err != nil {
			return fail(f, ErrCodeGeneric, "read journal", "", err)
		}
		if total, err = store.Count(ctx); err != nil {
			return fail(f, ErrCodeGeneric, "read journal", "", err)
		}
	} else {
		e.log.Debug("no journal", zap.String("path", path))
	}

	if f.IsJSON() {
		return f.Success(HistoryResult{Total: total, Records: records})
	}

	if len(records) == 0 {
		f.Printf("%s\n", st.Dim.Render("No glyphs journaled yet. Use poly glyph create --save."))
		return nil
	}

	f.Heading("📜 Glyph Journal")
	f.Printf("%s\n\n", st.Dim.Render(fmt.Sprintf("Showing %d of %d", len(records), total)))
	for _, rec := range records {
		f.Printf("%s %s  %s\n",
			st.Dim.Render(fmt.Sprintf("#%-4d", rec.Seq)),
			st.Glyph.Render(rec.Glyph),
			rec.Concept)
		f.Printf("      %s\n", st.Dim.Render(rec.CreatedAt.UTC().Format("2006-01-02 15:04:05")))
	}
	return nil
}
