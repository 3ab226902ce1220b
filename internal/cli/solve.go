package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/poly/internal/atlas"
	"github.com/roach88/poly/internal/glyph"
	"github.com/roach88/poly/internal/workspace"
)

// SolveOptions holds flags for solve.
type SolveOptions struct {
	Glyph     string
	Output    string
	Optimize  string
	Visualize bool
}

// SolveResult is the JSON payload of solve.
type SolveResult struct {
	ConfigPath string                    `json:"config_path"`
	Config     workspace.SolverConfig    `json:"config"`
	Operations []glyph.Operation         `json:"operations"`
	Decoded    glyph.Decoded             `json:"decoded"`
	Bridge     *workspace.BridgeManifest `json:"bridge,omitempty"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve --glyph <glyph>",
		Short: "Write a geometric solver configuration for a glyph",
		Long: `Map a glyph to geometric solver operations and write solver_config.json.

Requires the bridge manifest (bridges/glyph-to-geometric.json by default);
without it the command stops with a warning. No solving happens here.`,
		Example:       `  poly solve --glyph "〰⬡" --optimize symmetry --visualize`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Glyph, "glyph", "", "glyph to solve (required)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output directory (default from poly.yaml, output/)")
	cmd.Flags().StringVar(&opts.Optimize, "optimize", "", "optimization strategy: "+strings.Join(workspace.Optimizations, ", ")+" (default from poly.yaml, simd)")
	cmd.Flags().BoolVar(&opts.Visualize, "visualize", false, "request a 3D visualization")

	return cmd
}

func runSolve(rootOpts *RootOptions, opts *SolveOptions, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f, st := e.out, e.out.Styles

	if opts.Glyph == "" {
		return invalidArgument(f, "--glyph is required")
	}
	output := opts.Output
	if output == "" {
		output = e.cfg.Output
	}
	optimize := opts.Optimize
	if optimize == "" {
		optimize = e.cfg.Optimization
	}
	if !workspace.ValidOptimization(optimize) {
		return invalidArgument(f, "unknown optimization %q: must be one of %s",
			optimize, strings.Join(workspace.Optimizations, ", "))
	}

	f.Heading("⚙️  Geometric Solver")
	f.Printf("Glyph: %s\n", st.Glyph.Render(opts.Glyph))
	f.Printf("Output: %s\n", output)
	f.Printf("Optimization: %s\n\n", optimize)

	bridge, err := workspace.LoadBridge(e.cfg.Path(e.cfg.Bridge))
	switch {
	case atlas.IsMissingFile(err):
		return f.Warning(ErrCodeNotFound, "Bridge manifest not found", "Looking for: "+e.cfg.Bridge, nil)
	case err != nil:
		return failLoad(f, err, "")
	}

	a, err := e.loadAtlas()
	if err != nil {
		return err
	}
	d := glyph.Decode(opts.Glyph, a)
	e.log.Debug("glyph decoded for solver",
		zap.Int("families", len(d.Families)),
		zap.Int("principles", len(d.Principles)))
	for _, fam := range d.Families {
		f.Printf("  %s %s %s\n", st.Glyph.Render(fam.Symbol), st.Family.Render(fam.Name), st.Dim.Render(fam.Domain))
	}
	for _, p := range d.Principles {
		f.Printf("  %s %s %s\n", st.Glyph.Render(p.Symbol), st.Principle.Render(p.Name), st.Dim.Render(p.Domain))
	}
	if !d.Empty() {
		f.Printf("\n")
	}

	r, err := e.resolver()
	if err != nil {
		return err
	}

	f.Printf("%s\n\n", st.Info.Render("🔍 Mapping glyph to geometric operations..."))
	ops := r.Operations(opts.Glyph)
	for _, op := range ops {
		f.Printf("  %s %s\n", st.Success.Render("✓"), op.Description)
	}
	if len(ops) == 0 {
		return f.Warning(ErrCodeNotFound, "No geometric operations mapped", "", nil)
	}

	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}

	dir := e.cfg.Path(output)
	sc := workspace.SolverConfig{
		RunID:        e.newID(),
		Glyph:        opts.Glyph,
		Operations:   names,
		Optimization: optimize,
		OutputPath:   output,
		Visualize:    opts.Visualize,
	}
	path, err := workspace.WriteSolverConfig(dir, sc)
	if err != nil {
		return fail(f, ErrCodeWriteFailed, "write solver config", "", err)
	}
	e.log.Debug("solver config written", zap.String("path", path), zap.String("run_id", sc.RunID))

	if f.IsJSON() {
		return f.Success(SolveResult{ConfigPath: path, Config: sc, Operations: ops, Decoded: d, Bridge: bridge})
	}

	f.Printf("\n")
	f.Check("Solver configuration written to %s", path)
	steps := []string{
		"1. Review configuration: cat " + path,
		"2. Run geometric solver with --config " + filepath.ToSlash(path),
	}
	if opts.Visualize {
		steps = append(steps, "3. View results in the solver viewer")
	}
	f.NextSteps(steps...)
	return nil
}
