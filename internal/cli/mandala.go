package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/poly/internal/workspace"
)

// MandalaOptions holds flags for mandala create.
type MandalaOptions struct {
	Entry  string
	Glyph  string
	Intent string
}

// NewMandalaCommand creates the mandala command group.
func NewMandalaCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandala",
		Short: "Create and manage mandala entries",
	}

	cmd.AddCommand(newMandalaCreateCommand(rootOpts))

	return cmd
}

func newMandalaCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MandalaOptions{}

	cmd := &cobra.Command{
		Use:   "create --entry <name> --glyph <glyph> --intent <text>",
		Short: "Create a mandala entry",
		Long: `Create entries/<name>/<name>.md and <name>.json for a seed glyph.

Existing files for the same entry are replaced.`,
		Example:       `  poly mandala create --entry fractal_coastline --glyph "〰◇" --intent "Map the coastline"`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMandalaCreate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Entry, "entry", "", "entry name (required)")
	cmd.Flags().StringVar(&opts.Glyph, "glyph", "", "seed glyph (required)")
	cmd.Flags().StringVar(&opts.Intent, "intent", "", "design intent (required)")

	return cmd
}

func runMandalaCreate(rootOpts *RootOptions, opts *MandalaOptions, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f := e.out

	if opts.Entry == "" || opts.Glyph == "" || opts.Intent == "" {
		return invalidArgument(f, "--entry, --glyph and --intent are required")
	}
	if err := workspace.ValidateEntryName(opts.Entry); err != nil {
		return invalidArgument(f, "%v", err)
	}

	files, err := workspace.CreateEntry(e.cfg, opts.Entry, opts.Glyph, opts.Intent, e.now())
	if err != nil {
		return fail(f, ErrCodeWriteFailed, "create mandala entry", "", err)
	}
	e.log.Debug("mandala entry created", zap.String("dir", files.Dir))

	if f.IsJSON() {
		return f.Success(files)
	}

	f.Heading("🌀 Creating Mandala Entry")
	f.Check("Entry created at %s%c", files.Dir, filepath.Separator)
	f.Printf("  📄 %s\n", files.Markdown)
	f.Printf("  📊 %s\n", files.JSON)
	f.NextSteps(
		fmt.Sprintf("poly glyph decode %q", opts.Glyph),
		fmt.Sprintf("poly solve --glyph %q --output %s", opts.Glyph, filepath.Join(files.Dir, "computation")),
	)
	return nil
}
