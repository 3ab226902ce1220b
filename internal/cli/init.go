package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/poly/internal/workspace"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := workspace.InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a poly workspace",
		Long: `Create the workspace directories, poly.yaml, the atlas and the bridge
manifest. Existing files are left untouched, so init is safe to rerun.`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Minimal, "minimal", false, "write an empty atlas instead of the built-in one")

	return cmd
}

func runInit(rootOpts *RootOptions, opts workspace.InitOptions, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f, st := e.out, e.out.Styles

	report, err := workspace.Init(e.cfg, opts)
	if err != nil {
		return fail(f, ErrCodeWriteFailed, "initialize workspace", "", err)
	}

	if f.IsJSON() {
		return f.Success(report)
	}

	f.Heading("🌀 Initializing Polyhedral Intelligence")
	for _, d := range report.Directories {
		if d.Created {
			f.Check("Created %s/", d.Path)
		} else {
			f.Printf("%s\n", st.Dim.Render("• "+d.Path+"/ already exists"))
		}
	}
	for _, file := range report.Files {
		if file.Created {
			f.Check("Created %s", file.Path)
		} else {
			f.Printf("%s\n", st.Dim.Render("• "+file.Path+" already exists"))
		}
	}

	f.Printf("\n%s\n", st.Success.Render("✨ Workspace initialized!"))
	f.NextSteps(
		"poly scan --families --principles",
		`poly glyph create "your concept"`,
		`poly mandala create --entry myproject --glyph "◯" --intent "exploration"`,
	)
	return nil
}
