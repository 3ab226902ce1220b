package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/poly/internal/atlas"
	"github.com/roach88/poly/internal/workspace"
)

// NewFieldlinkCommand creates the fieldlink command group.
func NewFieldlinkCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fieldlink",
		Short: "Manage cross-repository atlas links",
	}

	cmd.AddCommand(newFieldlinkSyncCommand(rootOpts))

	return cmd
}

func newFieldlinkSyncCommand(rootOpts *RootOptions) *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "sync --remote <url>",
		Short: "Record a remote in the fieldlink config",
		Long: `Record a remote repository in .fieldlink.json.

The config is created with defaults when absent. Nothing is fetched; the
remote is only recorded.`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFieldlinkSync(rootOpts, remote, cmd)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "remote repository URL (required)")

	return cmd
}

func runFieldlinkSync(rootOpts *RootOptions, remote string, cmd *cobra.Command) error {
	e, err := newEnv(rootOpts, cmd)
	if err != nil {
		return err
	}
	f, st := e.out, e.out.Styles

	if remote == "" {
		return invalidArgument(f, "--remote is required")
	}

	res, err := workspace.SyncFieldlink(e.cfg.Path(e.cfg.Fieldlink), remote)
	if err != nil {
		if atlas.KindOf(err) != "" {
			return failLoad(f, err, "")
		}
		return fail(f, ErrCodeWriteFailed, "write fieldlink config", "", err)
	}
	e.log.Debug("fieldlink synced", zap.Bool("created", res.Created), zap.Bool("added", res.Added))

	if f.IsJSON() {
		return f.Success(res)
	}

	f.Heading("🔗 Fieldlink Sync")
	f.Printf("Remote: %s\n\n", remote)
	if res.Created {
		f.Printf("%s  No %s found\n", st.Warning.Render("⚠"), e.cfg.Fieldlink)
		f.Printf("  Creating default configuration...\n")
		f.Check("Created %s", e.cfg.Fieldlink)
	} else if res.Added {
		f.Check("Added remote to %s", e.cfg.Fieldlink)
	} else {
		f.Printf("%s\n", st.Dim.Render("Remote already linked"))
	}
	f.Printf("\n%s\n", st.Info.Render("🌊 Syncing field resonance..."))
	f.Printf("  %s\n", st.Dim.Render("Remote recorded locally; no network transfer"))
	f.Check("Sync complete")
	return nil
}
