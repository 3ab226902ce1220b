package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/poly/internal/atlas"
	"github.com/roach88/poly/internal/glyph"
	"github.com/roach88/poly/internal/ids"
	"github.com/roach88/poly/internal/logging"
	"github.com/roach88/poly/internal/workspace"
)

// env bundles what a command needs: the formatter, the workspace config and
// the injectable clock, id generator and logger.
type env struct {
	opts *RootOptions
	out  *OutputFormatter
	log  *zap.Logger
	cfg  *workspace.Config
}

// newFormatter builds the formatter for cmd's writers.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	w := cmd.OutOrStdout()
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    w,
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
		Styles:    NewStyles(w, !opts.NoColor),
	}
}

// newEnv loads the workspace config. Failures are reported through the
// formatter and returned as ExitErrors.
func newEnv(opts *RootOptions, cmd *cobra.Command) (*env, error) {
	e := &env{
		opts: opts,
		out:  newFormatter(opts, cmd),
		log:  logging.OrNop(opts.Logger),
	}

	root := opts.Workspace
	if root == "" {
		root = "."
	}
	cfg, err := workspace.LoadConfig(root, opts.ConfigPath)
	if err != nil {
		return nil, failLoad(e.out, err, "")
	}
	e.cfg = cfg
	e.log.Debug("workspace config loaded", zap.String("root", root), zap.String("atlas", cfg.Atlas))
	return e, nil
}

// loadAtlas reads the configured atlas, reporting failures with the init hint.
func (e *env) loadAtlas() (*atlas.Atlas, error) {
	path := e.cfg.Path(e.cfg.Atlas)
	a, err := atlas.Load(path)
	if err != nil {
		return nil, failLoad(e.out, err, hintInit)
	}
	e.log.Debug("atlas loaded",
		zap.String("path", path),
		zap.Int("families", len(a.Families)),
		zap.Int("principles", len(a.Principles)))
	return a, nil
}

// resolver builds the glyph resolver from the configured keyword table, or
// the built-in one.
func (e *env) resolver() (*glyph.Resolver, error) {
	var (
		t   *glyph.Table
		err error
	)
	if e.cfg.KeywordTable != "" {
		t, err = glyph.LoadTable(e.cfg.Path(e.cfg.KeywordTable))
	} else {
		t, err = glyph.DefaultTable()
	}
	if err != nil {
		return nil, failLoad(e.out, err, "")
	}
	return glyph.NewResolver(t), nil
}

func (e *env) now() time.Time {
	if e.opts.Now != nil {
		return e.opts.Now()
	}
	return time.Now()
}

func (e *env) newID() string {
	return ids.Or(e.opts.IDs).Generate()
}
