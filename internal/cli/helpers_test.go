package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/poly/internal/ids"
	"github.com/roach88/poly/internal/testutil"
)

// setupWorkspace creates a workspace with the sample atlas and a bridge
// manifest.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteAtlas(t, dir, testutil.SampleAtlas())
	testutil.WriteFile(t, dir, filepath.Join("bridges", "glyph-to-geometric.json"),
		`{"bridge_version": "1.0", "source": "glyph", "target": "geometric"}`)
	return dir
}

// testOptions returns deterministic root options for dir.
func testOptions(dir, format string) *RootOptions {
	return &RootOptions{
		Format:    format,
		Workspace: dir,
		NoColor:   true,
		Now:       testutil.FixedClock(testutil.Epoch).Now,
		IDs:       ids.NewFixedGenerator("run-0001", "run-0002", "run-0003"),
	}
}

// execute runs cmd with args and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// decodeResponse parses a JSON CLIResponse, decoding Data into data when
// non-nil.
func decodeResponse(t *testing.T, out string, data interface{}) CLIResponse {
	t.Helper()
	var raw struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw), out)
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data), string(raw.Data))
	}
	return raw.CLIResponse
}
