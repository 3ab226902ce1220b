package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/poly/internal/testutil"
	"github.com/roach88/poly/internal/workspace"
)

func TestFieldlinkSync_CreatesThenAppends(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, NewFieldlinkCommand(testOptions(dir, "text")), "sync", "--remote", "git@example.org:atlas.git")
	require.NoError(t, err)
	assert.Contains(t, out, "Remote: git@example.org:atlas.git")
	assert.Contains(t, out, "No .fieldlink.json found")
	assert.Contains(t, out, "✓ Created .fieldlink.json")
	assert.Contains(t, out, "✓ Sync complete")
	assert.FileExists(t, filepath.Join(dir, ".fieldlink.json"))

	out, err = execute(t, NewFieldlinkCommand(testOptions(dir, "json")), "sync", "--remote", "https://example.org/b.git")
	require.NoError(t, err)

	var res workspace.FieldlinkResult
	decodeResponse(t, out, &res)
	assert.False(t, res.Created)
	assert.True(t, res.Added)
	assert.Equal(t, []string{"git@example.org:atlas.git", "https://example.org/b.git"}, res.Config.Bridges)
}

func TestFieldlinkSync_AlreadyLinked(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".fieldlink.json",
		`{"fieldlink_version": "1.0", "atlas_source": "local", "bridges": ["a"], "sync_enabled": true}`)

	out, err := execute(t, NewFieldlinkCommand(testOptions(dir, "text")), "sync", "--remote", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "Remote already linked")
}

func TestFieldlinkSync_Malformed(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".fieldlink.json", "[")

	_, err := execute(t, NewFieldlinkCommand(testOptions(dir, "text")), "sync", "--remote", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeMalformed)
}

func TestFieldlinkSync_RequiresRemote(t *testing.T) {
	_, err := execute(t, NewFieldlinkCommand(testOptions(t.TempDir(), "text")), "sync")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeInvalidArgument)
}
