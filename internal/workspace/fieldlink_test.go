package workspace_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/poly/internal/atlas"
	"github.com/roach88/poly/internal/testutil"
	"github.com/roach88/poly/internal/workspace"
)

func TestSyncFieldlink_CreatesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fieldlink.json")

	res, err := workspace.SyncFieldlink(path, "https://example.org/atlas.git")
	require.NoError(t, err)

	assert.True(t, res.Created)
	assert.True(t, res.Added)
	assert.Equal(t, workspace.FieldlinkConfig{
		Version:     "1.0",
		AtlasSource: "local",
		Bridges:     []string{"https://example.org/atlas.git"},
		SyncEnabled: true,
	}, res.Config)
	assert.FileExists(t, path)
}

func TestSyncFieldlink_AppendsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fieldlink.json")

	_, err := workspace.SyncFieldlink(path, "a")
	require.NoError(t, err)

	res, err := workspace.SyncFieldlink(path, "b")
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.True(t, res.Added)
	assert.Equal(t, []string{"a", "b"}, res.Config.Bridges)

	res, err = workspace.SyncFieldlink(path, "a")
	require.NoError(t, err)
	assert.False(t, res.Added)
	assert.Equal(t, []string{"a", "b"}, res.Config.Bridges)
}

func TestSyncFieldlink_Malformed(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), ".fieldlink.json", "not json")

	_, err := workspace.SyncFieldlink(path, "a")
	require.Error(t, err)
	assert.True(t, atlas.IsMalformed(err))
}

func TestSyncFieldlink_PreservesUnknownKeys(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), ".fieldlink.json", `{
  "fieldlink_version": "1.0",
  "atlas_source": "local",
  "bridges": ["a"],
  "sync_enabled": true,
  "owner": "team-x",
  "mirrors": ["m1"]
}`)

	res, err := workspace.SyncFieldlink(path, "b")
	require.NoError(t, err)
	assert.True(t, res.Added)
	assert.Equal(t, []string{"a", "b"}, res.Config.Bridges)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "team-x", got["owner"])
	assert.Equal(t, []any{"m1"}, got["mirrors"])
	assert.Equal(t, []any{"a", "b"}, got["bridges"])
	assert.Equal(t, true, got["sync_enabled"])
}

func TestSyncFieldlink_ExistingFileNotRewrittenWhenListed(t *testing.T) {
	content := `{"bridges": ["a"], "owner": "team-x"}`
	path := testutil.WriteFile(t, t.TempDir(), ".fieldlink.json", content)

	res, err := workspace.SyncFieldlink(path, "a")
	require.NoError(t, err)
	assert.False(t, res.Added)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
