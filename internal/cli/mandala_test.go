package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/poly/internal/workspace"
)

func TestMandalaCreate(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, NewMandalaCommand(testOptions(dir, "text")),
		"create", "--entry", "fractal_coastline", "--glyph", "〰◇", "--intent", "Map the coastline")
	require.NoError(t, err)

	entryDir := filepath.Join(dir, "entries", "fractal_coastline")
	assert.Contains(t, out, "✓ Entry created at "+entryDir)
	assert.Contains(t, out, `poly glyph decode "〰◇"`)

	md, err := os.ReadFile(filepath.Join(entryDir, "fractal_coastline.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Fractal Coastline")

	data, err := os.ReadFile(filepath.Join(entryDir, "fractal_coastline.json"))
	require.NoError(t, err)
	var entry workspace.Entry
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "2025-03-14T09:26:53Z", entry.Created)
	assert.Equal(t, "seed", entry.Status)
}

func TestMandalaCreate_JSON(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, NewMandalaCommand(testOptions(dir, "json")),
		"create", "--entry", "swarm", "--glyph", "⬡", "--intent", "Collective repair")
	require.NoError(t, err)

	var files workspace.EntryFiles
	resp := decodeResponse(t, out, &files)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "swarm", files.Entry.EntryID)
	assert.Equal(t, filepath.Join(dir, "entries", "swarm", "swarm.json"), files.JSON)
}

func TestMandalaCreate_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, NewMandalaCommand(testOptions(dir, "text")),
		"create", "--entry", "../escape", "--glyph", "⬡", "--intent", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeInvalidArgument)
	assert.Contains(t, out, "path separators")
	assert.NoDirExists(t, filepath.Join(dir, "escape"))
}

func TestMandalaCreate_RequiresAllFlags(t *testing.T) {
	_, err := execute(t, NewMandalaCommand(testOptions(t.TempDir(), "text")),
		"create", "--entry", "x", "--glyph", "⬡")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeInvalidArgument)
}
