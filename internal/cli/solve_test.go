package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/poly/internal/testutil"
	"github.com/roach88/poly/internal/workspace"
)

func TestSolve_WritesConfig(t *testing.T) {
	dir := setupWorkspace(t)

	out, err := execute(t, NewSolveCommand(testOptions(dir, "text")),
		"--glyph", "〰⬡⚙", "--output", "runs/a", "--optimize", "symmetry", "--visualize")
	require.NoError(t, err)

	assert.Contains(t, out, "Glyph: 〰⬡⚙")
	assert.Contains(t, out, "Optimization: symmetry")
	assert.Contains(t, out, "〰 Flow Fluid dynamics")
	assert.Contains(t, out, "⬡ Network Graphs and connectivity")
	assert.Contains(t, out, "✓ Flow field detected → Navier-Stokes solver")
	assert.Contains(t, out, "✓ Network detected → Graph Laplacian")
	assert.Contains(t, out, "✓ Engineering detected → FEA solver")
	assert.Contains(t, out, "Solver configuration written to")
	assert.Contains(t, out, "3. View results")

	data, err := os.ReadFile(filepath.Join(dir, "runs", "a", "solver_config.json"))
	require.NoError(t, err)

	var sc workspace.SolverConfig
	require.NoError(t, json.Unmarshal(data, &sc))
	assert.Equal(t, workspace.SolverConfig{
		RunID:        "run-0001",
		Glyph:        "〰⬡⚙",
		Operations:   []string{"flow_solver", "network_solver", "stress_solver"},
		Optimization: "symmetry",
		OutputPath:   "runs/a",
		Visualize:    true,
	}, sc)
}

func TestSolve_DefaultsFromConfig(t *testing.T) {
	dir := setupWorkspace(t)
	testutil.WriteFile(t, dir, workspace.ConfigFile, "output: build/solver\noptimization: adaptive\n")

	out, err := execute(t, NewSolveCommand(testOptions(dir, "json")), "--glyph", "⬡")
	require.NoError(t, err)

	var res SolveResult
	resp := decodeResponse(t, out, &res)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "adaptive", res.Config.Optimization)
	assert.Equal(t, []string{"network_solver"}, res.Config.Operations)
	assert.Equal(t, filepath.Join(dir, "build", "solver", "solver_config.json"), res.ConfigPath)
	require.NotNil(t, res.Bridge)
	assert.Equal(t, "geometric", res.Bridge.Target)
	require.Len(t, res.Decoded.Families, 1)
	assert.Equal(t, "F12", res.Decoded.Families[0].ID)
	assert.Empty(t, res.Decoded.Principles)
}

func TestSolve_MissingBridgeIsWarning(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteAtlas(t, dir, testutil.SampleAtlas())

	out, err := execute(t, NewSolveCommand(testOptions(dir, "text")), "--glyph", "〰")
	require.NoError(t, err, "missing bridge aborts without failing")

	assert.Contains(t, out, "⚠  Bridge manifest not found")
	assert.Contains(t, out, "Looking for: "+filepath.Join("bridges", "glyph-to-geometric.json"))
	assert.NoFileExists(t, filepath.Join(dir, "output", "solver_config.json"))
}

func TestSolve_NoOperationsIsWarning(t *testing.T) {
	dir := setupWorkspace(t)

	out, err := execute(t, NewSolveCommand(testOptions(dir, "json")), "--glyph", "∿↺")
	require.NoError(t, err)

	resp := decodeResponse(t, out, nil)
	assert.Equal(t, "warning", resp.Status)
	require.NotNil(t, resp.Warning)
	assert.Equal(t, "No geometric operations mapped", resp.Warning.Message)
	assert.NoFileExists(t, filepath.Join(dir, "output", "solver_config.json"))
}

func TestSolve_InvalidOptimization(t *testing.T) {
	dir := setupWorkspace(t)

	out, err := execute(t, NewSolveCommand(testOptions(dir, "text")), "--glyph", "〰", "--optimize", "gpu")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, `unknown optimization "gpu"`)
}

func TestSolve_MissingAtlasAfterBridge(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, filepath.Join("bridges", "glyph-to-geometric.json"), `{}`)

	_, err := execute(t, NewSolveCommand(testOptions(dir, "text")), "--glyph", "〰")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeNotFound)
}

func TestSolve_RequiresGlyph(t *testing.T) {
	_, err := execute(t, NewSolveCommand(testOptions(t.TempDir(), "text")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeInvalidArgument)
}
