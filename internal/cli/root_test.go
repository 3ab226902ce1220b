package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand("1.2.3")
	require.NotNil(t, cmd)
	assert.Equal(t, "poly", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)
	assert.Contains(t, cmd.Long, "20 families and 12 principles")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand("test")
	commands := [][]string{
		{"glyph", "create"},
		{"glyph", "decode"},
		{"glyph", "evolve"},
		{"glyph", "history"},
		{"scan"},
		{"solve"},
		{"mandala", "create"},
		{"fieldlink", "sync"},
		{"init"},
		{"quickref"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand("test")

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	workspaceFlag := cmd.PersistentFlags().Lookup("workspace")
	require.NotNil(t, workspaceFlag)
	assert.Equal(t, "C", workspaceFlag.Shorthand)
	assert.Equal(t, ".", workspaceFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("no-color"))
}

func TestGlyphCreateFlags(t *testing.T) {
	cmd := NewRootCommand("test")
	createCmd, _, err := cmd.Find([]string{"glyph", "create"})
	require.NoError(t, err)

	scanFlag := createCmd.Flags().Lookup("scan")
	require.NotNil(t, scanFlag)
	assert.Equal(t, "true", scanFlag.DefValue)
	require.NotNil(t, createCmd.Flags().Lookup("no-scan"))
	require.NotNil(t, createCmd.Flags().Lookup("enhance"))
	require.NotNil(t, createCmd.Flags().Lookup("save"))
}

func TestSolveCommandFlags(t *testing.T) {
	cmd := NewRootCommand("test")
	solveCmd, _, err := cmd.Find([]string{"solve"})
	require.NoError(t, err)

	outputFlag := solveCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	// Defaults come from poly.yaml, so the flag default is empty
	assert.Equal(t, "", outputFlag.DefValue)
}

func TestExecute_InvalidFormat(t *testing.T) {
	cmd := NewRootCommand("test")
	errBuf := &bytes.Buffer{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{"--format", "yaml", "scan", "-C", t.TempDir()})

	code := Execute(cmd)
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errBuf.String(), `invalid format "yaml"`)
}

func TestExecute_UnknownFlagIsUsageError(t *testing.T) {
	cmd := NewRootCommand("test")
	errBuf := &bytes.Buffer{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{"scan", "--bogus"})

	code := Execute(cmd)
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errBuf.String(), "E010")
	assert.Contains(t, errBuf.String(), "bogus")
}

func TestExecute_WrongArgCount(t *testing.T) {
	cmd := NewRootCommand("test")
	errBuf := &bytes.Buffer{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{"glyph", "decode"})

	code := Execute(cmd)
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errBuf.String(), "accepts 1 arg(s)")
}

func TestExecute_ReportedErrorPrintedOnce(t *testing.T) {
	dir := t.TempDir() // no atlas

	cmd := NewRootCommand("test")
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{"-C", dir, "--no-color", "scan"})

	code := Execute(cmd)
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, out.String(), "Error [E005]")
	assert.Contains(t, out.String(), "Run poly init to create one")
	assert.NotContains(t, errBuf.String(), "E005", "already reported on stdout")
}

func TestExecute_Success(t *testing.T) {
	dir := setupWorkspace(t)

	cmd := NewRootCommand("test")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-C", dir, "glyph", "decode", "〰"})

	assert.Equal(t, ExitSuccess, Execute(cmd))
	assert.Contains(t, out.String(), "F02: Flow")
}
