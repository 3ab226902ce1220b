package workspace

import (
	"path/filepath"
)

// SolverConfigFile is the file written into the solver output directory.
const SolverConfigFile = "solver_config.json"

// Optimizations lists the accepted solver optimization strategies.
var Optimizations = []string{"simd", "symmetry", "adaptive"}

// ValidOptimization reports whether s is a known strategy.
func ValidOptimization(s string) bool {
	for _, o := range Optimizations {
		if o == s {
			return true
		}
	}
	return false
}

// BridgeManifest describes the glyph-to-geometric bridge. Only its presence
// gates solving; the contents are informational.
type BridgeManifest struct {
	Version     string `json:"bridge_version"`
	Source      string `json:"source"`
	Target      string `json:"target"`
	Description string `json:"description,omitempty"`
}

// DefaultBridge is the manifest written by Init.
func DefaultBridge() BridgeManifest {
	return BridgeManifest{
		Version:     "1.0",
		Source:      "glyph",
		Target:      "geometric",
		Description: "Maps glyph symbols to geometric solver operations",
	}
}

// LoadBridge reads the bridge manifest. A missing file yields a
// KindMissingFile LoadError, which solve treats as a warning.
func LoadBridge(path string) (*BridgeManifest, error) {
	var m BridgeManifest
	if err := readJSON(path, "bridge manifest", &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SolverConfig is the hand-off document for the geometric solver.
type SolverConfig struct {
	RunID        string   `json:"run_id"`
	Glyph        string   `json:"glyph"`
	Operations   []string `json:"operations"`
	Optimization string   `json:"optimization"`
	OutputPath   string   `json:"output_path"`
	Visualize    bool     `json:"visualize"`
}

// WriteSolverConfig writes sc into dir, creating it, and returns the file path.
func WriteSolverConfig(dir string, sc SolverConfig) (string, error) {
	path := filepath.Join(dir, SolverConfigFile)
	if err := writeJSON(path, sc); err != nil {
		return "", err
	}
	return path, nil
}
