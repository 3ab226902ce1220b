package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/roach88/poly/internal/atlas"
)

// InitOptions controls workspace initialization.
type InitOptions struct {
	// Minimal writes an atlas with empty family and principle lists instead
	// of the built-in one.
	Minimal bool
}

// PathStatus reports whether init created a path or found it in place.
type PathStatus struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

// InitReport lists what Init touched, in creation order.
type InitReport struct {
	Directories []PathStatus `json:"directories"`
	Files       []PathStatus `json:"files"`
}

// Init scaffolds a workspace: the entries, glyphs, bridges and outputs
// directories, then poly.yaml, the atlas and the bridge manifest when absent.
// Existing files are never overwritten, so Init is idempotent.
func Init(cfg *Config, opts InitOptions) (*InitReport, error) {
	report := &InitReport{}

	dirs := []string{
		cfg.Entries,
		filepath.Dir(cfg.Journal),
		filepath.Dir(cfg.Bridge),
		"outputs",
	}
	seen := make(map[string]bool)
	for _, d := range dirs {
		if d == "." || d == "" || seen[d] {
			continue
		}
		seen[d] = true

		created, err := ensureDir(cfg.Path(d))
		if err != nil {
			return nil, err
		}
		report.Directories = append(report.Directories, PathStatus{Path: d, Created: created})
	}

	configCreated, err := writeIfAbsent(filepath.Join(cfg.Root, ConfigFile), func(string) error {
		return WriteConfig(cfg.Root, *cfg)
	})
	if err != nil {
		return nil, err
	}
	report.Files = append(report.Files, PathStatus{Path: ConfigFile, Created: configCreated})

	atlasCreated, err := writeIfAbsent(cfg.Path(cfg.Atlas), func(path string) error {
		a := atlas.Minimal()
		if !opts.Minimal {
			var err error
			if a, err = atlas.Default(); err != nil {
				return err
			}
		}
		return atlas.Write(path, a)
	})
	if err != nil {
		return nil, err
	}
	report.Files = append(report.Files, PathStatus{Path: cfg.Atlas, Created: atlasCreated})

	bridgeCreated, err := writeIfAbsent(cfg.Path(cfg.Bridge), func(path string) error {
		return writeJSON(path, DefaultBridge())
	})
	if err != nil {
		return nil, err
	}
	report.Files = append(report.Files, PathStatus{Path: cfg.Bridge, Created: bridgeCreated})

	return report, nil
}

func ensureDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", path)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return false, fmt.Errorf("create %s: %w", path, err)
	}
	return true, nil
}

func writeIfAbsent(path string, write func(path string) error) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := write(path); err != nil {
		return false, err
	}
	return true, nil
}
