package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/poly/internal/atlas"
)

// ConfigFile is the workspace config file name.
const ConfigFile = "poly.yaml"

// Config holds workspace paths and defaults.
type Config struct {
	Atlas        string `yaml:"atlas"`
	Entries      string `yaml:"entries"`
	Bridge       string `yaml:"bridge"`
	Output       string `yaml:"output"`
	Optimization string `yaml:"optimization"`
	Journal      string `yaml:"journal"`
	Fieldlink    string `yaml:"fieldlink"`

	// KeywordTable optionally replaces the built-in keyword table.
	KeywordTable string `yaml:"keyword_table,omitempty"`

	// Root is the workspace directory; not serialized.
	Root string `yaml:"-"`
}

// DefaultConfig returns the defaults used when poly.yaml is absent or
// leaves a field empty.
func DefaultConfig(root string) Config {
	return Config{
		Atlas:        atlas.DefaultPath,
		Entries:      "entries",
		Bridge:       filepath.Join("bridges", "glyph-to-geometric.json"),
		Output:       "output/",
		Optimization: "simd",
		Journal:      filepath.Join("glyphs", "journal.db"),
		Fieldlink:    ".fieldlink.json",
		Root:         root,
	}
}

// LoadConfig reads the workspace config.
//
// With path empty, root/poly.yaml is read if present and defaults are used
// otherwise. An explicit path must exist.
func LoadConfig(root, path string) (*Config, error) {
	cfg := DefaultConfig(root)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, ConfigFile)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return nil, atlas.NewMissingFile(path, "config")
		}
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, atlas.NewMalformed(path, "config", err)
	}
	cfg.merge(file)
	return &cfg, nil
}

// merge overrides defaults with the non-empty fields of other.
func (c *Config) merge(other Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Atlas, other.Atlas)
	set(&c.Entries, other.Entries)
	set(&c.Bridge, other.Bridge)
	set(&c.Output, other.Output)
	set(&c.Optimization, other.Optimization)
	set(&c.Journal, other.Journal)
	set(&c.Fieldlink, other.Fieldlink)
	set(&c.KeywordTable, other.KeywordTable)
}

// Path resolves p against the workspace root.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Root == "" {
		return p
	}
	return filepath.Join(c.Root, p)
}

// WriteConfig writes cfg as YAML to root/poly.yaml.
func WriteConfig(root string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# poly workspace configuration\n")
	if err := os.WriteFile(filepath.Join(root, ConfigFile), append(header, data...), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
