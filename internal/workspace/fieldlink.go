package workspace

import (
	"encoding/json"

	"github.com/roach88/poly/internal/atlas"
)

// FieldlinkConfig is the cross-repository link file.
type FieldlinkConfig struct {
	Version     string   `json:"fieldlink_version"`
	AtlasSource string   `json:"atlas_source"`
	Bridges     []string `json:"bridges"`
	SyncEnabled bool     `json:"sync_enabled"`
}

// FieldlinkResult reports what SyncFieldlink changed.
type FieldlinkResult struct {
	Config  FieldlinkConfig `json:"config"`
	Created bool            `json:"created"`
	Added   bool            `json:"added"`
}

// SyncFieldlink records remote in the fieldlink config at path.
//
// A missing file is created with defaults and remote as its only bridge. An
// existing file only has remote appended to its bridges if not yet listed;
// every other key is written back untouched.
func SyncFieldlink(path, remote string) (*FieldlinkResult, error) {
	var raw map[string]json.RawMessage
	err := readJSON(path, "fieldlink config", &raw)
	switch {
	case atlas.IsMissingFile(err):
		cfg := FieldlinkConfig{
			Version:     "1.0",
			AtlasSource: "local",
			Bridges:     []string{remote},
			SyncEnabled: true,
		}
		if err := writeJSON(path, cfg); err != nil {
			return nil, err
		}
		return &FieldlinkResult{Config: cfg, Created: true, Added: true}, nil
	case err != nil:
		return nil, err
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}

	var bridges []string
	if b, ok := raw["bridges"]; ok {
		if err := json.Unmarshal(b, &bridges); err != nil {
			return nil, atlas.NewMalformed(path, "fieldlink config", err)
		}
	}

	cfg := knownFieldlink(raw)
	cfg.Bridges = bridges
	for _, b := range bridges {
		if b == remote {
			return &FieldlinkResult{Config: cfg}, nil
		}
	}

	cfg.Bridges = append(bridges, remote)
	encoded, err := json.Marshal(cfg.Bridges)
	if err != nil {
		return nil, err
	}
	raw["bridges"] = encoded
	if err := writeJSON(path, raw); err != nil {
		return nil, err
	}
	return &FieldlinkResult{Config: cfg, Added: true}, nil
}

// knownFieldlink picks the recognised keys out of raw. Keys of an unexpected
// type are left zero.
func knownFieldlink(raw map[string]json.RawMessage) FieldlinkConfig {
	var cfg FieldlinkConfig
	_ = json.Unmarshal(raw["fieldlink_version"], &cfg.Version)
	_ = json.Unmarshal(raw["atlas_source"], &cfg.AtlasSource)
	_ = json.Unmarshal(raw["sync_enabled"], &cfg.SyncEnabled)
	return cfg
}
