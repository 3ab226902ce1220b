package atlas

import (
	_ "embed"
	"fmt"
)

//go:embed default_atlas.json
var defaultAtlas []byte

// Default returns the built-in atlas of 20 families and 12 principles.
// Each call returns a fresh copy.
func Default() (*Atlas, error) {
	a, err := Parse(defaultAtlas, "default_atlas.json")
	if err != nil {
		return nil, fmt.Errorf("built-in atlas: %w", err)
	}
	return a, nil
}
