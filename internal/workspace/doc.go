// Package workspace manages the files a poly workspace is made of.
//
// A workspace is a directory holding poly.yaml (optional), the atlas, the
// bridge manifest, mandala entries, solver outputs, the glyph journal and the
// fieldlink config. Paths in Config are relative to the workspace root unless
// absolute.
//
// Load failures use the atlas package's LoadError taxonomy so callers handle
// missing and malformed files the same way everywhere.
package workspace
