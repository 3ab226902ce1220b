// Package atlas loads and validates the Polyhedral Intelligence atlas.
//
// The atlas is a static table of 20 families and 12 principles read from a
// single JSON file (atlas_schema.json by default). It is loaded wholesale once
// per invocation and never written back, except by workspace initialization.
//
// Loading runs three gates in order:
//   - JSON syntax (MalformedInput on failure)
//   - the embedded CUE schema in schema.cue (InvalidAtlas on failure)
//   - uniqueness of ids and symbols, one code point per symbol (InvalidAtlas)
//
// A validated atlas therefore decodes every symbol to at most one record.
package atlas
