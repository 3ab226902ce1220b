// Package journal provides SQLite-backed storage for created glyphs.
//
// The journal is an append-only log written by `poly glyph create --save` and
// read by `poly glyph history`. Rows are ordered by seq, a logical counter
// assigned on insert (max+1), never by wall-clock time; created_at is kept
// for display only.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//
// Keywords and family ids are stored as JSON arrays.
package journal
