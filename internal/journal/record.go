package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Record is one journaled glyph.
type Record struct {
	ID        string    `json:"id"`
	Seq       int64     `json:"seq"`
	Concept   string    `json:"concept"`
	Glyph     string    `json:"glyph"`
	Keywords  []string  `json:"keywords"`
	Enhanced  bool      `json:"enhanced"`
	Families  []string  `json:"families"`
	CreatedAt time.Time `json:"created_at"`
}

// Write appends rec and returns its assigned seq.
// rec.Seq is ignored; the store assigns max(seq)+1 inside the insert.
func (s *Store) Write(ctx context.Context, rec Record) (int64, error) {
	if rec.ID == "" {
		return 0, fmt.Errorf("write glyph: id is required")
	}

	keywords, err := marshalList(rec.Keywords)
	if err != nil {
		return 0, fmt.Errorf("write glyph: %w", err)
	}
	families, err := marshalList(rec.Families)
	if err != nil {
		return 0, fmt.Errorf("write glyph: %w", err)
	}

	var seq int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO glyphs (id, seq, concept, glyph, keywords, enhanced, families, created_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM glyphs), ?, ?, ?, ?, ?, ?)
		RETURNING seq
	`,
		rec.ID,
		rec.Concept,
		rec.Glyph,
		keywords,
		rec.Enhanced,
		families,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("write glyph: %w", err)
	}

	return seq, nil
}

// List returns up to limit records, newest (highest seq) first.
// limit <= 0 returns every record. Returns an empty slice, not nil, when the
// journal is empty.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, seq, concept, glyph, keywords, enhanced, families, created_at
		FROM glyphs
		ORDER BY seq DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query glyphs: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate glyphs: %w", err)
	}

	return records, nil
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		rec       Record
		keywords  string
		families  string
		createdAt string
	)
	if err := rows.Scan(&rec.ID, &rec.Seq, &rec.Concept, &rec.Glyph, &keywords, &rec.Enhanced, &families, &createdAt); err != nil {
		return Record{}, fmt.Errorf("scan glyph: %w", err)
	}

	if err := json.Unmarshal([]byte(keywords), &rec.Keywords); err != nil {
		return Record{}, fmt.Errorf("decode keywords for %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(families), &rec.Families); err != nil {
		return Record{}, fmt.Errorf("decode families for %s: %w", rec.ID, err)
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("decode created_at for %s: %w", rec.ID, err)
	}
	rec.CreatedAt = t

	return rec, nil
}

// marshalList encodes a string slice as a JSON array; nil becomes [].
func marshalList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
