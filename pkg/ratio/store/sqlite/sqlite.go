// Package sqlite persists the fact ledger in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/symbolica/ratio/pkg/ratio/store"
)

// sqliteStore implements store.Store using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS facts (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT UNIQUE NOT NULL,
	expr TEXT NOT NULL,
	source TEXT,
	added_at TEXT
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveFact appends a fact record. An empty ID is filled in.
func (s *sqliteStore) SaveFact(ctx context.Context, f store.Fact) error {
	if f.ID == "" {
		f.ID = store.NewID()
	}
	if f.AddedAt.IsZero() {
		f.AddedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO facts (id, expr, source, added_at) VALUES (?, ?, ?, ?)`,
		f.ID, f.Expr, f.Source, f.AddedAt.Format(time.RFC3339Nano))
	return err
}

// ListFacts returns all fact records in insertion order.
func (s *sqliteStore) ListFacts(ctx context.Context) ([]store.Fact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, expr, source, added_at FROM facts ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Fact
	for rows.Next() {
		var f store.Fact
		var addedAt string
		if err := rows.Scan(&f.ID, &f.Expr, &f.Source, &addedAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, addedAt); err == nil {
			f.AddedAt = t
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
