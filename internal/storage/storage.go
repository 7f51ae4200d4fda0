// Package storage persists run history in a local SQLite database.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"linepipe/internal/stats"
)

// Run is one recorded pipeline run.
type Run struct {
	ID        string
	Input     string
	Physical  int
	Blank     int
	Accepted  int
	Rejected  int
	Words     int
	CreatedAt time.Time
}

// DB wraps the run-history database.
type DB struct {
	conn *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()

		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()

		return nil, err
	}

	return db, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  input TEXT NOT NULL,
  physical INTEGER NOT NULL,
  blank INTEGER NOT NULL,
  accepted INTEGER NOT NULL,
  rejected INTEGER NOT NULL,
  words INTEGER NOT NULL,
  createdAt TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_createdAt ON runs(createdAt);
`

	_, err := d.conn.Exec(schema)

	return err
}

// RecordRun inserts a run and returns its generated id.
func (d *DB) RecordRun(input string, s stats.LineStats) (string, error) {
	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	_, err := d.conn.Exec(
		`INSERT INTO runs (id, input, physical, blank, accepted, rejected, words, createdAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input, s.Physical, s.Blank, s.Accepted, s.Rejected, s.Words, createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}

	return id, nil
}

// ListRuns returns up to limit runs, most recent first.
func (d *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := d.conn.Query(
		`SELECT id, input, physical, blank, accepted, rejected, words, createdAt
		 FROM runs ORDER BY createdAt DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run

	for rows.Next() {
		var (
			r  Run
			ts string
		)

		if err := rows.Scan(&r.ID, &r.Input, &r.Physical, &r.Blank, &r.Accepted, &r.Rejected, &r.Words, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		if t, perr := time.Parse(time.RFC3339, ts); perr == nil {
			r.CreatedAt = t
		}

		runs = append(runs, r)
	}

	return runs, rows.Err()
}
