// Package history stores a record of past analysis runs in a small
// sqlite database, the same pure-Go modernc.org/sqlite driver the
// teacher reaches for when it needs embedded, file-backed state.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded analysis pass: a document analyzed at a point in
// time, with how many diagnostics it produced.
type Run struct {
	ID              uuid.UUID
	FilePath        string
	StartedAt       time.Time
	DiagnosticCount int
}

// Store wraps a sqlite-backed table of past Runs.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history store %s: %w", path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id           TEXT PRIMARY KEY,
	file_path        TEXT NOT NULL,
	started_at       DATETIME NOT NULL,
	diagnostic_count INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records a completed analysis run, stamping it with a fresh
// UUID so rows can be keyed without relying on a serial id.
func (s *Store) Append(filePath string, startedAt time.Time, diagnosticCount int) (Run, error) {
	run := Run{
		ID:              uuid.New(),
		FilePath:        filePath,
		StartedAt:       startedAt,
		DiagnosticCount: diagnosticCount,
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, file_path, started_at, diagnostic_count) VALUES (?, ?, ?, ?)`,
		run.ID.String(), run.FilePath, run.StartedAt, run.DiagnosticCount,
	)
	if err != nil {
		return Run{}, fmt.Errorf("recording history run: %w", err)
	}
	return run, nil
}

// Recent returns the most recently recorded runs for filePath, newest
// first, capped at limit.
func (s *Store) Recent(filePath string, limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT run_id, file_path, started_at, diagnostic_count FROM runs
		 WHERE file_path = ? ORDER BY started_at DESC LIMIT ?`,
		filePath, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		var idStr string
		if err := rows.Scan(&idStr, &run.FilePath, &run.StartedAt, &run.DiagnosticCount); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		run.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parsing run id: %w", err)
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
