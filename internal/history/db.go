// Package history records completed explanation runs in a per-session
// SQLite database alongside the explanation output.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one completed explanation.
type Run struct {
	ID         string
	Kind       string
	Target     string
	Model      string
	OutputPath string
	Duration   time.Duration
	CreatedAt  time.Time
}

// DB wraps the SQLite run-history database.
type DB struct {
	conn *sql.DB
}

// Path returns the history database location for an output directory.
func Path(outputDir string) string {
	return filepath.Join(outputDir, "history.db")
}

// Open opens (or creates) the history database at the given path.
// WAL mode is enabled for concurrent reads.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	_, err = conn.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			target TEXT NOT NULL,
			model TEXT NOT NULL,
			output_path TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Record inserts a completed run. A missing ID or creation time is filled
// in.
func (d *DB) Record(run Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := d.conn.Exec(`
		INSERT INTO runs (id, kind, target, model, output_path, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Kind, run.Target, run.Model, run.OutputPath, run.Duration.Milliseconds(), formatTime(run.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (d *DB) Recent(limit int) ([]Run, error) {
	rows, err := d.conn.Query(`
		SELECT id, kind, target, model, output_path, duration_ms, created_at
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var durationMS int64
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Kind, &run.Target, &run.Model, &run.OutputPath, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := parseTime(createdAt); err == nil {
			run.CreatedAt = t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// formatTime formats a time.Time for SQLite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a time string from SQLite.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.conn.Close()
}
