// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history logs conversion runs to a SQLite database so a
// registration workflow can be audited after the fact: which landmark
// files were converted, with which formats and flags, and what was
// produced.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/landmark-converter/pkg/types"
)

const dbFile = "landmark-converter.db"

// Run is one recorded conversion.
type Run struct {
	ID           int64
	CreatedAt    time.Time
	InputPath    string
	InputFormat  string
	OutputFormat string
	KeepAll      bool
	NumPoints    int
	Outputs      []string
}

// Store manages the conversion-run SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the run database at cfg.Dir/landmark-converter.db,
// creating the schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			input_path TEXT NOT NULL,
			input_format TEXT NOT NULL,
			output_format TEXT NOT NULL,
			keep_all INTEGER NOT NULL,
			num_points INTEGER NOT NULL,
			outputs TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a run and returns its row id. A zero CreatedAt is filled
// with the current time.
func (s *Store) Record(run Run) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	outputs, err := json.Marshal(run.Outputs)
	if err != nil {
		return 0, fmt.Errorf("encoding outputs: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO runs (created_at, input_path, input_format, output_format, keep_all, num_points, outputs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.Format(time.RFC3339), run.InputPath, run.InputFormat,
		run.OutputFormat, run.KeepAll, run.NumPoints, string(outputs),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first. limit <= 0 uses the
// configured default.
func (s *Store) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, input_path, input_format, output_format, keep_all, num_points, outputs
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created, outputs string
		if err := rows.Scan(&r.ID, &created, &r.InputPath, &r.InputFormat,
			&r.OutputFormat, &r.KeepAll, &r.NumPoints, &outputs); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", created, err)
		}
		if err := json.Unmarshal([]byte(outputs), &r.Outputs); err != nil {
			return nil, fmt.Errorf("decoding outputs for run %d: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
