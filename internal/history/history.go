// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a log of conversion runs in a local SQLite
// database. Recording happens after a conversion finishes and never feeds
// back into one: a failed write degrades to a warning so the produced
// artifact is unaffected.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/docpress/pkg/types"
)

const dbFile = "history.db"

// DefaultStateDir is where the run log lives unless configured otherwise.
const DefaultStateDir = ".docpress"

// Store manages the run log database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the run log at stateDir/history.db, creating the
// schema if needed.
func Open(stateDir string) (*Store, error) {
	if stateDir == "" {
		stateDir = DefaultStateDir
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(stateDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating run log schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT,
		detail TEXT,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts a run into the log and returns its assigned ID.
func (s *Store) Record(run types.Run) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (kind, input, output, detail, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		string(run.Kind), run.Input, run.Output, run.Detail, string(run.Status),
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the most recent runs, newest first, up to limit.
func (s *Store) Recent(limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, kind, input, output, detail, status, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var r types.Run
		var kind, status, created string
		var output, detail sql.NullString
		if err := rows.Scan(&r.ID, &kind, &r.Input, &output, &detail, &status, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Kind = types.RunKind(kind)
		r.Status = types.RunStatus(status)
		r.Output = output.String
		r.Detail = detail.String
		if ts, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = ts
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
