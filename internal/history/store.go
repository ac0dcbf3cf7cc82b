// Package history persists a record of completed runs in a local sqlite
// database, so "what did I copy where" survives the terminal session.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Tyrn/damastes/internal/migrations"
)

// Run statuses.
const (
	StatusDone    = "done"
	StatusFailed  = "failed"
	StatusAborted = "aborted"
)

// Run is one recorded invocation.
type Run struct {
	ID          int64
	Source      string
	Destination string
	Files       int64
	Bytes       int64
	Invalid     int64
	Suspicious  int64
	DryRun      bool
	Status      string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Store provides access to the run history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path and
// applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already-open database, used by tests.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a run record and fills in its ID.
func (s *Store) Add(r *Run) error {
	res, err := s.db.Exec(`
		INSERT INTO runs (source, destination, files, bytes, invalid, suspicious,
			dry_run, status, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.Destination, r.Files, r.Bytes, r.Invalid, r.Suspicious,
		boolToInt(r.DryRun), r.Status, r.StartedAt, r.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	r.ID, _ = res.LastInsertId()
	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, source, destination, files, bytes, invalid, suspicious,
			dry_run, status, started_at, finished_at
		FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var dryRun int
		if err := rows.Scan(&r.ID, &r.Source, &r.Destination, &r.Files, &r.Bytes,
			&r.Invalid, &r.Suspicious, &dryRun, &r.Status, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.DryRun = dryRun != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
