// Package db persists completed benchmark runs so later invocations can be
// compared against earlier ones.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"cipherbench/internal/benchmark"
)

// Store defines the methods for run persistence.
type Store interface {
	Close() error
	SaveRun(run *benchmark.Run) (int64, error)
	LoadRun(id int64) (*benchmark.Run, error)
	LoadLatest(n int) ([]*benchmark.Run, error)
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the history database, creating the file and schema
// if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			file TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			operation TEXT NOT NULL,
			avg_time_s REAL NOT NULL,
			throughput_mib_s REAL NOT NULL,
			input_bytes INTEGER NOT NULL
		);`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a completed run and its rows in insertion order, returning
// the new run ID.
func (s *SQLiteStore) SaveRun(run *benchmark.Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (created_at) VALUES (?)`, run.Timestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	for _, r := range run.Results {
		_, err := tx.Exec(
			`INSERT INTO results (run_id, file, algorithm, operation, avg_time_s, throughput_mib_s, input_bytes)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, r.File, r.Algorithm, string(r.Operation), r.AvgTimeSeconds, r.ThroughputMiBps, r.InputBytes,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert result row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// LoadRun loads one run with its rows in their original order.
func (s *SQLiteStore) LoadRun(id int64) (*benchmark.Run, error) {
	run := &benchmark.Run{ID: id}

	var created time.Time
	err := s.db.QueryRow(`SELECT created_at FROM runs WHERE id = ?`, id).Scan(&created)
	if err != nil {
		return nil, fmt.Errorf("failed to load run %d: %w", id, err)
	}
	run.Timestamp = created

	rows, err := s.db.Query(
		`SELECT file, algorithm, operation, avg_time_s, throughput_mib_s, input_bytes
		 FROM results WHERE run_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load results for run %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var r benchmark.Result
		var op string
		if err := rows.Scan(&r.File, &r.Algorithm, &op, &r.AvgTimeSeconds, &r.ThroughputMiBps, &r.InputBytes); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		r.Operation = benchmark.Operation(op)
		run.Results = append(run.Results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return run, nil
}

// LoadLatest returns up to n most recent runs, newest first.
func (s *SQLiteStore) LoadLatest(n int) ([]*benchmark.Run, error) {
	rows, err := s.db.Query(`SELECT id FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	runs := make([]*benchmark.Run, 0, len(ids))
	for _, id := range ids {
		run, err := s.LoadRun(id)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}
