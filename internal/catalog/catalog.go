// Package catalog records analysis runs in a SQLite database.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// Run is one recorded analysis of a RIS file.
type Run struct {
	ID         int64     `json:"id"`
	SourceFile string    `json:"source_file"`
	OutputFile string    `json:"output_file"`
	Total      int       `json:"total"`
	Duplicates int       `json:"duplicates"`
	Unique     int       `json:"unique"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// Open opens or creates the catalog database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the catalog schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_file TEXT NOT NULL,
			output_file TEXT NOT NULL,
			total INTEGER NOT NULL,
			duplicates INTEGER NOT NULL,
			unique_count INTEGER NOT NULL,
			analyzed_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source_file);
	`

	_, err := db.Exec(schema)
	return err
}

// Record inserts a run and returns its assigned ID.
func (d *DB) Record(run Run) (int64, error) {
	if run.AnalyzedAt.IsZero() {
		run.AnalyzedAt = time.Now()
	}

	res, err := d.db.Exec(`
		INSERT INTO runs (source_file, output_file, total, duplicates, unique_count, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.SourceFile, run.OutputFile, run.Total, run.Duplicates, run.Unique,
		run.AnalyzedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting run id: %w", err)
	}
	return id, nil
}

// Recent returns the most recent runs, newest first, up to limit.
func (d *DB) Recent(limit int) ([]Run, error) {
	rows, err := d.db.Query(`
		SELECT id, source_file, output_file, total, duplicates, unique_count, analyzed_at
		FROM runs
		ORDER BY analyzed_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var analyzedAt int64
		if err := rows.Scan(&run.ID, &run.SourceFile, &run.OutputFile,
			&run.Total, &run.Duplicates, &run.Unique, &analyzedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.AnalyzedAt = time.Unix(analyzedAt, 0)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// BySource returns all runs recorded for a given source file, newest first.
func (d *DB) BySource(sourceFile string) ([]Run, error) {
	rows, err := d.db.Query(`
		SELECT id, source_file, output_file, total, duplicates, unique_count, analyzed_at
		FROM runs
		WHERE source_file = ?
		ORDER BY analyzed_at DESC, id DESC`, sourceFile)
	if err != nil {
		return nil, fmt.Errorf("querying runs for %s: %w", sourceFile, err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var analyzedAt int64
		if err := rows.Scan(&run.ID, &run.SourceFile, &run.OutputFile,
			&run.Total, &run.Duplicates, &run.Unique, &analyzedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.AnalyzedAt = time.Unix(analyzedAt, 0)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
