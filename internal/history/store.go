// Package history records a row per successful scan in a local SQLite
// database, so repeated runs of the generator can be compared over time.
//
// History is strictly best-effort: manifest generation never depends on it,
// and callers are expected to downgrade recording failures to warnings.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Scan is one recorded generator run.
type Scan struct {
	ID            int64
	Timestamp     time.Time
	Root          string
	FileCount     int
	IncludeCount  int
	ManifestBytes int
	Duration      time.Duration
}

// Store manages the SQLite scan-history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the history database at dbPath and
// ensures the schema exists. The parent directory is created when missing.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so the remaining setup waits on locks instead of
	// failing when another run holds the database.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Add inserts one scan record and returns its row ID.
func (s *Store) Add(scan Scan) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO scans (timestamp, root, file_count, include_count, manifest_bytes, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		scan.Timestamp.UTC().Format(time.RFC3339Nano),
		scan.Root,
		scan.FileCount,
		scan.IncludeCount,
		scan.ManifestBytes,
		scan.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert scan into %s: %w", s.dbPath, err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit scans, newest first.
func (s *Store) Recent(limit int) ([]Scan, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, root, file_count, include_count, manifest_bytes, duration_ms
		 FROM scans ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query scans in %s: %w", s.dbPath, err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var sc Scan
		var ts string
		var durationMS int64
		if err := rows.Scan(&sc.ID, &ts, &sc.Root, &sc.FileCount, &sc.IncludeCount, &sc.ManifestBytes, &durationMS); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			sc.Timestamp = parsed
		}
		sc.Duration = time.Duration(durationMS) * time.Millisecond
		scans = append(scans, sc)
	}
	return scans, rows.Err()
}
