// Package storage provides SQLite-based persistence for scan history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for scan history.
type Store struct {
	db *sql.DB
}

// ScanRecord is one recorded inspection run.
type ScanRecord struct {
	ID         int64
	LevelPath  string
	Inspection string
	SpotCount  int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scans (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_path TEXT NOT NULL,
			inspection TEXT NOT NULL,
			spot_count INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scans_level_path ON scans(level_path);
		CREATE INDEX IF NOT EXISTS idx_scans_recent ON scans(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScan records one inspection run.
// Returns the ID of the inserted record.
func (s *Store) SaveScan(levelPath, inspection string, spotCount int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scans (level_path, inspection, spot_count) VALUES (?, ?, ?)",
		levelPath, inspection, spotCount,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save scan: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentScans retrieves the most recent N scan records across all levels.
func (s *Store) RecentScans(limit int) ([]ScanRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_path, inspection, spot_count, created_at
		 FROM scans
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scans: %w", err)
	}
	defer rows.Close()

	return collectScans(rows)
}

// ScansForLevel retrieves the most recent N scan records for one level file.
func (s *Store) ScansForLevel(levelPath string, limit int) ([]ScanRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_path, inspection, spot_count, created_at
		 FROM scans
		 WHERE level_path = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelPath, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scans: %w", err)
	}
	defer rows.Close()

	return collectScans(rows)
}

// ClearScans deletes all scan records for the given level file.
func (s *Store) ClearScans(levelPath string) error {
	_, err := s.db.Exec("DELETE FROM scans WHERE level_path = ?", levelPath)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scans: %w", err)
	}
	return nil
}

// collectScans reads scan records from an open row set.
func collectScans(rows *sql.Rows) ([]ScanRecord, error) {
	var records []ScanRecord
	for rows.Next() {
		var r ScanRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelPath, &r.Inspection, &r.SpotCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
