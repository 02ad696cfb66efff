// Package storage provides SQLite-based persistence for simulation
// session history. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionEntry records one simulation run: how far it got and how it ran.
type SessionEntry struct {
	ID             int64
	Generations    uint64
	PeakPopulation int
	GridWidth      int
	GridHeight     int
	DurationSecs   int
	CreatedAt      time.Time
}

// SessionStats contains aggregated statistics over all recorded sessions.
type SessionStats struct {
	Sessions       int
	MaxGenerations uint64
	AvgGenerations float64
	TotalSecs      int64
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			generations INTEGER NOT NULL,
			peak_population INTEGER NOT NULL,
			grid_width INTEGER NOT NULL,
			grid_height INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_generations ON sessions(generations DESC);
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

// SaveSession records a completed simulation run.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(e SessionEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (generations, peak_population, grid_width, grid_height, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Generations, e.PeakPopulation, e.GridWidth, e.GridHeight, e.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, generations, peak_population, grid_width, grid_height, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// LongestRun returns the session with the most generations, or nil if
// nothing has been recorded yet.
func (s *Store) LongestRun() (*SessionEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, generations, peak_population, grid_width, grid_height, duration_secs, created_at
		 FROM sessions
		 ORDER BY generations DESC
		 LIMIT 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query longest run: %w", err)
	}
	defer rows.Close()

	entries, err := scanSessions(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Stats returns aggregated statistics over all sessions.
func (s *Store) Stats() (SessionStats, error) {
	var stats SessionStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(generations), 0), COALESCE(AVG(generations), 0), COALESCE(SUM(duration_secs), 0)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.MaxGenerations, &stats.AvgGenerations, &stats.TotalSecs)
	if err != nil {
		return SessionStats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// scanSessions reads session rows into entries, handling the driver's
// datetime representation (time.Time or string).
func scanSessions(rows *sql.Rows) ([]SessionEntry, error) {
	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Generations, &e.PeakPopulation, &e.GridWidth, &e.GridHeight, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
