// Package storage provides SQLite-based persistence for finished rounds.
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

const timeLayout = "2006-01-02 15:04:05"

// Stored winner values. The human always plays the left paddle.
const (
	winnerHuman = "left"
	winnerCPU   = "right"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Round is a finished round to be stored.
type Round struct {
	HumanWon   bool
	LeftScore  int
	RightScore int
	Ticks      int
	Duration   time.Duration
	FinishedAt time.Time
}

// RoundEntry is one stored round.
type RoundEntry struct {
	ID         int64
	SessionID  string
	HumanWon   bool
	LeftScore  int
	RightScore int
	Ticks      int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Tally counts rounds from the human player's point of view.
type Tally struct {
	Wins   int
	Losses int
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			winner TEXT NOT NULL,
			left_score INTEGER NOT NULL,
			right_score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id);
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

// SaveRound records a finished round for the given session.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(sessionID string, r Round) (int64, error) {
	finished := r.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	winner := winnerCPU
	if r.HumanWon {
		winner = winnerHuman
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (session_id, winner, left_score, right_score, ticks, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID,
		winner,
		r.LeftScore,
		r.RightScore,
		r.Ticks,
		r.Duration.Milliseconds(),
		finished.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the latest N rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, winner, left_score, right_score, ticks, duration_ms, created_at
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var (
			e          RoundEntry
			winner     string
			durationMs int64
			createdAt  any
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &winner, &e.LeftScore, &e.RightScore,
			&e.Ticks, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.HumanWon = winner == winnerHuman
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Tally counts the human's wins and losses across all stored rounds.
func (s *Store) Tally() (Tally, error) {
	var t Tally
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN winner = ? THEN 0 ELSE 1 END), 0)
		 FROM rounds`,
		winnerHuman, winnerHuman,
	).Scan(&t.Wins, &t.Losses)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot query tally: %w", err)
	}
	return t, nil
}

// ClearRounds deletes all stored rounds.
func (s *Store) ClearRounds() error {
	_, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
