// Package storage provides SQLite-based persistence for high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The only durable state is one integer per (game, topic) pair, guarded by
// an only-grow update rule; runs never shrink or delete a stored score.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for high-score persistence.
type Store struct {
	db *sql.DB
}

// HighScoreEntry is one persisted high score.
type HighScoreEntry struct {
	GameID    string
	Topic     string
	Score     int
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS high_scores (
			game_id TEXT NOT NULL,
			topic TEXT NOT NULL,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (game_id, topic)
		);
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

// HighScore returns the stored high score for the given game and topic.
// A missing row reads as 0.
func (s *Store) HighScore(gameID, topic string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE game_id = ? AND topic = ?",
		gameID, topic,
	).Scan(&score)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RecordScore applies the only-grow update rule: the stored value becomes
// max(stored, score). Returns true when the stored high score actually grew.
func (s *Store) RecordScore(gameID, topic string, score int) (bool, error) {
	if score < 0 {
		return false, fmt.Errorf("storage: negative score %d", score)
	}

	res, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, topic, score)
		 VALUES (?, ?, ?)
		 ON CONFLICT (game_id, topic) DO UPDATE
		 SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > high_scores.score`,
		gameID, topic, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot record score: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read result: %w", err)
	}
	return affected > 0, nil
}

// HighScoresForGame returns all topics with a stored high score for the
// given game, best first.
func (s *Store) HighScoresForGame(gameID string) ([]HighScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT game_id, topic, score, updated_at
		 FROM high_scores
		 WHERE game_id = ?
		 ORDER BY score DESC, topic ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// AllHighScores returns every stored high score, grouped by game then score.
func (s *Store) AllHighScores() ([]HighScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT game_id, topic, score, updated_at
		 FROM high_scores
		 ORDER BY game_id ASC, score DESC, topic ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]HighScoreEntry, error) {
	var entries []HighScoreEntry
	for rows.Next() {
		var e HighScoreEntry
		var updatedAt any
		if err := rows.Scan(&e.GameID, &e.Topic, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// The driver may hand back time.Time or a string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
