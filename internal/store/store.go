// SPDX-License-Identifier: MIT

// Package store persists finished game rounds to a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const schemaVersion = 1

// Result is one finished round.
type Result struct {
	ID       int64
	Player   string
	Game     string // e.g. "binary-numbers"
	Bits     int
	Outcome  string // "correct", "incorrect", "timeout"
	TimeLeft float64
	PlayedAt time.Time
}

// Store records and queries game results.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the results database at path.
func Open(path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("score store: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	var current int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return err
	}
	if current >= schemaVersion {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	schema := `
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player TEXT NOT NULL,
		game TEXT NOT NULL,
		bits INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		time_left REAL NOT NULL,
		played_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_results_played_at ON results(played_at);
	`
	if _, err := tx.Exec(schema); err != nil {
		return err
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return err
	}
	return tx.Commit()
}

// Record inserts a finished round.
func (s *Store) Record(ctx context.Context, r Result) error {
	playedAt := r.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO results (player, game, bits, outcome, time_left, played_at)
	VALUES (?, ?, ?, ?, ?, ?)`,
		r.Player, r.Game, r.Bits, r.Outcome, r.TimeLeft, playedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// Recent returns the newest results, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, player, game, bits, outcome, time_left, played_at
	FROM results ORDER BY played_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Result
	for rows.Next() {
		var r Result
		var playedAt string
		if err := rows.Scan(&r.ID, &r.Player, &r.Game, &r.Bits, &r.Outcome, &r.TimeLeft, &playedAt); err != nil {
			return nil, err
		}
		r.PlayedAt, _ = time.Parse(time.RFC3339, playedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Tally returns result counts per outcome.
func (s *Store) Tally(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM results GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("tally results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		out[outcome] = n
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
