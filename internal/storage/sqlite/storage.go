package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/storage"
)

//go:embed schema.sql
var schema string

// Storage is a SQLite implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New opens (creating if missing) the database file at path and applies the schema
func New(path string) (*Storage, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Dictionary operations

func (s *Storage) GetWordFrequencies(ctx context.Context) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, frequency FROM word_frequencies`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]float64)
	for rows.Next() {
		var word string
		var freq float64
		if err := rows.Scan(&word, &freq); err != nil {
			return nil, err
		}
		result[word] = freq
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}
	return result, nil
}

func (s *Storage) SaveWordFrequencies(ctx context.Context, frequencies map[string]float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM word_frequencies`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO word_frequencies (word, frequency) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for word, freq := range frequencies {
		if _, err := stmt.ExecContext(ctx, word, freq); err != nil {
			return fmt.Errorf("insert %q: %w", word, err)
		}
	}
	return tx.Commit()
}

// Match summary operations

func (s *Storage) SaveMatchSummary(ctx context.Context, summary *model.MatchSummary) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO match_summaries (difficulty, winner, turns, final_word, completed_at)
		VALUES (?, ?, ?, ?, ?)`,
		string(summary.Difficulty), string(summary.Winner), summary.Turns, summary.FinalWord,
		summary.CompletedAt.UnixNano(),
	)
	return err
}

func (s *Storage) ListMatchSummaries(ctx context.Context, limit int) ([]*model.MatchSummary, error) {
	// SQLite treats a negative limit as no limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT difficulty, winner, turns, final_word, completed_at
		FROM match_summaries
		ORDER BY id DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*model.MatchSummary, 0)
	for rows.Next() {
		var (
			difficulty, winner string
			summary            model.MatchSummary
			completedAt        int64
		)
		if err := rows.Scan(&difficulty, &winner, &summary.Turns, &summary.FinalWord, &completedAt); err != nil {
			return nil, err
		}
		summary.Difficulty = model.Difficulty(difficulty)
		summary.Winner = model.Seat(winner)
		summary.CompletedAt = time.Unix(0, completedAt).UTC()
		result = append(result, &summary)
	}
	return result, rows.Err()
}
