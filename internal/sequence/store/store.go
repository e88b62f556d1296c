package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Increment(ctx context.Context, key string) (int64, error) {
	query := `
		INSERT INTO sequences (key, value)
		VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`

	var n int64
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&n); err != nil {
		return 0, fmt.Errorf("incrementing sequence: %w", err)
	}

	return n, nil
}

func (s *Store) Current(ctx context.Context, key string) (int64, error) {
	query := `SELECT value FROM sequences WHERE key = $1`

	var n int64

	err := s.db.QueryRowContext(ctx, query, key).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}

		return 0, fmt.Errorf("reading sequence: %w", err)
	}

	return n, nil
}
