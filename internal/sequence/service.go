package sequence

import (
	"context"
	"errors"
	"fmt"
)

var ErrEmptyKey = errors.New("sequence key is required")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sequence
type Repository interface {
	Increment(ctx context.Context, key string) (int64, error)
	Current(ctx context.Context, key string) (int64, error)
}

// Service issues monotonically increasing numbers per key. Counters live in the
// database so every terminal shares them.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Next returns the next value of key, starting at 1.
func (s *Service) Next(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, ErrEmptyKey
	}

	n, err := s.repo.Increment(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("next %s: %w", key, err)
	}

	return n, nil
}

// Current returns the last value issued for key, or 0.
func (s *Service) Current(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, ErrEmptyKey
	}

	return s.repo.Current(ctx, key)
}
