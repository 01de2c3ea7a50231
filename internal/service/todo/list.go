package todo

import (
	"context"
	"fmt"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// List returns all todos from the request-selected backend, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Todo, error) {
	repo, mode, err := s.repo(ctx)
	if err != nil {
		return nil, err
	}

	todos, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos (%s): %w", mode, err)
	}
	return todos, nil
}
