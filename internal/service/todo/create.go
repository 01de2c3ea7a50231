package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// Create validates the input and inserts a new todo into the
// request-selected backend.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo, mode, err := s.repo(ctx)
	if err != nil {
		return nil, err
	}

	todo, err := repo.Create(ctx, domain.CreateTodo{
		ID:        input.ID,
		Text:      strings.TrimSpace(input.Text),
		Completed: input.Completed,
		CreatedAt: input.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create todo (%s): %w", mode, err)
	}

	s.log.InfoContext(ctx, "todo created",
		slog.String("todo_id", todo.ID),
		slog.String("mode", string(mode)),
	)

	return todo, nil
}
