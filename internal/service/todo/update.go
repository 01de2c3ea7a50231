package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// Update validates the input, requires the body id to match the URL id,
// and forwards only the mutable fields (text, completed) to the
// request-selected backend. The mismatch check runs before any storage
// call.
func (s *Service) Update(ctx context.Context, urlID string, input UpdateInput) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.ID != urlID {
		return nil, domain.NewValidationError("id", "body id must match URL id")
	}

	repo, mode, err := s.repo(ctx)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	completed := input.Completed

	todo, err := repo.Update(ctx, urlID, domain.TodoPatch{
		Text:      &text,
		Completed: &completed,
	})
	if err != nil {
		return nil, fmt.Errorf("update todo (%s): %w", mode, err)
	}

	s.log.InfoContext(ctx, "todo updated",
		slog.String("todo_id", urlID),
		slog.String("mode", string(mode)),
	)

	return todo, nil
}
