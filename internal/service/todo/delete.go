package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// Delete removes the todo with the given id from the request-selected
// backend. Deleting a missing id succeeds on every backend.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	repo, mode, err := s.repo(ctx)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete todo (%s): %w", mode, err)
	}

	s.log.InfoContext(ctx, "todo deleted",
		slog.String("todo_id", id),
		slog.String("mode", string(mode)),
	)

	return nil
}
