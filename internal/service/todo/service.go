// Package todo contains the application service for todo CRUD. It resolves
// the storage backend per request and validates inputs before any storage
// call.
package todo

import (
	"context"
	"log/slog"

	"github.com/mpetrenko/todoswitch/internal/domain"
	"github.com/mpetrenko/todoswitch/pkg/ctxutil"
)

// todoRepo is the single storage contract every adapter implements.
type todoRepo interface {
	List(ctx context.Context) ([]domain.Todo, error)
	Create(ctx context.Context, input domain.CreateTodo) (*domain.Todo, error)
	Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}

// Service provides todo operations against the request-selected backend.
type Service struct {
	selector *Selector
	log      *slog.Logger
}

// NewService creates a new todo service.
func NewService(log *slog.Logger, selector *Selector) *Service {
	return &Service{
		selector: selector,
		log:      log.With("service", "todo"),
	}
}

// repo resolves the repository for the mode stored in the request context,
// falling back to the selector's default.
func (s *Service) repo(ctx context.Context) (todoRepo, domain.Mode, error) {
	mode, ok := ctxutil.ModeFromCtx(ctx)
	if !ok {
		mode = s.selector.Default()
	}
	repo, err := s.selector.Repo(mode)
	if err != nil {
		return nil, mode, err
	}
	return repo, mode, nil
}
