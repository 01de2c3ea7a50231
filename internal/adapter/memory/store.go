// Package memory implements the todo repository against a process-lifetime
// slice. Nothing survives a restart; a small artificial delay on List
// simulates network latency so the demo UI behaves like the hosted backend.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// DefaultLatency is applied to List when no latency is configured.
const DefaultLatency = 25 * time.Millisecond

// Store is an injected in-memory todo repository. All state lives on the
// instance, so tests can create isolated stores instead of sharing a
// process-wide singleton.
type Store struct {
	mu      sync.Mutex
	todos   []domain.Todo
	latency time.Duration
}

// New creates an empty Store with DefaultLatency.
func New() *Store {
	return NewWithLatency(DefaultLatency)
}

// NewWithLatency creates an empty Store with a custom simulated latency.
// Zero disables the delay (useful in tests).
func NewWithLatency(latency time.Duration) *Store {
	return &Store{latency: latency}
}

// List returns all todos sorted by CreatedAt descending (newest first).
// The returned slice is a copy; callers may mutate it freely.
func (s *Store) List(ctx context.Context) ([]domain.Todo, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Todo, len(s.todos))
	copy(out, s.todos)
	slices.SortStableFunc(out, func(a, b domain.Todo) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// Create inserts a new todo at the front of the store. A missing ID is
// generated, a zero CreatedAt is stamped with the current time.
func (s *Store) Create(ctx context.Context, input domain.CreateTodo) (*domain.Todo, error) {
	todo := domain.Todo{
		ID:        input.ID,
		Text:      input.Text,
		Completed: input.Completed,
		CreatedAt: input.CreatedAt,
	}
	if todo.ID == "" {
		todo.ID = domain.NewID()
	}
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = slices.Insert(s.todos, 0, todo)
	return &todo, nil
}

// Update merges the patch into the todo with the given id.
// Returns domain.ErrNotFound if the id is absent.
func (s *Store) Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.todos, func(t domain.Todo) bool { return t.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}

	if patch.Text != nil {
		s.todos[i].Text = *patch.Text
	}
	if patch.Completed != nil {
		s.todos[i].Completed = *patch.Completed
	}

	updated := s.todos[i]
	return &updated, nil
}

// Delete removes the todo with the given id. Deleting a missing id is not
// an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = slices.DeleteFunc(s.todos, func(t domain.Todo) bool { return t.ID == id })
	return nil
}

// sleep blocks for the configured latency or until the context is done.
func (s *Store) sleep(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
