package todo

import (
	"context"
	"sync"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// todoRepoMock is a hand-rolled mock of todoRepo. Unset funcs panic so a
// test immediately exposes an operation it did not expect.
type todoRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Todo, error)
	CreateFunc func(ctx context.Context, input domain.CreateTodo) (*domain.Todo, error)
	UpdateFunc func(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error)
	DeleteFunc func(ctx context.Context, id string) error

	mu          sync.Mutex
	listCalls   int
	createCalls []domain.CreateTodo
	updateCalls []struct {
		ID    string
		Patch domain.TodoPatch
	}
	deleteCalls []string
}

func (m *todoRepoMock) List(ctx context.Context) ([]domain.Todo, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.ListFunc == nil {
		panic("todoRepoMock: unexpected List call")
	}
	return m.ListFunc(ctx)
}

func (m *todoRepoMock) Create(ctx context.Context, input domain.CreateTodo) (*domain.Todo, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, input)
	m.mu.Unlock()
	if m.CreateFunc == nil {
		panic("todoRepoMock: unexpected Create call")
	}
	return m.CreateFunc(ctx, input)
}

func (m *todoRepoMock) Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	m.mu.Lock()
	m.updateCalls = append(m.updateCalls, struct {
		ID    string
		Patch domain.TodoPatch
	}{id, patch})
	m.mu.Unlock()
	if m.UpdateFunc == nil {
		panic("todoRepoMock: unexpected Update call")
	}
	return m.UpdateFunc(ctx, id, patch)
}

func (m *todoRepoMock) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	m.deleteCalls = append(m.deleteCalls, id)
	m.mu.Unlock()
	if m.DeleteFunc == nil {
		panic("todoRepoMock: unexpected Delete call")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *todoRepoMock) UpdateCalls() []struct {
	ID    string
	Patch domain.TodoPatch
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}
