package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mpetrenko/todoswitch/internal/adapter/postgres"
	"github.com/mpetrenko/todoswitch/internal/adapter/postgres/testhelper"
	"github.com/mpetrenko/todoswitch/internal/domain"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func newRepo(t *testing.T) *postgres.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	repo := postgres.New(pool)

	// Each test starts from an empty table.
	if _, err := pool.Exec(context.Background(), "TRUNCATE todos"); err != nil {
		t.Fatalf("truncate todos: %v", err)
	}
	return repo
}

func TestRepo_CreateAndList(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	if _, err := repo.Create(ctx, domain.CreateTodo{ID: "a", Text: "older", CreatedAt: t1}); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if _, err := repo.Create(ctx, domain.CreateTodo{ID: "b", Text: "newer", Completed: true, CreatedAt: t2}); err != nil {
		t.Fatalf("create b: %v", err)
	}

	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("len = %d, want 2", len(todos))
	}
	if todos[0].ID != "b" || todos[1].ID != "a" {
		t.Errorf("order = [%s %s], want [b a]", todos[0].ID, todos[1].ID)
	}
	if !todos[0].Completed || todos[0].Text != "newer" {
		t.Errorf("todos[0] = %+v", todos[0])
	}
	if !todos[1].CreatedAt.Equal(t1) {
		t.Errorf("createdAt = %v, want %v", todos[1].CreatedAt, t1)
	}
}

func TestRepo_Create_GeneratesDefaults(t *testing.T) {
	repo := newRepo(t)

	todo, err := repo.Create(context.Background(), domain.CreateTodo{Text: "defaults"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if todo.ID == "" {
		t.Error("expected generated id")
	}
	if todo.CreatedAt.IsZero() {
		t.Error("expected stamped CreatedAt")
	}
}

func TestRepo_Create_DuplicateID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.CreateTodo{ID: "dup", Text: "first"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := repo.Create(ctx, domain.CreateTodo{ID: "dup", Text: "second"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestRepo_Update(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if _, err := repo.Create(ctx, domain.CreateTodo{ID: "x", Text: "old", CreatedAt: created}); err != nil {
		t.Fatalf("create: %v", err)
	}

	todo, err := repo.Update(ctx, "x", domain.TodoPatch{Text: strPtr("new")})
	if err != nil {
		t.Fatalf("update text: %v", err)
	}
	if todo.Text != "new" || todo.Completed || !todo.CreatedAt.Equal(created) {
		t.Errorf("after text patch: %+v", todo)
	}

	todo, err = repo.Update(ctx, "x", domain.TodoPatch{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("update completed: %v", err)
	}
	if todo.Text != "new" || !todo.Completed {
		t.Errorf("after completed patch: %+v", todo)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Update(context.Background(), "ghost", domain.TodoPatch{Text: strPtr("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRepo_Delete_Idempotent(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.CreateTodo{ID: "a", Text: "bye"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete existing: %v", err)
	}
	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}

	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("len = %d, want 0", len(todos))
	}
}
