package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

const listTodosSQL = `
SELECT id, todo, is_completed, created_at_ms
FROM todos
ORDER BY created_at_ms DESC`

const insertTodoSQL = `
INSERT INTO todos (id, todo, is_completed, created_at, created_at_ms)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, todo, is_completed, created_at_ms`

const deleteTodoSQL = `DELETE FROM todos WHERE id = $1`

// Repo provides todo persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new todo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Ping reports database connectivity for health checks.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// List returns all todos ordered by creation time descending.
func (r *Repo) List(ctx context.Context) ([]domain.Todo, error) {
	rows, err := r.pool.Query(ctx, listTodosSQL)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

// Create inserts a new todo and returns the persisted row. A missing ID is
// generated and a zero CreatedAt is stamped with the current time, matching
// the other adapters.
func (r *Repo) Create(ctx context.Context, input domain.CreateTodo) (*domain.Todo, error) {
	id := input.ID
	if id == "" {
		id = domain.NewID()
	}
	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := r.pool.QueryRow(ctx, insertTodoSQL,
		id, input.Text, input.Completed, createdAt, createdAt.UnixMilli())

	todo, err := scanTodo(row)
	if err != nil {
		return nil, mapError(err, "todo", id)
	}
	return &todo, nil
}

// Update applies the fields present in patch to the row matching id.
// Returns domain.ErrNotFound when the row does not exist.
func (r *Repo) Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	builder := sq.Update("todos").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, todo, is_completed, created_at_ms").
		PlaceholderFormat(sq.Dollar)

	if patch.Text != nil {
		builder = builder.Set("todo", *patch.Text)
	}
	if patch.Completed != nil {
		builder = builder.Set("is_completed", *patch.Completed)
	}
	if patch.Text == nil && patch.Completed == nil {
		// Nothing to set; read the current row so an empty patch still
		// reports NotFound for missing ids.
		return r.getByID(ctx, id)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	todo, err := scanTodo(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "todo", id)
	}
	return &todo, nil
}

// Delete removes the row matching id. Idempotent: deleting a missing id is
// not an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, deleteTodoSQL, id); err != nil {
		return mapError(err, "todo", id)
	}
	return nil
}

func (r *Repo) getByID(ctx context.Context, id string) (*domain.Todo, error) {
	const getSQL = `SELECT id, todo, is_completed, created_at_ms FROM todos WHERE id = $1`
	todo, err := scanTodo(r.pool.QueryRow(ctx, getSQL, id))
	if err != nil {
		return nil, mapError(err, "todo", id)
	}
	return &todo, nil
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo reads one row in the shared column order. CreatedAt is derived
// from the millisecond-epoch column so ordering and serialization match the
// hosted backend exactly.
func scanTodo(row rowScanner) (domain.Todo, error) {
	var (
		todo domain.Todo
		ms   int64
	)
	if err := row.Scan(&todo.ID, &todo.Text, &todo.Completed, &ms); err != nil {
		return domain.Todo{}, err
	}
	todo.CreatedAt = time.UnixMilli(ms).UTC()
	return todo, nil
}

// mapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled pass through.
func mapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %s: %w", entity, id, pgErr.Message, domain.ErrValidation)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %s: %w", entity, id, pgErr.Message, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
