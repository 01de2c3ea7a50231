package supabase

import (
	"time"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// todoRow is the remote row shape returned by PostgREST.
// The creation timestamp exists in two representations: a millisecond
// epoch (created_at_ms, preferred) and a native timestamp (created_at,
// fallback).
type todoRow struct {
	ID          string  `json:"id"`
	Todo        string  `json:"todo"`
	IsCompleted *bool   `json:"is_completed"`
	CreatedAt   *string `json:"created_at"`
	CreatedAtMs *int64  `json:"created_at_ms"`
}

// toDomain maps a remote row to the local shape.
func (r todoRow) toDomain() domain.Todo {
	todo := domain.Todo{
		ID:   r.ID,
		Text: r.Todo,
	}
	if r.IsCompleted != nil {
		todo.Completed = *r.IsCompleted
	}
	todo.CreatedAt = r.createdAt()
	return todo
}

func (r todoRow) createdAt() time.Time {
	if r.CreatedAtMs != nil {
		return time.UnixMilli(*r.CreatedAtMs).UTC()
	}
	if r.CreatedAt != nil {
		if ts, err := time.Parse(time.RFC3339, *r.CreatedAt); err == nil {
			return ts.UTC()
		}
	}
	return time.Now().UTC()
}

// insertRow is the insert payload. Optional fields are omitted so the
// remote defaults apply.
type insertRow struct {
	ID          *string `json:"id,omitempty"`
	Todo        string  `json:"todo"`
	IsCompleted bool    `json:"is_completed"`
	CreatedAtMs *int64  `json:"created_at_ms,omitempty"`
}

// updateRow is the partial-update payload: only fields present in the
// patch are serialized.
type updateRow struct {
	Todo        *string `json:"todo,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// apiError is the PostgREST error body.
type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}
