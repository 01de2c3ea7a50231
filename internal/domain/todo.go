// Package domain holds the Todo entity, the storage mode enumeration, and
// the pure helpers (normalization, duplicate detection, id generation)
// shared by every adapter and transport.
package domain

import "time"

// Todo is the single entity of the system.
//
// ID is opaque and immutable after creation. CreatedAt is assigned at
// creation, is immutable, and is the sole sort key (newest first).
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTodo carries the fields accepted when creating a todo.
// ID and CreatedAt are optional: adapters generate an id and stamp the
// current time when they are zero.
type CreateTodo struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt time.Time
}

// TodoPatch is a partial update. Only non-nil fields are applied;
// ID and CreatedAt are never patchable.
type TodoPatch struct {
	Text      *string
	Completed *bool
}
