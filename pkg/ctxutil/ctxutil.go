// Package ctxutil carries request-scoped values (storage mode, request id)
// through context.Context.
package ctxutil

import (
	"context"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

type ctxKey string

const (
	modeKey      ctxKey = "todo_mode"
	requestIDKey ctxKey = "request_id"
)

// WithMode stores the resolved storage mode in the context.
func WithMode(ctx context.Context, mode domain.Mode) context.Context {
	return context.WithValue(ctx, modeKey, mode)
}

// ModeFromCtx extracts the storage mode from the context.
// Returns false if the value is missing, empty, or the wrong type.
func ModeFromCtx(ctx context.Context) (domain.Mode, bool) {
	mode, ok := ctx.Value(modeKey).(domain.Mode)
	if !ok || mode == "" {
		return "", false
	}
	return mode, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
