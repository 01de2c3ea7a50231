package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mpetrenko/todoswitch/internal/domain"
	"github.com/mpetrenko/todoswitch/internal/service/todo"
)

// todoService defines the minimal interface needed by TodoHandler.
type todoService interface {
	List(ctx context.Context) ([]domain.Todo, error)
	Create(ctx context.Context, input todo.CreateInput) (*domain.Todo, error)
	Update(ctx context.Context, urlID string, input todo.UpdateInput) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}

// TodoHandler serves todo REST endpoints.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

// todoRequest is the POST /todos and PUT /todos/{id} payload. Every
// field is required; pointers distinguish an absent field from a zero
// value.
type todoRequest struct {
	ID        *string `json:"id"`
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
	CreatedAt *string `json:"createdAt"`
}

// todoPayload is a decoded, schema-complete request body.
type todoPayload struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt time.Time
}

type successResponse struct {
	Success bool `json:"success"`
}

// List handles GET /todos.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

// Create handles POST /todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeTodoPayload(w, r)
	if !ok {
		return
	}

	_, err := h.svc.Create(r.Context(), todo.CreateInput{
		ID:        p.ID,
		Text:      p.Text,
		Completed: p.Completed,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Update handles PUT /todos/{id}. The body must be a complete todo whose
// id matches the URL; partial payloads are rejected before any storage
// call so a schema failure can never mutate state.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	urlID := chi.URLParam(r, "id")

	p, ok := decodeTodoPayload(w, r)
	if !ok {
		return
	}

	_, err := h.svc.Update(r.Context(), urlID, todo.UpdateInput{
		ID:        p.ID,
		Text:      p.Text,
		Completed: p.Completed,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// decodeTodoPayload decodes and schema-checks a todo body. On failure it
// writes a 400 response and returns ok=false.
func decodeTodoPayload(w http.ResponseWriter, r *http.Request) (todoPayload, bool) {
	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return todoPayload{}, false
	}
	if req.ID == nil || req.Text == nil || req.Completed == nil || req.CreatedAt == nil {
		writeError(w, http.StatusBadRequest, "body must include id, text, completed and createdAt")
		return todoPayload{}, false
	}
	createdAt, err := time.Parse(time.RFC3339, *req.CreatedAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "createdAt must be an RFC 3339 timestamp")
		return todoPayload{}, false
	}

	return todoPayload{
		ID:        *req.ID,
		Text:      *req.Text,
		Completed: *req.Completed,
		CreatedAt: createdAt,
	}, true
}

// handleError maps domain errors to HTTP statuses. storageStatus is the
// status for storage failures, which differs per method: writes that
// never happened report 400, reads and deletes report 500.
func (h *TodoHandler) handleError(w http.ResponseWriter, r *http.Request, err error, storageStatus int) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusBadRequest, "todo not found")
	case errors.Is(err, domain.ErrBackendUnavailable):
		h.log.ErrorContext(r.Context(), "backend unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "storage error", slog.String("error", err.Error()))
		writeError(w, storageStatus, err.Error())
	}
}
