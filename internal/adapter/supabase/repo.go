// Package supabase implements the todo repository against a hosted
// Supabase project over its PostgREST API. The remote table uses different
// column names (todo, is_completed) and keeps the creation timestamp in two
// representations; this adapter maps between the remote row shape and the
// local one. Every operation is a single atomic REST call with no retry;
// remote errors surface with the remote message.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mpetrenko/todoswitch/internal/config"
	"github.com/mpetrenko/todoswitch/internal/domain"
)

const selectColumns = "id,todo,is_completed,created_at,created_at_ms"

// Repo provides todo persistence backed by a Supabase PostgREST endpoint.
type Repo struct {
	baseURL    string
	serviceKey string
	table      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Repo from configuration. The caller is expected to have
// checked cfg.Enabled(); a Repo built from empty credentials will fail on
// every call.
func New(cfg config.SupabaseConfig, logger *slog.Logger) *Repo {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Repo{
		baseURL:    cfg.URL,
		serviceKey: cfg.ServiceKey,
		table:      cfg.Table,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "supabase"),
	}
}

// List fetches all rows ordered by the millisecond-epoch column descending
// and maps each to the local shape.
func (r *Repo) List(ctx context.Context) ([]domain.Todo, error) {
	query := url.Values{
		"select": {selectColumns},
		"order":  {"created_at_ms.desc"},
	}

	body, err := r.do(ctx, http.MethodGet, query, nil, "")
	if err != nil {
		return nil, err
	}

	var rows []todoRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("supabase: decode list: %w", err)
	}

	todos := make([]domain.Todo, len(rows))
	for i, row := range rows {
		todos[i] = row.toDomain()
	}
	return todos, nil
}

// Create inserts a row carrying the mapped fields. The client-supplied id
// and millisecond-epoch timestamp are included only when present, letting
// the remote defaults fill the rest. Returns the single inserted row.
func (r *Repo) Create(ctx context.Context, input domain.CreateTodo) (*domain.Todo, error) {
	payload := insertRow{
		Todo:        input.Text,
		IsCompleted: input.Completed,
	}
	if input.ID != "" {
		payload.ID = &input.ID
	}
	if !input.CreatedAt.IsZero() {
		ms := input.CreatedAt.UnixMilli()
		payload.CreatedAtMs = &ms
	}

	query := url.Values{"select": {selectColumns}}
	body, err := r.do(ctx, http.MethodPost, query, payload, "return=representation")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows(body)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("supabase: insert returned no row")
	}
	todo := rows[0].toDomain()
	return &todo, nil
}

// Update patches the row matching id with only the fields present in
// patch, mapped to remote column names. Returns the mapped updated row, or
// domain.ErrNotFound when no row matched.
func (r *Repo) Update(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	payload := updateRow{
		Todo:        patch.Text,
		IsCompleted: patch.Completed,
	}

	query := url.Values{
		"select": {selectColumns},
		"id":     {"eq." + id},
	}
	body, err := r.do(ctx, http.MethodPatch, query, payload, "return=representation")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows(body)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	todo := rows[0].toDomain()
	return &todo, nil
}

// Delete removes the row matching id. Deleting a missing id succeeds, as
// PostgREST deletes are no-ops on empty matches.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query := url.Values{"id": {"eq." + id}}
	_, err := r.do(ctx, http.MethodDelete, query, nil, "")
	return err
}

// Ping performs a cheap HEAD-style request so health checks can probe the
// remote endpoint.
func (r *Repo) Ping(ctx context.Context) error {
	query := url.Values{"select": {"id"}, "limit": {"1"}}
	_, err := r.do(ctx, http.MethodGet, query, nil, "")
	return err
}

// do builds, authenticates, and executes one PostgREST request, returning
// the raw response body. Non-2xx responses become errors carrying the
// remote error message.
func (r *Repo) do(ctx context.Context, method string, query url.Values, payload any, prefer string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/rest/v1/%s?%s", r.baseURL, url.PathEscape(r.table), query.Encode())

	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("supabase: encode payload: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("supabase: create request: %w", err)
	}
	req.Header.Set("apikey", r.serviceKey)
	req.Header.Set("Authorization", "Bearer "+r.serviceKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.ErrorContext(ctx, "supabase request failed",
			slog.String("method", method),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("supabase: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("supabase: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, remoteError(resp.StatusCode, body)
	}

	return body, nil
}

// remoteError extracts the PostgREST error message from a failed response.
func remoteError(status int, body []byte) error {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("supabase: %s", apiErr.Message)
	}
	return fmt.Errorf("supabase: unexpected status %d", status)
}

func decodeRows(body []byte) ([]todoRow, error) {
	var rows []todoRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("supabase: decode rows: %w", err)
	}
	return rows, nil
}
