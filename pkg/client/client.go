// Package client is a small Go client for the todo HTTP API. It is used
// by the terminal UI and is suitable for scripting against a running
// server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ModeHeader mirrors the header the server's mode middleware reads.
const ModeHeader = "X-Todo-Mode"

// Todo is a todo row as the API serves it. The same shape is the
// required write payload: the server rejects partial bodies.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Client talks to a todo server.
type Client struct {
	baseURL string
	mode    string
	hc      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithMode makes every request carry the given storage mode.
func WithMode(mode string) Option {
	return func(c *Client) { c.mode = mode }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the storage mode the client is pinned to, if any.
func (c *Client) Mode() string { return c.mode }

// SetMode changes the storage mode for subsequent requests.
func (c *Client) SetMode(mode string) { c.mode = mode }

// List fetches all todos, newest first.
func (c *Client) List(ctx context.Context) ([]Todo, error) {
	var todos []Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Create adds a todo. The server requires a complete payload, so a zero
// ID gets a freshly generated identifier and a zero CreatedAt the
// current time. The created row is returned.
func (c *Client) Create(ctx context.Context, t Todo) (*Todo, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if err := c.do(ctx, http.MethodPost, "/todos", t, nil); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update replaces the mutable fields of the todo with the given id. The
// server requires the body to be a complete todo whose id matches.
func (c *Client) Update(ctx context.Context, t Todo) error {
	path := "/todos/" + url.PathEscape(t.ID)
	return c.do(ctx, http.MethodPut, path, t, nil)
}

// Delete removes a todo. Deleting an absent id is not an error.
func (c *Client) Delete(ctx context.Context, id string) error {
	path := "/todos/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.mode != "" {
		req.Header.Set(ModeHeader, c.mode)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// apiError extracts the server's {"error": ...} message, falling back to
// the HTTP status when the body is not in that shape.
func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("server: %s", payload.Error)
	}
	return fmt.Errorf("server: unexpected status %s", resp.Status)
}
