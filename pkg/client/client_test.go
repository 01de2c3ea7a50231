package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get(ModeHeader); got != "supabase" {
			t.Errorf("expected mode header supabase, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"a","text":"buy milk","completed":false,"createdAt":"2025-03-01T12:00:00Z"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithMode("supabase"))

	todos, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(todos) != 1 || todos[0].Text != "buy milk" {
		t.Errorf("unexpected todos: %+v", todos)
	}
}

func TestClient_Create_GeneratesIDAndTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body Todo
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if _, err := uuid.Parse(body.ID); err != nil {
			t.Errorf("expected generated UUID, got %q", body.ID)
		}
		if body.CreatedAt.IsZero() {
			t.Error("expected generated createdAt")
		}
		if body.Text != "buy milk" {
			t.Errorf("expected text buy milk, got %q", body.Text)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	created, err := c.Create(context.Background(), Todo{Text: "buy milk"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Errorf("expected filled-in todo, got %+v", created)
	}
}

func TestClient_Create_KeepsSuppliedValues(t *testing.T) {
	suppliedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body Todo
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.ID != "supplied-id" {
			t.Errorf("expected supplied id, got %q", body.ID)
		}
		if !body.CreatedAt.Equal(suppliedAt) {
			t.Errorf("expected supplied createdAt, got %v", body.CreatedAt)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.Create(context.Background(), Todo{ID: "supplied-id", Text: "buy milk", CreatedAt: suppliedAt})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestClient_Update(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/todos/abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body Todo
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.ID != "abc" || !body.Completed {
			t.Errorf("unexpected body: %+v", body)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	err := c.Update(context.Background(), Todo{
		ID:        "abc",
		Text:      "buy milk",
		Completed: true,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestClient_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/todos/abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	if err := c.Delete(context.Background(), "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"text must not be empty"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.Create(context.Background(), Todo{Text: "   "})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "server: text must not be empty" {
		t.Errorf("unexpected error message: %s", got)
	}
}

func TestClient_ServerError_NoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}
