package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func okPinger() BackendPinger {
	return pingerFunc(func(ctx context.Context) error { return nil })
}

func downPinger() BackendPinger {
	return pingerFunc(func(ctx context.Context) error { return errors.New("unreachable") })
}

func TestHealthHandler_Live(t *testing.T) {
	h := NewHealthHandler(nil, "1.2.3")

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name     string
		backends map[string]BackendPinger
		want     int
	}{
		{
			name:     "no backends",
			backends: nil,
			want:     http.StatusOK,
		},
		{
			name:     "all up",
			backends: map[string]BackendPinger{"supabase": okPinger(), "postgres": okPinger()},
			want:     http.StatusOK,
		},
		{
			name:     "one down",
			backends: map[string]BackendPinger{"supabase": okPinger(), "postgres": downPinger()},
			want:     http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.backends, "test")

			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if rec.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestHealthHandler_Health(t *testing.T) {
	h := NewHealthHandler(map[string]BackendPinger{
		"supabase": okPinger(),
		"postgres": downPinger(),
	}, "1.2.3")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "down" {
		t.Errorf("expected status down, got %s", resp.Status)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", resp.Version)
	}
	if resp.Components["supabase"].Status != "ok" {
		t.Errorf("expected supabase ok, got %+v", resp.Components["supabase"])
	}
	if resp.Components["postgres"].Status != "down" {
		t.Errorf("expected postgres down, got %+v", resp.Components["postgres"])
	}
	if resp.Components["supabase"].Latency == "" {
		t.Error("expected latency for healthy component")
	}
}
