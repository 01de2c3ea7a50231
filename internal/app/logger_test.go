package app

import (
	"log/slog"
	"testing"

	"github.com/mpetrenko/todoswitch/internal/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{"json format", config.LogConfig{Level: "info", Format: "json"}},
		{"text format", config.LogConfig{Level: "debug", Format: "text"}},
		{"unknown format falls back to text", config.LogConfig{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			if logger == nil {
				t.Fatal("logger should not be nil")
			}
			if slog.Default() != logger {
				t.Error("NewLogger should set the default logger")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
