package config

import (
	"fmt"
	"strings"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	def := domain.ResolveMode(c.Storage.DefaultMode, domain.ModeMemory)

	// A default pointing at an unconfigured backend would fail every
	// hint-less request, so reject it at startup.
	switch def {
	case domain.ModeSupabase:
		if !c.Supabase.Enabled() {
			return fmt.Errorf("storage.default_mode is %q but supabase.url/service_key are not set", c.Storage.DefaultMode)
		}
	case domain.ModePostgres:
		if !c.Database.Enabled() {
			return fmt.Errorf("storage.default_mode is %q but database.dsn is not set", c.Storage.DefaultMode)
		}
	}

	if c.Storage.MemoryLatency < 0 {
		return fmt.Errorf("storage.memory_latency must be >= 0 (got %v)", c.Storage.MemoryLatency)
	}

	if c.Supabase.Enabled() && !strings.HasPrefix(c.Supabase.URL, "http") {
		return fmt.Errorf("supabase.url must be an http(s) URL (got %q)", c.Supabase.URL)
	}

	return nil
}

// DefaultMode returns the resolved process-wide default storage mode.
func (c *Config) DefaultMode() domain.Mode {
	return domain.ResolveMode(c.Storage.DefaultMode, domain.ModeMemory)
}
