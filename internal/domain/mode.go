package domain

import "strings"

// Mode selects which storage backend services a request.
type Mode string

const (
	// ModeMemory is the in-process demo store. It is the fallback for
	// every unrecognized mode value.
	ModeMemory Mode = "memory"
	// ModeSupabase is the hosted PostgREST-backed store.
	ModeSupabase Mode = "supabase"
	// ModePostgres is the self-hosted pgx-backed store.
	ModePostgres Mode = "postgres"
)

// ResolveMode normalizes a requested mode value. An empty request falls
// back to def; an empty def falls back to ModeMemory. Recognized aliases:
// "live", "supabase", "remote" for the hosted store and "postgres", "pg"
// for the self-hosted one. Anything else resolves to ModeMemory.
func ResolveMode(requested string, def Mode) Mode {
	raw := strings.ToLower(strings.TrimSpace(requested))
	if raw == "" {
		raw = strings.ToLower(strings.TrimSpace(string(def)))
	}

	switch raw {
	case "live", "supabase", "remote":
		return ModeSupabase
	case "postgres", "pg":
		return ModePostgres
	default:
		return ModeMemory
	}
}
