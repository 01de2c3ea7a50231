package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StorageConfig selects the default backend and tunes the in-memory store.
type StorageConfig struct {
	// DefaultMode governs requests that carry no explicit mode hint.
	DefaultMode   string        `yaml:"default_mode"   env:"TODO_MODE_DEFAULT" env-default:"memory"`
	MemoryLatency time.Duration `yaml:"memory_latency" env:"MEMORY_LATENCY"    env-default:"25ms"`
}

// SupabaseConfig holds the hosted PostgREST store settings. The supabase
// mode stays unconfigured unless both URL and ServiceKey are present.
type SupabaseConfig struct {
	URL        string        `yaml:"url"         env:"SUPABASE_URL"`
	ServiceKey string        `yaml:"service_key" env:"SUPABASE_SERVICE_KEY"`
	Table      string        `yaml:"table"       env:"SUPABASE_TABLE"   env-default:"todos"`
	Timeout    time.Duration `yaml:"timeout"     env:"SUPABASE_TIMEOUT" env-default:"10s"`
}

// Enabled reports whether both required remote credentials are present.
func (c SupabaseConfig) Enabled() bool {
	return c.URL != "" && c.ServiceKey != ""
}

// DatabaseConfig holds self-hosted PostgreSQL settings. The postgres mode
// stays unconfigured unless DSN is present.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Migrate         bool          `yaml:"migrate"            env:"DATABASE_MIGRATE"            env-default:"true"`
}

// Enabled reports whether a DSN is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Todo-Mode"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
