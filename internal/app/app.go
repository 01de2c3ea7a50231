package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mpetrenko/todoswitch/internal/adapter/memory"
	"github.com/mpetrenko/todoswitch/internal/adapter/postgres"
	"github.com/mpetrenko/todoswitch/internal/adapter/supabase"
	"github.com/mpetrenko/todoswitch/internal/config"
	"github.com/mpetrenko/todoswitch/internal/domain"
	"github.com/mpetrenko/todoswitch/internal/service/todo"
	"github.com/mpetrenko/todoswitch/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, registers every configured storage backend with the
// selector, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("default_mode", string(cfg.DefaultMode())),
	)

	selector := todo.NewSelector(cfg.DefaultMode())
	pingers := make(map[string]rest.BackendPinger)

	// The in-memory store is always available: it is the fallback for
	// every unrecognized mode.
	selector.Register(domain.ModeMemory, memory.NewWithLatency(cfg.Storage.MemoryLatency))

	if cfg.Supabase.Enabled() {
		repo := supabase.New(cfg.Supabase, logger)
		selector.Register(domain.ModeSupabase, repo)
		pingers["supabase"] = repo
		logger.Info("supabase backend registered", slog.String("table", cfg.Supabase.Table))
	}

	if cfg.Database.Enabled() {
		if cfg.Database.Migrate {
			if err := postgres.Migrate(cfg.Database.DSN); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		repo := postgres.New(pool)
		selector.Register(domain.ModePostgres, repo)
		pingers["postgres"] = repo
		logger.Info("postgres backend registered")
	}

	svc := todo.NewService(logger, selector)

	router := rest.NewRouter(rest.RouterDeps{
		Todos:       rest.NewTodoHandler(svc, logger),
		Health:      rest.NewHealthHandler(pingers, BuildVersion()),
		Logger:      logger,
		CORS:        cfg.CORS,
		DefaultMode: cfg.DefaultMode(),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
