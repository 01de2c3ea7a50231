package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mpetrenko/todoswitch/internal/config"
	"github.com/mpetrenko/todoswitch/internal/domain"
	"github.com/mpetrenko/todoswitch/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP router needs.
type RouterDeps struct {
	Todos       *TodoHandler
	Health      *HealthHandler
	Logger      *slog.Logger
	CORS        config.CORSConfig
	DefaultMode domain.Mode
}

// NewRouter builds the HTTP routing table with the full middleware stack.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)
	r.Use(base)

	r.Get("/health", deps.Health.Health)
	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	r.Route("/todos", func(r chi.Router) {
		r.Use(middleware.Mode(deps.DefaultMode))
		r.Get("/", deps.Todos.List)
		r.Post("/", deps.Todos.Create)
		r.Put("/{id}", deps.Todos.Update)
		r.Delete("/{id}", deps.Todos.Delete)
	})

	return r
}
