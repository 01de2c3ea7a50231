package middleware

import (
	"net/http"

	"github.com/mpetrenko/todoswitch/internal/domain"
	"github.com/mpetrenko/todoswitch/pkg/ctxutil"
)

// ModeHeader is the request header a client sets to pick a storage
// backend for a single request. It takes precedence over the "mode"
// query parameter when both are present.
const ModeHeader = "X-Todo-Mode"

// Mode returns middleware that resolves the storage mode for the request
// and stores it in the request context. Resolution order: the
// X-Todo-Mode header, then the "mode" query parameter, then the
// configured default. Unrecognized non-empty values resolve to the
// in-memory store rather than failing the request.
func Mode(def domain.Mode) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested := r.Header.Get(ModeHeader)
			if requested == "" {
				requested = r.URL.Query().Get("mode")
			}
			mode := domain.ResolveMode(requested, def)
			ctx := ctxutil.WithMode(r.Context(), mode)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
