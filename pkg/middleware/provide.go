package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fmstack/fmstack/pkg/composables"
	"github.com/fmstack/fmstack/pkg/configuration"
	"github.com/fmstack/fmstack/pkg/constants"
	"github.com/fmstack/fmstack/pkg/prefs"
)

// Provide injects a fixed value under the given key for every request.
func Provide(key constants.ContextKey, value any) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				ctx := context.WithValue(r.Context(), key, value)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// WithPool makes the database pool reachable through composables.UsePool.
func WithPool(pool *pgxpool.Pool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(composables.WithPool(r.Context(), pool)))
			},
		)
	}
}

// WithPrefs installs the preference store consulted by table layout
// persistence and the dev view gate.
func WithPrefs(store prefs.Store) mux.MiddlewareFunc {
	return Provide(constants.PrefsKey, store)
}

// RequestParams records connection-level request details for composables.
func RequestParams() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				params := &composables.Params{
					IP:        getRealIP(r, conf),
					UserAgent: r.UserAgent(),
					Request:   r,
					Writer:    w,
				}
				next.ServeHTTP(w, r.WithContext(composables.WithParams(r.Context(), params)))
			},
		)
	}
}
