package router

import (
	"net/http"

	"github.com/jbeshir/content-ratings/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := domain.ActorFromContext(r.Context()); !ok {
			logger := domain.LoggerFromContext(r.Context())
			logger.ErrorContext(r.Context(), "attempt to use endpoint requiring auth without an actor")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAdminMiddleware implies requireAuthMiddleware.
func requireAdminMiddleware(next http.Handler) http.Handler {
	return requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, _ := domain.ActorFromContext(r.Context())
		if !actor.CanAdminister() {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "non-administrator attempted to use admin endpoint")
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	}))
}
