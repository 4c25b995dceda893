package authz

import (
	"net/http"

	"log/slog"

	"github.com/easybank/easybank-backend/internal/platform/httpx"
	"github.com/easybank/easybank-backend/internal/shared"
)

// Middleware wires authorization checks for HTTP handlers. It only consults
// the effective permission set already resolved into the request context;
// it never touches the stores.
type Middleware struct {
	Logger *slog.Logger
}

// RequireAny ensures the caller holds at least one of the given authorities.
func (m Middleware) RequireAny(authorities ...Authority) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(authorities) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			auth := shared.AuthFromContext(r.Context())
			if auth == nil {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "authentication required")
				return
			}
			for _, a := range authorities {
				if auth.HasPermission(string(a)) {
					next.ServeHTTP(w, r)
					return
				}
			}
			m.deny(w, r, auth)
		})
	}
}

// RequireAll ensures the caller holds every one of the given authorities.
func (m Middleware) RequireAll(authorities ...Authority) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := shared.AuthFromContext(r.Context())
			if auth == nil {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "authentication required")
				return
			}
			for _, a := range authorities {
				if !auth.HasPermission(string(a)) {
					m.deny(w, r, auth)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m Middleware) deny(w http.ResponseWriter, r *http.Request, auth *shared.AuthContext) {
	if m.Logger != nil {
		m.Logger.Warn("authorization denied",
			slog.String("path", r.URL.Path),
			slog.String("subject", auth.SubjectID),
		)
	}
	httpx.Problem(w, http.StatusForbidden, "Forbidden", "insufficient permissions")
}
