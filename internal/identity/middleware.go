package identity

import (
	"context"
	"net/http"
	"strings"

	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/easybank/easybank-backend/internal/authz"
	"github.com/easybank/easybank-backend/internal/platform/httpx"
	"github.com/easybank/easybank-backend/internal/shared"
	"github.com/easybank/easybank-backend/internal/users"
)

// UserProvisioner resolves or creates the local user for a profile.
type UserProvisioner interface {
	GetOrCreate(ctx context.Context, profile users.Profile) (users.User, error)
}

// PermissionResolver computes the effective permission set for a subject.
type PermissionResolver interface {
	Resolve(ctx context.Context, roles []authz.Role, subjectID string) (authz.Set, error)
}

// Authenticator turns a bearer token into a fully resolved request identity:
// verified claims, a provisioned local user, and the effective permission
// set, all stashed in the request context before any handler runs.
type Authenticator struct {
	Verifier    TokenVerifier
	Converter   RoleConverter
	Provisioner UserProvisioner
	Resolver    PermissionResolver
	Logger      *slog.Logger
}

// Middleware authenticates every request passing through it.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
			return
		}

		claims, err := a.Verifier.Verify(token)
		if err != nil {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
			return
		}

		// Claim extraction happens before any store is touched: without an
		// email there is no identity to provision or authorize.
		granted := a.Converter.Convert(claims)
		principal, err := NewPrincipal(claims, granted)
		if err != nil {
			if a.Logger != nil {
				a.Logger.Warn("token rejected", slog.Any("error", err))
			}
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
			return
		}
		roles := authz.ParseRoles(granted)

		// Provisioning and resolution touch disjoint stores and may run
		// concurrently; both must finish before the handler sees the request.
		var (
			user        users.User
			permissions authz.Set
		)
		group, groupCtx := errgroup.WithContext(r.Context())
		group.Go(func() error {
			var err error
			user, err = a.Provisioner.GetOrCreate(groupCtx, users.Profile{
				Email:             principal.Email,
				GivenName:         principal.GivenName,
				FamilyName:        principal.FamilyName,
				PreferredUsername: principal.PreferredUsername,
			})
			return err
		})
		group.Go(func() error {
			var err error
			permissions, err = a.Resolver.Resolve(groupCtx, roles, principal.SubjectID)
			return err
		})
		if err := group.Wait(); err != nil {
			// Store failures are surfaced, never downgraded to an empty
			// permission set.
			if a.Logger != nil {
				a.Logger.Error("identity resolution failed", slog.Any("error", err))
			}
			httpx.Problem(w, http.StatusServiceUnavailable, "Service Unavailable", "identity resolution failed")
			return
		}

		auth := &shared.AuthContext{
			UserID:      user.ID,
			SubjectID:   principal.SubjectID,
			Email:       principal.Email,
			Name:        user.Name,
			Permissions: permissions.Strings(),
		}
		next.ServeHTTP(w, r.WithContext(shared.ContextWithAuth(r.Context(), auth)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
