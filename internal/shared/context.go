package shared

import "context"

// AuthContext carries the resolved identity and effective permissions for
// one request. The authentication middleware writes it once; authorization
// middleware and handlers only read it.
type AuthContext struct {
	UserID      int64
	SubjectID   string
	Email       string
	Name        string
	Permissions []string
}

// HasPermission reports whether the permission is in the effective set.
func (a *AuthContext) HasPermission(perm string) bool {
	if a == nil {
		return false
	}
	for _, p := range a.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

type authContextKey struct{}

// ContextWithAuth stores the auth context in context.
func ContextWithAuth(ctx context.Context, auth *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, auth)
}

// AuthFromContext extracts the auth context from context.
func AuthFromContext(ctx context.Context) *AuthContext {
	auth, _ := ctx.Value(authContextKey{}).(*AuthContext)
	return auth
}
