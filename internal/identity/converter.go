package identity

import (
	"log/slog"

	"github.com/easybank/easybank-backend/internal/authz"
)

// RoleConverter normalizes externally asserted realm role names into the
// locally recognized granted-authority vocabulary by applying the ROLE_
// prefix. The external role namespace is authoritative: unknown names are
// prefixed and passed through rather than dropped.
type RoleConverter struct {
	Logger *slog.Logger
}

// Convert returns the prefixed granted-authority names for the token. A
// token without roles yields an empty slice; a malformed roles claim also
// yields an empty slice but is logged so the two cases can be told apart.
func (c RoleConverter) Convert(claims Claims) []string {
	roles, status := claims.RealmRoles()
	switch status {
	case RolesAbsent, RolesEmpty:
		if c.Logger != nil {
			c.Logger.Debug("no realm roles in token")
		}
		return nil
	case RolesMalformed:
		if c.Logger != nil {
			c.Logger.Warn("realm roles claim has unexpected shape, treating as no roles")
		}
		return nil
	}
	granted := make([]string, 0, len(roles))
	seen := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		name := authz.RolePrefix + role
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		granted = append(granted, name)
	}
	return granted
}
