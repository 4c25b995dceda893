// Package identity extracts caller identity from verified tokens and
// authenticates API requests.
package identity

import (
	"github.com/easybank/easybank-backend/internal/shared"
)

// Well-known claim names issued by the identity provider.
const (
	claimEmail             = "email"
	claimGivenName         = "given_name"
	claimFamilyName        = "family_name"
	claimPreferredUsername = "preferred_username"
	claimSubject           = "sub"
	claimRealmAccess       = "realm_access"
	claimRoles             = "roles"
)

// Claims is a read-only view over the claims of an already-verified token.
// Accessors for optional claims report absence instead of failing; a claim
// whose value has an unexpected shape counts as absent.
type Claims map[string]any

// Email returns the required email claim. An absent or empty email makes the
// whole request unauthenticatable and is reported as an error.
func (c Claims) Email() (string, error) {
	email, ok := c.String(claimEmail)
	if !ok || email == "" {
		return "", shared.ErrMissingEmailClaim
	}
	return email, nil
}

// Subject returns the stable external subject identifier, or "" if absent.
func (c Claims) Subject() string {
	sub, _ := c.String(claimSubject)
	return sub
}

// GivenName returns the optional given_name claim.
func (c Claims) GivenName() (string, bool) {
	return c.String(claimGivenName)
}

// FamilyName returns the optional family_name claim.
func (c Claims) FamilyName() (string, bool) {
	return c.String(claimFamilyName)
}

// PreferredUsername returns the optional preferred_username claim.
func (c Claims) PreferredUsername() (string, bool) {
	return c.String(claimPreferredUsername)
}

// String returns a named claim as a string. Missing claims and claims of a
// different type both report false.
func (c Claims) String(name string) (string, bool) {
	raw, ok := c[name]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

// RolesStatus describes the outcome of extracting the realm roles claim.
type RolesStatus int

const (
	// RolesPresent means at least one role string was extracted.
	RolesPresent RolesStatus = iota
	// RolesAbsent means the token carries no realm roles claim at all.
	RolesAbsent
	// RolesEmpty means the claim exists but lists no roles.
	RolesEmpty
	// RolesMalformed means the claim exists but is not a collection of
	// strings. Treated the same as empty for request handling, but
	// distinguishable for logging.
	RolesMalformed
)

// RealmRoles extracts the realm-level role name strings from the token.
// Malformed shapes never fail the request; they degrade to zero roles.
func (c Claims) RealmRoles() ([]string, RolesStatus) {
	raw, ok := c[claimRealmAccess]
	if !ok {
		return nil, RolesAbsent
	}
	realmAccess, ok := raw.(map[string]any)
	if !ok {
		return nil, RolesMalformed
	}
	rawRoles, ok := realmAccess[claimRoles]
	if !ok {
		return nil, RolesAbsent
	}
	list, ok := rawRoles.([]any)
	if !ok {
		return nil, RolesMalformed
	}
	roles := make([]string, 0, len(list))
	for _, entry := range list {
		role, ok := entry.(string)
		if !ok {
			return nil, RolesMalformed
		}
		if role == "" {
			continue
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return nil, RolesEmpty
	}
	return roles, RolesPresent
}
