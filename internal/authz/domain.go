// Package authz resolves the effective permission set for a caller by
// combining role-implied defaults with per-subject overrides.
package authz

import "strings"

// Role is a coarse-grained designation asserted by the identity provider.
// The set of roles is closed; every role has a catalog entry.
type Role string

const (
	RoleUser    Role = "USER"
	RoleSupport Role = "SUPPORT"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// RolePrefix is prepended to externally asserted role names.
const RolePrefix = "ROLE_"

// GrantedName returns the prefixed form used in granted-authority claims.
func (r Role) GrantedName() string {
	return RolePrefix + string(r)
}

// Authority is a fine-grained RESOURCE:ACTION capability. Authorities are a
// flat set; there is no hierarchy among them.
type Authority string

const (
	AccountRead        Authority = "ACCOUNT:READ"
	AccountWrite       Authority = "ACCOUNT:WRITE"
	AccountDelete      Authority = "ACCOUNT:DELETE"
	TransactionRead    Authority = "TRANSACTION:READ"
	TransactionWrite   Authority = "TRANSACTION:WRITE"
	TransactionApprove Authority = "TRANSACTION:APPROVE"
	CardRead           Authority = "CARD:READ"
	CardWrite          Authority = "CARD:WRITE"
	CardActivate       Authority = "CARD:ACTIVATE"
	CardBlock          Authority = "CARD:BLOCK"
	LoanRead           Authority = "LOAN:READ"
	LoanWrite          Authority = "LOAN:WRITE"
	LoanApprove        Authority = "LOAN:APPROVE"
	UserRead           Authority = "USER:READ"
	UserWrite          Authority = "USER:WRITE"
	UserDelete         Authority = "USER:DELETE"
	ContactRead        Authority = "CONTACT:READ"
	ContactWrite       Authority = "CONTACT:WRITE"
	NoticeRead         Authority = "NOTICE:READ"
	NoticeWrite        Authority = "NOTICE:WRITE"
	ReportGenerate     Authority = "REPORT:GENERATE"
	ReportExport       Authority = "REPORT:EXPORT"
)

// AllAuthorities returns every defined authority.
func AllAuthorities() []Authority {
	return []Authority{
		AccountRead, AccountWrite, AccountDelete,
		TransactionRead, TransactionWrite, TransactionApprove,
		CardRead, CardWrite, CardActivate, CardBlock,
		LoanRead, LoanWrite, LoanApprove,
		UserRead, UserWrite, UserDelete,
		ContactRead, ContactWrite,
		NoticeRead, NoticeWrite,
		ReportGenerate, ReportExport,
	}
}

// ParseRole maps a granted-authority name (with or without the ROLE_ prefix)
// to a known Role. Unknown names report false; callers keep them on the
// principal but they carry no catalog grants.
func ParseRole(name string) (Role, bool) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(name), RolePrefix)
	switch Role(trimmed) {
	case RoleUser, RoleSupport, RoleManager, RoleAdmin:
		return Role(trimmed), true
	}
	return "", false
}

// ParseRoles maps granted-authority names to known Roles, dropping unknowns.
func ParseRoles(names []string) []Role {
	roles := make([]Role, 0, len(names))
	seen := make(map[Role]struct{}, len(names))
	for _, name := range names {
		role, ok := ParseRole(name)
		if !ok {
			continue
		}
		if _, dup := seen[role]; dup {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	return roles
}
