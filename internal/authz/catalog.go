package authz

import "fmt"

// Catalog is the immutable role to authority table. Build it once at startup
// with NewCatalog and pass it by value; it is never mutated afterwards.
type Catalog struct {
	defaults map[Role]Set
}

// NewCatalog builds the role defaults table.
//
// ADMIN is a deliberate everything grant over the full authority enum, not a
// union of the other roles, so it stays complete even if their sets shrink.
func NewCatalog() Catalog {
	user := NewSet(
		AccountRead,
		TransactionRead,
		CardRead,
		LoanRead,
		ContactWrite,
		NoticeRead,
	)

	support := NewSet(
		CardActivate,
		CardBlock,
		ContactRead,
		ContactWrite,
		UserRead,
	)
	support.AddAll(user)

	manager := NewSet(
		AccountWrite,
		TransactionWrite,
		TransactionApprove,
		CardWrite,
		CardActivate,
		CardBlock,
		LoanWrite,
		LoanApprove,
		UserRead,
		ContactRead,
		NoticeWrite,
		ReportGenerate,
	)
	manager.AddAll(user)

	admin := NewSet(AllAuthorities()...)

	return Catalog{defaults: map[Role]Set{
		RoleUser:    user,
		RoleSupport: support,
		RoleManager: manager,
		RoleAdmin:   admin,
	}}
}

// AuthoritiesForRole returns the default authorities implied by a role. The
// role enum is closed, so an unknown role is a programming error and panics.
func (c Catalog) AuthoritiesForRole(role Role) Set {
	defaults, ok := c.defaults[role]
	if !ok {
		panic(fmt.Sprintf("authz: no catalog entry for role %q", role))
	}
	out := make(Set, len(defaults))
	out.AddAll(defaults)
	return out
}

// AuthoritiesForRoles unions the defaults of every given role.
func (c Catalog) AuthoritiesForRoles(roles []Role) Set {
	out := make(Set)
	for _, role := range roles {
		out.AddAll(c.AuthoritiesForRole(role))
	}
	return out
}
