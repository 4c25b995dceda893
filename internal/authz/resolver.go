package authz

import (
	"context"
	"fmt"
)

// OverrideStore reads per-subject authority overrides. Overrides are
// additive grants recorded beyond a subject's role defaults; this package
// never writes them.
type OverrideStore interface {
	FindBySubject(ctx context.Context, subjectID string) ([]Authority, error)
}

// Resolver computes the effective permission set for a subject.
type Resolver struct {
	catalog   Catalog
	overrides OverrideStore
}

// NewResolver constructs a Resolver.
func NewResolver(catalog Catalog, overrides OverrideStore) *Resolver {
	return &Resolver{catalog: catalog, overrides: overrides}
}

// Resolve returns union(role defaults, subject overrides). Overrides only
// ever add authorities; there is no per-subject revocation path. A subject
// with no roles and no overrides resolves to the empty set without error,
// while an override store failure propagates so callers fail closed.
func (r *Resolver) Resolve(ctx context.Context, roles []Role, subjectID string) (Set, error) {
	effective := r.catalog.AuthoritiesForRoles(roles)

	extra, err := r.overrides.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("authz: load overrides for subject: %w", err)
	}
	for _, a := range extra {
		effective[a] = struct{}{}
	}
	return effective, nil
}
