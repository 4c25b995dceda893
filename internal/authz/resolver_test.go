package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOverrideStore struct {
	overrides map[string][]Authority
	err       error
	calls     int
}

func (m *mockOverrideStore) FindBySubject(ctx context.Context, subjectID string) ([]Authority, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.overrides[subjectID], nil
}

func TestResolveRoleDefaultsOnly(t *testing.T) {
	store := &mockOverrideStore{}
	resolver := NewResolver(NewCatalog(), store)

	set, err := resolver.Resolve(context.Background(), []Role{RoleUser}, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, NewCatalog().AuthoritiesForRole(RoleUser), set)
	assert.Equal(t, 1, store.calls)
}

func TestResolveAddsOverrides(t *testing.T) {
	store := &mockOverrideStore{overrides: map[string][]Authority{
		"sub-1": {ReportExport, ReportGenerate},
	}}
	resolver := NewResolver(NewCatalog(), store)

	set, err := resolver.Resolve(context.Background(), []Role{RoleUser}, "sub-1")
	require.NoError(t, err)

	defaults := NewCatalog().AuthoritiesForRole(RoleUser)
	for a := range defaults {
		assert.True(t, set.Has(a))
	}
	assert.True(t, set.Has(ReportExport))
	assert.True(t, set.Has(ReportGenerate))
	assert.Len(t, set, len(defaults)+2)
}

func TestResolveOverrideAlreadyGranted(t *testing.T) {
	store := &mockOverrideStore{overrides: map[string][]Authority{
		"sub-1": {AccountRead},
	}}
	resolver := NewResolver(NewCatalog(), store)

	set, err := resolver.Resolve(context.Background(), []Role{RoleUser}, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, NewCatalog().AuthoritiesForRole(RoleUser), set)
}

func TestResolveNoRolesNoOverrides(t *testing.T) {
	store := &mockOverrideStore{}
	resolver := NewResolver(NewCatalog(), store)

	set, err := resolver.Resolve(context.Background(), nil, "sub-1")
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestResolveNoRolesWithOverrides(t *testing.T) {
	store := &mockOverrideStore{overrides: map[string][]Authority{
		"sub-1": {NoticeRead},
	}}
	resolver := NewResolver(NewCatalog(), store)

	set, err := resolver.Resolve(context.Background(), nil, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, NewSet(NoticeRead), set)
}

func TestResolveStoreFailureFailsClosed(t *testing.T) {
	store := &mockOverrideStore{err: errors.New("connection refused")}
	resolver := NewResolver(NewCatalog(), store)

	set, err := resolver.Resolve(context.Background(), []Role{RoleAdmin}, "sub-1")
	require.Error(t, err)
	assert.Nil(t, set)
}
