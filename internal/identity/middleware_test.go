package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-backend/internal/authz"
	"github.com/easybank/easybank-backend/internal/shared"
	"github.com/easybank/easybank-backend/internal/users"
)

type stubVerifier struct {
	claims Claims
	err    error
}

func (s stubVerifier) Verify(token string) (Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

type stubProvisioner struct {
	user  users.User
	err   error
	calls int
}

func (s *stubProvisioner) GetOrCreate(ctx context.Context, profile users.Profile) (users.User, error) {
	s.calls++
	if s.err != nil {
		return users.User{}, s.err
	}
	return s.user, nil
}

type stubResolver struct {
	set   authz.Set
	err   error
	calls int
	roles []authz.Role
}

func (s *stubResolver) Resolve(ctx context.Context, roles []authz.Role, subjectID string) (authz.Set, error) {
	s.calls++
	s.roles = roles
	if s.err != nil {
		return nil, s.err
	}
	return s.set, nil
}

func validClaims() Claims {
	return Claims{
		"sub":        "kc-123",
		"email":      "happy@example.com",
		"given_name": "Happy",
		"realm_access": map[string]any{
			"roles": []any{"USER"},
		},
	}
}

func runMiddleware(t *testing.T, a *Authenticator, header string) (*httptest.ResponseRecorder, *shared.AuthContext) {
	t.Helper()
	var captured *shared.AuthContext
	handler := a.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = shared.AuthFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, captured
}

func TestMiddlewareHappyPath(t *testing.T) {
	provisioner := &stubProvisioner{user: users.User{ID: 7, Email: "happy@example.com", Name: "Happy Smith"}}
	resolver := &stubResolver{set: authz.NewSet(authz.AccountRead, authz.NoticeRead)}
	a := &Authenticator{
		Verifier:    stubVerifier{claims: validClaims()},
		Provisioner: provisioner,
		Resolver:    resolver,
	}

	rr, auth := runMiddleware(t, a, "Bearer some-token")

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, auth)
	assert.Equal(t, int64(7), auth.UserID)
	assert.Equal(t, "kc-123", auth.SubjectID)
	assert.Equal(t, "Happy Smith", auth.Name)
	assert.Equal(t, []string{"ACCOUNT:READ", "NOTICE:READ"}, auth.Permissions)
	assert.Equal(t, 1, provisioner.calls)
	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, []authz.Role{authz.RoleUser}, resolver.roles)
}

func TestMiddlewareMissingBearer(t *testing.T) {
	a := &Authenticator{Verifier: stubVerifier{claims: validClaims()}}

	rr, auth := runMiddleware(t, a, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, auth)

	rr, _ = runMiddleware(t, a, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMiddlewareInvalidToken(t *testing.T) {
	provisioner := &stubProvisioner{}
	a := &Authenticator{
		Verifier:    stubVerifier{err: ErrInvalidToken},
		Provisioner: provisioner,
		Resolver:    &stubResolver{},
	}

	rr, _ := runMiddleware(t, a, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Zero(t, provisioner.calls)
}

func TestMiddlewareMissingEmailSkipsStores(t *testing.T) {
	claims := validClaims()
	delete(claims, "email")
	provisioner := &stubProvisioner{}
	resolver := &stubResolver{}
	a := &Authenticator{
		Verifier:    stubVerifier{claims: claims},
		Provisioner: provisioner,
		Resolver:    resolver,
	}

	rr, _ := runMiddleware(t, a, "Bearer some-token")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Zero(t, provisioner.calls)
	assert.Zero(t, resolver.calls)
}

func TestMiddlewareProvisionerFailure(t *testing.T) {
	a := &Authenticator{
		Verifier:    stubVerifier{claims: validClaims()},
		Provisioner: &stubProvisioner{err: errors.New("db down")},
		Resolver:    &stubResolver{set: authz.NewSet(authz.AccountRead)},
	}

	rr, auth := runMiddleware(t, a, "Bearer some-token")

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Nil(t, auth)
}

func TestMiddlewareResolverFailure(t *testing.T) {
	a := &Authenticator{
		Verifier:    stubVerifier{claims: validClaims()},
		Provisioner: &stubProvisioner{user: users.User{ID: 7}},
		Resolver:    &stubResolver{err: errors.New("db down")},
	}

	rr, auth := runMiddleware(t, a, "Bearer some-token")

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Nil(t, auth)
}

func TestMiddlewareNoRolesStillAuthenticates(t *testing.T) {
	claims := validClaims()
	delete(claims, "realm_access")
	resolver := &stubResolver{set: authz.NewSet()}
	a := &Authenticator{
		Verifier:    stubVerifier{claims: claims},
		Provisioner: &stubProvisioner{user: users.User{ID: 7}},
		Resolver:    resolver,
	}

	rr, auth := runMiddleware(t, a, "Bearer some-token")

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, auth)
	assert.Empty(t, auth.Permissions)
	assert.Empty(t, resolver.roles)
}
