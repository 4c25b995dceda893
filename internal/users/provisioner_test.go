package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-backend/internal/shared"
)

type mockRepository struct {
	byEmail map[string]User
	nextID  int64

	findError   error
	createError error
	findCalls   int
	createCalls int

	// raceOnCreate simulates a concurrent insert winning between the
	// initial miss and our create.
	raceOnCreate bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{byEmail: make(map[string]User), nextID: 1}
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	m.findCalls++
	if m.findError != nil {
		return User{}, m.findError
	}
	user, ok := m.byEmail[email]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return user, nil
}

func (m *mockRepository) Create(ctx context.Context, email, name string) (User, error) {
	m.createCalls++
	if m.createError != nil {
		return User{}, m.createError
	}
	if m.raceOnCreate {
		m.byEmail[email] = User{ID: m.nextID, Email: email, Name: "The Winner", CreatedAt: time.Now()}
		m.nextID++
		m.raceOnCreate = false
		return User{}, shared.ErrDuplicate
	}
	if _, exists := m.byEmail[email]; exists {
		return User{}, shared.ErrDuplicate
	}
	user := User{ID: m.nextID, Email: email, Name: name, CreatedAt: time.Now()}
	m.nextID++
	m.byEmail[email] = user
	return user, nil
}

type countingMetrics struct {
	provisioned int
}

func (c *countingMetrics) UserProvisioned() { c.provisioned++ }

func TestGetOrCreateFirstSightCreates(t *testing.T) {
	repo := newMockRepository()
	metrics := &countingMetrics{}
	p := NewProvisioner(repo, nil, metrics)

	user, err := p.GetOrCreate(context.Background(), Profile{Email: "happy@example.com", GivenName: "Happy", FamilyName: "Smith"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Happy Smith", user.Name)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, 1, metrics.provisioned)
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	repo := newMockRepository()
	p := NewProvisioner(repo, nil, nil)
	profile := Profile{Email: "happy@example.com", GivenName: "Happy"}

	first, err := p.GetOrCreate(context.Background(), profile)
	require.NoError(t, err)
	second, err := p.GetOrCreate(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.createCalls, "second call must not write")
}

func TestGetOrCreateExistingUserKeepsStoredName(t *testing.T) {
	repo := newMockRepository()
	repo.byEmail["happy@example.com"] = User{ID: 9, Email: "happy@example.com", Name: "Original Name"}
	p := NewProvisioner(repo, nil, nil)

	user, err := p.GetOrCreate(context.Background(), Profile{Email: "happy@example.com", GivenName: "Different"})
	require.NoError(t, err)
	assert.Equal(t, "Original Name", user.Name)
	assert.Zero(t, repo.createCalls)
}

func TestGetOrCreateLookupFailure(t *testing.T) {
	repo := newMockRepository()
	repo.findError = errors.New("db down")
	p := NewProvisioner(repo, nil, nil)

	_, err := p.GetOrCreate(context.Background(), Profile{Email: "happy@example.com"})
	require.Error(t, err)
	assert.Zero(t, repo.createCalls)
}

func TestGetOrCreateRecoversFromCreateRace(t *testing.T) {
	repo := newMockRepository()
	repo.raceOnCreate = true
	metrics := &countingMetrics{}
	p := NewProvisioner(repo, nil, metrics)

	user, err := p.GetOrCreate(context.Background(), Profile{Email: "happy@example.com", GivenName: "Loser"})
	require.NoError(t, err)
	assert.Equal(t, "The Winner", user.Name, "the winner's row is authoritative")
	assert.Equal(t, 2, repo.findCalls)
	assert.Zero(t, metrics.provisioned, "losing the race did not provision anyone")
}

func TestDisplayNamePriority(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
		want    string
	}{
		{
			name:    "full name",
			profile: Profile{Email: "h@example.com", GivenName: "Happy", FamilyName: "Smith", PreferredUsername: "hsmith"},
			want:    "Happy Smith",
		},
		{
			name:    "given name only",
			profile: Profile{Email: "h@example.com", GivenName: "Happy", PreferredUsername: "hsmith"},
			want:    "Happy",
		},
		{
			name:    "family name alone does not count",
			profile: Profile{Email: "h@example.com", FamilyName: "Smith", PreferredUsername: "hsmith"},
			want:    "hsmith",
		},
		{
			name:    "username fallback",
			profile: Profile{Email: "h@example.com", PreferredUsername: "hsmith"},
			want:    "hsmith",
		},
		{
			name:    "email local part fallback",
			profile: Profile{Email: "happy.smith@example.com"},
			want:    "happy.smith",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, displayName(tc.profile))
		})
	}
}
