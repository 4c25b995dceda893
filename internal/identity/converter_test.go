package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertPrefixesRoles(t *testing.T) {
	claims := Claims{
		"realm_access": map[string]any{
			"roles": []any{"USER", "MANAGER"},
		},
	}
	granted := RoleConverter{}.Convert(claims)
	assert.Equal(t, []string{"ROLE_USER", "ROLE_MANAGER"}, granted)
}

func TestConvertPassesUnknownRolesThrough(t *testing.T) {
	claims := Claims{
		"realm_access": map[string]any{
			"roles": []any{"offline_access", "USER"},
		},
	}
	granted := RoleConverter{}.Convert(claims)
	assert.Equal(t, []string{"ROLE_offline_access", "ROLE_USER"}, granted)
}

func TestConvertDeduplicates(t *testing.T) {
	claims := Claims{
		"realm_access": map[string]any{
			"roles": []any{"USER", "USER"},
		},
	}
	granted := RoleConverter{}.Convert(claims)
	assert.Equal(t, []string{"ROLE_USER"}, granted)
}

func TestConvertNoRoles(t *testing.T) {
	for name, claims := range map[string]Claims{
		"absent":    {},
		"empty":     {"realm_access": map[string]any{"roles": []any{}}},
		"malformed": {"realm_access": "oops"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, RoleConverter{}.Convert(claims))
		})
	}
}
