package identity

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-please-rotate"

func signToken(t *testing.T, secret string, claims jwtv5.MapClaims) string {
	t.Helper()
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyValidToken(t *testing.T) {
	verifier := NewHMACVerifier(testSecret, "")
	raw := signToken(t, testSecret, jwtv5.MapClaims{
		"sub":   "kc-123",
		"email": "happy@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := verifier.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "kc-123", claims.Subject())
	email, err := claims.Email()
	require.NoError(t, err)
	assert.Equal(t, "happy@example.com", email)
}

func TestVerifyWrongSecret(t *testing.T) {
	verifier := NewHMACVerifier(testSecret, "")
	raw := signToken(t, "some-other-secret", jwtv5.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	verifier := NewHMACVerifier(testSecret, "")
	raw := signToken(t, testSecret, jwtv5.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	verifier := NewHMACVerifier(testSecret, "")
	_, err := verifier.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyIssuerCheck(t *testing.T) {
	verifier := NewHMACVerifier(testSecret, "https://idp.example.com/realms/easybank")

	raw := signToken(t, testSecret, jwtv5.MapClaims{
		"iss": "https://idp.example.com/realms/easybank",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := verifier.Verify(raw)
	assert.NoError(t, err)

	raw = signToken(t, testSecret, jwtv5.MapClaims{
		"iss": "https://evil.example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidIssuer)
}
