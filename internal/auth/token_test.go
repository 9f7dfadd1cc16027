package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService([]byte("test-signing-key-0123456789abcdef"))
	require.NoError(t, err)
	return svc
}

func TestTokenService_IssueAndDecode(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("user@example.com", 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestTokenService_GeneratedKey(t *testing.T) {
	svc, err := NewTokenService(nil)
	require.NoError(t, err)

	token, err := svc.Issue("user@example.com", time.Minute)
	require.NoError(t, err)

	subject, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestTokenService_Decode_Expired(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("user@example.com", time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Decode_WrongKey(t *testing.T) {
	// Two services with different keys simulate a process restart with a
	// regenerated signing key.
	issuer, err := NewTokenService([]byte("old-process-key-0123456789abcdef"))
	require.NoError(t, err)
	verifier, err := NewTokenService(nil)
	require.NoError(t, err)

	token, err := issuer.Issue("user@example.com", 30*time.Minute)
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_Decode_MissingSubject(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("", 30*time.Minute)
	require.NoError(t, err)

	_, err = svc.Decode(token)
	assert.ErrorIs(t, err, ErrMalformedClaims)
}

func TestTokenService_Decode_Garbage(t *testing.T) {
	svc := newTestTokenService(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "not-a-jwt"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Decode(tt.token)
			assert.ErrorIs(t, err, ErrMalformedClaims)
		})
	}
}

func TestTokenService_Issue_DefaultTTL(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("user@example.com", 0)
	require.NoError(t, err)

	subject, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestNewRandomKey(t *testing.T) {
	first, err := NewRandomKey()
	require.NoError(t, err)
	second, err := NewRandomKey()
	require.NoError(t, err)

	assert.Len(t, first, KeySize)
	assert.NotEqual(t, first, second)
}
