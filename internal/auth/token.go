package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when Issue is called with a non-positive TTL.
const DefaultTokenTTL = 15 * time.Minute

// KeySize is the length in bytes of a generated signing key (256 bits).
const KeySize = 32

// Token decode errors
var (
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrMalformedClaims  = errors.New("token claims malformed")
)

// TokenService issues and decodes HS256-signed bearer tokens. The signing
// key is fixed at construction and held in memory only; tokens signed with
// a previous key (e.g. before a restart) fail with ErrInvalidSignature.
type TokenService struct {
	key []byte
}

// NewTokenService creates a token service signing with the given key.
// An empty key gets replaced with a freshly generated random one, which
// invalidates all tokens issued by earlier processes.
func NewTokenService(key []byte) (*TokenService, error) {
	if len(key) == 0 {
		generated, err := NewRandomKey()
		if err != nil {
			return nil, err
		}
		key = generated
	}
	return &TokenService{key: key}, nil
}

// NewRandomKey returns a cryptographically random 256-bit signing key.
func NewRandomKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return key, nil
}

// Issue signs a token asserting the subject until now+ttl. A non-positive
// ttl falls back to DefaultTokenTTL.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Decode validates a token against the current key and returns its subject.
// Failures are one of ErrInvalidSignature, ErrTokenExpired or
// ErrMalformedClaims.
func (s *TokenService) Decode(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return s.key, nil
	})

	switch {
	case err == nil && token.Valid:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", ErrMalformedClaims
	default:
		return "", ErrInvalidSignature
	}

	if claims.Subject == "" {
		return "", ErrMalformedClaims
	}

	return claims.Subject, nil
}
