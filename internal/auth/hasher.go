package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword derives the stored digest for a plaintext password: the
// SHA-256 of its UTF-8 bytes as lowercase hex. Deterministic and unsalted,
// so the same password always yields the same digest.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether plaintext hashes to the stored digest.
func VerifyPassword(plaintext, digest string) bool {
	return hmac.Equal([]byte(HashPassword(plaintext)), []byte(digest))
}
