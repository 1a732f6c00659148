// Package auth implements the credential format used by the users table:
// PBKDF2-SHA256 with a per-user random salt, both stored hex-encoded.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	iterations = 200_000
	keyLen     = sha256.Size
)

// HashPassword derives a new salt and PBKDF2 hash for the given password.
// Returns (saltHex, hashHex).
func HashPassword(password string) (string, string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	dk := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return hex.EncodeToString(salt), hex.EncodeToString(dk), nil
}

// VerifyPassword re-derives the hash from the stored salt and compares it to
// the stored hash in constant time.
func VerifyPassword(saltHex, hashHex, password string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	dk := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return subtle.ConstantTimeCompare(dk, stored) == 1
}
