package auth_test

import (
	"encoding/hex"
	"testing"

	"retailpos/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	salt, hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	// Both outputs are hex: 16-byte salt, 32-byte SHA-256 key
	saltBytes, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, saltBytes, 16)
	hashBytes, err := hex.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, hashBytes, 32)

	assert.True(t, auth.VerifyPassword(salt, hash, "admin123"))
	assert.False(t, auth.VerifyPassword(salt, hash, "admin124"))
}

func TestHash_SaltIsUnique(t *testing.T) {
	salt1, hash1, err := auth.HashPassword("same-password")
	require.NoError(t, err)
	salt2, hash2, err := auth.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestVerify_MalformedStoredValues(t *testing.T) {
	assert.False(t, auth.VerifyPassword("zz-not-hex", "deadbeef", "pw"))
	assert.False(t, auth.VerifyPassword("deadbeef", "zz-not-hex", "pw"))
}
