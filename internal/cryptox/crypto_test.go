package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")
	h1 := HashPassword([]byte("secret1"), salt)
	h2 := HashPassword([]byte("secret1"), salt)
	require.Len(t, h1, argonKeyLen)
	assert.Equal(t, h1, h2)
}

func TestHashPassword_SaltChangesHash(t *testing.T) {
	h1 := HashPassword([]byte("secret1"), []byte("salt-aaaa-aaaa-aa"))
	h2 := HashPassword([]byte("secret1"), []byte("salt-bbbb-bbbb-bb"))
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword(t *testing.T) {
	salt := GenerateSalt()
	require.Len(t, salt, SaltSize)

	hash := HashPassword([]byte("secret1"), salt)

	assert.True(t, VerifyPassword(hash, []byte("secret1"), salt))
	assert.False(t, VerifyPassword(hash, []byte("wrong"), salt))
	assert.False(t, VerifyPassword(hash, []byte("secret1"), GenerateSalt()))
}
