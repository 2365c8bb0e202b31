package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)
	require.NotEqual(t, "secret-password", hash)

	assert.True(t, VerifyPassword("secret-password", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
	assert.False(t, VerifyPassword("secret-password", "not-a-bcrypt-hash"))
}

func TestPasswordHashing_UniqueSalts(t *testing.T) {
	first, err := HashPassword("secret-password")
	require.NoError(t, err)
	second, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
