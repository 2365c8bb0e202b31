package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userId := uuid.New()

	token, err := issuer.Issue(userId)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := issuer.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, userId, resolved)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = issuer.Resolve(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("another-secret", time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = other.Resolve(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Resolve("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = issuer.Resolve("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
