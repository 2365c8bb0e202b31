package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilhoshin/aissam/internal/dto"
	"github.com/kilhoshin/aissam/internal/pkg/auth"
)

func newAuthService(factory *fakeFactory) IAuthService {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewAuthService(factory, issuer, nil, nopLogger{})
}

func TestAuthService_Register(t *testing.T) {
	factory := newFakeFactory()
	svc := newAuthService(factory)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "student@example.com",
		Name:     "김철수",
		Password: "secret-password",
		Grade:    "grade2",
	})
	require.NoError(t, err)

	assert.Equal(t, "student@example.com", resp.Email)
	assert.Equal(t, "김철수", resp.Name)
	assert.Equal(t, "grade2", resp.Grade)

	require.Len(t, factory.store.users, 1)
	stored := factory.store.users[0]
	assert.NotEqual(t, "secret-password", stored.PasswordHash)
	assert.True(t, auth.VerifyPassword("secret-password", stored.PasswordHash))
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	factory := newFakeFactory()
	svc := newAuthService(factory)

	req := &dto.RegisterRequest{
		Email:    "student@example.com",
		Name:     "김철수",
		Password: "secret-password",
		Grade:    "grade1",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, factory.store.users, 1)
}

func TestAuthService_Login(t *testing.T) {
	factory := newFakeFactory()
	svc := newAuthService(factory)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "student@example.com",
		Name:     "김철수",
		Password: "secret-password",
		Grade:    "grade3",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "student@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	userId, err := issuer.Resolve(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, factory.store.users[0].Id, userId)
}

func TestAuthService_LoginBadCredentials(t *testing.T) {
	factory := newFakeFactory()
	svc := newAuthService(factory)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "student@example.com",
		Name:     "김철수",
		Password: "secret-password",
		Grade:    "grade1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "student@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "unknown@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
