package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
	"github.com/yourusername/workforce-api/pkg/auth"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	jwtService, err := auth.NewJWTService("test-secret-key-of-sufficient-length", 1)
	require.NoError(t, err)
	return NewAuthService(newUserService(), jwtService)
}

func TestSignInIssuesUsableToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, SignUpInput{Email: "ivan@example.com", Password: "secret-password"})
	require.NoError(t, err)

	token, user, err := svc.SignIn(ctx, "ivan@example.com", "secret-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, created.ID, user.ID)

	resolved, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)
}

func TestSignInBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpInput{Email: "ivan@example.com", Password: "secret-password"})
	require.NoError(t, err)

	_, _, err = svc.SignIn(ctx, "ivan@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthenticateRejectsForeignToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	// Токен подписан другим секретом
	foreign, err := auth.NewJWTService("another-secret-key-of-sufficient-len", 1)
	require.NoError(t, err)
	user, err := svc.SignUp(ctx, SignUpInput{Email: "ivan@example.com", Password: "secret-password"})
	require.NoError(t, err)
	token, err := foreign.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
