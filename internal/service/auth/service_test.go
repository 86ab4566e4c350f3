package auth

import (
	"context"
	"testing"

	"github.com/akachaad/office-pulse-2026/internal/config"
	"github.com/akachaad/office-pulse-2026/internal/domain/auth"
	"github.com/akachaad/office-pulse-2026/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, username, password string) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret-key", "1h", "168h")
	return NewAuthService(config.AdminConfig{
		Username:     username,
		PasswordHash: string(hash),
	}, jwtService)
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestAuthService(t, "admin", "correct horse battery staple")

	resp, err := svc.Login(ctx, auth.LoginRequest{
		Username: "admin",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestAuthService(t, "admin", "secret")

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestAuthService(t, "admin", "secret")

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "somebody", Password: "secret"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestAuthService(t, "admin", "secret")

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestAuthService(t, "admin", "secret")

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_RejectsRevokedToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestAuthService(t, "admin", "secret")

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	svc.Logout(login.RefreshToken)

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
