package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/akachaad/office-pulse-2026/internal/config"
	"github.com/akachaad/office-pulse-2026/internal/domain/auth"
	"github.com/akachaad/office-pulse-2026/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	admin config.AdminConfig
	jwt.Service
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		admin:   admin,
		Service: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.admin.Username)) != 1 {
		// Burn a comparison anyway so an unknown username costs the same
		// as a wrong password.
		bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(req.Password))
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, _, err := a.GenerateRefreshToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	username, err := a.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresAt, err := a.GenerateAccessToken(username)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(refreshToken string) {
	a.RevokeToken(refreshToken)
}
