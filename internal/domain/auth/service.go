package auth

import "context"

// AuthService authenticates the single admin credential and manages the
// token pair.
type AuthService interface {
	// Login checks the credential and issues an access/refresh pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes a refresh token.
	Logout(refreshToken string)
}
