// Package auth wraps the authentication endpoints of the LowCode API:
// login, logout, registration, token refresh and verification, and
// password management.
package auth

import (
	"context"
	"fmt"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

// Module is the metrics and tracing label for authentication calls
const Module = "auth"

// API issues authentication requests
type API struct {
	*base.Client
}

// New returns an auth module bound to the base URL and token of c
func New(c *base.Client) *API {
	return &API{Client: c.Clone(base.WithModule(Module))}
}

// NewAPI validates baseURL and token and creates an auth module
func NewAPI(baseURL, token string, opts ...base.ClientOption) (*API, error) {
	c, err := base.NewClient(baseURL, token, opts...)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (a *API) String() string {
	return fmt.Sprintf("AuthAPI(base_url=%s)", a.BaseURL())
}

func (a *API) GoString() string {
	return a.String()
}

// Login exchanges credentials for a session token
func (a *API) Login(ctx context.Context, username, password string) (base.Response, error) {
	return a.Post(ctx, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
}

// Logout invalidates the current session
func (a *API) Logout(ctx context.Context) (base.Response, error) {
	return a.Post(ctx, "/auth/logout", nil)
}

// Register creates a new account
func (a *API) Register(ctx context.Context, username, email, password string) (base.Response, error) {
	return a.Post(ctx, "/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

// RefreshToken trades a refresh token for a new access token
func (a *API) RefreshToken(ctx context.Context, refreshToken string) (base.Response, error) {
	return a.Post(ctx, "/auth/refresh", map[string]string{
		"refresh_token": refreshToken,
	})
}

// VerifyToken checks that the bearer token is still accepted
func (a *API) VerifyToken(ctx context.Context) (base.Response, error) {
	return a.Get(ctx, "/auth/verify")
}

func (a *API) ChangePassword(ctx context.Context, oldPassword, newPassword string) (base.Response, error) {
	return a.Post(ctx, "/auth/change-password", map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	})
}

// ResetPassword asks the API to send a reset link to email
func (a *API) ResetPassword(ctx context.Context, email string) (base.Response, error) {
	return a.Post(ctx, "/auth/reset-password", map[string]string{
		"email": email,
	})
}
