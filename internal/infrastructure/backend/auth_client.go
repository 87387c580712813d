package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/you/rentalfront/domain"
)

// AuthClientImpl implements domain.AuthClient against /api/auth.
type AuthClientImpl struct {
	c *Client
}

// NewAuthClient creates a new auth client.
func NewAuthClient(c *Client) domain.AuthClient {
	return &AuthClientImpl{c: c}
}

// Login implements domain.AuthClient. A rejected login surfaces the
// server-provided message as a domain.AuthError.
func (a *AuthClientImpl) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	var result domain.LoginResult
	err := a.c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", nil, creds, &result)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			return nil, &domain.AuthError{Message: apiErr.Message}
		}
		return nil, err
	}
	return &result, nil
}

// Logout implements domain.AuthClient. Callers treat this as best-effort.
func (a *AuthClientImpl) Logout(ctx context.Context, token string) error {
	return a.c.doJSON(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil, nil)
}

// RegisterGuest implements domain.AuthClient.
func (a *AuthClientImpl) RegisterGuest(ctx context.Context, req domain.RegisterRequest) error {
	return a.c.doJSON(ctx, http.MethodPost, "/api/auth/register/guest", "", nil, req, nil)
}

// RegisterPartner implements domain.AuthClient.
func (a *AuthClientImpl) RegisterPartner(ctx context.Context, req domain.RegisterRequest) error {
	return a.c.doJSON(ctx, http.MethodPost, "/api/auth/register/partner", "", nil, req, nil)
}

// RegisterEmployee implements domain.AuthClient.
func (a *AuthClientImpl) RegisterEmployee(ctx context.Context, req domain.RegisterRequest) error {
	return a.c.doJSON(ctx, http.MethodPost, "/api/auth/register/employee", "", nil, req, nil)
}

var _ domain.AuthClient = (*AuthClientImpl)(nil)
