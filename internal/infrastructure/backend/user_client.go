package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/you/rentalfront/domain"
)

// UserClientImpl implements domain.UserClient against /api/management.
type UserClientImpl struct {
	c *Client
}

// NewUserClient creates a new management user client.
func NewUserClient(c *Client) domain.UserClient {
	return &UserClientImpl{c: c}
}

func (u *UserClientImpl) get(ctx context.Context, token, path string) (*domain.User, error) {
	var out domain.User
	if err := u.c.doJSON(ctx, http.MethodGet, path, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UserClientImpl) patch(ctx context.Context, token, path string, patch domain.UserPatch) (*domain.User, error) {
	var out domain.User
	if err := u.c.doJSON(ctx, http.MethodPatch, path, token, nil, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTenant implements domain.UserClient.
func (u *UserClientImpl) GetTenant(ctx context.Context, token string, id uint) (*domain.User, error) {
	return u.get(ctx, token, fmt.Sprintf("/api/management/tenants/%d", id))
}

// PatchTenant implements domain.UserClient.
func (u *UserClientImpl) PatchTenant(ctx context.Context, token string, id uint, patch domain.UserPatch) (*domain.User, error) {
	return u.patch(ctx, token, fmt.Sprintf("/api/management/tenants/%d", id), patch)
}

// GetPartner implements domain.UserClient.
func (u *UserClientImpl) GetPartner(ctx context.Context, token string, id uint) (*domain.User, error) {
	return u.get(ctx, token, fmt.Sprintf("/api/management/partners/%d", id))
}

// PatchPartner implements domain.UserClient.
func (u *UserClientImpl) PatchPartner(ctx context.Context, token string, id uint, patch domain.UserPatch) (*domain.User, error) {
	return u.patch(ctx, token, fmt.Sprintf("/api/management/partners/%d", id), patch)
}

// GetEmployee implements domain.UserClient.
func (u *UserClientImpl) GetEmployee(ctx context.Context, token string, id uint) (*domain.User, error) {
	return u.get(ctx, token, fmt.Sprintf("/api/management/employees/%d", id))
}

// PatchEmployeeStatus implements domain.UserClient. The new status travels
// as a query parameter, mirroring the backend route.
func (u *UserClientImpl) PatchEmployeeStatus(ctx context.Context, token string, id uint, status string) (*domain.User, error) {
	var out domain.User
	path := fmt.Sprintf("/api/management/employees/%d/status", id)
	q := url.Values{"status": {status}}
	if err := u.c.doJSON(ctx, http.MethodPatch, path, token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ domain.UserClient = (*UserClientImpl)(nil)
