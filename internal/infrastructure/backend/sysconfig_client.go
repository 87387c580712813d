package backend

import (
	"context"
	"net/http"

	"github.com/you/rentalfront/domain"
)

// SystemConfigClientImpl implements domain.SystemConfigClient.
type SystemConfigClientImpl struct {
	c *Client
}

// NewSystemConfigClient creates a new system-config client.
func NewSystemConfigClient(c *Client) domain.SystemConfigClient {
	return &SystemConfigClientImpl{c: c}
}

// Get implements domain.SystemConfigClient.
func (s *SystemConfigClientImpl) Get(ctx context.Context, token string) (*domain.SystemConfig, error) {
	var out domain.SystemConfig
	if err := s.c.doJSON(ctx, http.MethodGet, "/api/system-config", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update implements domain.SystemConfigClient. Last write wins server-side.
func (s *SystemConfigClientImpl) Update(ctx context.Context, token string, cfg domain.SystemConfig) (*domain.SystemConfig, error) {
	var out domain.SystemConfig
	if err := s.c.doJSON(ctx, http.MethodPut, "/api/system-config", token, nil, cfg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ domain.SystemConfigClient = (*SystemConfigClientImpl)(nil)
