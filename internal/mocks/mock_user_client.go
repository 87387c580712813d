package mocks

import (
	"context"

	"github.com/you/rentalfront/domain"
)

// MockUserClient implements domain.UserClient for testing
type MockUserClient struct {
	GetTenantFunc           func(ctx context.Context, token string, id uint) (*domain.User, error)
	PatchTenantFunc         func(ctx context.Context, token string, id uint, patch domain.UserPatch) (*domain.User, error)
	GetPartnerFunc          func(ctx context.Context, token string, id uint) (*domain.User, error)
	PatchPartnerFunc        func(ctx context.Context, token string, id uint, patch domain.UserPatch) (*domain.User, error)
	GetEmployeeFunc         func(ctx context.Context, token string, id uint) (*domain.User, error)
	PatchEmployeeStatusFunc func(ctx context.Context, token string, id uint, status string) (*domain.User, error)
}

// NewMockUserClient creates a new MockUserClient with default behaviors
func NewMockUserClient() *MockUserClient {
	return &MockUserClient{}
}

func (m *MockUserClient) GetTenant(ctx context.Context, token string, id uint) (*domain.User, error) {
	if m.GetTenantFunc != nil {
		return m.GetTenantFunc(ctx, token, id)
	}
	return &domain.User{ID: id, Role: domain.RoleTenant}, nil
}

func (m *MockUserClient) PatchTenant(ctx context.Context, token string, id uint, patch domain.UserPatch) (*domain.User, error) {
	if m.PatchTenantFunc != nil {
		return m.PatchTenantFunc(ctx, token, id, patch)
	}
	u := patch.Merge(domain.User{ID: id, Role: domain.RoleTenant})
	return &u, nil
}

func (m *MockUserClient) GetPartner(ctx context.Context, token string, id uint) (*domain.User, error) {
	if m.GetPartnerFunc != nil {
		return m.GetPartnerFunc(ctx, token, id)
	}
	return &domain.User{ID: id, Role: domain.RolePartner}, nil
}

func (m *MockUserClient) PatchPartner(ctx context.Context, token string, id uint, patch domain.UserPatch) (*domain.User, error) {
	if m.PatchPartnerFunc != nil {
		return m.PatchPartnerFunc(ctx, token, id, patch)
	}
	u := patch.Merge(domain.User{ID: id, Role: domain.RolePartner})
	return &u, nil
}

func (m *MockUserClient) GetEmployee(ctx context.Context, token string, id uint) (*domain.User, error) {
	if m.GetEmployeeFunc != nil {
		return m.GetEmployeeFunc(ctx, token, id)
	}
	return &domain.User{ID: id, Role: domain.RoleStaff}, nil
}

func (m *MockUserClient) PatchEmployeeStatus(ctx context.Context, token string, id uint, status string) (*domain.User, error) {
	if m.PatchEmployeeStatusFunc != nil {
		return m.PatchEmployeeStatusFunc(ctx, token, id, status)
	}
	return &domain.User{ID: id, Role: domain.RoleStaff}, nil
}

// Compile-time interface compliance verification
var _ domain.UserClient = (*MockUserClient)(nil)

// MockSystemConfigClient implements domain.SystemConfigClient for testing
type MockSystemConfigClient struct {
	GetFunc    func(ctx context.Context, token string) (*domain.SystemConfig, error)
	UpdateFunc func(ctx context.Context, token string, cfg domain.SystemConfig) (*domain.SystemConfig, error)
}

// NewMockSystemConfigClient creates a new MockSystemConfigClient with default behaviors
func NewMockSystemConfigClient() *MockSystemConfigClient {
	return &MockSystemConfigClient{}
}

func (m *MockSystemConfigClient) Get(ctx context.Context, token string) (*domain.SystemConfig, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, token)
	}
	return &domain.SystemConfig{}, nil
}

func (m *MockSystemConfigClient) Update(ctx context.Context, token string, cfg domain.SystemConfig) (*domain.SystemConfig, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token, cfg)
	}
	copied := cfg
	return &copied, nil
}

// Compile-time interface compliance verification
var _ domain.SystemConfigClient = (*MockSystemConfigClient)(nil)
