package mocks

import (
	"context"

	"github.com/you/rentalfront/domain"
)

// MockAuthClient implements domain.AuthClient for testing
type MockAuthClient struct {
	LoginFunc            func(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error)
	LogoutFunc           func(ctx context.Context, token string) error
	RegisterGuestFunc    func(ctx context.Context, req domain.RegisterRequest) error
	RegisterPartnerFunc  func(ctx context.Context, req domain.RegisterRequest) error
	RegisterEmployeeFunc func(ctx context.Context, req domain.RegisterRequest) error

	LogoutCalls int
}

// NewMockAuthClient creates a new MockAuthClient with default behaviors
func NewMockAuthClient() *MockAuthClient {
	return &MockAuthClient{}
}

// Login authenticates credentials against the backend
func (m *MockAuthClient) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	// Default behavior: rejected
	return nil, &domain.AuthError{}
}

// Logout notifies the backend of a logout
func (m *MockAuthClient) Logout(ctx context.Context, token string) error {
	m.LogoutCalls++
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// RegisterGuest registers a guest account
func (m *MockAuthClient) RegisterGuest(ctx context.Context, req domain.RegisterRequest) error {
	if m.RegisterGuestFunc != nil {
		return m.RegisterGuestFunc(ctx, req)
	}
	return nil
}

// RegisterPartner registers a partner account
func (m *MockAuthClient) RegisterPartner(ctx context.Context, req domain.RegisterRequest) error {
	if m.RegisterPartnerFunc != nil {
		return m.RegisterPartnerFunc(ctx, req)
	}
	return nil
}

// RegisterEmployee registers an employee account
func (m *MockAuthClient) RegisterEmployee(ctx context.Context, req domain.RegisterRequest) error {
	if m.RegisterEmployeeFunc != nil {
		return m.RegisterEmployeeFunc(ctx, req)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthClient = (*MockAuthClient)(nil)
