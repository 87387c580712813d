package mocks

import (
	"context"

	"github.com/you/rentalfront/domain"
)

// MockReservationClient implements domain.ReservationClient for testing
type MockReservationClient struct {
	ListByStatusFunc      func(ctx context.Context, token string, status domain.ReservationStatus) ([]domain.Reservation, error)
	ListMyBranchFunc      func(ctx context.Context, token string) ([]domain.Reservation, error)
	SearchFunc            func(ctx context.Context, token, query string) ([]domain.Reservation, error)
	ListMineFunc          func(ctx context.Context, token string) ([]domain.Reservation, error)
	CreateFunc            func(ctx context.Context, token string, req domain.CreateReservationRequest) (*domain.Reservation, error)
	DeleteFunc            func(ctx context.Context, token string, id uint) error
	ConfirmFunc           func(ctx context.Context, token string, id uint) error
	MarkCompletedFunc     func(ctx context.Context, token string, id uint) error
	MarkNoShowFunc        func(ctx context.Context, token string, id uint) error
	MarkContractedFunc    func(ctx context.Context, token string, id uint) error
	ContractPrefillFunc   func(ctx context.Context, token string, id uint) (*domain.ContractDraft, error)
	ConvertToContractFunc func(ctx context.Context, token string, id uint, draft domain.ContractDraft) (*domain.Contract, error)

	ConfirmCalls        int
	DeleteCalls         int
	MarkContractedCalls int
}

// NewMockReservationClient creates a new MockReservationClient with default behaviors
func NewMockReservationClient() *MockReservationClient {
	return &MockReservationClient{}
}

func (m *MockReservationClient) ListByStatus(ctx context.Context, token string, status domain.ReservationStatus) ([]domain.Reservation, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, token, status)
	}
	return nil, nil
}

func (m *MockReservationClient) ListMyBranch(ctx context.Context, token string) ([]domain.Reservation, error) {
	if m.ListMyBranchFunc != nil {
		return m.ListMyBranchFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockReservationClient) Search(ctx context.Context, token, query string) ([]domain.Reservation, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, token, query)
	}
	return nil, nil
}

func (m *MockReservationClient) ListMine(ctx context.Context, token string) ([]domain.Reservation, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockReservationClient) Create(ctx context.Context, token string, req domain.CreateReservationRequest) (*domain.Reservation, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token, req)
	}
	return &domain.Reservation{Status: domain.ReservationPending}, nil
}

func (m *MockReservationClient) Delete(ctx context.Context, token string, id uint) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token, id)
	}
	return nil
}

func (m *MockReservationClient) Confirm(ctx context.Context, token string, id uint) error {
	m.ConfirmCalls++
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, token, id)
	}
	return nil
}

func (m *MockReservationClient) MarkCompleted(ctx context.Context, token string, id uint) error {
	if m.MarkCompletedFunc != nil {
		return m.MarkCompletedFunc(ctx, token, id)
	}
	return nil
}

func (m *MockReservationClient) MarkNoShow(ctx context.Context, token string, id uint) error {
	if m.MarkNoShowFunc != nil {
		return m.MarkNoShowFunc(ctx, token, id)
	}
	return nil
}

func (m *MockReservationClient) MarkContracted(ctx context.Context, token string, id uint) error {
	m.MarkContractedCalls++
	if m.MarkContractedFunc != nil {
		return m.MarkContractedFunc(ctx, token, id)
	}
	return nil
}

func (m *MockReservationClient) ContractPrefill(ctx context.Context, token string, id uint) (*domain.ContractDraft, error) {
	if m.ContractPrefillFunc != nil {
		return m.ContractPrefillFunc(ctx, token, id)
	}
	return &domain.ContractDraft{}, nil
}

func (m *MockReservationClient) ConvertToContract(ctx context.Context, token string, id uint, draft domain.ContractDraft) (*domain.Contract, error) {
	if m.ConvertToContractFunc != nil {
		return m.ConvertToContractFunc(ctx, token, id, draft)
	}
	return &domain.Contract{Status: domain.ContractPending, ReservationID: id}, nil
}

// Compile-time interface compliance verification
var _ domain.ReservationClient = (*MockReservationClient)(nil)
