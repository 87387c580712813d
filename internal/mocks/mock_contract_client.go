package mocks

import (
	"context"
	"io"
	"strings"

	"github.com/you/rentalfront/domain"
)

// MockContractClient implements domain.ContractClient for testing
type MockContractClient struct {
	CreateFunc              func(ctx context.Context, token string, draft domain.ContractDraft) (*domain.Contract, error)
	GetByIDFunc             func(ctx context.Context, token string, id uint) (*domain.Contract, error)
	UpdateFunc              func(ctx context.Context, token string, id uint, draft domain.ContractDraft) (*domain.Contract, error)
	DownloadFunc            func(ctx context.Context, token string, id uint) (io.ReadCloser, string, error)
	UploadSignedFunc        func(ctx context.Context, token string, id uint, file domain.StagedFile) (*domain.Contract, error)
	ConfirmDepositFunc      func(ctx context.Context, token string, id uint, method domain.DepositMethod) (*domain.Contract, error)
	InitiateDepositMomoFunc func(ctx context.Context, token string, id uint) (string, error)

	CreateCalls       int
	UploadSignedCalls int
}

// NewMockContractClient creates a new MockContractClient with default behaviors
func NewMockContractClient() *MockContractClient {
	return &MockContractClient{}
}

func (m *MockContractClient) Create(ctx context.Context, token string, draft domain.ContractDraft) (*domain.Contract, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token, draft)
	}
	return &domain.Contract{ID: 1, Status: domain.ContractPending, BranchCode: draft.BranchCode, RoomNumber: draft.RoomNumber, ReservationID: draft.ReservationID}, nil
}

func (m *MockContractClient) GetByID(ctx context.Context, token string, id uint) (*domain.Contract, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, token, id)
	}
	return &domain.Contract{ID: id, Status: domain.ContractPending}, nil
}

func (m *MockContractClient) Update(ctx context.Context, token string, id uint, draft domain.ContractDraft) (*domain.Contract, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token, id, draft)
	}
	return &domain.Contract{ID: id, Status: domain.ContractPending, BranchCode: draft.BranchCode, RoomNumber: draft.RoomNumber}, nil
}

func (m *MockContractClient) Download(ctx context.Context, token string, id uint) (io.ReadCloser, string, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, token, id)
	}
	return io.NopCloser(strings.NewReader("docx")), "application/octet-stream", nil
}

func (m *MockContractClient) UploadSigned(ctx context.Context, token string, id uint, file domain.StagedFile) (*domain.Contract, error) {
	m.UploadSignedCalls++
	if m.UploadSignedFunc != nil {
		return m.UploadSignedFunc(ctx, token, id, file)
	}
	return &domain.Contract{ID: id, Status: domain.ContractSignedPendingDeposit}, nil
}

func (m *MockContractClient) ConfirmDeposit(ctx context.Context, token string, id uint, method domain.DepositMethod) (*domain.Contract, error) {
	if m.ConfirmDepositFunc != nil {
		return m.ConfirmDepositFunc(ctx, token, id, method)
	}
	return &domain.Contract{ID: id, Status: domain.ContractActive}, nil
}

func (m *MockContractClient) InitiateDepositMomo(ctx context.Context, token string, id uint) (string, error) {
	if m.InitiateDepositMomoFunc != nil {
		return m.InitiateDepositMomoFunc(ctx, token, id)
	}
	return "https://payment.example.com/pay", nil
}

// Compile-time interface compliance verification
var _ domain.ContractClient = (*MockContractClient)(nil)
