package mocks

import (
	"context"
	"io"
	"strings"

	"github.com/you/rentalfront/domain"
)

// MockSessionService implements domain.SessionService for testing
type MockSessionService struct {
	LoginFunc          func(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	LogoutFunc         func(ctx context.Context, sessionID string) error
	CurrentFunc        func(ctx context.Context, sessionID string) (*domain.Session, error)
	UpdateUserInfoFunc func(ctx context.Context, sessionID string, patch domain.UserPatch) (*domain.Session, error)
}

func NewMockSessionService() *MockSessionService { return &MockSessionService{} }

func (m *MockSessionService) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return nil, &domain.AuthError{}
}

func (m *MockSessionService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockSessionService) Current(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, sessionID)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *MockSessionService) UpdateUserInfo(ctx context.Context, sessionID string, patch domain.UserPatch) (*domain.Session, error) {
	if m.UpdateUserInfoFunc != nil {
		return m.UpdateUserInfoFunc(ctx, sessionID, patch)
	}
	return nil, domain.ErrSessionNotFound
}

var _ domain.SessionService = (*MockSessionService)(nil)

// MockReservationService implements domain.ReservationService for testing
type MockReservationService struct {
	ListFunc              func(ctx context.Context, token string, filter domain.ReservationFilter) ([]domain.Reservation, error)
	ListMyBranchFunc      func(ctx context.Context, token string) ([]domain.Reservation, error)
	ListMineFunc          func(ctx context.Context, token string) ([]domain.Reservation, error)
	CreateFunc            func(ctx context.Context, token string, req domain.CreateReservationRequest) (*domain.Reservation, error)
	DeleteFunc            func(ctx context.Context, token string, id uint) error
	ApproveFunc           func(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error)
	CancelFunc            func(ctx context.Context, token string, r domain.Reservation, confirmed bool) (domain.Reservation, error)
	MarkCompletedFunc     func(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error)
	MarkNoShowFunc        func(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error)
	PrefillFunc           func(ctx context.Context, token string, reservationID uint) (*domain.ContractDraft, error)
	ConvertToContractFunc func(ctx context.Context, token string, r domain.Reservation, draft domain.ContractDraft) (*domain.Contract, error)
}

func NewMockReservationService() *MockReservationService { return &MockReservationService{} }

func (m *MockReservationService) List(ctx context.Context, token string, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token, filter)
	}
	return nil, nil
}

func (m *MockReservationService) ListMyBranch(ctx context.Context, token string) ([]domain.Reservation, error) {
	if m.ListMyBranchFunc != nil {
		return m.ListMyBranchFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockReservationService) ListMine(ctx context.Context, token string) ([]domain.Reservation, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockReservationService) Create(ctx context.Context, token string, req domain.CreateReservationRequest) (*domain.Reservation, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token, req)
	}
	return &domain.Reservation{Status: domain.ReservationPending}, nil
}

func (m *MockReservationService) Delete(ctx context.Context, token string, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token, id)
	}
	return nil
}

func (m *MockReservationService) Approve(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error) {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, token, r)
	}
	r.Status = domain.ReservationReserved
	return r, nil
}

func (m *MockReservationService) Cancel(ctx context.Context, token string, r domain.Reservation, confirmed bool) (domain.Reservation, error) {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, token, r, confirmed)
	}
	if !confirmed {
		return r, domain.ErrConfirmationRequired
	}
	r.Status = domain.ReservationCancelled
	return r, nil
}

func (m *MockReservationService) MarkCompleted(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error) {
	if m.MarkCompletedFunc != nil {
		return m.MarkCompletedFunc(ctx, token, r)
	}
	r.Status = domain.ReservationCompleted
	return r, nil
}

func (m *MockReservationService) MarkNoShow(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error) {
	if m.MarkNoShowFunc != nil {
		return m.MarkNoShowFunc(ctx, token, r)
	}
	r.Status = domain.ReservationNoShow
	return r, nil
}

func (m *MockReservationService) Prefill(ctx context.Context, token string, reservationID uint) (*domain.ContractDraft, error) {
	if m.PrefillFunc != nil {
		return m.PrefillFunc(ctx, token, reservationID)
	}
	return &domain.ContractDraft{ReservationID: reservationID}, nil
}

func (m *MockReservationService) ConvertToContract(ctx context.Context, token string, r domain.Reservation, draft domain.ContractDraft) (*domain.Contract, error) {
	if m.ConvertToContractFunc != nil {
		return m.ConvertToContractFunc(ctx, token, r, draft)
	}
	return &domain.Contract{ID: 1, Status: domain.ContractPending, ReservationID: r.ID}, nil
}

var _ domain.ReservationService = (*MockReservationService)(nil)

// MockContractService implements domain.ContractService for testing
type MockContractService struct {
	CreateDraftFunc         func(ctx context.Context, token string, draft domain.ContractDraft) (*domain.Contract, error)
	GetFunc                 func(ctx context.Context, token string, id uint) (*domain.Contract, error)
	UpdateFunc              func(ctx context.Context, token string, current domain.Contract, draft domain.ContractDraft) (*domain.Contract, error)
	DownloadFunc            func(ctx context.Context, token string, id uint) (io.ReadCloser, string, error)
	StageSignedFileFunc     func(contractID uint, file domain.StagedFile)
	StagedSignedFileFunc    func(contractID uint) (*domain.StagedFile, bool)
	ClearStagedFileFunc     func(contractID uint)
	ConfirmSignedUploadFunc func(ctx context.Context, token string, current domain.Contract) (*domain.Contract, error)
	ConfirmDepositFunc      func(ctx context.Context, token string, current domain.Contract, method domain.DepositMethod) (*domain.Contract, error)
	InitiateDepositMomoFunc func(ctx context.Context, token string, current domain.Contract) (string, error)

	StagedFiles map[uint]domain.StagedFile
}

func NewMockContractService() *MockContractService {
	return &MockContractService{StagedFiles: make(map[uint]domain.StagedFile)}
}

func (m *MockContractService) CreateDraft(ctx context.Context, token string, draft domain.ContractDraft) (*domain.Contract, error) {
	if m.CreateDraftFunc != nil {
		return m.CreateDraftFunc(ctx, token, draft)
	}
	return &domain.Contract{ID: 1, Status: domain.ContractPending}, nil
}

func (m *MockContractService) Get(ctx context.Context, token string, id uint) (*domain.Contract, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, token, id)
	}
	return &domain.Contract{ID: id, Status: domain.ContractPending}, nil
}

func (m *MockContractService) Update(ctx context.Context, token string, current domain.Contract, draft domain.ContractDraft) (*domain.Contract, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token, current, draft)
	}
	return &current, nil
}

func (m *MockContractService) Download(ctx context.Context, token string, id uint) (io.ReadCloser, string, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, token, id)
	}
	return io.NopCloser(strings.NewReader("docx")), "application/octet-stream", nil
}

func (m *MockContractService) StageSignedFile(contractID uint, file domain.StagedFile) {
	if m.StageSignedFileFunc != nil {
		m.StageSignedFileFunc(contractID, file)
		return
	}
	m.StagedFiles[contractID] = file
}

func (m *MockContractService) StagedSignedFile(contractID uint) (*domain.StagedFile, bool) {
	if m.StagedSignedFileFunc != nil {
		return m.StagedSignedFileFunc(contractID)
	}
	file, ok := m.StagedFiles[contractID]
	if !ok {
		return nil, false
	}
	return &file, true
}

func (m *MockContractService) ClearStagedFile(contractID uint) {
	if m.ClearStagedFileFunc != nil {
		m.ClearStagedFileFunc(contractID)
		return
	}
	delete(m.StagedFiles, contractID)
}

func (m *MockContractService) ConfirmSignedUpload(ctx context.Context, token string, current domain.Contract) (*domain.Contract, error) {
	if m.ConfirmSignedUploadFunc != nil {
		return m.ConfirmSignedUploadFunc(ctx, token, current)
	}
	current.Status = domain.ContractSignedPendingDeposit
	return &current, nil
}

func (m *MockContractService) ConfirmDeposit(ctx context.Context, token string, current domain.Contract, method domain.DepositMethod) (*domain.Contract, error) {
	if m.ConfirmDepositFunc != nil {
		return m.ConfirmDepositFunc(ctx, token, current, method)
	}
	current.Status = domain.ContractActive
	return &current, nil
}

func (m *MockContractService) InitiateDepositMomo(ctx context.Context, token string, current domain.Contract) (string, error) {
	if m.InitiateDepositMomoFunc != nil {
		return m.InitiateDepositMomoFunc(ctx, token, current)
	}
	return "https://payment.example.com/pay", nil
}

var _ domain.ContractService = (*MockContractService)(nil)

// MockCapabilityService implements domain.CapabilityService for testing
type MockCapabilityService struct {
	CanFunc             func(role, resource, action string) (bool, error)
	CapabilitiesForFunc func(role string) [][]string
}

func NewMockCapabilityService() *MockCapabilityService { return &MockCapabilityService{} }

func (m *MockCapabilityService) Can(role, resource, action string) (bool, error) {
	if m.CanFunc != nil {
		return m.CanFunc(role, resource, action)
	}
	// Default behavior: allow
	return true, nil
}

func (m *MockCapabilityService) CapabilitiesFor(role string) [][]string {
	if m.CapabilitiesForFunc != nil {
		return m.CapabilitiesForFunc(role)
	}
	return nil
}

var _ domain.CapabilityService = (*MockCapabilityService)(nil)
