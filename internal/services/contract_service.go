package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/you/rentalfront/domain"
)

// ContractServiceImpl implements domain.ContractService. Besides the REST
// passthrough it owns the one piece of local state in the flow: signed
// contract files staged in memory until the user explicitly confirms the
// upload. Staging never touches the network; confirmation issues exactly
// one upload request.
type ContractServiceImpl struct {
	client domain.ContractClient

	mu     sync.Mutex
	staged map[uint]domain.StagedFile
}

// NewContractService creates a new contract flow service.
func NewContractService(client domain.ContractClient) domain.ContractService {
	return &ContractServiceImpl{
		client: client,
		staged: make(map[uint]domain.StagedFile),
	}
}

// requiredDraftFields returns the names of required fields missing from the
// draft. This is the only client-side validation in the system: it stops
// obviously incomplete submissions, nothing more.
func requiredDraftFields(draft domain.ContractDraft) []string {
	var missing []string
	check := func(value, name string) {
		if value == "" {
			missing = append(missing, name)
		}
	}
	check(draft.BranchCode, "branchCode")
	check(draft.RoomNumber, "roomNumber")
	check(draft.TenantFullName, "tenantFullName")
	check(draft.TenantPhoneNumber, "tenantPhoneNumber")
	check(draft.TenantEmail, "tenantEmail")
	check(draft.TenantCCCD, "tenantCccd")
	check(draft.EndDate, "endDate")
	return missing
}

// CreateDraft implements domain.ContractService. An incomplete draft fails
// locally with the field list before any network call.
func (s *ContractServiceImpl) CreateDraft(ctx context.Context, token string, draft domain.ContractDraft) (*domain.Contract, error) {
	if missing := requiredDraftFields(draft); len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}

	contract, err := s.client.Create(ctx, token, draft)
	logAudit(domain.ContractCreatedEvent, "", draft.ReservationID, err)
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// Get implements domain.ContractService.
func (s *ContractServiceImpl) Get(ctx context.Context, token string, id uint) (*domain.Contract, error) {
	return s.client.GetByID(ctx, token, id)
}

// Update implements domain.ContractService. Edits are offered only while
// the contract is PENDING. When the contract came from a reservation, room
// and branch stay fixed by the reservation regardless of the draft.
func (s *ContractServiceImpl) Update(ctx context.Context, token string, current domain.Contract, draft domain.ContractDraft) (*domain.Contract, error) {
	if !current.Status.Allows(domain.ContractActionUpdate) {
		return nil, fmt.Errorf("update %s contract: %w", current.Status, domain.ErrActionNotAllowed)
	}
	if current.ReservationID != 0 {
		draft.BranchCode = current.BranchCode
		draft.RoomNumber = current.RoomNumber
	}
	return s.client.Update(ctx, token, current.ID, draft)
}

// Download implements domain.ContractService.
func (s *ContractServiceImpl) Download(ctx context.Context, token string, id uint) (io.ReadCloser, string, error) {
	return s.client.Download(ctx, token, id)
}

// StageSignedFile implements domain.ContractService. Restaging replaces any
// previously staged file.
func (s *ContractServiceImpl) StageSignedFile(contractID uint, file domain.StagedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged[contractID] = file
}

// StagedSignedFile implements domain.ContractService.
func (s *ContractServiceImpl) StagedSignedFile(contractID uint) (*domain.StagedFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, ok := s.staged[contractID]
	if !ok {
		return nil, false
	}
	return &file, true
}

// ClearStagedFile implements domain.ContractService.
func (s *ContractServiceImpl) ClearStagedFile(contractID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.staged, contractID)
}

// ConfirmSignedUpload implements domain.ContractService. The staged file is
// released only after the backend accepted it, so a failed upload can be
// retried by the user without restaging.
func (s *ContractServiceImpl) ConfirmSignedUpload(ctx context.Context, token string, current domain.Contract) (*domain.Contract, error) {
	if !current.Status.Allows(domain.ContractActionUploadSigned) {
		return nil, fmt.Errorf("upload signed file for %s contract: %w", current.Status, domain.ErrActionNotAllowed)
	}

	file, ok := s.StagedSignedFile(current.ID)
	if !ok {
		return nil, domain.ErrNoStagedFile
	}

	updated, err := s.client.UploadSigned(ctx, token, current.ID, *file)
	logAudit(domain.ContractSignedUploadedEvent, "", current.ID, err)
	if err != nil {
		return nil, err
	}

	s.ClearStagedFile(current.ID)
	return updated, nil
}

// ConfirmDeposit implements domain.ContractService.
func (s *ContractServiceImpl) ConfirmDeposit(ctx context.Context, token string, current domain.Contract, method domain.DepositMethod) (*domain.Contract, error) {
	if !current.Status.Allows(domain.ContractActionConfirmDeposit) {
		return nil, fmt.Errorf("confirm deposit for %s contract: %w", current.Status, domain.ErrActionNotAllowed)
	}

	updated, err := s.client.ConfirmDeposit(ctx, token, current.ID, method)
	logAudit(domain.ContractDepositPaidEvent, "", current.ID, err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// InitiateDepositMomo implements domain.ContractService. Returns the
// external pay URL and changes nothing locally; the ACTIVE transition is
// observed through a later fetch once the payment notification lands on
// the backend.
func (s *ContractServiceImpl) InitiateDepositMomo(ctx context.Context, token string, current domain.Contract) (string, error) {
	if !current.Status.Allows(domain.ContractActionInitiateMomo) {
		return "", fmt.Errorf("initiate momo deposit for %s contract: %w", current.Status, domain.ErrActionNotAllowed)
	}

	payURL, err := s.client.InitiateDepositMomo(ctx, token, current.ID)
	logAudit(domain.ContractMomoInitiatedEvent, "", current.ID, err)
	if err != nil {
		return "", err
	}
	return payURL, nil
}

var _ domain.ContractService = (*ContractServiceImpl)(nil)
