package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/rentalfront/domain"
	"github.com/you/rentalfront/internal/mocks"
)

func completeDraft() domain.ContractDraft {
	return domain.ContractDraft{
		BranchCode:        "B1",
		RoomNumber:        "101",
		TenantFullName:    "Tran Van A",
		TenantPhoneNumber: "+84901234567",
		TenantEmail:       "a@example.com",
		TenantCCCD:        "012345678901",
		Deposit:           5000000,
		StartDate:         "2026-09-01",
		EndDate:           "2027-08-31",
	}
}

func TestContractServiceImpl_CreateDraft(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*domain.ContractDraft)
		expectedMissing []string
	}{
		{
			name:            "complete draft is submitted",
			mutate:          func(d *domain.ContractDraft) {},
			expectedMissing: nil,
		},
		{
			name: "missing tenant identity fields fail locally",
			mutate: func(d *domain.ContractDraft) {
				d.TenantFullName = ""
				d.TenantCCCD = ""
			},
			expectedMissing: []string{"tenantFullName", "tenantCccd"},
		},
		{
			name: "missing room and end date fail locally",
			mutate: func(d *domain.ContractDraft) {
				d.RoomNumber = ""
				d.EndDate = ""
			},
			expectedMissing: []string{"roomNumber", "endDate"},
		},
		{
			name: "empty draft lists every required field",
			mutate: func(d *domain.ContractDraft) {
				*d = domain.ContractDraft{}
			},
			expectedMissing: []string{"branchCode", "roomNumber", "tenantFullName", "tenantPhoneNumber", "tenantEmail", "tenantCccd", "endDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockContractClient()
			svc := NewContractService(client)

			draft := completeDraft()
			tt.mutate(&draft)

			contract, err := svc.CreateDraft(context.Background(), "t1", draft)

			if tt.expectedMissing == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if contract == nil || contract.Status != domain.ContractPending {
					t.Fatalf("expected a pending contract, got %+v", contract)
				}
				if client.CreateCalls != 1 {
					t.Errorf("expected one create call, got %d", client.CreateCalls)
				}
				return
			}

			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(vErr.Missing) != len(tt.expectedMissing) {
				t.Fatalf("expected missing %v, got %v", tt.expectedMissing, vErr.Missing)
			}
			for i, field := range tt.expectedMissing {
				if vErr.Missing[i] != field {
					t.Errorf("missing field %d: expected %s, got %s", i, field, vErr.Missing[i])
				}
			}
			if client.CreateCalls != 0 {
				t.Error("validation failure must not reach the network")
			}
		})
	}
}

func TestContractServiceImpl_Update(t *testing.T) {
	t.Run("pending contract accepts an update", func(t *testing.T) {
		client := mocks.NewMockContractClient()
		svc := NewContractService(client)

		current := domain.Contract{ID: 3, Status: domain.ContractPending, BranchCode: "B1", RoomNumber: "101"}
		updated, err := svc.Update(context.Background(), "t1", current, completeDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated == nil {
			t.Fatal("expected an updated contract")
		}
	})

	t.Run("active contract refuses update before any call", func(t *testing.T) {
		var called bool
		client := mocks.NewMockContractClient()
		client.UpdateFunc = func(ctx context.Context, token string, id uint, draft domain.ContractDraft) (*domain.Contract, error) {
			called = true
			return nil, nil
		}
		svc := NewContractService(client)

		current := domain.Contract{ID: 3, Status: domain.ContractActive}
		_, err := svc.Update(context.Background(), "t1", current, completeDraft())
		if !errors.Is(err, domain.ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
		if called {
			t.Error("no backend call for a non-pending contract")
		}
	})

	t.Run("reservation-backed contract keeps room and branch fixed", func(t *testing.T) {
		client := mocks.NewMockContractClient()
		var sent domain.ContractDraft
		client.UpdateFunc = func(ctx context.Context, token string, id uint, draft domain.ContractDraft) (*domain.Contract, error) {
			sent = draft
			return &domain.Contract{ID: id, Status: domain.ContractPending}, nil
		}
		svc := NewContractService(client)

		current := domain.Contract{ID: 3, Status: domain.ContractPending, BranchCode: "B1", RoomNumber: "101", ReservationID: 9}
		draft := completeDraft()
		draft.BranchCode = "B9"
		draft.RoomNumber = "999"

		if _, err := svc.Update(context.Background(), "t1", current, draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent.BranchCode != "B1" || sent.RoomNumber != "101" {
			t.Errorf("room/branch must stay fixed by the reservation, sent %s/%s", sent.BranchCode, sent.RoomNumber)
		}
	})
}

func TestContractServiceImpl_SignedUpload(t *testing.T) {
	pending := domain.Contract{ID: 5, Status: domain.ContractPending}
	file := domain.StagedFile{Name: "signed.pdf", ContentType: "application/pdf", Data: []byte("signed-bytes")}

	t.Run("staging a file issues no network call", func(t *testing.T) {
		client := mocks.NewMockContractClient()
		svc := NewContractService(client)

		svc.StageSignedFile(5, file)
		if client.UploadSignedCalls != 0 {
			t.Error("staging must not touch the network")
		}
		staged, ok := svc.StagedSignedFile(5)
		if !ok || staged.Name != "signed.pdf" {
			t.Error("staged file must be retrievable for preview")
		}
	})

	t.Run("confirmation uploads exactly once and clears the staged file", func(t *testing.T) {
		client := mocks.NewMockContractClient()
		svc := NewContractService(client)

		svc.StageSignedFile(5, file)
		updated, err := svc.ConfirmSignedUpload(context.Background(), "t1", pending)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != domain.ContractSignedPendingDeposit {
			t.Errorf("expected SIGNED_PENDING_DEPOSIT, got %s", updated.Status)
		}
		if client.UploadSignedCalls != 1 {
			t.Errorf("expected exactly one upload, got %d", client.UploadSignedCalls)
		}
		if _, ok := svc.StagedSignedFile(5); ok {
			t.Error("staged file must be released after a successful upload")
		}
	})

	t.Run("confirmation without a staged file fails locally", func(t *testing.T) {
		client := mocks.NewMockContractClient()
		svc := NewContractService(client)

		_, err := svc.ConfirmSignedUpload(context.Background(), "t1", pending)
		if !errors.Is(err, domain.ErrNoStagedFile) {
			t.Fatalf("expected ErrNoStagedFile, got %v", err)
		}
		if client.UploadSignedCalls != 0 {
			t.Error("no upload without a staged file")
		}
	})

	t.Run("failed upload keeps the staged file for a retry", func(t *testing.T) {
		client := mocks.NewMockContractClient()
		client.UploadSignedFunc = func(ctx context.Context, token string, id uint, f domain.StagedFile) (*domain.Contract, error) {
			return nil, &domain.APIError{Status: 500, Message: "storage unavailable"}
		}
		svc := NewContractService(client)

		svc.StageSignedFile(5, file)
		if _, err := svc.ConfirmSignedUpload(context.Background(), "t1", pending); err == nil {
			t.Fatal("expected an error")
		}
		if _, ok := svc.StagedSignedFile(5); !ok {
			t.Error("staged file must survive a failed upload")
		}
	})

	t.Run("restaging replaces the previous file", func(t *testing.T) {
		svc := NewContractService(mocks.NewMockContractClient())

		svc.StageSignedFile(5, file)
		svc.StageSignedFile(5, domain.StagedFile{Name: "signed-v2.pdf", Data: []byte("v2")})

		staged, ok := svc.StagedSignedFile(5)
		if !ok || staged.Name != "signed-v2.pdf" {
			t.Errorf("expected the replacement file, got %+v", staged)
		}
	})

	t.Run("upload refused outside PENDING", func(t *testing.T) {
		client := mocks.NewMockContractClient()
		svc := NewContractService(client)

		svc.StageSignedFile(5, file)
		active := domain.Contract{ID: 5, Status: domain.ContractActive}
		_, err := svc.ConfirmSignedUpload(context.Background(), "t1", active)
		if !errors.Is(err, domain.ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
		if client.UploadSignedCalls != 0 {
			t.Error("no upload outside PENDING")
		}
	})
}

func TestContractServiceImpl_Deposit(t *testing.T) {
	signed := domain.Contract{ID: 5, Status: domain.ContractSignedPendingDeposit}
	pending := domain.Contract{ID: 5, Status: domain.ContractPending}

	t.Run("cash confirmation activates the contract", func(t *testing.T) {
		svc := NewContractService(mocks.NewMockContractClient())

		updated, err := svc.ConfirmDeposit(context.Background(), "t1", signed, domain.DepositCash)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != domain.ContractActive {
			t.Errorf("expected ACTIVE, got %s", updated.Status)
		}
	})

	t.Run("deposit confirmation refused while PENDING", func(t *testing.T) {
		svc := NewContractService(mocks.NewMockContractClient())

		if _, err := svc.ConfirmDeposit(context.Background(), "t1", pending, domain.DepositCash); !errors.Is(err, domain.ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("momo initiation returns the pay URL and changes nothing locally", func(t *testing.T) {
		client := mocks.NewMockContractClient()
		client.InitiateDepositMomoFunc = func(ctx context.Context, token string, id uint) (string, error) {
			return "https://payment.momo.vn/pay/abc", nil
		}
		svc := NewContractService(client)

		url, err := svc.InitiateDepositMomo(context.Background(), "t1", signed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://payment.momo.vn/pay/abc" {
			t.Errorf("unexpected pay URL %q", url)
		}
		if signed.Status != domain.ContractSignedPendingDeposit {
			t.Error("momo initiation must not patch local state")
		}
	})

	t.Run("momo initiation refused while PENDING", func(t *testing.T) {
		svc := NewContractService(mocks.NewMockContractClient())

		if _, err := svc.InitiateDepositMomo(context.Background(), "t1", pending); !errors.Is(err, domain.ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})
}
