package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/rentalfront/domain"
	"github.com/you/rentalfront/internal/mocks"
)

func pendingReservation() domain.Reservation {
	return domain.Reservation{ID: 9, ReservationCode: "RSV-009", Status: domain.ReservationPending}
}

func reservedReservation() domain.Reservation {
	return domain.Reservation{ID: 9, ReservationCode: "RSV-009", Status: domain.ReservationReserved}
}

func TestReservationServiceImpl_Approve(t *testing.T) {
	tests := []struct {
		name           string
		reservation    domain.Reservation
		setupMocks     func(*mocks.MockReservationClient)
		expectedStatus domain.ReservationStatus
		expectedError  error
		expectedCalls  int
	}{
		{
			name:           "pending reservation is confirmed and patched locally",
			reservation:    pendingReservation(),
			setupMocks:     func(client *mocks.MockReservationClient) {},
			expectedStatus: domain.ReservationReserved,
			expectedError:  nil,
			expectedCalls:  1,
		},
		{
			name:           "reserved reservation refuses confirm before any call",
			reservation:    reservedReservation(),
			setupMocks:     func(client *mocks.MockReservationClient) {},
			expectedStatus: domain.ReservationReserved,
			expectedError:  domain.ErrActionNotAllowed,
			expectedCalls:  0,
		},
		{
			name:        "backend failure leaves the local copy unchanged",
			reservation: pendingReservation(),
			setupMocks: func(client *mocks.MockReservationClient) {
				client.ConfirmFunc = func(ctx context.Context, token string, id uint) error {
					return &domain.APIError{Status: 409, Message: "already cancelled"}
				}
			},
			expectedStatus: domain.ReservationPending,
			expectedError:  &domain.APIError{Status: 409, Message: "already cancelled"},
			expectedCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockReservationClient()
			tt.setupMocks(client)

			svc := NewReservationService(client)
			got, err := svc.Approve(context.Background(), "t1", tt.reservation)

			if tt.expectedError == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if err == nil {
				t.Fatal("expected an error")
			} else if !errors.Is(err, domain.ErrActionNotAllowed) && err.Error() != tt.expectedError.Error() {
				t.Errorf("expected error %q, got %q", tt.expectedError, err)
			}
			if got.Status != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, got.Status)
			}
			if client.ConfirmCalls != tt.expectedCalls {
				t.Errorf("expected %d confirm calls, got %d", tt.expectedCalls, client.ConfirmCalls)
			}
		})
	}
}

func TestReservationServiceImpl_Cancel(t *testing.T) {
	t.Run("requires explicit confirmation before any backend call", func(t *testing.T) {
		client := mocks.NewMockReservationClient()
		svc := NewReservationService(client)

		got, err := svc.Cancel(context.Background(), "t1", pendingReservation(), false)
		if !errors.Is(err, domain.ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
		if got.Status != domain.ReservationPending {
			t.Error("local status must not change")
		}
		if client.DeleteCalls != 0 {
			t.Error("no backend call without confirmation")
		}
	})

	t.Run("confirmed cancel on reserved patches to cancelled", func(t *testing.T) {
		client := mocks.NewMockReservationClient()
		svc := NewReservationService(client)

		got, err := svc.Cancel(context.Background(), "t1", reservedReservation(), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != domain.ReservationCancelled {
			t.Errorf("expected CANCELLED, got %s", got.Status)
		}
		if client.DeleteCalls != 1 {
			t.Errorf("expected one delete call, got %d", client.DeleteCalls)
		}
	})

	t.Run("terminal reservation refuses cancel", func(t *testing.T) {
		client := mocks.NewMockReservationClient()
		svc := NewReservationService(client)

		r := domain.Reservation{ID: 9, Status: domain.ReservationCompleted}
		_, err := svc.Cancel(context.Background(), "t1", r, true)
		if !errors.Is(err, domain.ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
		if client.DeleteCalls != 0 {
			t.Error("no backend call for terminal status")
		}
	})
}

func TestReservationServiceImpl_MarkCompleted(t *testing.T) {
	client := mocks.NewMockReservationClient()
	svc := NewReservationService(client)

	got, err := svc.MarkCompleted(context.Background(), "t1", reservedReservation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.ReservationCompleted {
		t.Errorf("expected COMPLETED, got %s", got.Status)
	}

	if _, err := svc.MarkCompleted(context.Background(), "t1", pendingReservation()); !errors.Is(err, domain.ErrActionNotAllowed) {
		t.Errorf("pending reservation must not offer markCompleted, got %v", err)
	}
}

func TestReservationServiceImpl_MarkNoShow(t *testing.T) {
	client := mocks.NewMockReservationClient()
	svc := NewReservationService(client)

	got, err := svc.MarkNoShow(context.Background(), "t1", reservedReservation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.ReservationNoShow {
		t.Errorf("expected NO_SHOW, got %s", got.Status)
	}

	if _, err := svc.MarkNoShow(context.Background(), "t1", pendingReservation()); !errors.Is(err, domain.ErrActionNotAllowed) {
		t.Errorf("pending reservation must not offer markNoShow, got %v", err)
	}
}

func TestReservationServiceImpl_ConvertToContract(t *testing.T) {
	t.Run("reserved reservation converts and is marked contracted", func(t *testing.T) {
		client := mocks.NewMockReservationClient()
		svc := NewReservationService(client)

		contract, err := svc.ConvertToContract(context.Background(), "t1", reservedReservation(), domain.ContractDraft{BranchCode: "B1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contract == nil || contract.Status != domain.ContractPending {
			t.Fatalf("expected a pending contract, got %+v", contract)
		}
		if client.MarkContractedCalls != 1 {
			t.Errorf("expected one mark-contracted call, got %d", client.MarkContractedCalls)
		}
	})

	t.Run("mark-contracted failure does not undo the created contract", func(t *testing.T) {
		client := mocks.NewMockReservationClient()
		client.MarkContractedFunc = func(ctx context.Context, token string, id uint) error {
			return errors.New("conflict")
		}
		svc := NewReservationService(client)

		contract, err := svc.ConvertToContract(context.Background(), "t1", reservedReservation(), domain.ContractDraft{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contract == nil {
			t.Fatal("contract must still be returned")
		}
	})

	t.Run("pending reservation refuses conversion", func(t *testing.T) {
		client := mocks.NewMockReservationClient()
		svc := NewReservationService(client)

		_, err := svc.ConvertToContract(context.Background(), "t1", pendingReservation(), domain.ContractDraft{})
		if !errors.Is(err, domain.ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})
}

func TestReservationServiceImpl_ListRouting(t *testing.T) {
	var searched, byStatus, branch bool
	client := mocks.NewMockReservationClient()
	client.SearchFunc = func(ctx context.Context, token, query string) ([]domain.Reservation, error) {
		searched = true
		return nil, nil
	}
	client.ListByStatusFunc = func(ctx context.Context, token string, status domain.ReservationStatus) ([]domain.Reservation, error) {
		byStatus = true
		return nil, nil
	}
	client.ListMyBranchFunc = func(ctx context.Context, token string) ([]domain.Reservation, error) {
		branch = true
		return nil, nil
	}

	svc := NewReservationService(client)
	ctx := context.Background()

	svc.List(ctx, "t1", domain.ReservationFilter{Query: "alice"})
	if !searched {
		t.Error("query filter must route to search")
	}
	svc.List(ctx, "t1", domain.ReservationFilter{Status: domain.ReservationReserved})
	if !byStatus {
		t.Error("status filter must route to list-by-status")
	}
	svc.List(ctx, "t1", domain.ReservationFilter{})
	if !branch {
		t.Error("empty filter must route to my-branch")
	}
}
