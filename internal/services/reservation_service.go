package services

import (
	"context"
	"fmt"
	"log"

	"github.com/you/rentalfront/domain"
)

// ReservationServiceImpl implements domain.ReservationService. The backend
// owns every status transition; this service refuses actions the mirrored
// workflow does not offer, and patches the caller's local copy only after
// the backend confirmed the call. The patch is a display convenience: if
// another staff member raced us, the next authoritative fetch wins. No
// conflict detection is attempted.
type ReservationServiceImpl struct {
	client domain.ReservationClient
}

// NewReservationService creates a new reservation workflow service.
func NewReservationService(client domain.ReservationClient) domain.ReservationService {
	return &ReservationServiceImpl{client: client}
}

// List implements domain.ReservationService. Filters are forwarded to the
// backend verbatim; an empty filter lists the caller's branch.
func (s *ReservationServiceImpl) List(ctx context.Context, token string, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	switch {
	case filter.Query != "":
		return s.client.Search(ctx, token, filter.Query)
	case filter.Status != "":
		return s.client.ListByStatus(ctx, token, filter.Status)
	default:
		return s.client.ListMyBranch(ctx, token)
	}
}

// ListMyBranch implements domain.ReservationService.
func (s *ReservationServiceImpl) ListMyBranch(ctx context.Context, token string) ([]domain.Reservation, error) {
	return s.client.ListMyBranch(ctx, token)
}

// ListMine implements domain.ReservationService.
func (s *ReservationServiceImpl) ListMine(ctx context.Context, token string) ([]domain.Reservation, error) {
	return s.client.ListMine(ctx, token)
}

// Create implements domain.ReservationService.
func (s *ReservationServiceImpl) Create(ctx context.Context, token string, req domain.CreateReservationRequest) (*domain.Reservation, error) {
	return s.client.Create(ctx, token, req)
}

// Delete implements domain.ReservationService.
func (s *ReservationServiceImpl) Delete(ctx context.Context, token string, id uint) error {
	return s.client.Delete(ctx, token, id)
}

// Approve implements domain.ReservationService.
func (s *ReservationServiceImpl) Approve(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error) {
	if !r.Status.Allows(domain.ActionConfirm) {
		return r, fmt.Errorf("confirm %s reservation: %w", r.Status, domain.ErrActionNotAllowed)
	}
	if err := s.client.Confirm(ctx, token, r.ID); err != nil {
		logAudit(domain.ReservationConfirmedEvent, "", r.ID, err)
		return r, err
	}
	r.Status = domain.ReservationReserved
	logAudit(domain.ReservationConfirmedEvent, "", r.ID, nil)
	return r, nil
}

// Cancel implements domain.ReservationService. Cancellation is irreversible
// and requires the caller to have confirmed explicitly; without that flag no
// backend call is made.
func (s *ReservationServiceImpl) Cancel(ctx context.Context, token string, r domain.Reservation, confirmed bool) (domain.Reservation, error) {
	if !confirmed {
		return r, domain.ErrConfirmationRequired
	}
	if !r.Status.Allows(domain.ActionCancel) {
		return r, fmt.Errorf("cancel %s reservation: %w", r.Status, domain.ErrActionNotAllowed)
	}
	if err := s.client.Delete(ctx, token, r.ID); err != nil {
		logAudit(domain.ReservationCancelledEvent, "", r.ID, err)
		return r, err
	}
	r.Status = domain.ReservationCancelled
	logAudit(domain.ReservationCancelledEvent, "", r.ID, nil)
	return r, nil
}

// MarkCompleted implements domain.ReservationService.
func (s *ReservationServiceImpl) MarkCompleted(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error) {
	if !r.Status.Allows(domain.ActionMarkCompleted) {
		return r, fmt.Errorf("complete %s reservation: %w", r.Status, domain.ErrActionNotAllowed)
	}
	if err := s.client.MarkCompleted(ctx, token, r.ID); err != nil {
		logAudit(domain.ReservationCompletedEvent, "", r.ID, err)
		return r, err
	}
	r.Status = domain.ReservationCompleted
	logAudit(domain.ReservationCompletedEvent, "", r.ID, nil)
	return r, nil
}

// MarkNoShow implements domain.ReservationService.
func (s *ReservationServiceImpl) MarkNoShow(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error) {
	if !r.Status.Allows(domain.ActionMarkNoShow) {
		return r, fmt.Errorf("no-show %s reservation: %w", r.Status, domain.ErrActionNotAllowed)
	}
	if err := s.client.MarkNoShow(ctx, token, r.ID); err != nil {
		logAudit(domain.ReservationNoShowEvent, "", r.ID, err)
		return r, err
	}
	r.Status = domain.ReservationNoShow
	logAudit(domain.ReservationNoShowEvent, "", r.ID, nil)
	return r, nil
}

// Prefill implements domain.ReservationService.
func (s *ReservationServiceImpl) Prefill(ctx context.Context, token string, reservationID uint) (*domain.ContractDraft, error) {
	return s.client.ContractPrefill(ctx, token, reservationID)
}

// ConvertToContract implements domain.ReservationService. Conversion does
// not change the reservation status itself; the reservation is marked
// contracted by a separate call once the contract exists, and a failure of
// that marking does not undo the created contract.
func (s *ReservationServiceImpl) ConvertToContract(ctx context.Context, token string, r domain.Reservation, draft domain.ContractDraft) (*domain.Contract, error) {
	if !r.Status.Allows(domain.ActionConvertToContract) {
		return nil, fmt.Errorf("convert %s reservation: %w", r.Status, domain.ErrActionNotAllowed)
	}

	contract, err := s.client.ConvertToContract(ctx, token, r.ID, draft)
	if err != nil {
		logAudit(domain.ReservationConvertedEvent, "", r.ID, err)
		return nil, err
	}

	if err := s.client.MarkContracted(ctx, token, r.ID); err != nil {
		log.Printf("RESERVATION_MARK_CONTRACTED_FAILED: reservation_id=%d contract_id=%d error=%v", r.ID, contract.ID, err)
	}

	logAudit(domain.ReservationConvertedEvent, "", r.ID, nil)
	return contract, nil
}

var _ domain.ReservationService = (*ReservationServiceImpl)(nil)
