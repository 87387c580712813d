package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/you/rentalfront/domain"
)

// ReservationClientImpl implements domain.ReservationClient against
// /api/reservations.
type ReservationClientImpl struct {
	c *Client
}

// NewReservationClient creates a new reservation client.
func NewReservationClient(c *Client) domain.ReservationClient {
	return &ReservationClientImpl{c: c}
}

// ListByStatus implements domain.ReservationClient.
func (r *ReservationClientImpl) ListByStatus(ctx context.Context, token string, status domain.ReservationStatus) ([]domain.Reservation, error) {
	var out []domain.Reservation
	path := fmt.Sprintf("/api/reservations/status/%s", status)
	if err := r.c.doJSON(ctx, http.MethodGet, path, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyBranch implements domain.ReservationClient.
func (r *ReservationClientImpl) ListMyBranch(ctx context.Context, token string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := r.c.doJSON(ctx, http.MethodGet, "/api/reservations/my-branch", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search implements domain.ReservationClient. The query is forwarded
// verbatim; the backend performs the filtering.
func (r *ReservationClientImpl) Search(ctx context.Context, token, query string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	q := url.Values{"q": {query}}
	if err := r.c.doJSON(ctx, http.MethodGet, "/api/reservations/search", token, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMine implements domain.ReservationClient.
func (r *ReservationClientImpl) ListMine(ctx context.Context, token string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := r.c.doJSON(ctx, http.MethodGet, "/api/reservations/my-reservations", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create implements domain.ReservationClient.
func (r *ReservationClientImpl) Create(ctx context.Context, token string, req domain.CreateReservationRequest) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := r.c.doJSON(ctx, http.MethodPost, "/api/reservations", token, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete implements domain.ReservationClient.
func (r *ReservationClientImpl) Delete(ctx context.Context, token string, id uint) error {
	return r.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", id), token, nil, nil, nil)
}

// Confirm implements domain.ReservationClient.
func (r *ReservationClientImpl) Confirm(ctx context.Context, token string, id uint) error {
	return r.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/reservations/%d/confirm", id), token, nil, nil, nil)
}

// MarkCompleted implements domain.ReservationClient.
func (r *ReservationClientImpl) MarkCompleted(ctx context.Context, token string, id uint) error {
	return r.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/reservations/%d/mark-completed", id), token, nil, nil, nil)
}

// MarkNoShow implements domain.ReservationClient.
func (r *ReservationClientImpl) MarkNoShow(ctx context.Context, token string, id uint) error {
	return r.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/reservations/%d/mark-no-show", id), token, nil, nil, nil)
}

// MarkContracted implements domain.ReservationClient.
func (r *ReservationClientImpl) MarkContracted(ctx context.Context, token string, id uint) error {
	return r.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/reservations/%d/mark-contracted", id), token, nil, nil, nil)
}

// ContractPrefill implements domain.ReservationClient.
func (r *ReservationClientImpl) ContractPrefill(ctx context.Context, token string, id uint) (*domain.ContractDraft, error) {
	var out domain.ContractDraft
	path := fmt.Sprintf("/api/reservations/%d/contract-prefill", id)
	if err := r.c.doJSON(ctx, http.MethodGet, path, token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConvertToContract implements domain.ReservationClient.
func (r *ReservationClientImpl) ConvertToContract(ctx context.Context, token string, id uint, draft domain.ContractDraft) (*domain.Contract, error) {
	var out domain.Contract
	path := fmt.Sprintf("/api/reservations/%d/convert-to-contract", id)
	if err := r.c.doJSON(ctx, http.MethodPost, path, token, nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ domain.ReservationClient = (*ReservationClientImpl)(nil)
