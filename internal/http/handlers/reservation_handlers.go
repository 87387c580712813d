package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
	"github.com/you/rentalfront/internal/http/middleware"
)

// ReservationHandler exposes the reservation dashboards and the staff
// workflow actions. Every response item carries the actions its current
// status offers, so views never have to guess.
type ReservationHandler struct {
	reservations domain.ReservationService
}

// NewReservationHandler creates the reservation handler.
func NewReservationHandler(reservations domain.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// reservationView is a reservation plus the actions its status offers.
type reservationView struct {
	domain.Reservation
	AllowedActions []domain.ReservationAction `json:"allowedActions"`
}

func viewOf(r domain.Reservation) reservationView {
	acts := r.Status.Actions()
	if acts == nil {
		acts = []domain.ReservationAction{}
	}
	return reservationView{Reservation: r, AllowedActions: acts}
}

func viewsOf(rs []domain.Reservation) []reservationView {
	out := make([]reservationView, 0, len(rs))
	for _, r := range rs {
		out = append(out, viewOf(r))
	}
	return out
}

// transitionRequest carries the view's local copy of the reservation so
// the workflow gate runs against what the caller is looking at.
type transitionRequest struct {
	Status  domain.ReservationStatus `json:"status" binding:"required"`
	Confirm bool                     `json:"confirm"`
}

func reservationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return 0, false
	}
	return uint(id), true
}

// List serves the staff dashboard: ?q= searches, ?status= filters, and
// with neither the caller's whole branch is listed.
func (h *ReservationHandler) List(c *gin.Context) {
	filter := domain.ReservationFilter{
		Status: domain.ReservationStatus(c.Query("status")),
		Query:  c.Query("q"),
	}
	list, err := h.reservations.List(c.Request.Context(), middleware.TokenFrom(c), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": viewsOf(list)})
}

// ListMyBranch serves the partner dashboard: every reservation for the
// rooms of the partner's branch.
func (h *ReservationHandler) ListMyBranch(c *gin.Context) {
	list, err := h.reservations.ListMyBranch(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": viewsOf(list)})
}

// ListMine serves the tenant dashboard.
func (h *ReservationHandler) ListMine(c *gin.Context) {
	list, err := h.reservations.ListMine(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": viewsOf(list)})
}

// Create books a visit slot for a room.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req domain.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation payload"})
		return
	}
	created, err := h.reservations.Create(c.Request.Context(), middleware.TokenFrom(c), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": viewOf(*created)})
}

// Delete withdraws the caller's own reservation. Like staff cancellation
// it demands confirm=true, here as a query parameter.
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	if c.Query("confirm") != "true" {
		respondErr(c, domain.ErrConfirmationRequired)
		return
	}
	if err := h.reservations.Delete(c.Request.Context(), middleware.TokenFrom(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation cancelled"})
}

// Approve confirms a pending reservation.
func (h *ReservationHandler) Approve(c *gin.Context) {
	h.transition(c, func(c *gin.Context, r domain.Reservation, _ bool) (domain.Reservation, error) {
		return h.reservations.Approve(c.Request.Context(), middleware.TokenFrom(c), r)
	})
}

// Cancel cancels a reservation. The request must carry confirm=true;
// the flag is the API twin of the user clicking through the dialog.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, r domain.Reservation, confirmed bool) (domain.Reservation, error) {
		return h.reservations.Cancel(c.Request.Context(), middleware.TokenFrom(c), r, confirmed)
	})
}

// MarkCompleted records that the visit happened.
func (h *ReservationHandler) MarkCompleted(c *gin.Context) {
	h.transition(c, func(c *gin.Context, r domain.Reservation, _ bool) (domain.Reservation, error) {
		return h.reservations.MarkCompleted(c.Request.Context(), middleware.TokenFrom(c), r)
	})
}

// MarkNoShow records that the visitor never came.
func (h *ReservationHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, func(c *gin.Context, r domain.Reservation, _ bool) (domain.Reservation, error) {
		return h.reservations.MarkNoShow(c.Request.Context(), middleware.TokenFrom(c), r)
	})
}

func (h *ReservationHandler) transition(c *gin.Context, run func(*gin.Context, domain.Reservation, bool) (domain.Reservation, error)) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current status is required"})
		return
	}

	updated, err := run(c, domain.Reservation{ID: id, Status: req.Status}, req.Confirm)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": viewOf(updated)})
}

// Prefill fetches the contract draft the backend derives from a
// reservation, for the convert-to-contract form.
func (h *ReservationHandler) Prefill(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	draft, err := h.reservations.Prefill(c.Request.Context(), middleware.TokenFrom(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": draft})
}

type convertRequest struct {
	Status domain.ReservationStatus `json:"status" binding:"required"`
	Draft  domain.ContractDraft     `json:"draft"`
}

// Convert turns a reserved reservation into a contract.
func (h *ReservationHandler) Convert(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current status and draft are required"})
		return
	}

	contract, err := h.reservations.ConvertToContract(c.Request.Context(), middleware.TokenFrom(c),
		domain.Reservation{ID: id, Status: req.Status}, req.Draft)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": contract})
}
