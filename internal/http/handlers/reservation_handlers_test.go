package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
	"github.com/you/rentalfront/internal/http/middleware"
	"github.com/you/rentalfront/internal/mocks"
)

func reservationRouter(svc *mocks.MockReservationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := mocks.NewMockSessionService()
	sessions.CurrentFunc = func(ctx context.Context, id string) (*domain.Session, error) {
		return &domain.Session{ID: id, Token: "jwt", User: domain.User{ID: 1, Role: domain.RoleStaff}}, nil
	}
	sess := middleware.NewSessionMW(sessions)
	h := NewReservationHandler(svc)

	r := gin.New()
	grp := r.Group("/reservations").Use(sess.WithSession())
	grp.GET("", h.List)
	grp.GET("/mine", h.ListMine)
	grp.POST("", h.Create)
	grp.DELETE("/:id", h.Delete)
	grp.POST("/:id/approve", h.Approve)
	grp.POST("/:id/cancel", h.Cancel)
	grp.POST("/:id/mark-completed", h.MarkCompleted)
	grp.GET("/:id/contract-prefill", h.Prefill)
	grp.POST("/:id/convert", h.Convert)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body == "" {
		buf = bytes.NewBuffer(nil)
	} else {
		buf = bytes.NewBufferString(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", "sess_1_1")
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return body
}

// Each listed reservation carries exactly the actions its status offers,
// which is what a view renders buttons from.
func TestReservationHandler_ListEmbedsAllowedActions(t *testing.T) {
	svc := mocks.NewMockReservationService()
	svc.ListFunc = func(ctx context.Context, token string, filter domain.ReservationFilter) ([]domain.Reservation, error) {
		return []domain.Reservation{
			{ID: 1, Status: domain.ReservationPending},
			{ID: 2, Status: domain.ReservationReserved},
			{ID: 3, Status: domain.ReservationCompleted},
		}, nil
	}
	r := reservationRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/reservations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	items := decodeData(t, w)["data"].([]any)
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}

	actionsOf := func(i int) []any {
		return items[i].(map[string]any)["allowedActions"].([]any)
	}
	contains := func(acts []any, want string) bool {
		for _, a := range acts {
			if a == want {
				return true
			}
		}
		return false
	}

	if !contains(actionsOf(0), "confirm") || !contains(actionsOf(0), "cancel") {
		t.Errorf("pending actions = %v", actionsOf(0))
	}
	if contains(actionsOf(1), "confirm") {
		t.Errorf("reserved item must not offer confirm: %v", actionsOf(1))
	}
	if !contains(actionsOf(1), "convertToContract") {
		t.Errorf("reserved actions = %v", actionsOf(1))
	}
	if len(actionsOf(2)) != 0 {
		t.Errorf("completed item must offer no actions, got %v", actionsOf(2))
	}
}

func TestReservationHandler_ListForwardsFilter(t *testing.T) {
	svc := mocks.NewMockReservationService()
	var got domain.ReservationFilter
	svc.ListFunc = func(ctx context.Context, token string, filter domain.ReservationFilter) ([]domain.Reservation, error) {
		got = filter
		return nil, nil
	}
	r := reservationRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/reservations?status=RESERVED&q=0901", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got.Status != domain.ReservationReserved || got.Query != "0901" {
		t.Errorf("filter = %+v", got)
	}
}

func TestReservationHandler_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		setupMocks func(*mocks.MockReservationService)
		wantStatus int
	}{
		{
			name:       "approve pending succeeds",
			path:       "/reservations/5/approve",
			body:       `{"status":"PENDING_CONFIRMATION"}`,
			setupMocks: func(m *mocks.MockReservationService) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "approve outside pending maps to conflict",
			path: "/reservations/5/approve",
			body: `{"status":"RESERVED"}`,
			setupMocks: func(m *mocks.MockReservationService) {
				m.ApproveFunc = func(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error) {
					return r, domain.ErrActionNotAllowed
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "cancel without the confirm flag is refused",
			path:       "/reservations/5/cancel",
			body:       `{"status":"PENDING_CONFIRMATION"}`,
			setupMocks: func(m *mocks.MockReservationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "cancel with confirm goes through",
			path:       "/reservations/5/cancel",
			body:       `{"status":"PENDING_CONFIRMATION","confirm":true}`,
			setupMocks: func(m *mocks.MockReservationService) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing status is a bad request",
			path:       "/reservations/5/approve",
			body:       `{}`,
			setupMocks: func(m *mocks.MockReservationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric id is a bad request",
			path:       "/reservations/abc/approve",
			body:       `{"status":"PENDING_CONFIRMATION"}`,
			setupMocks: func(m *mocks.MockReservationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "backend refusal keeps its status code",
			path: "/reservations/5/mark-completed",
			body: `{"status":"RESERVED"}`,
			setupMocks: func(m *mocks.MockReservationService) {
				m.MarkCompletedFunc = func(ctx context.Context, token string, r domain.Reservation) (domain.Reservation, error) {
					return r, &domain.APIError{Status: http.StatusConflict, Message: "already completed"}
				}
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockReservationService()
			tt.setupMocks(svc)
			r := reservationRouter(svc)

			w := doJSON(t, r, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

// A backend error with an undecodable body still produces a readable
// message, not an empty string.
func TestReservationHandler_BackendErrorWithoutMessageGetsFallback(t *testing.T) {
	svc := mocks.NewMockReservationService()
	svc.MarkCompletedFunc = func(ctx context.Context, token string, res domain.Reservation) (domain.Reservation, error) {
		return res, &domain.APIError{Status: http.StatusBadGateway}
	}
	r := reservationRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/reservations/5/mark-completed", `{"status":"RESERVED"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if msg := decodeData(t, w)["error"]; msg != "Bad Gateway" {
		t.Errorf("error = %q, want the status text fallback", msg)
	}
}

func TestReservationHandler_DeleteRequiresConfirm(t *testing.T) {
	svc := mocks.NewMockReservationService()
	deleted := 0
	svc.DeleteFunc = func(ctx context.Context, token string, id uint) error {
		deleted++
		return nil
	}
	r := reservationRouter(svc)

	w := doJSON(t, r, http.MethodDelete, "/reservations/5", "")
	if w.Code != http.StatusBadRequest || deleted != 0 {
		t.Fatalf("without confirm: status = %d deleted = %d", w.Code, deleted)
	}

	w = doJSON(t, r, http.MethodDelete, "/reservations/5?confirm=true", "")
	if w.Code != http.StatusOK || deleted != 1 {
		t.Fatalf("with confirm: status = %d deleted = %d", w.Code, deleted)
	}
}

func TestReservationHandler_ConvertReturnsContract(t *testing.T) {
	svc := mocks.NewMockReservationService()
	var gotDraft domain.ContractDraft
	svc.ConvertToContractFunc = func(ctx context.Context, token string, res domain.Reservation, draft domain.ContractDraft) (*domain.Contract, error) {
		gotDraft = draft
		return &domain.Contract{ID: 9, Status: domain.ContractPending, ReservationID: res.ID}, nil
	}
	r := reservationRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/reservations/5/convert",
		`{"status":"RESERVED","draft":{"branchCode":"B1","roomNumber":"101"}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotDraft.BranchCode != "B1" || gotDraft.RoomNumber != "101" {
		t.Errorf("draft = %+v", gotDraft)
	}
	data := decodeData(t, w)["data"].(map[string]any)
	if data["reservationId"] != float64(5) {
		t.Errorf("reservationId = %v, want 5", data["reservationId"])
	}
}
