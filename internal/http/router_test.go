package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
	"github.com/you/rentalfront/internal/http/handlers"
	"github.com/you/rentalfront/internal/http/middleware"
	"github.com/you/rentalfront/internal/infrastructure/authz"
	"github.com/you/rentalfront/internal/mocks"
	"github.com/you/rentalfront/internal/services"
)

// testRouter builds the full route table over mock services and the real
// capability enforcer, with the caller's role picked by session ID.
func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := mocks.NewMockSessionService()
	sessions.CurrentFunc = func(ctx context.Context, id string) (*domain.Session, error) {
		roles := map[string]string{
			"sess-guest":   domain.RoleGuest,
			"sess-tenant":  domain.RoleTenant,
			"sess-partner": domain.RolePartner,
			"sess-staff":   domain.RoleStaff,
			"sess-admin":   domain.RoleAdmin,
		}
		role, ok := roles[id]
		if !ok {
			return nil, domain.ErrSessionNotFound
		}
		return &domain.Session{ID: id, Token: "jwt", User: domain.User{ID: 1, Role: role}}, nil
	}

	cas, err := authz.NewCasbinService()
	if err != nil {
		t.Fatalf("casbin: %v", err)
	}
	caps := services.NewCapabilityService(cas.E)

	return BuildRouter(
		handlers.NewAuthHandler(sessions, mocks.NewMockAuthClient(), mocks.NewMockUserClient()),
		handlers.NewReservationHandler(mocks.NewMockReservationService()),
		handlers.NewContractHandler(mocks.NewMockContractService()),
		handlers.NewManagementHandler(mocks.NewMockUserClient(), caps),
		handlers.NewSystemConfigHandler(mocks.NewMockSystemConfigClient()),
		middleware.NewSessionMW(sessions),
		middleware.NewCapabilityMW(caps),
	)
}

func TestRouter_CapabilityGates(t *testing.T) {
	r := testRouter(t)

	tests := []struct {
		name    string
		session string
		method  string
		path    string
		want    int
	}{
		{"staff lists the branch dashboard", "sess-staff", http.MethodGet, "/reservations", http.StatusOK},
		{"tenant cannot reach the staff dashboard", "sess-tenant", http.MethodGet, "/reservations", http.StatusForbidden},
		{"tenant sees their own reservations", "sess-tenant", http.MethodGet, "/reservations/mine", http.StatusOK},
		{"guest sees their own reservations", "sess-guest", http.MethodGet, "/reservations/mine", http.StatusOK},
		{"partner lists branch reservations", "sess-partner", http.MethodGet, "/reservations/my-branch", http.StatusOK},
		{"staff cannot use the partner listing", "sess-staff", http.MethodGet, "/reservations/my-branch", http.StatusForbidden},
		{"partner cannot drive transitions", "sess-partner", http.MethodPost, "/reservations/1/approve", http.StatusForbidden},
		{"tenant cannot open contracts", "sess-tenant", http.MethodGet, "/contracts/1", http.StatusForbidden},
		{"staff opens contracts", "sess-staff", http.MethodGet, "/contracts/1", http.StatusOK},
		{"staff reads system config", "sess-staff", http.MethodGet, "/system-config", http.StatusOK},
		{"staff cannot write system config", "sess-staff", http.MethodPut, "/system-config", http.StatusForbidden},
		{"admin inherits the staff dashboard", "sess-admin", http.MethodGet, "/reservations", http.StatusOK},
		{"staff cannot manage employees", "sess-staff", http.MethodGet, "/management/employees/2", http.StatusForbidden},
		{"admin manages employees", "sess-admin", http.MethodGet, "/management/employees/2", http.StatusOK},
		{"tenant withdraws their own reservation", "sess-tenant", http.MethodDelete, "/reservations/1?confirm=true", http.StatusOK},
		{"staff cannot use the tenant withdrawal", "sess-staff", http.MethodDelete, "/reservations/1?confirm=true", http.StatusForbidden},
		{"no session at all is unauthorized", "", http.MethodGet, "/reservations", http.StatusUnauthorized},
		{"every role gets a dashboard", "sess-guest", http.MethodGet, "/dashboard", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.session != "" {
				req.Header.Set("X-Session-Id", tt.session)
			}
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRouter_HealthIsOpen(t *testing.T) {
	r := testRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
