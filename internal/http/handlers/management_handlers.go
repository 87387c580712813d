package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
	"github.com/you/rentalfront/internal/http/middleware"
)

// ManagementHandler exposes staff-facing profile management and the
// role-aware dashboard.
type ManagementHandler struct {
	users domain.UserClient
	caps  domain.CapabilityService
}

// NewManagementHandler creates the management handler.
func NewManagementHandler(users domain.UserClient, caps domain.CapabilityService) *ManagementHandler {
	return &ManagementHandler{users: users, caps: caps}
}

func userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// Dashboard returns the caller's user record and the capabilities their
// role grants, which is what a client renders navigation from. For staff
// the employee profile is fetched best-effort: a backend hiccup must not
// blank the whole dashboard.
func (h *ManagementHandler) Dashboard(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
		return
	}

	user := session.User
	if user.Role == domain.RoleStaff || user.Role == domain.RoleAdmin {
		if fresh, err := h.users.GetEmployee(c.Request.Context(), middleware.TokenFrom(c), user.ID); err == nil {
			user = *fresh
		} else {
			log.Printf("DASHBOARD_PROFILE_FETCH_FAILED: session=%s user=%d err=%v", session.ID, user.ID, err)
		}
	}

	capabilities := h.caps.CapabilitiesFor(user.Role)
	if capabilities == nil {
		capabilities = [][]string{}
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "capabilities": capabilities})
}

// GetTenant returns a tenant profile.
func (h *ManagementHandler) GetTenant(c *gin.Context) {
	h.get(c, h.users.GetTenant)
}

// PatchTenant updates a tenant profile.
func (h *ManagementHandler) PatchTenant(c *gin.Context) {
	h.patch(c, h.users.PatchTenant)
}

// GetPartner returns a partner profile.
func (h *ManagementHandler) GetPartner(c *gin.Context) {
	h.get(c, h.users.GetPartner)
}

// PatchPartner updates a partner profile.
func (h *ManagementHandler) PatchPartner(c *gin.Context) {
	h.patch(c, h.users.PatchPartner)
}

// GetEmployee returns an employee profile.
func (h *ManagementHandler) GetEmployee(c *gin.Context) {
	h.get(c, h.users.GetEmployee)
}

// PatchEmployeeStatus activates or deactivates an employee account.
func (h *ManagementHandler) PatchEmployeeStatus(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	user, err := h.users.PatchEmployeeStatus(c.Request.Context(), middleware.TokenFrom(c), id, status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *ManagementHandler) get(c *gin.Context, call func(context.Context, string, uint) (*domain.User, error)) {
	id, ok := userID(c)
	if !ok {
		return
	}
	user, err := call(c.Request.Context(), middleware.TokenFrom(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *ManagementHandler) patch(c *gin.Context, call func(context.Context, string, uint, domain.UserPatch) (*domain.User, error)) {
	id, ok := userID(c)
	if !ok {
		return
	}
	var patch domain.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}
	user, err := call(c.Request.Context(), middleware.TokenFrom(c), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
