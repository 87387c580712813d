package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
	"github.com/you/rentalfront/internal/http/middleware"
)

// AuthHandler exposes login, logout, registration and the current
// user's profile.
type AuthHandler struct {
	sessions domain.SessionService
	auth     domain.AuthClient
	users    domain.UserClient
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(sessions domain.SessionService, auth domain.AuthClient, users domain.UserClient) *AuthHandler {
	return &AuthHandler{sessions: sessions, auth: auth, users: users}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the backend and opens a durable session.
// The session ID is returned in the body and set as a cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	maxAge := int(session.ExpiresAt.Sub(session.CreatedAt).Seconds())
	c.SetCookie(middleware.SessionCookie, session.ID, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.ID,
		"user":      session.User,
		"expiresAt": session.ExpiresAt,
	})
}

// Logout closes the session on both sides and drops the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
		return
	}

	if err := h.sessions.Logout(c.Request.Context(), session.ID); err != nil {
		respondErr(c, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the user attached to the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": session.User})
}

// UpdateProfile patches the caller's own profile. The backend is updated
// first; the session's cached user is refreshed only on success.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
		return
	}

	var patch domain.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	token := middleware.TokenFrom(c)
	var (
		updated *domain.User
		err     error
	)
	switch session.User.Role {
	case domain.RolePartner:
		updated, err = h.users.PatchPartner(c.Request.Context(), token, session.User.ID, patch)
	default:
		updated, err = h.users.PatchTenant(c.Request.Context(), token, session.User.ID, patch)
	}
	if err != nil {
		respondErr(c, err)
		return
	}

	if _, err := h.sessions.UpdateUserInfo(c.Request.Context(), session.ID, patch); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": updated})
}

// RegisterGuest creates a guest account. No session is opened.
func (h *AuthHandler) RegisterGuest(c *gin.Context) {
	h.register(c, h.auth.RegisterGuest)
}

// RegisterPartner creates a partner account pending staff review.
func (h *AuthHandler) RegisterPartner(c *gin.Context) {
	h.register(c, h.auth.RegisterPartner)
}

// RegisterEmployee creates a staff account. The route is admin-gated.
func (h *AuthHandler) RegisterEmployee(c *gin.Context) {
	h.register(c, h.auth.RegisterEmployee)
}

func (h *AuthHandler) register(c *gin.Context, call func(ctx context.Context, req domain.RegisterRequest) error) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload"})
		return
	}
	if err := call(c.Request.Context(), req); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registration submitted"})
}
