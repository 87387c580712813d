package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
)

// SessionCookie is the cookie carrying the durable session ID.
const SessionCookie = "session_id"

// SessionMW resolves the caller's durable session and makes it available
// to handlers.
type SessionMW struct {
	sessions domain.SessionService
}

// NewSessionMW creates the session middleware.
func NewSessionMW(sessions domain.SessionService) *SessionMW {
	return &SessionMW{sessions: sessions}
}

// sessionID pulls the session ID from the cookie, falling back to the
// X-Session-Id header for non-browser callers.
func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
		return id
	}
	return c.GetHeader("X-Session-Id")
}

// WithSession requires a live session. On success the session, its token
// and the user's role are set in the request context.
func (m *SessionMW) WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionID(c)
		if id == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			c.Abort()
			return
		}

		session, err := m.sessions.Current(c.Request.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSessionExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			case errors.Is(err, domain.ErrSessionNotFound):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session invalid"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session lookup failed"})
			}
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Set("session_id", session.ID)
		c.Set("token", session.Token)
		c.Set("user_role", session.User.Role)
		c.Next()
	}
}

// SessionFrom returns the session placed in the context by WithSession.
func SessionFrom(c *gin.Context) (*domain.Session, bool) {
	v, ok := c.Get("session")
	if !ok {
		return nil, false
	}
	session, ok := v.(*domain.Session)
	return session, ok
}

// TokenFrom returns the backend access token for the current session.
func TokenFrom(c *gin.Context) string {
	return c.GetString("token")
}
