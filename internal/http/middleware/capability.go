package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
)

// CapabilityMW enforces per-role capabilities on routes. It must run
// after SessionMW so the caller's role is already in the context.
type CapabilityMW struct {
	caps domain.CapabilityService
}

// NewCapabilityMW creates the capability middleware.
func NewCapabilityMW(caps domain.CapabilityService) *CapabilityMW {
	return &CapabilityMW{caps: caps}
}

// Require allows the request through only when the caller's role holds
// the (resource, action) capability.
func (m *CapabilityMW) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			c.Abort()
			return
		}

		ok, err := m.caps.Can(role, resource, action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "capability check failed"})
			c.Abort()
			return
		}
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
