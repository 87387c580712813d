package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
	"github.com/you/rentalfront/internal/http/middleware"
)

// SystemConfigHandler exposes the singleton platform settings record.
type SystemConfigHandler struct {
	config domain.SystemConfigClient
}

// NewSystemConfigHandler creates the system-config handler.
func NewSystemConfigHandler(config domain.SystemConfigClient) *SystemConfigHandler {
	return &SystemConfigHandler{config: config}
}

// Get returns the current platform settings.
func (h *SystemConfigHandler) Get(c *gin.Context) {
	cfg, err := h.config.Get(c.Request.Context(), middleware.TokenFrom(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

// Update replaces the platform settings. Admin only, enforced at the route.
func (h *SystemConfigHandler) Update(c *gin.Context) {
	var cfg domain.SystemConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload"})
		return
	}
	updated, err := h.config.Update(c.Request.Context(), middleware.TokenFrom(c), cfg)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}
