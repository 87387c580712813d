package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
)

// respondErr maps domain errors onto HTTP status codes. Backend errors
// keep their original status so the caller sees what the backend said.
func respondErr(c *gin.Context, err error) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "missing": validation.Missing})
		return
	}

	var auth *domain.AuthError
	if errors.As(err, &auth) {
		// Error() falls back to a generic message when the server payload
		// carried none.
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.Error()})
		return
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.Status)
		}
		c.JSON(apiErr.Status, gin.H{"error": msg})
		return
	}

	switch {
	case errors.Is(err, domain.ErrConfirmationRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "explicit confirmation required"})
	case errors.Is(err, domain.ErrActionNotAllowed):
		c.JSON(http.StatusConflict, gin.H{"error": "action not allowed in current status"})
	case errors.Is(err, domain.ErrNoStagedFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no signed file staged"})
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session invalid"})
	case errors.Is(err, domain.ErrInsufficientRole), errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
