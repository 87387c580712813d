package services

import (
	"log"
	"time"

	"github.com/you/rentalfront/domain"
)

// logAudit writes one audit line per workflow event, in the same shape for
// every event so the lines stay grep-able.
func logAudit(eventType domain.AuditEventType, sessionID string, entityID uint, err error) {
	event := domain.AuditEvent{
		EventType: eventType,
		SessionID: sessionID,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorMsg = err.Error()
	}

	log.Printf("%s: session_id=%s entity_id=%d success=%t error=%q timestamp=%s",
		event.EventType, event.SessionID, event.EntityID, event.Success,
		event.ErrorMsg, event.Timestamp.Format(time.RFC3339))
}
