package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Session events
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"
	UserLogoutEvent       AuditEventType = "USER_LOGOUT"
	ProfileUpdatedEvent   AuditEventType = "PROFILE_UPDATED"

	// Reservation workflow events
	ReservationConfirmedEvent AuditEventType = "RESERVATION_CONFIRMED"
	ReservationCancelledEvent AuditEventType = "RESERVATION_CANCELLED"
	ReservationCompletedEvent AuditEventType = "RESERVATION_COMPLETED"
	ReservationNoShowEvent    AuditEventType = "RESERVATION_NO_SHOW"
	ReservationConvertedEvent AuditEventType = "RESERVATION_CONVERTED"

	// Contract flow events
	ContractCreatedEvent        AuditEventType = "CONTRACT_CREATED"
	ContractSignedUploadedEvent AuditEventType = "CONTRACT_SIGNED_UPLOADED"
	ContractDepositPaidEvent    AuditEventType = "CONTRACT_DEPOSIT_PAID"
	ContractMomoInitiatedEvent  AuditEventType = "CONTRACT_MOMO_INITIATED"
)

// AuditEvent represents a workflow event worth an audit log line.
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	SessionID string         `json:"session_id,omitempty"`
	EntityID  uint           `json:"entity_id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Success   bool           `json:"success"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
}
