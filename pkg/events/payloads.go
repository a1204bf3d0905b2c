package events

import (
	"time"

	"github.com/google/uuid"
)

// Message type discriminators carried in the "type" field of every
// published payload. Clients switch on these.
const (
	TypeAuditLog          = "audit_log"
	TypeDomainEvent       = "domain_event"
	TypeKioskNotification = "kiosk_notification"
)

// AuditLogPayload mirrors an audit_logs row as broadcast to clients.
// OccurredAt is the row's timestamp; clients use the largest value they
// have seen as the cursor for incremental sync after a reconnect.
type AuditLogPayload struct {
	Type         string         `json:"type"` // TypeAuditLog
	AuditLogID   uuid.UUID      `json:"audit_log_id"`
	UserID       uuid.UUID      `json:"user_id"`
	ActivityType string         `json:"activity_type"`
	EntityType   string         `json:"entity_type"`
	EntityID     uuid.UUID      `json:"entity_id"`
	OccurredAt   time.Time      `json:"occurred_at"`
	Meta         map[string]any `json:"meta,omitempty"`
}

// DomainEventPayload is the envelope for a domain event broadcast.
// Data holds the event struct's own JSON encoding.
type DomainEventPayload struct {
	Type       string         `json:"type"` // TypeDomainEvent
	Name       string         `json:"name"` // e.g. "TaskCompletedEvent"
	UserID     uuid.UUID      `json:"user_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// KioskNotificationPayload is a display message for kiosk devices.
// MessageHash is the hex SHA-256 of Message; kiosks use it to suppress
// duplicates delivered across reconnects.
type KioskNotificationPayload struct {
	Type        string    `json:"type"` // TypeKioskNotification
	UserID      uuid.UUID `json:"user_id"`
	Message     string    `json:"message"`
	MessageHash string    `json:"message_hash"`
	SentAt      time.Time `json:"sent_at"`
}
