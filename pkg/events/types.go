// Package events provides real-time event delivery via PostgreSQL
// NOTIFY/LISTEN for cross-pod distribution.
//
// Three per-user channels exist, differing in persistence:
//
//   - "user:{id}:auditlog" — audit log entries. NOTIFY only: the entry
//     itself is written to the audit_logs table inside the originating
//     write transaction, so the channel carries no additional state.
//     Reconnecting clients recover missed entries by timestamp via the
//     sync protocol, not from the events table.
//
//   - "user:{id}:domain-events" — domain events raised by aggregates.
//     Persisted to the events table then broadcast, in one transaction,
//     so out-of-process consumers can replay from the last seen id.
//
//   - "user:{id}:kiosk-notifications" — display messages for kiosk
//     devices. NOTIFY only. Each message carries a content hash so
//     kiosks can drop duplicates after reconnect.
package events

import "github.com/google/uuid"

// AuditLogChannel returns the NOTIFY channel carrying a user's audit log.
func AuditLogChannel(userID uuid.UUID) string {
	return "user:" + userID.String() + ":auditlog"
}

// DomainEventsChannel returns the NOTIFY channel carrying a user's domain events.
func DomainEventsChannel(userID uuid.UUID) string {
	return "user:" + userID.String() + ":domain-events"
}

// KioskChannel returns the NOTIFY channel carrying a user's kiosk notifications.
func KioskChannel(userID uuid.UUID) string {
	return "user:" + userID.String() + ":kiosk-notifications"
}
