package events

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Publisher broadcasts per-user events over PostgreSQL NOTIFY.
// Domain events are stored in the events table then broadcast; audit log
// and kiosk payloads are broadcast only (see package doc for why).
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishAuditLog broadcasts an audit log entry on the user's auditlog
// channel. The entry was already persisted by the originating transaction,
// so this is NOTIFY only.
func (p *Publisher) PublishAuditLog(ctx context.Context, payload AuditLogPayload) error {
	payload.Type = TypeAuditLog
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AuditLogPayload: %w", err)
	}
	return p.notifyOnly(ctx, AuditLogChannel(payload.UserID), payloadJSON)
}

// PublishDomainEvent persists a domain event to the events table and
// broadcasts it on the user's domain-events channel, atomically.
func (p *Publisher) PublishDomainEvent(ctx context.Context, payload DomainEventPayload) error {
	payload.Type = TypeDomainEvent
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal DomainEventPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.UserID, DomainEventsChannel(payload.UserID), payloadJSON)
}

// PublishKioskNotification broadcasts a display message on the user's
// kiosk channel. NOTIFY only; the content hash is computed here.
func (p *Publisher) PublishKioskNotification(ctx context.Context, userID uuid.UUID, message string) error {
	sum := sha256.Sum256([]byte(message))
	payload := KioskNotificationPayload{
		Type:        TypeKioskNotification,
		UserID:      userID,
		Message:     message,
		MessageHash: hex.EncodeToString(sum[:]),
		SentAt:      time.Now().UTC(),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal KioskNotificationPayload: %w", err)
	}
	return p.notifyOnly(ctx, KioskChannel(userID), payloadJSON)
}

// persistAndNotify persists a pre-marshaled event to the events table and
// broadcasts via NOTIFY in a single transaction (pg_notify is
// transactional, held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, userID uuid.UUID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (user_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// NOTIFY payload carries db_event_id so consumers can replay from
	// the last id they saw.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full payload bytes, keeping only the routing fields the client needs
// to fetch the complete record from the API.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type       string `json:"type"`
		UserID     string `json:"user_id"`
		AuditLogID string `json:"audit_log_id"`
		DBEventID  *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"user_id":   routing.UserID,
		"truncated": true,
	}
	if routing.AuditLogID != "" {
		truncated["audit_log_id"] = routing.AuditLogID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
