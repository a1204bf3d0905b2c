package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/events"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
)

const (
	// wsWriteTimeout bounds each outbound frame write. A consumer that
	// cannot keep up gets disconnected rather than stalling the hub.
	wsWriteTimeout = 10 * time.Second

	// wsOutboundBuffer is the per-connection queue of pending frames.
	// Overflow drops the frame; the client recovers via sync_request.
	wsOutboundBuffer = 64
)

// Client → server messages.
type clientMessage struct {
	Type           string  `json:"type"`
	SinceTimestamp *string `json:"since_timestamp"`
}

// Server → client frames.
type connectionAck struct {
	Type   string    `json:"type"` // "connection_ack"
	UserID uuid.UUID `json:"user_id"`
}

type syncResponse struct {
	Type                  string             `json:"type"` // "sync_response"
	DayContext            *models.DayContext `json:"day_context,omitempty"`
	Changes               []models.Change    `json:"changes,omitempty"`
	LastAuditLogTimestamp *string            `json:"last_audit_log_timestamp,omitempty"`
}

type errorFrame struct {
	Type    string `json:"type"` // "error"
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConnectionManager runs the per-connection sync protocol: one reader
// loop serving sync_request, one writer goroutine draining the outbound
// queue, and a hub subscription feeding live changes into that queue.
type ConnectionManager struct {
	hub      *events.Hub
	contexts *services.ContextService
}

// NewConnectionManager creates a ConnectionManager.
func NewConnectionManager(hub *events.Hub, contexts *services.ContextService) *ConnectionManager {
	return &ConnectionManager{hub: hub, contexts: contexts}
}

// HandleConnection serves one WebSocket until it closes or the context is
// cancelled.
func (m *ConnectionManager) HandleConnection(ctx context.Context, conn *websocket.Conn, user *domain.User) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer conn.CloseNow()

	log := slog.With("user_id", user.ID)
	outbound := make(chan []byte, wsOutboundBuffer)

	sub := m.hub.Attach(func(channel string, payload []byte) {
		frame, ok := m.broadcastFrame(user, payload)
		if !ok {
			return
		}
		select {
		case outbound <- frame:
		default:
			log.Warn("Dropping realtime frame for slow WebSocket consumer", "channel", channel)
		}
	})
	defer m.hub.Detach(sub)

	for _, ch := range []string{events.AuditLogChannel(user.ID), events.DomainEventsChannel(user.ID)} {
		if err := m.hub.Subscribe(sub, ch); err != nil {
			log.Error("WebSocket channel subscription failed", "channel", ch, "error", err)
			conn.Close(websocket.StatusInternalError, "subscription failed")
			return
		}
	}

	if err := m.write(ctx, conn, connectionAck{Type: "connection_ack", UserID: user.ID}); err != nil {
		return
	}

	// Writer: the single goroutine that touches the connection for
	// outbound frames after the ack.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case frame := <-outbound:
				writeCtx, cancelWrite := context.WithTimeout(ctx, wsWriteTimeout)
				err := conn.Write(writeCtx, websocket.MessageText, frame)
				cancelWrite()
				if err != nil {
					cancel()
					return
				}
			}
		}
	}()

	m.readLoop(ctx, conn, user, outbound)
}

// readLoop consumes client messages until the connection drops.
func (m *ConnectionManager) readLoop(ctx context.Context, conn *websocket.Conn, user *domain.User, outbound chan<- []byte) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			m.send(ctx, outbound, errorFrame{Type: "error", Code: "invalid_json", Message: "message is not valid JSON"})
			continue
		}

		switch msg.Type {
		case "sync_request":
			m.send(ctx, outbound, m.syncFrame(ctx, user, msg.SinceTimestamp))
		default:
			m.send(ctx, outbound, errorFrame{
				Type:    "error",
				Code:    "unknown_message_type",
				Message: "unsupported message type: " + msg.Type,
			})
		}
	}
}

// syncFrame builds the response to one sync_request. A nil since means a
// full snapshot; otherwise the incremental change set.
func (m *ConnectionManager) syncFrame(ctx context.Context, user *domain.User, since *string) any {
	loc := user.Settings.Location()
	target := domain.DateOf(time.Now(), loc)

	if since == nil {
		dayCtx, err := m.contexts.DayContext(ctx, user.ID, target, loc)
		if err != nil {
			slog.Error("Full sync failed", "user_id", user.ID, "error", err)
			return errorFrame{Type: "error", Code: "sync_failed", Message: "failed to build day context"}
		}
		last, err := m.contexts.LastAuditTimestamp(ctx, user.ID)
		if err != nil {
			slog.Error("Full sync failed", "user_id", user.ID, "error", err)
			return errorFrame{Type: "error", Code: "sync_failed", Message: "failed to load audit cursor"}
		}
		return syncResponse{
			Type:                  "sync_response",
			DayContext:            dayCtx,
			LastAuditLogTimestamp: wireTimePtr(last),
		}
	}

	sinceAt, err := time.Parse(time.RFC3339Nano, *since)
	if err != nil {
		return errorFrame{Type: "error", Code: "invalid_timestamp", Message: "since_timestamp must be RFC3339"}
	}

	set, err := m.contexts.ChangesSince(ctx, user.ID, sinceAt, target)
	if err != nil {
		slog.Error("Incremental sync failed", "user_id", user.ID, "error", err)
		return errorFrame{Type: "error", Code: "sync_failed", Message: "failed to load changes"}
	}

	resp := syncResponse{
		Type:    "sync_response",
		Changes: set.Changes,
	}
	if set.LastAuditLogTimestamp != nil {
		resp.LastAuditLogTimestamp = wireTimePtr(set.LastAuditLogTimestamp)
	} else {
		// No audit rows since the cursor; hand the cursor back unchanged.
		resp.LastAuditLogTimestamp = since
	}
	return resp
}

// broadcastFrame converts one pub/sub payload to a client frame. Audit
// log entries are filtered to the user's current date and rewritten as a
// single-change sync_response; everything else (domain events, kiosk
// payloads) passes through untouched.
func (m *ConnectionManager) broadcastFrame(user *domain.User, payload []byte) ([]byte, bool) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, false
	}
	if env.Type != events.TypeAuditLog {
		return payload, true
	}

	var entry events.AuditLogPayload
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, false
	}

	target := domain.DateOf(time.Now(), user.Settings.Location())
	if !services.AuditEntryIsForDate(entry.EntityType, entry.Meta, target) {
		return nil, false
	}
	change, ok := services.ChangeFromAudit(entry.ActivityType, entry.EntityType, entry.EntityID, entry.Meta)
	if !ok {
		return nil, false
	}

	frame, err := json.Marshal(syncResponse{
		Type:                  "sync_response",
		Changes:               []models.Change{change},
		LastAuditLogTimestamp: wireTimePtr(&entry.OccurredAt),
	})
	if err != nil {
		return nil, false
	}
	return frame, true
}

// send marshals a frame onto the outbound queue, blocking until the
// writer takes it or the connection context ends.
func (m *ConnectionManager) send(ctx context.Context, outbound chan<- []byte, frame any) {
	data, err := json.Marshal(frame)
	if err != nil {
		slog.Error("Failed to marshal WebSocket frame", "error", err)
		return
	}
	select {
	case outbound <- data:
	case <-ctx.Done():
	}
}

// write marshals and writes one frame directly; used only for the ack
// before the writer goroutine starts.
func (m *ConnectionManager) write(ctx context.Context, conn *websocket.Conn, frame any) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}

// wireTimePtr formats a timestamp for the wire: RFC3339 with sub-second
// precision, UTC.
func wireTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
