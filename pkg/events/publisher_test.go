package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelNames(t *testing.T) {
	userID := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	assert.Equal(t, "user:11111111-2222-3333-4444-555555555555:auditlog", AuditLogChannel(userID))
	assert.Equal(t, "user:11111111-2222-3333-4444-555555555555:domain-events", DomainEventsChannel(userID))
	assert.Equal(t, "user:11111111-2222-3333-4444-555555555555:kiosk-notifications", KioskChannel(userID))
}

func TestTruncateIfNeeded_SmallPayloadPassesThrough(t *testing.T) {
	payload := `{"type":"audit_log","user_id":"abc"}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateIfNeeded_LargePayloadGetsEnvelope(t *testing.T) {
	big := map[string]any{
		"type":         TypeAuditLog,
		"user_id":      "11111111-2222-3333-4444-555555555555",
		"audit_log_id": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		"meta":         strings.Repeat("x", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(bigJSON))
	require.NoError(t, err)
	assert.Less(t, len(out), 7900)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, TypeAuditLog, envelope["type"])
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", envelope["user_id"])
	assert.Equal(t, "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", envelope["audit_log_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, envelope, "meta")
}

func TestInjectDBEventID(t *testing.T) {
	payload := DomainEventPayload{
		Type:   TypeDomainEvent,
		Name:   "TaskCompletedEvent",
		UserID: uuid.New(),
	}
	payloadJSON, err := json.Marshal(payload)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payloadJSON, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "TaskCompletedEvent", m["name"])
}

func TestInjectDBEventID_LargePayloadKeepsID(t *testing.T) {
	payload := map[string]any{
		"type":    TypeDomainEvent,
		"user_id": "11111111-2222-3333-4444-555555555555",
		"data":    strings.Repeat("y", 9000),
	}
	payloadJSON, err := json.Marshal(payload)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payloadJSON, 7)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, float64(7), envelope["db_event_id"])
}
