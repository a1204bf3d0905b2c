package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/config"
	"github.com/daybreakhq/daybreak/pkg/database"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/events"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
	testdb "github.com/daybreakhq/daybreak/test/database"
)

type wsFixture struct {
	client *database.Client
	uow    *uow.Factory
	store  *store.Store
	hub    *events.Hub
	server *httptest.Server
}

func newWSFixture(t *testing.T) *wsFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	uowf := uow.NewFactory(client, nil, nil)
	st := store.New(client.Client)
	hub := events.NewHub()

	svc := Services{
		Days:          services.NewDayService(uowf, st),
		Tasks:         services.NewTaskService(uowf, st),
		Messages:      services.NewMessageService(uowf, st),
		Calendar:      services.NewCalendarService(uowf, st, nil, nil),
		Notifications: services.NewNotificationService(uowf, st, &gateways.StubPushGateway{}),
		Contexts:      services.NewContextService(st),
	}

	s := NewServer(&config.ServerConfig{ListenAddr: ":0"}, client, st, svc,
		nil, NewConnectionManager(hub, svc.Contexts))
	ts := httptest.NewServer(s.echo)
	t.Cleanup(ts.Close)

	return &wsFixture{client: client, uow: uowf, store: st, hub: hub, server: ts}
}

func (f *wsFixture) seedUser(t *testing.T) *domain.User {
	t.Helper()
	user := domain.NewUser("Dana")
	u, ctx, err := f.uow.Begin(context.Background())
	require.NoError(t, err)
	u.Add(user)
	require.NoError(t, u.Commit(ctx))
	return user
}

func (f *wsFixture) dial(t *testing.T, userID uuid.UUID) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") +
		"/days/today/context?user_id=" + userID.String()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.CloseNow() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var frame map[string]any
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func writeFrame(t *testing.T, conn *websocket.Conn, frame any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(frame)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestWebSocketConnectionAck(t *testing.T) {
	f := newWSFixture(t)
	user := f.seedUser(t)

	conn := f.dial(t, user.ID)
	ack := readFrame(t, conn)
	assert.Equal(t, "connection_ack", ack["type"])
	assert.Equal(t, user.ID.String(), ack["user_id"])
}

func TestWebSocketFullSync(t *testing.T) {
	f := newWSFixture(t)
	user := f.seedUser(t)

	conn := f.dial(t, user.ID)
	readFrame(t, conn) // ack

	writeFrame(t, conn, map[string]any{"type": "sync_request", "since_timestamp": nil})

	resp := readFrame(t, conn)
	require.Equal(t, "sync_response", resp["type"])

	dayCtx, ok := resp["day_context"].(map[string]any)
	require.True(t, ok, "full sync carries day_context")
	today := string(domain.DateOf(time.Now(), time.UTC))
	assert.Equal(t, today, dayCtx["date"])
}

func TestWebSocketIncrementalSync(t *testing.T) {
	f := newWSFixture(t)
	user := f.seedUser(t)
	today := string(domain.DateOf(time.Now(), time.UTC))

	tasks := services.NewTaskService(f.uow, f.store)
	task, err := tasks.CreateAdhocTask(context.Background(), models.CreateAdhocTaskRequest{
		UserID: user.ID,
		Name:   "Water the plants",
		Date:   today,
	})
	require.NoError(t, err)

	conn := f.dial(t, user.ID)
	readFrame(t, conn) // ack

	since := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339Nano)
	writeFrame(t, conn, map[string]any{"type": "sync_request", "since_timestamp": since})

	resp := readFrame(t, conn)
	require.Equal(t, "sync_response", resp["type"])
	assert.Nil(t, resp["day_context"])
	require.NotEmpty(t, resp["last_audit_log_timestamp"])

	changes, ok := resp["changes"].([]any)
	require.True(t, ok, "incremental sync carries changes")
	require.NotEmpty(t, changes)

	// The window also covers the user's own creation; find the task.
	var taskChange map[string]any
	for _, raw := range changes {
		change := raw.(map[string]any)
		if change["entity_type"] == "task" {
			taskChange = change
		}
	}
	require.NotNil(t, taskChange)
	assert.Equal(t, "created", taskChange["change_type"])
	assert.Equal(t, task.ID.String(), taskChange["entity_id"])
	require.NotNil(t, taskChange["entity_data"])
}

func TestWebSocketIncrementalSyncNoChanges(t *testing.T) {
	f := newWSFixture(t)
	user := f.seedUser(t)

	conn := f.dial(t, user.ID)
	readFrame(t, conn) // ack

	since := time.Now().Add(time.Hour).UTC().Format(time.RFC3339Nano)
	writeFrame(t, conn, map[string]any{"type": "sync_request", "since_timestamp": since})

	resp := readFrame(t, conn)
	require.Equal(t, "sync_response", resp["type"])
	// Cursor is handed back unchanged when nothing happened.
	assert.Equal(t, since, resp["last_audit_log_timestamp"])
}

func TestWebSocketInvalidTimestamp(t *testing.T) {
	f := newWSFixture(t)
	user := f.seedUser(t)

	conn := f.dial(t, user.ID)
	readFrame(t, conn) // ack

	writeFrame(t, conn, map[string]any{"type": "sync_request", "since_timestamp": "yesterday-ish"})

	resp := readFrame(t, conn)
	assert.Equal(t, "error", resp["type"])
	assert.Equal(t, "invalid_timestamp", resp["code"])
}

func TestWebSocketUnknownMessageType(t *testing.T) {
	f := newWSFixture(t)
	user := f.seedUser(t)

	conn := f.dial(t, user.ID)
	readFrame(t, conn) // ack

	writeFrame(t, conn, map[string]any{"type": "make_coffee"})

	resp := readFrame(t, conn)
	assert.Equal(t, "error", resp["type"])
	assert.Equal(t, "unknown_message_type", resp["code"])
}

func TestWebSocketLiveAuditForwarding(t *testing.T) {
	f := newWSFixture(t)
	user := f.seedUser(t)
	today := string(domain.DateOf(time.Now(), time.UTC))

	conn := f.dial(t, user.ID)
	readFrame(t, conn) // ack

	wanted := uuid.New()
	publish := func(entityID uuid.UUID, scheduledDate string) {
		payload, err := json.Marshal(events.AuditLogPayload{
			Type:         events.TypeAuditLog,
			AuditLogID:   uuid.New(),
			UserID:       user.ID,
			ActivityType: "TaskCreatedEvent",
			EntityType:   "task",
			EntityID:     entityID,
			OccurredAt:   time.Now().UTC(),
			Meta: map[string]any{
				"entity_data": map[string]any{
					"id":             entityID.String(),
					"name":           "Stretch",
					"scheduled_date": scheduledDate,
				},
			},
		})
		require.NoError(t, err)
		f.hub.Broadcast(events.AuditLogChannel(user.ID), payload)
	}

	// An entry for another date is filtered out; the one for today lands.
	publish(uuid.New(), "1999-01-01")
	publish(wanted, today)

	resp := readFrame(t, conn)
	require.Equal(t, "sync_response", resp["type"])
	changes, ok := resp["changes"].([]any)
	require.True(t, ok)
	require.Len(t, changes, 1)
	assert.Equal(t, wanted.String(), changes[0].(map[string]any)["entity_id"])
}

func TestWebSocketUnknownUser(t *testing.T) {
	f := newWSFixture(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") +
		"/days/today/context?user_id=" + uuid.New().String()
	_, resp, err := websocket.Dial(ctx, url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestBroadcastFrameDomainEventPassthrough(t *testing.T) {
	m := &ConnectionManager{}
	user := domain.NewUser("Dana")

	payload, err := json.Marshal(events.DomainEventPayload{
		Type:   events.TypeDomainEvent,
		Name:   "NewDayEvent",
		UserID: user.ID,
		Data:   map[string]any{"date": "2026-03-14"},
	})
	require.NoError(t, err)

	frame, ok := m.broadcastFrame(user, payload)
	require.True(t, ok)
	assert.JSONEq(t, string(payload), string(frame))
}
