package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	channels []string
	payloads [][]byte
}

func (c *capture) deliver(channel string, payload []byte) {
	c.channels = append(c.channels, channel)
	c.payloads = append(c.payloads, payload)
}

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	h := NewHub()

	var got capture
	s := h.Attach(got.deliver)
	require.NoError(t, h.Subscribe(s, "user:a:auditlog"))

	h.Broadcast("user:a:auditlog", []byte(`{"type":"audit_log"}`))
	h.Broadcast("user:b:auditlog", []byte(`{"type":"audit_log"}`))

	require.Len(t, got.payloads, 1)
	assert.Equal(t, "user:a:auditlog", got.channels[0])
	assert.JSONEq(t, `{"type":"audit_log"}`, string(got.payloads[0]))
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()

	var got capture
	s := h.Attach(got.deliver)
	require.NoError(t, h.Subscribe(s, "user:a:auditlog"))
	h.Unsubscribe(s, "user:a:auditlog")

	h.Broadcast("user:a:auditlog", []byte(`{}`))

	assert.Empty(t, got.payloads)
	assert.Zero(t, h.subscriberCount("user:a:auditlog"))
}

func TestHub_DetachRemovesAllSubscriptions(t *testing.T) {
	h := NewHub()

	var got capture
	s := h.Attach(got.deliver)
	require.NoError(t, h.Subscribe(s, "user:a:auditlog"))
	require.NoError(t, h.Subscribe(s, "user:a:kiosk-notifications"))
	assert.Equal(t, 1, h.ActiveSubscribers())

	h.Detach(s)

	assert.Zero(t, h.ActiveSubscribers())
	assert.Zero(t, h.subscriberCount("user:a:auditlog"))
	assert.Zero(t, h.subscriberCount("user:a:kiosk-notifications"))

	h.Broadcast("user:a:auditlog", []byte(`{}`))
	assert.Empty(t, got.payloads)
}

func TestHub_MultipleSubscribersSameChannel(t *testing.T) {
	h := NewHub()

	var first, second capture
	s1 := h.Attach(first.deliver)
	s2 := h.Attach(second.deliver)
	require.NoError(t, h.Subscribe(s1, "user:a:domain-events"))
	require.NoError(t, h.Subscribe(s2, "user:a:domain-events"))
	assert.Equal(t, 2, h.subscriberCount("user:a:domain-events"))

	h.Broadcast("user:a:domain-events", []byte(`{"name":"NewDayEvent"}`))

	assert.Len(t, first.payloads, 1)
	assert.Len(t, second.payloads, 1)
}
