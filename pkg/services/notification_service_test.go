package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/models"
)

func TestSendPushNotification(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	sub1 := domain.NewPushSubscription(user.ID, "https://push.example/a", nil)
	sub2 := domain.NewPushSubscription(user.ID, "https://push.example/b", nil)
	f.commit(t, sub1, sub2)

	push := &gateways.StubPushGateway{}
	svc := NewNotificationService(f.uow, f.store, push)

	record, err := svc.SendPushNotification(ctx, models.SendPushNotificationRequest{
		UserID:      user.ID,
		Content:     "Standup in 5 minutes",
		TriggeredBy: "calendar_entry_reminder",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PushSuccess, record.Status)
	assert.Len(t, record.PushSubscriptionIDs, 2)

	sent := push.Pushes()
	require.Len(t, sent, 2)
	assert.JSONEq(t, `{"body":"Standup in 5 minutes"}`, string(sent[0].Payload))

	stored, err := f.store.PushNotificationsBetween(ctx, user.ID, time.Now().Add(-time.Minute), time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "calendar_entry_reminder", stored[0].TriggeredBy)
}

func TestSendPushNotificationNoSubscriptions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	push := &gateways.StubPushGateway{}
	svc := NewNotificationService(f.uow, f.store, push)

	record, err := svc.SendPushNotification(ctx, models.SendPushNotificationRequest{
		UserID:      user.ID,
		Content:     "nobody is listening",
		TriggeredBy: "smart_notification",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PushSkipped, record.Status)
	assert.Equal(t, "no_subscriptions", record.ErrorMessage)
	assert.Empty(t, push.Pushes())

	// The skip is still recorded.
	stored, err := f.store.PushNotificationsBetween(ctx, user.ID, time.Now().Add(-time.Minute), time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestSendPushNotificationAllEndpointsFail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	f.commit(t, domain.NewPushSubscription(user.ID, "https://push.example/a", nil))

	push := &gateways.StubPushGateway{Err: errors.New("410 gone")}
	svc := NewNotificationService(f.uow, f.store, push)

	record, err := svc.SendPushNotification(ctx, models.SendPushNotificationRequest{
		UserID:      user.ID,
		Content:     "doomed",
		TriggeredBy: "morning_overview",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PushError, record.Status)
	assert.Equal(t, "410 gone", record.ErrorMessage)
}

func TestSendPushNotificationTargetsNamedSubscriptions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	sub1 := domain.NewPushSubscription(user.ID, "https://push.example/a", nil)
	sub2 := domain.NewPushSubscription(user.ID, "https://push.example/b", nil)
	f.commit(t, sub1, sub2)

	push := &gateways.StubPushGateway{}
	svc := NewNotificationService(f.uow, f.store, push)

	record, err := svc.SendPushNotification(ctx, models.SendPushNotificationRequest{
		UserID:          user.ID,
		Content:         "just one device",
		TriggeredBy:     "smart_notification",
		SubscriptionIDs: []uuid.UUID{sub2.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{sub2.ID}, record.PushSubscriptionIDs)

	sent := push.Pushes()
	require.Len(t, sent, 1)
	assert.Equal(t, "https://push.example/b", sent[0].Endpoint)
}
