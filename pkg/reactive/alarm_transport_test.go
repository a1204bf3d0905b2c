package reactive

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/services"
)

func alarmTransportFixture(t *testing.T) (*fixture, *domain.User, *gateways.StubPushGateway, *gateways.StubSMSGateway, *AlarmTransportHandler) {
	t.Helper()
	f := newFixture(t)
	user := f.seedUser(t)
	f.commit(t, domain.NewPushSubscription(user.ID, "https://push.example/a", nil))

	push := &gateways.StubPushGateway{}
	sms := &gateways.StubSMSGateway{}
	h := NewAlarmTransportHandler(f.uow, f.store,
		services.NewNotificationService(f.uow, f.store, push), sms, f.publisher())
	return f, user, push, sms, h
}

// triggeredAlarm builds the event the way a committed Day emits it.
func triggeredAlarm(t *testing.T, userID uuid.UUID, kind domain.AlarmType, url string) *domain.AlarmTriggeredEvent {
	t.Helper()
	now := time.Now()
	day := domain.NewDay(userID, domain.DateOf(now, time.UTC))
	day.Alarms = append(day.Alarms, domain.Alarm{
		ID:       uuid.New(),
		Name:     "Wake up",
		Time:     "07:00",
		Datetime: now.Add(-time.Minute),
		Type:     kind,
		URL:      url,
	})
	require.Equal(t, 1, day.TriggerDueAlarms(now))

	evts := day.DrainEvents()
	require.Len(t, evts, 1)
	return evts[0].(*domain.AlarmTriggeredEvent)
}

func TestAlarmTransportGentlePushesOnly(t *testing.T) {
	ctx := context.Background()
	f, user, push, sms, h := alarmTransportFixture(t)

	evt := triggeredAlarm(t, user.ID, domain.AlarmGentle, "")
	require.NoError(t, h.Handle(ctx, evt))

	sent := push.Pushes()
	require.Len(t, sent, 1)
	assert.Contains(t, string(sent[0].Payload), "Wake up")
	assert.Empty(t, sms.Messages())

	records := f.pushRecords(t, user)
	require.Len(t, records, 1)
	assert.Equal(t, "alarm:"+evt.AlarmID.String(), records[0].TriggeredBy)
}

func TestAlarmTransportSirenAlsoTexts(t *testing.T) {
	ctx := context.Background()
	f, user, push, sms, h := alarmTransportFixture(t)

	evt := triggeredAlarm(t, user.ID, domain.AlarmSiren, "")
	require.NoError(t, h.Handle(ctx, evt))

	assert.Len(t, push.Pushes(), 1)

	texts := sms.Messages()
	require.Len(t, texts, 1)
	assert.Equal(t, user.PhoneNumber, texts[0].To)
	assert.Contains(t, texts[0].Body, "Wake up")

	msgs, err := f.store.RecentMessages(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.RoleAssistant, msgs[0].Role)
}

func TestAlarmTransportURLAppendsLink(t *testing.T) {
	ctx := context.Background()
	_, user, push, _, h := alarmTransportFixture(t)

	evt := triggeredAlarm(t, user.ID, domain.AlarmURL, "https://meet.example/standup")
	require.NoError(t, h.Handle(ctx, evt))

	sent := push.Pushes()
	require.Len(t, sent, 1)
	assert.Contains(t, string(sent[0].Payload), "https://meet.example/standup")
}

func TestAlarmTransportKioskBroadcasts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	push := &gateways.StubPushGateway{}
	sms := &gateways.StubSMSGateway{}
	broadcaster := &recordingBroadcaster{}
	h := NewAlarmTransportHandler(f.uow, f.store,
		services.NewNotificationService(f.uow, f.store, push), sms, broadcaster)

	// Kiosk alarms land on the kiosk channel only; no push, no SMS.
	evt := triggeredAlarm(t, user.ID, domain.AlarmKiosk, "")
	require.NoError(t, h.Handle(ctx, evt))

	assert.Empty(t, push.Pushes())
	assert.Empty(t, sms.Messages())
	require.Len(t, broadcaster.kioskMessages, 1)
	assert.Contains(t, broadcaster.kioskMessages[0], "Wake up")
}

func TestAlarmTransportIgnoresOtherEvents(t *testing.T) {
	_, user, push, sms, h := alarmTransportFixture(t)

	evt := domain.NewDayEventFor(user.ID, domain.Date("2026-03-14"))
	require.NoError(t, h.Handle(context.Background(), evt))
	assert.Empty(t, push.Pushes())
	assert.Empty(t, sms.Messages())
}
