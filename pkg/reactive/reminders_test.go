package reactive

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent/event"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/services"
)

func reminderFixture(t *testing.T, rules ...domain.NotificationRule) (*fixture, *domain.User, *gateways.StubPushGateway, *gateways.StubSMSGateway, *ReminderEvaluator) {
	t.Helper()
	f := newFixture(t)

	user := domain.NewUser("Dana")
	user.PhoneNumber = "+15550001111"
	user.Settings.CalendarEntryNotifications = domain.CalendarNotificationSettings{
		Enabled: true,
		Rules:   rules,
	}
	f.commit(t, user)

	push := &gateways.StubPushGateway{}
	sms := &gateways.StubSMSGateway{}
	eval := NewReminderEvaluator(f.uow, f.store,
		services.NewNotificationService(f.uow, f.store, push), sms, f.publisher())
	return f, user, push, sms, eval
}

func TestReminderPushChannel(t *testing.T) {
	ctx := context.Background()
	f, user, push, _, eval := reminderFixture(t,
		domain.NotificationRule{Channel: domain.ChannelPush, MinutesBefore: 10})
	f.commit(t, domain.NewPushSubscription(user.ID, "https://push.example/a", nil))

	now := time.Now()
	entry := f.seedEntry(t, user, "evt-1", "Standup", now.Add(10*time.Minute))

	require.NoError(t, eval.EvaluateUser(ctx, user, now))

	sent := push.Pushes()
	require.Len(t, sent, 1)
	assert.Contains(t, string(sent[0].Payload), "Standup")

	records := f.pushRecords(t, user)
	require.Len(t, records, 1)
	assert.Equal(t,
		fmt.Sprintf("calendar_entry_reminder:%s:10:PUSH", entry.ID),
		records[0].TriggeredBy)
}

func TestReminderFiresOncePerEntryAndRule(t *testing.T) {
	ctx := context.Background()
	f, user, push, _, eval := reminderFixture(t,
		domain.NotificationRule{Channel: domain.ChannelPush, MinutesBefore: 10})
	f.commit(t, domain.NewPushSubscription(user.ID, "https://push.example/a", nil))

	now := time.Now()
	f.seedEntry(t, user, "evt-1", "Standup", now.Add(10*time.Minute))

	require.NoError(t, eval.EvaluateUser(ctx, user, now))
	require.NoError(t, eval.EvaluateUser(ctx, user, now.Add(10*time.Second)))

	assert.Len(t, push.Pushes(), 1)
	assert.Len(t, f.pushRecords(t, user), 1)
}

func TestReminderOutsideWindow(t *testing.T) {
	ctx := context.Background()
	f, user, push, _, eval := reminderFixture(t,
		domain.NotificationRule{Channel: domain.ChannelPush, MinutesBefore: 10})

	now := time.Now()
	// 30 minutes out: the 10-minute rule is not due yet.
	f.seedEntry(t, user, "evt-1", "Standup", now.Add(30*time.Minute))
	// Started long ago: the trigger window has passed.
	f.seedEntry(t, user, "evt-2", "Earlier sync", now.Add(-2*time.Hour))

	require.NoError(t, eval.EvaluateUser(ctx, user, now))
	assert.Empty(t, push.Pushes())
	assert.Empty(t, f.pushRecords(t, user))
}

func TestReminderSkipsNotGoing(t *testing.T) {
	ctx := context.Background()
	f, user, push, _, eval := reminderFixture(t,
		domain.NotificationRule{Channel: domain.ChannelPush, MinutesBefore: 10})

	now := time.Now()
	entry := domain.NewCalendarEntry(user.ID, "google", "evt-declined")
	entry.Apply(domain.EntryFields{
		Name:             "Optional sync",
		StartsAt:         now.Add(10 * time.Minute),
		EndsAt:           now.Add(40 * time.Minute),
		AttendanceStatus: domain.AttendanceNotGoing,
	})
	f.commit(t, entry)

	require.NoError(t, eval.EvaluateUser(ctx, user, now))
	assert.Empty(t, push.Pushes())
}

func TestReminderDisabledSettings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t) // reminders not enabled

	push := &gateways.StubPushGateway{}
	eval := NewReminderEvaluator(f.uow, f.store,
		services.NewNotificationService(f.uow, f.store, push), &gateways.StubSMSGateway{}, f.publisher())

	now := time.Now()
	f.seedEntry(t, user, "evt-1", "Standup", now.Add(10*time.Minute))

	require.NoError(t, eval.EvaluateUser(ctx, user, now))
	assert.Empty(t, push.Pushes())
}

func TestReminderTextChannel(t *testing.T) {
	ctx := context.Background()
	f, user, _, sms, eval := reminderFixture(t,
		domain.NotificationRule{Channel: domain.ChannelText, MinutesBefore: 0})

	now := time.Now()
	f.seedEntry(t, user, "evt-1", "Dentist", now.Add(30*time.Second))

	require.NoError(t, eval.EvaluateUser(ctx, user, now))

	sent := sms.Messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "+15550001111", sent[0].To)
	assert.Contains(t, sent[0].Body, "Dentist")

	msgs, err := f.store.RecentMessages(ctx, user.ID, 5)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.RoleAssistant, msgs[0].Role)
	assert.Equal(t, "+15550001111", msgs[0].Meta["to_number"])

	// The dedup record holds even though no push went out.
	assert.Len(t, f.pushRecords(t, user), 1)
}

func TestReminderTextDeliveryFailureKeepsDedup(t *testing.T) {
	ctx := context.Background()
	f, user, _, sms, eval := reminderFixture(t,
		domain.NotificationRule{Channel: domain.ChannelText, MinutesBefore: 0})
	sms.Err = fmt.Errorf("carrier rejected")

	now := time.Now()
	f.seedEntry(t, user, "evt-1", "Dentist", now.Add(30*time.Second))

	require.NoError(t, eval.EvaluateUser(ctx, user, now))
	require.NoError(t, eval.EvaluateUser(ctx, user, now.Add(10*time.Second)))

	// One message row, one dedup record; the gateway failure is not retried.
	msgs, err := f.store.RecentMessages(ctx, user.ID, 5)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Len(t, f.pushRecords(t, user), 1)
}

func TestReminderKioskAlarmChannel(t *testing.T) {
	ctx := context.Background()
	f, user, _, _, eval := reminderFixture(t,
		domain.NotificationRule{Channel: domain.ChannelKioskAlarm, MinutesBefore: 5})

	now := time.Now()
	entry := f.seedEntry(t, user, "evt-1", "Pick up kids", now.Add(5*time.Minute))

	require.NoError(t, eval.EvaluateUser(ctx, user, now))

	rows, err := f.client.Event.Query().
		Where(event.UserID(user.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "AlarmTriggeredEvent", rows[0].Payload["name"])

	data, ok := rows[0].Payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pick up kids", data["alarm_name"])
	assert.Equal(t, "KIOSK", data["alarm_type"])

	wantAlarmID := domain.ReminderAlarmID(entry.ID, entry.StartsAt.UTC().Format(time.RFC3339), 5)
	assert.Equal(t, wantAlarmID.String(), data["alarm_id"])

	// Dedup record prevents a second broadcast.
	require.NoError(t, eval.EvaluateUser(ctx, user, now.Add(10*time.Second)))
	count, err := f.client.Event.Query().Where(event.UserID(user.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReminderKioskAlarmReachesKioskChannel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := domain.NewUser("Dana")
	user.Settings.CalendarEntryNotifications = domain.CalendarNotificationSettings{
		Enabled: true,
		Rules:   []domain.NotificationRule{{Channel: domain.ChannelKioskAlarm, MinutesBefore: 5}},
	}
	f.commit(t, user)

	// The kiosk body goes out on the same channel as a day alarm of type
	// KIOSK, not just as a domain event.
	broadcaster := &recordingBroadcaster{}
	eval := NewReminderEvaluator(f.uow, f.store,
		services.NewNotificationService(f.uow, f.store, &gateways.StubPushGateway{}),
		&gateways.StubSMSGateway{}, broadcaster)

	now := time.Now()
	f.seedEntry(t, user, "evt-1", "Pick up kids", now.Add(5*time.Minute))

	require.NoError(t, eval.EvaluateUser(ctx, user, now))

	require.Len(t, broadcaster.domainEvents, 1)
	require.Len(t, broadcaster.kioskMessages, 1)
	assert.Contains(t, broadcaster.kioskMessages[0], "Pick up kids")
}

func TestReminderMultipleRules(t *testing.T) {
	ctx := context.Background()
	f, user, push, sms, eval := reminderFixture(t,
		domain.NotificationRule{Channel: domain.ChannelPush, MinutesBefore: 10},
		domain.NotificationRule{Channel: domain.ChannelText, MinutesBefore: 10})
	f.commit(t, domain.NewPushSubscription(user.ID, "https://push.example/a", nil))

	now := time.Now()
	f.seedEntry(t, user, "evt-1", "Standup", now.Add(10*time.Minute))

	require.NoError(t, eval.EvaluateUser(ctx, user, now))

	assert.Len(t, push.Pushes(), 1)
	assert.Len(t, sms.Messages(), 1)
	assert.Len(t, f.pushRecords(t, user), 2)
}
