package reactive

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/events"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/templates"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// reminderWindow is how long after an exact trigger time a reminder still
// fires. The evaluator runs every minute, so the window matches the cron
// granularity: a reminder is seen by exactly one run.
const reminderWindow = time.Minute

// reminderBroadcaster is the slice of the events publisher kiosk-alarm
// reminders need.
type reminderBroadcaster interface {
	PublishDomainEvent(ctx context.Context, payload events.DomainEventPayload) error
	PublishKioskNotification(ctx context.Context, userID uuid.UUID, message string) error
}

// ReminderEvaluator fires calendar-entry reminders per the user's
// notification rules. Each (entry, rule) pair fires at most once; the
// PushNotification row keyed by triggered_by is the dedup record for all
// three channels.
type ReminderEvaluator struct {
	uow           *uow.Factory
	store         *store.Store
	notifications *services.NotificationService
	sms           gateways.SMSGateway
	publisher     reminderBroadcaster
}

// NewReminderEvaluator creates a ReminderEvaluator.
func NewReminderEvaluator(uowf *uow.Factory, st *store.Store, n *services.NotificationService, sms gateways.SMSGateway, pub reminderBroadcaster) *ReminderEvaluator {
	return &ReminderEvaluator{uow: uowf, store: st, notifications: n, sms: sms, publisher: pub}
}

// EvaluateUser scans today's and tomorrow's entries against the user's
// reminder rules and fires the due ones.
func (e *ReminderEvaluator) EvaluateUser(ctx context.Context, user *domain.User, now time.Time) error {
	settings := user.Settings.CalendarEntryNotifications
	if !settings.Enabled || len(settings.Rules) == 0 {
		return nil
	}

	date, loc := userToday(user, now)
	entries, err := e.store.EntriesStartingBetween(ctx, user.ID, date.Time(loc), date.AddDays(2).Time(loc))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.AttendanceStatus == domain.AttendanceNotGoing {
			continue
		}
		for _, rule := range settings.Rules {
			trigger := entry.StartsAt.Add(-time.Duration(rule.MinutesBefore) * time.Minute)
			if now.Before(trigger) || !now.Before(trigger.Add(reminderWindow)) {
				continue
			}
			if err := e.fire(ctx, user, entry, rule, loc); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *ReminderEvaluator) fire(ctx context.Context, user *domain.User, entry *domain.CalendarEntry, rule domain.NotificationRule, loc *time.Location) error {
	triggeredBy := fmt.Sprintf("calendar_entry_reminder:%s:%d:%s", entry.ID, rule.MinutesBefore, rule.Channel)

	exists, err := e.store.PushNotificationExists(ctx, user.ID, triggeredBy)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	body := templates.MustRender(templates.CalendarReminderBody, map[string]any{
		"Name":          entry.Name,
		"MinutesBefore": rule.MinutesBefore,
		"StartTime":     entry.StartsAt.In(loc).Format("15:04"),
	})

	switch rule.Channel {
	case domain.ChannelPush:
		_, err := e.notifications.SendPushNotification(ctx, models.SendPushNotificationRequest{
			UserID:      user.ID,
			Content:     body,
			TriggeredBy: triggeredBy,
		})
		return err
	case domain.ChannelText:
		return e.fireText(ctx, user, body, triggeredBy)
	case domain.ChannelKioskAlarm:
		return e.fireKioskAlarm(ctx, user, entry, rule, body, triggeredBy)
	default:
		slog.Warn("Unknown reminder channel", "channel", rule.Channel, "user_id", user.ID)
		return nil
	}
}

// fireText persists the outbound message and the dedup record, then hands
// the body to the SMS gateway. Delivery failure after commit is logged;
// the dedup record stands so the reminder does not re-fire.
func (e *ReminderEvaluator) fireText(ctx context.Context, user *domain.User, body, triggeredBy string) error {
	msg := domain.NewMessage(user.ID, domain.RoleAssistant, body)
	msg.TriggeredBy = triggeredBy
	msg.Meta["to_number"] = user.PhoneNumber

	record := domain.NewPushNotification(user.ID, body, triggeredBy, domain.PushSuccess)

	u, ctx, err := e.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback()

	u.Add(msg)
	u.Add(record)
	if err := u.Commit(ctx); err != nil {
		return err
	}

	if err := e.sms.SendMessage(ctx, user.PhoneNumber, body); err != nil {
		slog.Error("Reminder SMS delivery failed",
			"user_id", user.ID, "triggered_by", triggeredBy, "error", err)
	}
	return nil
}

// fireKioskAlarm broadcasts a synthetic kiosk alarm for the entry. No
// Alarm is persisted on the Day; the deterministic alarm id makes repeated
// broadcasts identical for clients. The body also lands on the kiosk
// channel, same as a day alarm of type KIOSK, so a kiosk subscribed there
// reads both sources aloud.
func (e *ReminderEvaluator) fireKioskAlarm(ctx context.Context, user *domain.User, entry *domain.CalendarEntry, rule domain.NotificationRule, body, triggeredBy string) error {
	alarmID := domain.ReminderAlarmID(entry.ID, entry.StartsAt.UTC().Format(time.RFC3339), rule.MinutesBefore)
	err := e.publisher.PublishDomainEvent(ctx, events.DomainEventPayload{
		Name:       "AlarmTriggeredEvent",
		UserID:     user.ID,
		OccurredAt: time.Now().UTC(),
		Data: map[string]any{
			"day_date":   string(domain.DateOf(entry.StartsAt, user.Settings.Location())),
			"alarm_id":   alarmID.String(),
			"alarm_name": entry.Name,
			"alarm_type": string(domain.AlarmKiosk),
		},
	})
	if err != nil {
		return err
	}
	if err := e.publisher.PublishKioskNotification(ctx, user.ID, body); err != nil {
		return err
	}

	record := domain.NewPushNotification(user.ID, body, triggeredBy, domain.PushSuccess)

	u, ctx, err := e.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback()

	u.Add(record)
	return u.Commit(ctx)
}
