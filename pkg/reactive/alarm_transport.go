package reactive

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/templates"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// kioskBroadcaster is the slice of the events publisher kiosk alarms need.
type kioskBroadcaster interface {
	PublishKioskNotification(ctx context.Context, userID uuid.UUID, message string) error
}

// AlarmTransportHandler translates a triggered day alarm to its transport.
// Gentle and firm alarms push; loud and siren alarms push and text; kiosk
// alarms broadcast on the kiosk channel for the display to read aloud.
type AlarmTransportHandler struct {
	uow           *uow.Factory
	store         *store.Store
	notifications *services.NotificationService
	sms           gateways.SMSGateway
	publisher     kioskBroadcaster
}

// NewAlarmTransportHandler creates an AlarmTransportHandler.
func NewAlarmTransportHandler(uowf *uow.Factory, st *store.Store, n *services.NotificationService, sms gateways.SMSGateway, pub kioskBroadcaster) *AlarmTransportHandler {
	return &AlarmTransportHandler{uow: uowf, store: st, notifications: n, sms: sms, publisher: pub}
}

// Name identifies the handler in logs.
func (h *AlarmTransportHandler) Name() string { return "alarm_transport" }

// Handle delivers one AlarmTriggeredEvent. Events of any other type are
// ignored.
func (h *AlarmTransportHandler) Handle(ctx context.Context, evt domain.Event) error {
	alarm, ok := evt.(*domain.AlarmTriggeredEvent)
	if !ok {
		return nil
	}

	body := templates.MustRender(templates.AlarmBody, map[string]any{
		"Name": alarm.AlarmName,
		"Time": alarm.AlarmTime,
	})
	if alarm.URL != "" {
		body += " " + alarm.URL
	}

	if alarm.AlarmType == domain.AlarmKiosk {
		return h.publisher.PublishKioskNotification(ctx, alarm.Owner(), body)
	}

	triggeredBy := "alarm:" + alarm.AlarmID.String()
	if _, err := h.notifications.SendPushNotification(ctx, models.SendPushNotificationRequest{
		UserID:      alarm.Owner(),
		Content:     body,
		TriggeredBy: triggeredBy,
	}); err != nil {
		return err
	}

	if alarm.AlarmType == domain.AlarmLoud || alarm.AlarmType == domain.AlarmSiren {
		return h.text(ctx, alarm.Owner(), body, triggeredBy)
	}
	return nil
}

// text persists the outbound message, then hands the body to the SMS
// gateway. Delivery failure after commit is logged, not propagated.
func (h *AlarmTransportHandler) text(ctx context.Context, userID uuid.UUID, body, triggeredBy string) error {
	user, err := h.store.User(ctx, userID)
	if err != nil {
		return err
	}
	if user.PhoneNumber == "" {
		slog.Warn("Loud alarm without a phone number on file", "user_id", userID)
		return nil
	}

	msg := domain.NewMessage(user.ID, domain.RoleAssistant, body)
	msg.TriggeredBy = triggeredBy
	msg.Meta["to_number"] = user.PhoneNumber

	u, ctx, err := h.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback()

	u.Add(msg)
	if err := u.Commit(ctx); err != nil {
		return err
	}

	if err := h.sms.SendMessage(ctx, user.PhoneNumber, body); err != nil {
		slog.Error("Alarm SMS delivery failed",
			"user_id", user.ID, "triggered_by", triggeredBy, "error", err)
	}
	return nil
}
