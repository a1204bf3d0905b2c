package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/gateways"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// NotificationService delivers web-push payloads and records every
// attempt, including skips, as PushNotification rows.
type NotificationService struct {
	uow   *uow.Factory
	store *store.Store
	push  gateways.PushGateway
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(uowf *uow.Factory, st *store.Store, push gateways.PushGateway) *NotificationService {
	return &NotificationService{uow: uowf, store: st, push: push}
}

// SendPushNotification delivers the content to the user's subscriptions
// (all of them when the request names none) and persists the attempt. A
// user without subscriptions yields a skipped record; delivery failure on
// every endpoint yields an error record. The record always commits.
func (n *NotificationService) SendPushNotification(ctx context.Context, req models.SendPushNotificationRequest) (*domain.PushNotification, error) {
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	if req.TriggeredBy == "" {
		return nil, NewValidationError("triggered_by", "required")
	}

	subs, err := n.resolveSubscriptions(ctx, req)
	if err != nil {
		return nil, err
	}

	record := domain.NewPushNotification(req.UserID, req.Content, req.TriggeredBy, domain.PushSuccess)
	record.LLMSnapshot = req.LLMSnapshot

	if len(subs) == 0 {
		record.Status = domain.PushSkipped
		record.ErrorMessage = "no_subscriptions"
	} else {
		record.PushSubscriptionIDs = subscriptionIDs(subs)
		payload, _ := json.Marshal(map[string]string{"body": req.Content})

		delivered := 0
		var lastErr error
		for _, sub := range subs {
			if err := n.push.Send(ctx, sub, payload); err != nil {
				lastErr = err
				slog.Error("Push delivery failed",
					"user_id", req.UserID,
					"subscription_id", sub.ID,
					"error", err)
				continue
			}
			delivered++
		}
		if delivered == 0 {
			record.Status = domain.PushError
			record.ErrorMessage = lastErr.Error()
		}
	}

	u, ctx, err := n.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	u.Add(record)
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

// RegisterPushSubscription stores a device endpoint for the user.
// Re-registering an endpoint the user already has returns the existing
// subscription unchanged.
func (n *NotificationService) RegisterPushSubscription(ctx context.Context, userID uuid.UUID, endpoint string, keys map[string]string) (*domain.PushSubscription, error) {
	if endpoint == "" {
		return nil, NewValidationError("endpoint", "required")
	}

	subs, err := n.store.PushSubscriptions(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if sub.Endpoint == endpoint {
			return sub, nil
		}
	}

	sub := domain.NewPushSubscription(userID, endpoint, keys)

	u, ctx, err := n.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer u.Rollback()

	u.Add(sub)
	if err := u.Commit(ctx); err != nil {
		return nil, err
	}
	return sub, nil
}

func (n *NotificationService) resolveSubscriptions(ctx context.Context, req models.SendPushNotificationRequest) ([]*domain.PushSubscription, error) {
	subs, err := n.store.PushSubscriptions(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if len(req.SubscriptionIDs) == 0 {
		return subs, nil
	}
	wanted := make(map[uuid.UUID]bool, len(req.SubscriptionIDs))
	for _, id := range req.SubscriptionIDs {
		wanted[id] = true
	}
	out := subs[:0]
	for _, sub := range subs {
		if wanted[sub.ID] {
			out = append(out, sub)
		}
	}
	return out, nil
}

func subscriptionIDs(subs []*domain.PushSubscription) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ID)
	}
	return ids
}
