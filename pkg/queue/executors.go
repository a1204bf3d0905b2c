package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
)

// payloadString extracts a required string field from a job payload.
func payloadString(payload map[string]any, key string) (string, error) {
	v, ok := payload[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("job payload missing %q", key)
	}
	return v, nil
}

// payloadUUID extracts a required UUID field from a job payload.
func payloadUUID(payload map[string]any, key string) (uuid.UUID, error) {
	s, err := payloadString(payload, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("job payload field %q is not a UUID: %w", key, err)
	}
	return id, nil
}

// NewScheduleDayExecutor handles schedule_user_day jobs from the nightly
// fan-out. A user without a template default for the date is skipped, not
// retried; the condition will not fix itself overnight.
func NewScheduleDayExecutor(days *services.DayService) ExecutorFunc {
	return func(ctx context.Context, row *ent.Job) error {
		date, err := payloadString(row.Payload, "date")
		if err != nil {
			return err
		}
		_, err = days.ScheduleDay(ctx, models.ScheduleDayRequest{
			UserID: row.UserID,
			Date:   date,
		})
		switch {
		case err == nil:
			return nil
		case services.IsValidationError(err):
			slog.Info("Skipping day schedule", "user_id", row.UserID, "date", date, "reason", err)
			return nil
		case errors.Is(err, services.ErrNotFound):
			return nil
		default:
			return err
		}
	}
}

// NewPushExecutor handles send_push_notification jobs.
func NewPushExecutor(notifications *services.NotificationService) ExecutorFunc {
	return func(ctx context.Context, row *ent.Job) error {
		content, err := payloadString(row.Payload, "content")
		if err != nil {
			return err
		}
		triggeredBy, err := payloadString(row.Payload, "triggered_by")
		if err != nil {
			return err
		}

		var subIDs []uuid.UUID
		if raw, ok := row.Payload["subscription_ids"].([]any); ok {
			for _, v := range raw {
				s, ok := v.(string)
				if !ok {
					continue
				}
				id, err := uuid.Parse(s)
				if err != nil {
					return fmt.Errorf("invalid subscription id %q: %w", s, err)
				}
				subIDs = append(subIDs, id)
			}
		}

		_, err = notifications.SendPushNotification(ctx, models.SendPushNotificationRequest{
			UserID:          row.UserID,
			Content:         content,
			TriggeredBy:     triggeredBy,
			SubscriptionIDs: subIDs,
		})
		return err
	}
}

// UserEvaluator is the shape every reactive evaluator exposes.
type UserEvaluator interface {
	EvaluateUser(ctx context.Context, user *domain.User, now time.Time) error
}

// NewUserEvaluatorExecutor adapts a reactive evaluator to the per-user
// fan-out jobs the cron loop enqueues. A deleted user completes the job.
func NewUserEvaluatorExecutor(st *store.Store, ev UserEvaluator) ExecutorFunc {
	return func(ctx context.Context, row *ent.Job) error {
		user, err := st.User(ctx, row.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return ev.EvaluateUser(ctx, user, time.Now())
	}
}
