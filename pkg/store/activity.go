package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/auditlog"
	"github.com/daybreakhq/daybreak/ent/braindump"
	"github.com/daybreakhq/daybreak/ent/message"
	"github.com/daybreakhq/daybreak/ent/pushnotification"
	"github.com/daybreakhq/daybreak/ent/pushsubscription"
	"github.com/daybreakhq/daybreak/pkg/domain"
)

// AuditLogsSince loads the user's audit entries with occurred_at strictly
// after since, oldest first. limit <= 0 means unbounded. Incremental sync
// and change-set queries read from here.
func (s *Store) AuditLogsSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*ent.AuditLog, error) {
	q := s.client.AuditLog.Query().
		Where(auditlog.UserID(userID), auditlog.OccurredAtGT(since)).
		Order(ent.Asc(auditlog.FieldOccurredAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return rows, nil
}

// LatestAuditTime returns the newest audit occurred_at for the user. The
// boolean is false when the user has no audit entries yet.
func (s *Store) LatestAuditTime(ctx context.Context, userID uuid.UUID) (time.Time, bool, error) {
	row, err := s.client.AuditLog.Query().
		Where(auditlog.UserID(userID)).
		Order(ent.Desc(auditlog.FieldOccurredAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to load latest audit time: %w", err)
	}
	return row.OccurredAt, true, nil
}

// RoutineActionTally counts one routine's completed vs punted actions
// inside the risk lookback window.
type RoutineActionTally struct {
	Completed int
	Punted    int
}

// RoutineActionStats tallies TaskCompletedEvent vs TaskPuntedEvent audit
// entries per routine since the cutoff. The task-risk query derives
// completion rates from this action history; materialized tasks the user
// never touched leave no trace here and stay out of the ratio.
func (s *Store) RoutineActionStats(ctx context.Context, userID uuid.UUID, since time.Time) (map[uuid.UUID]RoutineActionTally, error) {
	rows, err := s.client.AuditLog.Query().
		Where(
			auditlog.UserID(userID),
			auditlog.ActivityTypeIn("TaskCompletedEvent", "TaskPuntedEvent"),
			auditlog.OccurredAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list task action audits: %w", err)
	}

	stats := make(map[uuid.UUID]RoutineActionTally)
	for _, row := range rows {
		routineID, ok := auditRoutineID(row.Meta)
		if !ok {
			continue
		}
		tally := stats[routineID]
		if row.ActivityType == "TaskCompletedEvent" {
			tally.Completed++
		} else {
			tally.Punted++
		}
		stats[routineID] = tally
	}
	return stats, nil
}

// auditRoutineID extracts entity_data.routine_definition_id from an audit
// meta object. Adhoc task actions carry no routine id.
func auditRoutineID(meta map[string]any) (uuid.UUID, bool) {
	data, ok := meta["entity_data"].(map[string]any)
	if !ok {
		return uuid.UUID{}, false
	}
	raw, ok := data["routine_definition_id"].(string)
	if !ok {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

// PushSubscriptions loads the user's registered web-push endpoints.
func (s *Store) PushSubscriptions(ctx context.Context, userID uuid.UUID) ([]*domain.PushSubscription, error) {
	rows, err := s.client.PushSubscription.Query().
		Where(pushsubscription.UserID(userID)).
		Order(ent.Asc(pushsubscription.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	out := make([]*domain.PushSubscription, 0, len(rows))
	for _, row := range rows {
		out = append(out, subscriptionFromEnt(row))
	}
	return out, nil
}

// PushNotificationExists reports whether a notification with the given
// triggered_by key was already recorded. This is the dedup check every
// re-entrant evaluator performs before sending.
func (s *Store) PushNotificationExists(ctx context.Context, userID uuid.UUID, triggeredBy string) (bool, error) {
	exists, err := s.client.PushNotification.Query().
		Where(
			pushnotification.UserID(userID),
			pushnotification.TriggeredBy(triggeredBy),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check push notification dedup: %w", err)
	}
	return exists, nil
}

// PushNotificationSentSince reports whether any successful notification
// was sent after the given time. The smart evaluator's cooldown gate.
func (s *Store) PushNotificationSentSince(ctx context.Context, userID uuid.UUID, since time.Time) (bool, error) {
	exists, err := s.client.PushNotification.Query().
		Where(
			pushnotification.UserID(userID),
			pushnotification.StatusEQ(pushnotification.StatusSuccess),
			pushnotification.SentAtGT(since),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check notification cooldown: %w", err)
	}
	return exists, nil
}

// PushNotificationsBetween loads notification records sent in [from, to),
// oldest first. The day context includes the target date's notifications.
func (s *Store) PushNotificationsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.PushNotification, error) {
	rows, err := s.client.PushNotification.Query().
		Where(
			pushnotification.UserID(userID),
			pushnotification.SentAtGTE(from),
			pushnotification.SentAtLT(to),
		).
		Order(ent.Asc(pushnotification.FieldSentAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list push notifications: %w", err)
	}
	out := make([]*domain.PushNotification, 0, len(rows))
	for _, row := range rows {
		out = append(out, notificationFromEnt(row))
	}
	return out, nil
}

// MessageByID loads one message scoped to its owner.
func (s *Store) MessageByID(ctx context.Context, userID, id uuid.UUID) (*domain.Message, error) {
	row, err := s.client.Message.Query().
		Where(message.UserID(userID), message.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load message: %w", err)
	}
	return messageFromEnt(row), nil
}

// RecentMessages loads the user's newest messages, oldest first, capped
// at limit. Conversation context for LLM runs.
func (s *Store) RecentMessages(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Message, error) {
	rows, err := s.client.Message.Query().
		Where(message.UserID(userID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	out := make([]*domain.Message, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = messageFromEnt(row)
	}
	return out, nil
}

// BrainDumpByDate loads the user's capture list for a date.
func (s *Store) BrainDumpByDate(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.BrainDump, error) {
	row, err := s.client.BrainDump.Query().
		Where(braindump.UserID(userID), braindump.Date(string(date))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load brain dump: %w", err)
	}
	return brainDumpFromEnt(row), nil
}
