package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/models"
	"github.com/daybreakhq/daybreak/pkg/store"
)

// ContextService serves the read models of the sync protocol: the full
// day context and the incremental change set.
type ContextService struct {
	store *store.Store
}

// NewContextService creates a ContextService.
func NewContextService(st *store.Store) *ContextService {
	return &ContextService{store: st}
}

// DayContext assembles the full client snapshot for one target date.
func (c *ContextService) DayContext(ctx context.Context, userID uuid.UUID, date domain.Date, loc *time.Location) (*models.DayContext, error) {
	out := &models.DayContext{Date: string(date)}

	day, err := c.store.DayByDate(ctx, userID, date)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	out.Day = day

	if out.Tasks, err = c.store.TasksForDate(ctx, userID, date); err != nil {
		return nil, err
	}

	from := date.Time(loc)
	to := date.AddDays(1).Time(loc)
	if out.CalendarEntries, err = c.store.EntriesStartingBetween(ctx, userID, from, to); err != nil {
		return nil, err
	}
	if out.Messages, err = c.store.RecentMessages(ctx, userID, 50); err != nil {
		return nil, err
	}
	dump, err := c.store.BrainDumpByDate(ctx, userID, date)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	out.BrainDump = dump

	if out.Routines, err = c.store.Routines(ctx, userID); err != nil {
		return nil, err
	}
	if out.PushNotifications, err = c.store.PushNotificationsBetween(ctx, userID, from, to); err != nil {
		return nil, err
	}
	return out, nil
}

// LastAuditTimestamp returns the newest audit occurred_at, or nil when the
// user has none.
func (c *ContextService) LastAuditTimestamp(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	at, ok, err := c.store.LatestAuditTime(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &at, nil
}

// ChangesSince derives the incremental change set from audit logs newer
// than since, filtered to entries pertaining to the target date.
func (c *ContextService) ChangesSince(ctx context.Context, userID uuid.UUID, since time.Time, targetDate domain.Date) (*models.ChangeSet, error) {
	rows, err := c.store.AuditLogsSince(ctx, userID, since, 0)
	if err != nil {
		return nil, err
	}

	set := &models.ChangeSet{Changes: []models.Change{}}
	for _, row := range rows {
		at := row.OccurredAt
		set.LastAuditLogTimestamp = &at

		if !AuditEntryIsForDate(row.EntityType, row.Meta, targetDate) {
			continue
		}
		change, ok := ChangeFromAudit(row.ActivityType, row.EntityType, row.EntityID, row.Meta)
		if !ok {
			continue
		}
		set.Changes = append(set.Changes, change)
	}
	return set, nil
}

// AuditEntryIsForDate reports whether an audit entry pertains to the
// target date's view. Whole-user entities always do.
func AuditEntryIsForDate(entityType string, meta map[string]any, targetDate domain.Date) bool {
	switch entityType {
	case "routine", "day_template", "user", "push_subscription":
		return true
	}

	data, ok := entityData(meta)
	if !ok {
		// Deletions carry no snapshot; let the client reconcile.
		return true
	}
	if v, ok := data["scheduled_date"].(string); ok {
		return v == string(targetDate)
	}
	if v, ok := data["date"].(string); ok {
		return v == string(targetDate)
	}
	if v, ok := data["starts_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return domain.DateOf(t, time.UTC) == targetDate
		}
	}
	return true
}

// ChangeFromAudit derives the wire change from one audit entry. The
// boolean is false for activity types that do not map to a change.
func ChangeFromAudit(activityType, entityType string, entityID uuid.UUID, meta map[string]any) (models.Change, bool) {
	kind, ok := changeKind(activityType)
	if !ok {
		return models.Change{}, false
	}
	change := models.Change{
		ChangeType: kind,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if kind != string(domain.ChangeDeleted) {
		if data, ok := entityData(meta); ok {
			change.EntityData = data
		}
	}
	return change, true
}

func changeKind(activityType string) (string, bool) {
	switch {
	case strings.Contains(activityType, "Created"):
		return string(domain.ChangeCreated), true
	case strings.Contains(activityType, "Deleted"):
		return string(domain.ChangeDeleted), true
	case strings.Contains(activityType, "Updated"),
		activityType == "TaskCompletedEvent",
		activityType == "TaskPuntedEvent":
		return string(domain.ChangeUpdated), true
	default:
		return "", false
	}
}

func entityData(meta map[string]any) (map[string]any, bool) {
	if meta == nil {
		return nil, false
	}
	data, ok := meta["entity_data"].(map[string]any)
	return data, ok
}
