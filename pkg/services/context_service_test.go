package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/models"
)

func TestDayContextAssembly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	routine := f.seedDailyRoutine(t, user, "Stretch")
	f.seedTemplate(t, user, routine)

	const date = "2026-08-24"
	days := NewDayService(f.uow, f.store)
	_, err := days.ScheduleDay(ctx, models.ScheduleDayRequest{UserID: user.ID, Date: date})
	require.NoError(t, err)

	entry := domain.NewCalendarEntry(user.ID, "google", "ev-1")
	entry.Apply(domain.EntryFields{
		Name:     "Dentist",
		StartsAt: time.Date(2026, 8, 24, 14, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 8, 24, 15, 0, 0, 0, time.UTC),
	})
	msg := domain.NewMessage(user.ID, domain.RoleUser, "hello")
	f.commit(t, entry, msg)

	msgs := NewMessageService(f.uow, f.store)
	_, err = msgs.CaptureBrainDump(ctx, models.CaptureBrainDumpRequest{
		UserID: user.ID, Date: date, Items: []string{"buy stamps"},
	})
	require.NoError(t, err)

	svc := NewContextService(f.store)
	got, err := svc.DayContext(ctx, user.ID, date, time.UTC)
	require.NoError(t, err)

	require.NotNil(t, got.Day)
	assert.Equal(t, domain.DayScheduled, got.Day.Status)
	require.Len(t, got.Tasks, 1)
	require.Len(t, got.CalendarEntries, 1)
	assert.Equal(t, "Dentist", got.CalendarEntries[0].Name)
	require.Len(t, got.Messages, 1)
	require.NotNil(t, got.BrainDump)
	assert.Len(t, got.BrainDump.Items, 1)
	require.Len(t, got.Routines, 1)
}

func TestDayContextEmptyDate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	svc := NewContextService(f.store)
	got, err := svc.DayContext(ctx, user.ID, "2026-08-24", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, got.Day)
	assert.Nil(t, got.BrainDump)
	assert.Empty(t, got.Tasks)
}

func TestChangesSince(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	svc := NewContextService(f.store)
	since, err := svc.LastAuditTimestamp(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, since)

	tasks := NewTaskService(f.uow, f.store)
	today, err := tasks.CreateAdhocTask(ctx, models.CreateAdhocTaskRequest{
		UserID: user.ID, Name: "Call plumber", Date: "2026-08-24",
	})
	require.NoError(t, err)
	_, err = tasks.CreateAdhocTask(ctx, models.CreateAdhocTaskRequest{
		UserID: user.ID, Name: "Tomorrow thing", Date: "2026-08-25",
	})
	require.NoError(t, err)
	_, err = tasks.RecordTaskAction(ctx, models.RecordTaskActionRequest{
		UserID: user.ID, TaskID: today.ID, Action: "complete",
	})
	require.NoError(t, err)

	set, err := svc.ChangesSince(ctx, user.ID, *since, "2026-08-24")
	require.NoError(t, err)
	require.NotNil(t, set.LastAuditLogTimestamp)
	assert.True(t, set.LastAuditLogTimestamp.After(*since))

	// The other date's creation is filtered out; today's task appears as a
	// creation and then an update from the completion event.
	require.Len(t, set.Changes, 2)
	assert.Equal(t, "created", set.Changes[0].ChangeType)
	assert.Equal(t, today.ID, set.Changes[0].EntityID)
	assert.Equal(t, "Call plumber", set.Changes[0].EntityData["name"])
	assert.Equal(t, "updated", set.Changes[1].ChangeType)
	assert.Equal(t, today.ID, set.Changes[1].EntityID)

	// The cursor advances past everything seen; a follow-up poll is empty.
	again, err := svc.ChangesSince(ctx, user.ID, *set.LastAuditLogTimestamp, "2026-08-24")
	require.NoError(t, err)
	assert.Empty(t, again.Changes)
	assert.Nil(t, again.LastAuditLogTimestamp)
}

func TestAuditEntryIsForDate(t *testing.T) {
	target := domain.Date("2026-08-24")

	cases := []struct {
		name       string
		entityType string
		meta       map[string]any
		want       bool
	}{
		{"whole user entity", "routine", nil, true},
		{"task on date", "task", map[string]any{"entity_data": map[string]any{"scheduled_date": "2026-08-24"}}, true},
		{"task other date", "task", map[string]any{"entity_data": map[string]any{"scheduled_date": "2026-08-25"}}, false},
		{"day on date", "day", map[string]any{"entity_data": map[string]any{"date": "2026-08-24"}}, true},
		{"entry starting on date", "calendar_entry", map[string]any{"entity_data": map[string]any{"starts_at": "2026-08-24T09:00:00Z"}}, true},
		{"entry other date", "calendar_entry", map[string]any{"entity_data": map[string]any{"starts_at": "2026-08-26T09:00:00Z"}}, false},
		{"deletion without snapshot", "task", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AuditEntryIsForDate(tc.entityType, tc.meta, target))
		})
	}
}

func TestChangeFromAudit(t *testing.T) {
	id := uuid.New()
	meta := map[string]any{"entity_data": map[string]any{"name": "Stretch"}}

	change, ok := ChangeFromAudit("TaskCreatedEvent", "task", id, meta)
	require.True(t, ok)
	assert.Equal(t, "created", change.ChangeType)
	assert.Equal(t, "Stretch", change.EntityData["name"])

	change, ok = ChangeFromAudit("TaskCompletedEvent", "task", id, meta)
	require.True(t, ok)
	assert.Equal(t, "updated", change.ChangeType)

	change, ok = ChangeFromAudit("TaskDeletedEvent", "task", id, meta)
	require.True(t, ok)
	assert.Equal(t, "deleted", change.ChangeType)
	assert.Nil(t, change.EntityData)

	_, ok = ChangeFromAudit("AlarmTriggeredEvent", "day", id, meta)
	assert.False(t, ok)
}
