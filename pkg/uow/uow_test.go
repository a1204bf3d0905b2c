package uow

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

func TestBuildAuditRows_MonotonicTimestamps(t *testing.T) {
	userID := uuid.New()
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	evts := []domain.AuditableEvent{
		domain.NewEntityChangeEvent(userID, "day", uuid.New(), domain.ChangeCreated, nil),
		domain.NewEntityChangeEvent(userID, "task", uuid.New(), domain.ChangeCreated, nil),
		domain.NewEntityChangeEvent(userID, "task", uuid.New(), domain.ChangeUpdated, nil),
	}

	rows := buildAuditRows(evts, base)
	require.Len(t, rows, 3)

	assert.Equal(t, base, rows[0].OccurredAt)
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i].OccurredAt.After(rows[i-1].OccurredAt),
			"row %d must be strictly after row %d", i, i-1)
	}
	assert.Equal(t, "DayCreatedEvent", rows[0].ActivityType)
	assert.Equal(t, "TaskCreatedEvent", rows[1].ActivityType)
	assert.Equal(t, "TaskUpdatedEvent", rows[2].ActivityType)
}

func TestSnapshotMeta(t *testing.T) {
	task := domain.NewAdhocTask(uuid.New(), "water the plants", "2026-08-24")

	meta := snapshotMeta(task)
	require.NotNil(t, meta)

	data, ok := meta["entity_data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "water the plants", data["name"])
	assert.Equal(t, "2026-08-24", data["scheduled_date"])

	assert.Nil(t, snapshotMeta(nil))
}

func TestHasOwnAuditable(t *testing.T) {
	userID := uuid.New()
	task := domain.NewAdhocTask(userID, "stretch", "2026-08-24")
	task.MarkPersisted()
	require.NoError(t, task.RecordAction("complete", "", time.Now()))

	emitted := task.DrainEvents()
	require.NotEmpty(t, emitted)

	assert.True(t, hasOwnAuditable(emitted, task.ID))
	assert.False(t, hasOwnAuditable(emitted, uuid.New()))
}

func TestNestedScope_FeedsOuterAndCannotCommit(t *testing.T) {
	root := &UnitOfWork{}
	nested := &UnitOfWork{parent: root}

	task := domain.NewAdhocTask(uuid.New(), "call dentist", "2026-08-24")
	nested.Add(task)
	nested.Defer(JobRequest{UserID: task.UserID, Kind: "process_brain_dump_item"})

	assert.Len(t, root.registered, 1)
	assert.Len(t, root.jobs, 1)

	// Commit on a nested view is a no-op.
	require.NoError(t, nested.Commit(context.Background()))
	assert.False(t, root.done)
}

func TestNestedRollback_PoisonsOuterCommit(t *testing.T) {
	root := &UnitOfWork{}
	nested := &UnitOfWork{parent: root}

	require.NoError(t, nested.Rollback())
	assert.True(t, root.rollbackOnly)
}

func TestAdd_SameIdentityReplacesRegistration(t *testing.T) {
	root := &UnitOfWork{}
	userID := uuid.New()

	first := domain.NewDay(userID, "2026-08-24")
	second := domain.NewDay(userID, "2026-08-24") // same deterministic id

	root.Add(first)
	root.Add(second)

	require.Len(t, root.registered, 1)
	assert.Same(t, second, root.registered[0].(*domain.Day))
}
