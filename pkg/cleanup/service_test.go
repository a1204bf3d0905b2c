package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/job"
	"github.com/daybreakhq/daybreak/pkg/config"
	testdb "github.com/daybreakhq/daybreak/test/database"
)

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		AuditRetentionDays: 365,
		EventTTL:           time.Hour,
		JobRetentionDays:   14,
		CleanupInterval:    time.Hour,
	}
}

func seedAuditLog(t *testing.T, client *ent.Client, occurredAt time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := client.AuditLog.Create().
		SetID(id).
		SetUserID(uuid.New()).
		SetActivityType("TaskCreatedEvent").
		SetEntityType("task").
		SetEntityID(uuid.New()).
		SetOccurredAt(occurredAt).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestServiceDeletesOldAuditLogs(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	seedAuditLog(t, client.Client, time.Now().Add(-400*24*time.Hour))
	recent := seedAuditLog(t, client.Client, time.Now())

	svc := NewService(testRetentionConfig(), client.Client)
	svc.runAll(ctx)

	rows, err := client.AuditLog.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, recent, rows[0].ID)
}

func TestServiceDeletesExpiredEvents(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	_, err := client.Event.Create().
		SetUserID(uuid.New()).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetUserID(uuid.New()).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(testRetentionConfig(), client.Client)
	svc.runAll(ctx)

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "old event deleted, recent event preserved")
}

func TestServiceDeletesFinishedJobsOnly(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	old := time.Now().Add(-30 * 24 * time.Hour)
	seedJob := func(status job.Status, updatedAt time.Time) uuid.UUID {
		id := uuid.New()
		err := client.Job.Create().
			SetID(id).
			SetUserID(uuid.New()).
			SetKind("schedule_user_day").
			SetStatus(status).
			SetRunAt(updatedAt).
			SetUpdatedAt(updatedAt).
			Exec(ctx)
		require.NoError(t, err)
		return id
	}

	seedJob(job.StatusCompleted, old)
	seedJob(job.StatusFailed, old)
	keptPending := seedJob(job.StatusPending, old)
	keptRecent := seedJob(job.StatusCompleted, time.Now())

	svc := NewService(testRetentionConfig(), client.Client)
	svc.runAll(ctx)

	rows, err := client.Job.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	ids := []uuid.UUID{rows[0].ID, rows[1].ID}
	assert.Contains(t, ids, keptPending)
	assert.Contains(t, ids, keptRecent)
}
