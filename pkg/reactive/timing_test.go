package reactive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent/auditlog"
	"github.com/daybreakhq/daybreak/pkg/domain"
)

// timingTask seeds a task for 2026-08-24 with the given window and status.
func timingTask(t *testing.T, f *fixture, user *domain.User, window *domain.TimeWindow, status domain.TaskStatus) *domain.Task {
	t.Helper()
	task := domain.NewAdhocTask(user.ID, "Mow the lawn", "2026-08-24")
	task.Schedule = window
	task.Status = status
	f.commit(t, task)
	return task
}

func timingAt(hour int) time.Time {
	return time.Date(2026, 8, 24, hour, 0, 0, 0, time.UTC)
}

func TestTimingWindowOpensAndCloses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	eval := NewTimingEvaluator(f.uow, f.store)

	task := timingTask(t, f, user, &domain.TimeWindow{
		TimingType: domain.TimingTimeWindow, StartTime: "09:00", EndTime: "17:00",
	}, domain.TaskNotStarted)

	require.NoError(t, eval.EvaluateUser(ctx, user, timingAt(8)))
	loaded, err := f.store.TaskByID(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskNotReady, loaded.Status)

	require.NoError(t, eval.EvaluateUser(ctx, user, timingAt(12)))
	loaded, err = f.store.TaskByID(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskReady, loaded.Status)

	require.NoError(t, eval.EvaluateUser(ctx, user, timingAt(18)))
	loaded, err = f.store.TaskByID(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskNotReady, loaded.Status)

	// Every transition audits as a task update for incremental sync.
	count, err := f.client.AuditLog.Query().
		Where(auditlog.UserID(user.ID), auditlog.ActivityType("TaskUpdatedEvent")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTimingFixedTime(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	eval := NewTimingEvaluator(f.uow, f.store)

	task := timingTask(t, f, user, &domain.TimeWindow{
		TimingType: domain.TimingFixedTime, StartTime: "14:00",
	}, domain.TaskNotStarted)

	require.NoError(t, eval.EvaluateUser(ctx, user, timingAt(12)))
	loaded, err := f.store.TaskByID(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskNotReady, loaded.Status)

	require.NoError(t, eval.EvaluateUser(ctx, user, timingAt(14)))
	loaded, err = f.store.TaskByID(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskReady, loaded.Status)
}

func TestTimingDeadlineIsAlwaysActionable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	eval := NewTimingEvaluator(f.uow, f.store)

	task := timingTask(t, f, user, &domain.TimeWindow{
		TimingType: domain.TimingDeadline, EndTime: "17:00",
	}, domain.TaskNotStarted)

	require.NoError(t, eval.EvaluateUser(ctx, user, timingAt(8)))
	loaded, err := f.store.TaskByID(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskReady, loaded.Status)
}

func TestTimingLeavesUserStatesAndFlexibleAlone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	eval := NewTimingEvaluator(f.uow, f.store)

	pending := timingTask(t, f, user, &domain.TimeWindow{
		TimingType: domain.TimingTimeWindow, StartTime: "09:00", EndTime: "17:00",
	}, domain.TaskPending)
	flexible := timingTask(t, f, user, &domain.TimeWindow{
		TimingType: domain.TimingFlexible,
	}, domain.TaskNotStarted)
	unscheduled := timingTask(t, f, user, nil, domain.TaskNotStarted)

	require.NoError(t, eval.EvaluateUser(ctx, user, timingAt(12)))

	for _, tc := range []struct {
		task *domain.Task
		want domain.TaskStatus
	}{
		{pending, domain.TaskPending},
		{flexible, domain.TaskNotStarted},
		{unscheduled, domain.TaskNotStarted},
	} {
		loaded, err := f.store.TaskByID(ctx, user.ID, tc.task.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.want, loaded.Status)
	}

	// No writes means no audit noise beyond the creations.
	count, err := f.client.AuditLog.Query().
		Where(auditlog.UserID(user.ID), auditlog.ActivityType("TaskUpdatedEvent")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
