package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/models"
)

func TestRecordTaskActionComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	svc := NewTaskService(f.uow, f.store)
	task, err := svc.CreateAdhocTask(ctx, models.CreateAdhocTaskRequest{
		UserID: user.ID, Name: "Call plumber", Date: "2026-08-24",
	})
	require.NoError(t, err)

	updated, err := svc.RecordTaskAction(ctx, models.RecordTaskActionRequest{
		UserID: user.ID, TaskID: task.ID, Action: "complete", Note: "done early",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskComplete, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	require.Len(t, updated.Actions, 1)
	assert.Equal(t, "complete", updated.Actions[0].Action)
	assert.Equal(t, "done early", updated.Actions[0].Note)

	// Completion audits as the specific event, not a generic update.
	assert.Equal(t, 1, f.auditCount(t, "TaskCompletedEvent"))
	assert.Equal(t, 0, f.auditCount(t, "TaskUpdatedEvent"))
}

func TestRecordTaskActionPuntAndInvariants(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	svc := NewTaskService(f.uow, f.store)
	task, err := svc.CreateAdhocTask(ctx, models.CreateAdhocTaskRequest{
		UserID: user.ID, Name: "Taxes", Date: "2026-08-24",
	})
	require.NoError(t, err)

	punted, err := svc.RecordTaskAction(ctx, models.RecordTaskActionRequest{
		UserID: user.ID, TaskID: task.ID, Action: "punt",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPunted, punted.Status)
	assert.Equal(t, 1, f.auditCount(t, "TaskPuntedEvent"))

	_, err = svc.RecordTaskAction(ctx, models.RecordTaskActionRequest{
		UserID: user.ID, TaskID: task.ID, Action: "complete",
	})
	require.NoError(t, err)

	// Completing again violates the state machine and writes nothing.
	before := f.totalAuditCount(t)
	_, err = svc.RecordTaskAction(ctx, models.RecordTaskActionRequest{
		UserID: user.ID, TaskID: task.ID, Action: "complete",
	})
	require.Error(t, err)
	assert.Equal(t, before, f.totalAuditCount(t))
}

func TestRecordTaskActionCrossUserRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.seedUser(t)
	other := domain.NewUser("Mallory")
	f.commit(t, other)

	svc := NewTaskService(f.uow, f.store)
	task, err := svc.CreateAdhocTask(ctx, models.CreateAdhocTaskRequest{
		UserID: owner.ID, Name: "Private", Date: "2026-08-24",
	})
	require.NoError(t, err)

	_, err = svc.RecordTaskAction(ctx, models.RecordTaskActionRequest{
		UserID: other.ID, TaskID: task.ID, Action: "complete",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScoreTask(t *testing.T) {
	base := &domain.Task{Name: "Stretch", Frequency: domain.FrequencyWeekly}

	t.Run("tags stack with rate and frequency", func(t *testing.T) {
		task := *base
		task.Tags = []string{"avoidant", "FORGETTABLE"}
		risk := scoreTask(&task, 35)
		// 30 + 25 + 40 (rate < 40) + 15 (non-DAILY)
		assert.Equal(t, 110, risk.Score)
		assert.Len(t, risk.Reasons, 4)
	})

	t.Run("mid rate", func(t *testing.T) {
		risk := scoreTask(base, 55)
		assert.Equal(t, riskWeightMidRate+riskWeightNonDaily, risk.Score)
	})

	t.Run("no history", func(t *testing.T) {
		risk := scoreTask(base, -1)
		assert.Equal(t, riskWeightNonDaily, risk.Score)
		assert.Equal(t, -1, risk.CompletionRate)
	})

	t.Run("urgent tag", func(t *testing.T) {
		task := *base
		task.Tags = []string{"urgent"}
		risk := scoreTask(&task, 90)
		assert.Equal(t, riskWeightUrgent+riskWeightNonDaily, risk.Score)
	})
}

func TestTaskRiskQuery(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	weekly := domain.NewRoutine(user.ID, "Deep clean", domain.RecurrenceSchedule{Frequency: domain.FrequencyWeekly, Weekdays: []time.Weekday{time.Monday}})
	weekly.Tasks = []domain.RoutineTask{{Name: "Deep clean", Tags: []string{"AVOIDANT"}}}
	daily := domain.NewRoutine(user.ID, "Hydrate", domain.RecurrenceSchedule{Frequency: domain.FrequencyDaily})
	daily.Tasks = []domain.RoutineTask{{Name: "Hydrate"}}
	f.commit(t, weekly, daily)

	past1 := domain.MaterializeRoutineTask(user.ID, weekly, weekly.Tasks[0], "2026-08-10")
	past2 := domain.MaterializeRoutineTask(user.ID, weekly, weekly.Tasks[0], "2026-08-17")
	today1 := domain.MaterializeRoutineTask(user.ID, weekly, weekly.Tasks[0], "2026-08-24")
	today2 := domain.MaterializeRoutineTask(user.ID, daily, daily.Tasks[0], "2026-08-24")
	f.commit(t, past1, past2, today1, today2)

	// History: one punt, one completion. Rate = 1/(1+1) = 50%.
	svc := NewTaskService(f.uow, f.store)
	_, err := svc.RecordTaskAction(ctx, models.RecordTaskActionRequest{
		UserID: user.ID, TaskID: past1.ID, Action: "punt",
	})
	require.NoError(t, err)
	_, err = svc.RecordTaskAction(ctx, models.RecordTaskActionRequest{
		UserID: user.ID, TaskID: past2.ID, Action: "complete",
	})
	require.NoError(t, err)

	risks, err := svc.TaskRisk(ctx, user.ID, "2026-08-24", 30)
	require.NoError(t, err)

	// DAILY task excluded; the weekly AVOIDANT task at a 50% rate scores
	// 30 + 20 + 15.
	require.Len(t, risks, 1)
	assert.Equal(t, today1.ID, risks[0].TaskID)
	assert.Equal(t, 65, risks[0].Score)
	assert.Equal(t, 50, risks[0].CompletionRate)
}

func TestTaskRiskRateCountsActionsNotMaterializations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	weekly := domain.NewRoutine(user.ID, "Water plants", domain.RecurrenceSchedule{Frequency: domain.FrequencyWeekly, Weekdays: []time.Weekday{time.Monday}})
	weekly.Tasks = []domain.RoutineTask{{Name: "Water plants"}}
	f.commit(t, weekly)

	// Three materialized tasks in the window; one completed, none punted.
	// The untouched tasks are not failures: the rate is 1/(1+0) = 100%,
	// not 1/3, so the untagged weekly task scores only 15 and stays out.
	past1 := domain.MaterializeRoutineTask(user.ID, weekly, weekly.Tasks[0], "2026-08-10")
	past2 := domain.MaterializeRoutineTask(user.ID, weekly, weekly.Tasks[0], "2026-08-17")
	today := domain.MaterializeRoutineTask(user.ID, weekly, weekly.Tasks[0], "2026-08-24")
	f.commit(t, past1, past2, today)

	svc := NewTaskService(f.uow, f.store)
	_, err := svc.RecordTaskAction(ctx, models.RecordTaskActionRequest{
		UserID: user.ID, TaskID: past1.ID, Action: "complete",
	})
	require.NoError(t, err)

	risks, err := svc.TaskRisk(ctx, user.ID, "2026-08-24", 30)
	require.NoError(t, err)
	assert.Empty(t, risks)
}
