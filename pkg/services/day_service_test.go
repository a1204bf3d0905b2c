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

func TestScheduleDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	routine := f.seedDailyRoutine(t, user, "Stretch")
	f.seedTemplate(t, user, routine)

	svc := NewDayService(f.uow, f.store)
	const date = "2026-08-24"

	day, err := svc.ScheduleDay(ctx, models.ScheduleDayRequest{UserID: user.ID, Date: date})
	require.NoError(t, err)
	assert.Equal(t, domain.DayScheduled, day.Status)
	assert.Equal(t, "default", day.TemplateSlug)
	assert.Equal(t, "Morning Work", day.TimeBlocks[0].Name)
	assert.Equal(t, []string{"ship something"}, day.Plan.Intentions)

	tasks, err := f.store.TasksForDate(ctx, user.ID, domain.Date(date))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Stretch", tasks[0].Name)
	assert.Equal(t, routine.ID, *tasks[0].RoutineDefinitionID)
	assert.Equal(t, domain.TaskNotStarted, tasks[0].Status)
}

func TestScheduleDayTwiceReplacesRoutineTasksKeepsAdhoc(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	routine := f.seedDailyRoutine(t, user, "Stretch")
	f.seedTemplate(t, user, routine)

	days := NewDayService(f.uow, f.store)
	tasksSvc := NewTaskService(f.uow, f.store)
	const date = "2026-08-24"

	_, err := days.ScheduleDay(ctx, models.ScheduleDayRequest{UserID: user.ID, Date: date})
	require.NoError(t, err)

	adhoc, err := tasksSvc.CreateAdhocTask(ctx, models.CreateAdhocTaskRequest{
		UserID: user.ID, Name: "Call plumber", Date: date,
	})
	require.NoError(t, err)

	firstRoutine, err := f.store.RoutineTasksForDate(ctx, user.ID, domain.Date(date))
	require.NoError(t, err)
	require.Len(t, firstRoutine, 1)

	_, err = days.ScheduleDay(ctx, models.ScheduleDayRequest{UserID: user.ID, Date: date})
	require.NoError(t, err)

	all, err := f.store.TasksForDate(ctx, user.ID, domain.Date(date))
	require.NoError(t, err)
	require.Len(t, all, 2)

	var sawAdhoc bool
	for _, task := range all {
		if task.ID == adhoc.ID {
			sawAdhoc = true
		}
		// The routine task is a fresh materialization, not the old row.
		assert.NotEqual(t, firstRoutine[0].ID, task.ID)
	}
	assert.True(t, sawAdhoc, "adhoc task must survive re-scheduling")

	// Second schedule is an update of the existing day, not a creation.
	assert.Equal(t, 1, f.auditCount(t, "DayCreatedEvent"))
	assert.Equal(t, 1, f.auditCount(t, "DayUpdatedEvent"))
}

func TestScheduleDayWithoutTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := domain.NewUser("Nora") // no template defaults
	f.commit(t, user)

	svc := NewDayService(f.uow, f.store)
	_, err := svc.ScheduleDay(ctx, models.ScheduleDayRequest{UserID: user.ID, Date: "2026-08-24"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "Day template is required to schedule")

	// Nothing was written.
	assert.Equal(t, 1, f.totalAuditCount(t)) // only the seeded UserCreatedEvent
}

func TestScheduleDayExplicitTemplateWins(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	f.seedTemplate(t, user)

	focus := domain.NewDayTemplate(user.ID, "focus")
	focus.Plan = domain.HighLevelPlan{Title: "Focus day"}
	f.commit(t, focus)

	svc := NewDayService(f.uow, f.store)
	focusID := focus.ID
	day, err := svc.ScheduleDay(ctx, models.ScheduleDayRequest{
		UserID: user.ID, Date: "2026-08-24", TemplateID: &focusID,
	})
	require.NoError(t, err)
	assert.Equal(t, "focus", day.TemplateSlug)
	assert.Equal(t, "Focus day", day.Plan.Title)
}

func TestPreviewDayOrdering(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	r := domain.NewRoutine(user.ID, "Evening", domain.RecurrenceSchedule{Frequency: domain.FrequencyDaily})
	r.Tasks = []domain.RoutineTask{
		{Name: "Journal"}, // no start time, sorts last
		{Name: "Dinner", Schedule: &domain.TimeWindow{TimingType: domain.TimingFixedTime, StartTime: "18:00"}},
		{Name: "Walk", Schedule: &domain.TimeWindow{TimingType: domain.TimingFixedTime, StartTime: "07:00"}},
	}
	f.commit(t, r)
	f.seedTemplate(t, user, r)

	svc := NewDayService(f.uow, f.store)
	tasks, err := svc.PreviewDay(ctx, user.ID, "2026-08-24", nil)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Walk", tasks[0].Name)
	assert.Equal(t, "Dinner", tasks[1].Name)
	assert.Equal(t, "Journal", tasks[2].Name)

	// Preview writes nothing.
	stored, err := f.store.TasksForDate(ctx, user.ID, "2026-08-24")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestWeeklyRoutineSkippedOnOtherDays(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	r := domain.NewRoutine(user.ID, "Review", domain.RecurrenceSchedule{
		Frequency: domain.FrequencyWeekly,
		Weekdays:  []time.Weekday{time.Friday},
	})
	r.Tasks = []domain.RoutineTask{{Name: "Weekly review"}}
	f.commit(t, r)
	f.seedTemplate(t, user, r)

	svc := NewDayService(f.uow, f.store)

	// 2026-08-24 is a Monday.
	tasks, err := svc.PreviewDay(ctx, user.ID, "2026-08-24", nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// 2026-08-28 is a Friday.
	tasks, err = svc.PreviewDay(ctx, user.ID, "2026-08-28", nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Weekly review", tasks[0].Name)
}

func TestCompleteAndUnscheduleDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	routine := f.seedDailyRoutine(t, user, "Stretch")
	f.seedTemplate(t, user, routine)

	svc := NewDayService(f.uow, f.store)
	const date = "2026-08-24"

	_, err := svc.ScheduleDay(ctx, models.ScheduleDayRequest{UserID: user.ID, Date: date})
	require.NoError(t, err)

	day, err := svc.CompleteDay(ctx, user.ID, date)
	require.NoError(t, err)
	assert.Equal(t, domain.DayComplete, day.Status)

	// Completed days cannot be unscheduled or re-scheduled.
	_, err = svc.UnscheduleDay(ctx, user.ID, date)
	require.Error(t, err)
	_, err = svc.ScheduleDay(ctx, models.ScheduleDayRequest{UserID: user.ID, Date: date})
	require.Error(t, err)
}

func TestUnscheduleDayRemovesRoutineTasks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)
	routine := f.seedDailyRoutine(t, user, "Stretch")
	f.seedTemplate(t, user, routine)

	svc := NewDayService(f.uow, f.store)
	tasksSvc := NewTaskService(f.uow, f.store)
	const date = "2026-08-24"

	_, err := svc.ScheduleDay(ctx, models.ScheduleDayRequest{UserID: user.ID, Date: date})
	require.NoError(t, err)
	_, err = tasksSvc.CreateAdhocTask(ctx, models.CreateAdhocTaskRequest{
		UserID: user.ID, Name: "Call plumber", Date: date,
	})
	require.NoError(t, err)

	day, err := svc.UnscheduleDay(ctx, user.ID, date)
	require.NoError(t, err)
	assert.Equal(t, domain.DayUnscheduled, day.Status)
	assert.Nil(t, day.TemplateID)

	remaining, err := f.store.TasksForDate(ctx, user.ID, domain.Date(date))
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Call plumber", remaining[0].Name)
}
