package uow

import (
	"context"
	"fmt"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/day"
	"github.com/daybreakhq/daybreak/ent/message"
	"github.com/daybreakhq/daybreak/ent/pushnotification"
	"github.com/daybreakhq/daybreak/ent/task"
	"github.com/daybreakhq/daybreak/pkg/domain"
)

// persist routes an aggregate to its upsert. Upserts are keyed on the
// aggregate identity; deterministic identities make re-runs converge on
// the same row.
func (u *UnitOfWork) persist(ctx context.Context, agg domain.Aggregate) error {
	switch a := agg.(type) {
	case *domain.User:
		return u.persistUser(ctx, a)
	case *domain.Day:
		return u.persistDay(ctx, a)
	case *domain.Task:
		return u.persistTask(ctx, a)
	case *domain.Routine:
		return u.persistRoutine(ctx, a)
	case *domain.DayTemplate:
		return u.persistDayTemplate(ctx, a)
	case *domain.CalendarEntry:
		return u.persistCalendarEntry(ctx, a)
	case *domain.CalendarEntrySeries:
		return u.persistCalendarEntrySeries(ctx, a)
	case *domain.Message:
		return u.persistMessage(ctx, a)
	case *domain.PushSubscription:
		return u.persistPushSubscription(ctx, a)
	case *domain.PushNotification:
		return u.persistPushNotification(ctx, a)
	case *domain.BrainDump:
		return u.persistBrainDump(ctx, a)
	default:
		return fmt.Errorf("no persister for aggregate type %q", agg.AggregateType())
	}
}

// delete routes an aggregate to its row delete. A missing row is not an
// error: removal is idempotent.
func (u *UnitOfWork) delete(ctx context.Context, agg domain.Aggregate) error {
	var err error
	switch agg.(type) {
	case *domain.User:
		err = u.tx.User.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.Day:
		err = u.tx.Day.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.Task:
		err = u.tx.Task.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.Routine:
		err = u.tx.Routine.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.DayTemplate:
		err = u.tx.DayTemplate.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.CalendarEntry:
		err = u.tx.CalendarEntry.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.CalendarEntrySeries:
		err = u.tx.CalendarEntrySeries.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.Message:
		err = u.tx.Message.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.PushSubscription:
		err = u.tx.PushSubscription.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.PushNotification:
		err = u.tx.PushNotification.DeleteOneID(agg.AggregateID()).Exec(ctx)
	case *domain.BrainDump:
		err = u.tx.BrainDump.DeleteOneID(agg.AggregateID()).Exec(ctx)
	default:
		return fmt.Errorf("no persister for aggregate type %q", agg.AggregateType())
	}
	if ent.IsNotFound(err) {
		return nil
	}
	return err
}

func (u *UnitOfWork) persistUser(ctx context.Context, a *domain.User) error {
	return u.tx.User.Create().
		SetID(a.ID).
		SetName(a.Name).
		SetPhoneNumber(a.PhoneNumber).
		SetSettings(a.Settings).
		OnConflictColumns("user_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistDay(ctx context.Context, a *domain.Day) error {
	b := u.tx.Day.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetDate(string(a.Date)).
		SetStatus(day.Status(a.Status)).
		SetNillableTemplateID(a.TemplateID).
		SetTemplateSlug(a.TemplateSlug).
		SetTimeBlocks(a.TimeBlocks).
		SetHighLevelPlan(a.Plan).
		SetAlarms(a.Alarms).
		SetTags(a.Tags).
		SetNillableScheduledAt(a.ScheduledAt)
	return b.
		OnConflictColumns("day_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistTask(ctx context.Context, a *domain.Task) error {
	b := u.tx.Task.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetName(a.Name).
		SetStatus(task.Status(a.Status)).
		SetCategory(a.Category).
		SetType(a.Type).
		SetFrequency(string(a.Frequency)).
		SetScheduledDate(string(a.ScheduledDate)).
		SetNillableRoutineDefinitionID(a.RoutineDefinitionID).
		SetTags(a.Tags).
		SetActions(a.Actions).
		SetNillableCompletedAt(a.CompletedAt).
		SetCreatedAt(a.CreatedAt)
	if a.Schedule != nil {
		b.SetSchedule(a.Schedule)
	}
	if a.LLMRunResult != nil {
		b.SetLlmRunResult(a.LLMRunResult)
	}
	return b.
		OnConflictColumns("task_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistRoutine(ctx context.Context, a *domain.Routine) error {
	return u.tx.Routine.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetName(a.Name).
		SetSchedule(a.Schedule).
		SetRoutineTasks(a.Tasks).
		SetTags(a.Tags).
		OnConflictColumns("routine_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistDayTemplate(ctx context.Context, a *domain.DayTemplate) error {
	return u.tx.DayTemplate.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetSlug(a.Slug).
		SetStartTime(a.StartTime).
		SetEndTime(a.EndTime).
		SetRoutineDefinitionIds(a.RoutineDefinitionIDs).
		SetTimeBlocks(a.TimeBlocks).
		SetHighLevelPlan(a.Plan).
		OnConflictColumns("day_template_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistCalendarEntry(ctx context.Context, a *domain.CalendarEntry) error {
	return u.tx.CalendarEntry.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetPlatform(a.Platform).
		SetPlatformID(a.PlatformID).
		SetNillableCalendarEntrySeriesID(a.SeriesID).
		SetName(a.Name).
		SetStartsAt(a.StartsAt).
		SetEndsAt(a.EndsAt).
		SetFrequency(string(a.Frequency)).
		SetEventCategory(a.Category).
		SetAttendanceStatus(string(a.AttendanceStatus)).
		OnConflictColumns("calendar_entry_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistCalendarEntrySeries(ctx context.Context, a *domain.CalendarEntrySeries) error {
	return u.tx.CalendarEntrySeries.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetPlatform(a.Platform).
		SetPlatformID(a.PlatformID).
		SetName(a.Name).
		SetFrequency(string(a.Frequency)).
		SetEventCategory(a.Category).
		SetRecurrence(a.Recurrence).
		SetStartsAt(a.StartsAt).
		SetNillableEndsAt(a.EndsAt).
		OnConflictColumns("calendar_entry_series_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistMessage(ctx context.Context, a *domain.Message) error {
	b := u.tx.Message.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetRole(message.Role(a.Role)).
		SetContent(a.Content).
		SetTriggeredBy(a.TriggeredBy).
		SetCreatedAt(a.CreatedAt)
	if a.Meta != nil {
		b.SetMeta(a.Meta)
	}
	if a.LLMRunResult != nil {
		b.SetLlmRunResult(a.LLMRunResult)
	}
	return b.
		OnConflictColumns("message_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistPushSubscription(ctx context.Context, a *domain.PushSubscription) error {
	b := u.tx.PushSubscription.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetEndpoint(a.Endpoint).
		SetCreatedAt(a.CreatedAt)
	if a.Keys != nil {
		b.SetKeys(a.Keys)
	}
	return b.
		OnConflictColumns("push_subscription_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistPushNotification(ctx context.Context, a *domain.PushNotification) error {
	b := u.tx.PushNotification.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetPushSubscriptionIds(a.PushSubscriptionIDs).
		SetContent(a.Content).
		SetStatus(pushnotification.Status(a.Status)).
		SetErrorMessage(a.ErrorMessage).
		SetSentAt(a.SentAt).
		SetTriggeredBy(a.TriggeredBy)
	if a.LLMSnapshot != nil {
		b.SetLlmSnapshot(a.LLMSnapshot)
	}
	return b.
		OnConflictColumns("push_notification_id").
		UpdateNewValues().
		Exec(ctx)
}

func (u *UnitOfWork) persistBrainDump(ctx context.Context, a *domain.BrainDump) error {
	return u.tx.BrainDump.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetDate(string(a.Date)).
		SetItems(a.Items).
		OnConflictColumns("brain_dump_id").
		UpdateNewValues().
		Exec(ctx)
}
