package reactive

import (
	"context"
	"errors"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// AlarmEvaluator fires the due alarms of a user's current day. Runs every
// minute; a day without due alarms produces no writes.
type AlarmEvaluator struct {
	uow   *uow.Factory
	store *store.Store
}

// NewAlarmEvaluator creates an AlarmEvaluator.
func NewAlarmEvaluator(uowf *uow.Factory, st *store.Store) *AlarmEvaluator {
	return &AlarmEvaluator{uow: uowf, store: st}
}

// EvaluateUser triggers every alarm on today's day whose datetime has
// passed and is not yet triggered. Each emits an AlarmTriggeredEvent; a
// downstream handler translates the event to transport by alarm type.
func (e *AlarmEvaluator) EvaluateUser(ctx context.Context, user *domain.User, now time.Time) error {
	date, _ := userToday(user, now)
	day, err := e.store.DayByDate(ctx, user.ID, date)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if day.TriggerDueAlarms(now) == 0 {
		return nil
	}

	u, ctx, err := e.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback()

	u.Add(day)
	return u.Commit(ctx)
}
