package reactive

import (
	"context"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
)

// TimingEvaluator moves today's tasks between NOT_READY and READY as their
// schedule windows open and close. Runs every minute; a day whose tasks are
// all settled produces no writes.
type TimingEvaluator struct {
	uow   *uow.Factory
	store *store.Store
}

// NewTimingEvaluator creates a TimingEvaluator.
func NewTimingEvaluator(uowf *uow.Factory, st *store.Store) *TimingEvaluator {
	return &TimingEvaluator{uow: uowf, store: st}
}

// EvaluateUser recomputes timing statuses for today's tasks and commits
// the ones that moved. Each change audits as a task update, so connected
// clients see the transition through incremental sync.
func (e *TimingEvaluator) EvaluateUser(ctx context.Context, user *domain.User, now time.Time) error {
	date, loc := userToday(user, now)
	tasks, err := e.store.TasksForDate(ctx, user.ID, date)
	if err != nil {
		return err
	}

	var changed []*domain.Task
	for _, t := range tasks {
		if t.EvaluateTiming(now, loc) {
			changed = append(changed, t)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	u, ctx, err := e.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback()

	for _, t := range changed {
		u.Add(t)
	}
	return u.Commit(ctx)
}
