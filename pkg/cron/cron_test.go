package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/job"
	"github.com/daybreakhq/daybreak/pkg/database"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/queue"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
	"github.com/daybreakhq/daybreak/pkg/uow"
	testdb "github.com/daybreakhq/daybreak/test/database"
)

type fixture struct {
	client *database.Client
	uow    *uow.Factory
	store  *store.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	return &fixture{
		client: client,
		uow:    uow.NewFactory(client, nil, nil),
		store:  store.New(client.Client),
	}
}

func (f *fixture) commit(t *testing.T, aggs ...domain.Aggregate) {
	t.Helper()
	ctx := context.Background()
	u, ctx, err := f.uow.Begin(ctx)
	require.NoError(t, err)
	for _, a := range aggs {
		u.Add(a)
	}
	require.NoError(t, u.Commit(ctx))
}

func (f *fixture) scheduler() *Scheduler {
	return NewScheduler(f.client, f.store, nil)
}

func (f *fixture) jobs(t *testing.T, user *domain.User, kind string) []*ent.Job {
	t.Helper()
	rows, err := f.client.Job.Query().
		Where(job.UserID(user.ID), job.KindEQ(kind)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestFanOutEnqueuesPerUserAndKind(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice := domain.NewUser("Alice")
	bob := domain.NewUser("Bob")
	f.commit(t, alice, bob)

	now := time.Now()
	f.scheduler().fanOut(ctx, now, queue.KindEvaluateAlarms, queue.KindEvaluateReminders)

	for _, user := range []*domain.User{alice, bob} {
		for _, kind := range []string{queue.KindEvaluateAlarms, queue.KindEvaluateReminders} {
			rows := f.jobs(t, user, kind)
			require.Len(t, rows, 1)
			assert.Equal(t, job.StatusPending, rows[0].Status)
			assert.WithinDuration(t, now, rows[0].RunAt, time.Second)
		}
	}
}

func TestFanOutSkipsUsersWithOpenJob(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := domain.NewUser("Alice")
	f.commit(t, user)

	s := f.scheduler()
	s.fanOut(ctx, time.Now(), queue.KindEvaluateAlarms)
	s.fanOut(ctx, time.Now(), queue.KindEvaluateAlarms)

	// The first sweep's job is still pending, so the second sweep skips.
	assert.Len(t, f.jobs(t, user, queue.KindEvaluateAlarms), 1)
}

func TestFanOutEnqueuesAgainAfterCompletion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := domain.NewUser("Alice")
	f.commit(t, user)

	s := f.scheduler()
	s.fanOut(ctx, time.Now(), queue.KindEvaluateAlarms)

	rows := f.jobs(t, user, queue.KindEvaluateAlarms)
	require.Len(t, rows, 1)
	require.NoError(t, rows[0].Update().SetStatus(job.StatusCompleted).Exec(ctx))

	s.fanOut(ctx, time.Now(), queue.KindEvaluateAlarms)
	assert.Len(t, f.jobs(t, user, queue.KindEvaluateAlarms), 2)
}

func TestScheduleAllUsersUsesUserTimezone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice := domain.NewUser("Alice")
	bob := domain.NewUser("Bob")
	bob.Settings.Timezone = "America/New_York"
	f.commit(t, alice, bob)

	now := time.Now()
	f.scheduler().scheduleAllUsers(ctx, now)

	for _, user := range []*domain.User{alice, bob} {
		rows := f.jobs(t, user, services.JobScheduleUserDay)
		require.Len(t, rows, 1)

		wantDate := domain.DateOf(now, user.Settings.Location())
		assert.Equal(t, string(wantDate), rows[0].Payload["date"])
	}
}

func TestScheduleAllUsersSkipsOpenJob(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := domain.NewUser("Alice")
	f.commit(t, user)

	s := f.scheduler()
	s.scheduleAllUsers(ctx, time.Now())
	s.scheduleAllUsers(ctx, time.Now())

	assert.Len(t, f.jobs(t, user, services.JobScheduleUserDay), 1)
}

func TestSchedulerStartRegistersEntries(t *testing.T) {
	f := newFixture(t)

	s := NewScheduler(f.client, f.store, emitterFunc(func(context.Context, time.Time) error {
		return nil
	}))
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Equal(t, 5, s.Entries())
}

type emitterFunc func(ctx context.Context, now time.Time) error

func (f emitterFunc) EmitAll(ctx context.Context, now time.Time) error { return f(ctx, now) }
