// Package cron drives the periodic side of the system. Every tick fans
// out into per-user Job rows so the actual work runs on the queue with
// its retry and idempotency semantics; the only in-process tick is the
// new-day announcement, which is a pure publish.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/daybreakhq/daybreak/ent/job"
	"github.com/daybreakhq/daybreak/pkg/database"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/queue"
	"github.com/daybreakhq/daybreak/pkg/services"
	"github.com/daybreakhq/daybreak/pkg/store"
)

// DayEmitter announces the new calendar day to every user. Satisfied by
// reactive.NewDayEmitter.
type DayEmitter interface {
	EmitAll(ctx context.Context, now time.Time) error
}

// Scheduler owns the cron entries. Construct once at startup and call
// Start; ticks overlapping a still-running earlier tick are skipped.
type Scheduler struct {
	cron    *cron.Cron
	client  *database.Client
	store   *store.Store
	emitter DayEmitter
}

// NewScheduler creates a Scheduler. Nothing runs until Start.
func NewScheduler(client *database.Client, st *store.Store, emitter DayEmitter) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		client:  client,
		store:   st,
		emitter: emitter,
	}
}

// Start registers the schedule and starts the cron loop. The context is
// captured for the lifetime of the scheduler; cancel it and call Stop to
// shut down.
func (s *Scheduler) Start(ctx context.Context) error {
	entries := []struct {
		spec string
		run  func()
	}{
		{"* * * * *", func() {
			s.fanOut(ctx, time.Now(), queue.KindEvaluateAlarms, queue.KindEvaluateTiming, queue.KindEvaluateReminders)
		}},
		{"*/15 * * * *", func() {
			s.fanOut(ctx, time.Now(), queue.KindEvaluateOverview)
		}},
		{"0,19,20,30,50 * * * *", func() {
			s.fanOut(ctx, time.Now(), queue.KindEvaluateSmart, queue.KindEvaluateKiosk)
		}},
		{"0 3 * * *", func() {
			s.scheduleAllUsers(ctx, time.Now())
		}},
		{"5 3 * * *", func() {
			if err := s.emitter.EmitAll(ctx, time.Now()); err != nil {
				slog.Error("New-day emit sweep failed", "error", err)
			}
		}},
	}

	for _, e := range entries {
		if _, err := s.cron.AddFunc(e.spec, e.run); err != nil {
			return err
		}
	}

	s.cron.Start()
	slog.Info("Cron scheduler started", "entries", len(s.cron.Entries()))
	return nil
}

// Stop halts the cron loop and waits for any running tick to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("Cron scheduler stopped")
}

// Entries reports the number of registered cron entries.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// fanOut enqueues one job of each kind per user. A user with an open job
// of the same kind is skipped so a lagging queue does not accumulate a
// backlog of identical evaluations. Per-user failures are logged and do
// not stop the sweep.
func (s *Scheduler) fanOut(ctx context.Context, now time.Time, kinds ...string) {
	users, err := s.store.Users(ctx)
	if err != nil {
		slog.Error("Fan-out user listing failed", "error", err)
		return
	}

	for _, user := range users {
		for _, kind := range kinds {
			open, err := s.hasOpenJob(ctx, user.ID, kind)
			if err != nil {
				slog.Error("Fan-out dedup check failed",
					"user_id", user.ID, "kind", kind, "error", err)
				continue
			}
			if open {
				continue
			}
			if err := s.enqueue(ctx, user.ID, kind, nil, now); err != nil {
				slog.Error("Fan-out enqueue failed",
					"user_id", user.ID, "kind", kind, "error", err)
			}
		}
	}
}

// scheduleAllUsers enqueues the nightly schedule_user_day job per user,
// with the date computed in that user's timezone.
func (s *Scheduler) scheduleAllUsers(ctx context.Context, now time.Time) {
	users, err := s.store.Users(ctx)
	if err != nil {
		slog.Error("Nightly scheduling user listing failed", "error", err)
		return
	}

	for _, user := range users {
		open, err := s.hasOpenJob(ctx, user.ID, services.JobScheduleUserDay)
		if err != nil {
			slog.Error("Nightly scheduling dedup check failed",
				"user_id", user.ID, "error", err)
			continue
		}
		if open {
			continue
		}

		date := domain.DateOf(now, user.Settings.Location())
		payload := map[string]any{"date": string(date)}
		if err := s.enqueue(ctx, user.ID, services.JobScheduleUserDay, payload, now); err != nil {
			slog.Error("Nightly scheduling enqueue failed",
				"user_id", user.ID, "date", date, "error", err)
		}
	}
}

func (s *Scheduler) hasOpenJob(ctx context.Context, userID uuid.UUID, kind string) (bool, error) {
	return s.client.Job.Query().
		Where(
			job.UserID(userID),
			job.KindEQ(kind),
			job.StatusIn(job.StatusPending, job.StatusInProgress),
		).
		Exist(ctx)
}

func (s *Scheduler) enqueue(ctx context.Context, userID uuid.UUID, kind string, payload map[string]any, runAt time.Time) error {
	b := s.client.Job.Create().
		SetID(uuid.New()).
		SetUserID(userID).
		SetKind(kind).
		SetRunAt(runAt.UTC())
	if payload != nil {
		b.SetPayload(payload)
	}
	return b.Exec(ctx)
}
