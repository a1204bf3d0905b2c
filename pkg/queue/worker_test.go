package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/job"
)

func TestWorkerProcessesJob(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	var got []*ent.Job
	registry := NewRegistry()
	registry.Register("noop", ExecutorFunc(func(_ context.Context, row *ent.Job) error {
		got = append(got, row)
		return nil
	}))

	row := f.enqueue(t, user.ID, "noop", map[string]any{"k": "v"})

	w := NewWorker("w-0", "pod-a", f.client.Client, testQueueConfig(), registry)
	require.NoError(t, w.pollAndProcess(ctx))

	require.Len(t, got, 1)
	assert.Equal(t, "v", got[0].Payload["k"])

	final := f.reloadJob(t, row.ID)
	assert.Equal(t, job.StatusCompleted, final.Status)
	assert.Equal(t, 1, final.Attempts)
	assert.Equal(t, "pod-a", final.ClaimedBy)
	assert.Empty(t, final.ErrorMessage)
}

func TestWorkerNoJobs(t *testing.T) {
	f := newFixture(t)
	w := NewWorker("w-0", "pod-a", f.client.Client, testQueueConfig(), NewRegistry())

	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorkerSkipsFutureJobs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	row := f.enqueue(t, user.ID, "noop", nil)
	_, err := f.client.Job.UpdateOneID(row.ID).
		SetRunAt(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	w := NewWorker("w-0", "pod-a", f.client.Client, testQueueConfig(), NewRegistry())
	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrNoJobsAvailable)
}

func TestWorkerRetriesThenFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	registry := NewRegistry()
	registry.Register("flaky", ExecutorFunc(func(_ context.Context, _ *ent.Job) error {
		return errors.New("downstream unavailable")
	}))

	cfg := testQueueConfig() // MaxAttempts = 2
	row := f.enqueue(t, user.ID, "flaky", nil)
	w := NewWorker("w-0", "pod-a", f.client.Client, cfg, registry)

	// First attempt: back to pending with a backoff delay.
	require.NoError(t, w.pollAndProcess(ctx))
	after1 := f.reloadJob(t, row.ID)
	assert.Equal(t, job.StatusPending, after1.Status)
	assert.Equal(t, 1, after1.Attempts)
	assert.Equal(t, "downstream unavailable", after1.ErrorMessage)
	assert.True(t, after1.RunAt.After(time.Now().Add(30*time.Second)))

	// Make it due again; second attempt exhausts the budget.
	_, err := f.client.Job.UpdateOneID(row.ID).SetRunAt(time.Now()).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, w.pollAndProcess(ctx))
	after2 := f.reloadJob(t, row.ID)
	assert.Equal(t, job.StatusFailed, after2.Status)
	assert.Equal(t, 2, after2.Attempts)
}

func TestWorkerFailsUnknownKindImmediately(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	row := f.enqueue(t, user.ID, "nobody_handles_this", nil)
	w := NewWorker("w-0", "pod-a", f.client.Client, testQueueConfig(), NewRegistry())

	require.NoError(t, w.pollAndProcess(ctx))

	final := f.reloadJob(t, row.ID)
	assert.Equal(t, job.StatusFailed, final.Status)
	assert.Equal(t, 1, final.Attempts)
	assert.Contains(t, final.ErrorMessage, "unknown job kind")
}

func TestWorkerRespectsCapacity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	cfg := testQueueConfig() // MaxConcurrentJobs = 2
	for i := 0; i < cfg.MaxConcurrentJobs; i++ {
		row := f.enqueue(t, user.ID, "busy", nil)
		_, err := f.client.Job.UpdateOneID(row.ID).
			SetStatus(job.StatusInProgress).
			SetClaimedBy("pod-other").
			Save(ctx)
		require.NoError(t, err)
	}
	f.enqueue(t, user.ID, "waiting", nil)

	w := NewWorker("w-0", "pod-a", f.client.Client, cfg, NewRegistry())
	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrAtCapacity)
}

func TestWorkerClaimsOldestDueFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	first := f.enqueue(t, user.ID, "ordered", map[string]any{"n": "1"})
	_, err := f.client.Job.UpdateOneID(first.ID).
		SetRunAt(time.Now().Add(-2 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)
	second := f.enqueue(t, user.ID, "ordered", map[string]any{"n": "2"})
	_, err = f.client.Job.UpdateOneID(second.ID).
		SetRunAt(time.Now().Add(-1 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	var order []string
	registry := NewRegistry()
	registry.Register("ordered", ExecutorFunc(func(_ context.Context, row *ent.Job) error {
		n, _ := row.Payload["n"].(string)
		order = append(order, n)
		return nil
	}))

	w := NewWorker("w-0", "pod-a", f.client.Client, testQueueConfig(), registry)
	require.NoError(t, w.pollAndProcess(ctx))
	require.NoError(t, w.pollAndProcess(ctx))

	assert.Equal(t, []string{"1", "2"}, order)
}

func TestWorkerPoolStartStop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	done := make(chan struct{})
	registry := NewRegistry()
	registry.Register("one", ExecutorFunc(func(_ context.Context, _ *ent.Job) error {
		close(done)
		return nil
	}))
	row := f.enqueue(t, user.ID, "one", nil)

	pool := NewWorkerPool("pod-a", f.client.Client, testQueueConfig(), registry)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job was not processed")
	}

	require.Eventually(t, func() bool {
		return f.reloadJob(t, row.ID).Status == job.StatusCompleted
	}, 5*time.Second, 20*time.Millisecond)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, "pod-a", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
}
