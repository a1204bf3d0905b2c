package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent/job"
)

func TestOrphanRecoveryReturnsStaleJobToPending(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	row := f.enqueue(t, user.ID, "slow", nil)
	_, err := f.client.Job.UpdateOneID(row.ID).
		SetStatus(job.StatusInProgress).
		SetClaimedBy("pod-dead").
		SetAttempts(1).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-a", f.client.Client, testQueueConfig(), NewRegistry())
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	recovered := f.reloadJob(t, row.ID)
	assert.Equal(t, job.StatusPending, recovered.Status)
	assert.Contains(t, recovered.ErrorMessage, "pod-dead")
	assert.False(t, recovered.RunAt.After(time.Now()))
}

func TestOrphanRecoveryFailsExhaustedJob(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	cfg := testQueueConfig() // MaxAttempts = 2
	row := f.enqueue(t, user.ID, "slow", nil)
	_, err := f.client.Job.UpdateOneID(row.ID).
		SetStatus(job.StatusInProgress).
		SetClaimedBy("pod-dead").
		SetAttempts(cfg.MaxAttempts).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-a", f.client.Client, cfg, NewRegistry())
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	assert.Equal(t, job.StatusFailed, f.reloadJob(t, row.ID).Status)
}

func TestOrphanRecoveryIgnoresFreshJobs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	row := f.enqueue(t, user.ID, "slow", nil)
	_, err := f.client.Job.UpdateOneID(row.ID).
		SetStatus(job.StatusInProgress).
		SetClaimedBy("pod-b").
		SetUpdatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-a", f.client.Client, testQueueConfig(), NewRegistry())
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	assert.Equal(t, job.StatusInProgress, f.reloadJob(t, row.ID).Status)
}

func TestCleanupStartupOrphans(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	mine := f.enqueue(t, user.ID, "slow", nil)
	theirs := f.enqueue(t, user.ID, "slow", nil)
	_, err := f.client.Job.UpdateOneID(mine.ID).
		SetStatus(job.StatusInProgress).
		SetClaimedBy("pod-a").
		Save(ctx)
	require.NoError(t, err)
	_, err = f.client.Job.UpdateOneID(theirs.ID).
		SetStatus(job.StatusInProgress).
		SetClaimedBy("pod-b").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, f.client.Client, "pod-a"))

	assert.Equal(t, job.StatusPending, f.reloadJob(t, mine.ID).Status)
	assert.Equal(t, job.StatusInProgress, f.reloadJob(t, theirs.ID).Status)
}
