package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/job"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs. All pods run
// this independently; the recovery update is idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress jobs with stale heartbeats
// and returns them to pending so another worker can claim them. Jobs are
// idempotent, so re-running a half-finished one is safe.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	recovered := 0
	for _, row := range orphans {
		if err := p.recoverOrphanedJob(ctx, row); err != nil {
			slog.Error("Failed to recover orphaned job", "job_id", row.ID, "error", err)
			continue
		}
		recovered++
	}
	if recovered > 0 {
		slog.Warn("Recovered orphaned jobs", "count", recovered)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()
	return nil
}

// recoverOrphanedJob returns one orphan to the queue, or fails it when
// its attempts are exhausted.
func (p *WorkerPool) recoverOrphanedJob(ctx context.Context, row *ent.Job) error {
	reason := fmt.Sprintf("orphaned: no heartbeat from pod %s since %s",
		row.ClaimedBy, row.UpdatedAt.Format(time.RFC3339))

	update := row.Update().SetUpdatedAt(time.Now())
	if row.Attempts >= p.config.MaxAttempts {
		update.SetStatus(job.StatusFailed).SetErrorMessage(reason)
	} else {
		update.SetStatus(job.StatusPending).SetErrorMessage(reason).SetRunAt(time.Now())
	}
	return update.Exec(ctx)
}

// CleanupStartupOrphans returns this pod's in_progress jobs to pending.
// Called once during startup, before the worker pool begins processing;
// these are leftovers from a previous crash of the same pod identity.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.Job.Update().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.ClaimedBy(podID),
		).
		SetStatus(job.StatusPending).
		SetErrorMessage(fmt.Sprintf("orphaned: pod %s restarted while job was in progress", podID)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Reset startup orphans from previous run", "pod_id", podID, "count", n)
	}
	return nil
}
