package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/job"
	"github.com/daybreakhq/daybreak/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	registry *Registry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, registry *Registry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		registry:     registry,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. Safe to
// call multiple times; the current job finishes before the worker exits.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort global capacity check; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.Job.Query().
		Where(job.StatusEQ(job.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "kind", claimed.Kind, "worker_id", w.id)
	log.Info("Job claimed", "attempt", claimed.Attempts)

	w.setStatus(WorkerStatusWorking, claimed.ID.String())
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	// Heartbeat keeps updated_at fresh for orphan detection.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	execErr := w.execute(jobCtx, claimed)
	cancelHeartbeat()

	// Terminal update uses a background context; jobCtx may be expired.
	if err := w.finishJob(context.Background(), claimed, execErr); err != nil {
		log.Error("Failed to record job outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	if execErr != nil {
		log.Warn("Job failed", "attempt", claimed.Attempts, "error", execErr)
	} else {
		log.Info("Job completed")
	}
	return nil
}

// execute resolves the executor and runs it.
func (w *Worker) execute(ctx context.Context, claimed *ent.Job) error {
	ex, ok := w.registry.Lookup(claimed.Kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, claimed.Kind)
	}
	return ex.Execute(ctx, claimed)
}

// claimNextJob atomically claims the next due pending job using
// FOR UPDATE SKIP LOCKED, incrementing its attempt counter.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.RunAtLTE(time.Now()),
		).
		Order(ent.Asc(job.FieldRunAt), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	row, err = row.Update().
		SetStatus(job.StatusInProgress).
		SetClaimedBy(w.podID).
		SetAttempts(row.Attempts + 1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return row, nil
}

// finishJob records the job outcome: completed on success, pending with a
// backoff delay while attempts remain, failed once they are exhausted.
// Unknown kinds fail immediately; retrying cannot fix them.
func (w *Worker) finishJob(ctx context.Context, claimed *ent.Job, execErr error) error {
	update := w.client.Job.UpdateOneID(claimed.ID).SetUpdatedAt(time.Now())

	switch {
	case execErr == nil:
		update.SetStatus(job.StatusCompleted).SetErrorMessage("")
	case errors.Is(execErr, ErrUnknownKind) || claimed.Attempts >= w.config.MaxAttempts:
		update.SetStatus(job.StatusFailed).SetErrorMessage(execErr.Error())
	default:
		update.SetStatus(job.StatusPending).
			SetErrorMessage(execErr.Error()).
			SetRunAt(time.Now().Add(w.retryDelay(claimed.Attempts)))
	}
	return update.Exec(ctx)
}

// retryDelay grows linearly with the attempt count.
func (w *Worker) retryDelay(attempts int) time.Duration {
	return time.Duration(attempts) * w.config.RetryBackoff
}

// runHeartbeat periodically refreshes updated_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID uuid.UUID) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(jobID).
				SetUpdatedAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
