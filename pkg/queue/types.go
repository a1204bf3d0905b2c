// Package queue runs the DB-backed background job system: a polling
// worker pool claims Job rows with FOR UPDATE SKIP LOCKED and hands them
// to executors registered by job kind. Delivery is at-least-once; every
// executor must be idempotent.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/daybreakhq/daybreak/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrUnknownKind indicates a job kind with no registered executor.
	ErrUnknownKind = errors.New("unknown job kind")
)

// Reactive fan-out job kinds. The cron loop enqueues one of these per
// user per tick; the executors delegate to pkg/reactive evaluators.
const (
	KindEvaluateAlarms    = "evaluate_alarms"
	KindEvaluateTiming    = "evaluate_task_timing"
	KindEvaluateReminders = "evaluate_calendar_reminders"
	KindEvaluateSmart     = "evaluate_smart_notification"
	KindEvaluateKiosk     = "evaluate_kiosk_notification"
	KindEvaluateOverview  = "evaluate_morning_overview"
)

// Executor processes one claimed job. A returned error marks the job for
// retry (or terminal failure once attempts are exhausted); returning nil
// completes it.
type Executor interface {
	Execute(ctx context.Context, job *ent.Job) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, job *ent.Job) error

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, job *ent.Job) error {
	return f(ctx, job)
}

// Registry maps job kinds to executors. Populated once at startup.
type Registry struct {
	executors map[string]Executor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{executors: make(map[string]Executor)}
}

// Register binds an executor to a job kind, replacing any earlier binding.
func (r *Registry) Register(kind string, ex Executor) {
	r.executors[kind] = ex
}

// Lookup returns the executor for a kind.
func (r *Registry) Lookup(kind string) (Executor, bool) {
	ex, ok := r.executors[kind]
	return ex, ok
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
