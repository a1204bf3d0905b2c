package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how background jobs are polled, claimed, and
// processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of concurrent jobs being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the maximum time a single job execution may run.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// HeartbeatInterval is how often an in-progress job refreshes its
	// updated_at, which doubles as the orphan-detection heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// MaxAttempts is the number of executions a job gets before it is
	// marked failed.
	MaxAttempts int `yaml:"max_attempts"`

	// RetryBackoff is the per-attempt delay factor for retries.
	// A job on attempt N is rescheduled N * RetryBackoff into the future.
	RetryBackoff time.Duration `yaml:"retry_backoff"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown. Should match JobTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              2 * time.Minute,
		HeartbeatInterval:       15 * time.Second,
		MaxAttempts:             3,
		RetryBackoff:            30 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
	}
}
