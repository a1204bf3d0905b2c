// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/ent/auditlog"
	"github.com/daybreakhq/daybreak/ent/event"
	"github.com/daybreakhq/daybreak/ent/job"
	"github.com/daybreakhq/daybreak/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes audit log rows past the retention window
//   - Removes Event rows past their TTL (clients long since replayed them)
//   - Deletes finished Job rows past the job retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{config: cfg, client: client}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"audit_retention_days", s.config.AuditRetentionDays,
		"event_ttl", s.config.EventTTL,
		"job_retention_days", s.config.JobRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupAuditLogs(ctx)
	s.cleanupEvents(ctx)
	s.cleanupJobs(ctx)
}

func (s *Service) cleanupAuditLogs(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.AuditRetentionDays)
	count, err := s.client.AuditLog.Delete().
		Where(auditlog.OccurredAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: audit log cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old audit logs", "count", count)
	}
}

func (s *Service) cleanupEvents(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.EventTTL)
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired events", "count", count)
	}
}

func (s *Service) cleanupJobs(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.JobRetentionDays)
	count, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed),
			job.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted finished jobs", "count", count)
	}
}
