package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// AuditRetentionDays is how many days of audit log rows to keep.
	AuditRetentionDays int `yaml:"audit_retention_days"`

	// EventTTL is the maximum age of Event outbox rows before deletion.
	// Clients replay missed events on reconnect; rows older than this
	// are unreachable by any live cursor.
	EventTTL time.Duration `yaml:"event_ttl"`

	// JobRetentionDays is how many days to keep completed and failed
	// job rows for inspection.
	JobRetentionDays int `yaml:"job_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		AuditRetentionDays: 365,
		EventTTL:           24 * time.Hour,
		JobRetentionDays:   14,
		CleanupInterval:    12 * time.Hour,
	}
}
