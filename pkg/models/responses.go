package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

// DayContext is the full client-facing snapshot for one target date.
type DayContext struct {
	Date              string                     `json:"date"`
	Day               *domain.Day                `json:"day"`
	Tasks             []*domain.Task             `json:"tasks"`
	CalendarEntries   []*domain.CalendarEntry    `json:"calendar_entries"`
	Messages          []*domain.Message          `json:"messages"`
	BrainDump         *domain.BrainDump          `json:"brain_dump,omitempty"`
	Routines          []*domain.Routine          `json:"routines"`
	PushNotifications []*domain.PushNotification `json:"push_notifications"`
}

// Change is one incremental mutation derived from an audit-log row.
// EntityData is nil only for deletions.
type Change struct {
	ChangeType string         `json:"change_type"` // created | updated | deleted
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	EntityData map[string]any `json:"entity_data"`
}

// ChangeSet is the incremental half of a sync response.
type ChangeSet struct {
	Changes               []Change   `json:"changes"`
	LastAuditLogTimestamp *time.Time `json:"last_audit_log_timestamp"`
}

// TaskRisk is the heuristic skip-risk assessment of one task.
type TaskRisk struct {
	TaskID         uuid.UUID `json:"task_id"`
	Name           string    `json:"name"`
	Score          int       `json:"score"`
	CompletionRate int       `json:"completion_rate"` // percent, -1 when no history
	Reasons        []string  `json:"reasons"`
}

// SyncCalendarResult summarizes one calendar sync pass.
type SyncCalendarResult struct {
	SeriesCreated  int    `json:"series_created"`
	SeriesUpdated  int    `json:"series_updated"`
	SeriesDeleted  int    `json:"series_deleted"`
	EntriesCreated int    `json:"entries_created"`
	EntriesUpdated int    `json:"entries_updated"`
	EntriesDeleted int    `json:"entries_deleted"`
	NextSyncToken  string `json:"next_sync_token"`
}
