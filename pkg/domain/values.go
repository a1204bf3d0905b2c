package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeBlock is a named, typed interval within a day (e.g. Morning Work
// 09:00-12:00). Times are "HH:MM" strings in the owning user's timezone.
type TimeBlock struct {
	TimeBlockDefID uuid.UUID `json:"time_block_def_id"`
	Name           string    `json:"name"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
}

// HighLevelPlan is the template's (and, once scheduled, the day's) headline
// plan: a title, free text, and a list of intentions.
type HighLevelPlan struct {
	Title      string   `json:"title"`
	Text       string   `json:"text"`
	Intentions []string `json:"intentions"`
}

// Alarm is a value object owned by a Day.
type Alarm struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Time        string     `json:"time"` // "HH:MM" user-local
	Datetime    time.Time  `json:"datetime"`
	Type        AlarmType  `json:"type"`
	URL         string     `json:"url,omitempty"` // for AlarmURL
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`
}

/// TimeWindow is a task's optional schedule: how (and when) it binds to the day.
type TimeWindow struct {
	TimingType TimingType `json:"timing_type"`
	StartTime  string     `json:"start_time,omitempty"` // "HH:MM"
	EndTime    string     `json:"end_time,omitempty"`
}

// TaskAction is one entry in a task's append-only action log.
type TaskAction struct {
	Action     string    `json:"action"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RecurrenceSchedule describes when a routine is active.
type RecurrenceSchedule struct {
	Frequency Frequency      `json:"frequency"`
	Weekdays  []time.Weekday `json:"weekdays,omitempty"`   // for WEEKLY
	DayNumber int            `json:"day_number,omitempty"` // for MONTHLY
}

// Matches reports whether the schedule is active on the given date.
func (s RecurrenceSchedule) Matches(date Date) bool {
	switch s.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		wd := date.Weekday()
		for _, w := range s.Weekdays {
			if w == wd {
				return true
			}
		}
		return false
	case FrequencyMonthly:
		return date.DayNumber() == s.DayNumber
	default:
		return false
	}
}

// RoutineTask is the blueprint for one task a routine materializes.
type RoutineTask struct {
	Name     string      `json:"name"`
	Category string      `json:"category,omitempty"`
	Type     string      `json:"type,omitempty"`
	Schedule *TimeWindow `json:"schedule,omitempty"`
	Tags     []string    `json:"tags,omitempty"`
}

// NotificationRule is one calendar-entry reminder rule.
type NotificationRule struct {
	Channel       NotificationChannel `json:"channel"`
	MinutesBefore int                 `json:"minutes_before"`
}

// CalendarNotificationSettings gates calendar-entry reminders per user.
type CalendarNotificationSettings struct {
	Enabled bool               `json:"enabled"`
	Rules   []NotificationRule `json:"rules"`
}

// AuthToken is a stored OAuth credential for an external platform.
type AuthToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the access token needs a refresh.
func (t AuthToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// CalendarAccount is one connected external calendar: its auth, its
// incremental sync cursor, and the last successful sync time.
type CalendarAccount struct {
	Platform    string     `json:"platform"`
	CalendarID  string     `json:"calendar_id"`
	Auth        AuthToken  `json:"auth"`
	SyncToken   string     `json:"sync_token,omitempty"`
	LastSyncAt  *time.Time `json:"last_sync_at,omitempty"`
	NeedsReauth bool       `json:"needs_reauth,omitempty"`
}

// UserSettings is the per-user settings blob.
// TemplateDefaults is a 7-long slice of day-template slugs indexed by
// time.Weekday (Sunday = 0).
type UserSettings struct {
	Timezone                   string                       `json:"timezone"`
	LLMProvider                string                       `json:"llm_provider,omitempty"`
	MorningOverviewTime        string                       `json:"morning_overview_time,omitempty"` // "HH:MM"
	CalendarEntryNotifications CalendarNotificationSettings `json:"calendar_entry_notification_settings"`
	TemplateDefaults           []string                     `json:"template_defaults,omitempty"`
	Calendars                  []CalendarAccount            `json:"calendars,omitempty"`
}

// Location resolves the user's timezone, defaulting to UTC when unset or
// invalid.
func (s UserSettings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TemplateSlugFor returns the default template slug for the date's weekday,
// or "" when no default is configured.
func (s UserSettings) TemplateSlugFor(date Date) string {
	if len(s.TemplateDefaults) != 7 {
		return ""
	}
	return s.TemplateDefaults[int(date.Weekday())]
}

// ToolCallRecord captures one tool invocation during an LLM run.
type ToolCallRecord struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	Result    string         `json:"result,omitempty"`
	IsError   bool           `json:"is_error,omitempty"`
}

// LLMRunResult is the reproducibility snapshot captured per LLM run and
// stored on whatever entity the use case is about.
type LLMRunResult struct {
	Provider           string           `json:"provider"`
	CurrentTime        time.Time        `json:"current_time"`
	SystemPrompt       string           `json:"system_prompt"`
	ContextPrompt      string           `json:"context_prompt"`
	AskPrompt          string           `json:"ask_prompt"`
	ToolsPrompt        string           `json:"tools_prompt"`
	SerializedContext  string           `json:"serialized_context,omitempty"`
	ToolCalls          []ToolCallRecord `json:"tool_calls,omitempty"`
	ReferencedEntities []string         `json:"referenced_entities,omitempty"`
}
