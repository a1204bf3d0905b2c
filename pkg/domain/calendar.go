package domain

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEntrySeries is the per-series projection of a recurring external
// calendar event. Recurrence rules live here; occurrences reference it.
type CalendarEntrySeries struct {
	AggregateBase
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Platform   string     `json:"platform"`
	PlatformID string     `json:"platform_id"`
	Name       string     `json:"name"`
	Frequency  Frequency  `json:"frequency,omitempty"`
	Category   string     `json:"event_category,omitempty"`
	Recurrence string     `json:"recurrence,omitempty"`
	StartsAt   time.Time  `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
}

// NewCalendarEntrySeries creates a series with its deterministic identity.
func NewCalendarEntrySeries(userID uuid.UUID, platform, platformID string) *CalendarEntrySeries {
	s := &CalendarEntrySeries{
		ID:         SeriesID(platform, platformID),
		UserID:     userID,
		Platform:   platform,
		PlatformID: platformID,
	}
	s.markNew()
	return s
}

func (s *CalendarEntrySeries) AggregateID() uuid.UUID    { return s.ID }
func (s *CalendarEntrySeries) AggregateType() string     { return "calendar_entry_series" }
func (s *CalendarEntrySeries) AggregateOwner() uuid.UUID { return s.UserID }

// SeriesFields is the subset of series state that cascades to occurrences.
type SeriesFields struct {
	Name       string
	Frequency  Frequency
	Category   string
	Recurrence string
	StartsAt   time.Time
	EndsAt     *time.Time
}

// Differs reports whether applying f would change the series.
func (s *CalendarEntrySeries) Differs(f SeriesFields) bool {
	if s.Name != f.Name || s.Frequency != f.Frequency || s.Category != f.Category || s.Recurrence != f.Recurrence {
		return true
	}
	if !s.StartsAt.Equal(f.StartsAt) {
		return true
	}
	switch {
	case s.EndsAt == nil && f.EndsAt == nil:
		return false
	case s.EndsAt == nil || f.EndsAt == nil:
		return true
	default:
		return !s.EndsAt.Equal(*f.EndsAt)
	}
}

// Apply overwrites the cascading fields.
func (s *CalendarEntrySeries) Apply(f SeriesFields) {
	s.Name = f.Name
	s.Frequency = f.Frequency
	s.Category = f.Category
	s.Recurrence = f.Recurrence
	s.StartsAt = f.StartsAt
	s.EndsAt = f.EndsAt
}

// End closes the series as of now. Used when the upstream deletes the
// series or its last future occurrence disappears.
func (s *CalendarEntrySeries) End(now time.Time) {
	at := now.UTC()
	s.EndsAt = &at
}

// CalendarEntry is one occurrence projected from an external calendar.
type CalendarEntry struct {
	AggregateBase
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"user_id"`
	Platform         string           `json:"platform"`
	PlatformID       string           `json:"platform_id"`
	SeriesID         *uuid.UUID       `json:"calendar_entry_series_id,omitempty"`
	Name             string           `json:"name"`
	StartsAt         time.Time        `json:"starts_at"`
	EndsAt           time.Time        `json:"ends_at"`
	Frequency        Frequency        `json:"frequency,omitempty"`
	Category         string           `json:"event_category,omitempty"`
	AttendanceStatus AttendanceStatus `json:"attendance_status,omitempty"`
}

// NewCalendarEntry creates an occurrence with its deterministic identity.
func NewCalendarEntry(userID uuid.UUID, platform, platformID string) *CalendarEntry {
	e := &CalendarEntry{
		ID:         EntryID(platform, platformID),
		UserID:     userID,
		Platform:   platform,
		PlatformID: platformID,
	}
	e.markNew()
	return e
}

func (e *CalendarEntry) AggregateID() uuid.UUID    { return e.ID }
func (e *CalendarEntry) AggregateType() string     { return "calendar_entry" }
func (e *CalendarEntry) AggregateOwner() uuid.UUID { return e.UserID }

// EntryFields is the user-visible occurrence state delivered by the
// calendar gateway.
type EntryFields struct {
	Name             string
	StartsAt         time.Time
	EndsAt           time.Time
	Frequency        Frequency
	Category         string
	AttendanceStatus AttendanceStatus
	SeriesID         *uuid.UUID
}

// Differs reports whether applying f would change the entry.
func (e *CalendarEntry) Differs(f EntryFields) bool {
	if e.Name != f.Name || e.Frequency != f.Frequency || e.Category != f.Category || e.AttendanceStatus != f.AttendanceStatus {
		return true
	}
	if !e.StartsAt.Equal(f.StartsAt) || !e.EndsAt.Equal(f.EndsAt) {
		return true
	}
	switch {
	case e.SeriesID == nil && f.SeriesID == nil:
		return false
	case e.SeriesID == nil || f.SeriesID == nil:
		return true
	default:
		return *e.SeriesID != *f.SeriesID
	}
}

// Apply overwrites the user-visible occurrence state.
func (e *CalendarEntry) Apply(f EntryFields) {
	e.Name = f.Name
	e.StartsAt = f.StartsAt
	e.EndsAt = f.EndsAt
	e.Frequency = f.Frequency
	e.Category = f.Category
	e.AttendanceStatus = f.AttendanceStatus
	e.SeriesID = f.SeriesID
}

// InheritSeries applies the cascading series fields to this occurrence.
// The sync handler calls this for every occurrence of a changed series; the
// resulting Updated event per entry is emitted by the unit of work.
func (e *CalendarEntry) InheritSeries(s *CalendarEntrySeries) {
	e.Name = s.Name
	e.Frequency = s.Frequency
	e.Category = s.Category
}
