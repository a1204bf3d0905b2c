package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Day is the aggregate root for one calendar date of one user. It owns the
// copied template snapshot, time blocks, the high-level plan and alarms.
type Day struct {
	AggregateBase
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	Date         Date          `json:"date"`
	Status       DayStatus     `json:"status"`
	TemplateID   *uuid.UUID    `json:"template_id,omitempty"`
	TemplateSlug string        `json:"template_slug,omitempty"`
	TimeBlocks   []TimeBlock   `json:"time_blocks"`
	Plan         HighLevelPlan `json:"high_level_plan"`
	Alarms       []Alarm       `json:"alarms"`
	Tags         []string      `json:"tags,omitempty"`
	ScheduledAt  *time.Time    `json:"scheduled_at,omitempty"`
}

// NewDay creates an unscheduled Day with its deterministic identity.
func NewDay(userID uuid.UUID, date Date) *Day {
	d := &Day{
		ID:     DayID(userID, date),
		UserID: userID,
		Date:   date,
		Status: DayUnscheduled,
	}
	d.markNew()
	return d
}

func (d *Day) AggregateID() uuid.UUID    { return d.ID }
func (d *Day) AggregateType() string     { return "day" }
func (d *Day) AggregateOwner() uuid.UUID { return d.UserID }

// Schedule copies the template's time blocks and high-level plan onto the
// day and moves it to SCHEDULED. Re-scheduling an already scheduled day is
// allowed (the caller replaces routine tasks); completing days cannot be
// re-scheduled.
func (d *Day) Schedule(tmpl *DayTemplate) error {
	if tmpl == nil {
		return &InvariantError{Message: "Day template is required to schedule"}
	}
	if d.Status == DayComplete {
		return &InvariantError{Message: fmt.Sprintf("cannot schedule a %s day", d.Status)}
	}
	tmplID := tmpl.ID
	d.TemplateID = &tmplID
	d.TemplateSlug = tmpl.Slug
	d.TimeBlocks = append([]TimeBlock(nil), tmpl.TimeBlocks...)
	d.Plan = tmpl.Plan.clone()
	d.Status = DayScheduled
	now := time.Now().UTC()
	d.ScheduledAt = &now
	return nil
}

// Unschedule reverts the day to UNSCHEDULED, dropping the template copy.
func (d *Day) Unschedule() error {
	if d.Status == DayComplete {
		return &InvariantError{Message: "cannot unschedule a completed day"}
	}
	d.Status = DayUnscheduled
	d.TemplateID = nil
	d.TemplateSlug = ""
	d.TimeBlocks = nil
	d.Plan = HighLevelPlan{}
	d.ScheduledAt = nil
	return nil
}

// Start moves a scheduled day into IN_PROGRESS.
func (d *Day) Start() error {
	if d.Status != DayScheduled {
		return &InvariantError{Message: fmt.Sprintf("cannot start a %s day", d.Status)}
	}
	d.Status = DayInProgress
	return nil
}

// Complete moves the day to its terminal state.
func (d *Day) Complete() error {
	if d.Status != DayScheduled && d.Status != DayInProgress {
		return &InvariantError{Message: fmt.Sprintf("cannot complete a %s day", d.Status)}
	}
	d.Status = DayComplete
	return nil
}

// AddAlarm attaches an alarm to the day.
func (d *Day) AddAlarm(a Alarm) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	d.Alarms = append(d.Alarms, a)
}

// TriggerDueAlarms marks every untriggered alarm whose datetime has passed
// and emits one AlarmTriggeredEvent per alarm. Returns the number of alarms
// triggered; when zero the aggregate is unchanged.
func (d *Day) TriggerDueAlarms(now time.Time) int {
	triggered := 0
	for i := range d.Alarms {
		a := &d.Alarms[i]
		if a.TriggeredAt != nil || a.Datetime.After(now) {
			continue
		}
		at := now.UTC()
		a.TriggeredAt = &at
		triggered++
		d.Emit(&AlarmTriggeredEvent{
			eventBase: newEventBase(d.UserID),
			DayDate:   d.Date,
			AlarmID:   a.ID,
			AlarmName: a.Name,
			AlarmTime: a.Time,
			AlarmType: a.Type,
			URL:       a.URL,
		})
	}
	return triggered
}

func (p HighLevelPlan) clone() HighLevelPlan {
	return HighLevelPlan{
		Title:      p.Title,
		Text:       p.Text,
		Intentions: append([]string(nil), p.Intentions...),
	}
}

// InvariantError signals a structural or state-machine violation detected
// before any write. It surfaces to the caller untouched.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return e.Message }
