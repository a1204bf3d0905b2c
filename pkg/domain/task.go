package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task belongs to a Day via ScheduledDate. A nil RoutineDefinitionID marks
// an adhoc task, which survives day re-scheduling.
type Task struct {
	AggregateBase
	ID                  uuid.UUID     `json:"id"`
	UserID              uuid.UUID     `json:"user_id"`
	Name                string        `json:"name"`
	Status              TaskStatus    `json:"status"`
	Category            string        `json:"category,omitempty"`
	Type                string        `json:"type,omitempty"`
	Frequency           Frequency     `json:"frequency,omitempty"`
	Schedule            *TimeWindow   `json:"schedule,omitempty"`
	ScheduledDate       Date          `json:"scheduled_date"`
	RoutineDefinitionID *uuid.UUID    `json:"routine_definition_id,omitempty"`
	Tags                []string      `json:"tags,omitempty"`
	Actions             []TaskAction  `json:"actions,omitempty"`
	CompletedAt         *time.Time    `json:"completed_at,omitempty"`
	LLMRunResult        *LLMRunResult `json:"llm_run_result,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
}

// NewAdhocTask creates a user-authored task for a date.
func NewAdhocTask(userID uuid.UUID, name string, date Date) *Task {
	t := &Task{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Status:        TaskNotStarted,
		ScheduledDate: date,
		CreatedAt:     time.Now().UTC(),
	}
	t.markNew()
	return t
}

// MaterializeRoutineTask creates a task from a routine's blueprint for a
// date, carrying the routine's identity so re-scheduling can replace it.
func MaterializeRoutineTask(userID uuid.UUID, routine *Routine, rt RoutineTask, date Date) *Task {
	routineID := routine.ID
	t := &Task{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                rt.Name,
		Status:              TaskNotStarted,
		Category:            rt.Category,
		Type:                rt.Type,
		Frequency:           routine.Schedule.Frequency,
		ScheduledDate:       date,
		RoutineDefinitionID: &routineID,
		Tags:                append([]string(nil), rt.Tags...),
		CreatedAt:           time.Now().UTC(),
	}
	if rt.Schedule != nil {
		sched := *rt.Schedule
		t.Schedule = &sched
	}
	t.markNew()
	return t
}

func (t *Task) AggregateID() uuid.UUID    { return t.ID }
func (t *Task) AggregateType() string     { return "task" }
func (t *Task) AggregateOwner() uuid.UUID { return t.UserID }

// IsAdhoc reports whether the task was authored directly rather than
// materialized from a routine.
func (t *Task) IsAdhoc() bool { return t.RoutineDefinitionID == nil }

// RecordAction appends to the append-only action log and applies the
// status transition the action implies.
func (t *Task) RecordAction(action string, note string, now time.Time) error {
	t.Actions = append(t.Actions, TaskAction{
		Action:     action,
		Note:       note,
		OccurredAt: now.UTC(),
	})
	switch action {
	case "complete":
		return t.complete(now)
	case "punt":
		return t.punt()
	case "start":
		t.Status = TaskPending
	case "ready":
		t.Status = TaskReady
	case "not_ready":
		t.Status = TaskNotReady
	}
	return nil
}

// EvaluateTiming recomputes the timing-derived status from the task's
// schedule window against user-local now. Only NOT_STARTED, NOT_READY and
// READY tasks move; PENDING, PUNTED and COMPLETE are user-owned states.
// Reports whether the status changed.
func (t *Task) EvaluateTiming(now time.Time, loc *time.Location) bool {
	if t.Schedule == nil {
		return false
	}
	switch t.Status {
	case TaskNotStarted, TaskNotReady, TaskReady:
	default:
		return false
	}

	var next TaskStatus
	switch t.Schedule.TimingType {
	case TimingDeadline:
		// Actionable any time until done; the deadline raises risk, it
		// does not gate readiness.
		next = TaskReady
	case TimingFixedTime:
		if t.beforeClock(now, loc, t.Schedule.StartTime) {
			next = TaskNotReady
		} else {
			next = TaskReady
		}
	case TimingTimeWindow:
		switch {
		case t.beforeClock(now, loc, t.Schedule.StartTime):
			next = TaskNotReady
		case t.Schedule.EndTime != "" && !t.beforeClock(now, loc, t.Schedule.EndTime):
			next = TaskNotReady
		default:
			next = TaskReady
		}
	default:
		// FLEXIBLE or unset: the user decides when it is ready.
		return false
	}

	if next == t.Status {
		return false
	}
	t.Status = next
	return true
}

// beforeClock reports whether now precedes the "HH:MM" clock time on the
// task's scheduled date in loc. An empty or malformed clock never bounds.
func (t *Task) beforeClock(now time.Time, loc *time.Location, clock string) bool {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return false
	}
	day := t.ScheduledDate.Time(loc)
	at := time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc)
	return now.Before(at)
}

func (t *Task) complete(now time.Time) error {
	if t.Status == TaskComplete {
		return &InvariantError{Message: "task already complete"}
	}
	t.Status = TaskComplete
	at := now.UTC()
	t.CompletedAt = &at
	t.Emit(&TaskCompletedEvent{
		eventBase:     newEventBase(t.UserID),
		TaskID:        t.ID,
		TaskName:      t.Name,
		ScheduledDate: t.ScheduledDate,
		RoutineDefID:  t.RoutineDefinitionID,
		snapshot:      t,
	})
	return nil
}

func (t *Task) punt() error {
	if t.Status == TaskComplete {
		return &InvariantError{Message: "cannot punt a completed task"}
	}
	t.Status = TaskPunted
	t.Emit(&TaskPuntedEvent{
		eventBase:     newEventBase(t.UserID),
		TaskID:        t.ID,
		TaskName:      t.Name,
		ScheduledDate: t.ScheduledDate,
		RoutineDefID:  t.RoutineDefinitionID,
		snapshot:      t,
	})
	return nil
}

// AttachLLMRunResult stores the reproducibility snapshot of the run that
// produced or modified this task.
func (t *Task) AttachLLMRunResult(r *LLMRunResult) { t.LLMRunResult = r }
