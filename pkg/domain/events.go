package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a domain event emitted by an aggregate during a transaction and
// dispatched by the unit of work after a successful commit.
type Event interface {
	// Name is the event type, e.g. "TaskCompletedEvent". Audit-log
	// activity_type and dispatch-registry keys both use it.
	Name() string
	Owner() uuid.UUID
	At() time.Time
}

// AuditableEvent is an Event that produces an audit-log row at commit.
// EntitySnapshot returns the serialized entity state for created/updated
// changes and nil for deletions.
type AuditableEvent interface {
	Event
	EntityType() string
	EntityID() uuid.UUID
	EntitySnapshot() any
	ChangeKind() ChangeKind
}

// eventBase carries the fields every event shares.
type eventBase struct {
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newEventBase(userID uuid.UUID) eventBase {
	return eventBase{UserID: userID, OccurredAt: time.Now().UTC()}
}

func (e eventBase) Owner() uuid.UUID { return e.UserID }
func (e eventBase) At() time.Time    { return e.OccurredAt }

// EntityChangeEvent is the generic created/updated/deleted mutation event.
// The unit of work synthesizes one per aggregate passed to Add or Remove.
type EntityChangeEvent struct {
	eventBase
	Entity       string     `json:"entity_type"`
	ID           uuid.UUID  `json:"entity_id"`
	Kind         ChangeKind `json:"change_kind"`
	Snapshot     any        `json:"entity_data,omitempty"`
	activityType string
}

// NewEntityChangeEvent builds a mutation event. The event name follows the
// "<EntityType><Kind>Event" convention, e.g. "TaskCreatedEvent".
func NewEntityChangeEvent(userID uuid.UUID, entityType string, entityID uuid.UUID, kind ChangeKind, snapshot any) *EntityChangeEvent {
	var verb string
	switch kind {
	case ChangeCreated:
		verb = "Created"
	case ChangeDeleted:
		verb = "Deleted"
	default:
		verb = "Updated"
	}
	return &EntityChangeEvent{
		eventBase:    newEventBase(userID),
		Entity:       entityType,
		ID:           entityID,
		Kind:         kind,
		Snapshot:     snapshot,
		activityType: exportedName(entityType) + verb + "Event",
	}
}

// exportedName converts a snake_case entity type to its CamelCase event
// prefix: "calendar_entry" → "CalendarEntry".
func exportedName(entityType string) string {
	out := make([]byte, 0, len(entityType))
	upper := true
	for i := 0; i < len(entityType); i++ {
		c := entityType[i]
		if c == '_' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		out = append(out, c)
	}
	return string(out)
}

func (e *EntityChangeEvent) Name() string           { return e.activityType }
func (e *EntityChangeEvent) EntityType() string     { return e.Entity }
func (e *EntityChangeEvent) EntityID() uuid.UUID    { return e.ID }
func (e *EntityChangeEvent) EntitySnapshot() any    { return e.Snapshot }
func (e *EntityChangeEvent) ChangeKind() ChangeKind { return e.Kind }

// AlarmTriggeredEvent fires when a day alarm (or a synthetic kiosk reminder
// alarm) reaches its trigger time. A downstream handler translates it to
// transport based on AlarmType.
type AlarmTriggeredEvent struct {
	eventBase
	DayDate   Date      `json:"day_date"`
	AlarmID   uuid.UUID `json:"alarm_id"`
	AlarmName string    `json:"alarm_name"`
	AlarmTime string    `json:"alarm_time"` // "HH:MM" user-local
	AlarmType AlarmType `json:"alarm_type"`
	URL       string    `json:"url,omitempty"`
}

func (e *AlarmTriggeredEvent) Name() string { return "AlarmTriggeredEvent" }

// TaskCompletedEvent is emitted by Task.Complete. It is auditable so the
// task-risk query can derive completion rates from the audit stream.
type TaskCompletedEvent struct {
	eventBase
	TaskID        uuid.UUID  `json:"task_id"`
	TaskName      string     `json:"task_name"`
	ScheduledDate Date       `json:"scheduled_date"`
	RoutineDefID  *uuid.UUID `json:"routine_definition_id,omitempty"`
	snapshot      any
}

func (e *TaskCompletedEvent) Name() string           { return "TaskCompletedEvent" }
func (e *TaskCompletedEvent) EntityType() string     { return "task" }
func (e *TaskCompletedEvent) EntityID() uuid.UUID    { return e.TaskID }
func (e *TaskCompletedEvent) EntitySnapshot() any    { return e.snapshot }
func (e *TaskCompletedEvent) ChangeKind() ChangeKind { return ChangeUpdated }

// TaskPuntedEvent is emitted by Task.Punt. Auditable, same as completion.
type TaskPuntedEvent struct {
	eventBase
	TaskID        uuid.UUID  `json:"task_id"`
	TaskName      string     `json:"task_name"`
	ScheduledDate Date       `json:"scheduled_date"`
	RoutineDefID  *uuid.UUID `json:"routine_definition_id,omitempty"`
	snapshot      any
}

func (e *TaskPuntedEvent) Name() string           { return "TaskPuntedEvent" }
func (e *TaskPuntedEvent) EntityType() string     { return "task" }
func (e *TaskPuntedEvent) EntityID() uuid.UUID    { return e.TaskID }
func (e *TaskPuntedEvent) EntitySnapshot() any    { return e.snapshot }
func (e *TaskPuntedEvent) ChangeKind() ChangeKind { return ChangeUpdated }

// NewDayEvent announces the start of a new calendar day for a user. It is
// published on the domain-events channel, not audited.
type NewDayEvent struct {
	eventBase
	Date Date `json:"date"`
}

// NewDayEventFor builds a NewDayEvent for the given user and date.
func NewDayEventFor(userID uuid.UUID, date Date) *NewDayEvent {
	return &NewDayEvent{eventBase: newEventBase(userID), Date: date}
}

func (e *NewDayEvent) Name() string { return "NewDayEvent" }

// MessageReceivedEvent fires when an inbound message is persisted.
type MessageReceivedEvent struct {
	eventBase
	MessageID uuid.UUID `json:"message_id"`
}

func (e *MessageReceivedEvent) Name() string { return "MessageReceivedEvent" }
