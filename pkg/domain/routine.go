package domain

import "github.com/google/uuid"

// Routine is a recurring-task definition. Active on date D iff its
// RecurrenceSchedule matches D; day scheduling then materializes one Task
// per RoutineTask.
type Routine struct {
	AggregateBase
	ID       uuid.UUID          `json:"id"`
	UserID   uuid.UUID          `json:"user_id"`
	Name     string             `json:"name"`
	Schedule RecurrenceSchedule `json:"schedule"`
	Tasks    []RoutineTask      `json:"routine_tasks"`
	Tags     []string           `json:"tags,omitempty"`
}

// NewRoutine creates a routine definition.
func NewRoutine(userID uuid.UUID, name string, schedule RecurrenceSchedule) *Routine {
	r := &Routine{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Schedule: schedule,
	}
	r.markNew()
	return r
}

func (r *Routine) AggregateID() uuid.UUID    { return r.ID }
func (r *Routine) AggregateType() string     { return "routine" }
func (r *Routine) AggregateOwner() uuid.UUID { return r.UserID }

// ActiveOn reports whether the routine materializes tasks on the date.
func (r *Routine) ActiveOn(date Date) bool {
	return r.Schedule.Matches(date)
}
