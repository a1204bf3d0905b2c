package domain

import "github.com/google/uuid"

// DayTemplate is a reusable per-weekday blueprint: time blocks, the
// high-level plan, and the routines that apply.
type DayTemplate struct {
	AggregateBase
	ID                   uuid.UUID     `json:"id"`
	UserID               uuid.UUID     `json:"user_id"`
	Slug                 string        `json:"slug"`
	StartTime            string        `json:"start_time,omitempty"` // "HH:MM"
	EndTime              string        `json:"end_time,omitempty"`
	RoutineDefinitionIDs []uuid.UUID   `json:"routine_definition_ids,omitempty"`
	TimeBlocks           []TimeBlock   `json:"time_blocks"`
	Plan                 HighLevelPlan `json:"high_level_plan"`
}

// NewDayTemplate creates a template with its deterministic identity.
func NewDayTemplate(userID uuid.UUID, slug string) *DayTemplate {
	t := &DayTemplate{
		ID:     TemplateID(userID, slug),
		UserID: userID,
		Slug:   slug,
	}
	t.markNew()
	return t
}

func (t *DayTemplate) AggregateID() uuid.UUID    { return t.ID }
func (t *DayTemplate) AggregateType() string     { return "day_template" }
func (t *DayTemplate) AggregateOwner() uuid.UUID { return t.UserID }
