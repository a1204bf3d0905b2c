package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// Day holds the schema definition for the Day aggregate root.
// Identity is the deterministic UUID5 of (user_id, date).
type Day struct {
	ent.Schema
}

// Fields of the Day.
func (Day) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("day_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("date").
			Immutable().
			Comment("ISO calendar date, user-local"),
		field.Enum("status").
			Values("UNSCHEDULED", "SCHEDULED", "IN_PROGRESS", "COMPLETE").
			Default("UNSCHEDULED"),
		field.UUID("template_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.String("template_slug").
			Optional(),
		field.JSON("time_blocks", []domain.TimeBlock{}).
			Optional(),
		field.JSON("high_level_plan", domain.HighLevelPlan{}).
			Optional(),
		field.JSON("alarms", []domain.Alarm{}).
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.Time("scheduled_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Day.
func (Day) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("days").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Day.
func (Day) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date").
			Unique(),
		index.Fields("status"),
	}
}
