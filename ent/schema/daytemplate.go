package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// DayTemplate holds the schema definition for the DayTemplate entity.
// Identity is the deterministic UUID5 of (user_id, slug).
type DayTemplate struct {
	ent.Schema
}

// Fields of the DayTemplate.
func (DayTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("day_template_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("slug"),
		field.String("start_time").
			Optional(),
		field.String("end_time").
			Optional(),
		field.JSON("routine_definition_ids", []uuid.UUID{}).
			Optional(),
		field.JSON("time_blocks", []domain.TimeBlock{}).
			Optional(),
		field.JSON("high_level_plan", domain.HighLevelPlan{}).
			Optional(),
	}
}

// Edges of the DayTemplate.
func (DayTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("day_templates").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DayTemplate.
func (DayTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "slug").
			Unique(),
	}
}
