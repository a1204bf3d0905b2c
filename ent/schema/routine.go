package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// Routine holds the schema definition for the Routine entity.
type Routine struct {
	ent.Schema
}

// Fields of the Routine.
func (Routine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("routine_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("name"),
		field.JSON("schedule", domain.RecurrenceSchedule{}),
		field.JSON("routine_tasks", []domain.RoutineTask{}).
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
	}
}

// Edges of the Routine.
func (Routine) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("routines").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Routine.
func (Routine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
