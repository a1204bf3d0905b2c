package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity.
// routine_definition_id is nil for adhoc tasks, which survive re-scheduling.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("name"),
		field.Enum("status").
			Values("NOT_STARTED", "READY", "NOT_READY", "PENDING", "PUNTED", "COMPLETE").
			Default("NOT_STARTED"),
		field.String("category").
			Optional(),
		field.String("type").
			Optional(),
		field.String("frequency").
			Optional(),
		field.JSON("schedule", &domain.TimeWindow{}).
			Optional(),
		field.String("scheduled_date"),
		field.UUID("routine_definition_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("nil ⇒ adhoc"),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("actions", []domain.TaskAction{}).
			Optional().
			Comment("Append-only action log"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.JSON("llm_run_result", &domain.LLMRunResult{}).
			Optional(),
		field.Time("created_at").
			Default(nowUTC).
			Immutable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("tasks").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "scheduled_date"),
		index.Fields("user_id", "scheduled_date", "routine_definition_id"),
		index.Fields("status"),
	}
}
