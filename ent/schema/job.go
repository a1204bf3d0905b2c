package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Job holds the schema definition for the background job queue. Jobs are
// enqueued post-commit by the unit of work and claimed by the worker pool
// via conditional status updates. At-least-once; executors are idempotent.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("Executor key, e.g. process_brain_dump_item"),
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Time("run_at").
			Default(nowUTC).
			Comment("Earliest execution time"),
		field.String("claimed_by").
			Optional().
			Comment("Pod id, for orphan recovery"),
		field.Int("attempts").
			Default(0),
		field.String("error_message").
			Optional(),
		field.Time("created_at").
			Default(nowUTC).
			Immutable(),
		field.Time("updated_at").
			Default(nowUTC).
			UpdateDefault(nowUTC),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "run_at"),
		index.Fields("user_id", "kind"),
	}
}
