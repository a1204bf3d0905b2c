package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// Message holds the schema definition for the Message entity.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.Enum("role").
			Values("USER", "ASSISTANT", "SYSTEM"),
		field.Text("content"),
		field.JSON("meta", map[string]any{}).
			Optional().
			Comment("from_number, to_number, in_reply_to_message_id, payload, provider"),
		field.String("triggered_by").
			Optional(),
		field.JSON("llm_run_result", &domain.LLMRunResult{}).
			Optional(),
		field.Time("created_at").
			Default(nowUTC).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("messages").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
