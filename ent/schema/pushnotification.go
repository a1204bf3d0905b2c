package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// PushNotification holds the schema definition for the audit record of one
// notification attempt. triggered_by is the dedup key re-entrant
// evaluators check before sending.
type PushNotification struct {
	ent.Schema
}

// Fields of the PushNotification.
func (PushNotification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("push_notification_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.JSON("push_subscription_ids", []uuid.UUID{}).
			Optional(),
		field.Text("content"),
		field.Enum("status").
			Values("success", "skipped", "error"),
		field.String("error_message").
			Optional(),
		field.Time("sent_at"),
		field.String("triggered_by"),
		field.JSON("llm_snapshot", &domain.LLMRunResult{}).
			Optional(),
	}
}

// Edges of the PushNotification.
func (PushNotification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("push_notifications").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PushNotification.
func (PushNotification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "triggered_by"),
		index.Fields("user_id", "sent_at"),
	}
}
