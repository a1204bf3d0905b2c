package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AuditLog holds the schema definition for the append-only mutation record.
// occurred_at is monotonically increasing per user and doubles as the
// logical clock for incremental sync.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("audit_log_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("activity_type").
			Immutable().
			Comment("Event name, e.g. TaskCreatedEvent"),
		field.UUID("entity_id", uuid.UUID{}).
			Immutable(),
		field.String("entity_type").
			Immutable(),
		field.Time("occurred_at").
			Immutable(),
		field.JSON("meta", map[string]any{}).
			Optional().
			Comment("meta.entity_data holds the entity snapshot for created/updated"),
	}
}

// Edges of the AuditLog.
func (AuditLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("audit_logs").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "occurred_at"),
		index.Fields("entity_type", "entity_id"),
	}
}
