package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("phone_number").
			Optional(),
		field.JSON("settings", domain.UserSettings{}).
			Comment("Timezone, LLM provider, reminder rules, template defaults"),
		field.Time("created_at").
			Default(nowUTC).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("days", Day.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("routines", Routine.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("day_templates", DayTemplate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("calendar_entries", CalendarEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("calendar_entry_series", CalendarEntrySeries.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("push_subscriptions", PushSubscription.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("push_notifications", PushNotification.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("brain_dumps", BrainDump.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_logs", AuditLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
