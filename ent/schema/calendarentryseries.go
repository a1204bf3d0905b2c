package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CalendarEntrySeries holds the schema definition for a recurring series.
// Identity is the deterministic UUID5 of (platform, series platform_id).
type CalendarEntrySeries struct {
	ent.Schema
}

// Fields of the CalendarEntrySeries.
func (CalendarEntrySeries) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("calendar_entry_series_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("platform").
			Immutable(),
		field.String("platform_id").
			Immutable(),
		field.String("name"),
		field.String("frequency").
			Optional(),
		field.String("event_category").
			Optional(),
		field.String("recurrence").
			Optional().
			Comment("Upstream recurrence rule, verbatim"),
		field.Time("starts_at"),
		field.Time("ends_at").
			Optional().
			Nillable(),
	}
}

// Edges of the CalendarEntrySeries.
func (CalendarEntrySeries) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("calendar_entry_series").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CalendarEntrySeries.
func (CalendarEntrySeries) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "platform_id").
			Unique(),
		index.Fields("user_id"),
	}
}
