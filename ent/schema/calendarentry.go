package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CalendarEntry holds the schema definition for one projected calendar
// occurrence. (platform, platform_id) is the upstream natural key.
type CalendarEntry struct {
	ent.Schema
}

// Fields of the CalendarEntry.
func (CalendarEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("calendar_entry_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("platform").
			Immutable(),
		field.String("platform_id").
			Immutable(),
		field.UUID("calendar_entry_series_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.String("name"),
		field.Time("starts_at"),
		field.Time("ends_at"),
		field.String("frequency").
			Optional().
			Comment("Inherited from the series"),
		field.String("event_category").
			Optional(),
		field.String("attendance_status").
			Optional(),
	}
}

// Edges of the CalendarEntry.
func (CalendarEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("calendar_entries").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CalendarEntry.
func (CalendarEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "platform_id").
			Unique(),
		index.Fields("user_id", "starts_at"),
		index.Fields("calendar_entry_series_id"),
	}
}
