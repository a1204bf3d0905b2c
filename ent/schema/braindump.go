package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// BrainDump holds the schema definition for the per-date capture list.
type BrainDump struct {
	ent.Schema
}

// Fields of the BrainDump.
func (BrainDump) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("brain_dump_id").
			Unique().
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.String("date").
			Immutable(),
		field.JSON("items", []domain.BrainDumpItem{}).
			Optional(),
	}
}

// Edges of the BrainDump.
func (BrainDump) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("brain_dumps").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the BrainDump.
func (BrainDump) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date").
			Unique(),
	}
}
