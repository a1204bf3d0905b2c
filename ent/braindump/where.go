// Code generated by ent, DO NOT EDIT.

package braindump

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldEQ(FieldUserID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldEQ(FieldDate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldNotIn(FieldUserID, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.BrainDump {
	return predicate.BrainDump(sql.FieldContainsFold(FieldDate, v))
}

// ItemsIsNil applies the IsNil predicate on the "items" field.
func ItemsIsNil() predicate.BrainDump {
	return predicate.BrainDump(sql.FieldIsNull(FieldItems))
}

// ItemsNotNil applies the NotNil predicate on the "items" field.
func ItemsNotNil() predicate.BrainDump {
	return predicate.BrainDump(sql.FieldNotNull(FieldItems))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.BrainDump {
	return predicate.BrainDump(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.BrainDump {
	return predicate.BrainDump(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BrainDump) predicate.BrainDump {
	return predicate.BrainDump(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BrainDump) predicate.BrainDump {
	return predicate.BrainDump(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BrainDump) predicate.BrainDump {
	return predicate.BrainDump(sql.NotPredicates(p))
}
