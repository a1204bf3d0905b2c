// Code generated by ent, DO NOT EDIT.

package day

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldUserID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldDate, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateSlug applies equality check predicate on the "template_slug" field. It's identical to TemplateSlugEQ.
func TemplateSlug(v string) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldTemplateSlug, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldScheduledAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldNotIn(FieldUserID, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.Day {
	return predicate.Day(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.Day {
	return predicate.Day(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.Day {
	return predicate.Day(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.Day {
	return predicate.Day(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.Day {
	return predicate.Day(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.Day {
	return predicate.Day(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.Day {
	return predicate.Day(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.Day {
	return predicate.Day(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.Day {
	return predicate.Day(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.Day {
	return predicate.Day(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.Day {
	return predicate.Day(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.Day {
	return predicate.Day(sql.FieldContainsFold(FieldDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Day {
	return predicate.Day(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Day {
	return predicate.Day(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Day {
	return predicate.Day(sql.FieldNotIn(FieldStatus, vs...))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v uuid.UUID) predicate.Day {
	return predicate.Day(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDIsNil applies the IsNil predicate on the "template_id" field.
func TemplateIDIsNil() predicate.Day {
	return predicate.Day(sql.FieldIsNull(FieldTemplateID))
}

// TemplateIDNotNil applies the NotNil predicate on the "template_id" field.
func TemplateIDNotNil() predicate.Day {
	return predicate.Day(sql.FieldNotNull(FieldTemplateID))
}

// TemplateSlugEQ applies the EQ predicate on the "template_slug" field.
func TemplateSlugEQ(v string) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldTemplateSlug, v))
}

// TemplateSlugNEQ applies the NEQ predicate on the "template_slug" field.
func TemplateSlugNEQ(v string) predicate.Day {
	return predicate.Day(sql.FieldNEQ(FieldTemplateSlug, v))
}

// TemplateSlugIn applies the In predicate on the "template_slug" field.
func TemplateSlugIn(vs ...string) predicate.Day {
	return predicate.Day(sql.FieldIn(FieldTemplateSlug, vs...))
}

// TemplateSlugNotIn applies the NotIn predicate on the "template_slug" field.
func TemplateSlugNotIn(vs ...string) predicate.Day {
	return predicate.Day(sql.FieldNotIn(FieldTemplateSlug, vs...))
}

// TemplateSlugGT applies the GT predicate on the "template_slug" field.
func TemplateSlugGT(v string) predicate.Day {
	return predicate.Day(sql.FieldGT(FieldTemplateSlug, v))
}

// TemplateSlugGTE applies the GTE predicate on the "template_slug" field.
func TemplateSlugGTE(v string) predicate.Day {
	return predicate.Day(sql.FieldGTE(FieldTemplateSlug, v))
}

// TemplateSlugLT applies the LT predicate on the "template_slug" field.
func TemplateSlugLT(v string) predicate.Day {
	return predicate.Day(sql.FieldLT(FieldTemplateSlug, v))
}

// TemplateSlugLTE applies the LTE predicate on the "template_slug" field.
func TemplateSlugLTE(v string) predicate.Day {
	return predicate.Day(sql.FieldLTE(FieldTemplateSlug, v))
}

// TemplateSlugContains applies the Contains predicate on the "template_slug" field.
func TemplateSlugContains(v string) predicate.Day {
	return predicate.Day(sql.FieldContains(FieldTemplateSlug, v))
}

// TemplateSlugHasPrefix applies the HasPrefix predicate on the "template_slug" field.
func TemplateSlugHasPrefix(v string) predicate.Day {
	return predicate.Day(sql.FieldHasPrefix(FieldTemplateSlug, v))
}

// TemplateSlugHasSuffix applies the HasSuffix predicate on the "template_slug" field.
func TemplateSlugHasSuffix(v string) predicate.Day {
	return predicate.Day(sql.FieldHasSuffix(FieldTemplateSlug, v))
}

// TemplateSlugIsNil applies the IsNil predicate on the "template_slug" field.
func TemplateSlugIsNil() predicate.Day {
	return predicate.Day(sql.FieldIsNull(FieldTemplateSlug))
}

// TemplateSlugNotNil applies the NotNil predicate on the "template_slug" field.
func TemplateSlugNotNil() predicate.Day {
	return predicate.Day(sql.FieldNotNull(FieldTemplateSlug))
}

// TemplateSlugEqualFold applies the EqualFold predicate on the "template_slug" field.
func TemplateSlugEqualFold(v string) predicate.Day {
	return predicate.Day(sql.FieldEqualFold(FieldTemplateSlug, v))
}

// TemplateSlugContainsFold applies the ContainsFold predicate on the "template_slug" field.
func TemplateSlugContainsFold(v string) predicate.Day {
	return predicate.Day(sql.FieldContainsFold(FieldTemplateSlug, v))
}

// TimeBlocksIsNil applies the IsNil predicate on the "time_blocks" field.
func TimeBlocksIsNil() predicate.Day {
	return predicate.Day(sql.FieldIsNull(FieldTimeBlocks))
}

// TimeBlocksNotNil applies the NotNil predicate on the "time_blocks" field.
func TimeBlocksNotNil() predicate.Day {
	return predicate.Day(sql.FieldNotNull(FieldTimeBlocks))
}

// HighLevelPlanIsNil applies the IsNil predicate on the "high_level_plan" field.
func HighLevelPlanIsNil() predicate.Day {
	return predicate.Day(sql.FieldIsNull(FieldHighLevelPlan))
}

// HighLevelPlanNotNil applies the NotNil predicate on the "high_level_plan" field.
func HighLevelPlanNotNil() predicate.Day {
	return predicate.Day(sql.FieldNotNull(FieldHighLevelPlan))
}

// AlarmsIsNil applies the IsNil predicate on the "alarms" field.
func AlarmsIsNil() predicate.Day {
	return predicate.Day(sql.FieldIsNull(FieldAlarms))
}

// AlarmsNotNil applies the NotNil predicate on the "alarms" field.
func AlarmsNotNil() predicate.Day {
	return predicate.Day(sql.FieldNotNull(FieldAlarms))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Day {
	return predicate.Day(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Day {
	return predicate.Day(sql.FieldNotNull(FieldTags))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.Day {
	return predicate.Day(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.Day {
	return predicate.Day(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.Day {
	return predicate.Day(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.Day {
	return predicate.Day(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.Day {
	return predicate.Day(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.Day {
	return predicate.Day(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.Day {
	return predicate.Day(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.Day {
	return predicate.Day(sql.FieldLTE(FieldScheduledAt, v))
}

// ScheduledAtIsNil applies the IsNil predicate on the "scheduled_at" field.
func ScheduledAtIsNil() predicate.Day {
	return predicate.Day(sql.FieldIsNull(FieldScheduledAt))
}

// ScheduledAtNotNil applies the NotNil predicate on the "scheduled_at" field.
func ScheduledAtNotNil() predicate.Day {
	return predicate.Day(sql.FieldNotNull(FieldScheduledAt))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Day {
	return predicate.Day(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Day {
	return predicate.Day(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Day) predicate.Day {
	return predicate.Day(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Day) predicate.Day {
	return predicate.Day(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Day) predicate.Day {
	return predicate.Day(sql.NotPredicates(p))
}
