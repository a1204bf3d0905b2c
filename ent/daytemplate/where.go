// Code generated by ent, DO NOT EDIT.

package daytemplate

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldUserID, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldSlug, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldEndTime, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotIn(FieldUserID, vs...))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldContainsFold(FieldSlug, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeIsNil applies the IsNil predicate on the "start_time" field.
func StartTimeIsNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIsNull(FieldStartTime))
}

// StartTimeNotNil applies the NotNil predicate on the "start_time" field.
func StartTimeNotNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotNull(FieldStartTime))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotNull(FieldEndTime))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldContainsFold(FieldEndTime, v))
}

// RoutineDefinitionIdsIsNil applies the IsNil predicate on the "routine_definition_ids" field.
func RoutineDefinitionIdsIsNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIsNull(FieldRoutineDefinitionIds))
}

// RoutineDefinitionIdsNotNil applies the NotNil predicate on the "routine_definition_ids" field.
func RoutineDefinitionIdsNotNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotNull(FieldRoutineDefinitionIds))
}

// TimeBlocksIsNil applies the IsNil predicate on the "time_blocks" field.
func TimeBlocksIsNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIsNull(FieldTimeBlocks))
}

// TimeBlocksNotNil applies the NotNil predicate on the "time_blocks" field.
func TimeBlocksNotNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotNull(FieldTimeBlocks))
}

// HighLevelPlanIsNil applies the IsNil predicate on the "high_level_plan" field.
func HighLevelPlanIsNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldIsNull(FieldHighLevelPlan))
}

// HighLevelPlanNotNil applies the NotNil predicate on the "high_level_plan" field.
func HighLevelPlanNotNil() predicate.DayTemplate {
	return predicate.DayTemplate(sql.FieldNotNull(FieldHighLevelPlan))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.DayTemplate {
	return predicate.DayTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.DayTemplate {
	return predicate.DayTemplate(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DayTemplate) predicate.DayTemplate {
	return predicate.DayTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DayTemplate) predicate.DayTemplate {
	return predicate.DayTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DayTemplate) predicate.DayTemplate {
	return predicate.DayTemplate(sql.NotPredicates(p))
}
