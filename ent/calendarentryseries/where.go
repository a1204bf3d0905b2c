// Code generated by ent, DO NOT EDIT.

package calendarentryseries

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldUserID, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldPlatform, v))
}

// PlatformID applies equality check predicate on the "platform_id" field. It's identical to PlatformIDEQ.
func PlatformID(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldPlatformID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldName, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldFrequency, v))
}

// EventCategory applies equality check predicate on the "event_category" field. It's identical to EventCategoryEQ.
func EventCategory(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldEventCategory, v))
}

// Recurrence applies equality check predicate on the "recurrence" field. It's identical to RecurrenceEQ.
func Recurrence(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldRecurrence, v))
}

// StartsAt applies equality check predicate on the "starts_at" field. It's identical to StartsAtEQ.
func StartsAt(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldStartsAt, v))
}

// EndsAt applies equality check predicate on the "ends_at" field. It's identical to EndsAtEQ.
func EndsAt(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldEndsAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldUserID, vs...))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContainsFold(FieldPlatform, v))
}

// PlatformIDEQ applies the EQ predicate on the "platform_id" field.
func PlatformIDEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldPlatformID, v))
}

// PlatformIDNEQ applies the NEQ predicate on the "platform_id" field.
func PlatformIDNEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldPlatformID, v))
}

// PlatformIDIn applies the In predicate on the "platform_id" field.
func PlatformIDIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldPlatformID, vs...))
}

// PlatformIDNotIn applies the NotIn predicate on the "platform_id" field.
func PlatformIDNotIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldPlatformID, vs...))
}

// PlatformIDGT applies the GT predicate on the "platform_id" field.
func PlatformIDGT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGT(FieldPlatformID, v))
}

// PlatformIDGTE applies the GTE predicate on the "platform_id" field.
func PlatformIDGTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGTE(FieldPlatformID, v))
}

// PlatformIDLT applies the LT predicate on the "platform_id" field.
func PlatformIDLT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLT(FieldPlatformID, v))
}

// PlatformIDLTE applies the LTE predicate on the "platform_id" field.
func PlatformIDLTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLTE(FieldPlatformID, v))
}

// PlatformIDContains applies the Contains predicate on the "platform_id" field.
func PlatformIDContains(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContains(FieldPlatformID, v))
}

// PlatformIDHasPrefix applies the HasPrefix predicate on the "platform_id" field.
func PlatformIDHasPrefix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasPrefix(FieldPlatformID, v))
}

// PlatformIDHasSuffix applies the HasSuffix predicate on the "platform_id" field.
func PlatformIDHasSuffix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasSuffix(FieldPlatformID, v))
}

// PlatformIDEqualFold applies the EqualFold predicate on the "platform_id" field.
func PlatformIDEqualFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEqualFold(FieldPlatformID, v))
}

// PlatformIDContainsFold applies the ContainsFold predicate on the "platform_id" field.
func PlatformIDContainsFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContainsFold(FieldPlatformID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContainsFold(FieldName, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyIsNil applies the IsNil predicate on the "frequency" field.
func FrequencyIsNil() predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIsNull(FieldFrequency))
}

// FrequencyNotNil applies the NotNil predicate on the "frequency" field.
func FrequencyNotNil() predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotNull(FieldFrequency))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContainsFold(FieldFrequency, v))
}

// EventCategoryEQ applies the EQ predicate on the "event_category" field.
func EventCategoryEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldEventCategory, v))
}

// EventCategoryNEQ applies the NEQ predicate on the "event_category" field.
func EventCategoryNEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldEventCategory, v))
}

// EventCategoryIn applies the In predicate on the "event_category" field.
func EventCategoryIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldEventCategory, vs...))
}

// EventCategoryNotIn applies the NotIn predicate on the "event_category" field.
func EventCategoryNotIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldEventCategory, vs...))
}

// EventCategoryGT applies the GT predicate on the "event_category" field.
func EventCategoryGT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGT(FieldEventCategory, v))
}

// EventCategoryGTE applies the GTE predicate on the "event_category" field.
func EventCategoryGTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGTE(FieldEventCategory, v))
}

// EventCategoryLT applies the LT predicate on the "event_category" field.
func EventCategoryLT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLT(FieldEventCategory, v))
}

// EventCategoryLTE applies the LTE predicate on the "event_category" field.
func EventCategoryLTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLTE(FieldEventCategory, v))
}

// EventCategoryContains applies the Contains predicate on the "event_category" field.
func EventCategoryContains(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContains(FieldEventCategory, v))
}

// EventCategoryHasPrefix applies the HasPrefix predicate on the "event_category" field.
func EventCategoryHasPrefix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasPrefix(FieldEventCategory, v))
}

// EventCategoryHasSuffix applies the HasSuffix predicate on the "event_category" field.
func EventCategoryHasSuffix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasSuffix(FieldEventCategory, v))
}

// EventCategoryIsNil applies the IsNil predicate on the "event_category" field.
func EventCategoryIsNil() predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIsNull(FieldEventCategory))
}

// EventCategoryNotNil applies the NotNil predicate on the "event_category" field.
func EventCategoryNotNil() predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotNull(FieldEventCategory))
}

// EventCategoryEqualFold applies the EqualFold predicate on the "event_category" field.
func EventCategoryEqualFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEqualFold(FieldEventCategory, v))
}

// EventCategoryContainsFold applies the ContainsFold predicate on the "event_category" field.
func EventCategoryContainsFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContainsFold(FieldEventCategory, v))
}

// RecurrenceEQ applies the EQ predicate on the "recurrence" field.
func RecurrenceEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldRecurrence, v))
}

// RecurrenceNEQ applies the NEQ predicate on the "recurrence" field.
func RecurrenceNEQ(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldRecurrence, v))
}

// RecurrenceIn applies the In predicate on the "recurrence" field.
func RecurrenceIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldRecurrence, vs...))
}

// RecurrenceNotIn applies the NotIn predicate on the "recurrence" field.
func RecurrenceNotIn(vs ...string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldRecurrence, vs...))
}

// RecurrenceGT applies the GT predicate on the "recurrence" field.
func RecurrenceGT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGT(FieldRecurrence, v))
}

// RecurrenceGTE applies the GTE predicate on the "recurrence" field.
func RecurrenceGTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGTE(FieldRecurrence, v))
}

// RecurrenceLT applies the LT predicate on the "recurrence" field.
func RecurrenceLT(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLT(FieldRecurrence, v))
}

// RecurrenceLTE applies the LTE predicate on the "recurrence" field.
func RecurrenceLTE(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLTE(FieldRecurrence, v))
}

// RecurrenceContains applies the Contains predicate on the "recurrence" field.
func RecurrenceContains(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContains(FieldRecurrence, v))
}

// RecurrenceHasPrefix applies the HasPrefix predicate on the "recurrence" field.
func RecurrenceHasPrefix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasPrefix(FieldRecurrence, v))
}

// RecurrenceHasSuffix applies the HasSuffix predicate on the "recurrence" field.
func RecurrenceHasSuffix(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldHasSuffix(FieldRecurrence, v))
}

// RecurrenceIsNil applies the IsNil predicate on the "recurrence" field.
func RecurrenceIsNil() predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIsNull(FieldRecurrence))
}

// RecurrenceNotNil applies the NotNil predicate on the "recurrence" field.
func RecurrenceNotNil() predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotNull(FieldRecurrence))
}

// RecurrenceEqualFold applies the EqualFold predicate on the "recurrence" field.
func RecurrenceEqualFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEqualFold(FieldRecurrence, v))
}

// RecurrenceContainsFold applies the ContainsFold predicate on the "recurrence" field.
func RecurrenceContainsFold(v string) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldContainsFold(FieldRecurrence, v))
}

// StartsAtEQ applies the EQ predicate on the "starts_at" field.
func StartsAtEQ(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldStartsAt, v))
}

// StartsAtNEQ applies the NEQ predicate on the "starts_at" field.
func StartsAtNEQ(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldStartsAt, v))
}

// StartsAtIn applies the In predicate on the "starts_at" field.
func StartsAtIn(vs ...time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldStartsAt, vs...))
}

// StartsAtNotIn applies the NotIn predicate on the "starts_at" field.
func StartsAtNotIn(vs ...time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldStartsAt, vs...))
}

// StartsAtGT applies the GT predicate on the "starts_at" field.
func StartsAtGT(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGT(FieldStartsAt, v))
}

// StartsAtGTE applies the GTE predicate on the "starts_at" field.
func StartsAtGTE(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGTE(FieldStartsAt, v))
}

// StartsAtLT applies the LT predicate on the "starts_at" field.
func StartsAtLT(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLT(FieldStartsAt, v))
}

// StartsAtLTE applies the LTE predicate on the "starts_at" field.
func StartsAtLTE(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLTE(FieldStartsAt, v))
}

// EndsAtEQ applies the EQ predicate on the "ends_at" field.
func EndsAtEQ(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldEQ(FieldEndsAt, v))
}

// EndsAtNEQ applies the NEQ predicate on the "ends_at" field.
func EndsAtNEQ(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNEQ(FieldEndsAt, v))
}

// EndsAtIn applies the In predicate on the "ends_at" field.
func EndsAtIn(vs ...time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIn(FieldEndsAt, vs...))
}

// EndsAtNotIn applies the NotIn predicate on the "ends_at" field.
func EndsAtNotIn(vs ...time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotIn(FieldEndsAt, vs...))
}

// EndsAtGT applies the GT predicate on the "ends_at" field.
func EndsAtGT(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGT(FieldEndsAt, v))
}

// EndsAtGTE applies the GTE predicate on the "ends_at" field.
func EndsAtGTE(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldGTE(FieldEndsAt, v))
}

// EndsAtLT applies the LT predicate on the "ends_at" field.
func EndsAtLT(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLT(FieldEndsAt, v))
}

// EndsAtLTE applies the LTE predicate on the "ends_at" field.
func EndsAtLTE(v time.Time) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldLTE(FieldEndsAt, v))
}

// EndsAtIsNil applies the IsNil predicate on the "ends_at" field.
func EndsAtIsNil() predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldIsNull(FieldEndsAt))
}

// EndsAtNotNil applies the NotNil predicate on the "ends_at" field.
func EndsAtNotNil() predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.FieldNotNull(FieldEndsAt))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarEntrySeries) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarEntrySeries) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarEntrySeries) predicate.CalendarEntrySeries {
	return predicate.CalendarEntrySeries(sql.NotPredicates(p))
}
