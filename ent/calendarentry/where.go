// Code generated by ent, DO NOT EDIT.

package calendarentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldUserID, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldPlatform, v))
}

// PlatformID applies equality check predicate on the "platform_id" field. It's identical to PlatformIDEQ.
func PlatformID(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldPlatformID, v))
}

// CalendarEntrySeriesID applies equality check predicate on the "calendar_entry_series_id" field. It's identical to CalendarEntrySeriesIDEQ.
func CalendarEntrySeriesID(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldCalendarEntrySeriesID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldName, v))
}

// StartsAt applies equality check predicate on the "starts_at" field. It's identical to StartsAtEQ.
func StartsAt(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldStartsAt, v))
}

// EndsAt applies equality check predicate on the "ends_at" field. It's identical to EndsAtEQ.
func EndsAt(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldEndsAt, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldFrequency, v))
}

// EventCategory applies equality check predicate on the "event_category" field. It's identical to EventCategoryEQ.
func EventCategory(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldEventCategory, v))
}

// AttendanceStatus applies equality check predicate on the "attendance_status" field. It's identical to AttendanceStatusEQ.
func AttendanceStatus(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldAttendanceStatus, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldUserID, vs...))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContainsFold(FieldPlatform, v))
}

// PlatformIDEQ applies the EQ predicate on the "platform_id" field.
func PlatformIDEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldPlatformID, v))
}

// PlatformIDNEQ applies the NEQ predicate on the "platform_id" field.
func PlatformIDNEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldPlatformID, v))
}

// PlatformIDIn applies the In predicate on the "platform_id" field.
func PlatformIDIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldPlatformID, vs...))
}

// PlatformIDNotIn applies the NotIn predicate on the "platform_id" field.
func PlatformIDNotIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldPlatformID, vs...))
}

// PlatformIDGT applies the GT predicate on the "platform_id" field.
func PlatformIDGT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldPlatformID, v))
}

// PlatformIDGTE applies the GTE predicate on the "platform_id" field.
func PlatformIDGTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldPlatformID, v))
}

// PlatformIDLT applies the LT predicate on the "platform_id" field.
func PlatformIDLT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldPlatformID, v))
}

// PlatformIDLTE applies the LTE predicate on the "platform_id" field.
func PlatformIDLTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldPlatformID, v))
}

// PlatformIDContains applies the Contains predicate on the "platform_id" field.
func PlatformIDContains(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContains(FieldPlatformID, v))
}

// PlatformIDHasPrefix applies the HasPrefix predicate on the "platform_id" field.
func PlatformIDHasPrefix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasPrefix(FieldPlatformID, v))
}

// PlatformIDHasSuffix applies the HasSuffix predicate on the "platform_id" field.
func PlatformIDHasSuffix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasSuffix(FieldPlatformID, v))
}

// PlatformIDEqualFold applies the EqualFold predicate on the "platform_id" field.
func PlatformIDEqualFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEqualFold(FieldPlatformID, v))
}

// PlatformIDContainsFold applies the ContainsFold predicate on the "platform_id" field.
func PlatformIDContainsFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContainsFold(FieldPlatformID, v))
}

// CalendarEntrySeriesIDEQ applies the EQ predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDEQ(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldCalendarEntrySeriesID, v))
}

// CalendarEntrySeriesIDNEQ applies the NEQ predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDNEQ(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldCalendarEntrySeriesID, v))
}

// CalendarEntrySeriesIDIn applies the In predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDIn(vs ...uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldCalendarEntrySeriesID, vs...))
}

// CalendarEntrySeriesIDNotIn applies the NotIn predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDNotIn(vs ...uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldCalendarEntrySeriesID, vs...))
}

// CalendarEntrySeriesIDGT applies the GT predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDGT(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldCalendarEntrySeriesID, v))
}

// CalendarEntrySeriesIDGTE applies the GTE predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDGTE(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldCalendarEntrySeriesID, v))
}

// CalendarEntrySeriesIDLT applies the LT predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDLT(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldCalendarEntrySeriesID, v))
}

// CalendarEntrySeriesIDLTE applies the LTE predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDLTE(v uuid.UUID) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldCalendarEntrySeriesID, v))
}

// CalendarEntrySeriesIDIsNil applies the IsNil predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDIsNil() predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIsNull(FieldCalendarEntrySeriesID))
}

// CalendarEntrySeriesIDNotNil applies the NotNil predicate on the "calendar_entry_series_id" field.
func CalendarEntrySeriesIDNotNil() predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotNull(FieldCalendarEntrySeriesID))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContainsFold(FieldName, v))
}

// StartsAtEQ applies the EQ predicate on the "starts_at" field.
func StartsAtEQ(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldStartsAt, v))
}

// StartsAtNEQ applies the NEQ predicate on the "starts_at" field.
func StartsAtNEQ(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldStartsAt, v))
}

// StartsAtIn applies the In predicate on the "starts_at" field.
func StartsAtIn(vs ...time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldStartsAt, vs...))
}

// StartsAtNotIn applies the NotIn predicate on the "starts_at" field.
func StartsAtNotIn(vs ...time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldStartsAt, vs...))
}

// StartsAtGT applies the GT predicate on the "starts_at" field.
func StartsAtGT(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldStartsAt, v))
}

// StartsAtGTE applies the GTE predicate on the "starts_at" field.
func StartsAtGTE(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldStartsAt, v))
}

// StartsAtLT applies the LT predicate on the "starts_at" field.
func StartsAtLT(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldStartsAt, v))
}

// StartsAtLTE applies the LTE predicate on the "starts_at" field.
func StartsAtLTE(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldStartsAt, v))
}

// EndsAtEQ applies the EQ predicate on the "ends_at" field.
func EndsAtEQ(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldEndsAt, v))
}

// EndsAtNEQ applies the NEQ predicate on the "ends_at" field.
func EndsAtNEQ(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldEndsAt, v))
}

// EndsAtIn applies the In predicate on the "ends_at" field.
func EndsAtIn(vs ...time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldEndsAt, vs...))
}

// EndsAtNotIn applies the NotIn predicate on the "ends_at" field.
func EndsAtNotIn(vs ...time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldEndsAt, vs...))
}

// EndsAtGT applies the GT predicate on the "ends_at" field.
func EndsAtGT(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldEndsAt, v))
}

// EndsAtGTE applies the GTE predicate on the "ends_at" field.
func EndsAtGTE(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldEndsAt, v))
}

// EndsAtLT applies the LT predicate on the "ends_at" field.
func EndsAtLT(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldEndsAt, v))
}

// EndsAtLTE applies the LTE predicate on the "ends_at" field.
func EndsAtLTE(v time.Time) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldEndsAt, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyIsNil applies the IsNil predicate on the "frequency" field.
func FrequencyIsNil() predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIsNull(FieldFrequency))
}

// FrequencyNotNil applies the NotNil predicate on the "frequency" field.
func FrequencyNotNil() predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotNull(FieldFrequency))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContainsFold(FieldFrequency, v))
}

// EventCategoryEQ applies the EQ predicate on the "event_category" field.
func EventCategoryEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldEventCategory, v))
}

// EventCategoryNEQ applies the NEQ predicate on the "event_category" field.
func EventCategoryNEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldEventCategory, v))
}

// EventCategoryIn applies the In predicate on the "event_category" field.
func EventCategoryIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldEventCategory, vs...))
}

// EventCategoryNotIn applies the NotIn predicate on the "event_category" field.
func EventCategoryNotIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldEventCategory, vs...))
}

// EventCategoryGT applies the GT predicate on the "event_category" field.
func EventCategoryGT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldEventCategory, v))
}

// EventCategoryGTE applies the GTE predicate on the "event_category" field.
func EventCategoryGTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldEventCategory, v))
}

// EventCategoryLT applies the LT predicate on the "event_category" field.
func EventCategoryLT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldEventCategory, v))
}

// EventCategoryLTE applies the LTE predicate on the "event_category" field.
func EventCategoryLTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldEventCategory, v))
}

// EventCategoryContains applies the Contains predicate on the "event_category" field.
func EventCategoryContains(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContains(FieldEventCategory, v))
}

// EventCategoryHasPrefix applies the HasPrefix predicate on the "event_category" field.
func EventCategoryHasPrefix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasPrefix(FieldEventCategory, v))
}

// EventCategoryHasSuffix applies the HasSuffix predicate on the "event_category" field.
func EventCategoryHasSuffix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasSuffix(FieldEventCategory, v))
}

// EventCategoryIsNil applies the IsNil predicate on the "event_category" field.
func EventCategoryIsNil() predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIsNull(FieldEventCategory))
}

// EventCategoryNotNil applies the NotNil predicate on the "event_category" field.
func EventCategoryNotNil() predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotNull(FieldEventCategory))
}

// EventCategoryEqualFold applies the EqualFold predicate on the "event_category" field.
func EventCategoryEqualFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEqualFold(FieldEventCategory, v))
}

// EventCategoryContainsFold applies the ContainsFold predicate on the "event_category" field.
func EventCategoryContainsFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContainsFold(FieldEventCategory, v))
}

// AttendanceStatusEQ applies the EQ predicate on the "attendance_status" field.
func AttendanceStatusEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEQ(FieldAttendanceStatus, v))
}

// AttendanceStatusNEQ applies the NEQ predicate on the "attendance_status" field.
func AttendanceStatusNEQ(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNEQ(FieldAttendanceStatus, v))
}

// AttendanceStatusIn applies the In predicate on the "attendance_status" field.
func AttendanceStatusIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIn(FieldAttendanceStatus, vs...))
}

// AttendanceStatusNotIn applies the NotIn predicate on the "attendance_status" field.
func AttendanceStatusNotIn(vs ...string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotIn(FieldAttendanceStatus, vs...))
}

// AttendanceStatusGT applies the GT predicate on the "attendance_status" field.
func AttendanceStatusGT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGT(FieldAttendanceStatus, v))
}

// AttendanceStatusGTE applies the GTE predicate on the "attendance_status" field.
func AttendanceStatusGTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldGTE(FieldAttendanceStatus, v))
}

// AttendanceStatusLT applies the LT predicate on the "attendance_status" field.
func AttendanceStatusLT(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLT(FieldAttendanceStatus, v))
}

// AttendanceStatusLTE applies the LTE predicate on the "attendance_status" field.
func AttendanceStatusLTE(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldLTE(FieldAttendanceStatus, v))
}

// AttendanceStatusContains applies the Contains predicate on the "attendance_status" field.
func AttendanceStatusContains(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContains(FieldAttendanceStatus, v))
}

// AttendanceStatusHasPrefix applies the HasPrefix predicate on the "attendance_status" field.
func AttendanceStatusHasPrefix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasPrefix(FieldAttendanceStatus, v))
}

// AttendanceStatusHasSuffix applies the HasSuffix predicate on the "attendance_status" field.
func AttendanceStatusHasSuffix(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldHasSuffix(FieldAttendanceStatus, v))
}

// AttendanceStatusIsNil applies the IsNil predicate on the "attendance_status" field.
func AttendanceStatusIsNil() predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldIsNull(FieldAttendanceStatus))
}

// AttendanceStatusNotNil applies the NotNil predicate on the "attendance_status" field.
func AttendanceStatusNotNil() predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldNotNull(FieldAttendanceStatus))
}

// AttendanceStatusEqualFold applies the EqualFold predicate on the "attendance_status" field.
func AttendanceStatusEqualFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldEqualFold(FieldAttendanceStatus, v))
}

// AttendanceStatusContainsFold applies the ContainsFold predicate on the "attendance_status" field.
func AttendanceStatusContainsFold(v string) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.FieldContainsFold(FieldAttendanceStatus, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.CalendarEntry {
	return predicate.CalendarEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.CalendarEntry {
	return predicate.CalendarEntry(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarEntry) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarEntry) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarEntry) predicate.CalendarEntry {
	return predicate.CalendarEntry(sql.NotPredicates(p))
}
