// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/calendarentry"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/google/uuid"
)

// CalendarEntryUpdate is the builder for updating CalendarEntry entities.
type CalendarEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarEntryMutation
}

// Where appends a list predicates to the CalendarEntryUpdate builder.
func (_u *CalendarEntryUpdate) Where(ps ...predicate.CalendarEntry) *CalendarEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCalendarEntrySeriesID sets the "calendar_entry_series_id" field.
func (_u *CalendarEntryUpdate) SetCalendarEntrySeriesID(v uuid.UUID) *CalendarEntryUpdate {
	_u.mutation.SetCalendarEntrySeriesID(v)
	return _u
}

// SetNillableCalendarEntrySeriesID sets the "calendar_entry_series_id" field if the given value is not nil.
func (_u *CalendarEntryUpdate) SetNillableCalendarEntrySeriesID(v *uuid.UUID) *CalendarEntryUpdate {
	if v != nil {
		_u.SetCalendarEntrySeriesID(*v)
	}
	return _u
}

// ClearCalendarEntrySeriesID clears the value of the "calendar_entry_series_id" field.
func (_u *CalendarEntryUpdate) ClearCalendarEntrySeriesID() *CalendarEntryUpdate {
	_u.mutation.ClearCalendarEntrySeriesID()
	return _u
}

// SetName sets the "name" field.
func (_u *CalendarEntryUpdate) SetName(v string) *CalendarEntryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CalendarEntryUpdate) SetNillableName(v *string) *CalendarEntryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *CalendarEntryUpdate) SetStartsAt(v time.Time) *CalendarEntryUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *CalendarEntryUpdate) SetNillableStartsAt(v *time.Time) *CalendarEntryUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *CalendarEntryUpdate) SetEndsAt(v time.Time) *CalendarEntryUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *CalendarEntryUpdate) SetNillableEndsAt(v *time.Time) *CalendarEntryUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *CalendarEntryUpdate) SetFrequency(v string) *CalendarEntryUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *CalendarEntryUpdate) SetNillableFrequency(v *string) *CalendarEntryUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *CalendarEntryUpdate) ClearFrequency() *CalendarEntryUpdate {
	_u.mutation.ClearFrequency()
	return _u
}

// SetEventCategory sets the "event_category" field.
func (_u *CalendarEntryUpdate) SetEventCategory(v string) *CalendarEntryUpdate {
	_u.mutation.SetEventCategory(v)
	return _u
}

// SetNillableEventCategory sets the "event_category" field if the given value is not nil.
func (_u *CalendarEntryUpdate) SetNillableEventCategory(v *string) *CalendarEntryUpdate {
	if v != nil {
		_u.SetEventCategory(*v)
	}
	return _u
}

// ClearEventCategory clears the value of the "event_category" field.
func (_u *CalendarEntryUpdate) ClearEventCategory() *CalendarEntryUpdate {
	_u.mutation.ClearEventCategory()
	return _u
}

// SetAttendanceStatus sets the "attendance_status" field.
func (_u *CalendarEntryUpdate) SetAttendanceStatus(v string) *CalendarEntryUpdate {
	_u.mutation.SetAttendanceStatus(v)
	return _u
}

// SetNillableAttendanceStatus sets the "attendance_status" field if the given value is not nil.
func (_u *CalendarEntryUpdate) SetNillableAttendanceStatus(v *string) *CalendarEntryUpdate {
	if v != nil {
		_u.SetAttendanceStatus(*v)
	}
	return _u
}

// ClearAttendanceStatus clears the value of the "attendance_status" field.
func (_u *CalendarEntryUpdate) ClearAttendanceStatus() *CalendarEntryUpdate {
	_u.mutation.ClearAttendanceStatus()
	return _u
}

// Mutation returns the CalendarEntryMutation object of the builder.
func (_u *CalendarEntryUpdate) Mutation() *CalendarEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEntryUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarEntry.user"`)
	}
	return nil
}

func (_u *CalendarEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarentry.Table, calendarentry.Columns, sqlgraph.NewFieldSpec(calendarentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CalendarEntrySeriesID(); ok {
		_spec.SetField(calendarentry.FieldCalendarEntrySeriesID, field.TypeUUID, value)
	}
	if _u.mutation.CalendarEntrySeriesIDCleared() {
		_spec.ClearField(calendarentry.FieldCalendarEntrySeriesID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(calendarentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(calendarentry.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(calendarentry.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(calendarentry.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(calendarentry.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.EventCategory(); ok {
		_spec.SetField(calendarentry.FieldEventCategory, field.TypeString, value)
	}
	if _u.mutation.EventCategoryCleared() {
		_spec.ClearField(calendarentry.FieldEventCategory, field.TypeString)
	}
	if value, ok := _u.mutation.AttendanceStatus(); ok {
		_spec.SetField(calendarentry.FieldAttendanceStatus, field.TypeString, value)
	}
	if _u.mutation.AttendanceStatusCleared() {
		_spec.ClearField(calendarentry.FieldAttendanceStatus, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarEntryUpdateOne is the builder for updating a single CalendarEntry entity.
type CalendarEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarEntryMutation
}

// SetCalendarEntrySeriesID sets the "calendar_entry_series_id" field.
func (_u *CalendarEntryUpdateOne) SetCalendarEntrySeriesID(v uuid.UUID) *CalendarEntryUpdateOne {
	_u.mutation.SetCalendarEntrySeriesID(v)
	return _u
}

// SetNillableCalendarEntrySeriesID sets the "calendar_entry_series_id" field if the given value is not nil.
func (_u *CalendarEntryUpdateOne) SetNillableCalendarEntrySeriesID(v *uuid.UUID) *CalendarEntryUpdateOne {
	if v != nil {
		_u.SetCalendarEntrySeriesID(*v)
	}
	return _u
}

// ClearCalendarEntrySeriesID clears the value of the "calendar_entry_series_id" field.
func (_u *CalendarEntryUpdateOne) ClearCalendarEntrySeriesID() *CalendarEntryUpdateOne {
	_u.mutation.ClearCalendarEntrySeriesID()
	return _u
}

// SetName sets the "name" field.
func (_u *CalendarEntryUpdateOne) SetName(v string) *CalendarEntryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CalendarEntryUpdateOne) SetNillableName(v *string) *CalendarEntryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *CalendarEntryUpdateOne) SetStartsAt(v time.Time) *CalendarEntryUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *CalendarEntryUpdateOne) SetNillableStartsAt(v *time.Time) *CalendarEntryUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *CalendarEntryUpdateOne) SetEndsAt(v time.Time) *CalendarEntryUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *CalendarEntryUpdateOne) SetNillableEndsAt(v *time.Time) *CalendarEntryUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *CalendarEntryUpdateOne) SetFrequency(v string) *CalendarEntryUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *CalendarEntryUpdateOne) SetNillableFrequency(v *string) *CalendarEntryUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *CalendarEntryUpdateOne) ClearFrequency() *CalendarEntryUpdateOne {
	_u.mutation.ClearFrequency()
	return _u
}

// SetEventCategory sets the "event_category" field.
func (_u *CalendarEntryUpdateOne) SetEventCategory(v string) *CalendarEntryUpdateOne {
	_u.mutation.SetEventCategory(v)
	return _u
}

// SetNillableEventCategory sets the "event_category" field if the given value is not nil.
func (_u *CalendarEntryUpdateOne) SetNillableEventCategory(v *string) *CalendarEntryUpdateOne {
	if v != nil {
		_u.SetEventCategory(*v)
	}
	return _u
}

// ClearEventCategory clears the value of the "event_category" field.
func (_u *CalendarEntryUpdateOne) ClearEventCategory() *CalendarEntryUpdateOne {
	_u.mutation.ClearEventCategory()
	return _u
}

// SetAttendanceStatus sets the "attendance_status" field.
func (_u *CalendarEntryUpdateOne) SetAttendanceStatus(v string) *CalendarEntryUpdateOne {
	_u.mutation.SetAttendanceStatus(v)
	return _u
}

// SetNillableAttendanceStatus sets the "attendance_status" field if the given value is not nil.
func (_u *CalendarEntryUpdateOne) SetNillableAttendanceStatus(v *string) *CalendarEntryUpdateOne {
	if v != nil {
		_u.SetAttendanceStatus(*v)
	}
	return _u
}

// ClearAttendanceStatus clears the value of the "attendance_status" field.
func (_u *CalendarEntryUpdateOne) ClearAttendanceStatus() *CalendarEntryUpdateOne {
	_u.mutation.ClearAttendanceStatus()
	return _u
}

// Mutation returns the CalendarEntryMutation object of the builder.
func (_u *CalendarEntryUpdateOne) Mutation() *CalendarEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarEntryUpdate builder.
func (_u *CalendarEntryUpdateOne) Where(ps ...predicate.CalendarEntry) *CalendarEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarEntryUpdateOne) Select(field string, fields ...string) *CalendarEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarEntry entity.
func (_u *CalendarEntryUpdateOne) Save(ctx context.Context) (*CalendarEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEntryUpdateOne) SaveX(ctx context.Context) *CalendarEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEntryUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarEntry.user"`)
	}
	return nil
}

func (_u *CalendarEntryUpdateOne) sqlSave(ctx context.Context) (_node *CalendarEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarentry.Table, calendarentry.Columns, sqlgraph.NewFieldSpec(calendarentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarentry.FieldID)
		for _, f := range fields {
			if !calendarentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CalendarEntrySeriesID(); ok {
		_spec.SetField(calendarentry.FieldCalendarEntrySeriesID, field.TypeUUID, value)
	}
	if _u.mutation.CalendarEntrySeriesIDCleared() {
		_spec.ClearField(calendarentry.FieldCalendarEntrySeriesID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(calendarentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(calendarentry.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(calendarentry.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(calendarentry.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(calendarentry.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.EventCategory(); ok {
		_spec.SetField(calendarentry.FieldEventCategory, field.TypeString, value)
	}
	if _u.mutation.EventCategoryCleared() {
		_spec.ClearField(calendarentry.FieldEventCategory, field.TypeString)
	}
	if value, ok := _u.mutation.AttendanceStatus(); ok {
		_spec.SetField(calendarentry.FieldAttendanceStatus, field.TypeString, value)
	}
	if _u.mutation.AttendanceStatusCleared() {
		_spec.ClearField(calendarentry.FieldAttendanceStatus, field.TypeString)
	}
	_node = &CalendarEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
