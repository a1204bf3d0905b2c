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
	"github.com/daybreakhq/daybreak/ent/calendarentryseries"
	"github.com/daybreakhq/daybreak/ent/predicate"
)

// CalendarEntrySeriesUpdate is the builder for updating CalendarEntrySeries entities.
type CalendarEntrySeriesUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarEntrySeriesMutation
}

// Where appends a list predicates to the CalendarEntrySeriesUpdate builder.
func (_u *CalendarEntrySeriesUpdate) Where(ps ...predicate.CalendarEntrySeries) *CalendarEntrySeriesUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CalendarEntrySeriesUpdate) SetName(v string) *CalendarEntrySeriesUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdate) SetNillableName(v *string) *CalendarEntrySeriesUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *CalendarEntrySeriesUpdate) SetFrequency(v string) *CalendarEntrySeriesUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdate) SetNillableFrequency(v *string) *CalendarEntrySeriesUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *CalendarEntrySeriesUpdate) ClearFrequency() *CalendarEntrySeriesUpdate {
	_u.mutation.ClearFrequency()
	return _u
}

// SetEventCategory sets the "event_category" field.
func (_u *CalendarEntrySeriesUpdate) SetEventCategory(v string) *CalendarEntrySeriesUpdate {
	_u.mutation.SetEventCategory(v)
	return _u
}

// SetNillableEventCategory sets the "event_category" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdate) SetNillableEventCategory(v *string) *CalendarEntrySeriesUpdate {
	if v != nil {
		_u.SetEventCategory(*v)
	}
	return _u
}

// ClearEventCategory clears the value of the "event_category" field.
func (_u *CalendarEntrySeriesUpdate) ClearEventCategory() *CalendarEntrySeriesUpdate {
	_u.mutation.ClearEventCategory()
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *CalendarEntrySeriesUpdate) SetRecurrence(v string) *CalendarEntrySeriesUpdate {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdate) SetNillableRecurrence(v *string) *CalendarEntrySeriesUpdate {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *CalendarEntrySeriesUpdate) ClearRecurrence() *CalendarEntrySeriesUpdate {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *CalendarEntrySeriesUpdate) SetStartsAt(v time.Time) *CalendarEntrySeriesUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdate) SetNillableStartsAt(v *time.Time) *CalendarEntrySeriesUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *CalendarEntrySeriesUpdate) SetEndsAt(v time.Time) *CalendarEntrySeriesUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdate) SetNillableEndsAt(v *time.Time) *CalendarEntrySeriesUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *CalendarEntrySeriesUpdate) ClearEndsAt() *CalendarEntrySeriesUpdate {
	_u.mutation.ClearEndsAt()
	return _u
}

// Mutation returns the CalendarEntrySeriesMutation object of the builder.
func (_u *CalendarEntrySeriesUpdate) Mutation() *CalendarEntrySeriesMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarEntrySeriesUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEntrySeriesUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarEntrySeriesUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEntrySeriesUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEntrySeriesUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarEntrySeries.user"`)
	}
	return nil
}

func (_u *CalendarEntrySeriesUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarentryseries.Table, calendarentryseries.Columns, sqlgraph.NewFieldSpec(calendarentryseries.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(calendarentryseries.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(calendarentryseries.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(calendarentryseries.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.EventCategory(); ok {
		_spec.SetField(calendarentryseries.FieldEventCategory, field.TypeString, value)
	}
	if _u.mutation.EventCategoryCleared() {
		_spec.ClearField(calendarentryseries.FieldEventCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(calendarentryseries.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(calendarentryseries.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(calendarentryseries.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(calendarentryseries.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(calendarentryseries.FieldEndsAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarentryseries.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarEntrySeriesUpdateOne is the builder for updating a single CalendarEntrySeries entity.
type CalendarEntrySeriesUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarEntrySeriesMutation
}

// SetName sets the "name" field.
func (_u *CalendarEntrySeriesUpdateOne) SetName(v string) *CalendarEntrySeriesUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdateOne) SetNillableName(v *string) *CalendarEntrySeriesUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *CalendarEntrySeriesUpdateOne) SetFrequency(v string) *CalendarEntrySeriesUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdateOne) SetNillableFrequency(v *string) *CalendarEntrySeriesUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *CalendarEntrySeriesUpdateOne) ClearFrequency() *CalendarEntrySeriesUpdateOne {
	_u.mutation.ClearFrequency()
	return _u
}

// SetEventCategory sets the "event_category" field.
func (_u *CalendarEntrySeriesUpdateOne) SetEventCategory(v string) *CalendarEntrySeriesUpdateOne {
	_u.mutation.SetEventCategory(v)
	return _u
}

// SetNillableEventCategory sets the "event_category" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdateOne) SetNillableEventCategory(v *string) *CalendarEntrySeriesUpdateOne {
	if v != nil {
		_u.SetEventCategory(*v)
	}
	return _u
}

// ClearEventCategory clears the value of the "event_category" field.
func (_u *CalendarEntrySeriesUpdateOne) ClearEventCategory() *CalendarEntrySeriesUpdateOne {
	_u.mutation.ClearEventCategory()
	return _u
}

// SetRecurrence sets the "recurrence" field.
func (_u *CalendarEntrySeriesUpdateOne) SetRecurrence(v string) *CalendarEntrySeriesUpdateOne {
	_u.mutation.SetRecurrence(v)
	return _u
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdateOne) SetNillableRecurrence(v *string) *CalendarEntrySeriesUpdateOne {
	if v != nil {
		_u.SetRecurrence(*v)
	}
	return _u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (_u *CalendarEntrySeriesUpdateOne) ClearRecurrence() *CalendarEntrySeriesUpdateOne {
	_u.mutation.ClearRecurrence()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *CalendarEntrySeriesUpdateOne) SetStartsAt(v time.Time) *CalendarEntrySeriesUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdateOne) SetNillableStartsAt(v *time.Time) *CalendarEntrySeriesUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *CalendarEntrySeriesUpdateOne) SetEndsAt(v time.Time) *CalendarEntrySeriesUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *CalendarEntrySeriesUpdateOne) SetNillableEndsAt(v *time.Time) *CalendarEntrySeriesUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *CalendarEntrySeriesUpdateOne) ClearEndsAt() *CalendarEntrySeriesUpdateOne {
	_u.mutation.ClearEndsAt()
	return _u
}

// Mutation returns the CalendarEntrySeriesMutation object of the builder.
func (_u *CalendarEntrySeriesUpdateOne) Mutation() *CalendarEntrySeriesMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarEntrySeriesUpdate builder.
func (_u *CalendarEntrySeriesUpdateOne) Where(ps ...predicate.CalendarEntrySeries) *CalendarEntrySeriesUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarEntrySeriesUpdateOne) Select(field string, fields ...string) *CalendarEntrySeriesUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarEntrySeries entity.
func (_u *CalendarEntrySeriesUpdateOne) Save(ctx context.Context) (*CalendarEntrySeries, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEntrySeriesUpdateOne) SaveX(ctx context.Context) *CalendarEntrySeries {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarEntrySeriesUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEntrySeriesUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEntrySeriesUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarEntrySeries.user"`)
	}
	return nil
}

func (_u *CalendarEntrySeriesUpdateOne) sqlSave(ctx context.Context) (_node *CalendarEntrySeries, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarentryseries.Table, calendarentryseries.Columns, sqlgraph.NewFieldSpec(calendarentryseries.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarEntrySeries.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarentryseries.FieldID)
		for _, f := range fields {
			if !calendarentryseries.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarentryseries.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(calendarentryseries.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(calendarentryseries.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(calendarentryseries.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.EventCategory(); ok {
		_spec.SetField(calendarentryseries.FieldEventCategory, field.TypeString, value)
	}
	if _u.mutation.EventCategoryCleared() {
		_spec.ClearField(calendarentryseries.FieldEventCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Recurrence(); ok {
		_spec.SetField(calendarentryseries.FieldRecurrence, field.TypeString, value)
	}
	if _u.mutation.RecurrenceCleared() {
		_spec.ClearField(calendarentryseries.FieldRecurrence, field.TypeString)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(calendarentryseries.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(calendarentryseries.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(calendarentryseries.FieldEndsAt, field.TypeTime)
	}
	_node = &CalendarEntrySeries{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarentryseries.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
