// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/daybreakhq/daybreak/ent/routine"
	"github.com/daybreakhq/daybreak/pkg/domain"
)

// RoutineUpdate is the builder for updating Routine entities.
type RoutineUpdate struct {
	config
	hooks    []Hook
	mutation *RoutineMutation
}

// Where appends a list predicates to the RoutineUpdate builder.
func (_u *RoutineUpdate) Where(ps ...predicate.Routine) *RoutineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RoutineUpdate) SetName(v string) *RoutineUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableName(v *string) *RoutineUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *RoutineUpdate) SetSchedule(v domain.RecurrenceSchedule) *RoutineUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *RoutineUpdate) SetNillableSchedule(v *domain.RecurrenceSchedule) *RoutineUpdate {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// SetRoutineTasks sets the "routine_tasks" field.
func (_u *RoutineUpdate) SetRoutineTasks(v []domain.RoutineTask) *RoutineUpdate {
	_u.mutation.SetRoutineTasks(v)
	return _u
}

// AppendRoutineTasks appends value to the "routine_tasks" field.
func (_u *RoutineUpdate) AppendRoutineTasks(v []domain.RoutineTask) *RoutineUpdate {
	_u.mutation.AppendRoutineTasks(v)
	return _u
}

// ClearRoutineTasks clears the value of the "routine_tasks" field.
func (_u *RoutineUpdate) ClearRoutineTasks() *RoutineUpdate {
	_u.mutation.ClearRoutineTasks()
	return _u
}

// SetTags sets the "tags" field.
func (_u *RoutineUpdate) SetTags(v []string) *RoutineUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *RoutineUpdate) AppendTags(v []string) *RoutineUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *RoutineUpdate) ClearTags() *RoutineUpdate {
	_u.mutation.ClearTags()
	return _u
}

// Mutation returns the RoutineMutation object of the builder.
func (_u *RoutineUpdate) Mutation() *RoutineMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutineUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Routine.user"`)
	}
	return nil
}

func (_u *RoutineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routine.Table, routine.Columns, sqlgraph.NewFieldSpec(routine.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(routine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(routine.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RoutineTasks(); ok {
		_spec.SetField(routine.FieldRoutineTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoutineTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routine.FieldRoutineTasks, value)
		})
	}
	if _u.mutation.RoutineTasksCleared() {
		_spec.ClearField(routine.FieldRoutineTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(routine.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routine.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(routine.FieldTags, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutineUpdateOne is the builder for updating a single Routine entity.
type RoutineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutineMutation
}

// SetName sets the "name" field.
func (_u *RoutineUpdateOne) SetName(v string) *RoutineUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableName(v *string) *RoutineUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *RoutineUpdateOne) SetSchedule(v domain.RecurrenceSchedule) *RoutineUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *RoutineUpdateOne) SetNillableSchedule(v *domain.RecurrenceSchedule) *RoutineUpdateOne {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// SetRoutineTasks sets the "routine_tasks" field.
func (_u *RoutineUpdateOne) SetRoutineTasks(v []domain.RoutineTask) *RoutineUpdateOne {
	_u.mutation.SetRoutineTasks(v)
	return _u
}

// AppendRoutineTasks appends value to the "routine_tasks" field.
func (_u *RoutineUpdateOne) AppendRoutineTasks(v []domain.RoutineTask) *RoutineUpdateOne {
	_u.mutation.AppendRoutineTasks(v)
	return _u
}

// ClearRoutineTasks clears the value of the "routine_tasks" field.
func (_u *RoutineUpdateOne) ClearRoutineTasks() *RoutineUpdateOne {
	_u.mutation.ClearRoutineTasks()
	return _u
}

// SetTags sets the "tags" field.
func (_u *RoutineUpdateOne) SetTags(v []string) *RoutineUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *RoutineUpdateOne) AppendTags(v []string) *RoutineUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *RoutineUpdateOne) ClearTags() *RoutineUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// Mutation returns the RoutineMutation object of the builder.
func (_u *RoutineUpdateOne) Mutation() *RoutineMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoutineUpdate builder.
func (_u *RoutineUpdateOne) Where(ps ...predicate.Routine) *RoutineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutineUpdateOne) Select(field string, fields ...string) *RoutineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Routine entity.
func (_u *RoutineUpdateOne) Save(ctx context.Context) (*Routine, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutineUpdateOne) SaveX(ctx context.Context) *Routine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutineUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Routine.user"`)
	}
	return nil
}

func (_u *RoutineUpdateOne) sqlSave(ctx context.Context) (_node *Routine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routine.Table, routine.Columns, sqlgraph.NewFieldSpec(routine.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Routine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routine.FieldID)
		for _, f := range fields {
			if !routine.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routine.FieldID {
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
		_spec.SetField(routine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(routine.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RoutineTasks(); ok {
		_spec.SetField(routine.FieldRoutineTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoutineTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routine.FieldRoutineTasks, value)
		})
	}
	if _u.mutation.RoutineTasksCleared() {
		_spec.ClearField(routine.FieldRoutineTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(routine.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routine.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(routine.FieldTags, field.TypeJSON)
	}
	_node = &Routine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
