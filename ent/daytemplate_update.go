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
	"github.com/daybreakhq/daybreak/ent/daytemplate"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// DayTemplateUpdate is the builder for updating DayTemplate entities.
type DayTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *DayTemplateMutation
}

// Where appends a list predicates to the DayTemplateUpdate builder.
func (_u *DayTemplateUpdate) Where(ps ...predicate.DayTemplate) *DayTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *DayTemplateUpdate) SetSlug(v string) *DayTemplateUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *DayTemplateUpdate) SetNillableSlug(v *string) *DayTemplateUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *DayTemplateUpdate) SetStartTime(v string) *DayTemplateUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *DayTemplateUpdate) SetNillableStartTime(v *string) *DayTemplateUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *DayTemplateUpdate) ClearStartTime() *DayTemplateUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *DayTemplateUpdate) SetEndTime(v string) *DayTemplateUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *DayTemplateUpdate) SetNillableEndTime(v *string) *DayTemplateUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *DayTemplateUpdate) ClearEndTime() *DayTemplateUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetRoutineDefinitionIds sets the "routine_definition_ids" field.
func (_u *DayTemplateUpdate) SetRoutineDefinitionIds(v []uuid.UUID) *DayTemplateUpdate {
	_u.mutation.SetRoutineDefinitionIds(v)
	return _u
}

// AppendRoutineDefinitionIds appends value to the "routine_definition_ids" field.
func (_u *DayTemplateUpdate) AppendRoutineDefinitionIds(v []uuid.UUID) *DayTemplateUpdate {
	_u.mutation.AppendRoutineDefinitionIds(v)
	return _u
}

// ClearRoutineDefinitionIds clears the value of the "routine_definition_ids" field.
func (_u *DayTemplateUpdate) ClearRoutineDefinitionIds() *DayTemplateUpdate {
	_u.mutation.ClearRoutineDefinitionIds()
	return _u
}

// SetTimeBlocks sets the "time_blocks" field.
func (_u *DayTemplateUpdate) SetTimeBlocks(v []domain.TimeBlock) *DayTemplateUpdate {
	_u.mutation.SetTimeBlocks(v)
	return _u
}

// AppendTimeBlocks appends value to the "time_blocks" field.
func (_u *DayTemplateUpdate) AppendTimeBlocks(v []domain.TimeBlock) *DayTemplateUpdate {
	_u.mutation.AppendTimeBlocks(v)
	return _u
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (_u *DayTemplateUpdate) ClearTimeBlocks() *DayTemplateUpdate {
	_u.mutation.ClearTimeBlocks()
	return _u
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (_u *DayTemplateUpdate) SetHighLevelPlan(v domain.HighLevelPlan) *DayTemplateUpdate {
	_u.mutation.SetHighLevelPlan(v)
	return _u
}

// SetNillableHighLevelPlan sets the "high_level_plan" field if the given value is not nil.
func (_u *DayTemplateUpdate) SetNillableHighLevelPlan(v *domain.HighLevelPlan) *DayTemplateUpdate {
	if v != nil {
		_u.SetHighLevelPlan(*v)
	}
	return _u
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (_u *DayTemplateUpdate) ClearHighLevelPlan() *DayTemplateUpdate {
	_u.mutation.ClearHighLevelPlan()
	return _u
}

// Mutation returns the DayTemplateMutation object of the builder.
func (_u *DayTemplateUpdate) Mutation() *DayTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DayTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DayTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DayTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DayTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DayTemplateUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DayTemplate.user"`)
	}
	return nil
}

func (_u *DayTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(daytemplate.Table, daytemplate.Columns, sqlgraph.NewFieldSpec(daytemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(daytemplate.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(daytemplate.FieldStartTime, field.TypeString, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(daytemplate.FieldStartTime, field.TypeString)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(daytemplate.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(daytemplate.FieldEndTime, field.TypeString)
	}
	if value, ok := _u.mutation.RoutineDefinitionIds(); ok {
		_spec.SetField(daytemplate.FieldRoutineDefinitionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoutineDefinitionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, daytemplate.FieldRoutineDefinitionIds, value)
		})
	}
	if _u.mutation.RoutineDefinitionIdsCleared() {
		_spec.ClearField(daytemplate.FieldRoutineDefinitionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeBlocks(); ok {
		_spec.SetField(daytemplate.FieldTimeBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, daytemplate.FieldTimeBlocks, value)
		})
	}
	if _u.mutation.TimeBlocksCleared() {
		_spec.ClearField(daytemplate.FieldTimeBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.HighLevelPlan(); ok {
		_spec.SetField(daytemplate.FieldHighLevelPlan, field.TypeJSON, value)
	}
	if _u.mutation.HighLevelPlanCleared() {
		_spec.ClearField(daytemplate.FieldHighLevelPlan, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{daytemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DayTemplateUpdateOne is the builder for updating a single DayTemplate entity.
type DayTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DayTemplateMutation
}

// SetSlug sets the "slug" field.
func (_u *DayTemplateUpdateOne) SetSlug(v string) *DayTemplateUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *DayTemplateUpdateOne) SetNillableSlug(v *string) *DayTemplateUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *DayTemplateUpdateOne) SetStartTime(v string) *DayTemplateUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *DayTemplateUpdateOne) SetNillableStartTime(v *string) *DayTemplateUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *DayTemplateUpdateOne) ClearStartTime() *DayTemplateUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *DayTemplateUpdateOne) SetEndTime(v string) *DayTemplateUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *DayTemplateUpdateOne) SetNillableEndTime(v *string) *DayTemplateUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *DayTemplateUpdateOne) ClearEndTime() *DayTemplateUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetRoutineDefinitionIds sets the "routine_definition_ids" field.
func (_u *DayTemplateUpdateOne) SetRoutineDefinitionIds(v []uuid.UUID) *DayTemplateUpdateOne {
	_u.mutation.SetRoutineDefinitionIds(v)
	return _u
}

// AppendRoutineDefinitionIds appends value to the "routine_definition_ids" field.
func (_u *DayTemplateUpdateOne) AppendRoutineDefinitionIds(v []uuid.UUID) *DayTemplateUpdateOne {
	_u.mutation.AppendRoutineDefinitionIds(v)
	return _u
}

// ClearRoutineDefinitionIds clears the value of the "routine_definition_ids" field.
func (_u *DayTemplateUpdateOne) ClearRoutineDefinitionIds() *DayTemplateUpdateOne {
	_u.mutation.ClearRoutineDefinitionIds()
	return _u
}

// SetTimeBlocks sets the "time_blocks" field.
func (_u *DayTemplateUpdateOne) SetTimeBlocks(v []domain.TimeBlock) *DayTemplateUpdateOne {
	_u.mutation.SetTimeBlocks(v)
	return _u
}

// AppendTimeBlocks appends value to the "time_blocks" field.
func (_u *DayTemplateUpdateOne) AppendTimeBlocks(v []domain.TimeBlock) *DayTemplateUpdateOne {
	_u.mutation.AppendTimeBlocks(v)
	return _u
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (_u *DayTemplateUpdateOne) ClearTimeBlocks() *DayTemplateUpdateOne {
	_u.mutation.ClearTimeBlocks()
	return _u
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (_u *DayTemplateUpdateOne) SetHighLevelPlan(v domain.HighLevelPlan) *DayTemplateUpdateOne {
	_u.mutation.SetHighLevelPlan(v)
	return _u
}

// SetNillableHighLevelPlan sets the "high_level_plan" field if the given value is not nil.
func (_u *DayTemplateUpdateOne) SetNillableHighLevelPlan(v *domain.HighLevelPlan) *DayTemplateUpdateOne {
	if v != nil {
		_u.SetHighLevelPlan(*v)
	}
	return _u
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (_u *DayTemplateUpdateOne) ClearHighLevelPlan() *DayTemplateUpdateOne {
	_u.mutation.ClearHighLevelPlan()
	return _u
}

// Mutation returns the DayTemplateMutation object of the builder.
func (_u *DayTemplateUpdateOne) Mutation() *DayTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the DayTemplateUpdate builder.
func (_u *DayTemplateUpdateOne) Where(ps ...predicate.DayTemplate) *DayTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DayTemplateUpdateOne) Select(field string, fields ...string) *DayTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DayTemplate entity.
func (_u *DayTemplateUpdateOne) Save(ctx context.Context) (*DayTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DayTemplateUpdateOne) SaveX(ctx context.Context) *DayTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DayTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DayTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DayTemplateUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DayTemplate.user"`)
	}
	return nil
}

func (_u *DayTemplateUpdateOne) sqlSave(ctx context.Context) (_node *DayTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(daytemplate.Table, daytemplate.Columns, sqlgraph.NewFieldSpec(daytemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DayTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, daytemplate.FieldID)
		for _, f := range fields {
			if !daytemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != daytemplate.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(daytemplate.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(daytemplate.FieldStartTime, field.TypeString, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(daytemplate.FieldStartTime, field.TypeString)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(daytemplate.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(daytemplate.FieldEndTime, field.TypeString)
	}
	if value, ok := _u.mutation.RoutineDefinitionIds(); ok {
		_spec.SetField(daytemplate.FieldRoutineDefinitionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoutineDefinitionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, daytemplate.FieldRoutineDefinitionIds, value)
		})
	}
	if _u.mutation.RoutineDefinitionIdsCleared() {
		_spec.ClearField(daytemplate.FieldRoutineDefinitionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeBlocks(); ok {
		_spec.SetField(daytemplate.FieldTimeBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, daytemplate.FieldTimeBlocks, value)
		})
	}
	if _u.mutation.TimeBlocksCleared() {
		_spec.ClearField(daytemplate.FieldTimeBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.HighLevelPlan(); ok {
		_spec.SetField(daytemplate.FieldHighLevelPlan, field.TypeJSON, value)
	}
	if _u.mutation.HighLevelPlanCleared() {
		_spec.ClearField(daytemplate.FieldHighLevelPlan, field.TypeJSON)
	}
	_node = &DayTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{daytemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
