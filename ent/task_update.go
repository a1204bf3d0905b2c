// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/daybreakhq/daybreak/ent/task"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TaskUpdate) SetName(v string) *TaskUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TaskUpdate) SetCategory(v string) *TaskUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCategory(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TaskUpdate) ClearCategory() *TaskUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetType sets the "type" field.
func (_u *TaskUpdate) SetType(v string) *TaskUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableType(v *string) *TaskUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *TaskUpdate) ClearType() *TaskUpdate {
	_u.mutation.ClearType()
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *TaskUpdate) SetFrequency(v string) *TaskUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFrequency(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *TaskUpdate) ClearFrequency() *TaskUpdate {
	_u.mutation.ClearFrequency()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *TaskUpdate) SetSchedule(v *domain.TimeWindow) *TaskUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *TaskUpdate) ClearSchedule() *TaskUpdate {
	_u.mutation.ClearSchedule()
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *TaskUpdate) SetScheduledDate(v string) *TaskUpdate {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableScheduledDate(v *string) *TaskUpdate {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// SetRoutineDefinitionID sets the "routine_definition_id" field.
func (_u *TaskUpdate) SetRoutineDefinitionID(v uuid.UUID) *TaskUpdate {
	_u.mutation.SetRoutineDefinitionID(v)
	return _u
}

// SetNillableRoutineDefinitionID sets the "routine_definition_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRoutineDefinitionID(v *uuid.UUID) *TaskUpdate {
	if v != nil {
		_u.SetRoutineDefinitionID(*v)
	}
	return _u
}

// ClearRoutineDefinitionID clears the value of the "routine_definition_id" field.
func (_u *TaskUpdate) ClearRoutineDefinitionID() *TaskUpdate {
	_u.mutation.ClearRoutineDefinitionID()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TaskUpdate) SetTags(v []string) *TaskUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TaskUpdate) AppendTags(v []string) *TaskUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TaskUpdate) ClearTags() *TaskUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetActions sets the "actions" field.
func (_u *TaskUpdate) SetActions(v []domain.TaskAction) *TaskUpdate {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *TaskUpdate) AppendActions(v []domain.TaskAction) *TaskUpdate {
	_u.mutation.AppendActions(v)
	return _u
}

// ClearActions clears the value of the "actions" field.
func (_u *TaskUpdate) ClearActions() *TaskUpdate {
	_u.mutation.ClearActions()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLlmRunResult sets the "llm_run_result" field.
func (_u *TaskUpdate) SetLlmRunResult(v *domain.LLMRunResult) *TaskUpdate {
	_u.mutation.SetLlmRunResult(v)
	return _u
}

// ClearLlmRunResult clears the value of the "llm_run_result" field.
func (_u *TaskUpdate) ClearLlmRunResult() *TaskUpdate {
	_u.mutation.ClearLlmRunResult()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.user"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(task.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(task.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(task.FieldType, field.TypeString, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(task.FieldType, field.TypeString)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(task.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(task.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(task.FieldSchedule, field.TypeJSON, value)
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(task.FieldSchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(task.FieldScheduledDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoutineDefinitionID(); ok {
		_spec.SetField(task.FieldRoutineDefinitionID, field.TypeUUID, value)
	}
	if _u.mutation.RoutineDefinitionIDCleared() {
		_spec.ClearField(task.FieldRoutineDefinitionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(task.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(task.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldActions, value)
		})
	}
	if _u.mutation.ActionsCleared() {
		_spec.ClearField(task.FieldActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LlmRunResult(); ok {
		_spec.SetField(task.FieldLlmRunResult, field.TypeJSON, value)
	}
	if _u.mutation.LlmRunResultCleared() {
		_spec.ClearField(task.FieldLlmRunResult, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetName sets the "name" field.
func (_u *TaskUpdateOne) SetName(v string) *TaskUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TaskUpdateOne) SetCategory(v string) *TaskUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCategory(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TaskUpdateOne) ClearCategory() *TaskUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetType sets the "type" field.
func (_u *TaskUpdateOne) SetType(v string) *TaskUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableType(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *TaskUpdateOne) ClearType() *TaskUpdateOne {
	_u.mutation.ClearType()
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *TaskUpdateOne) SetFrequency(v string) *TaskUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFrequency(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// ClearFrequency clears the value of the "frequency" field.
func (_u *TaskUpdateOne) ClearFrequency() *TaskUpdateOne {
	_u.mutation.ClearFrequency()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *TaskUpdateOne) SetSchedule(v *domain.TimeWindow) *TaskUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *TaskUpdateOne) ClearSchedule() *TaskUpdateOne {
	_u.mutation.ClearSchedule()
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *TaskUpdateOne) SetScheduledDate(v string) *TaskUpdateOne {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableScheduledDate(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// SetRoutineDefinitionID sets the "routine_definition_id" field.
func (_u *TaskUpdateOne) SetRoutineDefinitionID(v uuid.UUID) *TaskUpdateOne {
	_u.mutation.SetRoutineDefinitionID(v)
	return _u
}

// SetNillableRoutineDefinitionID sets the "routine_definition_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRoutineDefinitionID(v *uuid.UUID) *TaskUpdateOne {
	if v != nil {
		_u.SetRoutineDefinitionID(*v)
	}
	return _u
}

// ClearRoutineDefinitionID clears the value of the "routine_definition_id" field.
func (_u *TaskUpdateOne) ClearRoutineDefinitionID() *TaskUpdateOne {
	_u.mutation.ClearRoutineDefinitionID()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TaskUpdateOne) SetTags(v []string) *TaskUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TaskUpdateOne) AppendTags(v []string) *TaskUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TaskUpdateOne) ClearTags() *TaskUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetActions sets the "actions" field.
func (_u *TaskUpdateOne) SetActions(v []domain.TaskAction) *TaskUpdateOne {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *TaskUpdateOne) AppendActions(v []domain.TaskAction) *TaskUpdateOne {
	_u.mutation.AppendActions(v)
	return _u
}

// ClearActions clears the value of the "actions" field.
func (_u *TaskUpdateOne) ClearActions() *TaskUpdateOne {
	_u.mutation.ClearActions()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLlmRunResult sets the "llm_run_result" field.
func (_u *TaskUpdateOne) SetLlmRunResult(v *domain.LLMRunResult) *TaskUpdateOne {
	_u.mutation.SetLlmRunResult(v)
	return _u
}

// ClearLlmRunResult clears the value of the "llm_run_result" field.
func (_u *TaskUpdateOne) ClearLlmRunResult() *TaskUpdateOne {
	_u.mutation.ClearLlmRunResult()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.user"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(task.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(task.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(task.FieldType, field.TypeString, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(task.FieldType, field.TypeString)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(task.FieldFrequency, field.TypeString, value)
	}
	if _u.mutation.FrequencyCleared() {
		_spec.ClearField(task.FieldFrequency, field.TypeString)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(task.FieldSchedule, field.TypeJSON, value)
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(task.FieldSchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(task.FieldScheduledDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoutineDefinitionID(); ok {
		_spec.SetField(task.FieldRoutineDefinitionID, field.TypeUUID, value)
	}
	if _u.mutation.RoutineDefinitionIDCleared() {
		_spec.ClearField(task.FieldRoutineDefinitionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(task.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(task.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldActions, value)
		})
	}
	if _u.mutation.ActionsCleared() {
		_spec.ClearField(task.FieldActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LlmRunResult(); ok {
		_spec.SetField(task.FieldLlmRunResult, field.TypeJSON, value)
	}
	if _u.mutation.LlmRunResultCleared() {
		_spec.ClearField(task.FieldLlmRunResult, field.TypeJSON)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
