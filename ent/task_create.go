// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/task"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *TaskCreate) SetUserID(v uuid.UUID) *TaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TaskCreate) SetName(v string) *TaskCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *TaskCreate) SetCategory(v string) *TaskCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCategory(v *string) *TaskCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *TaskCreate) SetType(v string) *TaskCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableType(v *string) *TaskCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *TaskCreate) SetFrequency(v string) *TaskCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFrequency(v *string) *TaskCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *TaskCreate) SetSchedule(v *domain.TimeWindow) *TaskCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetScheduledDate sets the "scheduled_date" field.
func (_c *TaskCreate) SetScheduledDate(v string) *TaskCreate {
	_c.mutation.SetScheduledDate(v)
	return _c
}

// SetRoutineDefinitionID sets the "routine_definition_id" field.
func (_c *TaskCreate) SetRoutineDefinitionID(v uuid.UUID) *TaskCreate {
	_c.mutation.SetRoutineDefinitionID(v)
	return _c
}

// SetNillableRoutineDefinitionID sets the "routine_definition_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRoutineDefinitionID(v *uuid.UUID) *TaskCreate {
	if v != nil {
		_c.SetRoutineDefinitionID(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *TaskCreate) SetTags(v []string) *TaskCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetActions sets the "actions" field.
func (_c *TaskCreate) SetActions(v []domain.TaskAction) *TaskCreate {
	_c.mutation.SetActions(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLlmRunResult sets the "llm_run_result" field.
func (_c *TaskCreate) SetLlmRunResult(v *domain.LLMRunResult) *TaskCreate {
	_c.mutation.SetLlmRunResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v uuid.UUID) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *TaskCreate) SetUser(v *User) *TaskCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Task.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Task.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledDate(); !ok {
		return &ValidationError{Name: "scheduled_date", err: errors.New(`ent: missing required field "Task.scheduled_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Task.user"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(task.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(task.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(task.FieldFrequency, field.TypeString, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(task.FieldSchedule, field.TypeJSON, value)
		_node.Schedule = value
	}
	if value, ok := _c.mutation.ScheduledDate(); ok {
		_spec.SetField(task.FieldScheduledDate, field.TypeString, value)
		_node.ScheduledDate = value
	}
	if value, ok := _c.mutation.RoutineDefinitionID(); ok {
		_spec.SetField(task.FieldRoutineDefinitionID, field.TypeUUID, value)
		_node.RoutineDefinitionID = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Actions(); ok {
		_spec.SetField(task.FieldActions, field.TypeJSON, value)
		_node.Actions = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LlmRunResult(); ok {
		_spec.SetField(task.FieldLlmRunResult, field.TypeJSON, value)
		_node.LlmRunResult = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.UserTable,
			Columns: []string{task.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *TaskUpsert) SetName(v string) *TaskUpsert {
	u.Set(task.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TaskUpsert) UpdateName() *TaskUpsert {
	u.SetExcluded(task.FieldName)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetCategory sets the "category" field.
func (u *TaskUpsert) SetCategory(v string) *TaskUpsert {
	u.Set(task.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCategory() *TaskUpsert {
	u.SetExcluded(task.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *TaskUpsert) ClearCategory() *TaskUpsert {
	u.SetNull(task.FieldCategory)
	return u
}

// SetType sets the "type" field.
func (u *TaskUpsert) SetType(v string) *TaskUpsert {
	u.Set(task.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *TaskUpsert) UpdateType() *TaskUpsert {
	u.SetExcluded(task.FieldType)
	return u
}

// ClearType clears the value of the "type" field.
func (u *TaskUpsert) ClearType() *TaskUpsert {
	u.SetNull(task.FieldType)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *TaskUpsert) SetFrequency(v string) *TaskUpsert {
	u.Set(task.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *TaskUpsert) UpdateFrequency() *TaskUpsert {
	u.SetExcluded(task.FieldFrequency)
	return u
}

// ClearFrequency clears the value of the "frequency" field.
func (u *TaskUpsert) ClearFrequency() *TaskUpsert {
	u.SetNull(task.FieldFrequency)
	return u
}

// SetSchedule sets the "schedule" field.
func (u *TaskUpsert) SetSchedule(v *domain.TimeWindow) *TaskUpsert {
	u.Set(task.FieldSchedule, v)
	return u
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSchedule() *TaskUpsert {
	u.SetExcluded(task.FieldSchedule)
	return u
}

// ClearSchedule clears the value of the "schedule" field.
func (u *TaskUpsert) ClearSchedule() *TaskUpsert {
	u.SetNull(task.FieldSchedule)
	return u
}

// SetScheduledDate sets the "scheduled_date" field.
func (u *TaskUpsert) SetScheduledDate(v string) *TaskUpsert {
	u.Set(task.FieldScheduledDate, v)
	return u
}

// UpdateScheduledDate sets the "scheduled_date" field to the value that was provided on create.
func (u *TaskUpsert) UpdateScheduledDate() *TaskUpsert {
	u.SetExcluded(task.FieldScheduledDate)
	return u
}

// SetRoutineDefinitionID sets the "routine_definition_id" field.
func (u *TaskUpsert) SetRoutineDefinitionID(v uuid.UUID) *TaskUpsert {
	u.Set(task.FieldRoutineDefinitionID, v)
	return u
}

// UpdateRoutineDefinitionID sets the "routine_definition_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRoutineDefinitionID() *TaskUpsert {
	u.SetExcluded(task.FieldRoutineDefinitionID)
	return u
}

// ClearRoutineDefinitionID clears the value of the "routine_definition_id" field.
func (u *TaskUpsert) ClearRoutineDefinitionID() *TaskUpsert {
	u.SetNull(task.FieldRoutineDefinitionID)
	return u
}

// SetTags sets the "tags" field.
func (u *TaskUpsert) SetTags(v []string) *TaskUpsert {
	u.Set(task.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTags() *TaskUpsert {
	u.SetExcluded(task.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *TaskUpsert) ClearTags() *TaskUpsert {
	u.SetNull(task.FieldTags)
	return u
}

// SetActions sets the "actions" field.
func (u *TaskUpsert) SetActions(v []domain.TaskAction) *TaskUpsert {
	u.Set(task.FieldActions, v)
	return u
}

// UpdateActions sets the "actions" field to the value that was provided on create.
func (u *TaskUpsert) UpdateActions() *TaskUpsert {
	u.SetExcluded(task.FieldActions)
	return u
}

// ClearActions clears the value of the "actions" field.
func (u *TaskUpsert) ClearActions() *TaskUpsert {
	u.SetNull(task.FieldActions)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// SetLlmRunResult sets the "llm_run_result" field.
func (u *TaskUpsert) SetLlmRunResult(v *domain.LLMRunResult) *TaskUpsert {
	u.Set(task.FieldLlmRunResult, v)
	return u
}

// UpdateLlmRunResult sets the "llm_run_result" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLlmRunResult() *TaskUpsert {
	u.SetExcluded(task.FieldLlmRunResult)
	return u
}

// ClearLlmRunResult clears the value of the "llm_run_result" field.
func (u *TaskUpsert) ClearLlmRunResult() *TaskUpsert {
	u.SetNull(task.FieldLlmRunResult)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(task.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TaskUpsertOne) SetName(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateName() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateName()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetCategory sets the "category" field.
func (u *TaskUpsertOne) SetCategory(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCategory() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *TaskUpsertOne) ClearCategory() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCategory()
	})
}

// SetType sets the "type" field.
func (u *TaskUpsertOne) SetType(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateType() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateType()
	})
}

// ClearType clears the value of the "type" field.
func (u *TaskUpsertOne) ClearType() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearType()
	})
}

// SetFrequency sets the "frequency" field.
func (u *TaskUpsertOne) SetFrequency(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateFrequency() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFrequency()
	})
}

// ClearFrequency clears the value of the "frequency" field.
func (u *TaskUpsertOne) ClearFrequency() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFrequency()
	})
}

// SetSchedule sets the "schedule" field.
func (u *TaskUpsertOne) SetSchedule(v *domain.TimeWindow) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSchedule() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSchedule()
	})
}

// ClearSchedule clears the value of the "schedule" field.
func (u *TaskUpsertOne) ClearSchedule() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSchedule()
	})
}

// SetScheduledDate sets the "scheduled_date" field.
func (u *TaskUpsertOne) SetScheduledDate(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetScheduledDate(v)
	})
}

// UpdateScheduledDate sets the "scheduled_date" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateScheduledDate() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScheduledDate()
	})
}

// SetRoutineDefinitionID sets the "routine_definition_id" field.
func (u *TaskUpsertOne) SetRoutineDefinitionID(v uuid.UUID) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRoutineDefinitionID(v)
	})
}

// UpdateRoutineDefinitionID sets the "routine_definition_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRoutineDefinitionID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRoutineDefinitionID()
	})
}

// ClearRoutineDefinitionID clears the value of the "routine_definition_id" field.
func (u *TaskUpsertOne) ClearRoutineDefinitionID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRoutineDefinitionID()
	})
}

// SetTags sets the "tags" field.
func (u *TaskUpsertOne) SetTags(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTags() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *TaskUpsertOne) ClearTags() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTags()
	})
}

// SetActions sets the "actions" field.
func (u *TaskUpsertOne) SetActions(v []domain.TaskAction) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetActions(v)
	})
}

// UpdateActions sets the "actions" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateActions() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateActions()
	})
}

// ClearActions clears the value of the "actions" field.
func (u *TaskUpsertOne) ClearActions() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearActions()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLlmRunResult sets the "llm_run_result" field.
func (u *TaskUpsertOne) SetLlmRunResult(v *domain.LLMRunResult) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLlmRunResult(v)
	})
}

// UpdateLlmRunResult sets the "llm_run_result" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLlmRunResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLlmRunResult()
	})
}

// ClearLlmRunResult clears the value of the "llm_run_result" field.
func (u *TaskUpsertOne) ClearLlmRunResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLlmRunResult()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(task.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TaskUpsertBulk) SetName(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateName() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateName()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetCategory sets the "category" field.
func (u *TaskUpsertBulk) SetCategory(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCategory() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *TaskUpsertBulk) ClearCategory() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCategory()
	})
}

// SetType sets the "type" field.
func (u *TaskUpsertBulk) SetType(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateType() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateType()
	})
}

// ClearType clears the value of the "type" field.
func (u *TaskUpsertBulk) ClearType() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearType()
	})
}

// SetFrequency sets the "frequency" field.
func (u *TaskUpsertBulk) SetFrequency(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateFrequency() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFrequency()
	})
}

// ClearFrequency clears the value of the "frequency" field.
func (u *TaskUpsertBulk) ClearFrequency() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFrequency()
	})
}

// SetSchedule sets the "schedule" field.
func (u *TaskUpsertBulk) SetSchedule(v *domain.TimeWindow) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSchedule() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSchedule()
	})
}

// ClearSchedule clears the value of the "schedule" field.
func (u *TaskUpsertBulk) ClearSchedule() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSchedule()
	})
}

// SetScheduledDate sets the "scheduled_date" field.
func (u *TaskUpsertBulk) SetScheduledDate(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetScheduledDate(v)
	})
}

// UpdateScheduledDate sets the "scheduled_date" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateScheduledDate() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScheduledDate()
	})
}

// SetRoutineDefinitionID sets the "routine_definition_id" field.
func (u *TaskUpsertBulk) SetRoutineDefinitionID(v uuid.UUID) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRoutineDefinitionID(v)
	})
}

// UpdateRoutineDefinitionID sets the "routine_definition_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRoutineDefinitionID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRoutineDefinitionID()
	})
}

// ClearRoutineDefinitionID clears the value of the "routine_definition_id" field.
func (u *TaskUpsertBulk) ClearRoutineDefinitionID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRoutineDefinitionID()
	})
}

// SetTags sets the "tags" field.
func (u *TaskUpsertBulk) SetTags(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTags() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *TaskUpsertBulk) ClearTags() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTags()
	})
}

// SetActions sets the "actions" field.
func (u *TaskUpsertBulk) SetActions(v []domain.TaskAction) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetActions(v)
	})
}

// UpdateActions sets the "actions" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateActions() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateActions()
	})
}

// ClearActions clears the value of the "actions" field.
func (u *TaskUpsertBulk) ClearActions() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearActions()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLlmRunResult sets the "llm_run_result" field.
func (u *TaskUpsertBulk) SetLlmRunResult(v *domain.LLMRunResult) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLlmRunResult(v)
	})
}

// UpdateLlmRunResult sets the "llm_run_result" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLlmRunResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLlmRunResult()
	})
}

// ClearLlmRunResult clears the value of the "llm_run_result" field.
func (u *TaskUpsertBulk) ClearLlmRunResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLlmRunResult()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
