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
	"github.com/daybreakhq/daybreak/ent/day"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// DayUpdate is the builder for updating Day entities.
type DayUpdate struct {
	config
	hooks    []Hook
	mutation *DayMutation
}

// Where appends a list predicates to the DayUpdate builder.
func (_u *DayUpdate) Where(ps ...predicate.Day) *DayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DayUpdate) SetStatus(v day.Status) *DayUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DayUpdate) SetNillableStatus(v *day.Status) *DayUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *DayUpdate) SetTemplateID(v uuid.UUID) *DayUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *DayUpdate) SetNillableTemplateID(v *uuid.UUID) *DayUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *DayUpdate) ClearTemplateID() *DayUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetTemplateSlug sets the "template_slug" field.
func (_u *DayUpdate) SetTemplateSlug(v string) *DayUpdate {
	_u.mutation.SetTemplateSlug(v)
	return _u
}

// SetNillableTemplateSlug sets the "template_slug" field if the given value is not nil.
func (_u *DayUpdate) SetNillableTemplateSlug(v *string) *DayUpdate {
	if v != nil {
		_u.SetTemplateSlug(*v)
	}
	return _u
}

// ClearTemplateSlug clears the value of the "template_slug" field.
func (_u *DayUpdate) ClearTemplateSlug() *DayUpdate {
	_u.mutation.ClearTemplateSlug()
	return _u
}

// SetTimeBlocks sets the "time_blocks" field.
func (_u *DayUpdate) SetTimeBlocks(v []domain.TimeBlock) *DayUpdate {
	_u.mutation.SetTimeBlocks(v)
	return _u
}

// AppendTimeBlocks appends value to the "time_blocks" field.
func (_u *DayUpdate) AppendTimeBlocks(v []domain.TimeBlock) *DayUpdate {
	_u.mutation.AppendTimeBlocks(v)
	return _u
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (_u *DayUpdate) ClearTimeBlocks() *DayUpdate {
	_u.mutation.ClearTimeBlocks()
	return _u
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (_u *DayUpdate) SetHighLevelPlan(v domain.HighLevelPlan) *DayUpdate {
	_u.mutation.SetHighLevelPlan(v)
	return _u
}

// SetNillableHighLevelPlan sets the "high_level_plan" field if the given value is not nil.
func (_u *DayUpdate) SetNillableHighLevelPlan(v *domain.HighLevelPlan) *DayUpdate {
	if v != nil {
		_u.SetHighLevelPlan(*v)
	}
	return _u
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (_u *DayUpdate) ClearHighLevelPlan() *DayUpdate {
	_u.mutation.ClearHighLevelPlan()
	return _u
}

// SetAlarms sets the "alarms" field.
func (_u *DayUpdate) SetAlarms(v []domain.Alarm) *DayUpdate {
	_u.mutation.SetAlarms(v)
	return _u
}

// AppendAlarms appends value to the "alarms" field.
func (_u *DayUpdate) AppendAlarms(v []domain.Alarm) *DayUpdate {
	_u.mutation.AppendAlarms(v)
	return _u
}

// ClearAlarms clears the value of the "alarms" field.
func (_u *DayUpdate) ClearAlarms() *DayUpdate {
	_u.mutation.ClearAlarms()
	return _u
}

// SetTags sets the "tags" field.
func (_u *DayUpdate) SetTags(v []string) *DayUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DayUpdate) AppendTags(v []string) *DayUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *DayUpdate) ClearTags() *DayUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *DayUpdate) SetScheduledAt(v time.Time) *DayUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *DayUpdate) SetNillableScheduledAt(v *time.Time) *DayUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *DayUpdate) ClearScheduledAt() *DayUpdate {
	_u.mutation.ClearScheduledAt()
	return _u
}

// Mutation returns the DayMutation object of the builder.
func (_u *DayUpdate) Mutation() *DayMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DayUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DayUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := day.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Day.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Day.user"`)
	}
	return nil
}

func (_u *DayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(day.Table, day.Columns, sqlgraph.NewFieldSpec(day.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(day.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(day.FieldTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(day.FieldTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TemplateSlug(); ok {
		_spec.SetField(day.FieldTemplateSlug, field.TypeString, value)
	}
	if _u.mutation.TemplateSlugCleared() {
		_spec.ClearField(day.FieldTemplateSlug, field.TypeString)
	}
	if value, ok := _u.mutation.TimeBlocks(); ok {
		_spec.SetField(day.FieldTimeBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, day.FieldTimeBlocks, value)
		})
	}
	if _u.mutation.TimeBlocksCleared() {
		_spec.ClearField(day.FieldTimeBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.HighLevelPlan(); ok {
		_spec.SetField(day.FieldHighLevelPlan, field.TypeJSON, value)
	}
	if _u.mutation.HighLevelPlanCleared() {
		_spec.ClearField(day.FieldHighLevelPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Alarms(); ok {
		_spec.SetField(day.FieldAlarms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlarms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, day.FieldAlarms, value)
		})
	}
	if _u.mutation.AlarmsCleared() {
		_spec.ClearField(day.FieldAlarms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(day.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, day.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(day.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(day.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(day.FieldScheduledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{day.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DayUpdateOne is the builder for updating a single Day entity.
type DayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DayMutation
}

// SetStatus sets the "status" field.
func (_u *DayUpdateOne) SetStatus(v day.Status) *DayUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DayUpdateOne) SetNillableStatus(v *day.Status) *DayUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *DayUpdateOne) SetTemplateID(v uuid.UUID) *DayUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *DayUpdateOne) SetNillableTemplateID(v *uuid.UUID) *DayUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *DayUpdateOne) ClearTemplateID() *DayUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetTemplateSlug sets the "template_slug" field.
func (_u *DayUpdateOne) SetTemplateSlug(v string) *DayUpdateOne {
	_u.mutation.SetTemplateSlug(v)
	return _u
}

// SetNillableTemplateSlug sets the "template_slug" field if the given value is not nil.
func (_u *DayUpdateOne) SetNillableTemplateSlug(v *string) *DayUpdateOne {
	if v != nil {
		_u.SetTemplateSlug(*v)
	}
	return _u
}

// ClearTemplateSlug clears the value of the "template_slug" field.
func (_u *DayUpdateOne) ClearTemplateSlug() *DayUpdateOne {
	_u.mutation.ClearTemplateSlug()
	return _u
}

// SetTimeBlocks sets the "time_blocks" field.
func (_u *DayUpdateOne) SetTimeBlocks(v []domain.TimeBlock) *DayUpdateOne {
	_u.mutation.SetTimeBlocks(v)
	return _u
}

// AppendTimeBlocks appends value to the "time_blocks" field.
func (_u *DayUpdateOne) AppendTimeBlocks(v []domain.TimeBlock) *DayUpdateOne {
	_u.mutation.AppendTimeBlocks(v)
	return _u
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (_u *DayUpdateOne) ClearTimeBlocks() *DayUpdateOne {
	_u.mutation.ClearTimeBlocks()
	return _u
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (_u *DayUpdateOne) SetHighLevelPlan(v domain.HighLevelPlan) *DayUpdateOne {
	_u.mutation.SetHighLevelPlan(v)
	return _u
}

// SetNillableHighLevelPlan sets the "high_level_plan" field if the given value is not nil.
func (_u *DayUpdateOne) SetNillableHighLevelPlan(v *domain.HighLevelPlan) *DayUpdateOne {
	if v != nil {
		_u.SetHighLevelPlan(*v)
	}
	return _u
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (_u *DayUpdateOne) ClearHighLevelPlan() *DayUpdateOne {
	_u.mutation.ClearHighLevelPlan()
	return _u
}

// SetAlarms sets the "alarms" field.
func (_u *DayUpdateOne) SetAlarms(v []domain.Alarm) *DayUpdateOne {
	_u.mutation.SetAlarms(v)
	return _u
}

// AppendAlarms appends value to the "alarms" field.
func (_u *DayUpdateOne) AppendAlarms(v []domain.Alarm) *DayUpdateOne {
	_u.mutation.AppendAlarms(v)
	return _u
}

// ClearAlarms clears the value of the "alarms" field.
func (_u *DayUpdateOne) ClearAlarms() *DayUpdateOne {
	_u.mutation.ClearAlarms()
	return _u
}

// SetTags sets the "tags" field.
func (_u *DayUpdateOne) SetTags(v []string) *DayUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DayUpdateOne) AppendTags(v []string) *DayUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *DayUpdateOne) ClearTags() *DayUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *DayUpdateOne) SetScheduledAt(v time.Time) *DayUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *DayUpdateOne) SetNillableScheduledAt(v *time.Time) *DayUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *DayUpdateOne) ClearScheduledAt() *DayUpdateOne {
	_u.mutation.ClearScheduledAt()
	return _u
}

// Mutation returns the DayMutation object of the builder.
func (_u *DayUpdateOne) Mutation() *DayMutation {
	return _u.mutation
}

// Where appends a list predicates to the DayUpdate builder.
func (_u *DayUpdateOne) Where(ps ...predicate.Day) *DayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DayUpdateOne) Select(field string, fields ...string) *DayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Day entity.
func (_u *DayUpdateOne) Save(ctx context.Context) (*Day, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DayUpdateOne) SaveX(ctx context.Context) *Day {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DayUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := day.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Day.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Day.user"`)
	}
	return nil
}

func (_u *DayUpdateOne) sqlSave(ctx context.Context) (_node *Day, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(day.Table, day.Columns, sqlgraph.NewFieldSpec(day.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Day.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, day.FieldID)
		for _, f := range fields {
			if !day.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != day.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(day.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(day.FieldTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(day.FieldTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TemplateSlug(); ok {
		_spec.SetField(day.FieldTemplateSlug, field.TypeString, value)
	}
	if _u.mutation.TemplateSlugCleared() {
		_spec.ClearField(day.FieldTemplateSlug, field.TypeString)
	}
	if value, ok := _u.mutation.TimeBlocks(); ok {
		_spec.SetField(day.FieldTimeBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, day.FieldTimeBlocks, value)
		})
	}
	if _u.mutation.TimeBlocksCleared() {
		_spec.ClearField(day.FieldTimeBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.HighLevelPlan(); ok {
		_spec.SetField(day.FieldHighLevelPlan, field.TypeJSON, value)
	}
	if _u.mutation.HighLevelPlanCleared() {
		_spec.ClearField(day.FieldHighLevelPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Alarms(); ok {
		_spec.SetField(day.FieldAlarms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlarms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, day.FieldAlarms, value)
		})
	}
	if _u.mutation.AlarmsCleared() {
		_spec.ClearField(day.FieldAlarms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(day.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, day.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(day.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(day.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(day.FieldScheduledAt, field.TypeTime)
	}
	_node = &Day{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{day.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
