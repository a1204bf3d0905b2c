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
	"github.com/daybreakhq/daybreak/ent/day"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// DayCreate is the builder for creating a Day entity.
type DayCreate struct {
	config
	mutation *DayMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *DayCreate) SetUserID(v uuid.UUID) *DayCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *DayCreate) SetDate(v string) *DayCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DayCreate) SetStatus(v day.Status) *DayCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DayCreate) SetNillableStatus(v *day.Status) *DayCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *DayCreate) SetTemplateID(v uuid.UUID) *DayCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *DayCreate) SetNillableTemplateID(v *uuid.UUID) *DayCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetTemplateSlug sets the "template_slug" field.
func (_c *DayCreate) SetTemplateSlug(v string) *DayCreate {
	_c.mutation.SetTemplateSlug(v)
	return _c
}

// SetNillableTemplateSlug sets the "template_slug" field if the given value is not nil.
func (_c *DayCreate) SetNillableTemplateSlug(v *string) *DayCreate {
	if v != nil {
		_c.SetTemplateSlug(*v)
	}
	return _c
}

// SetTimeBlocks sets the "time_blocks" field.
func (_c *DayCreate) SetTimeBlocks(v []domain.TimeBlock) *DayCreate {
	_c.mutation.SetTimeBlocks(v)
	return _c
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (_c *DayCreate) SetHighLevelPlan(v domain.HighLevelPlan) *DayCreate {
	_c.mutation.SetHighLevelPlan(v)
	return _c
}

// SetNillableHighLevelPlan sets the "high_level_plan" field if the given value is not nil.
func (_c *DayCreate) SetNillableHighLevelPlan(v *domain.HighLevelPlan) *DayCreate {
	if v != nil {
		_c.SetHighLevelPlan(*v)
	}
	return _c
}

// SetAlarms sets the "alarms" field.
func (_c *DayCreate) SetAlarms(v []domain.Alarm) *DayCreate {
	_c.mutation.SetAlarms(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *DayCreate) SetTags(v []string) *DayCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *DayCreate) SetScheduledAt(v time.Time) *DayCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *DayCreate) SetNillableScheduledAt(v *time.Time) *DayCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DayCreate) SetID(v uuid.UUID) *DayCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DayCreate) SetUser(v *User) *DayCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the DayMutation object of the builder.
func (_c *DayCreate) Mutation() *DayMutation {
	return _c.mutation
}

// Save creates the Day in the database.
func (_c *DayCreate) Save(ctx context.Context) (*Day, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DayCreate) SaveX(ctx context.Context) *Day {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DayCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := day.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DayCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Day.user_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Day.date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Day.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := day.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Day.status": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Day.user"`)}
	}
	return nil
}

func (_c *DayCreate) sqlSave(ctx context.Context) (*Day, error) {
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

func (_c *DayCreate) createSpec() (*Day, *sqlgraph.CreateSpec) {
	var (
		_node = &Day{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(day.Table, sqlgraph.NewFieldSpec(day.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(day.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(day.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(day.FieldTemplateID, field.TypeUUID, value)
		_node.TemplateID = &value
	}
	if value, ok := _c.mutation.TemplateSlug(); ok {
		_spec.SetField(day.FieldTemplateSlug, field.TypeString, value)
		_node.TemplateSlug = value
	}
	if value, ok := _c.mutation.TimeBlocks(); ok {
		_spec.SetField(day.FieldTimeBlocks, field.TypeJSON, value)
		_node.TimeBlocks = value
	}
	if value, ok := _c.mutation.HighLevelPlan(); ok {
		_spec.SetField(day.FieldHighLevelPlan, field.TypeJSON, value)
		_node.HighLevelPlan = value
	}
	if value, ok := _c.mutation.Alarms(); ok {
		_spec.SetField(day.FieldAlarms, field.TypeJSON, value)
		_node.Alarms = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(day.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(day.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   day.UserTable,
			Columns: []string{day.UserColumn},
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
//	client.Day.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DayUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DayCreate) OnConflict(opts ...sql.ConflictOption) *DayUpsertOne {
	_c.conflict = opts
	return &DayUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Day.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DayCreate) OnConflictColumns(columns ...string) *DayUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DayUpsertOne{
		create: _c,
	}
}

type (
	// DayUpsertOne is the builder for "upsert"-ing
	//  one Day node.
	DayUpsertOne struct {
		create *DayCreate
	}

	// DayUpsert is the "OnConflict" setter.
	DayUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *DayUpsert) SetStatus(v day.Status) *DayUpsert {
	u.Set(day.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DayUpsert) UpdateStatus() *DayUpsert {
	u.SetExcluded(day.FieldStatus)
	return u
}

// SetTemplateID sets the "template_id" field.
func (u *DayUpsert) SetTemplateID(v uuid.UUID) *DayUpsert {
	u.Set(day.FieldTemplateID, v)
	return u
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *DayUpsert) UpdateTemplateID() *DayUpsert {
	u.SetExcluded(day.FieldTemplateID)
	return u
}

// ClearTemplateID clears the value of the "template_id" field.
func (u *DayUpsert) ClearTemplateID() *DayUpsert {
	u.SetNull(day.FieldTemplateID)
	return u
}

// SetTemplateSlug sets the "template_slug" field.
func (u *DayUpsert) SetTemplateSlug(v string) *DayUpsert {
	u.Set(day.FieldTemplateSlug, v)
	return u
}

// UpdateTemplateSlug sets the "template_slug" field to the value that was provided on create.
func (u *DayUpsert) UpdateTemplateSlug() *DayUpsert {
	u.SetExcluded(day.FieldTemplateSlug)
	return u
}

// ClearTemplateSlug clears the value of the "template_slug" field.
func (u *DayUpsert) ClearTemplateSlug() *DayUpsert {
	u.SetNull(day.FieldTemplateSlug)
	return u
}

// SetTimeBlocks sets the "time_blocks" field.
func (u *DayUpsert) SetTimeBlocks(v []domain.TimeBlock) *DayUpsert {
	u.Set(day.FieldTimeBlocks, v)
	return u
}

// UpdateTimeBlocks sets the "time_blocks" field to the value that was provided on create.
func (u *DayUpsert) UpdateTimeBlocks() *DayUpsert {
	u.SetExcluded(day.FieldTimeBlocks)
	return u
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (u *DayUpsert) ClearTimeBlocks() *DayUpsert {
	u.SetNull(day.FieldTimeBlocks)
	return u
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (u *DayUpsert) SetHighLevelPlan(v domain.HighLevelPlan) *DayUpsert {
	u.Set(day.FieldHighLevelPlan, v)
	return u
}

// UpdateHighLevelPlan sets the "high_level_plan" field to the value that was provided on create.
func (u *DayUpsert) UpdateHighLevelPlan() *DayUpsert {
	u.SetExcluded(day.FieldHighLevelPlan)
	return u
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (u *DayUpsert) ClearHighLevelPlan() *DayUpsert {
	u.SetNull(day.FieldHighLevelPlan)
	return u
}

// SetAlarms sets the "alarms" field.
func (u *DayUpsert) SetAlarms(v []domain.Alarm) *DayUpsert {
	u.Set(day.FieldAlarms, v)
	return u
}

// UpdateAlarms sets the "alarms" field to the value that was provided on create.
func (u *DayUpsert) UpdateAlarms() *DayUpsert {
	u.SetExcluded(day.FieldAlarms)
	return u
}

// ClearAlarms clears the value of the "alarms" field.
func (u *DayUpsert) ClearAlarms() *DayUpsert {
	u.SetNull(day.FieldAlarms)
	return u
}

// SetTags sets the "tags" field.
func (u *DayUpsert) SetTags(v []string) *DayUpsert {
	u.Set(day.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *DayUpsert) UpdateTags() *DayUpsert {
	u.SetExcluded(day.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *DayUpsert) ClearTags() *DayUpsert {
	u.SetNull(day.FieldTags)
	return u
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *DayUpsert) SetScheduledAt(v time.Time) *DayUpsert {
	u.Set(day.FieldScheduledAt, v)
	return u
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *DayUpsert) UpdateScheduledAt() *DayUpsert {
	u.SetExcluded(day.FieldScheduledAt)
	return u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (u *DayUpsert) ClearScheduledAt() *DayUpsert {
	u.SetNull(day.FieldScheduledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Day.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(day.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DayUpsertOne) UpdateNewValues() *DayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(day.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(day.FieldUserID)
		}
		if _, exists := u.create.mutation.Date(); exists {
			s.SetIgnore(day.FieldDate)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Day.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DayUpsertOne) Ignore() *DayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DayUpsertOne) DoNothing() *DayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DayCreate.OnConflict
// documentation for more info.
func (u *DayUpsertOne) Update(set func(*DayUpsert)) *DayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DayUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *DayUpsertOne) SetStatus(v day.Status) *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DayUpsertOne) UpdateStatus() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.UpdateStatus()
	})
}

// SetTemplateID sets the "template_id" field.
func (u *DayUpsertOne) SetTemplateID(v uuid.UUID) *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.SetTemplateID(v)
	})
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *DayUpsertOne) UpdateTemplateID() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.UpdateTemplateID()
	})
}

// ClearTemplateID clears the value of the "template_id" field.
func (u *DayUpsertOne) ClearTemplateID() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.ClearTemplateID()
	})
}

// SetTemplateSlug sets the "template_slug" field.
func (u *DayUpsertOne) SetTemplateSlug(v string) *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.SetTemplateSlug(v)
	})
}

// UpdateTemplateSlug sets the "template_slug" field to the value that was provided on create.
func (u *DayUpsertOne) UpdateTemplateSlug() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.UpdateTemplateSlug()
	})
}

// ClearTemplateSlug clears the value of the "template_slug" field.
func (u *DayUpsertOne) ClearTemplateSlug() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.ClearTemplateSlug()
	})
}

// SetTimeBlocks sets the "time_blocks" field.
func (u *DayUpsertOne) SetTimeBlocks(v []domain.TimeBlock) *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.SetTimeBlocks(v)
	})
}

// UpdateTimeBlocks sets the "time_blocks" field to the value that was provided on create.
func (u *DayUpsertOne) UpdateTimeBlocks() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.UpdateTimeBlocks()
	})
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (u *DayUpsertOne) ClearTimeBlocks() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.ClearTimeBlocks()
	})
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (u *DayUpsertOne) SetHighLevelPlan(v domain.HighLevelPlan) *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.SetHighLevelPlan(v)
	})
}

// UpdateHighLevelPlan sets the "high_level_plan" field to the value that was provided on create.
func (u *DayUpsertOne) UpdateHighLevelPlan() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.UpdateHighLevelPlan()
	})
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (u *DayUpsertOne) ClearHighLevelPlan() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.ClearHighLevelPlan()
	})
}

// SetAlarms sets the "alarms" field.
func (u *DayUpsertOne) SetAlarms(v []domain.Alarm) *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.SetAlarms(v)
	})
}

// UpdateAlarms sets the "alarms" field to the value that was provided on create.
func (u *DayUpsertOne) UpdateAlarms() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.UpdateAlarms()
	})
}

// ClearAlarms clears the value of the "alarms" field.
func (u *DayUpsertOne) ClearAlarms() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.ClearAlarms()
	})
}

// SetTags sets the "tags" field.
func (u *DayUpsertOne) SetTags(v []string) *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *DayUpsertOne) UpdateTags() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *DayUpsertOne) ClearTags() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.ClearTags()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *DayUpsertOne) SetScheduledAt(v time.Time) *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *DayUpsertOne) UpdateScheduledAt() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.UpdateScheduledAt()
	})
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (u *DayUpsertOne) ClearScheduledAt() *DayUpsertOne {
	return u.Update(func(s *DayUpsert) {
		s.ClearScheduledAt()
	})
}

// Exec executes the query.
func (u *DayUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DayCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DayUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DayUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DayUpsertOne.ID is not supported by MySQL driver. Use DayUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DayUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DayCreateBulk is the builder for creating many Day entities in bulk.
type DayCreateBulk struct {
	config
	err      error
	builders []*DayCreate
	conflict []sql.ConflictOption
}

// Save creates the Day entities in the database.
func (_c *DayCreateBulk) Save(ctx context.Context) ([]*Day, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Day, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DayMutation)
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
func (_c *DayCreateBulk) SaveX(ctx context.Context) []*Day {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Day.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DayUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DayCreateBulk) OnConflict(opts ...sql.ConflictOption) *DayUpsertBulk {
	_c.conflict = opts
	return &DayUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Day.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DayCreateBulk) OnConflictColumns(columns ...string) *DayUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DayUpsertBulk{
		create: _c,
	}
}

// DayUpsertBulk is the builder for "upsert"-ing
// a bulk of Day nodes.
type DayUpsertBulk struct {
	create *DayCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Day.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(day.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DayUpsertBulk) UpdateNewValues() *DayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(day.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(day.FieldUserID)
			}
			if _, exists := b.mutation.Date(); exists {
				s.SetIgnore(day.FieldDate)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Day.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DayUpsertBulk) Ignore() *DayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DayUpsertBulk) DoNothing() *DayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DayCreateBulk.OnConflict
// documentation for more info.
func (u *DayUpsertBulk) Update(set func(*DayUpsert)) *DayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DayUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *DayUpsertBulk) SetStatus(v day.Status) *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DayUpsertBulk) UpdateStatus() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.UpdateStatus()
	})
}

// SetTemplateID sets the "template_id" field.
func (u *DayUpsertBulk) SetTemplateID(v uuid.UUID) *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.SetTemplateID(v)
	})
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *DayUpsertBulk) UpdateTemplateID() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.UpdateTemplateID()
	})
}

// ClearTemplateID clears the value of the "template_id" field.
func (u *DayUpsertBulk) ClearTemplateID() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.ClearTemplateID()
	})
}

// SetTemplateSlug sets the "template_slug" field.
func (u *DayUpsertBulk) SetTemplateSlug(v string) *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.SetTemplateSlug(v)
	})
}

// UpdateTemplateSlug sets the "template_slug" field to the value that was provided on create.
func (u *DayUpsertBulk) UpdateTemplateSlug() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.UpdateTemplateSlug()
	})
}

// ClearTemplateSlug clears the value of the "template_slug" field.
func (u *DayUpsertBulk) ClearTemplateSlug() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.ClearTemplateSlug()
	})
}

// SetTimeBlocks sets the "time_blocks" field.
func (u *DayUpsertBulk) SetTimeBlocks(v []domain.TimeBlock) *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.SetTimeBlocks(v)
	})
}

// UpdateTimeBlocks sets the "time_blocks" field to the value that was provided on create.
func (u *DayUpsertBulk) UpdateTimeBlocks() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.UpdateTimeBlocks()
	})
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (u *DayUpsertBulk) ClearTimeBlocks() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.ClearTimeBlocks()
	})
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (u *DayUpsertBulk) SetHighLevelPlan(v domain.HighLevelPlan) *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.SetHighLevelPlan(v)
	})
}

// UpdateHighLevelPlan sets the "high_level_plan" field to the value that was provided on create.
func (u *DayUpsertBulk) UpdateHighLevelPlan() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.UpdateHighLevelPlan()
	})
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (u *DayUpsertBulk) ClearHighLevelPlan() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.ClearHighLevelPlan()
	})
}

// SetAlarms sets the "alarms" field.
func (u *DayUpsertBulk) SetAlarms(v []domain.Alarm) *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.SetAlarms(v)
	})
}

// UpdateAlarms sets the "alarms" field to the value that was provided on create.
func (u *DayUpsertBulk) UpdateAlarms() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.UpdateAlarms()
	})
}

// ClearAlarms clears the value of the "alarms" field.
func (u *DayUpsertBulk) ClearAlarms() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.ClearAlarms()
	})
}

// SetTags sets the "tags" field.
func (u *DayUpsertBulk) SetTags(v []string) *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *DayUpsertBulk) UpdateTags() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *DayUpsertBulk) ClearTags() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.ClearTags()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *DayUpsertBulk) SetScheduledAt(v time.Time) *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *DayUpsertBulk) UpdateScheduledAt() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.UpdateScheduledAt()
	})
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (u *DayUpsertBulk) ClearScheduledAt() *DayUpsertBulk {
	return u.Update(func(s *DayUpsert) {
		s.ClearScheduledAt()
	})
}

// Exec executes the query.
func (u *DayUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DayCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DayCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DayUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
