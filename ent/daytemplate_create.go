// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/daytemplate"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// DayTemplateCreate is the builder for creating a DayTemplate entity.
type DayTemplateCreate struct {
	config
	mutation *DayTemplateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *DayTemplateCreate) SetUserID(v uuid.UUID) *DayTemplateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *DayTemplateCreate) SetSlug(v string) *DayTemplateCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *DayTemplateCreate) SetStartTime(v string) *DayTemplateCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *DayTemplateCreate) SetNillableStartTime(v *string) *DayTemplateCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *DayTemplateCreate) SetEndTime(v string) *DayTemplateCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *DayTemplateCreate) SetNillableEndTime(v *string) *DayTemplateCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetRoutineDefinitionIds sets the "routine_definition_ids" field.
func (_c *DayTemplateCreate) SetRoutineDefinitionIds(v []uuid.UUID) *DayTemplateCreate {
	_c.mutation.SetRoutineDefinitionIds(v)
	return _c
}

// SetTimeBlocks sets the "time_blocks" field.
func (_c *DayTemplateCreate) SetTimeBlocks(v []domain.TimeBlock) *DayTemplateCreate {
	_c.mutation.SetTimeBlocks(v)
	return _c
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (_c *DayTemplateCreate) SetHighLevelPlan(v domain.HighLevelPlan) *DayTemplateCreate {
	_c.mutation.SetHighLevelPlan(v)
	return _c
}

// SetNillableHighLevelPlan sets the "high_level_plan" field if the given value is not nil.
func (_c *DayTemplateCreate) SetNillableHighLevelPlan(v *domain.HighLevelPlan) *DayTemplateCreate {
	if v != nil {
		_c.SetHighLevelPlan(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DayTemplateCreate) SetID(v uuid.UUID) *DayTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DayTemplateCreate) SetUser(v *User) *DayTemplateCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the DayTemplateMutation object of the builder.
func (_c *DayTemplateCreate) Mutation() *DayTemplateMutation {
	return _c.mutation
}

// Save creates the DayTemplate in the database.
func (_c *DayTemplateCreate) Save(ctx context.Context) (*DayTemplate, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DayTemplateCreate) SaveX(ctx context.Context) *DayTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DayTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DayTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DayTemplateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DayTemplate.user_id"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "DayTemplate.slug"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "DayTemplate.user"`)}
	}
	return nil
}

func (_c *DayTemplateCreate) sqlSave(ctx context.Context) (*DayTemplate, error) {
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

func (_c *DayTemplateCreate) createSpec() (*DayTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &DayTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(daytemplate.Table, sqlgraph.NewFieldSpec(daytemplate.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(daytemplate.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(daytemplate.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(daytemplate.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.RoutineDefinitionIds(); ok {
		_spec.SetField(daytemplate.FieldRoutineDefinitionIds, field.TypeJSON, value)
		_node.RoutineDefinitionIds = value
	}
	if value, ok := _c.mutation.TimeBlocks(); ok {
		_spec.SetField(daytemplate.FieldTimeBlocks, field.TypeJSON, value)
		_node.TimeBlocks = value
	}
	if value, ok := _c.mutation.HighLevelPlan(); ok {
		_spec.SetField(daytemplate.FieldHighLevelPlan, field.TypeJSON, value)
		_node.HighLevelPlan = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   daytemplate.UserTable,
			Columns: []string{daytemplate.UserColumn},
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
//	client.DayTemplate.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DayTemplateUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DayTemplateCreate) OnConflict(opts ...sql.ConflictOption) *DayTemplateUpsertOne {
	_c.conflict = opts
	return &DayTemplateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DayTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DayTemplateCreate) OnConflictColumns(columns ...string) *DayTemplateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DayTemplateUpsertOne{
		create: _c,
	}
}

type (
	// DayTemplateUpsertOne is the builder for "upsert"-ing
	//  one DayTemplate node.
	DayTemplateUpsertOne struct {
		create *DayTemplateCreate
	}

	// DayTemplateUpsert is the "OnConflict" setter.
	DayTemplateUpsert struct {
		*sql.UpdateSet
	}
)

// SetSlug sets the "slug" field.
func (u *DayTemplateUpsert) SetSlug(v string) *DayTemplateUpsert {
	u.Set(daytemplate.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *DayTemplateUpsert) UpdateSlug() *DayTemplateUpsert {
	u.SetExcluded(daytemplate.FieldSlug)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *DayTemplateUpsert) SetStartTime(v string) *DayTemplateUpsert {
	u.Set(daytemplate.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *DayTemplateUpsert) UpdateStartTime() *DayTemplateUpsert {
	u.SetExcluded(daytemplate.FieldStartTime)
	return u
}

// ClearStartTime clears the value of the "start_time" field.
func (u *DayTemplateUpsert) ClearStartTime() *DayTemplateUpsert {
	u.SetNull(daytemplate.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *DayTemplateUpsert) SetEndTime(v string) *DayTemplateUpsert {
	u.Set(daytemplate.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *DayTemplateUpsert) UpdateEndTime() *DayTemplateUpsert {
	u.SetExcluded(daytemplate.FieldEndTime)
	return u
}

// ClearEndTime clears the value of the "end_time" field.
func (u *DayTemplateUpsert) ClearEndTime() *DayTemplateUpsert {
	u.SetNull(daytemplate.FieldEndTime)
	return u
}

// SetRoutineDefinitionIds sets the "routine_definition_ids" field.
func (u *DayTemplateUpsert) SetRoutineDefinitionIds(v []uuid.UUID) *DayTemplateUpsert {
	u.Set(daytemplate.FieldRoutineDefinitionIds, v)
	return u
}

// UpdateRoutineDefinitionIds sets the "routine_definition_ids" field to the value that was provided on create.
func (u *DayTemplateUpsert) UpdateRoutineDefinitionIds() *DayTemplateUpsert {
	u.SetExcluded(daytemplate.FieldRoutineDefinitionIds)
	return u
}

// ClearRoutineDefinitionIds clears the value of the "routine_definition_ids" field.
func (u *DayTemplateUpsert) ClearRoutineDefinitionIds() *DayTemplateUpsert {
	u.SetNull(daytemplate.FieldRoutineDefinitionIds)
	return u
}

// SetTimeBlocks sets the "time_blocks" field.
func (u *DayTemplateUpsert) SetTimeBlocks(v []domain.TimeBlock) *DayTemplateUpsert {
	u.Set(daytemplate.FieldTimeBlocks, v)
	return u
}

// UpdateTimeBlocks sets the "time_blocks" field to the value that was provided on create.
func (u *DayTemplateUpsert) UpdateTimeBlocks() *DayTemplateUpsert {
	u.SetExcluded(daytemplate.FieldTimeBlocks)
	return u
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (u *DayTemplateUpsert) ClearTimeBlocks() *DayTemplateUpsert {
	u.SetNull(daytemplate.FieldTimeBlocks)
	return u
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (u *DayTemplateUpsert) SetHighLevelPlan(v domain.HighLevelPlan) *DayTemplateUpsert {
	u.Set(daytemplate.FieldHighLevelPlan, v)
	return u
}

// UpdateHighLevelPlan sets the "high_level_plan" field to the value that was provided on create.
func (u *DayTemplateUpsert) UpdateHighLevelPlan() *DayTemplateUpsert {
	u.SetExcluded(daytemplate.FieldHighLevelPlan)
	return u
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (u *DayTemplateUpsert) ClearHighLevelPlan() *DayTemplateUpsert {
	u.SetNull(daytemplate.FieldHighLevelPlan)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DayTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(daytemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DayTemplateUpsertOne) UpdateNewValues() *DayTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(daytemplate.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(daytemplate.FieldUserID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DayTemplate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DayTemplateUpsertOne) Ignore() *DayTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DayTemplateUpsertOne) DoNothing() *DayTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DayTemplateCreate.OnConflict
// documentation for more info.
func (u *DayTemplateUpsertOne) Update(set func(*DayTemplateUpsert)) *DayTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DayTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *DayTemplateUpsertOne) SetSlug(v string) *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *DayTemplateUpsertOne) UpdateSlug() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateSlug()
	})
}

// SetStartTime sets the "start_time" field.
func (u *DayTemplateUpsertOne) SetStartTime(v string) *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *DayTemplateUpsertOne) UpdateStartTime() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateStartTime()
	})
}

// ClearStartTime clears the value of the "start_time" field.
func (u *DayTemplateUpsertOne) ClearStartTime() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *DayTemplateUpsertOne) SetEndTime(v string) *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *DayTemplateUpsertOne) UpdateEndTime() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *DayTemplateUpsertOne) ClearEndTime() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearEndTime()
	})
}

// SetRoutineDefinitionIds sets the "routine_definition_ids" field.
func (u *DayTemplateUpsertOne) SetRoutineDefinitionIds(v []uuid.UUID) *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetRoutineDefinitionIds(v)
	})
}

// UpdateRoutineDefinitionIds sets the "routine_definition_ids" field to the value that was provided on create.
func (u *DayTemplateUpsertOne) UpdateRoutineDefinitionIds() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateRoutineDefinitionIds()
	})
}

// ClearRoutineDefinitionIds clears the value of the "routine_definition_ids" field.
func (u *DayTemplateUpsertOne) ClearRoutineDefinitionIds() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearRoutineDefinitionIds()
	})
}

// SetTimeBlocks sets the "time_blocks" field.
func (u *DayTemplateUpsertOne) SetTimeBlocks(v []domain.TimeBlock) *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetTimeBlocks(v)
	})
}

// UpdateTimeBlocks sets the "time_blocks" field to the value that was provided on create.
func (u *DayTemplateUpsertOne) UpdateTimeBlocks() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateTimeBlocks()
	})
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (u *DayTemplateUpsertOne) ClearTimeBlocks() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearTimeBlocks()
	})
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (u *DayTemplateUpsertOne) SetHighLevelPlan(v domain.HighLevelPlan) *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetHighLevelPlan(v)
	})
}

// UpdateHighLevelPlan sets the "high_level_plan" field to the value that was provided on create.
func (u *DayTemplateUpsertOne) UpdateHighLevelPlan() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateHighLevelPlan()
	})
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (u *DayTemplateUpsertOne) ClearHighLevelPlan() *DayTemplateUpsertOne {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearHighLevelPlan()
	})
}

// Exec executes the query.
func (u *DayTemplateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DayTemplateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DayTemplateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DayTemplateUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DayTemplateUpsertOne.ID is not supported by MySQL driver. Use DayTemplateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DayTemplateUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DayTemplateCreateBulk is the builder for creating many DayTemplate entities in bulk.
type DayTemplateCreateBulk struct {
	config
	err      error
	builders []*DayTemplateCreate
	conflict []sql.ConflictOption
}

// Save creates the DayTemplate entities in the database.
func (_c *DayTemplateCreateBulk) Save(ctx context.Context) ([]*DayTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DayTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DayTemplateMutation)
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
func (_c *DayTemplateCreateBulk) SaveX(ctx context.Context) []*DayTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DayTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DayTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DayTemplate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DayTemplateUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DayTemplateCreateBulk) OnConflict(opts ...sql.ConflictOption) *DayTemplateUpsertBulk {
	_c.conflict = opts
	return &DayTemplateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DayTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DayTemplateCreateBulk) OnConflictColumns(columns ...string) *DayTemplateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DayTemplateUpsertBulk{
		create: _c,
	}
}

// DayTemplateUpsertBulk is the builder for "upsert"-ing
// a bulk of DayTemplate nodes.
type DayTemplateUpsertBulk struct {
	create *DayTemplateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DayTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(daytemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DayTemplateUpsertBulk) UpdateNewValues() *DayTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(daytemplate.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(daytemplate.FieldUserID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DayTemplate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DayTemplateUpsertBulk) Ignore() *DayTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DayTemplateUpsertBulk) DoNothing() *DayTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DayTemplateCreateBulk.OnConflict
// documentation for more info.
func (u *DayTemplateUpsertBulk) Update(set func(*DayTemplateUpsert)) *DayTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DayTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *DayTemplateUpsertBulk) SetSlug(v string) *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *DayTemplateUpsertBulk) UpdateSlug() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateSlug()
	})
}

// SetStartTime sets the "start_time" field.
func (u *DayTemplateUpsertBulk) SetStartTime(v string) *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *DayTemplateUpsertBulk) UpdateStartTime() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateStartTime()
	})
}

// ClearStartTime clears the value of the "start_time" field.
func (u *DayTemplateUpsertBulk) ClearStartTime() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *DayTemplateUpsertBulk) SetEndTime(v string) *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *DayTemplateUpsertBulk) UpdateEndTime() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *DayTemplateUpsertBulk) ClearEndTime() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearEndTime()
	})
}

// SetRoutineDefinitionIds sets the "routine_definition_ids" field.
func (u *DayTemplateUpsertBulk) SetRoutineDefinitionIds(v []uuid.UUID) *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetRoutineDefinitionIds(v)
	})
}

// UpdateRoutineDefinitionIds sets the "routine_definition_ids" field to the value that was provided on create.
func (u *DayTemplateUpsertBulk) UpdateRoutineDefinitionIds() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateRoutineDefinitionIds()
	})
}

// ClearRoutineDefinitionIds clears the value of the "routine_definition_ids" field.
func (u *DayTemplateUpsertBulk) ClearRoutineDefinitionIds() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearRoutineDefinitionIds()
	})
}

// SetTimeBlocks sets the "time_blocks" field.
func (u *DayTemplateUpsertBulk) SetTimeBlocks(v []domain.TimeBlock) *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetTimeBlocks(v)
	})
}

// UpdateTimeBlocks sets the "time_blocks" field to the value that was provided on create.
func (u *DayTemplateUpsertBulk) UpdateTimeBlocks() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateTimeBlocks()
	})
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (u *DayTemplateUpsertBulk) ClearTimeBlocks() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearTimeBlocks()
	})
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (u *DayTemplateUpsertBulk) SetHighLevelPlan(v domain.HighLevelPlan) *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.SetHighLevelPlan(v)
	})
}

// UpdateHighLevelPlan sets the "high_level_plan" field to the value that was provided on create.
func (u *DayTemplateUpsertBulk) UpdateHighLevelPlan() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.UpdateHighLevelPlan()
	})
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (u *DayTemplateUpsertBulk) ClearHighLevelPlan() *DayTemplateUpsertBulk {
	return u.Update(func(s *DayTemplateUpsert) {
		s.ClearHighLevelPlan()
	})
}

// Exec executes the query.
func (u *DayTemplateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DayTemplateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DayTemplateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DayTemplateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
