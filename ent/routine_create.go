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
	"github.com/daybreakhq/daybreak/ent/routine"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// RoutineCreate is the builder for creating a Routine entity.
type RoutineCreate struct {
	config
	mutation *RoutineMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *RoutineCreate) SetUserID(v uuid.UUID) *RoutineCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RoutineCreate) SetName(v string) *RoutineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *RoutineCreate) SetSchedule(v domain.RecurrenceSchedule) *RoutineCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetRoutineTasks sets the "routine_tasks" field.
func (_c *RoutineCreate) SetRoutineTasks(v []domain.RoutineTask) *RoutineCreate {
	_c.mutation.SetRoutineTasks(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *RoutineCreate) SetTags(v []string) *RoutineCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RoutineCreate) SetID(v uuid.UUID) *RoutineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *RoutineCreate) SetUser(v *User) *RoutineCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the RoutineMutation object of the builder.
func (_c *RoutineCreate) Mutation() *RoutineMutation {
	return _c.mutation
}

// Save creates the Routine in the database.
func (_c *RoutineCreate) Save(ctx context.Context) (*Routine, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutineCreate) SaveX(ctx context.Context) *Routine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutineCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Routine.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Routine.name"`)}
	}
	if _, ok := _c.mutation.Schedule(); !ok {
		return &ValidationError{Name: "schedule", err: errors.New(`ent: missing required field "Routine.schedule"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Routine.user"`)}
	}
	return nil
}

func (_c *RoutineCreate) sqlSave(ctx context.Context) (*Routine, error) {
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

func (_c *RoutineCreate) createSpec() (*Routine, *sqlgraph.CreateSpec) {
	var (
		_node = &Routine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routine.Table, sqlgraph.NewFieldSpec(routine.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(routine.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(routine.FieldSchedule, field.TypeJSON, value)
		_node.Schedule = value
	}
	if value, ok := _c.mutation.RoutineTasks(); ok {
		_spec.SetField(routine.FieldRoutineTasks, field.TypeJSON, value)
		_node.RoutineTasks = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(routine.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routine.UserTable,
			Columns: []string{routine.UserColumn},
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
//	client.Routine.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineCreate) OnConflict(opts ...sql.ConflictOption) *RoutineUpsertOne {
	_c.conflict = opts
	return &RoutineUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineCreate) OnConflictColumns(columns ...string) *RoutineUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineUpsertOne{
		create: _c,
	}
}

type (
	// RoutineUpsertOne is the builder for "upsert"-ing
	//  one Routine node.
	RoutineUpsertOne struct {
		create *RoutineCreate
	}

	// RoutineUpsert is the "OnConflict" setter.
	RoutineUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *RoutineUpsert) SetName(v string) *RoutineUpsert {
	u.Set(routine.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateName() *RoutineUpsert {
	u.SetExcluded(routine.FieldName)
	return u
}

// SetSchedule sets the "schedule" field.
func (u *RoutineUpsert) SetSchedule(v domain.RecurrenceSchedule) *RoutineUpsert {
	u.Set(routine.FieldSchedule, v)
	return u
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateSchedule() *RoutineUpsert {
	u.SetExcluded(routine.FieldSchedule)
	return u
}

// SetRoutineTasks sets the "routine_tasks" field.
func (u *RoutineUpsert) SetRoutineTasks(v []domain.RoutineTask) *RoutineUpsert {
	u.Set(routine.FieldRoutineTasks, v)
	return u
}

// UpdateRoutineTasks sets the "routine_tasks" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateRoutineTasks() *RoutineUpsert {
	u.SetExcluded(routine.FieldRoutineTasks)
	return u
}

// ClearRoutineTasks clears the value of the "routine_tasks" field.
func (u *RoutineUpsert) ClearRoutineTasks() *RoutineUpsert {
	u.SetNull(routine.FieldRoutineTasks)
	return u
}

// SetTags sets the "tags" field.
func (u *RoutineUpsert) SetTags(v []string) *RoutineUpsert {
	u.Set(routine.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateTags() *RoutineUpsert {
	u.SetExcluded(routine.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *RoutineUpsert) ClearTags() *RoutineUpsert {
	u.SetNull(routine.FieldTags)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routine.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineUpsertOne) UpdateNewValues() *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(routine.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(routine.FieldUserID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Routine.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoutineUpsertOne) Ignore() *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineUpsertOne) DoNothing() *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineCreate.OnConflict
// documentation for more info.
func (u *RoutineUpsertOne) Update(set func(*RoutineUpsert)) *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RoutineUpsertOne) SetName(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateName() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateName()
	})
}

// SetSchedule sets the "schedule" field.
func (u *RoutineUpsertOne) SetSchedule(v domain.RecurrenceSchedule) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateSchedule() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateSchedule()
	})
}

// SetRoutineTasks sets the "routine_tasks" field.
func (u *RoutineUpsertOne) SetRoutineTasks(v []domain.RoutineTask) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetRoutineTasks(v)
	})
}

// UpdateRoutineTasks sets the "routine_tasks" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateRoutineTasks() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateRoutineTasks()
	})
}

// ClearRoutineTasks clears the value of the "routine_tasks" field.
func (u *RoutineUpsertOne) ClearRoutineTasks() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearRoutineTasks()
	})
}

// SetTags sets the "tags" field.
func (u *RoutineUpsertOne) SetTags(v []string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateTags() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *RoutineUpsertOne) ClearTags() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearTags()
	})
}

// Exec executes the query.
func (u *RoutineUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutineCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoutineUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RoutineUpsertOne.ID is not supported by MySQL driver. Use RoutineUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoutineUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoutineCreateBulk is the builder for creating many Routine entities in bulk.
type RoutineCreateBulk struct {
	config
	err      error
	builders []*RoutineCreate
	conflict []sql.ConflictOption
}

// Save creates the Routine entities in the database.
func (_c *RoutineCreateBulk) Save(ctx context.Context) ([]*Routine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Routine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutineMutation)
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
func (_c *RoutineCreateBulk) SaveX(ctx context.Context) []*Routine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Routine.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoutineUpsertBulk {
	_c.conflict = opts
	return &RoutineUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineCreateBulk) OnConflictColumns(columns ...string) *RoutineUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineUpsertBulk{
		create: _c,
	}
}

// RoutineUpsertBulk is the builder for "upsert"-ing
// a bulk of Routine nodes.
type RoutineUpsertBulk struct {
	create *RoutineCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routine.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineUpsertBulk) UpdateNewValues() *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(routine.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(routine.FieldUserID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoutineUpsertBulk) Ignore() *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineUpsertBulk) DoNothing() *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineCreateBulk.OnConflict
// documentation for more info.
func (u *RoutineUpsertBulk) Update(set func(*RoutineUpsert)) *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RoutineUpsertBulk) SetName(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateName() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateName()
	})
}

// SetSchedule sets the "schedule" field.
func (u *RoutineUpsertBulk) SetSchedule(v domain.RecurrenceSchedule) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateSchedule() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateSchedule()
	})
}

// SetRoutineTasks sets the "routine_tasks" field.
func (u *RoutineUpsertBulk) SetRoutineTasks(v []domain.RoutineTask) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetRoutineTasks(v)
	})
}

// UpdateRoutineTasks sets the "routine_tasks" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateRoutineTasks() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateRoutineTasks()
	})
}

// ClearRoutineTasks clears the value of the "routine_tasks" field.
func (u *RoutineUpsertBulk) ClearRoutineTasks() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearRoutineTasks()
	})
}

// SetTags sets the "tags" field.
func (u *RoutineUpsertBulk) SetTags(v []string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateTags() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *RoutineUpsertBulk) ClearTags() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.ClearTags()
	})
}

// Exec executes the query.
func (u *RoutineUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoutineCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutineCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
