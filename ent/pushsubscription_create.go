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
	"github.com/daybreakhq/daybreak/ent/pushsubscription"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/google/uuid"
)

// PushSubscriptionCreate is the builder for creating a PushSubscription entity.
type PushSubscriptionCreate struct {
	config
	mutation *PushSubscriptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PushSubscriptionCreate) SetUserID(v uuid.UUID) *PushSubscriptionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *PushSubscriptionCreate) SetEndpoint(v string) *PushSubscriptionCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetKeys sets the "keys" field.
func (_c *PushSubscriptionCreate) SetKeys(v map[string]string) *PushSubscriptionCreate {
	_c.mutation.SetKeys(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PushSubscriptionCreate) SetCreatedAt(v time.Time) *PushSubscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PushSubscriptionCreate) SetNillableCreatedAt(v *time.Time) *PushSubscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PushSubscriptionCreate) SetID(v uuid.UUID) *PushSubscriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PushSubscriptionCreate) SetUser(v *User) *PushSubscriptionCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the PushSubscriptionMutation object of the builder.
func (_c *PushSubscriptionCreate) Mutation() *PushSubscriptionMutation {
	return _c.mutation
}

// Save creates the PushSubscription in the database.
func (_c *PushSubscriptionCreate) Save(ctx context.Context) (*PushSubscription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PushSubscriptionCreate) SaveX(ctx context.Context) *PushSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushSubscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushSubscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PushSubscriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pushsubscription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PushSubscriptionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PushSubscription.user_id"`)}
	}
	if _, ok := _c.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "PushSubscription.endpoint"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PushSubscription.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "PushSubscription.user"`)}
	}
	return nil
}

func (_c *PushSubscriptionCreate) sqlSave(ctx context.Context) (*PushSubscription, error) {
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

func (_c *PushSubscriptionCreate) createSpec() (*PushSubscription, *sqlgraph.CreateSpec) {
	var (
		_node = &PushSubscription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pushsubscription.Table, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(pushsubscription.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.Keys(); ok {
		_spec.SetField(pushsubscription.FieldKeys, field.TypeJSON, value)
		_node.Keys = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pushsubscription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pushsubscription.UserTable,
			Columns: []string{pushsubscription.UserColumn},
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
//	client.PushSubscription.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushSubscriptionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushSubscriptionCreate) OnConflict(opts ...sql.ConflictOption) *PushSubscriptionUpsertOne {
	_c.conflict = opts
	return &PushSubscriptionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushSubscriptionCreate) OnConflictColumns(columns ...string) *PushSubscriptionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushSubscriptionUpsertOne{
		create: _c,
	}
}

type (
	// PushSubscriptionUpsertOne is the builder for "upsert"-ing
	//  one PushSubscription node.
	PushSubscriptionUpsertOne struct {
		create *PushSubscriptionCreate
	}

	// PushSubscriptionUpsert is the "OnConflict" setter.
	PushSubscriptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetEndpoint sets the "endpoint" field.
func (u *PushSubscriptionUpsert) SetEndpoint(v string) *PushSubscriptionUpsert {
	u.Set(pushsubscription.FieldEndpoint, v)
	return u
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *PushSubscriptionUpsert) UpdateEndpoint() *PushSubscriptionUpsert {
	u.SetExcluded(pushsubscription.FieldEndpoint)
	return u
}

// SetKeys sets the "keys" field.
func (u *PushSubscriptionUpsert) SetKeys(v map[string]string) *PushSubscriptionUpsert {
	u.Set(pushsubscription.FieldKeys, v)
	return u
}

// UpdateKeys sets the "keys" field to the value that was provided on create.
func (u *PushSubscriptionUpsert) UpdateKeys() *PushSubscriptionUpsert {
	u.SetExcluded(pushsubscription.FieldKeys)
	return u
}

// ClearKeys clears the value of the "keys" field.
func (u *PushSubscriptionUpsert) ClearKeys() *PushSubscriptionUpsert {
	u.SetNull(pushsubscription.FieldKeys)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushsubscription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushSubscriptionUpsertOne) UpdateNewValues() *PushSubscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pushsubscription.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(pushsubscription.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pushsubscription.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PushSubscriptionUpsertOne) Ignore() *PushSubscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushSubscriptionUpsertOne) DoNothing() *PushSubscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushSubscriptionCreate.OnConflict
// documentation for more info.
func (u *PushSubscriptionUpsertOne) Update(set func(*PushSubscriptionUpsert)) *PushSubscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushSubscriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetEndpoint sets the "endpoint" field.
func (u *PushSubscriptionUpsertOne) SetEndpoint(v string) *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *PushSubscriptionUpsertOne) UpdateEndpoint() *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateEndpoint()
	})
}

// SetKeys sets the "keys" field.
func (u *PushSubscriptionUpsertOne) SetKeys(v map[string]string) *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetKeys(v)
	})
}

// UpdateKeys sets the "keys" field to the value that was provided on create.
func (u *PushSubscriptionUpsertOne) UpdateKeys() *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateKeys()
	})
}

// ClearKeys clears the value of the "keys" field.
func (u *PushSubscriptionUpsertOne) ClearKeys() *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.ClearKeys()
	})
}

// Exec executes the query.
func (u *PushSubscriptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushSubscriptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushSubscriptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PushSubscriptionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PushSubscriptionUpsertOne.ID is not supported by MySQL driver. Use PushSubscriptionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PushSubscriptionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PushSubscriptionCreateBulk is the builder for creating many PushSubscription entities in bulk.
type PushSubscriptionCreateBulk struct {
	config
	err      error
	builders []*PushSubscriptionCreate
	conflict []sql.ConflictOption
}

// Save creates the PushSubscription entities in the database.
func (_c *PushSubscriptionCreateBulk) Save(ctx context.Context) ([]*PushSubscription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PushSubscription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PushSubscriptionMutation)
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
func (_c *PushSubscriptionCreateBulk) SaveX(ctx context.Context) []*PushSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushSubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushSubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushSubscription.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushSubscriptionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushSubscriptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PushSubscriptionUpsertBulk {
	_c.conflict = opts
	return &PushSubscriptionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushSubscriptionCreateBulk) OnConflictColumns(columns ...string) *PushSubscriptionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushSubscriptionUpsertBulk{
		create: _c,
	}
}

// PushSubscriptionUpsertBulk is the builder for "upsert"-ing
// a bulk of PushSubscription nodes.
type PushSubscriptionUpsertBulk struct {
	create *PushSubscriptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushsubscription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushSubscriptionUpsertBulk) UpdateNewValues() *PushSubscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pushsubscription.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(pushsubscription.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pushsubscription.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PushSubscriptionUpsertBulk) Ignore() *PushSubscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushSubscriptionUpsertBulk) DoNothing() *PushSubscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushSubscriptionCreateBulk.OnConflict
// documentation for more info.
func (u *PushSubscriptionUpsertBulk) Update(set func(*PushSubscriptionUpsert)) *PushSubscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushSubscriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetEndpoint sets the "endpoint" field.
func (u *PushSubscriptionUpsertBulk) SetEndpoint(v string) *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetEndpoint(v)
	})
}

// UpdateEndpoint sets the "endpoint" field to the value that was provided on create.
func (u *PushSubscriptionUpsertBulk) UpdateEndpoint() *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateEndpoint()
	})
}

// SetKeys sets the "keys" field.
func (u *PushSubscriptionUpsertBulk) SetKeys(v map[string]string) *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetKeys(v)
	})
}

// UpdateKeys sets the "keys" field to the value that was provided on create.
func (u *PushSubscriptionUpsertBulk) UpdateKeys() *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateKeys()
	})
}

// ClearKeys clears the value of the "keys" field.
func (u *PushSubscriptionUpsertBulk) ClearKeys() *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.ClearKeys()
	})
}

// Exec executes the query.
func (u *PushSubscriptionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PushSubscriptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushSubscriptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushSubscriptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
