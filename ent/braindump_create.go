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
	"github.com/daybreakhq/daybreak/ent/braindump"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// BrainDumpCreate is the builder for creating a BrainDump entity.
type BrainDumpCreate struct {
	config
	mutation *BrainDumpMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *BrainDumpCreate) SetUserID(v uuid.UUID) *BrainDumpCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *BrainDumpCreate) SetDate(v string) *BrainDumpCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *BrainDumpCreate) SetItems(v []domain.BrainDumpItem) *BrainDumpCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BrainDumpCreate) SetID(v uuid.UUID) *BrainDumpCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *BrainDumpCreate) SetUser(v *User) *BrainDumpCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the BrainDumpMutation object of the builder.
func (_c *BrainDumpCreate) Mutation() *BrainDumpMutation {
	return _c.mutation
}

// Save creates the BrainDump in the database.
func (_c *BrainDumpCreate) Save(ctx context.Context) (*BrainDump, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BrainDumpCreate) SaveX(ctx context.Context) *BrainDump {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrainDumpCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrainDumpCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BrainDumpCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BrainDump.user_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "BrainDump.date"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "BrainDump.user"`)}
	}
	return nil
}

func (_c *BrainDumpCreate) sqlSave(ctx context.Context) (*BrainDump, error) {
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

func (_c *BrainDumpCreate) createSpec() (*BrainDump, *sqlgraph.CreateSpec) {
	var (
		_node = &BrainDump{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(braindump.Table, sqlgraph.NewFieldSpec(braindump.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(braindump.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(braindump.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   braindump.UserTable,
			Columns: []string{braindump.UserColumn},
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
//	client.BrainDump.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BrainDumpUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *BrainDumpCreate) OnConflict(opts ...sql.ConflictOption) *BrainDumpUpsertOne {
	_c.conflict = opts
	return &BrainDumpUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BrainDump.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BrainDumpCreate) OnConflictColumns(columns ...string) *BrainDumpUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BrainDumpUpsertOne{
		create: _c,
	}
}

type (
	// BrainDumpUpsertOne is the builder for "upsert"-ing
	//  one BrainDump node.
	BrainDumpUpsertOne struct {
		create *BrainDumpCreate
	}

	// BrainDumpUpsert is the "OnConflict" setter.
	BrainDumpUpsert struct {
		*sql.UpdateSet
	}
)

// SetItems sets the "items" field.
func (u *BrainDumpUpsert) SetItems(v []domain.BrainDumpItem) *BrainDumpUpsert {
	u.Set(braindump.FieldItems, v)
	return u
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *BrainDumpUpsert) UpdateItems() *BrainDumpUpsert {
	u.SetExcluded(braindump.FieldItems)
	return u
}

// ClearItems clears the value of the "items" field.
func (u *BrainDumpUpsert) ClearItems() *BrainDumpUpsert {
	u.SetNull(braindump.FieldItems)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BrainDump.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(braindump.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BrainDumpUpsertOne) UpdateNewValues() *BrainDumpUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(braindump.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(braindump.FieldUserID)
		}
		if _, exists := u.create.mutation.Date(); exists {
			s.SetIgnore(braindump.FieldDate)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BrainDump.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BrainDumpUpsertOne) Ignore() *BrainDumpUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BrainDumpUpsertOne) DoNothing() *BrainDumpUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BrainDumpCreate.OnConflict
// documentation for more info.
func (u *BrainDumpUpsertOne) Update(set func(*BrainDumpUpsert)) *BrainDumpUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BrainDumpUpsert{UpdateSet: update})
	}))
	return u
}

// SetItems sets the "items" field.
func (u *BrainDumpUpsertOne) SetItems(v []domain.BrainDumpItem) *BrainDumpUpsertOne {
	return u.Update(func(s *BrainDumpUpsert) {
		s.SetItems(v)
	})
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *BrainDumpUpsertOne) UpdateItems() *BrainDumpUpsertOne {
	return u.Update(func(s *BrainDumpUpsert) {
		s.UpdateItems()
	})
}

// ClearItems clears the value of the "items" field.
func (u *BrainDumpUpsertOne) ClearItems() *BrainDumpUpsertOne {
	return u.Update(func(s *BrainDumpUpsert) {
		s.ClearItems()
	})
}

// Exec executes the query.
func (u *BrainDumpUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BrainDumpCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BrainDumpUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BrainDumpUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BrainDumpUpsertOne.ID is not supported by MySQL driver. Use BrainDumpUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BrainDumpUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BrainDumpCreateBulk is the builder for creating many BrainDump entities in bulk.
type BrainDumpCreateBulk struct {
	config
	err      error
	builders []*BrainDumpCreate
	conflict []sql.ConflictOption
}

// Save creates the BrainDump entities in the database.
func (_c *BrainDumpCreateBulk) Save(ctx context.Context) ([]*BrainDump, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BrainDump, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BrainDumpMutation)
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
func (_c *BrainDumpCreateBulk) SaveX(ctx context.Context) []*BrainDump {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrainDumpCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrainDumpCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BrainDump.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BrainDumpUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *BrainDumpCreateBulk) OnConflict(opts ...sql.ConflictOption) *BrainDumpUpsertBulk {
	_c.conflict = opts
	return &BrainDumpUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BrainDump.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BrainDumpCreateBulk) OnConflictColumns(columns ...string) *BrainDumpUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BrainDumpUpsertBulk{
		create: _c,
	}
}

// BrainDumpUpsertBulk is the builder for "upsert"-ing
// a bulk of BrainDump nodes.
type BrainDumpUpsertBulk struct {
	create *BrainDumpCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BrainDump.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(braindump.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BrainDumpUpsertBulk) UpdateNewValues() *BrainDumpUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(braindump.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(braindump.FieldUserID)
			}
			if _, exists := b.mutation.Date(); exists {
				s.SetIgnore(braindump.FieldDate)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BrainDump.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BrainDumpUpsertBulk) Ignore() *BrainDumpUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BrainDumpUpsertBulk) DoNothing() *BrainDumpUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BrainDumpCreateBulk.OnConflict
// documentation for more info.
func (u *BrainDumpUpsertBulk) Update(set func(*BrainDumpUpsert)) *BrainDumpUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BrainDumpUpsert{UpdateSet: update})
	}))
	return u
}

// SetItems sets the "items" field.
func (u *BrainDumpUpsertBulk) SetItems(v []domain.BrainDumpItem) *BrainDumpUpsertBulk {
	return u.Update(func(s *BrainDumpUpsert) {
		s.SetItems(v)
	})
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *BrainDumpUpsertBulk) UpdateItems() *BrainDumpUpsertBulk {
	return u.Update(func(s *BrainDumpUpsert) {
		s.UpdateItems()
	})
}

// ClearItems clears the value of the "items" field.
func (u *BrainDumpUpsertBulk) ClearItems() *BrainDumpUpsertBulk {
	return u.Update(func(s *BrainDumpUpsert) {
		s.ClearItems()
	})
}

// Exec executes the query.
func (u *BrainDumpUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BrainDumpCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BrainDumpCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BrainDumpUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
