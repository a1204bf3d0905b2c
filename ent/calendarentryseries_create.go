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
	"github.com/daybreakhq/daybreak/ent/calendarentryseries"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/google/uuid"
)

// CalendarEntrySeriesCreate is the builder for creating a CalendarEntrySeries entity.
type CalendarEntrySeriesCreate struct {
	config
	mutation *CalendarEntrySeriesMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CalendarEntrySeriesCreate) SetUserID(v uuid.UUID) *CalendarEntrySeriesCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *CalendarEntrySeriesCreate) SetPlatform(v string) *CalendarEntrySeriesCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetPlatformID sets the "platform_id" field.
func (_c *CalendarEntrySeriesCreate) SetPlatformID(v string) *CalendarEntrySeriesCreate {
	_c.mutation.SetPlatformID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CalendarEntrySeriesCreate) SetName(v string) *CalendarEntrySeriesCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *CalendarEntrySeriesCreate) SetFrequency(v string) *CalendarEntrySeriesCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *CalendarEntrySeriesCreate) SetNillableFrequency(v *string) *CalendarEntrySeriesCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetEventCategory sets the "event_category" field.
func (_c *CalendarEntrySeriesCreate) SetEventCategory(v string) *CalendarEntrySeriesCreate {
	_c.mutation.SetEventCategory(v)
	return _c
}

// SetNillableEventCategory sets the "event_category" field if the given value is not nil.
func (_c *CalendarEntrySeriesCreate) SetNillableEventCategory(v *string) *CalendarEntrySeriesCreate {
	if v != nil {
		_c.SetEventCategory(*v)
	}
	return _c
}

// SetRecurrence sets the "recurrence" field.
func (_c *CalendarEntrySeriesCreate) SetRecurrence(v string) *CalendarEntrySeriesCreate {
	_c.mutation.SetRecurrence(v)
	return _c
}

// SetNillableRecurrence sets the "recurrence" field if the given value is not nil.
func (_c *CalendarEntrySeriesCreate) SetNillableRecurrence(v *string) *CalendarEntrySeriesCreate {
	if v != nil {
		_c.SetRecurrence(*v)
	}
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *CalendarEntrySeriesCreate) SetStartsAt(v time.Time) *CalendarEntrySeriesCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *CalendarEntrySeriesCreate) SetEndsAt(v time.Time) *CalendarEntrySeriesCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_c *CalendarEntrySeriesCreate) SetNillableEndsAt(v *time.Time) *CalendarEntrySeriesCreate {
	if v != nil {
		_c.SetEndsAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarEntrySeriesCreate) SetID(v uuid.UUID) *CalendarEntrySeriesCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CalendarEntrySeriesCreate) SetUser(v *User) *CalendarEntrySeriesCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the CalendarEntrySeriesMutation object of the builder.
func (_c *CalendarEntrySeriesCreate) Mutation() *CalendarEntrySeriesMutation {
	return _c.mutation
}

// Save creates the CalendarEntrySeries in the database.
func (_c *CalendarEntrySeriesCreate) Save(ctx context.Context) (*CalendarEntrySeries, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarEntrySeriesCreate) SaveX(ctx context.Context) *CalendarEntrySeries {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEntrySeriesCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEntrySeriesCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarEntrySeriesCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CalendarEntrySeries.user_id"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "CalendarEntrySeries.platform"`)}
	}
	if _, ok := _c.mutation.PlatformID(); !ok {
		return &ValidationError{Name: "platform_id", err: errors.New(`ent: missing required field "CalendarEntrySeries.platform_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CalendarEntrySeries.name"`)}
	}
	if _, ok := _c.mutation.StartsAt(); !ok {
		return &ValidationError{Name: "starts_at", err: errors.New(`ent: missing required field "CalendarEntrySeries.starts_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "CalendarEntrySeries.user"`)}
	}
	return nil
}

func (_c *CalendarEntrySeriesCreate) sqlSave(ctx context.Context) (*CalendarEntrySeries, error) {
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

func (_c *CalendarEntrySeriesCreate) createSpec() (*CalendarEntrySeries, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarEntrySeries{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarentryseries.Table, sqlgraph.NewFieldSpec(calendarentryseries.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(calendarentryseries.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.PlatformID(); ok {
		_spec.SetField(calendarentryseries.FieldPlatformID, field.TypeString, value)
		_node.PlatformID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(calendarentryseries.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(calendarentryseries.FieldFrequency, field.TypeString, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.EventCategory(); ok {
		_spec.SetField(calendarentryseries.FieldEventCategory, field.TypeString, value)
		_node.EventCategory = value
	}
	if value, ok := _c.mutation.Recurrence(); ok {
		_spec.SetField(calendarentryseries.FieldRecurrence, field.TypeString, value)
		_node.Recurrence = value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(calendarentryseries.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(calendarentryseries.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarentryseries.UserTable,
			Columns: []string{calendarentryseries.UserColumn},
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
//	client.CalendarEntrySeries.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarEntrySeriesUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarEntrySeriesCreate) OnConflict(opts ...sql.ConflictOption) *CalendarEntrySeriesUpsertOne {
	_c.conflict = opts
	return &CalendarEntrySeriesUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarEntrySeries.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarEntrySeriesCreate) OnConflictColumns(columns ...string) *CalendarEntrySeriesUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarEntrySeriesUpsertOne{
		create: _c,
	}
}

type (
	// CalendarEntrySeriesUpsertOne is the builder for "upsert"-ing
	//  one CalendarEntrySeries node.
	CalendarEntrySeriesUpsertOne struct {
		create *CalendarEntrySeriesCreate
	}

	// CalendarEntrySeriesUpsert is the "OnConflict" setter.
	CalendarEntrySeriesUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CalendarEntrySeriesUpsert) SetName(v string) *CalendarEntrySeriesUpsert {
	u.Set(calendarentryseries.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsert) UpdateName() *CalendarEntrySeriesUpsert {
	u.SetExcluded(calendarentryseries.FieldName)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *CalendarEntrySeriesUpsert) SetFrequency(v string) *CalendarEntrySeriesUpsert {
	u.Set(calendarentryseries.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsert) UpdateFrequency() *CalendarEntrySeriesUpsert {
	u.SetExcluded(calendarentryseries.FieldFrequency)
	return u
}

// ClearFrequency clears the value of the "frequency" field.
func (u *CalendarEntrySeriesUpsert) ClearFrequency() *CalendarEntrySeriesUpsert {
	u.SetNull(calendarentryseries.FieldFrequency)
	return u
}

// SetEventCategory sets the "event_category" field.
func (u *CalendarEntrySeriesUpsert) SetEventCategory(v string) *CalendarEntrySeriesUpsert {
	u.Set(calendarentryseries.FieldEventCategory, v)
	return u
}

// UpdateEventCategory sets the "event_category" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsert) UpdateEventCategory() *CalendarEntrySeriesUpsert {
	u.SetExcluded(calendarentryseries.FieldEventCategory)
	return u
}

// ClearEventCategory clears the value of the "event_category" field.
func (u *CalendarEntrySeriesUpsert) ClearEventCategory() *CalendarEntrySeriesUpsert {
	u.SetNull(calendarentryseries.FieldEventCategory)
	return u
}

// SetRecurrence sets the "recurrence" field.
func (u *CalendarEntrySeriesUpsert) SetRecurrence(v string) *CalendarEntrySeriesUpsert {
	u.Set(calendarentryseries.FieldRecurrence, v)
	return u
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsert) UpdateRecurrence() *CalendarEntrySeriesUpsert {
	u.SetExcluded(calendarentryseries.FieldRecurrence)
	return u
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *CalendarEntrySeriesUpsert) ClearRecurrence() *CalendarEntrySeriesUpsert {
	u.SetNull(calendarentryseries.FieldRecurrence)
	return u
}

// SetStartsAt sets the "starts_at" field.
func (u *CalendarEntrySeriesUpsert) SetStartsAt(v time.Time) *CalendarEntrySeriesUpsert {
	u.Set(calendarentryseries.FieldStartsAt, v)
	return u
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsert) UpdateStartsAt() *CalendarEntrySeriesUpsert {
	u.SetExcluded(calendarentryseries.FieldStartsAt)
	return u
}

// SetEndsAt sets the "ends_at" field.
func (u *CalendarEntrySeriesUpsert) SetEndsAt(v time.Time) *CalendarEntrySeriesUpsert {
	u.Set(calendarentryseries.FieldEndsAt, v)
	return u
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsert) UpdateEndsAt() *CalendarEntrySeriesUpsert {
	u.SetExcluded(calendarentryseries.FieldEndsAt)
	return u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (u *CalendarEntrySeriesUpsert) ClearEndsAt() *CalendarEntrySeriesUpsert {
	u.SetNull(calendarentryseries.FieldEndsAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CalendarEntrySeries.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarentryseries.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarEntrySeriesUpsertOne) UpdateNewValues() *CalendarEntrySeriesUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(calendarentryseries.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(calendarentryseries.FieldUserID)
		}
		if _, exists := u.create.mutation.Platform(); exists {
			s.SetIgnore(calendarentryseries.FieldPlatform)
		}
		if _, exists := u.create.mutation.PlatformID(); exists {
			s.SetIgnore(calendarentryseries.FieldPlatformID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarEntrySeries.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CalendarEntrySeriesUpsertOne) Ignore() *CalendarEntrySeriesUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarEntrySeriesUpsertOne) DoNothing() *CalendarEntrySeriesUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarEntrySeriesCreate.OnConflict
// documentation for more info.
func (u *CalendarEntrySeriesUpsertOne) Update(set func(*CalendarEntrySeriesUpsert)) *CalendarEntrySeriesUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarEntrySeriesUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CalendarEntrySeriesUpsertOne) SetName(v string) *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertOne) UpdateName() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateName()
	})
}

// SetFrequency sets the "frequency" field.
func (u *CalendarEntrySeriesUpsertOne) SetFrequency(v string) *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertOne) UpdateFrequency() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateFrequency()
	})
}

// ClearFrequency clears the value of the "frequency" field.
func (u *CalendarEntrySeriesUpsertOne) ClearFrequency() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.ClearFrequency()
	})
}

// SetEventCategory sets the "event_category" field.
func (u *CalendarEntrySeriesUpsertOne) SetEventCategory(v string) *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetEventCategory(v)
	})
}

// UpdateEventCategory sets the "event_category" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertOne) UpdateEventCategory() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateEventCategory()
	})
}

// ClearEventCategory clears the value of the "event_category" field.
func (u *CalendarEntrySeriesUpsertOne) ClearEventCategory() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.ClearEventCategory()
	})
}

// SetRecurrence sets the "recurrence" field.
func (u *CalendarEntrySeriesUpsertOne) SetRecurrence(v string) *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetRecurrence(v)
	})
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertOne) UpdateRecurrence() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateRecurrence()
	})
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *CalendarEntrySeriesUpsertOne) ClearRecurrence() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.ClearRecurrence()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *CalendarEntrySeriesUpsertOne) SetStartsAt(v time.Time) *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertOne) UpdateStartsAt() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateStartsAt()
	})
}

// SetEndsAt sets the "ends_at" field.
func (u *CalendarEntrySeriesUpsertOne) SetEndsAt(v time.Time) *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetEndsAt(v)
	})
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertOne) UpdateEndsAt() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateEndsAt()
	})
}

// ClearEndsAt clears the value of the "ends_at" field.
func (u *CalendarEntrySeriesUpsertOne) ClearEndsAt() *CalendarEntrySeriesUpsertOne {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.ClearEndsAt()
	})
}

// Exec executes the query.
func (u *CalendarEntrySeriesUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalendarEntrySeriesCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarEntrySeriesUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CalendarEntrySeriesUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CalendarEntrySeriesUpsertOne.ID is not supported by MySQL driver. Use CalendarEntrySeriesUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CalendarEntrySeriesUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CalendarEntrySeriesCreateBulk is the builder for creating many CalendarEntrySeries entities in bulk.
type CalendarEntrySeriesCreateBulk struct {
	config
	err      error
	builders []*CalendarEntrySeriesCreate
	conflict []sql.ConflictOption
}

// Save creates the CalendarEntrySeries entities in the database.
func (_c *CalendarEntrySeriesCreateBulk) Save(ctx context.Context) ([]*CalendarEntrySeries, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarEntrySeries, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarEntrySeriesMutation)
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
func (_c *CalendarEntrySeriesCreateBulk) SaveX(ctx context.Context) []*CalendarEntrySeries {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEntrySeriesCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEntrySeriesCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalendarEntrySeries.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarEntrySeriesUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarEntrySeriesCreateBulk) OnConflict(opts ...sql.ConflictOption) *CalendarEntrySeriesUpsertBulk {
	_c.conflict = opts
	return &CalendarEntrySeriesUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarEntrySeries.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarEntrySeriesCreateBulk) OnConflictColumns(columns ...string) *CalendarEntrySeriesUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarEntrySeriesUpsertBulk{
		create: _c,
	}
}

// CalendarEntrySeriesUpsertBulk is the builder for "upsert"-ing
// a bulk of CalendarEntrySeries nodes.
type CalendarEntrySeriesUpsertBulk struct {
	create *CalendarEntrySeriesCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CalendarEntrySeries.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarentryseries.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarEntrySeriesUpsertBulk) UpdateNewValues() *CalendarEntrySeriesUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(calendarentryseries.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(calendarentryseries.FieldUserID)
			}
			if _, exists := b.mutation.Platform(); exists {
				s.SetIgnore(calendarentryseries.FieldPlatform)
			}
			if _, exists := b.mutation.PlatformID(); exists {
				s.SetIgnore(calendarentryseries.FieldPlatformID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarEntrySeries.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CalendarEntrySeriesUpsertBulk) Ignore() *CalendarEntrySeriesUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarEntrySeriesUpsertBulk) DoNothing() *CalendarEntrySeriesUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarEntrySeriesCreateBulk.OnConflict
// documentation for more info.
func (u *CalendarEntrySeriesUpsertBulk) Update(set func(*CalendarEntrySeriesUpsert)) *CalendarEntrySeriesUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarEntrySeriesUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CalendarEntrySeriesUpsertBulk) SetName(v string) *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertBulk) UpdateName() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateName()
	})
}

// SetFrequency sets the "frequency" field.
func (u *CalendarEntrySeriesUpsertBulk) SetFrequency(v string) *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertBulk) UpdateFrequency() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateFrequency()
	})
}

// ClearFrequency clears the value of the "frequency" field.
func (u *CalendarEntrySeriesUpsertBulk) ClearFrequency() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.ClearFrequency()
	})
}

// SetEventCategory sets the "event_category" field.
func (u *CalendarEntrySeriesUpsertBulk) SetEventCategory(v string) *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetEventCategory(v)
	})
}

// UpdateEventCategory sets the "event_category" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertBulk) UpdateEventCategory() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateEventCategory()
	})
}

// ClearEventCategory clears the value of the "event_category" field.
func (u *CalendarEntrySeriesUpsertBulk) ClearEventCategory() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.ClearEventCategory()
	})
}

// SetRecurrence sets the "recurrence" field.
func (u *CalendarEntrySeriesUpsertBulk) SetRecurrence(v string) *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetRecurrence(v)
	})
}

// UpdateRecurrence sets the "recurrence" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertBulk) UpdateRecurrence() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateRecurrence()
	})
}

// ClearRecurrence clears the value of the "recurrence" field.
func (u *CalendarEntrySeriesUpsertBulk) ClearRecurrence() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.ClearRecurrence()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *CalendarEntrySeriesUpsertBulk) SetStartsAt(v time.Time) *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertBulk) UpdateStartsAt() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateStartsAt()
	})
}

// SetEndsAt sets the "ends_at" field.
func (u *CalendarEntrySeriesUpsertBulk) SetEndsAt(v time.Time) *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.SetEndsAt(v)
	})
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *CalendarEntrySeriesUpsertBulk) UpdateEndsAt() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.UpdateEndsAt()
	})
}

// ClearEndsAt clears the value of the "ends_at" field.
func (u *CalendarEntrySeriesUpsertBulk) ClearEndsAt() *CalendarEntrySeriesUpsertBulk {
	return u.Update(func(s *CalendarEntrySeriesUpsert) {
		s.ClearEndsAt()
	})
}

// Exec executes the query.
func (u *CalendarEntrySeriesUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CalendarEntrySeriesCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalendarEntrySeriesCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarEntrySeriesUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
