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
	"github.com/daybreakhq/daybreak/ent/calendarentry"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/google/uuid"
)

// CalendarEntryCreate is the builder for creating a CalendarEntry entity.
type CalendarEntryCreate struct {
	config
	mutation *CalendarEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CalendarEntryCreate) SetUserID(v uuid.UUID) *CalendarEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *CalendarEntryCreate) SetPlatform(v string) *CalendarEntryCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetPlatformID sets the "platform_id" field.
func (_c *CalendarEntryCreate) SetPlatformID(v string) *CalendarEntryCreate {
	_c.mutation.SetPlatformID(v)
	return _c
}

// SetCalendarEntrySeriesID sets the "calendar_entry_series_id" field.
func (_c *CalendarEntryCreate) SetCalendarEntrySeriesID(v uuid.UUID) *CalendarEntryCreate {
	_c.mutation.SetCalendarEntrySeriesID(v)
	return _c
}

// SetNillableCalendarEntrySeriesID sets the "calendar_entry_series_id" field if the given value is not nil.
func (_c *CalendarEntryCreate) SetNillableCalendarEntrySeriesID(v *uuid.UUID) *CalendarEntryCreate {
	if v != nil {
		_c.SetCalendarEntrySeriesID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *CalendarEntryCreate) SetName(v string) *CalendarEntryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *CalendarEntryCreate) SetStartsAt(v time.Time) *CalendarEntryCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *CalendarEntryCreate) SetEndsAt(v time.Time) *CalendarEntryCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *CalendarEntryCreate) SetFrequency(v string) *CalendarEntryCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *CalendarEntryCreate) SetNillableFrequency(v *string) *CalendarEntryCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetEventCategory sets the "event_category" field.
func (_c *CalendarEntryCreate) SetEventCategory(v string) *CalendarEntryCreate {
	_c.mutation.SetEventCategory(v)
	return _c
}

// SetNillableEventCategory sets the "event_category" field if the given value is not nil.
func (_c *CalendarEntryCreate) SetNillableEventCategory(v *string) *CalendarEntryCreate {
	if v != nil {
		_c.SetEventCategory(*v)
	}
	return _c
}

// SetAttendanceStatus sets the "attendance_status" field.
func (_c *CalendarEntryCreate) SetAttendanceStatus(v string) *CalendarEntryCreate {
	_c.mutation.SetAttendanceStatus(v)
	return _c
}

// SetNillableAttendanceStatus sets the "attendance_status" field if the given value is not nil.
func (_c *CalendarEntryCreate) SetNillableAttendanceStatus(v *string) *CalendarEntryCreate {
	if v != nil {
		_c.SetAttendanceStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarEntryCreate) SetID(v uuid.UUID) *CalendarEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CalendarEntryCreate) SetUser(v *User) *CalendarEntryCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the CalendarEntryMutation object of the builder.
func (_c *CalendarEntryCreate) Mutation() *CalendarEntryMutation {
	return _c.mutation
}

// Save creates the CalendarEntry in the database.
func (_c *CalendarEntryCreate) Save(ctx context.Context) (*CalendarEntry, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarEntryCreate) SaveX(ctx context.Context) *CalendarEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarEntryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CalendarEntry.user_id"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "CalendarEntry.platform"`)}
	}
	if _, ok := _c.mutation.PlatformID(); !ok {
		return &ValidationError{Name: "platform_id", err: errors.New(`ent: missing required field "CalendarEntry.platform_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CalendarEntry.name"`)}
	}
	if _, ok := _c.mutation.StartsAt(); !ok {
		return &ValidationError{Name: "starts_at", err: errors.New(`ent: missing required field "CalendarEntry.starts_at"`)}
	}
	if _, ok := _c.mutation.EndsAt(); !ok {
		return &ValidationError{Name: "ends_at", err: errors.New(`ent: missing required field "CalendarEntry.ends_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "CalendarEntry.user"`)}
	}
	return nil
}

func (_c *CalendarEntryCreate) sqlSave(ctx context.Context) (*CalendarEntry, error) {
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

func (_c *CalendarEntryCreate) createSpec() (*CalendarEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarentry.Table, sqlgraph.NewFieldSpec(calendarentry.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(calendarentry.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.PlatformID(); ok {
		_spec.SetField(calendarentry.FieldPlatformID, field.TypeString, value)
		_node.PlatformID = value
	}
	if value, ok := _c.mutation.CalendarEntrySeriesID(); ok {
		_spec.SetField(calendarentry.FieldCalendarEntrySeriesID, field.TypeUUID, value)
		_node.CalendarEntrySeriesID = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(calendarentry.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(calendarentry.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(calendarentry.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(calendarentry.FieldFrequency, field.TypeString, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.EventCategory(); ok {
		_spec.SetField(calendarentry.FieldEventCategory, field.TypeString, value)
		_node.EventCategory = value
	}
	if value, ok := _c.mutation.AttendanceStatus(); ok {
		_spec.SetField(calendarentry.FieldAttendanceStatus, field.TypeString, value)
		_node.AttendanceStatus = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarentry.UserTable,
			Columns: []string{calendarentry.UserColumn},
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
//	client.CalendarEntry.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarEntryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarEntryCreate) OnConflict(opts ...sql.ConflictOption) *CalendarEntryUpsertOne {
	_c.conflict = opts
	return &CalendarEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarEntryCreate) OnConflictColumns(columns ...string) *CalendarEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarEntryUpsertOne{
		create: _c,
	}
}

type (
	// CalendarEntryUpsertOne is the builder for "upsert"-ing
	//  one CalendarEntry node.
	CalendarEntryUpsertOne struct {
		create *CalendarEntryCreate
	}

	// CalendarEntryUpsert is the "OnConflict" setter.
	CalendarEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetCalendarEntrySeriesID sets the "calendar_entry_series_id" field.
func (u *CalendarEntryUpsert) SetCalendarEntrySeriesID(v uuid.UUID) *CalendarEntryUpsert {
	u.Set(calendarentry.FieldCalendarEntrySeriesID, v)
	return u
}

// UpdateCalendarEntrySeriesID sets the "calendar_entry_series_id" field to the value that was provided on create.
func (u *CalendarEntryUpsert) UpdateCalendarEntrySeriesID() *CalendarEntryUpsert {
	u.SetExcluded(calendarentry.FieldCalendarEntrySeriesID)
	return u
}

// ClearCalendarEntrySeriesID clears the value of the "calendar_entry_series_id" field.
func (u *CalendarEntryUpsert) ClearCalendarEntrySeriesID() *CalendarEntryUpsert {
	u.SetNull(calendarentry.FieldCalendarEntrySeriesID)
	return u
}

// SetName sets the "name" field.
func (u *CalendarEntryUpsert) SetName(v string) *CalendarEntryUpsert {
	u.Set(calendarentry.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CalendarEntryUpsert) UpdateName() *CalendarEntryUpsert {
	u.SetExcluded(calendarentry.FieldName)
	return u
}

// SetStartsAt sets the "starts_at" field.
func (u *CalendarEntryUpsert) SetStartsAt(v time.Time) *CalendarEntryUpsert {
	u.Set(calendarentry.FieldStartsAt, v)
	return u
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *CalendarEntryUpsert) UpdateStartsAt() *CalendarEntryUpsert {
	u.SetExcluded(calendarentry.FieldStartsAt)
	return u
}

// SetEndsAt sets the "ends_at" field.
func (u *CalendarEntryUpsert) SetEndsAt(v time.Time) *CalendarEntryUpsert {
	u.Set(calendarentry.FieldEndsAt, v)
	return u
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *CalendarEntryUpsert) UpdateEndsAt() *CalendarEntryUpsert {
	u.SetExcluded(calendarentry.FieldEndsAt)
	return u
}

// SetFrequency sets the "frequency" field.
func (u *CalendarEntryUpsert) SetFrequency(v string) *CalendarEntryUpsert {
	u.Set(calendarentry.FieldFrequency, v)
	return u
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *CalendarEntryUpsert) UpdateFrequency() *CalendarEntryUpsert {
	u.SetExcluded(calendarentry.FieldFrequency)
	return u
}

// ClearFrequency clears the value of the "frequency" field.
func (u *CalendarEntryUpsert) ClearFrequency() *CalendarEntryUpsert {
	u.SetNull(calendarentry.FieldFrequency)
	return u
}

// SetEventCategory sets the "event_category" field.
func (u *CalendarEntryUpsert) SetEventCategory(v string) *CalendarEntryUpsert {
	u.Set(calendarentry.FieldEventCategory, v)
	return u
}

// UpdateEventCategory sets the "event_category" field to the value that was provided on create.
func (u *CalendarEntryUpsert) UpdateEventCategory() *CalendarEntryUpsert {
	u.SetExcluded(calendarentry.FieldEventCategory)
	return u
}

// ClearEventCategory clears the value of the "event_category" field.
func (u *CalendarEntryUpsert) ClearEventCategory() *CalendarEntryUpsert {
	u.SetNull(calendarentry.FieldEventCategory)
	return u
}

// SetAttendanceStatus sets the "attendance_status" field.
func (u *CalendarEntryUpsert) SetAttendanceStatus(v string) *CalendarEntryUpsert {
	u.Set(calendarentry.FieldAttendanceStatus, v)
	return u
}

// UpdateAttendanceStatus sets the "attendance_status" field to the value that was provided on create.
func (u *CalendarEntryUpsert) UpdateAttendanceStatus() *CalendarEntryUpsert {
	u.SetExcluded(calendarentry.FieldAttendanceStatus)
	return u
}

// ClearAttendanceStatus clears the value of the "attendance_status" field.
func (u *CalendarEntryUpsert) ClearAttendanceStatus() *CalendarEntryUpsert {
	u.SetNull(calendarentry.FieldAttendanceStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CalendarEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarEntryUpsertOne) UpdateNewValues() *CalendarEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(calendarentry.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(calendarentry.FieldUserID)
		}
		if _, exists := u.create.mutation.Platform(); exists {
			s.SetIgnore(calendarentry.FieldPlatform)
		}
		if _, exists := u.create.mutation.PlatformID(); exists {
			s.SetIgnore(calendarentry.FieldPlatformID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CalendarEntryUpsertOne) Ignore() *CalendarEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarEntryUpsertOne) DoNothing() *CalendarEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarEntryCreate.OnConflict
// documentation for more info.
func (u *CalendarEntryUpsertOne) Update(set func(*CalendarEntryUpsert)) *CalendarEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetCalendarEntrySeriesID sets the "calendar_entry_series_id" field.
func (u *CalendarEntryUpsertOne) SetCalendarEntrySeriesID(v uuid.UUID) *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetCalendarEntrySeriesID(v)
	})
}

// UpdateCalendarEntrySeriesID sets the "calendar_entry_series_id" field to the value that was provided on create.
func (u *CalendarEntryUpsertOne) UpdateCalendarEntrySeriesID() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateCalendarEntrySeriesID()
	})
}

// ClearCalendarEntrySeriesID clears the value of the "calendar_entry_series_id" field.
func (u *CalendarEntryUpsertOne) ClearCalendarEntrySeriesID() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.ClearCalendarEntrySeriesID()
	})
}

// SetName sets the "name" field.
func (u *CalendarEntryUpsertOne) SetName(v string) *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CalendarEntryUpsertOne) UpdateName() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateName()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *CalendarEntryUpsertOne) SetStartsAt(v time.Time) *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *CalendarEntryUpsertOne) UpdateStartsAt() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateStartsAt()
	})
}

// SetEndsAt sets the "ends_at" field.
func (u *CalendarEntryUpsertOne) SetEndsAt(v time.Time) *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetEndsAt(v)
	})
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *CalendarEntryUpsertOne) UpdateEndsAt() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateEndsAt()
	})
}

// SetFrequency sets the "frequency" field.
func (u *CalendarEntryUpsertOne) SetFrequency(v string) *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *CalendarEntryUpsertOne) UpdateFrequency() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateFrequency()
	})
}

// ClearFrequency clears the value of the "frequency" field.
func (u *CalendarEntryUpsertOne) ClearFrequency() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.ClearFrequency()
	})
}

// SetEventCategory sets the "event_category" field.
func (u *CalendarEntryUpsertOne) SetEventCategory(v string) *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetEventCategory(v)
	})
}

// UpdateEventCategory sets the "event_category" field to the value that was provided on create.
func (u *CalendarEntryUpsertOne) UpdateEventCategory() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateEventCategory()
	})
}

// ClearEventCategory clears the value of the "event_category" field.
func (u *CalendarEntryUpsertOne) ClearEventCategory() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.ClearEventCategory()
	})
}

// SetAttendanceStatus sets the "attendance_status" field.
func (u *CalendarEntryUpsertOne) SetAttendanceStatus(v string) *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetAttendanceStatus(v)
	})
}

// UpdateAttendanceStatus sets the "attendance_status" field to the value that was provided on create.
func (u *CalendarEntryUpsertOne) UpdateAttendanceStatus() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateAttendanceStatus()
	})
}

// ClearAttendanceStatus clears the value of the "attendance_status" field.
func (u *CalendarEntryUpsertOne) ClearAttendanceStatus() *CalendarEntryUpsertOne {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.ClearAttendanceStatus()
	})
}

// Exec executes the query.
func (u *CalendarEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalendarEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CalendarEntryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CalendarEntryUpsertOne.ID is not supported by MySQL driver. Use CalendarEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CalendarEntryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CalendarEntryCreateBulk is the builder for creating many CalendarEntry entities in bulk.
type CalendarEntryCreateBulk struct {
	config
	err      error
	builders []*CalendarEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the CalendarEntry entities in the database.
func (_c *CalendarEntryCreateBulk) Save(ctx context.Context) ([]*CalendarEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarEntryMutation)
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
func (_c *CalendarEntryCreateBulk) SaveX(ctx context.Context) []*CalendarEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalendarEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalendarEntryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CalendarEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *CalendarEntryUpsertBulk {
	_c.conflict = opts
	return &CalendarEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalendarEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalendarEntryCreateBulk) OnConflictColumns(columns ...string) *CalendarEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalendarEntryUpsertBulk{
		create: _c,
	}
}

// CalendarEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of CalendarEntry nodes.
type CalendarEntryUpsertBulk struct {
	create *CalendarEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CalendarEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(calendarentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalendarEntryUpsertBulk) UpdateNewValues() *CalendarEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(calendarentry.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(calendarentry.FieldUserID)
			}
			if _, exists := b.mutation.Platform(); exists {
				s.SetIgnore(calendarentry.FieldPlatform)
			}
			if _, exists := b.mutation.PlatformID(); exists {
				s.SetIgnore(calendarentry.FieldPlatformID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalendarEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CalendarEntryUpsertBulk) Ignore() *CalendarEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalendarEntryUpsertBulk) DoNothing() *CalendarEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalendarEntryCreateBulk.OnConflict
// documentation for more info.
func (u *CalendarEntryUpsertBulk) Update(set func(*CalendarEntryUpsert)) *CalendarEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalendarEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetCalendarEntrySeriesID sets the "calendar_entry_series_id" field.
func (u *CalendarEntryUpsertBulk) SetCalendarEntrySeriesID(v uuid.UUID) *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetCalendarEntrySeriesID(v)
	})
}

// UpdateCalendarEntrySeriesID sets the "calendar_entry_series_id" field to the value that was provided on create.
func (u *CalendarEntryUpsertBulk) UpdateCalendarEntrySeriesID() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateCalendarEntrySeriesID()
	})
}

// ClearCalendarEntrySeriesID clears the value of the "calendar_entry_series_id" field.
func (u *CalendarEntryUpsertBulk) ClearCalendarEntrySeriesID() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.ClearCalendarEntrySeriesID()
	})
}

// SetName sets the "name" field.
func (u *CalendarEntryUpsertBulk) SetName(v string) *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CalendarEntryUpsertBulk) UpdateName() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateName()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *CalendarEntryUpsertBulk) SetStartsAt(v time.Time) *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *CalendarEntryUpsertBulk) UpdateStartsAt() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateStartsAt()
	})
}

// SetEndsAt sets the "ends_at" field.
func (u *CalendarEntryUpsertBulk) SetEndsAt(v time.Time) *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetEndsAt(v)
	})
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *CalendarEntryUpsertBulk) UpdateEndsAt() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateEndsAt()
	})
}

// SetFrequency sets the "frequency" field.
func (u *CalendarEntryUpsertBulk) SetFrequency(v string) *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetFrequency(v)
	})
}

// UpdateFrequency sets the "frequency" field to the value that was provided on create.
func (u *CalendarEntryUpsertBulk) UpdateFrequency() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateFrequency()
	})
}

// ClearFrequency clears the value of the "frequency" field.
func (u *CalendarEntryUpsertBulk) ClearFrequency() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.ClearFrequency()
	})
}

// SetEventCategory sets the "event_category" field.
func (u *CalendarEntryUpsertBulk) SetEventCategory(v string) *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetEventCategory(v)
	})
}

// UpdateEventCategory sets the "event_category" field to the value that was provided on create.
func (u *CalendarEntryUpsertBulk) UpdateEventCategory() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateEventCategory()
	})
}

// ClearEventCategory clears the value of the "event_category" field.
func (u *CalendarEntryUpsertBulk) ClearEventCategory() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.ClearEventCategory()
	})
}

// SetAttendanceStatus sets the "attendance_status" field.
func (u *CalendarEntryUpsertBulk) SetAttendanceStatus(v string) *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.SetAttendanceStatus(v)
	})
}

// UpdateAttendanceStatus sets the "attendance_status" field to the value that was provided on create.
func (u *CalendarEntryUpsertBulk) UpdateAttendanceStatus() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.UpdateAttendanceStatus()
	})
}

// ClearAttendanceStatus clears the value of the "attendance_status" field.
func (u *CalendarEntryUpsertBulk) ClearAttendanceStatus() *CalendarEntryUpsertBulk {
	return u.Update(func(s *CalendarEntryUpsert) {
		s.ClearAttendanceStatus()
	})
}

// Exec executes the query.
func (u *CalendarEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CalendarEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalendarEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalendarEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
