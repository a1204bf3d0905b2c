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
	"github.com/daybreakhq/daybreak/ent/pushnotification"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// PushNotificationCreate is the builder for creating a PushNotification entity.
type PushNotificationCreate struct {
	config
	mutation *PushNotificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PushNotificationCreate) SetUserID(v uuid.UUID) *PushNotificationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPushSubscriptionIds sets the "push_subscription_ids" field.
func (_c *PushNotificationCreate) SetPushSubscriptionIds(v []uuid.UUID) *PushNotificationCreate {
	_c.mutation.SetPushSubscriptionIds(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PushNotificationCreate) SetContent(v string) *PushNotificationCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PushNotificationCreate) SetStatus(v pushnotification.Status) *PushNotificationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PushNotificationCreate) SetErrorMessage(v string) *PushNotificationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PushNotificationCreate) SetNillableErrorMessage(v *string) *PushNotificationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *PushNotificationCreate) SetSentAt(v time.Time) *PushNotificationCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *PushNotificationCreate) SetTriggeredBy(v string) *PushNotificationCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetLlmSnapshot sets the "llm_snapshot" field.
func (_c *PushNotificationCreate) SetLlmSnapshot(v *domain.LLMRunResult) *PushNotificationCreate {
	_c.mutation.SetLlmSnapshot(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PushNotificationCreate) SetID(v uuid.UUID) *PushNotificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PushNotificationCreate) SetUser(v *User) *PushNotificationCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the PushNotificationMutation object of the builder.
func (_c *PushNotificationCreate) Mutation() *PushNotificationMutation {
	return _c.mutation
}

// Save creates the PushNotification in the database.
func (_c *PushNotificationCreate) Save(ctx context.Context) (*PushNotification, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PushNotificationCreate) SaveX(ctx context.Context) *PushNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushNotificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushNotificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PushNotificationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PushNotification.user_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PushNotification.content"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PushNotification.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pushnotification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PushNotification.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`ent: missing required field "PushNotification.sent_at"`)}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "PushNotification.triggered_by"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "PushNotification.user"`)}
	}
	return nil
}

func (_c *PushNotificationCreate) sqlSave(ctx context.Context) (*PushNotification, error) {
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

func (_c *PushNotificationCreate) createSpec() (*PushNotification, *sqlgraph.CreateSpec) {
	var (
		_node = &PushNotification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pushnotification.Table, sqlgraph.NewFieldSpec(pushnotification.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PushSubscriptionIds(); ok {
		_spec.SetField(pushnotification.FieldPushSubscriptionIds, field.TypeJSON, value)
		_node.PushSubscriptionIds = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(pushnotification.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pushnotification.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pushnotification.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(pushnotification.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(pushnotification.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.LlmSnapshot(); ok {
		_spec.SetField(pushnotification.FieldLlmSnapshot, field.TypeJSON, value)
		_node.LlmSnapshot = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pushnotification.UserTable,
			Columns: []string{pushnotification.UserColumn},
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
//	client.PushNotification.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushNotificationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushNotificationCreate) OnConflict(opts ...sql.ConflictOption) *PushNotificationUpsertOne {
	_c.conflict = opts
	return &PushNotificationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushNotificationCreate) OnConflictColumns(columns ...string) *PushNotificationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushNotificationUpsertOne{
		create: _c,
	}
}

type (
	// PushNotificationUpsertOne is the builder for "upsert"-ing
	//  one PushNotification node.
	PushNotificationUpsertOne struct {
		create *PushNotificationCreate
	}

	// PushNotificationUpsert is the "OnConflict" setter.
	PushNotificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetPushSubscriptionIds sets the "push_subscription_ids" field.
func (u *PushNotificationUpsert) SetPushSubscriptionIds(v []uuid.UUID) *PushNotificationUpsert {
	u.Set(pushnotification.FieldPushSubscriptionIds, v)
	return u
}

// UpdatePushSubscriptionIds sets the "push_subscription_ids" field to the value that was provided on create.
func (u *PushNotificationUpsert) UpdatePushSubscriptionIds() *PushNotificationUpsert {
	u.SetExcluded(pushnotification.FieldPushSubscriptionIds)
	return u
}

// ClearPushSubscriptionIds clears the value of the "push_subscription_ids" field.
func (u *PushNotificationUpsert) ClearPushSubscriptionIds() *PushNotificationUpsert {
	u.SetNull(pushnotification.FieldPushSubscriptionIds)
	return u
}

// SetContent sets the "content" field.
func (u *PushNotificationUpsert) SetContent(v string) *PushNotificationUpsert {
	u.Set(pushnotification.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PushNotificationUpsert) UpdateContent() *PushNotificationUpsert {
	u.SetExcluded(pushnotification.FieldContent)
	return u
}

// SetStatus sets the "status" field.
func (u *PushNotificationUpsert) SetStatus(v pushnotification.Status) *PushNotificationUpsert {
	u.Set(pushnotification.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PushNotificationUpsert) UpdateStatus() *PushNotificationUpsert {
	u.SetExcluded(pushnotification.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *PushNotificationUpsert) SetErrorMessage(v string) *PushNotificationUpsert {
	u.Set(pushnotification.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PushNotificationUpsert) UpdateErrorMessage() *PushNotificationUpsert {
	u.SetExcluded(pushnotification.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PushNotificationUpsert) ClearErrorMessage() *PushNotificationUpsert {
	u.SetNull(pushnotification.FieldErrorMessage)
	return u
}

// SetSentAt sets the "sent_at" field.
func (u *PushNotificationUpsert) SetSentAt(v time.Time) *PushNotificationUpsert {
	u.Set(pushnotification.FieldSentAt, v)
	return u
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *PushNotificationUpsert) UpdateSentAt() *PushNotificationUpsert {
	u.SetExcluded(pushnotification.FieldSentAt)
	return u
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *PushNotificationUpsert) SetTriggeredBy(v string) *PushNotificationUpsert {
	u.Set(pushnotification.FieldTriggeredBy, v)
	return u
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *PushNotificationUpsert) UpdateTriggeredBy() *PushNotificationUpsert {
	u.SetExcluded(pushnotification.FieldTriggeredBy)
	return u
}

// SetLlmSnapshot sets the "llm_snapshot" field.
func (u *PushNotificationUpsert) SetLlmSnapshot(v *domain.LLMRunResult) *PushNotificationUpsert {
	u.Set(pushnotification.FieldLlmSnapshot, v)
	return u
}

// UpdateLlmSnapshot sets the "llm_snapshot" field to the value that was provided on create.
func (u *PushNotificationUpsert) UpdateLlmSnapshot() *PushNotificationUpsert {
	u.SetExcluded(pushnotification.FieldLlmSnapshot)
	return u
}

// ClearLlmSnapshot clears the value of the "llm_snapshot" field.
func (u *PushNotificationUpsert) ClearLlmSnapshot() *PushNotificationUpsert {
	u.SetNull(pushnotification.FieldLlmSnapshot)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PushNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushNotificationUpsertOne) UpdateNewValues() *PushNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pushnotification.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(pushnotification.FieldUserID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushNotification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PushNotificationUpsertOne) Ignore() *PushNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushNotificationUpsertOne) DoNothing() *PushNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushNotificationCreate.OnConflict
// documentation for more info.
func (u *PushNotificationUpsertOne) Update(set func(*PushNotificationUpsert)) *PushNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetPushSubscriptionIds sets the "push_subscription_ids" field.
func (u *PushNotificationUpsertOne) SetPushSubscriptionIds(v []uuid.UUID) *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetPushSubscriptionIds(v)
	})
}

// UpdatePushSubscriptionIds sets the "push_subscription_ids" field to the value that was provided on create.
func (u *PushNotificationUpsertOne) UpdatePushSubscriptionIds() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdatePushSubscriptionIds()
	})
}

// ClearPushSubscriptionIds clears the value of the "push_subscription_ids" field.
func (u *PushNotificationUpsertOne) ClearPushSubscriptionIds() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.ClearPushSubscriptionIds()
	})
}

// SetContent sets the "content" field.
func (u *PushNotificationUpsertOne) SetContent(v string) *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PushNotificationUpsertOne) UpdateContent() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateContent()
	})
}

// SetStatus sets the "status" field.
func (u *PushNotificationUpsertOne) SetStatus(v pushnotification.Status) *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PushNotificationUpsertOne) UpdateStatus() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PushNotificationUpsertOne) SetErrorMessage(v string) *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PushNotificationUpsertOne) UpdateErrorMessage() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PushNotificationUpsertOne) ClearErrorMessage() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *PushNotificationUpsertOne) SetSentAt(v time.Time) *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *PushNotificationUpsertOne) UpdateSentAt() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateSentAt()
	})
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *PushNotificationUpsertOne) SetTriggeredBy(v string) *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *PushNotificationUpsertOne) UpdateTriggeredBy() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateTriggeredBy()
	})
}

// SetLlmSnapshot sets the "llm_snapshot" field.
func (u *PushNotificationUpsertOne) SetLlmSnapshot(v *domain.LLMRunResult) *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetLlmSnapshot(v)
	})
}

// UpdateLlmSnapshot sets the "llm_snapshot" field to the value that was provided on create.
func (u *PushNotificationUpsertOne) UpdateLlmSnapshot() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateLlmSnapshot()
	})
}

// ClearLlmSnapshot clears the value of the "llm_snapshot" field.
func (u *PushNotificationUpsertOne) ClearLlmSnapshot() *PushNotificationUpsertOne {
	return u.Update(func(s *PushNotificationUpsert) {
		s.ClearLlmSnapshot()
	})
}

// Exec executes the query.
func (u *PushNotificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushNotificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushNotificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PushNotificationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PushNotificationUpsertOne.ID is not supported by MySQL driver. Use PushNotificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PushNotificationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PushNotificationCreateBulk is the builder for creating many PushNotification entities in bulk.
type PushNotificationCreateBulk struct {
	config
	err      error
	builders []*PushNotificationCreate
	conflict []sql.ConflictOption
}

// Save creates the PushNotification entities in the database.
func (_c *PushNotificationCreateBulk) Save(ctx context.Context) ([]*PushNotification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PushNotification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PushNotificationMutation)
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
func (_c *PushNotificationCreateBulk) SaveX(ctx context.Context) []*PushNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushNotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushNotificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushNotification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushNotificationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushNotificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *PushNotificationUpsertBulk {
	_c.conflict = opts
	return &PushNotificationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushNotificationCreateBulk) OnConflictColumns(columns ...string) *PushNotificationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushNotificationUpsertBulk{
		create: _c,
	}
}

// PushNotificationUpsertBulk is the builder for "upsert"-ing
// a bulk of PushNotification nodes.
type PushNotificationUpsertBulk struct {
	create *PushNotificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PushNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushNotificationUpsertBulk) UpdateNewValues() *PushNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pushnotification.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(pushnotification.FieldUserID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushNotification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PushNotificationUpsertBulk) Ignore() *PushNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushNotificationUpsertBulk) DoNothing() *PushNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushNotificationCreateBulk.OnConflict
// documentation for more info.
func (u *PushNotificationUpsertBulk) Update(set func(*PushNotificationUpsert)) *PushNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetPushSubscriptionIds sets the "push_subscription_ids" field.
func (u *PushNotificationUpsertBulk) SetPushSubscriptionIds(v []uuid.UUID) *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetPushSubscriptionIds(v)
	})
}

// UpdatePushSubscriptionIds sets the "push_subscription_ids" field to the value that was provided on create.
func (u *PushNotificationUpsertBulk) UpdatePushSubscriptionIds() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdatePushSubscriptionIds()
	})
}

// ClearPushSubscriptionIds clears the value of the "push_subscription_ids" field.
func (u *PushNotificationUpsertBulk) ClearPushSubscriptionIds() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.ClearPushSubscriptionIds()
	})
}

// SetContent sets the "content" field.
func (u *PushNotificationUpsertBulk) SetContent(v string) *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PushNotificationUpsertBulk) UpdateContent() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateContent()
	})
}

// SetStatus sets the "status" field.
func (u *PushNotificationUpsertBulk) SetStatus(v pushnotification.Status) *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PushNotificationUpsertBulk) UpdateStatus() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PushNotificationUpsertBulk) SetErrorMessage(v string) *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PushNotificationUpsertBulk) UpdateErrorMessage() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PushNotificationUpsertBulk) ClearErrorMessage() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *PushNotificationUpsertBulk) SetSentAt(v time.Time) *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *PushNotificationUpsertBulk) UpdateSentAt() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateSentAt()
	})
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *PushNotificationUpsertBulk) SetTriggeredBy(v string) *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *PushNotificationUpsertBulk) UpdateTriggeredBy() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateTriggeredBy()
	})
}

// SetLlmSnapshot sets the "llm_snapshot" field.
func (u *PushNotificationUpsertBulk) SetLlmSnapshot(v *domain.LLMRunResult) *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.SetLlmSnapshot(v)
	})
}

// UpdateLlmSnapshot sets the "llm_snapshot" field to the value that was provided on create.
func (u *PushNotificationUpsertBulk) UpdateLlmSnapshot() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.UpdateLlmSnapshot()
	})
}

// ClearLlmSnapshot clears the value of the "llm_snapshot" field.
func (u *PushNotificationUpsertBulk) ClearLlmSnapshot() *PushNotificationUpsertBulk {
	return u.Update(func(s *PushNotificationUpsert) {
		s.ClearLlmSnapshot()
	})
}

// Exec executes the query.
func (u *PushNotificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PushNotificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushNotificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushNotificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
