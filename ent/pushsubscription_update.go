// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/daybreakhq/daybreak/ent/pushsubscription"
)

// PushSubscriptionUpdate is the builder for updating PushSubscription entities.
type PushSubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PushSubscriptionMutation
}

// Where appends a list predicates to the PushSubscriptionUpdate builder.
func (_u *PushSubscriptionUpdate) Where(ps ...predicate.PushSubscription) *PushSubscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *PushSubscriptionUpdate) SetEndpoint(v string) *PushSubscriptionUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *PushSubscriptionUpdate) SetNillableEndpoint(v *string) *PushSubscriptionUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetKeys sets the "keys" field.
func (_u *PushSubscriptionUpdate) SetKeys(v map[string]string) *PushSubscriptionUpdate {
	_u.mutation.SetKeys(v)
	return _u
}

// ClearKeys clears the value of the "keys" field.
func (_u *PushSubscriptionUpdate) ClearKeys() *PushSubscriptionUpdate {
	_u.mutation.ClearKeys()
	return _u
}

// Mutation returns the PushSubscriptionMutation object of the builder.
func (_u *PushSubscriptionUpdate) Mutation() *PushSubscriptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PushSubscriptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushSubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PushSubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushSubscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushSubscriptionUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PushSubscription.user"`)
	}
	return nil
}

func (_u *PushSubscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushsubscription.Table, pushsubscription.Columns, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(pushsubscription.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keys(); ok {
		_spec.SetField(pushsubscription.FieldKeys, field.TypeJSON, value)
	}
	if _u.mutation.KeysCleared() {
		_spec.ClearField(pushsubscription.FieldKeys, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushsubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PushSubscriptionUpdateOne is the builder for updating a single PushSubscription entity.
type PushSubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PushSubscriptionMutation
}

// SetEndpoint sets the "endpoint" field.
func (_u *PushSubscriptionUpdateOne) SetEndpoint(v string) *PushSubscriptionUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *PushSubscriptionUpdateOne) SetNillableEndpoint(v *string) *PushSubscriptionUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetKeys sets the "keys" field.
func (_u *PushSubscriptionUpdateOne) SetKeys(v map[string]string) *PushSubscriptionUpdateOne {
	_u.mutation.SetKeys(v)
	return _u
}

// ClearKeys clears the value of the "keys" field.
func (_u *PushSubscriptionUpdateOne) ClearKeys() *PushSubscriptionUpdateOne {
	_u.mutation.ClearKeys()
	return _u
}

// Mutation returns the PushSubscriptionMutation object of the builder.
func (_u *PushSubscriptionUpdateOne) Mutation() *PushSubscriptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PushSubscriptionUpdate builder.
func (_u *PushSubscriptionUpdateOne) Where(ps ...predicate.PushSubscription) *PushSubscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PushSubscriptionUpdateOne) Select(field string, fields ...string) *PushSubscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PushSubscription entity.
func (_u *PushSubscriptionUpdateOne) Save(ctx context.Context) (*PushSubscription, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushSubscriptionUpdateOne) SaveX(ctx context.Context) *PushSubscription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PushSubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushSubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushSubscriptionUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PushSubscription.user"`)
	}
	return nil
}

func (_u *PushSubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *PushSubscription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushsubscription.Table, pushsubscription.Columns, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PushSubscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pushsubscription.FieldID)
		for _, f := range fields {
			if !pushsubscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pushsubscription.FieldID {
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
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(pushsubscription.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keys(); ok {
		_spec.SetField(pushsubscription.FieldKeys, field.TypeJSON, value)
	}
	if _u.mutation.KeysCleared() {
		_spec.ClearField(pushsubscription.FieldKeys, field.TypeJSON)
	}
	_node = &PushSubscription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushsubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
