// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/braindump"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/daybreakhq/daybreak/pkg/domain"
)

// BrainDumpUpdate is the builder for updating BrainDump entities.
type BrainDumpUpdate struct {
	config
	hooks    []Hook
	mutation *BrainDumpMutation
}

// Where appends a list predicates to the BrainDumpUpdate builder.
func (_u *BrainDumpUpdate) Where(ps ...predicate.BrainDump) *BrainDumpUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItems sets the "items" field.
func (_u *BrainDumpUpdate) SetItems(v []domain.BrainDumpItem) *BrainDumpUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *BrainDumpUpdate) AppendItems(v []domain.BrainDumpItem) *BrainDumpUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *BrainDumpUpdate) ClearItems() *BrainDumpUpdate {
	_u.mutation.ClearItems()
	return _u
}

// Mutation returns the BrainDumpMutation object of the builder.
func (_u *BrainDumpUpdate) Mutation() *BrainDumpMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BrainDumpUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrainDumpUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BrainDumpUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrainDumpUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrainDumpUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BrainDump.user"`)
	}
	return nil
}

func (_u *BrainDumpUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(braindump.Table, braindump.Columns, sqlgraph.NewFieldSpec(braindump.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(braindump.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, braindump.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(braindump.FieldItems, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{braindump.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BrainDumpUpdateOne is the builder for updating a single BrainDump entity.
type BrainDumpUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BrainDumpMutation
}

// SetItems sets the "items" field.
func (_u *BrainDumpUpdateOne) SetItems(v []domain.BrainDumpItem) *BrainDumpUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *BrainDumpUpdateOne) AppendItems(v []domain.BrainDumpItem) *BrainDumpUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *BrainDumpUpdateOne) ClearItems() *BrainDumpUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// Mutation returns the BrainDumpMutation object of the builder.
func (_u *BrainDumpUpdateOne) Mutation() *BrainDumpMutation {
	return _u.mutation
}

// Where appends a list predicates to the BrainDumpUpdate builder.
func (_u *BrainDumpUpdateOne) Where(ps ...predicate.BrainDump) *BrainDumpUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BrainDumpUpdateOne) Select(field string, fields ...string) *BrainDumpUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BrainDump entity.
func (_u *BrainDumpUpdateOne) Save(ctx context.Context) (*BrainDump, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrainDumpUpdateOne) SaveX(ctx context.Context) *BrainDump {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BrainDumpUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrainDumpUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrainDumpUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BrainDump.user"`)
	}
	return nil
}

func (_u *BrainDumpUpdateOne) sqlSave(ctx context.Context) (_node *BrainDump, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(braindump.Table, braindump.Columns, sqlgraph.NewFieldSpec(braindump.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BrainDump.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, braindump.FieldID)
		for _, f := range fields {
			if !braindump.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != braindump.FieldID {
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
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(braindump.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, braindump.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(braindump.FieldItems, field.TypeJSON)
	}
	_node = &BrainDump{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{braindump.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
