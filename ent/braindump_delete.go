// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/braindump"
	"github.com/daybreakhq/daybreak/ent/predicate"
)

// BrainDumpDelete is the builder for deleting a BrainDump entity.
type BrainDumpDelete struct {
	config
	hooks    []Hook
	mutation *BrainDumpMutation
}

// Where appends a list predicates to the BrainDumpDelete builder.
func (_d *BrainDumpDelete) Where(ps ...predicate.BrainDump) *BrainDumpDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BrainDumpDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BrainDumpDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BrainDumpDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(braindump.Table, sqlgraph.NewFieldSpec(braindump.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BrainDumpDeleteOne is the builder for deleting a single BrainDump entity.
type BrainDumpDeleteOne struct {
	_d *BrainDumpDelete
}

// Where appends a list predicates to the BrainDumpDelete builder.
func (_d *BrainDumpDeleteOne) Where(ps ...predicate.BrainDump) *BrainDumpDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BrainDumpDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{braindump.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BrainDumpDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
