// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/calendarentryseries"
	"github.com/daybreakhq/daybreak/ent/predicate"
)

// CalendarEntrySeriesDelete is the builder for deleting a CalendarEntrySeries entity.
type CalendarEntrySeriesDelete struct {
	config
	hooks    []Hook
	mutation *CalendarEntrySeriesMutation
}

// Where appends a list predicates to the CalendarEntrySeriesDelete builder.
func (_d *CalendarEntrySeriesDelete) Where(ps ...predicate.CalendarEntrySeries) *CalendarEntrySeriesDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CalendarEntrySeriesDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalendarEntrySeriesDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CalendarEntrySeriesDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(calendarentryseries.Table, sqlgraph.NewFieldSpec(calendarentryseries.FieldID, field.TypeUUID))
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

// CalendarEntrySeriesDeleteOne is the builder for deleting a single CalendarEntrySeries entity.
type CalendarEntrySeriesDeleteOne struct {
	_d *CalendarEntrySeriesDelete
}

// Where appends a list predicates to the CalendarEntrySeriesDelete builder.
func (_d *CalendarEntrySeriesDeleteOne) Where(ps ...predicate.CalendarEntrySeries) *CalendarEntrySeriesDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CalendarEntrySeriesDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{calendarentryseries.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalendarEntrySeriesDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
