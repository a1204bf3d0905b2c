// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/daybreakhq/daybreak/ent/pushnotification"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// PushNotificationUpdate is the builder for updating PushNotification entities.
type PushNotificationUpdate struct {
	config
	hooks    []Hook
	mutation *PushNotificationMutation
}

// Where appends a list predicates to the PushNotificationUpdate builder.
func (_u *PushNotificationUpdate) Where(ps ...predicate.PushNotification) *PushNotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPushSubscriptionIds sets the "push_subscription_ids" field.
func (_u *PushNotificationUpdate) SetPushSubscriptionIds(v []uuid.UUID) *PushNotificationUpdate {
	_u.mutation.SetPushSubscriptionIds(v)
	return _u
}

// AppendPushSubscriptionIds appends value to the "push_subscription_ids" field.
func (_u *PushNotificationUpdate) AppendPushSubscriptionIds(v []uuid.UUID) *PushNotificationUpdate {
	_u.mutation.AppendPushSubscriptionIds(v)
	return _u
}

// ClearPushSubscriptionIds clears the value of the "push_subscription_ids" field.
func (_u *PushNotificationUpdate) ClearPushSubscriptionIds() *PushNotificationUpdate {
	_u.mutation.ClearPushSubscriptionIds()
	return _u
}

// SetContent sets the "content" field.
func (_u *PushNotificationUpdate) SetContent(v string) *PushNotificationUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PushNotificationUpdate) SetNillableContent(v *string) *PushNotificationUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PushNotificationUpdate) SetStatus(v pushnotification.Status) *PushNotificationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PushNotificationUpdate) SetNillableStatus(v *pushnotification.Status) *PushNotificationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PushNotificationUpdate) SetErrorMessage(v string) *PushNotificationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PushNotificationUpdate) SetNillableErrorMessage(v *string) *PushNotificationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PushNotificationUpdate) ClearErrorMessage() *PushNotificationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *PushNotificationUpdate) SetSentAt(v time.Time) *PushNotificationUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *PushNotificationUpdate) SetNillableSentAt(v *time.Time) *PushNotificationUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *PushNotificationUpdate) SetTriggeredBy(v string) *PushNotificationUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *PushNotificationUpdate) SetNillableTriggeredBy(v *string) *PushNotificationUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetLlmSnapshot sets the "llm_snapshot" field.
func (_u *PushNotificationUpdate) SetLlmSnapshot(v *domain.LLMRunResult) *PushNotificationUpdate {
	_u.mutation.SetLlmSnapshot(v)
	return _u
}

// ClearLlmSnapshot clears the value of the "llm_snapshot" field.
func (_u *PushNotificationUpdate) ClearLlmSnapshot() *PushNotificationUpdate {
	_u.mutation.ClearLlmSnapshot()
	return _u
}

// Mutation returns the PushNotificationMutation object of the builder.
func (_u *PushNotificationUpdate) Mutation() *PushNotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PushNotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushNotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PushNotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushNotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushNotificationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pushnotification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PushNotification.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PushNotification.user"`)
	}
	return nil
}

func (_u *PushNotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushnotification.Table, pushnotification.Columns, sqlgraph.NewFieldSpec(pushnotification.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PushSubscriptionIds(); ok {
		_spec.SetField(pushnotification.FieldPushSubscriptionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPushSubscriptionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pushnotification.FieldPushSubscriptionIds, value)
		})
	}
	if _u.mutation.PushSubscriptionIdsCleared() {
		_spec.ClearField(pushnotification.FieldPushSubscriptionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(pushnotification.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pushnotification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pushnotification.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pushnotification.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(pushnotification.FieldSentAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(pushnotification.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmSnapshot(); ok {
		_spec.SetField(pushnotification.FieldLlmSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.LlmSnapshotCleared() {
		_spec.ClearField(pushnotification.FieldLlmSnapshot, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PushNotificationUpdateOne is the builder for updating a single PushNotification entity.
type PushNotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PushNotificationMutation
}

// SetPushSubscriptionIds sets the "push_subscription_ids" field.
func (_u *PushNotificationUpdateOne) SetPushSubscriptionIds(v []uuid.UUID) *PushNotificationUpdateOne {
	_u.mutation.SetPushSubscriptionIds(v)
	return _u
}

// AppendPushSubscriptionIds appends value to the "push_subscription_ids" field.
func (_u *PushNotificationUpdateOne) AppendPushSubscriptionIds(v []uuid.UUID) *PushNotificationUpdateOne {
	_u.mutation.AppendPushSubscriptionIds(v)
	return _u
}

// ClearPushSubscriptionIds clears the value of the "push_subscription_ids" field.
func (_u *PushNotificationUpdateOne) ClearPushSubscriptionIds() *PushNotificationUpdateOne {
	_u.mutation.ClearPushSubscriptionIds()
	return _u
}

// SetContent sets the "content" field.
func (_u *PushNotificationUpdateOne) SetContent(v string) *PushNotificationUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PushNotificationUpdateOne) SetNillableContent(v *string) *PushNotificationUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PushNotificationUpdateOne) SetStatus(v pushnotification.Status) *PushNotificationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PushNotificationUpdateOne) SetNillableStatus(v *pushnotification.Status) *PushNotificationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PushNotificationUpdateOne) SetErrorMessage(v string) *PushNotificationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PushNotificationUpdateOne) SetNillableErrorMessage(v *string) *PushNotificationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PushNotificationUpdateOne) ClearErrorMessage() *PushNotificationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *PushNotificationUpdateOne) SetSentAt(v time.Time) *PushNotificationUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *PushNotificationUpdateOne) SetNillableSentAt(v *time.Time) *PushNotificationUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *PushNotificationUpdateOne) SetTriggeredBy(v string) *PushNotificationUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *PushNotificationUpdateOne) SetNillableTriggeredBy(v *string) *PushNotificationUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetLlmSnapshot sets the "llm_snapshot" field.
func (_u *PushNotificationUpdateOne) SetLlmSnapshot(v *domain.LLMRunResult) *PushNotificationUpdateOne {
	_u.mutation.SetLlmSnapshot(v)
	return _u
}

// ClearLlmSnapshot clears the value of the "llm_snapshot" field.
func (_u *PushNotificationUpdateOne) ClearLlmSnapshot() *PushNotificationUpdateOne {
	_u.mutation.ClearLlmSnapshot()
	return _u
}

// Mutation returns the PushNotificationMutation object of the builder.
func (_u *PushNotificationUpdateOne) Mutation() *PushNotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the PushNotificationUpdate builder.
func (_u *PushNotificationUpdateOne) Where(ps ...predicate.PushNotification) *PushNotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PushNotificationUpdateOne) Select(field string, fields ...string) *PushNotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PushNotification entity.
func (_u *PushNotificationUpdateOne) Save(ctx context.Context) (*PushNotification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushNotificationUpdateOne) SaveX(ctx context.Context) *PushNotification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PushNotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushNotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushNotificationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pushnotification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PushNotification.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PushNotification.user"`)
	}
	return nil
}

func (_u *PushNotificationUpdateOne) sqlSave(ctx context.Context) (_node *PushNotification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushnotification.Table, pushnotification.Columns, sqlgraph.NewFieldSpec(pushnotification.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PushNotification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pushnotification.FieldID)
		for _, f := range fields {
			if !pushnotification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pushnotification.FieldID {
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
	if value, ok := _u.mutation.PushSubscriptionIds(); ok {
		_spec.SetField(pushnotification.FieldPushSubscriptionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPushSubscriptionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pushnotification.FieldPushSubscriptionIds, value)
		})
	}
	if _u.mutation.PushSubscriptionIdsCleared() {
		_spec.ClearField(pushnotification.FieldPushSubscriptionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(pushnotification.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pushnotification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pushnotification.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pushnotification.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(pushnotification.FieldSentAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(pushnotification.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmSnapshot(); ok {
		_spec.SetField(pushnotification.FieldLlmSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.LlmSnapshotCleared() {
		_spec.ClearField(pushnotification.FieldLlmSnapshot, field.TypeJSON)
	}
	_node = &PushNotification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
