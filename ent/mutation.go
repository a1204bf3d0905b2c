// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/auditlog"
	"github.com/daybreakhq/daybreak/ent/braindump"
	"github.com/daybreakhq/daybreak/ent/calendarentry"
	"github.com/daybreakhq/daybreak/ent/calendarentryseries"
	"github.com/daybreakhq/daybreak/ent/day"
	"github.com/daybreakhq/daybreak/ent/daytemplate"
	"github.com/daybreakhq/daybreak/ent/event"
	"github.com/daybreakhq/daybreak/ent/job"
	"github.com/daybreakhq/daybreak/ent/message"
	"github.com/daybreakhq/daybreak/ent/predicate"
	"github.com/daybreakhq/daybreak/ent/pushnotification"
	"github.com/daybreakhq/daybreak/ent/pushsubscription"
	"github.com/daybreakhq/daybreak/ent/routine"
	"github.com/daybreakhq/daybreak/ent/task"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog            = "AuditLog"
	TypeBrainDump           = "BrainDump"
	TypeCalendarEntry       = "CalendarEntry"
	TypeCalendarEntrySeries = "CalendarEntrySeries"
	TypeDay                 = "Day"
	TypeDayTemplate         = "DayTemplate"
	TypeEvent               = "Event"
	TypeJob                 = "Job"
	TypeMessage             = "Message"
	TypePushNotification    = "PushNotification"
	TypePushSubscription    = "PushSubscription"
	TypeRoutine             = "Routine"
	TypeTask                = "Task"
	TypeUser                = "User"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	activity_type *string
	entity_id     *uuid.UUID
	entity_type   *string
	occurred_at   *time.Time
	meta          *map[string]interface{}
	clearedFields map[string]struct{}
	user          *uuid.UUID
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id uuid.UUID) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AuditLogMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditLogMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditLogMutation) ResetUserID() {
	m.user = nil
}

// SetActivityType sets the "activity_type" field.
func (m *AuditLogMutation) SetActivityType(s string) {
	m.activity_type = &s
}

// ActivityType returns the value of the "activity_type" field in the mutation.
func (m *AuditLogMutation) ActivityType() (r string, exists bool) {
	v := m.activity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityType returns the old "activity_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActivityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityType: %w", err)
	}
	return oldValue.ActivityType, nil
}

// ResetActivityType resets all changes to the "activity_type" field.
func (m *AuditLogMutation) ResetActivityType() {
	m.activity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditLogMutation) SetEntityID(u uuid.UUID) {
	m.entity_id = &u
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditLogMutation) EntityID() (r uuid.UUID, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditLogMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *AuditLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AuditLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AuditLogMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *AuditLogMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *AuditLogMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *AuditLogMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetMeta sets the "meta" field.
func (m *AuditLogMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *AuditLogMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *AuditLogMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[auditlog.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *AuditLogMutation) MetaCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *AuditLogMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, auditlog.FieldMeta)
}

// ClearUser clears the "user" edge to the User entity.
func (m *AuditLogMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[auditlog.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AuditLogMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AuditLogMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AuditLogMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user != nil {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.activity_type != nil {
		fields = append(fields, auditlog.FieldActivityType)
	}
	if m.entity_id != nil {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.entity_type != nil {
		fields = append(fields, auditlog.FieldEntityType)
	}
	if m.occurred_at != nil {
		fields = append(fields, auditlog.FieldOccurredAt)
	}
	if m.meta != nil {
		fields = append(fields, auditlog.FieldMeta)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldUserID:
		return m.UserID()
	case auditlog.FieldActivityType:
		return m.ActivityType()
	case auditlog.FieldEntityID:
		return m.EntityID()
	case auditlog.FieldEntityType:
		return m.EntityType()
	case auditlog.FieldOccurredAt:
		return m.OccurredAt()
	case auditlog.FieldMeta:
		return m.Meta()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldUserID:
		return m.OldUserID(ctx)
	case auditlog.FieldActivityType:
		return m.OldActivityType(ctx)
	case auditlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditlog.FieldEntityType:
		return m.OldEntityType(ctx)
	case auditlog.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case auditlog.FieldMeta:
		return m.OldMeta(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case auditlog.FieldActivityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityType(v)
		return nil
	case auditlog.FieldEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditlog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case auditlog.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case auditlog.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldMeta) {
		fields = append(fields, auditlog.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldUserID:
		m.ResetUserID()
		return nil
	case auditlog.FieldActivityType:
		m.ResetActivityType()
		return nil
	case auditlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditlog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case auditlog.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case auditlog.FieldMeta:
		m.ResetMeta()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, auditlog.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlog.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, auditlog.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlog.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	switch name {
	case auditlog.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	switch name {
	case auditlog.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// BrainDumpMutation represents an operation that mutates the BrainDump nodes in the graph.
type BrainDumpMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	date          *string
	items         *[]domain.BrainDumpItem
	appenditems   []domain.BrainDumpItem
	clearedFields map[string]struct{}
	user          *uuid.UUID
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*BrainDump, error)
	predicates    []predicate.BrainDump
}

var _ ent.Mutation = (*BrainDumpMutation)(nil)

// braindumpOption allows management of the mutation configuration using functional options.
type braindumpOption func(*BrainDumpMutation)

// newBrainDumpMutation creates new mutation for the BrainDump entity.
func newBrainDumpMutation(c config, op Op, opts ...braindumpOption) *BrainDumpMutation {
	m := &BrainDumpMutation{
		config:        c,
		op:            op,
		typ:           TypeBrainDump,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBrainDumpID sets the ID field of the mutation.
func withBrainDumpID(id uuid.UUID) braindumpOption {
	return func(m *BrainDumpMutation) {
		var (
			err   error
			once  sync.Once
			value *BrainDump
		)
		m.oldValue = func(ctx context.Context) (*BrainDump, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BrainDump.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBrainDump sets the old BrainDump of the mutation.
func withBrainDump(node *BrainDump) braindumpOption {
	return func(m *BrainDumpMutation) {
		m.oldValue = func(context.Context) (*BrainDump, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BrainDumpMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BrainDumpMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BrainDump entities.
func (m *BrainDumpMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BrainDumpMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BrainDumpMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BrainDump.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BrainDumpMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BrainDumpMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BrainDump entity.
// If the BrainDump object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrainDumpMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BrainDumpMutation) ResetUserID() {
	m.user = nil
}

// SetDate sets the "date" field.
func (m *BrainDumpMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *BrainDumpMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the BrainDump entity.
// If the BrainDump object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrainDumpMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *BrainDumpMutation) ResetDate() {
	m.date = nil
}

// SetItems sets the "items" field.
func (m *BrainDumpMutation) SetItems(ddi []domain.BrainDumpItem) {
	m.items = &ddi
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *BrainDumpMutation) Items() (r []domain.BrainDumpItem, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the BrainDump entity.
// If the BrainDump object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BrainDumpMutation) OldItems(ctx context.Context) (v []domain.BrainDumpItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds ddi to the "items" field.
func (m *BrainDumpMutation) AppendItems(ddi []domain.BrainDumpItem) {
	m.appenditems = append(m.appenditems, ddi...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *BrainDumpMutation) AppendedItems() ([]domain.BrainDumpItem, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ClearItems clears the value of the "items" field.
func (m *BrainDumpMutation) ClearItems() {
	m.items = nil
	m.appenditems = nil
	m.clearedFields[braindump.FieldItems] = struct{}{}
}

// ItemsCleared returns if the "items" field was cleared in this mutation.
func (m *BrainDumpMutation) ItemsCleared() bool {
	_, ok := m.clearedFields[braindump.FieldItems]
	return ok
}

// ResetItems resets all changes to the "items" field.
func (m *BrainDumpMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
	delete(m.clearedFields, braindump.FieldItems)
}

// ClearUser clears the "user" edge to the User entity.
func (m *BrainDumpMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[braindump.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *BrainDumpMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *BrainDumpMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *BrainDumpMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the BrainDumpMutation builder.
func (m *BrainDumpMutation) Where(ps ...predicate.BrainDump) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BrainDumpMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BrainDumpMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BrainDump, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BrainDumpMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BrainDumpMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BrainDump).
func (m *BrainDumpMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BrainDumpMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user != nil {
		fields = append(fields, braindump.FieldUserID)
	}
	if m.date != nil {
		fields = append(fields, braindump.FieldDate)
	}
	if m.items != nil {
		fields = append(fields, braindump.FieldItems)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BrainDumpMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case braindump.FieldUserID:
		return m.UserID()
	case braindump.FieldDate:
		return m.Date()
	case braindump.FieldItems:
		return m.Items()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BrainDumpMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case braindump.FieldUserID:
		return m.OldUserID(ctx)
	case braindump.FieldDate:
		return m.OldDate(ctx)
	case braindump.FieldItems:
		return m.OldItems(ctx)
	}
	return nil, fmt.Errorf("unknown BrainDump field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BrainDumpMutation) SetField(name string, value ent.Value) error {
	switch name {
	case braindump.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case braindump.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case braindump.FieldItems:
		v, ok := value.([]domain.BrainDumpItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	}
	return fmt.Errorf("unknown BrainDump field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BrainDumpMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BrainDumpMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BrainDumpMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BrainDump numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BrainDumpMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(braindump.FieldItems) {
		fields = append(fields, braindump.FieldItems)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BrainDumpMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BrainDumpMutation) ClearField(name string) error {
	switch name {
	case braindump.FieldItems:
		m.ClearItems()
		return nil
	}
	return fmt.Errorf("unknown BrainDump nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BrainDumpMutation) ResetField(name string) error {
	switch name {
	case braindump.FieldUserID:
		m.ResetUserID()
		return nil
	case braindump.FieldDate:
		m.ResetDate()
		return nil
	case braindump.FieldItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown BrainDump field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BrainDumpMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, braindump.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BrainDumpMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case braindump.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BrainDumpMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BrainDumpMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BrainDumpMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, braindump.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BrainDumpMutation) EdgeCleared(name string) bool {
	switch name {
	case braindump.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BrainDumpMutation) ClearEdge(name string) error {
	switch name {
	case braindump.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown BrainDump unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BrainDumpMutation) ResetEdge(name string) error {
	switch name {
	case braindump.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown BrainDump edge %s", name)
}

// CalendarEntryMutation represents an operation that mutates the CalendarEntry nodes in the graph.
type CalendarEntryMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	platform                 *string
	platform_id              *string
	calendar_entry_series_id *uuid.UUID
	name                     *string
	starts_at                *time.Time
	ends_at                  *time.Time
	frequency                *string
	event_category           *string
	attendance_status        *string
	clearedFields            map[string]struct{}
	user                     *uuid.UUID
	cleareduser              bool
	done                     bool
	oldValue                 func(context.Context) (*CalendarEntry, error)
	predicates               []predicate.CalendarEntry
}

var _ ent.Mutation = (*CalendarEntryMutation)(nil)

// calendarentryOption allows management of the mutation configuration using functional options.
type calendarentryOption func(*CalendarEntryMutation)

// newCalendarEntryMutation creates new mutation for the CalendarEntry entity.
func newCalendarEntryMutation(c config, op Op, opts ...calendarentryOption) *CalendarEntryMutation {
	m := &CalendarEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarEntryID sets the ID field of the mutation.
func withCalendarEntryID(id uuid.UUID) calendarentryOption {
	return func(m *CalendarEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarEntry
		)
		m.oldValue = func(ctx context.Context) (*CalendarEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarEntry sets the old CalendarEntry of the mutation.
func withCalendarEntry(node *CalendarEntry) calendarentryOption {
	return func(m *CalendarEntryMutation) {
		m.oldValue = func(context.Context) (*CalendarEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarEntry entities.
func (m *CalendarEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CalendarEntryMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CalendarEntryMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CalendarEntryMutation) ResetUserID() {
	m.user = nil
}

// SetPlatform sets the "platform" field.
func (m *CalendarEntryMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *CalendarEntryMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *CalendarEntryMutation) ResetPlatform() {
	m.platform = nil
}

// SetPlatformID sets the "platform_id" field.
func (m *CalendarEntryMutation) SetPlatformID(s string) {
	m.platform_id = &s
}

// PlatformID returns the value of the "platform_id" field in the mutation.
func (m *CalendarEntryMutation) PlatformID() (r string, exists bool) {
	v := m.platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformID returns the old "platform_id" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldPlatformID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformID: %w", err)
	}
	return oldValue.PlatformID, nil
}

// ResetPlatformID resets all changes to the "platform_id" field.
func (m *CalendarEntryMutation) ResetPlatformID() {
	m.platform_id = nil
}

// SetCalendarEntrySeriesID sets the "calendar_entry_series_id" field.
func (m *CalendarEntryMutation) SetCalendarEntrySeriesID(u uuid.UUID) {
	m.calendar_entry_series_id = &u
}

// CalendarEntrySeriesID returns the value of the "calendar_entry_series_id" field in the mutation.
func (m *CalendarEntryMutation) CalendarEntrySeriesID() (r uuid.UUID, exists bool) {
	v := m.calendar_entry_series_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarEntrySeriesID returns the old "calendar_entry_series_id" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldCalendarEntrySeriesID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarEntrySeriesID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarEntrySeriesID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarEntrySeriesID: %w", err)
	}
	return oldValue.CalendarEntrySeriesID, nil
}

// ClearCalendarEntrySeriesID clears the value of the "calendar_entry_series_id" field.
func (m *CalendarEntryMutation) ClearCalendarEntrySeriesID() {
	m.calendar_entry_series_id = nil
	m.clearedFields[calendarentry.FieldCalendarEntrySeriesID] = struct{}{}
}

// CalendarEntrySeriesIDCleared returns if the "calendar_entry_series_id" field was cleared in this mutation.
func (m *CalendarEntryMutation) CalendarEntrySeriesIDCleared() bool {
	_, ok := m.clearedFields[calendarentry.FieldCalendarEntrySeriesID]
	return ok
}

// ResetCalendarEntrySeriesID resets all changes to the "calendar_entry_series_id" field.
func (m *CalendarEntryMutation) ResetCalendarEntrySeriesID() {
	m.calendar_entry_series_id = nil
	delete(m.clearedFields, calendarentry.FieldCalendarEntrySeriesID)
}

// SetName sets the "name" field.
func (m *CalendarEntryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CalendarEntryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CalendarEntryMutation) ResetName() {
	m.name = nil
}

// SetStartsAt sets the "starts_at" field.
func (m *CalendarEntryMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *CalendarEntryMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *CalendarEntryMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *CalendarEntryMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *CalendarEntryMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldEndsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *CalendarEntryMutation) ResetEndsAt() {
	m.ends_at = nil
}

// SetFrequency sets the "frequency" field.
func (m *CalendarEntryMutation) SetFrequency(s string) {
	m.frequency = &s
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *CalendarEntryMutation) Frequency() (r string, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// ClearFrequency clears the value of the "frequency" field.
func (m *CalendarEntryMutation) ClearFrequency() {
	m.frequency = nil
	m.clearedFields[calendarentry.FieldFrequency] = struct{}{}
}

// FrequencyCleared returns if the "frequency" field was cleared in this mutation.
func (m *CalendarEntryMutation) FrequencyCleared() bool {
	_, ok := m.clearedFields[calendarentry.FieldFrequency]
	return ok
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *CalendarEntryMutation) ResetFrequency() {
	m.frequency = nil
	delete(m.clearedFields, calendarentry.FieldFrequency)
}

// SetEventCategory sets the "event_category" field.
func (m *CalendarEntryMutation) SetEventCategory(s string) {
	m.event_category = &s
}

// EventCategory returns the value of the "event_category" field in the mutation.
func (m *CalendarEntryMutation) EventCategory() (r string, exists bool) {
	v := m.event_category
	if v == nil {
		return
	}
	return *v, true
}

// OldEventCategory returns the old "event_category" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldEventCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventCategory: %w", err)
	}
	return oldValue.EventCategory, nil
}

// ClearEventCategory clears the value of the "event_category" field.
func (m *CalendarEntryMutation) ClearEventCategory() {
	m.event_category = nil
	m.clearedFields[calendarentry.FieldEventCategory] = struct{}{}
}

// EventCategoryCleared returns if the "event_category" field was cleared in this mutation.
func (m *CalendarEntryMutation) EventCategoryCleared() bool {
	_, ok := m.clearedFields[calendarentry.FieldEventCategory]
	return ok
}

// ResetEventCategory resets all changes to the "event_category" field.
func (m *CalendarEntryMutation) ResetEventCategory() {
	m.event_category = nil
	delete(m.clearedFields, calendarentry.FieldEventCategory)
}

// SetAttendanceStatus sets the "attendance_status" field.
func (m *CalendarEntryMutation) SetAttendanceStatus(s string) {
	m.attendance_status = &s
}

// AttendanceStatus returns the value of the "attendance_status" field in the mutation.
func (m *CalendarEntryMutation) AttendanceStatus() (r string, exists bool) {
	v := m.attendance_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAttendanceStatus returns the old "attendance_status" field's value of the CalendarEntry entity.
// If the CalendarEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntryMutation) OldAttendanceStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttendanceStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttendanceStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttendanceStatus: %w", err)
	}
	return oldValue.AttendanceStatus, nil
}

// ClearAttendanceStatus clears the value of the "attendance_status" field.
func (m *CalendarEntryMutation) ClearAttendanceStatus() {
	m.attendance_status = nil
	m.clearedFields[calendarentry.FieldAttendanceStatus] = struct{}{}
}

// AttendanceStatusCleared returns if the "attendance_status" field was cleared in this mutation.
func (m *CalendarEntryMutation) AttendanceStatusCleared() bool {
	_, ok := m.clearedFields[calendarentry.FieldAttendanceStatus]
	return ok
}

// ResetAttendanceStatus resets all changes to the "attendance_status" field.
func (m *CalendarEntryMutation) ResetAttendanceStatus() {
	m.attendance_status = nil
	delete(m.clearedFields, calendarentry.FieldAttendanceStatus)
}

// ClearUser clears the "user" edge to the User entity.
func (m *CalendarEntryMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[calendarentry.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *CalendarEntryMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *CalendarEntryMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *CalendarEntryMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the CalendarEntryMutation builder.
func (m *CalendarEntryMutation) Where(ps ...predicate.CalendarEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarEntry).
func (m *CalendarEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user != nil {
		fields = append(fields, calendarentry.FieldUserID)
	}
	if m.platform != nil {
		fields = append(fields, calendarentry.FieldPlatform)
	}
	if m.platform_id != nil {
		fields = append(fields, calendarentry.FieldPlatformID)
	}
	if m.calendar_entry_series_id != nil {
		fields = append(fields, calendarentry.FieldCalendarEntrySeriesID)
	}
	if m.name != nil {
		fields = append(fields, calendarentry.FieldName)
	}
	if m.starts_at != nil {
		fields = append(fields, calendarentry.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, calendarentry.FieldEndsAt)
	}
	if m.frequency != nil {
		fields = append(fields, calendarentry.FieldFrequency)
	}
	if m.event_category != nil {
		fields = append(fields, calendarentry.FieldEventCategory)
	}
	if m.attendance_status != nil {
		fields = append(fields, calendarentry.FieldAttendanceStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarentry.FieldUserID:
		return m.UserID()
	case calendarentry.FieldPlatform:
		return m.Platform()
	case calendarentry.FieldPlatformID:
		return m.PlatformID()
	case calendarentry.FieldCalendarEntrySeriesID:
		return m.CalendarEntrySeriesID()
	case calendarentry.FieldName:
		return m.Name()
	case calendarentry.FieldStartsAt:
		return m.StartsAt()
	case calendarentry.FieldEndsAt:
		return m.EndsAt()
	case calendarentry.FieldFrequency:
		return m.Frequency()
	case calendarentry.FieldEventCategory:
		return m.EventCategory()
	case calendarentry.FieldAttendanceStatus:
		return m.AttendanceStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarentry.FieldUserID:
		return m.OldUserID(ctx)
	case calendarentry.FieldPlatform:
		return m.OldPlatform(ctx)
	case calendarentry.FieldPlatformID:
		return m.OldPlatformID(ctx)
	case calendarentry.FieldCalendarEntrySeriesID:
		return m.OldCalendarEntrySeriesID(ctx)
	case calendarentry.FieldName:
		return m.OldName(ctx)
	case calendarentry.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case calendarentry.FieldEndsAt:
		return m.OldEndsAt(ctx)
	case calendarentry.FieldFrequency:
		return m.OldFrequency(ctx)
	case calendarentry.FieldEventCategory:
		return m.OldEventCategory(ctx)
	case calendarentry.FieldAttendanceStatus:
		return m.OldAttendanceStatus(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarentry.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case calendarentry.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case calendarentry.FieldPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformID(v)
		return nil
	case calendarentry.FieldCalendarEntrySeriesID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarEntrySeriesID(v)
		return nil
	case calendarentry.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case calendarentry.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case calendarentry.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	case calendarentry.FieldFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case calendarentry.FieldEventCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventCategory(v)
		return nil
	case calendarentry.FieldAttendanceStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttendanceStatus(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calendarentry.FieldCalendarEntrySeriesID) {
		fields = append(fields, calendarentry.FieldCalendarEntrySeriesID)
	}
	if m.FieldCleared(calendarentry.FieldFrequency) {
		fields = append(fields, calendarentry.FieldFrequency)
	}
	if m.FieldCleared(calendarentry.FieldEventCategory) {
		fields = append(fields, calendarentry.FieldEventCategory)
	}
	if m.FieldCleared(calendarentry.FieldAttendanceStatus) {
		fields = append(fields, calendarentry.FieldAttendanceStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarEntryMutation) ClearField(name string) error {
	switch name {
	case calendarentry.FieldCalendarEntrySeriesID:
		m.ClearCalendarEntrySeriesID()
		return nil
	case calendarentry.FieldFrequency:
		m.ClearFrequency()
		return nil
	case calendarentry.FieldEventCategory:
		m.ClearEventCategory()
		return nil
	case calendarentry.FieldAttendanceStatus:
		m.ClearAttendanceStatus()
		return nil
	}
	return fmt.Errorf("unknown CalendarEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarEntryMutation) ResetField(name string) error {
	switch name {
	case calendarentry.FieldUserID:
		m.ResetUserID()
		return nil
	case calendarentry.FieldPlatform:
		m.ResetPlatform()
		return nil
	case calendarentry.FieldPlatformID:
		m.ResetPlatformID()
		return nil
	case calendarentry.FieldCalendarEntrySeriesID:
		m.ResetCalendarEntrySeriesID()
		return nil
	case calendarentry.FieldName:
		m.ResetName()
		return nil
	case calendarentry.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case calendarentry.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	case calendarentry.FieldFrequency:
		m.ResetFrequency()
		return nil
	case calendarentry.FieldEventCategory:
		m.ResetEventCategory()
		return nil
	case calendarentry.FieldAttendanceStatus:
		m.ResetAttendanceStatus()
		return nil
	}
	return fmt.Errorf("unknown CalendarEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, calendarentry.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case calendarentry.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, calendarentry.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case calendarentry.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarEntryMutation) ClearEdge(name string) error {
	switch name {
	case calendarentry.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown CalendarEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarEntryMutation) ResetEdge(name string) error {
	switch name {
	case calendarentry.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown CalendarEntry edge %s", name)
}

// CalendarEntrySeriesMutation represents an operation that mutates the CalendarEntrySeries nodes in the graph.
type CalendarEntrySeriesMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	platform       *string
	platform_id    *string
	name           *string
	frequency      *string
	event_category *string
	recurrence     *string
	starts_at      *time.Time
	ends_at        *time.Time
	clearedFields  map[string]struct{}
	user           *uuid.UUID
	cleareduser    bool
	done           bool
	oldValue       func(context.Context) (*CalendarEntrySeries, error)
	predicates     []predicate.CalendarEntrySeries
}

var _ ent.Mutation = (*CalendarEntrySeriesMutation)(nil)

// calendarentryseriesOption allows management of the mutation configuration using functional options.
type calendarentryseriesOption func(*CalendarEntrySeriesMutation)

// newCalendarEntrySeriesMutation creates new mutation for the CalendarEntrySeries entity.
func newCalendarEntrySeriesMutation(c config, op Op, opts ...calendarentryseriesOption) *CalendarEntrySeriesMutation {
	m := &CalendarEntrySeriesMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarEntrySeries,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarEntrySeriesID sets the ID field of the mutation.
func withCalendarEntrySeriesID(id uuid.UUID) calendarentryseriesOption {
	return func(m *CalendarEntrySeriesMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarEntrySeries
		)
		m.oldValue = func(ctx context.Context) (*CalendarEntrySeries, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarEntrySeries.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarEntrySeries sets the old CalendarEntrySeries of the mutation.
func withCalendarEntrySeries(node *CalendarEntrySeries) calendarentryseriesOption {
	return func(m *CalendarEntrySeriesMutation) {
		m.oldValue = func(context.Context) (*CalendarEntrySeries, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarEntrySeriesMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarEntrySeriesMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarEntrySeries entities.
func (m *CalendarEntrySeriesMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarEntrySeriesMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarEntrySeriesMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarEntrySeries.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CalendarEntrySeriesMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CalendarEntrySeriesMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CalendarEntrySeries entity.
// If the CalendarEntrySeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntrySeriesMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CalendarEntrySeriesMutation) ResetUserID() {
	m.user = nil
}

// SetPlatform sets the "platform" field.
func (m *CalendarEntrySeriesMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *CalendarEntrySeriesMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the CalendarEntrySeries entity.
// If the CalendarEntrySeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntrySeriesMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *CalendarEntrySeriesMutation) ResetPlatform() {
	m.platform = nil
}

// SetPlatformID sets the "platform_id" field.
func (m *CalendarEntrySeriesMutation) SetPlatformID(s string) {
	m.platform_id = &s
}

// PlatformID returns the value of the "platform_id" field in the mutation.
func (m *CalendarEntrySeriesMutation) PlatformID() (r string, exists bool) {
	v := m.platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformID returns the old "platform_id" field's value of the CalendarEntrySeries entity.
// If the CalendarEntrySeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntrySeriesMutation) OldPlatformID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformID: %w", err)
	}
	return oldValue.PlatformID, nil
}

// ResetPlatformID resets all changes to the "platform_id" field.
func (m *CalendarEntrySeriesMutation) ResetPlatformID() {
	m.platform_id = nil
}

// SetName sets the "name" field.
func (m *CalendarEntrySeriesMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CalendarEntrySeriesMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CalendarEntrySeries entity.
// If the CalendarEntrySeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntrySeriesMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CalendarEntrySeriesMutation) ResetName() {
	m.name = nil
}

// SetFrequency sets the "frequency" field.
func (m *CalendarEntrySeriesMutation) SetFrequency(s string) {
	m.frequency = &s
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *CalendarEntrySeriesMutation) Frequency() (r string, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the CalendarEntrySeries entity.
// If the CalendarEntrySeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntrySeriesMutation) OldFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// ClearFrequency clears the value of the "frequency" field.
func (m *CalendarEntrySeriesMutation) ClearFrequency() {
	m.frequency = nil
	m.clearedFields[calendarentryseries.FieldFrequency] = struct{}{}
}

// FrequencyCleared returns if the "frequency" field was cleared in this mutation.
func (m *CalendarEntrySeriesMutation) FrequencyCleared() bool {
	_, ok := m.clearedFields[calendarentryseries.FieldFrequency]
	return ok
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *CalendarEntrySeriesMutation) ResetFrequency() {
	m.frequency = nil
	delete(m.clearedFields, calendarentryseries.FieldFrequency)
}

// SetEventCategory sets the "event_category" field.
func (m *CalendarEntrySeriesMutation) SetEventCategory(s string) {
	m.event_category = &s
}

// EventCategory returns the value of the "event_category" field in the mutation.
func (m *CalendarEntrySeriesMutation) EventCategory() (r string, exists bool) {
	v := m.event_category
	if v == nil {
		return
	}
	return *v, true
}

// OldEventCategory returns the old "event_category" field's value of the CalendarEntrySeries entity.
// If the CalendarEntrySeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntrySeriesMutation) OldEventCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventCategory: %w", err)
	}
	return oldValue.EventCategory, nil
}

// ClearEventCategory clears the value of the "event_category" field.
func (m *CalendarEntrySeriesMutation) ClearEventCategory() {
	m.event_category = nil
	m.clearedFields[calendarentryseries.FieldEventCategory] = struct{}{}
}

// EventCategoryCleared returns if the "event_category" field was cleared in this mutation.
func (m *CalendarEntrySeriesMutation) EventCategoryCleared() bool {
	_, ok := m.clearedFields[calendarentryseries.FieldEventCategory]
	return ok
}

// ResetEventCategory resets all changes to the "event_category" field.
func (m *CalendarEntrySeriesMutation) ResetEventCategory() {
	m.event_category = nil
	delete(m.clearedFields, calendarentryseries.FieldEventCategory)
}

// SetRecurrence sets the "recurrence" field.
func (m *CalendarEntrySeriesMutation) SetRecurrence(s string) {
	m.recurrence = &s
}

// Recurrence returns the value of the "recurrence" field in the mutation.
func (m *CalendarEntrySeriesMutation) Recurrence() (r string, exists bool) {
	v := m.recurrence
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurrence returns the old "recurrence" field's value of the CalendarEntrySeries entity.
// If the CalendarEntrySeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntrySeriesMutation) OldRecurrence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurrence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurrence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurrence: %w", err)
	}
	return oldValue.Recurrence, nil
}

// ClearRecurrence clears the value of the "recurrence" field.
func (m *CalendarEntrySeriesMutation) ClearRecurrence() {
	m.recurrence = nil
	m.clearedFields[calendarentryseries.FieldRecurrence] = struct{}{}
}

// RecurrenceCleared returns if the "recurrence" field was cleared in this mutation.
func (m *CalendarEntrySeriesMutation) RecurrenceCleared() bool {
	_, ok := m.clearedFields[calendarentryseries.FieldRecurrence]
	return ok
}

// ResetRecurrence resets all changes to the "recurrence" field.
func (m *CalendarEntrySeriesMutation) ResetRecurrence() {
	m.recurrence = nil
	delete(m.clearedFields, calendarentryseries.FieldRecurrence)
}

// SetStartsAt sets the "starts_at" field.
func (m *CalendarEntrySeriesMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *CalendarEntrySeriesMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the CalendarEntrySeries entity.
// If the CalendarEntrySeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntrySeriesMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *CalendarEntrySeriesMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *CalendarEntrySeriesMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *CalendarEntrySeriesMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the CalendarEntrySeries entity.
// If the CalendarEntrySeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEntrySeriesMutation) OldEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ClearEndsAt clears the value of the "ends_at" field.
func (m *CalendarEntrySeriesMutation) ClearEndsAt() {
	m.ends_at = nil
	m.clearedFields[calendarentryseries.FieldEndsAt] = struct{}{}
}

// EndsAtCleared returns if the "ends_at" field was cleared in this mutation.
func (m *CalendarEntrySeriesMutation) EndsAtCleared() bool {
	_, ok := m.clearedFields[calendarentryseries.FieldEndsAt]
	return ok
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *CalendarEntrySeriesMutation) ResetEndsAt() {
	m.ends_at = nil
	delete(m.clearedFields, calendarentryseries.FieldEndsAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *CalendarEntrySeriesMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[calendarentryseries.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *CalendarEntrySeriesMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *CalendarEntrySeriesMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *CalendarEntrySeriesMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the CalendarEntrySeriesMutation builder.
func (m *CalendarEntrySeriesMutation) Where(ps ...predicate.CalendarEntrySeries) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarEntrySeriesMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarEntrySeriesMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarEntrySeries, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarEntrySeriesMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarEntrySeriesMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarEntrySeries).
func (m *CalendarEntrySeriesMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarEntrySeriesMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user != nil {
		fields = append(fields, calendarentryseries.FieldUserID)
	}
	if m.platform != nil {
		fields = append(fields, calendarentryseries.FieldPlatform)
	}
	if m.platform_id != nil {
		fields = append(fields, calendarentryseries.FieldPlatformID)
	}
	if m.name != nil {
		fields = append(fields, calendarentryseries.FieldName)
	}
	if m.frequency != nil {
		fields = append(fields, calendarentryseries.FieldFrequency)
	}
	if m.event_category != nil {
		fields = append(fields, calendarentryseries.FieldEventCategory)
	}
	if m.recurrence != nil {
		fields = append(fields, calendarentryseries.FieldRecurrence)
	}
	if m.starts_at != nil {
		fields = append(fields, calendarentryseries.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, calendarentryseries.FieldEndsAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarEntrySeriesMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarentryseries.FieldUserID:
		return m.UserID()
	case calendarentryseries.FieldPlatform:
		return m.Platform()
	case calendarentryseries.FieldPlatformID:
		return m.PlatformID()
	case calendarentryseries.FieldName:
		return m.Name()
	case calendarentryseries.FieldFrequency:
		return m.Frequency()
	case calendarentryseries.FieldEventCategory:
		return m.EventCategory()
	case calendarentryseries.FieldRecurrence:
		return m.Recurrence()
	case calendarentryseries.FieldStartsAt:
		return m.StartsAt()
	case calendarentryseries.FieldEndsAt:
		return m.EndsAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarEntrySeriesMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarentryseries.FieldUserID:
		return m.OldUserID(ctx)
	case calendarentryseries.FieldPlatform:
		return m.OldPlatform(ctx)
	case calendarentryseries.FieldPlatformID:
		return m.OldPlatformID(ctx)
	case calendarentryseries.FieldName:
		return m.OldName(ctx)
	case calendarentryseries.FieldFrequency:
		return m.OldFrequency(ctx)
	case calendarentryseries.FieldEventCategory:
		return m.OldEventCategory(ctx)
	case calendarentryseries.FieldRecurrence:
		return m.OldRecurrence(ctx)
	case calendarentryseries.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case calendarentryseries.FieldEndsAt:
		return m.OldEndsAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarEntrySeries field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEntrySeriesMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarentryseries.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case calendarentryseries.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case calendarentryseries.FieldPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformID(v)
		return nil
	case calendarentryseries.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case calendarentryseries.FieldFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case calendarentryseries.FieldEventCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventCategory(v)
		return nil
	case calendarentryseries.FieldRecurrence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurrence(v)
		return nil
	case calendarentryseries.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case calendarentryseries.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarEntrySeries field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarEntrySeriesMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarEntrySeriesMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEntrySeriesMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarEntrySeries numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarEntrySeriesMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calendarentryseries.FieldFrequency) {
		fields = append(fields, calendarentryseries.FieldFrequency)
	}
	if m.FieldCleared(calendarentryseries.FieldEventCategory) {
		fields = append(fields, calendarentryseries.FieldEventCategory)
	}
	if m.FieldCleared(calendarentryseries.FieldRecurrence) {
		fields = append(fields, calendarentryseries.FieldRecurrence)
	}
	if m.FieldCleared(calendarentryseries.FieldEndsAt) {
		fields = append(fields, calendarentryseries.FieldEndsAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarEntrySeriesMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarEntrySeriesMutation) ClearField(name string) error {
	switch name {
	case calendarentryseries.FieldFrequency:
		m.ClearFrequency()
		return nil
	case calendarentryseries.FieldEventCategory:
		m.ClearEventCategory()
		return nil
	case calendarentryseries.FieldRecurrence:
		m.ClearRecurrence()
		return nil
	case calendarentryseries.FieldEndsAt:
		m.ClearEndsAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarEntrySeries nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarEntrySeriesMutation) ResetField(name string) error {
	switch name {
	case calendarentryseries.FieldUserID:
		m.ResetUserID()
		return nil
	case calendarentryseries.FieldPlatform:
		m.ResetPlatform()
		return nil
	case calendarentryseries.FieldPlatformID:
		m.ResetPlatformID()
		return nil
	case calendarentryseries.FieldName:
		m.ResetName()
		return nil
	case calendarentryseries.FieldFrequency:
		m.ResetFrequency()
		return nil
	case calendarentryseries.FieldEventCategory:
		m.ResetEventCategory()
		return nil
	case calendarentryseries.FieldRecurrence:
		m.ResetRecurrence()
		return nil
	case calendarentryseries.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case calendarentryseries.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarEntrySeries field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarEntrySeriesMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, calendarentryseries.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarEntrySeriesMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case calendarentryseries.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarEntrySeriesMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarEntrySeriesMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarEntrySeriesMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, calendarentryseries.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarEntrySeriesMutation) EdgeCleared(name string) bool {
	switch name {
	case calendarentryseries.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarEntrySeriesMutation) ClearEdge(name string) error {
	switch name {
	case calendarentryseries.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown CalendarEntrySeries unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarEntrySeriesMutation) ResetEdge(name string) error {
	switch name {
	case calendarentryseries.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown CalendarEntrySeries edge %s", name)
}

// DayMutation represents an operation that mutates the Day nodes in the graph.
type DayMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	date              *string
	status            *day.Status
	template_id       *uuid.UUID
	template_slug     *string
	time_blocks       *[]domain.TimeBlock
	appendtime_blocks []domain.TimeBlock
	high_level_plan   *domain.HighLevelPlan
	alarms            *[]domain.Alarm
	appendalarms      []domain.Alarm
	tags              *[]string
	appendtags        []string
	scheduled_at      *time.Time
	clearedFields     map[string]struct{}
	user              *uuid.UUID
	cleareduser       bool
	done              bool
	oldValue          func(context.Context) (*Day, error)
	predicates        []predicate.Day
}

var _ ent.Mutation = (*DayMutation)(nil)

// dayOption allows management of the mutation configuration using functional options.
type dayOption func(*DayMutation)

// newDayMutation creates new mutation for the Day entity.
func newDayMutation(c config, op Op, opts ...dayOption) *DayMutation {
	m := &DayMutation{
		config:        c,
		op:            op,
		typ:           TypeDay,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDayID sets the ID field of the mutation.
func withDayID(id uuid.UUID) dayOption {
	return func(m *DayMutation) {
		var (
			err   error
			once  sync.Once
			value *Day
		)
		m.oldValue = func(ctx context.Context) (*Day, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Day.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDay sets the old Day of the mutation.
func withDay(node *Day) dayOption {
	return func(m *DayMutation) {
		m.oldValue = func(context.Context) (*Day, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Day entities.
func (m *DayMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DayMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DayMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Day.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DayMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DayMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DayMutation) ResetUserID() {
	m.user = nil
}

// SetDate sets the "date" field.
func (m *DayMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *DayMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *DayMutation) ResetDate() {
	m.date = nil
}

// SetStatus sets the "status" field.
func (m *DayMutation) SetStatus(d day.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DayMutation) Status() (r day.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldStatus(ctx context.Context) (v day.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DayMutation) ResetStatus() {
	m.status = nil
}

// SetTemplateID sets the "template_id" field.
func (m *DayMutation) SetTemplateID(u uuid.UUID) {
	m.template_id = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *DayMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *DayMutation) ClearTemplateID() {
	m.template_id = nil
	m.clearedFields[day.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *DayMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[day.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *DayMutation) ResetTemplateID() {
	m.template_id = nil
	delete(m.clearedFields, day.FieldTemplateID)
}

// SetTemplateSlug sets the "template_slug" field.
func (m *DayMutation) SetTemplateSlug(s string) {
	m.template_slug = &s
}

// TemplateSlug returns the value of the "template_slug" field in the mutation.
func (m *DayMutation) TemplateSlug() (r string, exists bool) {
	v := m.template_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateSlug returns the old "template_slug" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldTemplateSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateSlug: %w", err)
	}
	return oldValue.TemplateSlug, nil
}

// ClearTemplateSlug clears the value of the "template_slug" field.
func (m *DayMutation) ClearTemplateSlug() {
	m.template_slug = nil
	m.clearedFields[day.FieldTemplateSlug] = struct{}{}
}

// TemplateSlugCleared returns if the "template_slug" field was cleared in this mutation.
func (m *DayMutation) TemplateSlugCleared() bool {
	_, ok := m.clearedFields[day.FieldTemplateSlug]
	return ok
}

// ResetTemplateSlug resets all changes to the "template_slug" field.
func (m *DayMutation) ResetTemplateSlug() {
	m.template_slug = nil
	delete(m.clearedFields, day.FieldTemplateSlug)
}

// SetTimeBlocks sets the "time_blocks" field.
func (m *DayMutation) SetTimeBlocks(db []domain.TimeBlock) {
	m.time_blocks = &db
	m.appendtime_blocks = nil
}

// TimeBlocks returns the value of the "time_blocks" field in the mutation.
func (m *DayMutation) TimeBlocks() (r []domain.TimeBlock, exists bool) {
	v := m.time_blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeBlocks returns the old "time_blocks" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldTimeBlocks(ctx context.Context) (v []domain.TimeBlock, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeBlocks: %w", err)
	}
	return oldValue.TimeBlocks, nil
}

// AppendTimeBlocks adds db to the "time_blocks" field.
func (m *DayMutation) AppendTimeBlocks(db []domain.TimeBlock) {
	m.appendtime_blocks = append(m.appendtime_blocks, db...)
}

// AppendedTimeBlocks returns the list of values that were appended to the "time_blocks" field in this mutation.
func (m *DayMutation) AppendedTimeBlocks() ([]domain.TimeBlock, bool) {
	if len(m.appendtime_blocks) == 0 {
		return nil, false
	}
	return m.appendtime_blocks, true
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (m *DayMutation) ClearTimeBlocks() {
	m.time_blocks = nil
	m.appendtime_blocks = nil
	m.clearedFields[day.FieldTimeBlocks] = struct{}{}
}

// TimeBlocksCleared returns if the "time_blocks" field was cleared in this mutation.
func (m *DayMutation) TimeBlocksCleared() bool {
	_, ok := m.clearedFields[day.FieldTimeBlocks]
	return ok
}

// ResetTimeBlocks resets all changes to the "time_blocks" field.
func (m *DayMutation) ResetTimeBlocks() {
	m.time_blocks = nil
	m.appendtime_blocks = nil
	delete(m.clearedFields, day.FieldTimeBlocks)
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (m *DayMutation) SetHighLevelPlan(dlp domain.HighLevelPlan) {
	m.high_level_plan = &dlp
}

// HighLevelPlan returns the value of the "high_level_plan" field in the mutation.
func (m *DayMutation) HighLevelPlan() (r domain.HighLevelPlan, exists bool) {
	v := m.high_level_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldHighLevelPlan returns the old "high_level_plan" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldHighLevelPlan(ctx context.Context) (v domain.HighLevelPlan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighLevelPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighLevelPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighLevelPlan: %w", err)
	}
	return oldValue.HighLevelPlan, nil
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (m *DayMutation) ClearHighLevelPlan() {
	m.high_level_plan = nil
	m.clearedFields[day.FieldHighLevelPlan] = struct{}{}
}

// HighLevelPlanCleared returns if the "high_level_plan" field was cleared in this mutation.
func (m *DayMutation) HighLevelPlanCleared() bool {
	_, ok := m.clearedFields[day.FieldHighLevelPlan]
	return ok
}

// ResetHighLevelPlan resets all changes to the "high_level_plan" field.
func (m *DayMutation) ResetHighLevelPlan() {
	m.high_level_plan = nil
	delete(m.clearedFields, day.FieldHighLevelPlan)
}

// SetAlarms sets the "alarms" field.
func (m *DayMutation) SetAlarms(d []domain.Alarm) {
	m.alarms = &d
	m.appendalarms = nil
}

// Alarms returns the value of the "alarms" field in the mutation.
func (m *DayMutation) Alarms() (r []domain.Alarm, exists bool) {
	v := m.alarms
	if v == nil {
		return
	}
	return *v, true
}

// OldAlarms returns the old "alarms" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldAlarms(ctx context.Context) (v []domain.Alarm, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlarms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlarms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlarms: %w", err)
	}
	return oldValue.Alarms, nil
}

// AppendAlarms adds d to the "alarms" field.
func (m *DayMutation) AppendAlarms(d []domain.Alarm) {
	m.appendalarms = append(m.appendalarms, d...)
}

// AppendedAlarms returns the list of values that were appended to the "alarms" field in this mutation.
func (m *DayMutation) AppendedAlarms() ([]domain.Alarm, bool) {
	if len(m.appendalarms) == 0 {
		return nil, false
	}
	return m.appendalarms, true
}

// ClearAlarms clears the value of the "alarms" field.
func (m *DayMutation) ClearAlarms() {
	m.alarms = nil
	m.appendalarms = nil
	m.clearedFields[day.FieldAlarms] = struct{}{}
}

// AlarmsCleared returns if the "alarms" field was cleared in this mutation.
func (m *DayMutation) AlarmsCleared() bool {
	_, ok := m.clearedFields[day.FieldAlarms]
	return ok
}

// ResetAlarms resets all changes to the "alarms" field.
func (m *DayMutation) ResetAlarms() {
	m.alarms = nil
	m.appendalarms = nil
	delete(m.clearedFields, day.FieldAlarms)
}

// SetTags sets the "tags" field.
func (m *DayMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *DayMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *DayMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *DayMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *DayMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[day.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *DayMutation) TagsCleared() bool {
	_, ok := m.clearedFields[day.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *DayMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, day.FieldTags)
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *DayMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *DayMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Day entity.
// If the Day object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayMutation) OldScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (m *DayMutation) ClearScheduledAt() {
	m.scheduled_at = nil
	m.clearedFields[day.FieldScheduledAt] = struct{}{}
}

// ScheduledAtCleared returns if the "scheduled_at" field was cleared in this mutation.
func (m *DayMutation) ScheduledAtCleared() bool {
	_, ok := m.clearedFields[day.FieldScheduledAt]
	return ok
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *DayMutation) ResetScheduledAt() {
	m.scheduled_at = nil
	delete(m.clearedFields, day.FieldScheduledAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *DayMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[day.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DayMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DayMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DayMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the DayMutation builder.
func (m *DayMutation) Where(ps ...predicate.Day) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Day, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Day).
func (m *DayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DayMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user != nil {
		fields = append(fields, day.FieldUserID)
	}
	if m.date != nil {
		fields = append(fields, day.FieldDate)
	}
	if m.status != nil {
		fields = append(fields, day.FieldStatus)
	}
	if m.template_id != nil {
		fields = append(fields, day.FieldTemplateID)
	}
	if m.template_slug != nil {
		fields = append(fields, day.FieldTemplateSlug)
	}
	if m.time_blocks != nil {
		fields = append(fields, day.FieldTimeBlocks)
	}
	if m.high_level_plan != nil {
		fields = append(fields, day.FieldHighLevelPlan)
	}
	if m.alarms != nil {
		fields = append(fields, day.FieldAlarms)
	}
	if m.tags != nil {
		fields = append(fields, day.FieldTags)
	}
	if m.scheduled_at != nil {
		fields = append(fields, day.FieldScheduledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case day.FieldUserID:
		return m.UserID()
	case day.FieldDate:
		return m.Date()
	case day.FieldStatus:
		return m.Status()
	case day.FieldTemplateID:
		return m.TemplateID()
	case day.FieldTemplateSlug:
		return m.TemplateSlug()
	case day.FieldTimeBlocks:
		return m.TimeBlocks()
	case day.FieldHighLevelPlan:
		return m.HighLevelPlan()
	case day.FieldAlarms:
		return m.Alarms()
	case day.FieldTags:
		return m.Tags()
	case day.FieldScheduledAt:
		return m.ScheduledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case day.FieldUserID:
		return m.OldUserID(ctx)
	case day.FieldDate:
		return m.OldDate(ctx)
	case day.FieldStatus:
		return m.OldStatus(ctx)
	case day.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case day.FieldTemplateSlug:
		return m.OldTemplateSlug(ctx)
	case day.FieldTimeBlocks:
		return m.OldTimeBlocks(ctx)
	case day.FieldHighLevelPlan:
		return m.OldHighLevelPlan(ctx)
	case day.FieldAlarms:
		return m.OldAlarms(ctx)
	case day.FieldTags:
		return m.OldTags(ctx)
	case day.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	}
	return nil, fmt.Errorf("unknown Day field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case day.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case day.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case day.FieldStatus:
		v, ok := value.(day.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case day.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case day.FieldTemplateSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateSlug(v)
		return nil
	case day.FieldTimeBlocks:
		v, ok := value.([]domain.TimeBlock)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeBlocks(v)
		return nil
	case day.FieldHighLevelPlan:
		v, ok := value.(domain.HighLevelPlan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighLevelPlan(v)
		return nil
	case day.FieldAlarms:
		v, ok := value.([]domain.Alarm)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlarms(v)
		return nil
	case day.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case day.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	}
	return fmt.Errorf("unknown Day field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DayMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DayMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DayMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Day numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DayMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(day.FieldTemplateID) {
		fields = append(fields, day.FieldTemplateID)
	}
	if m.FieldCleared(day.FieldTemplateSlug) {
		fields = append(fields, day.FieldTemplateSlug)
	}
	if m.FieldCleared(day.FieldTimeBlocks) {
		fields = append(fields, day.FieldTimeBlocks)
	}
	if m.FieldCleared(day.FieldHighLevelPlan) {
		fields = append(fields, day.FieldHighLevelPlan)
	}
	if m.FieldCleared(day.FieldAlarms) {
		fields = append(fields, day.FieldAlarms)
	}
	if m.FieldCleared(day.FieldTags) {
		fields = append(fields, day.FieldTags)
	}
	if m.FieldCleared(day.FieldScheduledAt) {
		fields = append(fields, day.FieldScheduledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DayMutation) ClearField(name string) error {
	switch name {
	case day.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case day.FieldTemplateSlug:
		m.ClearTemplateSlug()
		return nil
	case day.FieldTimeBlocks:
		m.ClearTimeBlocks()
		return nil
	case day.FieldHighLevelPlan:
		m.ClearHighLevelPlan()
		return nil
	case day.FieldAlarms:
		m.ClearAlarms()
		return nil
	case day.FieldTags:
		m.ClearTags()
		return nil
	case day.FieldScheduledAt:
		m.ClearScheduledAt()
		return nil
	}
	return fmt.Errorf("unknown Day nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DayMutation) ResetField(name string) error {
	switch name {
	case day.FieldUserID:
		m.ResetUserID()
		return nil
	case day.FieldDate:
		m.ResetDate()
		return nil
	case day.FieldStatus:
		m.ResetStatus()
		return nil
	case day.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case day.FieldTemplateSlug:
		m.ResetTemplateSlug()
		return nil
	case day.FieldTimeBlocks:
		m.ResetTimeBlocks()
		return nil
	case day.FieldHighLevelPlan:
		m.ResetHighLevelPlan()
		return nil
	case day.FieldAlarms:
		m.ResetAlarms()
		return nil
	case day.FieldTags:
		m.ResetTags()
		return nil
	case day.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	}
	return fmt.Errorf("unknown Day field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DayMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, day.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DayMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case day.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, day.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DayMutation) EdgeCleared(name string) bool {
	switch name {
	case day.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DayMutation) ClearEdge(name string) error {
	switch name {
	case day.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Day unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DayMutation) ResetEdge(name string) error {
	switch name {
	case day.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Day edge %s", name)
}

// DayTemplateMutation represents an operation that mutates the DayTemplate nodes in the graph.
type DayTemplateMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	slug                         *string
	start_time                   *string
	end_time                     *string
	routine_definition_ids       *[]uuid.UUID
	appendroutine_definition_ids []uuid.UUID
	time_blocks                  *[]domain.TimeBlock
	appendtime_blocks            []domain.TimeBlock
	high_level_plan              *domain.HighLevelPlan
	clearedFields                map[string]struct{}
	user                         *uuid.UUID
	cleareduser                  bool
	done                         bool
	oldValue                     func(context.Context) (*DayTemplate, error)
	predicates                   []predicate.DayTemplate
}

var _ ent.Mutation = (*DayTemplateMutation)(nil)

// daytemplateOption allows management of the mutation configuration using functional options.
type daytemplateOption func(*DayTemplateMutation)

// newDayTemplateMutation creates new mutation for the DayTemplate entity.
func newDayTemplateMutation(c config, op Op, opts ...daytemplateOption) *DayTemplateMutation {
	m := &DayTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeDayTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDayTemplateID sets the ID field of the mutation.
func withDayTemplateID(id uuid.UUID) daytemplateOption {
	return func(m *DayTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *DayTemplate
		)
		m.oldValue = func(ctx context.Context) (*DayTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DayTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDayTemplate sets the old DayTemplate of the mutation.
func withDayTemplate(node *DayTemplate) daytemplateOption {
	return func(m *DayTemplateMutation) {
		m.oldValue = func(context.Context) (*DayTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DayTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DayTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DayTemplate entities.
func (m *DayTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DayTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DayTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DayTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DayTemplateMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DayTemplateMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DayTemplate entity.
// If the DayTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayTemplateMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DayTemplateMutation) ResetUserID() {
	m.user = nil
}

// SetSlug sets the "slug" field.
func (m *DayTemplateMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *DayTemplateMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the DayTemplate entity.
// If the DayTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayTemplateMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *DayTemplateMutation) ResetSlug() {
	m.slug = nil
}

// SetStartTime sets the "start_time" field.
func (m *DayTemplateMutation) SetStartTime(s string) {
	m.start_time = &s
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *DayTemplateMutation) StartTime() (r string, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the DayTemplate entity.
// If the DayTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayTemplateMutation) OldStartTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *DayTemplateMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[daytemplate.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *DayTemplateMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[daytemplate.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *DayTemplateMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, daytemplate.FieldStartTime)
}

// SetEndTime sets the "end_time" field.
func (m *DayTemplateMutation) SetEndTime(s string) {
	m.end_time = &s
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *DayTemplateMutation) EndTime() (r string, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the DayTemplate entity.
// If the DayTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayTemplateMutation) OldEndTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *DayTemplateMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[daytemplate.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *DayTemplateMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[daytemplate.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *DayTemplateMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, daytemplate.FieldEndTime)
}

// SetRoutineDefinitionIds sets the "routine_definition_ids" field.
func (m *DayTemplateMutation) SetRoutineDefinitionIds(u []uuid.UUID) {
	m.routine_definition_ids = &u
	m.appendroutine_definition_ids = nil
}

// RoutineDefinitionIds returns the value of the "routine_definition_ids" field in the mutation.
func (m *DayTemplateMutation) RoutineDefinitionIds() (r []uuid.UUID, exists bool) {
	v := m.routine_definition_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutineDefinitionIds returns the old "routine_definition_ids" field's value of the DayTemplate entity.
// If the DayTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayTemplateMutation) OldRoutineDefinitionIds(ctx context.Context) (v []uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutineDefinitionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutineDefinitionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutineDefinitionIds: %w", err)
	}
	return oldValue.RoutineDefinitionIds, nil
}

// AppendRoutineDefinitionIds adds u to the "routine_definition_ids" field.
func (m *DayTemplateMutation) AppendRoutineDefinitionIds(u []uuid.UUID) {
	m.appendroutine_definition_ids = append(m.appendroutine_definition_ids, u...)
}

// AppendedRoutineDefinitionIds returns the list of values that were appended to the "routine_definition_ids" field in this mutation.
func (m *DayTemplateMutation) AppendedRoutineDefinitionIds() ([]uuid.UUID, bool) {
	if len(m.appendroutine_definition_ids) == 0 {
		return nil, false
	}
	return m.appendroutine_definition_ids, true
}

// ClearRoutineDefinitionIds clears the value of the "routine_definition_ids" field.
func (m *DayTemplateMutation) ClearRoutineDefinitionIds() {
	m.routine_definition_ids = nil
	m.appendroutine_definition_ids = nil
	m.clearedFields[daytemplate.FieldRoutineDefinitionIds] = struct{}{}
}

// RoutineDefinitionIdsCleared returns if the "routine_definition_ids" field was cleared in this mutation.
func (m *DayTemplateMutation) RoutineDefinitionIdsCleared() bool {
	_, ok := m.clearedFields[daytemplate.FieldRoutineDefinitionIds]
	return ok
}

// ResetRoutineDefinitionIds resets all changes to the "routine_definition_ids" field.
func (m *DayTemplateMutation) ResetRoutineDefinitionIds() {
	m.routine_definition_ids = nil
	m.appendroutine_definition_ids = nil
	delete(m.clearedFields, daytemplate.FieldRoutineDefinitionIds)
}

// SetTimeBlocks sets the "time_blocks" field.
func (m *DayTemplateMutation) SetTimeBlocks(db []domain.TimeBlock) {
	m.time_blocks = &db
	m.appendtime_blocks = nil
}

// TimeBlocks returns the value of the "time_blocks" field in the mutation.
func (m *DayTemplateMutation) TimeBlocks() (r []domain.TimeBlock, exists bool) {
	v := m.time_blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeBlocks returns the old "time_blocks" field's value of the DayTemplate entity.
// If the DayTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayTemplateMutation) OldTimeBlocks(ctx context.Context) (v []domain.TimeBlock, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeBlocks: %w", err)
	}
	return oldValue.TimeBlocks, nil
}

// AppendTimeBlocks adds db to the "time_blocks" field.
func (m *DayTemplateMutation) AppendTimeBlocks(db []domain.TimeBlock) {
	m.appendtime_blocks = append(m.appendtime_blocks, db...)
}

// AppendedTimeBlocks returns the list of values that were appended to the "time_blocks" field in this mutation.
func (m *DayTemplateMutation) AppendedTimeBlocks() ([]domain.TimeBlock, bool) {
	if len(m.appendtime_blocks) == 0 {
		return nil, false
	}
	return m.appendtime_blocks, true
}

// ClearTimeBlocks clears the value of the "time_blocks" field.
func (m *DayTemplateMutation) ClearTimeBlocks() {
	m.time_blocks = nil
	m.appendtime_blocks = nil
	m.clearedFields[daytemplate.FieldTimeBlocks] = struct{}{}
}

// TimeBlocksCleared returns if the "time_blocks" field was cleared in this mutation.
func (m *DayTemplateMutation) TimeBlocksCleared() bool {
	_, ok := m.clearedFields[daytemplate.FieldTimeBlocks]
	return ok
}

// ResetTimeBlocks resets all changes to the "time_blocks" field.
func (m *DayTemplateMutation) ResetTimeBlocks() {
	m.time_blocks = nil
	m.appendtime_blocks = nil
	delete(m.clearedFields, daytemplate.FieldTimeBlocks)
}

// SetHighLevelPlan sets the "high_level_plan" field.
func (m *DayTemplateMutation) SetHighLevelPlan(dlp domain.HighLevelPlan) {
	m.high_level_plan = &dlp
}

// HighLevelPlan returns the value of the "high_level_plan" field in the mutation.
func (m *DayTemplateMutation) HighLevelPlan() (r domain.HighLevelPlan, exists bool) {
	v := m.high_level_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldHighLevelPlan returns the old "high_level_plan" field's value of the DayTemplate entity.
// If the DayTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayTemplateMutation) OldHighLevelPlan(ctx context.Context) (v domain.HighLevelPlan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighLevelPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighLevelPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighLevelPlan: %w", err)
	}
	return oldValue.HighLevelPlan, nil
}

// ClearHighLevelPlan clears the value of the "high_level_plan" field.
func (m *DayTemplateMutation) ClearHighLevelPlan() {
	m.high_level_plan = nil
	m.clearedFields[daytemplate.FieldHighLevelPlan] = struct{}{}
}

// HighLevelPlanCleared returns if the "high_level_plan" field was cleared in this mutation.
func (m *DayTemplateMutation) HighLevelPlanCleared() bool {
	_, ok := m.clearedFields[daytemplate.FieldHighLevelPlan]
	return ok
}

// ResetHighLevelPlan resets all changes to the "high_level_plan" field.
func (m *DayTemplateMutation) ResetHighLevelPlan() {
	m.high_level_plan = nil
	delete(m.clearedFields, daytemplate.FieldHighLevelPlan)
}

// ClearUser clears the "user" edge to the User entity.
func (m *DayTemplateMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[daytemplate.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DayTemplateMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DayTemplateMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DayTemplateMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the DayTemplateMutation builder.
func (m *DayTemplateMutation) Where(ps ...predicate.DayTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DayTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DayTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DayTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DayTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DayTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DayTemplate).
func (m *DayTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DayTemplateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user != nil {
		fields = append(fields, daytemplate.FieldUserID)
	}
	if m.slug != nil {
		fields = append(fields, daytemplate.FieldSlug)
	}
	if m.start_time != nil {
		fields = append(fields, daytemplate.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, daytemplate.FieldEndTime)
	}
	if m.routine_definition_ids != nil {
		fields = append(fields, daytemplate.FieldRoutineDefinitionIds)
	}
	if m.time_blocks != nil {
		fields = append(fields, daytemplate.FieldTimeBlocks)
	}
	if m.high_level_plan != nil {
		fields = append(fields, daytemplate.FieldHighLevelPlan)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DayTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case daytemplate.FieldUserID:
		return m.UserID()
	case daytemplate.FieldSlug:
		return m.Slug()
	case daytemplate.FieldStartTime:
		return m.StartTime()
	case daytemplate.FieldEndTime:
		return m.EndTime()
	case daytemplate.FieldRoutineDefinitionIds:
		return m.RoutineDefinitionIds()
	case daytemplate.FieldTimeBlocks:
		return m.TimeBlocks()
	case daytemplate.FieldHighLevelPlan:
		return m.HighLevelPlan()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DayTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case daytemplate.FieldUserID:
		return m.OldUserID(ctx)
	case daytemplate.FieldSlug:
		return m.OldSlug(ctx)
	case daytemplate.FieldStartTime:
		return m.OldStartTime(ctx)
	case daytemplate.FieldEndTime:
		return m.OldEndTime(ctx)
	case daytemplate.FieldRoutineDefinitionIds:
		return m.OldRoutineDefinitionIds(ctx)
	case daytemplate.FieldTimeBlocks:
		return m.OldTimeBlocks(ctx)
	case daytemplate.FieldHighLevelPlan:
		return m.OldHighLevelPlan(ctx)
	}
	return nil, fmt.Errorf("unknown DayTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DayTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case daytemplate.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case daytemplate.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case daytemplate.FieldStartTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case daytemplate.FieldEndTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case daytemplate.FieldRoutineDefinitionIds:
		v, ok := value.([]uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutineDefinitionIds(v)
		return nil
	case daytemplate.FieldTimeBlocks:
		v, ok := value.([]domain.TimeBlock)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeBlocks(v)
		return nil
	case daytemplate.FieldHighLevelPlan:
		v, ok := value.(domain.HighLevelPlan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighLevelPlan(v)
		return nil
	}
	return fmt.Errorf("unknown DayTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DayTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DayTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DayTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DayTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DayTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(daytemplate.FieldStartTime) {
		fields = append(fields, daytemplate.FieldStartTime)
	}
	if m.FieldCleared(daytemplate.FieldEndTime) {
		fields = append(fields, daytemplate.FieldEndTime)
	}
	if m.FieldCleared(daytemplate.FieldRoutineDefinitionIds) {
		fields = append(fields, daytemplate.FieldRoutineDefinitionIds)
	}
	if m.FieldCleared(daytemplate.FieldTimeBlocks) {
		fields = append(fields, daytemplate.FieldTimeBlocks)
	}
	if m.FieldCleared(daytemplate.FieldHighLevelPlan) {
		fields = append(fields, daytemplate.FieldHighLevelPlan)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DayTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DayTemplateMutation) ClearField(name string) error {
	switch name {
	case daytemplate.FieldStartTime:
		m.ClearStartTime()
		return nil
	case daytemplate.FieldEndTime:
		m.ClearEndTime()
		return nil
	case daytemplate.FieldRoutineDefinitionIds:
		m.ClearRoutineDefinitionIds()
		return nil
	case daytemplate.FieldTimeBlocks:
		m.ClearTimeBlocks()
		return nil
	case daytemplate.FieldHighLevelPlan:
		m.ClearHighLevelPlan()
		return nil
	}
	return fmt.Errorf("unknown DayTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DayTemplateMutation) ResetField(name string) error {
	switch name {
	case daytemplate.FieldUserID:
		m.ResetUserID()
		return nil
	case daytemplate.FieldSlug:
		m.ResetSlug()
		return nil
	case daytemplate.FieldStartTime:
		m.ResetStartTime()
		return nil
	case daytemplate.FieldEndTime:
		m.ResetEndTime()
		return nil
	case daytemplate.FieldRoutineDefinitionIds:
		m.ResetRoutineDefinitionIds()
		return nil
	case daytemplate.FieldTimeBlocks:
		m.ResetTimeBlocks()
		return nil
	case daytemplate.FieldHighLevelPlan:
		m.ResetHighLevelPlan()
		return nil
	}
	return fmt.Errorf("unknown DayTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DayTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, daytemplate.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DayTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case daytemplate.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DayTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DayTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DayTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, daytemplate.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DayTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case daytemplate.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DayTemplateMutation) ClearEdge(name string) error {
	switch name {
	case daytemplate.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown DayTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DayTemplateMutation) ResetEdge(name string) error {
	switch name {
	case daytemplate.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown DayTemplate edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *uuid.UUID
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *EventMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EventMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EventMutation) ResetUserID() {
	m.user_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, event.FieldUserID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldUserID:
		return m.UserID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldUserID:
		return m.OldUserID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldUserID:
		m.ResetUserID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	user_id       *uuid.UUID
	kind          *string
	payload       *map[string]interface{}
	status        *job.Status
	run_at        *time.Time
	claimed_by    *string
	attempts      *int
	addattempts   *int
	error_message *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Job, error)
	predicates    []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *JobMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *JobMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *JobMutation) ResetUserID() {
	m.user_id = nil
}

// SetKind sets the "kind" field.
func (m *JobMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *JobMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *JobMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *JobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[job.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *JobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[job.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, job.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetRunAt sets the "run_at" field.
func (m *JobMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *JobMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *JobMutation) ResetRunAt() {
	m.run_at = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *JobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *JobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldClaimedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *JobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[job.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *JobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[job.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *JobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, job.FieldClaimedBy)
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, job.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, job.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.run_at != nil {
		fields = append(fields, job.FieldRunAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldUserID:
		return m.UserID()
	case job.FieldKind:
		return m.Kind()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldRunAt:
		return m.RunAt()
	case job.FieldClaimedBy:
		return m.ClaimedBy()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldUserID:
		return m.OldUserID(ctx)
	case job.FieldKind:
		return m.OldKind(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldRunAt:
		return m.OldRunAt(ctx)
	case job.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case job.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	case job.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldPayload) {
		fields = append(fields, job.FieldPayload)
	}
	if m.FieldCleared(job.FieldClaimedBy) {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldPayload:
		m.ClearPayload()
		return nil
	case job.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldUserID:
		m.ResetUserID()
		return nil
	case job.FieldKind:
		m.ResetKind()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldRunAt:
		m.ResetRunAt()
		return nil
	case job.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	role           *message.Role
	content        *string
	meta           *map[string]interface{}
	triggered_by   *string
	llm_run_result **domain.LLMRunResult
	created_at     *time.Time
	clearedFields  map[string]struct{}
	user           *uuid.UUID
	cleareduser    bool
	done           bool
	oldValue       func(context.Context) (*Message, error)
	predicates     []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id uuid.UUID) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MessageMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MessageMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MessageMutation) ResetUserID() {
	m.user = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetMeta sets the "meta" field.
func (m *MessageMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *MessageMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *MessageMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[message.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *MessageMutation) MetaCleared() bool {
	_, ok := m.clearedFields[message.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *MessageMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, message.FieldMeta)
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *MessageMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *MessageMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (m *MessageMutation) ClearTriggeredBy() {
	m.triggered_by = nil
	m.clearedFields[message.FieldTriggeredBy] = struct{}{}
}

// TriggeredByCleared returns if the "triggered_by" field was cleared in this mutation.
func (m *MessageMutation) TriggeredByCleared() bool {
	_, ok := m.clearedFields[message.FieldTriggeredBy]
	return ok
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *MessageMutation) ResetTriggeredBy() {
	m.triggered_by = nil
	delete(m.clearedFields, message.FieldTriggeredBy)
}

// SetLlmRunResult sets the "llm_run_result" field.
func (m *MessageMutation) SetLlmRunResult(drr *domain.LLMRunResult) {
	m.llm_run_result = &drr
}

// LlmRunResult returns the value of the "llm_run_result" field in the mutation.
func (m *MessageMutation) LlmRunResult() (r *domain.LLMRunResult, exists bool) {
	v := m.llm_run_result
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmRunResult returns the old "llm_run_result" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldLlmRunResult(ctx context.Context) (v *domain.LLMRunResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmRunResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmRunResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmRunResult: %w", err)
	}
	return oldValue.LlmRunResult, nil
}

// ClearLlmRunResult clears the value of the "llm_run_result" field.
func (m *MessageMutation) ClearLlmRunResult() {
	m.llm_run_result = nil
	m.clearedFields[message.FieldLlmRunResult] = struct{}{}
}

// LlmRunResultCleared returns if the "llm_run_result" field was cleared in this mutation.
func (m *MessageMutation) LlmRunResultCleared() bool {
	_, ok := m.clearedFields[message.FieldLlmRunResult]
	return ok
}

// ResetLlmRunResult resets all changes to the "llm_run_result" field.
func (m *MessageMutation) ResetLlmRunResult() {
	m.llm_run_result = nil
	delete(m.clearedFields, message.FieldLlmRunResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *MessageMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[message.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *MessageMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *MessageMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user != nil {
		fields = append(fields, message.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.meta != nil {
		fields = append(fields, message.FieldMeta)
	}
	if m.triggered_by != nil {
		fields = append(fields, message.FieldTriggeredBy)
	}
	if m.llm_run_result != nil {
		fields = append(fields, message.FieldLlmRunResult)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldUserID:
		return m.UserID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldMeta:
		return m.Meta()
	case message.FieldTriggeredBy:
		return m.TriggeredBy()
	case message.FieldLlmRunResult:
		return m.LlmRunResult()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldUserID:
		return m.OldUserID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldMeta:
		return m.OldMeta(ctx)
	case message.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case message.FieldLlmRunResult:
		return m.OldLlmRunResult(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case message.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case message.FieldLlmRunResult:
		v, ok := value.(*domain.LLMRunResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmRunResult(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldMeta) {
		fields = append(fields, message.FieldMeta)
	}
	if m.FieldCleared(message.FieldTriggeredBy) {
		fields = append(fields, message.FieldTriggeredBy)
	}
	if m.FieldCleared(message.FieldLlmRunResult) {
		fields = append(fields, message.FieldLlmRunResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldMeta:
		m.ClearMeta()
		return nil
	case message.FieldTriggeredBy:
		m.ClearTriggeredBy()
		return nil
	case message.FieldLlmRunResult:
		m.ClearLlmRunResult()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldUserID:
		m.ResetUserID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldMeta:
		m.ResetMeta()
		return nil
	case message.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case message.FieldLlmRunResult:
		m.ResetLlmRunResult()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, message.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, message.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// PushNotificationMutation represents an operation that mutates the PushNotification nodes in the graph.
type PushNotificationMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	push_subscription_ids       *[]uuid.UUID
	appendpush_subscription_ids []uuid.UUID
	content                     *string
	status                      *pushnotification.Status
	error_message               *string
	sent_at                     *time.Time
	triggered_by                *string
	llm_snapshot                **domain.LLMRunResult
	clearedFields               map[string]struct{}
	user                        *uuid.UUID
	cleareduser                 bool
	done                        bool
	oldValue                    func(context.Context) (*PushNotification, error)
	predicates                  []predicate.PushNotification
}

var _ ent.Mutation = (*PushNotificationMutation)(nil)

// pushnotificationOption allows management of the mutation configuration using functional options.
type pushnotificationOption func(*PushNotificationMutation)

// newPushNotificationMutation creates new mutation for the PushNotification entity.
func newPushNotificationMutation(c config, op Op, opts ...pushnotificationOption) *PushNotificationMutation {
	m := &PushNotificationMutation{
		config:        c,
		op:            op,
		typ:           TypePushNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPushNotificationID sets the ID field of the mutation.
func withPushNotificationID(id uuid.UUID) pushnotificationOption {
	return func(m *PushNotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *PushNotification
		)
		m.oldValue = func(ctx context.Context) (*PushNotification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PushNotification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPushNotification sets the old PushNotification of the mutation.
func withPushNotification(node *PushNotification) pushnotificationOption {
	return func(m *PushNotificationMutation) {
		m.oldValue = func(context.Context) (*PushNotification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PushNotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PushNotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PushNotification entities.
func (m *PushNotificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PushNotificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PushNotificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PushNotification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PushNotificationMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PushNotificationMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PushNotification entity.
// If the PushNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushNotificationMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PushNotificationMutation) ResetUserID() {
	m.user = nil
}

// SetPushSubscriptionIds sets the "push_subscription_ids" field.
func (m *PushNotificationMutation) SetPushSubscriptionIds(u []uuid.UUID) {
	m.push_subscription_ids = &u
	m.appendpush_subscription_ids = nil
}

// PushSubscriptionIds returns the value of the "push_subscription_ids" field in the mutation.
func (m *PushNotificationMutation) PushSubscriptionIds() (r []uuid.UUID, exists bool) {
	v := m.push_subscription_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldPushSubscriptionIds returns the old "push_subscription_ids" field's value of the PushNotification entity.
// If the PushNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushNotificationMutation) OldPushSubscriptionIds(ctx context.Context) (v []uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushSubscriptionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushSubscriptionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushSubscriptionIds: %w", err)
	}
	return oldValue.PushSubscriptionIds, nil
}

// AppendPushSubscriptionIds adds u to the "push_subscription_ids" field.
func (m *PushNotificationMutation) AppendPushSubscriptionIds(u []uuid.UUID) {
	m.appendpush_subscription_ids = append(m.appendpush_subscription_ids, u...)
}

// AppendedPushSubscriptionIds returns the list of values that were appended to the "push_subscription_ids" field in this mutation.
func (m *PushNotificationMutation) AppendedPushSubscriptionIds() ([]uuid.UUID, bool) {
	if len(m.appendpush_subscription_ids) == 0 {
		return nil, false
	}
	return m.appendpush_subscription_ids, true
}

// ClearPushSubscriptionIds clears the value of the "push_subscription_ids" field.
func (m *PushNotificationMutation) ClearPushSubscriptionIds() {
	m.push_subscription_ids = nil
	m.appendpush_subscription_ids = nil
	m.clearedFields[pushnotification.FieldPushSubscriptionIds] = struct{}{}
}

// PushSubscriptionIdsCleared returns if the "push_subscription_ids" field was cleared in this mutation.
func (m *PushNotificationMutation) PushSubscriptionIdsCleared() bool {
	_, ok := m.clearedFields[pushnotification.FieldPushSubscriptionIds]
	return ok
}

// ResetPushSubscriptionIds resets all changes to the "push_subscription_ids" field.
func (m *PushNotificationMutation) ResetPushSubscriptionIds() {
	m.push_subscription_ids = nil
	m.appendpush_subscription_ids = nil
	delete(m.clearedFields, pushnotification.FieldPushSubscriptionIds)
}

// SetContent sets the "content" field.
func (m *PushNotificationMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PushNotificationMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PushNotification entity.
// If the PushNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushNotificationMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PushNotificationMutation) ResetContent() {
	m.content = nil
}

// SetStatus sets the "status" field.
func (m *PushNotificationMutation) SetStatus(pu pushnotification.Status) {
	m.status = &pu
}

// Status returns the value of the "status" field in the mutation.
func (m *PushNotificationMutation) Status() (r pushnotification.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PushNotification entity.
// If the PushNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushNotificationMutation) OldStatus(ctx context.Context) (v pushnotification.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PushNotificationMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *PushNotificationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PushNotificationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PushNotification entity.
// If the PushNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushNotificationMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PushNotificationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pushnotification.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PushNotificationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pushnotification.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PushNotificationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pushnotification.FieldErrorMessage)
}

// SetSentAt sets the "sent_at" field.
func (m *PushNotificationMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *PushNotificationMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the PushNotification entity.
// If the PushNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushNotificationMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *PushNotificationMutation) ResetSentAt() {
	m.sent_at = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *PushNotificationMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *PushNotificationMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the PushNotification entity.
// If the PushNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushNotificationMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *PushNotificationMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetLlmSnapshot sets the "llm_snapshot" field.
func (m *PushNotificationMutation) SetLlmSnapshot(drr *domain.LLMRunResult) {
	m.llm_snapshot = &drr
}

// LlmSnapshot returns the value of the "llm_snapshot" field in the mutation.
func (m *PushNotificationMutation) LlmSnapshot() (r *domain.LLMRunResult, exists bool) {
	v := m.llm_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmSnapshot returns the old "llm_snapshot" field's value of the PushNotification entity.
// If the PushNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushNotificationMutation) OldLlmSnapshot(ctx context.Context) (v *domain.LLMRunResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmSnapshot: %w", err)
	}
	return oldValue.LlmSnapshot, nil
}

// ClearLlmSnapshot clears the value of the "llm_snapshot" field.
func (m *PushNotificationMutation) ClearLlmSnapshot() {
	m.llm_snapshot = nil
	m.clearedFields[pushnotification.FieldLlmSnapshot] = struct{}{}
}

// LlmSnapshotCleared returns if the "llm_snapshot" field was cleared in this mutation.
func (m *PushNotificationMutation) LlmSnapshotCleared() bool {
	_, ok := m.clearedFields[pushnotification.FieldLlmSnapshot]
	return ok
}

// ResetLlmSnapshot resets all changes to the "llm_snapshot" field.
func (m *PushNotificationMutation) ResetLlmSnapshot() {
	m.llm_snapshot = nil
	delete(m.clearedFields, pushnotification.FieldLlmSnapshot)
}

// ClearUser clears the "user" edge to the User entity.
func (m *PushNotificationMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[pushnotification.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PushNotificationMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PushNotificationMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PushNotificationMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the PushNotificationMutation builder.
func (m *PushNotificationMutation) Where(ps ...predicate.PushNotification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PushNotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PushNotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PushNotification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PushNotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PushNotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PushNotification).
func (m *PushNotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PushNotificationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user != nil {
		fields = append(fields, pushnotification.FieldUserID)
	}
	if m.push_subscription_ids != nil {
		fields = append(fields, pushnotification.FieldPushSubscriptionIds)
	}
	if m.content != nil {
		fields = append(fields, pushnotification.FieldContent)
	}
	if m.status != nil {
		fields = append(fields, pushnotification.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, pushnotification.FieldErrorMessage)
	}
	if m.sent_at != nil {
		fields = append(fields, pushnotification.FieldSentAt)
	}
	if m.triggered_by != nil {
		fields = append(fields, pushnotification.FieldTriggeredBy)
	}
	if m.llm_snapshot != nil {
		fields = append(fields, pushnotification.FieldLlmSnapshot)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PushNotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pushnotification.FieldUserID:
		return m.UserID()
	case pushnotification.FieldPushSubscriptionIds:
		return m.PushSubscriptionIds()
	case pushnotification.FieldContent:
		return m.Content()
	case pushnotification.FieldStatus:
		return m.Status()
	case pushnotification.FieldErrorMessage:
		return m.ErrorMessage()
	case pushnotification.FieldSentAt:
		return m.SentAt()
	case pushnotification.FieldTriggeredBy:
		return m.TriggeredBy()
	case pushnotification.FieldLlmSnapshot:
		return m.LlmSnapshot()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PushNotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pushnotification.FieldUserID:
		return m.OldUserID(ctx)
	case pushnotification.FieldPushSubscriptionIds:
		return m.OldPushSubscriptionIds(ctx)
	case pushnotification.FieldContent:
		return m.OldContent(ctx)
	case pushnotification.FieldStatus:
		return m.OldStatus(ctx)
	case pushnotification.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pushnotification.FieldSentAt:
		return m.OldSentAt(ctx)
	case pushnotification.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case pushnotification.FieldLlmSnapshot:
		return m.OldLlmSnapshot(ctx)
	}
	return nil, fmt.Errorf("unknown PushNotification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushNotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pushnotification.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pushnotification.FieldPushSubscriptionIds:
		v, ok := value.([]uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushSubscriptionIds(v)
		return nil
	case pushnotification.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case pushnotification.FieldStatus:
		v, ok := value.(pushnotification.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pushnotification.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pushnotification.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case pushnotification.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case pushnotification.FieldLlmSnapshot:
		v, ok := value.(*domain.LLMRunResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmSnapshot(v)
		return nil
	}
	return fmt.Errorf("unknown PushNotification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PushNotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PushNotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushNotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PushNotification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PushNotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pushnotification.FieldPushSubscriptionIds) {
		fields = append(fields, pushnotification.FieldPushSubscriptionIds)
	}
	if m.FieldCleared(pushnotification.FieldErrorMessage) {
		fields = append(fields, pushnotification.FieldErrorMessage)
	}
	if m.FieldCleared(pushnotification.FieldLlmSnapshot) {
		fields = append(fields, pushnotification.FieldLlmSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PushNotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PushNotificationMutation) ClearField(name string) error {
	switch name {
	case pushnotification.FieldPushSubscriptionIds:
		m.ClearPushSubscriptionIds()
		return nil
	case pushnotification.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pushnotification.FieldLlmSnapshot:
		m.ClearLlmSnapshot()
		return nil
	}
	return fmt.Errorf("unknown PushNotification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PushNotificationMutation) ResetField(name string) error {
	switch name {
	case pushnotification.FieldUserID:
		m.ResetUserID()
		return nil
	case pushnotification.FieldPushSubscriptionIds:
		m.ResetPushSubscriptionIds()
		return nil
	case pushnotification.FieldContent:
		m.ResetContent()
		return nil
	case pushnotification.FieldStatus:
		m.ResetStatus()
		return nil
	case pushnotification.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pushnotification.FieldSentAt:
		m.ResetSentAt()
		return nil
	case pushnotification.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case pushnotification.FieldLlmSnapshot:
		m.ResetLlmSnapshot()
		return nil
	}
	return fmt.Errorf("unknown PushNotification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PushNotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, pushnotification.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PushNotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pushnotification.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PushNotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PushNotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PushNotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, pushnotification.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PushNotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case pushnotification.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PushNotificationMutation) ClearEdge(name string) error {
	switch name {
	case pushnotification.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown PushNotification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PushNotificationMutation) ResetEdge(name string) error {
	switch name {
	case pushnotification.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown PushNotification edge %s", name)
}

// PushSubscriptionMutation represents an operation that mutates the PushSubscription nodes in the graph.
type PushSubscriptionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	endpoint      *string
	keys          *map[string]string
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *uuid.UUID
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*PushSubscription, error)
	predicates    []predicate.PushSubscription
}

var _ ent.Mutation = (*PushSubscriptionMutation)(nil)

// pushsubscriptionOption allows management of the mutation configuration using functional options.
type pushsubscriptionOption func(*PushSubscriptionMutation)

// newPushSubscriptionMutation creates new mutation for the PushSubscription entity.
func newPushSubscriptionMutation(c config, op Op, opts ...pushsubscriptionOption) *PushSubscriptionMutation {
	m := &PushSubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypePushSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPushSubscriptionID sets the ID field of the mutation.
func withPushSubscriptionID(id uuid.UUID) pushsubscriptionOption {
	return func(m *PushSubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *PushSubscription
		)
		m.oldValue = func(ctx context.Context) (*PushSubscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PushSubscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPushSubscription sets the old PushSubscription of the mutation.
func withPushSubscription(node *PushSubscription) pushsubscriptionOption {
	return func(m *PushSubscriptionMutation) {
		m.oldValue = func(context.Context) (*PushSubscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PushSubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PushSubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PushSubscription entities.
func (m *PushSubscriptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PushSubscriptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PushSubscriptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PushSubscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PushSubscriptionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PushSubscriptionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PushSubscriptionMutation) ResetUserID() {
	m.user = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *PushSubscriptionMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *PushSubscriptionMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *PushSubscriptionMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetKeys sets the "keys" field.
func (m *PushSubscriptionMutation) SetKeys(value map[string]string) {
	m.keys = &value
}

// Keys returns the value of the "keys" field in the mutation.
func (m *PushSubscriptionMutation) Keys() (r map[string]string, exists bool) {
	v := m.keys
	if v == nil {
		return
	}
	return *v, true
}

// OldKeys returns the old "keys" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldKeys(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeys: %w", err)
	}
	return oldValue.Keys, nil
}

// ClearKeys clears the value of the "keys" field.
func (m *PushSubscriptionMutation) ClearKeys() {
	m.keys = nil
	m.clearedFields[pushsubscription.FieldKeys] = struct{}{}
}

// KeysCleared returns if the "keys" field was cleared in this mutation.
func (m *PushSubscriptionMutation) KeysCleared() bool {
	_, ok := m.clearedFields[pushsubscription.FieldKeys]
	return ok
}

// ResetKeys resets all changes to the "keys" field.
func (m *PushSubscriptionMutation) ResetKeys() {
	m.keys = nil
	delete(m.clearedFields, pushsubscription.FieldKeys)
}

// SetCreatedAt sets the "created_at" field.
func (m *PushSubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PushSubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PushSubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *PushSubscriptionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[pushsubscription.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PushSubscriptionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PushSubscriptionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PushSubscriptionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the PushSubscriptionMutation builder.
func (m *PushSubscriptionMutation) Where(ps ...predicate.PushSubscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PushSubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PushSubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PushSubscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PushSubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PushSubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PushSubscription).
func (m *PushSubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PushSubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user != nil {
		fields = append(fields, pushsubscription.FieldUserID)
	}
	if m.endpoint != nil {
		fields = append(fields, pushsubscription.FieldEndpoint)
	}
	if m.keys != nil {
		fields = append(fields, pushsubscription.FieldKeys)
	}
	if m.created_at != nil {
		fields = append(fields, pushsubscription.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PushSubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pushsubscription.FieldUserID:
		return m.UserID()
	case pushsubscription.FieldEndpoint:
		return m.Endpoint()
	case pushsubscription.FieldKeys:
		return m.Keys()
	case pushsubscription.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PushSubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pushsubscription.FieldUserID:
		return m.OldUserID(ctx)
	case pushsubscription.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case pushsubscription.FieldKeys:
		return m.OldKeys(ctx)
	case pushsubscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PushSubscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushSubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pushsubscription.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pushsubscription.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case pushsubscription.FieldKeys:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeys(v)
		return nil
	case pushsubscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PushSubscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PushSubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PushSubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushSubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PushSubscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PushSubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pushsubscription.FieldKeys) {
		fields = append(fields, pushsubscription.FieldKeys)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PushSubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PushSubscriptionMutation) ClearField(name string) error {
	switch name {
	case pushsubscription.FieldKeys:
		m.ClearKeys()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PushSubscriptionMutation) ResetField(name string) error {
	switch name {
	case pushsubscription.FieldUserID:
		m.ResetUserID()
		return nil
	case pushsubscription.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case pushsubscription.FieldKeys:
		m.ResetKeys()
		return nil
	case pushsubscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PushSubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, pushsubscription.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PushSubscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pushsubscription.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PushSubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PushSubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PushSubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, pushsubscription.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PushSubscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case pushsubscription.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PushSubscriptionMutation) ClearEdge(name string) error {
	switch name {
	case pushsubscription.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PushSubscriptionMutation) ResetEdge(name string) error {
	switch name {
	case pushsubscription.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription edge %s", name)
}

// RoutineMutation represents an operation that mutates the Routine nodes in the graph.
type RoutineMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	schedule            *domain.RecurrenceSchedule
	routine_tasks       *[]domain.RoutineTask
	appendroutine_tasks []domain.RoutineTask
	tags                *[]string
	appendtags          []string
	clearedFields       map[string]struct{}
	user                *uuid.UUID
	cleareduser         bool
	done                bool
	oldValue            func(context.Context) (*Routine, error)
	predicates          []predicate.Routine
}

var _ ent.Mutation = (*RoutineMutation)(nil)

// routineOption allows management of the mutation configuration using functional options.
type routineOption func(*RoutineMutation)

// newRoutineMutation creates new mutation for the Routine entity.
func newRoutineMutation(c config, op Op, opts ...routineOption) *RoutineMutation {
	m := &RoutineMutation{
		config:        c,
		op:            op,
		typ:           TypeRoutine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoutineID sets the ID field of the mutation.
func withRoutineID(id uuid.UUID) routineOption {
	return func(m *RoutineMutation) {
		var (
			err   error
			once  sync.Once
			value *Routine
		)
		m.oldValue = func(ctx context.Context) (*Routine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Routine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoutine sets the old Routine of the mutation.
func withRoutine(node *Routine) routineOption {
	return func(m *RoutineMutation) {
		m.oldValue = func(context.Context) (*Routine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoutineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoutineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Routine entities.
func (m *RoutineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoutineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoutineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Routine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *RoutineMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RoutineMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RoutineMutation) ResetUserID() {
	m.user = nil
}

// SetName sets the "name" field.
func (m *RoutineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoutineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RoutineMutation) ResetName() {
	m.name = nil
}

// SetSchedule sets the "schedule" field.
func (m *RoutineMutation) SetSchedule(ds domain.RecurrenceSchedule) {
	m.schedule = &ds
}

// Schedule returns the value of the "schedule" field in the mutation.
func (m *RoutineMutation) Schedule() (r domain.RecurrenceSchedule, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedule returns the old "schedule" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldSchedule(ctx context.Context) (v domain.RecurrenceSchedule, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedule: %w", err)
	}
	return oldValue.Schedule, nil
}

// ResetSchedule resets all changes to the "schedule" field.
func (m *RoutineMutation) ResetSchedule() {
	m.schedule = nil
}

// SetRoutineTasks sets the "routine_tasks" field.
func (m *RoutineMutation) SetRoutineTasks(dt []domain.RoutineTask) {
	m.routine_tasks = &dt
	m.appendroutine_tasks = nil
}

// RoutineTasks returns the value of the "routine_tasks" field in the mutation.
func (m *RoutineMutation) RoutineTasks() (r []domain.RoutineTask, exists bool) {
	v := m.routine_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutineTasks returns the old "routine_tasks" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldRoutineTasks(ctx context.Context) (v []domain.RoutineTask, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutineTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutineTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutineTasks: %w", err)
	}
	return oldValue.RoutineTasks, nil
}

// AppendRoutineTasks adds dt to the "routine_tasks" field.
func (m *RoutineMutation) AppendRoutineTasks(dt []domain.RoutineTask) {
	m.appendroutine_tasks = append(m.appendroutine_tasks, dt...)
}

// AppendedRoutineTasks returns the list of values that were appended to the "routine_tasks" field in this mutation.
func (m *RoutineMutation) AppendedRoutineTasks() ([]domain.RoutineTask, bool) {
	if len(m.appendroutine_tasks) == 0 {
		return nil, false
	}
	return m.appendroutine_tasks, true
}

// ClearRoutineTasks clears the value of the "routine_tasks" field.
func (m *RoutineMutation) ClearRoutineTasks() {
	m.routine_tasks = nil
	m.appendroutine_tasks = nil
	m.clearedFields[routine.FieldRoutineTasks] = struct{}{}
}

// RoutineTasksCleared returns if the "routine_tasks" field was cleared in this mutation.
func (m *RoutineMutation) RoutineTasksCleared() bool {
	_, ok := m.clearedFields[routine.FieldRoutineTasks]
	return ok
}

// ResetRoutineTasks resets all changes to the "routine_tasks" field.
func (m *RoutineMutation) ResetRoutineTasks() {
	m.routine_tasks = nil
	m.appendroutine_tasks = nil
	delete(m.clearedFields, routine.FieldRoutineTasks)
}

// SetTags sets the "tags" field.
func (m *RoutineMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *RoutineMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Routine entity.
// If the Routine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutineMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *RoutineMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *RoutineMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *RoutineMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[routine.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *RoutineMutation) TagsCleared() bool {
	_, ok := m.clearedFields[routine.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *RoutineMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, routine.FieldTags)
}

// ClearUser clears the "user" edge to the User entity.
func (m *RoutineMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[routine.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *RoutineMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *RoutineMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *RoutineMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the RoutineMutation builder.
func (m *RoutineMutation) Where(ps ...predicate.Routine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoutineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoutineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Routine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoutineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoutineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Routine).
func (m *RoutineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoutineMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user != nil {
		fields = append(fields, routine.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, routine.FieldName)
	}
	if m.schedule != nil {
		fields = append(fields, routine.FieldSchedule)
	}
	if m.routine_tasks != nil {
		fields = append(fields, routine.FieldRoutineTasks)
	}
	if m.tags != nil {
		fields = append(fields, routine.FieldTags)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoutineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case routine.FieldUserID:
		return m.UserID()
	case routine.FieldName:
		return m.Name()
	case routine.FieldSchedule:
		return m.Schedule()
	case routine.FieldRoutineTasks:
		return m.RoutineTasks()
	case routine.FieldTags:
		return m.Tags()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoutineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case routine.FieldUserID:
		return m.OldUserID(ctx)
	case routine.FieldName:
		return m.OldName(ctx)
	case routine.FieldSchedule:
		return m.OldSchedule(ctx)
	case routine.FieldRoutineTasks:
		return m.OldRoutineTasks(ctx)
	case routine.FieldTags:
		return m.OldTags(ctx)
	}
	return nil, fmt.Errorf("unknown Routine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case routine.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case routine.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case routine.FieldSchedule:
		v, ok := value.(domain.RecurrenceSchedule)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedule(v)
		return nil
	case routine.FieldRoutineTasks:
		v, ok := value.([]domain.RoutineTask)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutineTasks(v)
		return nil
	case routine.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	}
	return fmt.Errorf("unknown Routine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoutineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoutineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Routine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoutineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(routine.FieldRoutineTasks) {
		fields = append(fields, routine.FieldRoutineTasks)
	}
	if m.FieldCleared(routine.FieldTags) {
		fields = append(fields, routine.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoutineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoutineMutation) ClearField(name string) error {
	switch name {
	case routine.FieldRoutineTasks:
		m.ClearRoutineTasks()
		return nil
	case routine.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown Routine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoutineMutation) ResetField(name string) error {
	switch name {
	case routine.FieldUserID:
		m.ResetUserID()
		return nil
	case routine.FieldName:
		m.ResetName()
		return nil
	case routine.FieldSchedule:
		m.ResetSchedule()
		return nil
	case routine.FieldRoutineTasks:
		m.ResetRoutineTasks()
		return nil
	case routine.FieldTags:
		m.ResetTags()
		return nil
	}
	return fmt.Errorf("unknown Routine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoutineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, routine.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoutineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case routine.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoutineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoutineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoutineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, routine.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoutineMutation) EdgeCleared(name string) bool {
	switch name {
	case routine.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoutineMutation) ClearEdge(name string) error {
	switch name {
	case routine.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Routine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoutineMutation) ResetEdge(name string) error {
	switch name {
	case routine.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Routine edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	name                  *string
	status                *task.Status
	category              *string
	_type                 *string
	frequency             *string
	schedule              **domain.TimeWindow
	scheduled_date        *string
	routine_definition_id *uuid.UUID
	tags                  *[]string
	appendtags            []string
	actions               *[]domain.TaskAction
	appendactions         []domain.TaskAction
	completed_at          *time.Time
	llm_run_result        **domain.LLMRunResult
	created_at            *time.Time
	clearedFields         map[string]struct{}
	user                  *uuid.UUID
	cleareduser           bool
	done                  bool
	oldValue              func(context.Context) (*Task, error)
	predicates            []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id uuid.UUID) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TaskMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskMutation) ResetUserID() {
	m.user = nil
}

// SetName sets the "name" field.
func (m *TaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetCategory sets the "category" field.
func (m *TaskMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TaskMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *TaskMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[task.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *TaskMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[task.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *TaskMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, task.FieldCategory)
}

// SetType sets the "type" field.
func (m *TaskMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *TaskMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ClearType clears the value of the "type" field.
func (m *TaskMutation) ClearType() {
	m._type = nil
	m.clearedFields[task.FieldType] = struct{}{}
}

// TypeCleared returns if the "type" field was cleared in this mutation.
func (m *TaskMutation) TypeCleared() bool {
	_, ok := m.clearedFields[task.FieldType]
	return ok
}

// ResetType resets all changes to the "type" field.
func (m *TaskMutation) ResetType() {
	m._type = nil
	delete(m.clearedFields, task.FieldType)
}

// SetFrequency sets the "frequency" field.
func (m *TaskMutation) SetFrequency(s string) {
	m.frequency = &s
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *TaskMutation) Frequency() (r string, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// ClearFrequency clears the value of the "frequency" field.
func (m *TaskMutation) ClearFrequency() {
	m.frequency = nil
	m.clearedFields[task.FieldFrequency] = struct{}{}
}

// FrequencyCleared returns if the "frequency" field was cleared in this mutation.
func (m *TaskMutation) FrequencyCleared() bool {
	_, ok := m.clearedFields[task.FieldFrequency]
	return ok
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *TaskMutation) ResetFrequency() {
	m.frequency = nil
	delete(m.clearedFields, task.FieldFrequency)
}

// SetSchedule sets the "schedule" field.
func (m *TaskMutation) SetSchedule(dw *domain.TimeWindow) {
	m.schedule = &dw
}

// Schedule returns the value of the "schedule" field in the mutation.
func (m *TaskMutation) Schedule() (r *domain.TimeWindow, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedule returns the old "schedule" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSchedule(ctx context.Context) (v *domain.TimeWindow, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedule: %w", err)
	}
	return oldValue.Schedule, nil
}

// ClearSchedule clears the value of the "schedule" field.
func (m *TaskMutation) ClearSchedule() {
	m.schedule = nil
	m.clearedFields[task.FieldSchedule] = struct{}{}
}

// ScheduleCleared returns if the "schedule" field was cleared in this mutation.
func (m *TaskMutation) ScheduleCleared() bool {
	_, ok := m.clearedFields[task.FieldSchedule]
	return ok
}

// ResetSchedule resets all changes to the "schedule" field.
func (m *TaskMutation) ResetSchedule() {
	m.schedule = nil
	delete(m.clearedFields, task.FieldSchedule)
}

// SetScheduledDate sets the "scheduled_date" field.
func (m *TaskMutation) SetScheduledDate(s string) {
	m.scheduled_date = &s
}

// ScheduledDate returns the value of the "scheduled_date" field in the mutation.
func (m *TaskMutation) ScheduledDate() (r string, exists bool) {
	v := m.scheduled_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledDate returns the old "scheduled_date" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldScheduledDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledDate: %w", err)
	}
	return oldValue.ScheduledDate, nil
}

// ResetScheduledDate resets all changes to the "scheduled_date" field.
func (m *TaskMutation) ResetScheduledDate() {
	m.scheduled_date = nil
}

// SetRoutineDefinitionID sets the "routine_definition_id" field.
func (m *TaskMutation) SetRoutineDefinitionID(u uuid.UUID) {
	m.routine_definition_id = &u
}

// RoutineDefinitionID returns the value of the "routine_definition_id" field in the mutation.
func (m *TaskMutation) RoutineDefinitionID() (r uuid.UUID, exists bool) {
	v := m.routine_definition_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutineDefinitionID returns the old "routine_definition_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRoutineDefinitionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutineDefinitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutineDefinitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutineDefinitionID: %w", err)
	}
	return oldValue.RoutineDefinitionID, nil
}

// ClearRoutineDefinitionID clears the value of the "routine_definition_id" field.
func (m *TaskMutation) ClearRoutineDefinitionID() {
	m.routine_definition_id = nil
	m.clearedFields[task.FieldRoutineDefinitionID] = struct{}{}
}

// RoutineDefinitionIDCleared returns if the "routine_definition_id" field was cleared in this mutation.
func (m *TaskMutation) RoutineDefinitionIDCleared() bool {
	_, ok := m.clearedFields[task.FieldRoutineDefinitionID]
	return ok
}

// ResetRoutineDefinitionID resets all changes to the "routine_definition_id" field.
func (m *TaskMutation) ResetRoutineDefinitionID() {
	m.routine_definition_id = nil
	delete(m.clearedFields, task.FieldRoutineDefinitionID)
}

// SetTags sets the "tags" field.
func (m *TaskMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TaskMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *TaskMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *TaskMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *TaskMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[task.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *TaskMutation) TagsCleared() bool {
	_, ok := m.clearedFields[task.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *TaskMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, task.FieldTags)
}

// SetActions sets the "actions" field.
func (m *TaskMutation) SetActions(da []domain.TaskAction) {
	m.actions = &da
	m.appendactions = nil
}

// Actions returns the value of the "actions" field in the mutation.
func (m *TaskMutation) Actions() (r []domain.TaskAction, exists bool) {
	v := m.actions
	if v == nil {
		return
	}
	return *v, true
}

// OldActions returns the old "actions" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldActions(ctx context.Context) (v []domain.TaskAction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActions: %w", err)
	}
	return oldValue.Actions, nil
}

// AppendActions adds da to the "actions" field.
func (m *TaskMutation) AppendActions(da []domain.TaskAction) {
	m.appendactions = append(m.appendactions, da...)
}

// AppendedActions returns the list of values that were appended to the "actions" field in this mutation.
func (m *TaskMutation) AppendedActions() ([]domain.TaskAction, bool) {
	if len(m.appendactions) == 0 {
		return nil, false
	}
	return m.appendactions, true
}

// ClearActions clears the value of the "actions" field.
func (m *TaskMutation) ClearActions() {
	m.actions = nil
	m.appendactions = nil
	m.clearedFields[task.FieldActions] = struct{}{}
}

// ActionsCleared returns if the "actions" field was cleared in this mutation.
func (m *TaskMutation) ActionsCleared() bool {
	_, ok := m.clearedFields[task.FieldActions]
	return ok
}

// ResetActions resets all changes to the "actions" field.
func (m *TaskMutation) ResetActions() {
	m.actions = nil
	m.appendactions = nil
	delete(m.clearedFields, task.FieldActions)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetLlmRunResult sets the "llm_run_result" field.
func (m *TaskMutation) SetLlmRunResult(drr *domain.LLMRunResult) {
	m.llm_run_result = &drr
}

// LlmRunResult returns the value of the "llm_run_result" field in the mutation.
func (m *TaskMutation) LlmRunResult() (r *domain.LLMRunResult, exists bool) {
	v := m.llm_run_result
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmRunResult returns the old "llm_run_result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLlmRunResult(ctx context.Context) (v *domain.LLMRunResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmRunResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmRunResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmRunResult: %w", err)
	}
	return oldValue.LlmRunResult, nil
}

// ClearLlmRunResult clears the value of the "llm_run_result" field.
func (m *TaskMutation) ClearLlmRunResult() {
	m.llm_run_result = nil
	m.clearedFields[task.FieldLlmRunResult] = struct{}{}
}

// LlmRunResultCleared returns if the "llm_run_result" field was cleared in this mutation.
func (m *TaskMutation) LlmRunResultCleared() bool {
	_, ok := m.clearedFields[task.FieldLlmRunResult]
	return ok
}

// ResetLlmRunResult resets all changes to the "llm_run_result" field.
func (m *TaskMutation) ResetLlmRunResult() {
	m.llm_run_result = nil
	delete(m.clearedFields, task.FieldLlmRunResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *TaskMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[task.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *TaskMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *TaskMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.user != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, task.FieldName)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.category != nil {
		fields = append(fields, task.FieldCategory)
	}
	if m._type != nil {
		fields = append(fields, task.FieldType)
	}
	if m.frequency != nil {
		fields = append(fields, task.FieldFrequency)
	}
	if m.schedule != nil {
		fields = append(fields, task.FieldSchedule)
	}
	if m.scheduled_date != nil {
		fields = append(fields, task.FieldScheduledDate)
	}
	if m.routine_definition_id != nil {
		fields = append(fields, task.FieldRoutineDefinitionID)
	}
	if m.tags != nil {
		fields = append(fields, task.FieldTags)
	}
	if m.actions != nil {
		fields = append(fields, task.FieldActions)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.llm_run_result != nil {
		fields = append(fields, task.FieldLlmRunResult)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldUserID:
		return m.UserID()
	case task.FieldName:
		return m.Name()
	case task.FieldStatus:
		return m.Status()
	case task.FieldCategory:
		return m.Category()
	case task.FieldType:
		return m.GetType()
	case task.FieldFrequency:
		return m.Frequency()
	case task.FieldSchedule:
		return m.Schedule()
	case task.FieldScheduledDate:
		return m.ScheduledDate()
	case task.FieldRoutineDefinitionID:
		return m.RoutineDefinitionID()
	case task.FieldTags:
		return m.Tags()
	case task.FieldActions:
		return m.Actions()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldLlmRunResult:
		return m.LlmRunResult()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldUserID:
		return m.OldUserID(ctx)
	case task.FieldName:
		return m.OldName(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldCategory:
		return m.OldCategory(ctx)
	case task.FieldType:
		return m.OldType(ctx)
	case task.FieldFrequency:
		return m.OldFrequency(ctx)
	case task.FieldSchedule:
		return m.OldSchedule(ctx)
	case task.FieldScheduledDate:
		return m.OldScheduledDate(ctx)
	case task.FieldRoutineDefinitionID:
		return m.OldRoutineDefinitionID(ctx)
	case task.FieldTags:
		return m.OldTags(ctx)
	case task.FieldActions:
		return m.OldActions(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldLlmRunResult:
		return m.OldLlmRunResult(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case task.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case task.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case task.FieldFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case task.FieldSchedule:
		v, ok := value.(*domain.TimeWindow)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedule(v)
		return nil
	case task.FieldScheduledDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledDate(v)
		return nil
	case task.FieldRoutineDefinitionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutineDefinitionID(v)
		return nil
	case task.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case task.FieldActions:
		v, ok := value.([]domain.TaskAction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActions(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldLlmRunResult:
		v, ok := value.(*domain.LLMRunResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmRunResult(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldCategory) {
		fields = append(fields, task.FieldCategory)
	}
	if m.FieldCleared(task.FieldType) {
		fields = append(fields, task.FieldType)
	}
	if m.FieldCleared(task.FieldFrequency) {
		fields = append(fields, task.FieldFrequency)
	}
	if m.FieldCleared(task.FieldSchedule) {
		fields = append(fields, task.FieldSchedule)
	}
	if m.FieldCleared(task.FieldRoutineDefinitionID) {
		fields = append(fields, task.FieldRoutineDefinitionID)
	}
	if m.FieldCleared(task.FieldTags) {
		fields = append(fields, task.FieldTags)
	}
	if m.FieldCleared(task.FieldActions) {
		fields = append(fields, task.FieldActions)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldLlmRunResult) {
		fields = append(fields, task.FieldLlmRunResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldCategory:
		m.ClearCategory()
		return nil
	case task.FieldType:
		m.ClearType()
		return nil
	case task.FieldFrequency:
		m.ClearFrequency()
		return nil
	case task.FieldSchedule:
		m.ClearSchedule()
		return nil
	case task.FieldRoutineDefinitionID:
		m.ClearRoutineDefinitionID()
		return nil
	case task.FieldTags:
		m.ClearTags()
		return nil
	case task.FieldActions:
		m.ClearActions()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldLlmRunResult:
		m.ClearLlmRunResult()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldUserID:
		m.ResetUserID()
		return nil
	case task.FieldName:
		m.ResetName()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldCategory:
		m.ResetCategory()
		return nil
	case task.FieldType:
		m.ResetType()
		return nil
	case task.FieldFrequency:
		m.ResetFrequency()
		return nil
	case task.FieldSchedule:
		m.ResetSchedule()
		return nil
	case task.FieldScheduledDate:
		m.ResetScheduledDate()
		return nil
	case task.FieldRoutineDefinitionID:
		m.ResetRoutineDefinitionID()
		return nil
	case task.FieldTags:
		m.ResetTags()
		return nil
	case task.FieldActions:
		m.ResetActions()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldLlmRunResult:
		m.ResetLlmRunResult()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, task.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, task.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	name                         *string
	phone_number                 *string
	settings                     *domain.UserSettings
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	days                         map[uuid.UUID]struct{}
	removeddays                  map[uuid.UUID]struct{}
	cleareddays                  bool
	tasks                        map[uuid.UUID]struct{}
	removedtasks                 map[uuid.UUID]struct{}
	clearedtasks                 bool
	routines                     map[uuid.UUID]struct{}
	removedroutines              map[uuid.UUID]struct{}
	clearedroutines              bool
	day_templates                map[uuid.UUID]struct{}
	removedday_templates         map[uuid.UUID]struct{}
	clearedday_templates         bool
	calendar_entries             map[uuid.UUID]struct{}
	removedcalendar_entries      map[uuid.UUID]struct{}
	clearedcalendar_entries      bool
	calendar_entry_series        map[uuid.UUID]struct{}
	removedcalendar_entry_series map[uuid.UUID]struct{}
	clearedcalendar_entry_series bool
	messages                     map[uuid.UUID]struct{}
	removedmessages              map[uuid.UUID]struct{}
	clearedmessages              bool
	push_subscriptions           map[uuid.UUID]struct{}
	removedpush_subscriptions    map[uuid.UUID]struct{}
	clearedpush_subscriptions    bool
	push_notifications           map[uuid.UUID]struct{}
	removedpush_notifications    map[uuid.UUID]struct{}
	clearedpush_notifications    bool
	brain_dumps                  map[uuid.UUID]struct{}
	removedbrain_dumps           map[uuid.UUID]struct{}
	clearedbrain_dumps           bool
	audit_logs                   map[uuid.UUID]struct{}
	removedaudit_logs            map[uuid.UUID]struct{}
	clearedaudit_logs            bool
	done                         bool
	oldValue                     func(context.Context) (*User, error)
	predicates                   []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetPhoneNumber sets the "phone_number" field.
func (m *UserMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *UserMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhoneNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *UserMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[user.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *UserMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[user.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *UserMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, user.FieldPhoneNumber)
}

// SetSettings sets the "settings" field.
func (m *UserMutation) SetSettings(ds domain.UserSettings) {
	m.settings = &ds
}

// Settings returns the value of the "settings" field in the mutation.
func (m *UserMutation) Settings() (r domain.UserSettings, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSettings(ctx context.Context) (v domain.UserSettings, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ResetSettings resets all changes to the "settings" field.
func (m *UserMutation) ResetSettings() {
	m.settings = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDayIDs adds the "days" edge to the Day entity by ids.
func (m *UserMutation) AddDayIDs(ids ...uuid.UUID) {
	if m.days == nil {
		m.days = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.days[ids[i]] = struct{}{}
	}
}

// ClearDays clears the "days" edge to the Day entity.
func (m *UserMutation) ClearDays() {
	m.cleareddays = true
}

// DaysCleared reports if the "days" edge to the Day entity was cleared.
func (m *UserMutation) DaysCleared() bool {
	return m.cleareddays
}

// RemoveDayIDs removes the "days" edge to the Day entity by IDs.
func (m *UserMutation) RemoveDayIDs(ids ...uuid.UUID) {
	if m.removeddays == nil {
		m.removeddays = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.days, ids[i])
		m.removeddays[ids[i]] = struct{}{}
	}
}

// RemovedDays returns the removed IDs of the "days" edge to the Day entity.
func (m *UserMutation) RemovedDaysIDs() (ids []uuid.UUID) {
	for id := range m.removeddays {
		ids = append(ids, id)
	}
	return
}

// DaysIDs returns the "days" edge IDs in the mutation.
func (m *UserMutation) DaysIDs() (ids []uuid.UUID) {
	for id := range m.days {
		ids = append(ids, id)
	}
	return
}

// ResetDays resets all changes to the "days" edge.
func (m *UserMutation) ResetDays() {
	m.days = nil
	m.cleareddays = false
	m.removeddays = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *UserMutation) AddTaskIDs(ids ...uuid.UUID) {
	if m.tasks == nil {
		m.tasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *UserMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *UserMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *UserMutation) RemoveTaskIDs(ids ...uuid.UUID) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *UserMutation) RemovedTasksIDs() (ids []uuid.UUID) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *UserMutation) TasksIDs() (ids []uuid.UUID) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *UserMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddRoutineIDs adds the "routines" edge to the Routine entity by ids.
func (m *UserMutation) AddRoutineIDs(ids ...uuid.UUID) {
	if m.routines == nil {
		m.routines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.routines[ids[i]] = struct{}{}
	}
}

// ClearRoutines clears the "routines" edge to the Routine entity.
func (m *UserMutation) ClearRoutines() {
	m.clearedroutines = true
}

// RoutinesCleared reports if the "routines" edge to the Routine entity was cleared.
func (m *UserMutation) RoutinesCleared() bool {
	return m.clearedroutines
}

// RemoveRoutineIDs removes the "routines" edge to the Routine entity by IDs.
func (m *UserMutation) RemoveRoutineIDs(ids ...uuid.UUID) {
	if m.removedroutines == nil {
		m.removedroutines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.routines, ids[i])
		m.removedroutines[ids[i]] = struct{}{}
	}
}

// RemovedRoutines returns the removed IDs of the "routines" edge to the Routine entity.
func (m *UserMutation) RemovedRoutinesIDs() (ids []uuid.UUID) {
	for id := range m.removedroutines {
		ids = append(ids, id)
	}
	return
}

// RoutinesIDs returns the "routines" edge IDs in the mutation.
func (m *UserMutation) RoutinesIDs() (ids []uuid.UUID) {
	for id := range m.routines {
		ids = append(ids, id)
	}
	return
}

// ResetRoutines resets all changes to the "routines" edge.
func (m *UserMutation) ResetRoutines() {
	m.routines = nil
	m.clearedroutines = false
	m.removedroutines = nil
}

// AddDayTemplateIDs adds the "day_templates" edge to the DayTemplate entity by ids.
func (m *UserMutation) AddDayTemplateIDs(ids ...uuid.UUID) {
	if m.day_templates == nil {
		m.day_templates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.day_templates[ids[i]] = struct{}{}
	}
}

// ClearDayTemplates clears the "day_templates" edge to the DayTemplate entity.
func (m *UserMutation) ClearDayTemplates() {
	m.clearedday_templates = true
}

// DayTemplatesCleared reports if the "day_templates" edge to the DayTemplate entity was cleared.
func (m *UserMutation) DayTemplatesCleared() bool {
	return m.clearedday_templates
}

// RemoveDayTemplateIDs removes the "day_templates" edge to the DayTemplate entity by IDs.
func (m *UserMutation) RemoveDayTemplateIDs(ids ...uuid.UUID) {
	if m.removedday_templates == nil {
		m.removedday_templates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.day_templates, ids[i])
		m.removedday_templates[ids[i]] = struct{}{}
	}
}

// RemovedDayTemplates returns the removed IDs of the "day_templates" edge to the DayTemplate entity.
func (m *UserMutation) RemovedDayTemplatesIDs() (ids []uuid.UUID) {
	for id := range m.removedday_templates {
		ids = append(ids, id)
	}
	return
}

// DayTemplatesIDs returns the "day_templates" edge IDs in the mutation.
func (m *UserMutation) DayTemplatesIDs() (ids []uuid.UUID) {
	for id := range m.day_templates {
		ids = append(ids, id)
	}
	return
}

// ResetDayTemplates resets all changes to the "day_templates" edge.
func (m *UserMutation) ResetDayTemplates() {
	m.day_templates = nil
	m.clearedday_templates = false
	m.removedday_templates = nil
}

// AddCalendarEntryIDs adds the "calendar_entries" edge to the CalendarEntry entity by ids.
func (m *UserMutation) AddCalendarEntryIDs(ids ...uuid.UUID) {
	if m.calendar_entries == nil {
		m.calendar_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.calendar_entries[ids[i]] = struct{}{}
	}
}

// ClearCalendarEntries clears the "calendar_entries" edge to the CalendarEntry entity.
func (m *UserMutation) ClearCalendarEntries() {
	m.clearedcalendar_entries = true
}

// CalendarEntriesCleared reports if the "calendar_entries" edge to the CalendarEntry entity was cleared.
func (m *UserMutation) CalendarEntriesCleared() bool {
	return m.clearedcalendar_entries
}

// RemoveCalendarEntryIDs removes the "calendar_entries" edge to the CalendarEntry entity by IDs.
func (m *UserMutation) RemoveCalendarEntryIDs(ids ...uuid.UUID) {
	if m.removedcalendar_entries == nil {
		m.removedcalendar_entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.calendar_entries, ids[i])
		m.removedcalendar_entries[ids[i]] = struct{}{}
	}
}

// RemovedCalendarEntries returns the removed IDs of the "calendar_entries" edge to the CalendarEntry entity.
func (m *UserMutation) RemovedCalendarEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedcalendar_entries {
		ids = append(ids, id)
	}
	return
}

// CalendarEntriesIDs returns the "calendar_entries" edge IDs in the mutation.
func (m *UserMutation) CalendarEntriesIDs() (ids []uuid.UUID) {
	for id := range m.calendar_entries {
		ids = append(ids, id)
	}
	return
}

// ResetCalendarEntries resets all changes to the "calendar_entries" edge.
func (m *UserMutation) ResetCalendarEntries() {
	m.calendar_entries = nil
	m.clearedcalendar_entries = false
	m.removedcalendar_entries = nil
}

// AddCalendarEntrySeriesIDs adds the "calendar_entry_series" edge to the CalendarEntrySeries entity by ids.
func (m *UserMutation) AddCalendarEntrySeriesIDs(ids ...uuid.UUID) {
	if m.calendar_entry_series == nil {
		m.calendar_entry_series = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.calendar_entry_series[ids[i]] = struct{}{}
	}
}

// ClearCalendarEntrySeries clears the "calendar_entry_series" edge to the CalendarEntrySeries entity.
func (m *UserMutation) ClearCalendarEntrySeries() {
	m.clearedcalendar_entry_series = true
}

// CalendarEntrySeriesCleared reports if the "calendar_entry_series" edge to the CalendarEntrySeries entity was cleared.
func (m *UserMutation) CalendarEntrySeriesCleared() bool {
	return m.clearedcalendar_entry_series
}

// RemoveCalendarEntrySeriesIDs removes the "calendar_entry_series" edge to the CalendarEntrySeries entity by IDs.
func (m *UserMutation) RemoveCalendarEntrySeriesIDs(ids ...uuid.UUID) {
	if m.removedcalendar_entry_series == nil {
		m.removedcalendar_entry_series = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.calendar_entry_series, ids[i])
		m.removedcalendar_entry_series[ids[i]] = struct{}{}
	}
}

// RemovedCalendarEntrySeries returns the removed IDs of the "calendar_entry_series" edge to the CalendarEntrySeries entity.
func (m *UserMutation) RemovedCalendarEntrySeriesIDs() (ids []uuid.UUID) {
	for id := range m.removedcalendar_entry_series {
		ids = append(ids, id)
	}
	return
}

// CalendarEntrySeriesIDs returns the "calendar_entry_series" edge IDs in the mutation.
func (m *UserMutation) CalendarEntrySeriesIDs() (ids []uuid.UUID) {
	for id := range m.calendar_entry_series {
		ids = append(ids, id)
	}
	return
}

// ResetCalendarEntrySeries resets all changes to the "calendar_entry_series" edge.
func (m *UserMutation) ResetCalendarEntrySeries() {
	m.calendar_entry_series = nil
	m.clearedcalendar_entry_series = false
	m.removedcalendar_entry_series = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *UserMutation) AddMessageIDs(ids ...uuid.UUID) {
	if m.messages == nil {
		m.messages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *UserMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *UserMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *UserMutation) RemoveMessageIDs(ids ...uuid.UUID) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *UserMutation) RemovedMessagesIDs() (ids []uuid.UUID) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *UserMutation) MessagesIDs() (ids []uuid.UUID) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *UserMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddPushSubscriptionIDs adds the "push_subscriptions" edge to the PushSubscription entity by ids.
func (m *UserMutation) AddPushSubscriptionIDs(ids ...uuid.UUID) {
	if m.push_subscriptions == nil {
		m.push_subscriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.push_subscriptions[ids[i]] = struct{}{}
	}
}

// ClearPushSubscriptions clears the "push_subscriptions" edge to the PushSubscription entity.
func (m *UserMutation) ClearPushSubscriptions() {
	m.clearedpush_subscriptions = true
}

// PushSubscriptionsCleared reports if the "push_subscriptions" edge to the PushSubscription entity was cleared.
func (m *UserMutation) PushSubscriptionsCleared() bool {
	return m.clearedpush_subscriptions
}

// RemovePushSubscriptionIDs removes the "push_subscriptions" edge to the PushSubscription entity by IDs.
func (m *UserMutation) RemovePushSubscriptionIDs(ids ...uuid.UUID) {
	if m.removedpush_subscriptions == nil {
		m.removedpush_subscriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.push_subscriptions, ids[i])
		m.removedpush_subscriptions[ids[i]] = struct{}{}
	}
}

// RemovedPushSubscriptions returns the removed IDs of the "push_subscriptions" edge to the PushSubscription entity.
func (m *UserMutation) RemovedPushSubscriptionsIDs() (ids []uuid.UUID) {
	for id := range m.removedpush_subscriptions {
		ids = append(ids, id)
	}
	return
}

// PushSubscriptionsIDs returns the "push_subscriptions" edge IDs in the mutation.
func (m *UserMutation) PushSubscriptionsIDs() (ids []uuid.UUID) {
	for id := range m.push_subscriptions {
		ids = append(ids, id)
	}
	return
}

// ResetPushSubscriptions resets all changes to the "push_subscriptions" edge.
func (m *UserMutation) ResetPushSubscriptions() {
	m.push_subscriptions = nil
	m.clearedpush_subscriptions = false
	m.removedpush_subscriptions = nil
}

// AddPushNotificationIDs adds the "push_notifications" edge to the PushNotification entity by ids.
func (m *UserMutation) AddPushNotificationIDs(ids ...uuid.UUID) {
	if m.push_notifications == nil {
		m.push_notifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.push_notifications[ids[i]] = struct{}{}
	}
}

// ClearPushNotifications clears the "push_notifications" edge to the PushNotification entity.
func (m *UserMutation) ClearPushNotifications() {
	m.clearedpush_notifications = true
}

// PushNotificationsCleared reports if the "push_notifications" edge to the PushNotification entity was cleared.
func (m *UserMutation) PushNotificationsCleared() bool {
	return m.clearedpush_notifications
}

// RemovePushNotificationIDs removes the "push_notifications" edge to the PushNotification entity by IDs.
func (m *UserMutation) RemovePushNotificationIDs(ids ...uuid.UUID) {
	if m.removedpush_notifications == nil {
		m.removedpush_notifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.push_notifications, ids[i])
		m.removedpush_notifications[ids[i]] = struct{}{}
	}
}

// RemovedPushNotifications returns the removed IDs of the "push_notifications" edge to the PushNotification entity.
func (m *UserMutation) RemovedPushNotificationsIDs() (ids []uuid.UUID) {
	for id := range m.removedpush_notifications {
		ids = append(ids, id)
	}
	return
}

// PushNotificationsIDs returns the "push_notifications" edge IDs in the mutation.
func (m *UserMutation) PushNotificationsIDs() (ids []uuid.UUID) {
	for id := range m.push_notifications {
		ids = append(ids, id)
	}
	return
}

// ResetPushNotifications resets all changes to the "push_notifications" edge.
func (m *UserMutation) ResetPushNotifications() {
	m.push_notifications = nil
	m.clearedpush_notifications = false
	m.removedpush_notifications = nil
}

// AddBrainDumpIDs adds the "brain_dumps" edge to the BrainDump entity by ids.
func (m *UserMutation) AddBrainDumpIDs(ids ...uuid.UUID) {
	if m.brain_dumps == nil {
		m.brain_dumps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.brain_dumps[ids[i]] = struct{}{}
	}
}

// ClearBrainDumps clears the "brain_dumps" edge to the BrainDump entity.
func (m *UserMutation) ClearBrainDumps() {
	m.clearedbrain_dumps = true
}

// BrainDumpsCleared reports if the "brain_dumps" edge to the BrainDump entity was cleared.
func (m *UserMutation) BrainDumpsCleared() bool {
	return m.clearedbrain_dumps
}

// RemoveBrainDumpIDs removes the "brain_dumps" edge to the BrainDump entity by IDs.
func (m *UserMutation) RemoveBrainDumpIDs(ids ...uuid.UUID) {
	if m.removedbrain_dumps == nil {
		m.removedbrain_dumps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.brain_dumps, ids[i])
		m.removedbrain_dumps[ids[i]] = struct{}{}
	}
}

// RemovedBrainDumps returns the removed IDs of the "brain_dumps" edge to the BrainDump entity.
func (m *UserMutation) RemovedBrainDumpsIDs() (ids []uuid.UUID) {
	for id := range m.removedbrain_dumps {
		ids = append(ids, id)
	}
	return
}

// BrainDumpsIDs returns the "brain_dumps" edge IDs in the mutation.
func (m *UserMutation) BrainDumpsIDs() (ids []uuid.UUID) {
	for id := range m.brain_dumps {
		ids = append(ids, id)
	}
	return
}

// ResetBrainDumps resets all changes to the "brain_dumps" edge.
func (m *UserMutation) ResetBrainDumps() {
	m.brain_dumps = nil
	m.clearedbrain_dumps = false
	m.removedbrain_dumps = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by ids.
func (m *UserMutation) AddAuditLogIDs(ids ...uuid.UUID) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the AuditLog entity.
func (m *UserMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the AuditLog entity was cleared.
func (m *UserMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the AuditLog entity by IDs.
func (m *UserMutation) RemoveAuditLogIDs(ids ...uuid.UUID) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the AuditLog entity.
func (m *UserMutation) RemovedAuditLogsIDs() (ids []uuid.UUID) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *UserMutation) AuditLogsIDs() (ids []uuid.UUID) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *UserMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.phone_number != nil {
		fields = append(fields, user.FieldPhoneNumber)
	}
	if m.settings != nil {
		fields = append(fields, user.FieldSettings)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldPhoneNumber:
		return m.PhoneNumber()
	case user.FieldSettings:
		return m.Settings()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case user.FieldSettings:
		return m.OldSettings(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case user.FieldSettings:
		v, ok := value.(domain.UserSettings)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldPhoneNumber) {
		fields = append(fields, user.FieldPhoneNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case user.FieldSettings:
		m.ResetSettings()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 11)
	if m.days != nil {
		edges = append(edges, user.EdgeDays)
	}
	if m.tasks != nil {
		edges = append(edges, user.EdgeTasks)
	}
	if m.routines != nil {
		edges = append(edges, user.EdgeRoutines)
	}
	if m.day_templates != nil {
		edges = append(edges, user.EdgeDayTemplates)
	}
	if m.calendar_entries != nil {
		edges = append(edges, user.EdgeCalendarEntries)
	}
	if m.calendar_entry_series != nil {
		edges = append(edges, user.EdgeCalendarEntrySeries)
	}
	if m.messages != nil {
		edges = append(edges, user.EdgeMessages)
	}
	if m.push_subscriptions != nil {
		edges = append(edges, user.EdgePushSubscriptions)
	}
	if m.push_notifications != nil {
		edges = append(edges, user.EdgePushNotifications)
	}
	if m.brain_dumps != nil {
		edges = append(edges, user.EdgeBrainDumps)
	}
	if m.audit_logs != nil {
		edges = append(edges, user.EdgeAuditLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeDays:
		ids := make([]ent.Value, 0, len(m.days))
		for id := range m.days {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeRoutines:
		ids := make([]ent.Value, 0, len(m.routines))
		for id := range m.routines {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDayTemplates:
		ids := make([]ent.Value, 0, len(m.day_templates))
		for id := range m.day_templates {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCalendarEntries:
		ids := make([]ent.Value, 0, len(m.calendar_entries))
		for id := range m.calendar_entries {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCalendarEntrySeries:
		ids := make([]ent.Value, 0, len(m.calendar_entry_series))
		for id := range m.calendar_entry_series {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePushSubscriptions:
		ids := make([]ent.Value, 0, len(m.push_subscriptions))
		for id := range m.push_subscriptions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePushNotifications:
		ids := make([]ent.Value, 0, len(m.push_notifications))
		for id := range m.push_notifications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeBrainDumps:
		ids := make([]ent.Value, 0, len(m.brain_dumps))
		for id := range m.brain_dumps {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 11)
	if m.removeddays != nil {
		edges = append(edges, user.EdgeDays)
	}
	if m.removedtasks != nil {
		edges = append(edges, user.EdgeTasks)
	}
	if m.removedroutines != nil {
		edges = append(edges, user.EdgeRoutines)
	}
	if m.removedday_templates != nil {
		edges = append(edges, user.EdgeDayTemplates)
	}
	if m.removedcalendar_entries != nil {
		edges = append(edges, user.EdgeCalendarEntries)
	}
	if m.removedcalendar_entry_series != nil {
		edges = append(edges, user.EdgeCalendarEntrySeries)
	}
	if m.removedmessages != nil {
		edges = append(edges, user.EdgeMessages)
	}
	if m.removedpush_subscriptions != nil {
		edges = append(edges, user.EdgePushSubscriptions)
	}
	if m.removedpush_notifications != nil {
		edges = append(edges, user.EdgePushNotifications)
	}
	if m.removedbrain_dumps != nil {
		edges = append(edges, user.EdgeBrainDumps)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, user.EdgeAuditLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeDays:
		ids := make([]ent.Value, 0, len(m.removeddays))
		for id := range m.removeddays {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeRoutines:
		ids := make([]ent.Value, 0, len(m.removedroutines))
		for id := range m.removedroutines {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDayTemplates:
		ids := make([]ent.Value, 0, len(m.removedday_templates))
		for id := range m.removedday_templates {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCalendarEntries:
		ids := make([]ent.Value, 0, len(m.removedcalendar_entries))
		for id := range m.removedcalendar_entries {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCalendarEntrySeries:
		ids := make([]ent.Value, 0, len(m.removedcalendar_entry_series))
		for id := range m.removedcalendar_entry_series {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePushSubscriptions:
		ids := make([]ent.Value, 0, len(m.removedpush_subscriptions))
		for id := range m.removedpush_subscriptions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePushNotifications:
		ids := make([]ent.Value, 0, len(m.removedpush_notifications))
		for id := range m.removedpush_notifications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeBrainDumps:
		ids := make([]ent.Value, 0, len(m.removedbrain_dumps))
		for id := range m.removedbrain_dumps {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 11)
	if m.cleareddays {
		edges = append(edges, user.EdgeDays)
	}
	if m.clearedtasks {
		edges = append(edges, user.EdgeTasks)
	}
	if m.clearedroutines {
		edges = append(edges, user.EdgeRoutines)
	}
	if m.clearedday_templates {
		edges = append(edges, user.EdgeDayTemplates)
	}
	if m.clearedcalendar_entries {
		edges = append(edges, user.EdgeCalendarEntries)
	}
	if m.clearedcalendar_entry_series {
		edges = append(edges, user.EdgeCalendarEntrySeries)
	}
	if m.clearedmessages {
		edges = append(edges, user.EdgeMessages)
	}
	if m.clearedpush_subscriptions {
		edges = append(edges, user.EdgePushSubscriptions)
	}
	if m.clearedpush_notifications {
		edges = append(edges, user.EdgePushNotifications)
	}
	if m.clearedbrain_dumps {
		edges = append(edges, user.EdgeBrainDumps)
	}
	if m.clearedaudit_logs {
		edges = append(edges, user.EdgeAuditLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeDays:
		return m.cleareddays
	case user.EdgeTasks:
		return m.clearedtasks
	case user.EdgeRoutines:
		return m.clearedroutines
	case user.EdgeDayTemplates:
		return m.clearedday_templates
	case user.EdgeCalendarEntries:
		return m.clearedcalendar_entries
	case user.EdgeCalendarEntrySeries:
		return m.clearedcalendar_entry_series
	case user.EdgeMessages:
		return m.clearedmessages
	case user.EdgePushSubscriptions:
		return m.clearedpush_subscriptions
	case user.EdgePushNotifications:
		return m.clearedpush_notifications
	case user.EdgeBrainDumps:
		return m.clearedbrain_dumps
	case user.EdgeAuditLogs:
		return m.clearedaudit_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeDays:
		m.ResetDays()
		return nil
	case user.EdgeTasks:
		m.ResetTasks()
		return nil
	case user.EdgeRoutines:
		m.ResetRoutines()
		return nil
	case user.EdgeDayTemplates:
		m.ResetDayTemplates()
		return nil
	case user.EdgeCalendarEntries:
		m.ResetCalendarEntries()
		return nil
	case user.EdgeCalendarEntrySeries:
		m.ResetCalendarEntrySeries()
		return nil
	case user.EdgeMessages:
		m.ResetMessages()
		return nil
	case user.EdgePushSubscriptions:
		m.ResetPushSubscriptions()
		return nil
	case user.EdgePushNotifications:
		m.ResetPushNotifications()
		return nil
	case user.EdgeBrainDumps:
		m.ResetBrainDumps()
		return nil
	case user.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
