// Package uow implements the unit of work: the single write path of the
// planning core. Services register aggregates on it; commit persists them,
// writes the audit log in the same transaction, then publishes, dispatches
// and enqueues strictly after COMMIT.
package uow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daybreakhq/daybreak/ent"
	"github.com/daybreakhq/daybreak/pkg/database"
	"github.com/daybreakhq/daybreak/pkg/dispatch"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/events"
)

// ErrRollbackOnly is returned by Commit when a nested unit of work rolled
// back, poisoning the outer transaction.
var ErrRollbackOnly = errors.New("unit of work marked rollback-only by nested scope")

// JobRequest is a background job deferred until after commit.
type JobRequest struct {
	UserID  uuid.UUID
	Kind    string
	Payload map[string]any
	RunAt   time.Time // zero means immediately
}

// Factory opens units of work. One Factory per process, wired at startup.
type Factory struct {
	db         *database.Client
	publisher  *events.Publisher
	dispatcher *dispatch.Dispatcher
}

// NewFactory creates a Factory. publisher and dispatcher may be nil in
// tests; the post-commit steps are then skipped.
func NewFactory(db *database.Client, publisher *events.Publisher, dispatcher *dispatch.Dispatcher) *Factory {
	return &Factory{db: db, publisher: publisher, dispatcher: dispatcher}
}

type ctxKey struct{}

// Begin opens a unit of work and returns a context carrying it. When the
// context already carries an active unit of work, the returned value is a
// nested view on the same transaction: its Add/Remove/Defer feed the
// outer scope, its Commit is a no-op, and its Rollback poisons the outer
// commit. One operation, one transaction.
func (f *Factory) Begin(ctx context.Context) (*UnitOfWork, context.Context, error) {
	if outer, ok := ctx.Value(ctxKey{}).(*UnitOfWork); ok && !outer.done {
		return &UnitOfWork{parent: outer}, ctx, nil
	}

	tx, err := f.db.Tx(ctx)
	if err != nil {
		return nil, ctx, fmt.Errorf("failed to begin transaction: %w", err)
	}
	u := &UnitOfWork{
		tx:         tx,
		db:         f.db,
		publisher:  f.publisher,
		dispatcher: f.dispatcher,
	}
	return u, context.WithValue(ctx, ctxKey{}, u), nil
}

// UnitOfWork tracks aggregates touched by one operation and flushes them
// atomically. Not safe for concurrent use.
type UnitOfWork struct {
	tx         *ent.Tx
	db         *database.Client
	publisher  *events.Publisher
	dispatcher *dispatch.Dispatcher

	parent *UnitOfWork // non-nil for nested views

	registered []domain.Aggregate
	byID       map[uuid.UUID]int
	removed    []domain.Aggregate
	jobs       []JobRequest

	done         bool
	rollbackOnly bool
}

// root returns the outermost unit of work.
func (u *UnitOfWork) root() *UnitOfWork {
	if u.parent != nil {
		return u.parent
	}
	return u
}

// Tx exposes the open transaction for reads that must see uncommitted
// writes of the same operation.
func (u *UnitOfWork) Tx() *ent.Tx { return u.root().tx }

// Add registers an aggregate for persistence at commit. Registering the
// same identity again replaces the earlier registration; the aggregate is
// persisted once, in first-registration order.
func (u *UnitOfWork) Add(agg domain.Aggregate) {
	r := u.root()
	if r.byID == nil {
		r.byID = make(map[uuid.UUID]int)
	}
	if i, ok := r.byID[agg.AggregateID()]; ok {
		r.registered[i] = agg
		return
	}
	r.byID[agg.AggregateID()] = len(r.registered)
	r.registered = append(r.registered, agg)
}

// Remove registers an aggregate for deletion at commit.
func (u *UnitOfWork) Remove(agg domain.Aggregate) {
	r := u.root()
	r.removed = append(r.removed, agg)
}

// Defer enqueues a background job, flushed to the jobs table only after a
// successful commit.
func (u *UnitOfWork) Defer(req JobRequest) {
	r := u.root()
	r.jobs = append(r.jobs, req)
}

// Rollback aborts the transaction and discards all registered state.
// On a nested view it marks the outer scope rollback-only instead.
func (u *UnitOfWork) Rollback() error {
	if u.parent != nil {
		u.parent.rollbackOnly = true
		return nil
	}
	if u.done {
		return nil
	}
	u.done = true
	return u.tx.Rollback()
}

// Commit flushes all registered aggregates, writes the audit log in the
// same transaction and commits. After COMMIT it publishes audit entries,
// publishes and dispatches domain events, and enqueues deferred jobs;
// failures in those steps are logged, never returned, because the data
// change is already durable. Commit on a nested view is a no-op.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.parent != nil {
		return nil
	}
	if u.done {
		return fmt.Errorf("unit of work already finished")
	}
	if u.rollbackOnly {
		u.done = true
		if err := u.tx.Rollback(); err != nil {
			slog.Error("Rollback failed on rollback-only unit of work", "error", err)
		}
		return ErrRollbackOnly
	}

	evts, err := u.flush(ctx)
	if err != nil {
		u.done = true
		if rbErr := u.tx.Rollback(); rbErr != nil {
			slog.Error("Rollback failed after flush error", "error", rbErr)
		}
		return err
	}

	rows := buildAuditRows(auditableOf(evts), time.Now().UTC())
	if err := u.insertAuditRows(ctx, rows); err != nil {
		u.done = true
		if rbErr := u.tx.Rollback(); rbErr != nil {
			slog.Error("Rollback failed after audit write error", "error", rbErr)
		}
		return err
	}

	if err := u.tx.Commit(); err != nil {
		u.done = true
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}
	u.done = true

	for _, agg := range u.registered {
		agg.MarkPersisted()
	}

	// Post-commit pipeline. Order matters: clients learn about the
	// mutation first, then reactive handlers run, then deferred jobs
	// become claimable.
	u.publishAuditRows(ctx, rows)
	u.publishDomainEvents(ctx, evts)
	if u.dispatcher != nil {
		u.dispatcher.Dispatch(ctx, evts)
	}
	u.flushJobs(ctx)
	return nil
}

// flush persists registrations and deletions and collects the resulting
// domain events in a deterministic order: per aggregate, its own emitted
// events first, then the synthesized mutation event.
func (u *UnitOfWork) flush(ctx context.Context) ([]domain.Event, error) {
	var evts []domain.Event
	for _, agg := range u.registered {
		if err := u.persist(ctx, agg); err != nil {
			return nil, fmt.Errorf("failed to persist %s %s: %w", agg.AggregateType(), agg.AggregateID(), err)
		}

		emitted := agg.DrainEvents()
		evts = append(evts, emitted...)

		// A brand-new aggregate always audits as created. An existing one
		// audits as a generic update unless it already emitted a more
		// specific auditable event for itself (e.g. TaskCompletedEvent).
		if agg.IsNew() {
			evts = append(evts, domain.NewEntityChangeEvent(
				agg.AggregateOwner(), agg.AggregateType(), agg.AggregateID(), domain.ChangeCreated, agg))
		} else if !hasOwnAuditable(emitted, agg.AggregateID()) {
			evts = append(evts, domain.NewEntityChangeEvent(
				agg.AggregateOwner(), agg.AggregateType(), agg.AggregateID(), domain.ChangeUpdated, agg))
		}
	}
	for _, agg := range u.removed {
		if err := u.delete(ctx, agg); err != nil {
			return nil, fmt.Errorf("failed to delete %s %s: %w", agg.AggregateType(), agg.AggregateID(), err)
		}
		evts = append(evts, domain.NewEntityChangeEvent(
			agg.AggregateOwner(), agg.AggregateType(), agg.AggregateID(), domain.ChangeDeleted, nil))
	}
	return evts, nil
}

// auditRow is one audit_logs row staged for insert.
type auditRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ActivityType string
	EntityType   string
	EntityID     uuid.UUID
	OccurredAt   time.Time
	Meta         map[string]any
}

// auditableOf filters the auditable events, preserving order.
func auditableOf(evts []domain.Event) []domain.AuditableEvent {
	var out []domain.AuditableEvent
	for _, e := range evts {
		if a, ok := e.(domain.AuditableEvent); ok {
			out = append(out, a)
		}
	}
	return out
}

// hasOwnAuditable reports whether any emitted event audits the given entity.
func hasOwnAuditable(evts []domain.Event, entityID uuid.UUID) bool {
	for _, e := range evts {
		if a, ok := e.(domain.AuditableEvent); ok && a.EntityID() == entityID {
			return true
		}
	}
	return false
}

// buildAuditRows assigns each row a strictly increasing occurred_at
// (base + 1µs per row) so rows of one commit have a stable total order
// under the timestamp cursor used by incremental sync.
func buildAuditRows(auditable []domain.AuditableEvent, base time.Time) []auditRow {
	rows := make([]auditRow, 0, len(auditable))
	for i, e := range auditable {
		rows = append(rows, auditRow{
			ID:           uuid.New(),
			UserID:       e.Owner(),
			ActivityType: e.Name(),
			EntityType:   e.EntityType(),
			EntityID:     e.EntityID(),
			OccurredAt:   base.Add(time.Duration(i) * time.Microsecond),
			Meta:         snapshotMeta(e.EntitySnapshot()),
		})
	}
	return rows
}

// snapshotMeta wraps an entity snapshot as the audit meta object. The
// snapshot is round-tripped through JSON so the stored form matches what
// clients receive over the wire.
func snapshotMeta(snapshot any) map[string]any {
	if snapshot == nil {
		return nil
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		slog.Error("Failed to serialize entity snapshot for audit", "error", err)
		return nil
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return map[string]any{"entity_data": data}
}

func (u *UnitOfWork) insertAuditRows(ctx context.Context, rows []auditRow) error {
	if len(rows) == 0 {
		return nil
	}
	builders := make([]*ent.AuditLogCreate, 0, len(rows))
	for _, row := range rows {
		b := u.tx.AuditLog.Create().
			SetID(row.ID).
			SetUserID(row.UserID).
			SetActivityType(row.ActivityType).
			SetEntityType(row.EntityType).
			SetEntityID(row.EntityID).
			SetOccurredAt(row.OccurredAt)
		if row.Meta != nil {
			b.SetMeta(row.Meta)
		}
		builders = append(builders, b)
	}
	if err := u.tx.AuditLog.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

func (u *UnitOfWork) publishAuditRows(ctx context.Context, rows []auditRow) {
	if u.publisher == nil {
		return
	}
	for _, row := range rows {
		err := u.publisher.PublishAuditLog(ctx, events.AuditLogPayload{
			AuditLogID:   row.ID,
			UserID:       row.UserID,
			ActivityType: row.ActivityType,
			EntityType:   row.EntityType,
			EntityID:     row.EntityID,
			OccurredAt:   row.OccurredAt,
			Meta:         row.Meta,
		})
		if err != nil {
			slog.Error("Failed to publish audit log entry",
				"audit_log_id", row.ID, "user_id", row.UserID, "error", err)
		}
	}
}

func (u *UnitOfWork) publishDomainEvents(ctx context.Context, evts []domain.Event) {
	if u.publisher == nil {
		return
	}
	for _, e := range evts {
		err := u.publisher.PublishDomainEvent(ctx, events.DomainEventPayload{
			Name:       e.Name(),
			UserID:     e.Owner(),
			OccurredAt: e.At(),
			Data:       eventData(e),
		})
		if err != nil {
			slog.Error("Failed to publish domain event",
				"event", e.Name(), "user_id", e.Owner(), "error", err)
		}
	}
}

// eventData flattens an event to its wire form.
func eventData(e domain.Event) map[string]any {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

func (u *UnitOfWork) flushJobs(ctx context.Context) {
	for _, req := range u.jobs {
		runAt := req.RunAt
		if runAt.IsZero() {
			runAt = time.Now().UTC()
		}
		b := u.db.Job.Create().
			SetID(uuid.New()).
			SetUserID(req.UserID).
			SetKind(req.Kind).
			SetRunAt(runAt)
		if req.Payload != nil {
			b.SetPayload(req.Payload)
		}
		if err := b.Exec(ctx); err != nil {
			slog.Error("Failed to enqueue deferred job",
				"kind", req.Kind, "user_id", req.UserID, "error", err)
		}
	}
}
