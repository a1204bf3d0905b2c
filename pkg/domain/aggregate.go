// Package domain holds the aggregates, value objects and domain events of
// the planning core. It is a leaf package: nothing here imports the
// persistence or transport layers.
package domain

import "github.com/google/uuid"

// Aggregate is the surface the unit of work needs from every aggregate
// root: identity, ownership, the pending-event buffer, and whether the
// aggregate was created inside the current transaction (which decides
// between a Created and an Updated mutation event).
type Aggregate interface {
	AggregateID() uuid.UUID
	AggregateType() string
	AggregateOwner() uuid.UUID
	DrainEvents() []Event
	IsNew() bool
	MarkPersisted()
}

// AggregateBase provides the pending-event buffer and the created flag.
// Embed it in every aggregate root. Not safe for concurrent use — an
// aggregate belongs to a single unit of work.
type AggregateBase struct {
	pending []Event
	isNew   bool
}

// Emit appends a domain event to the pending buffer. Events are drained by
// the unit of work at commit, in insertion order.
func (b *AggregateBase) Emit(e Event) {
	b.pending = append(b.pending, e)
}

// DrainEvents returns and clears the pending buffer.
func (b *AggregateBase) DrainEvents() []Event {
	evts := b.pending
	b.pending = nil
	return evts
}

// IsNew reports whether the aggregate was constructed in this transaction.
func (b *AggregateBase) IsNew() bool { return b.isNew }

// MarkPersisted clears the created flag after a successful commit.
func (b *AggregateBase) MarkPersisted() { b.isNew = false }

func (b *AggregateBase) markNew() { b.isNew = true }
